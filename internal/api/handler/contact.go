package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/qs3c/crm_go_server/internal/api/middleware"
	"github.com/qs3c/crm_go_server/internal/model"
	"github.com/qs3c/crm_go_server/internal/model/dto"
	"github.com/qs3c/crm_go_server/internal/pkg/metrics"
	"github.com/qs3c/crm_go_server/internal/pkg/response"
	"github.com/qs3c/crm_go_server/internal/service"
)

type ContactHandler struct {
	contactService     *service.ContactService
	interactionService *service.InteractionService
	socialService      *service.SocialService
	exportService      *service.ExportService
	metrics            *metrics.Metrics
}

func NewContactHandler(
	contactService *service.ContactService,
	interactionService *service.InteractionService,
	socialService *service.SocialService,
	exportService *service.ExportService,
	m *metrics.Metrics,
) *ContactHandler {
	return &ContactHandler{
		contactService:     contactService,
		interactionService: interactionService,
		socialService:      socialService,
		exportService:      exportService,
		metrics:            m,
	}
}

// List 联系人列表
// GET /api/v1/contacts?stage=&search=&sort_by=&order=
func (h *ContactHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.AuthError(c, "")
		return
	}

	var query dto.ListContactsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.ParamError(c, err.Error())
		return
	}

	contacts, err := h.contactService.List(userID, &query)
	if err != nil {
		response.ServerError(c, "")
		return
	}

	response.Success(c, gin.H{
		"contacts": contacts,
		"total":    len(contacts),
	})
}

// Get 联系人详情，附带跟进统计和全平台粉丝合计
// GET /api/v1/contacts/:id
func (h *ContactHandler) Get(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.AuthError(c, "")
		return
	}

	contactID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.ParamError(c, "无效的联系人ID")
		return
	}

	contact, err := h.contactService.Get(contactID, userID)
	if err != nil {
		switch err {
		case service.ErrContactNotFound:
			response.NotFoundError(c, err.Error())
		default:
			response.ServerError(c, "")
		}
		return
	}

	count, err := h.interactionService.Count(contactID, userID)
	if err != nil {
		response.ServerError(c, "")
		return
	}

	latest, err := h.interactionService.Latest(contactID, userID)
	if err != nil {
		response.ServerError(c, "")
		return
	}

	total, err := h.socialService.TotalFollowers(contactID, userID)
	if err != nil {
		response.ServerError(c, "")
		return
	}

	response.Success(c, gin.H{
		"contact":                   contact,
		"stage_display_name":        contact.Stage.DisplayName(),
		"interaction_count":         count,
		"latest_interaction":        latest,
		"total_followers":           total,
		"total_followers_formatted": service.FormatFollowers(total),
	})
}

// Create 创建联系人（额度检查在路由中间件完成）
// POST /api/v1/contacts
func (h *ContactHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.AuthError(c, "")
		return
	}

	var req dto.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, err.Error())
		return
	}

	contact, err := h.contactService.Create(userID, &req)
	if err != nil {
		if msgs, ok := service.AsValidationErrors(err); ok {
			response.ValidationError(c, msgs)
			return
		}
		response.ServerError(c, "")
		return
	}

	h.metrics.RecordContactOperation("create")
	response.SuccessWithMessage(c, "创建成功", contact)
}

// Update 更新联系人（整体替换）
// PUT /api/v1/contacts/:id
func (h *ContactHandler) Update(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.AuthError(c, "")
		return
	}

	contactID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.ParamError(c, "无效的联系人ID")
		return
	}

	var req dto.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, err.Error())
		return
	}

	contact, err := h.contactService.Update(contactID, userID, &req)
	if err != nil {
		if msgs, ok := service.AsValidationErrors(err); ok {
			response.ValidationError(c, msgs)
			return
		}
		switch err {
		case service.ErrContactNotFound:
			response.NotFoundError(c, err.Error())
		default:
			response.ServerError(c, "")
		}
		return
	}

	h.metrics.RecordContactOperation("update")
	response.SuccessWithMessage(c, "更新成功", contact)
}

// Delete 删除联系人，级联删除跟进记录和社媒数据
// DELETE /api/v1/contacts/:id
func (h *ContactHandler) Delete(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.AuthError(c, "")
		return
	}

	contactID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.ParamError(c, "无效的联系人ID")
		return
	}

	if err := h.contactService.Delete(contactID, userID); err != nil {
		switch err {
		case service.ErrContactNotFound:
			response.NotFoundError(c, err.Error())
		default:
			response.ServerError(c, "")
		}
		return
	}

	h.metrics.RecordContactOperation("delete")
	response.SuccessWithMessage(c, "删除成功", nil)
}

// Duplicate 复制联系人，阶段重置为 identified（同样受额度检查）
// POST /api/v1/contacts/:id/duplicate
func (h *ContactHandler) Duplicate(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.AuthError(c, "")
		return
	}

	contactID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.ParamError(c, "无效的联系人ID")
		return
	}

	contact, err := h.contactService.Duplicate(contactID, userID)
	if err != nil {
		switch err {
		case service.ErrContactNotFound:
			response.NotFoundError(c, err.Error())
		default:
			response.ServerError(c, "")
		}
		return
	}

	h.metrics.RecordContactOperation("duplicate")
	response.SuccessWithMessage(c, "复制成功", contact)
}

// StageCounts 各阶段联系人数量
// GET /api/v1/contacts/stage-counts
func (h *ContactHandler) StageCounts(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.AuthError(c, "")
		return
	}

	counts, err := h.contactService.StageCounts(userID)
	if err != nil {
		response.ServerError(c, "")
		return
	}

	response.Success(c, gin.H{
		"stages": counts,
	})
}

// Export 导出投影：每个联系人一行扁平记录
// GET /api/v1/contacts/export
func (h *ContactHandler) Export(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.AuthError(c, "")
		return
	}

	rows, err := h.exportService.Rows(userID)
	if err != nil {
		response.ServerError(c, "")
		return
	}

	h.metrics.RecordContactOperation("export")
	response.Success(c, gin.H{
		"rows":  rows,
		"total": len(rows),
	})
}

// Stages 全部阶段的枚举定义，供前端渲染下拉框
// GET /api/v1/contacts/stages
func (h *ContactHandler) Stages(c *gin.Context) {
	items := make([]gin.H, len(model.Stages))
	for i, stage := range model.Stages {
		items[i] = gin.H{
			"value":        string(stage),
			"display_name": stage.DisplayName(),
		}
	}
	response.Success(c, gin.H{
		"stages": items,
	})
}
