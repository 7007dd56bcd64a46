package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/qs3c/crm_go_server/internal/api/middleware"
	"github.com/qs3c/crm_go_server/internal/model/dto"
	"github.com/qs3c/crm_go_server/internal/pkg/response"
	"github.com/qs3c/crm_go_server/internal/service"
)

type SocialHandler struct {
	socialService *service.SocialService
}

func NewSocialHandler(socialService *service.SocialService) *SocialHandler {
	return &SocialHandler{
		socialService: socialService,
	}
}

// List 联系人的社媒数据
// GET /api/v1/contacts/:id/social-stats
func (h *SocialHandler) List(c *gin.Context) {
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

	stats, err := h.socialService.ListForContact(contactID, userID)
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
		"stats":                     stats,
		"total_followers":           total,
		"total_followers_formatted": service.FormatFollowers(total),
	})
}

// GetPlatform 单个平台的数据
// GET /api/v1/contacts/:id/social-stats/:platform
func (h *SocialHandler) GetPlatform(c *gin.Context) {
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

	stat, err := h.socialService.GetPlatform(contactID, userID, c.Param("platform"))
	if err != nil {
		if msgs, ok := service.AsValidationErrors(err); ok {
			response.ValidationError(c, msgs)
			return
		}
		switch err {
		case service.ErrStatNotFound:
			response.NotFoundError(c, err.Error())
		default:
			response.ServerError(c, "")
		}
		return
	}

	response.Success(c, stat)
}

// BulkUpdate 批量提交：有值的平台写入，空值的平台清除
// PUT /api/v1/contacts/:id/social-stats
func (h *SocialHandler) BulkUpdate(c *gin.Context) {
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

	var req dto.BulkUpdateStatsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, err.Error())
		return
	}

	if err := h.socialService.BulkUpdate(contactID, userID, req.Stats); err != nil {
		switch err {
		case service.ErrContactNotFound:
			response.NotFoundError(c, err.Error())
		default:
			response.ServerError(c, "")
		}
		return
	}

	stats, err := h.socialService.ListForContact(contactID, userID)
	if err != nil {
		response.ServerError(c, "")
		return
	}

	response.SuccessWithMessage(c, "更新成功", gin.H{
		"stats": stats,
	})
}

// Delete 清除某平台的记录，记录不存在也按成功处理
// DELETE /api/v1/contacts/:id/social-stats/:platform
func (h *SocialHandler) Delete(c *gin.Context) {
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

	if err := h.socialService.Delete(contactID, userID, c.Param("platform")); err != nil {
		switch err {
		case service.ErrContactNotFound:
			response.NotFoundError(c, err.Error())
		default:
			response.ServerError(c, "")
		}
		return
	}

	response.SuccessWithMessage(c, "删除成功", nil)
}
