package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/qs3c/crm_go_server/internal/api/middleware"
	"github.com/qs3c/crm_go_server/internal/model/dto"
	"github.com/qs3c/crm_go_server/internal/pkg/response"
	"github.com/qs3c/crm_go_server/internal/service"
)

type InteractionHandler struct {
	interactionService *service.InteractionService
}

func NewInteractionHandler(interactionService *service.InteractionService) *InteractionHandler {
	return &InteractionHandler{
		interactionService: interactionService,
	}
}

// List 联系人的跟进记录列表
// GET /api/v1/contacts/:id/interactions?order=
func (h *InteractionHandler) List(c *gin.Context) {
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

	interactions, err := h.interactionService.ListForContact(contactID, userID, c.Query("order"))
	if err != nil {
		response.ServerError(c, "")
		return
	}

	response.Success(c, gin.H{
		"interactions": interactions,
		"total":        len(interactions),
	})
}

// Create 新增跟进记录
// POST /api/v1/contacts/:id/interactions
func (h *InteractionHandler) Create(c *gin.Context) {
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

	var req dto.InteractionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, err.Error())
		return
	}

	interaction, err := h.interactionService.Create(contactID, userID, req.Note, req.Title)
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

	response.SuccessWithMessage(c, "记录成功", interaction)
}

// Update 更新跟进记录
// PUT /api/v1/interactions/:id
func (h *InteractionHandler) Update(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.AuthError(c, "")
		return
	}

	interactionID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.ParamError(c, "无效的记录ID")
		return
	}

	var req dto.InteractionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, err.Error())
		return
	}

	interaction, err := h.interactionService.Update(interactionID, userID, req.Note, req.Title)
	if err != nil {
		if msgs, ok := service.AsValidationErrors(err); ok {
			response.ValidationError(c, msgs)
			return
		}
		switch err {
		case service.ErrInteractionNotFound:
			response.NotFoundError(c, err.Error())
		default:
			response.ServerError(c, "")
		}
		return
	}

	response.SuccessWithMessage(c, "更新成功", interaction)
}

// Delete 删除跟进记录
// DELETE /api/v1/interactions/:id
func (h *InteractionHandler) Delete(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.AuthError(c, "")
		return
	}

	interactionID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.ParamError(c, "无效的记录ID")
		return
	}

	if err := h.interactionService.Delete(interactionID, userID); err != nil {
		switch err {
		case service.ErrInteractionNotFound:
			response.NotFoundError(c, err.Error())
		default:
			response.ServerError(c, "")
		}
		return
	}

	response.SuccessWithMessage(c, "删除成功", nil)
}
