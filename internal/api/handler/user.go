package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/qs3c/crm_go_server/internal/api/middleware"
	"github.com/qs3c/crm_go_server/internal/model/dto"
	"github.com/qs3c/crm_go_server/internal/pkg/response"
	"github.com/qs3c/crm_go_server/internal/service"
)

// 头像上传限制 5MB
const maxAvatarSize = 5 << 20

type UserHandler struct {
	userService  *service.UserService
	usageService *service.UsageService
}

func NewUserHandler(userService *service.UserService, usageService *service.UsageService) *UserHandler {
	return &UserHandler{
		userService:  userService,
		usageService: usageService,
	}
}

// GetProfile 当前用户资料
// GET /api/v1/user/profile
func (h *UserHandler) GetProfile(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.AuthError(c, "")
		return
	}

	info, err := h.userService.GetProfile(userID)
	if err != nil {
		switch err {
		case service.ErrUserNotFound:
			response.NotFoundError(c, err.Error())
		default:
			response.ServerError(c, "")
		}
		return
	}

	response.Success(c, info)
}

// UpdateProfile 更新用户资料
// PUT /api/v1/user/profile
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.AuthError(c, "")
		return
	}

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, err.Error())
		return
	}

	info, err := h.userService.UpdateProfile(userID, &req)
	if err != nil {
		switch err {
		case service.ErrUserNotFound:
			response.NotFoundError(c, err.Error())
		case service.ErrUsernameExists:
			response.ParamError(c, err.Error())
		default:
			response.ServerError(c, "")
		}
		return
	}

	response.SuccessWithMessage(c, "更新成功", info)
}

// UploadAvatar 上传头像
// POST /api/v1/user/avatar
func (h *UserHandler) UploadAvatar(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.AuthError(c, "")
		return
	}

	file, err := c.FormFile("avatar")
	if err != nil {
		response.ParamError(c, "请上传头像文件")
		return
	}

	if file.Size > maxAvatarSize {
		response.ParamError(c, "头像文件不能超过5MB")
		return
	}

	src, err := file.Open()
	if err != nil {
		response.ServerError(c, "")
		return
	}
	defer src.Close()

	avatarURL, err := h.userService.UploadAvatar(userID, src, file.Filename)
	if err != nil {
		switch err {
		case service.ErrStorageNotConfigured:
			response.ServerError(c, err.Error())
		default:
			response.ServerError(c, "头像上传失败")
		}
		return
	}

	response.SuccessWithMessage(c, "上传成功", gin.H{
		"avatar_url": avatarURL,
	})
}

// GetUsage 联系人用量快照
// GET /api/v1/user/usage
func (h *UserHandler) GetUsage(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.AuthError(c, "")
		return
	}

	usage, err := h.usageService.GetUsage(userID)
	if err != nil {
		response.ServerError(c, "")
		return
	}

	response.Success(c, usage)
}
