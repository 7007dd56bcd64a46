package service

import (
	"errors"
	"io"
	"path"
	"strings"

	"gorm.io/gorm"

	"github.com/qs3c/crm_go_server/internal/model/dto"
	"github.com/qs3c/crm_go_server/internal/pkg/oss"
	"github.com/qs3c/crm_go_server/internal/repository"
)

var ErrStorageNotConfigured = errors.New("对象存储未配置")

type UserService struct {
	userRepo     *repository.UserRepository
	usageService *UsageService
	ossClient    *oss.Client
}

func NewUserService(userRepo *repository.UserRepository, usageService *UsageService, ossClient *oss.Client) *UserService {
	return &UserService{
		userRepo:     userRepo,
		usageService: usageService,
		ossClient:    ossClient,
	}
}

// GetProfile 当前用户资料
func (s *UserService) GetProfile(userID int64) (*dto.UserInfo, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	plan, err := s.usageService.PlanName(userID)
	if err != nil {
		return nil, err
	}

	info := &dto.UserInfo{
		ID:        user.ID,
		Username:  user.Username,
		AvatarURL: user.AvatarURL,
		Plan:      plan,
	}
	if user.Email != nil {
		info.Email = *user.Email
	}
	return info, nil
}

// UpdateProfile 更新用户资料
func (s *UserService) UpdateProfile(userID int64, req *dto.UpdateProfileRequest) (*dto.UserInfo, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if req.Username != user.Username {
		exists, err := s.userRepo.ExistsByUsername(req.Username)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, ErrUsernameExists
		}
		user.Username = req.Username
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}

	return s.GetProfile(userID)
}

// UploadAvatar 上传头像到 OSS 并更新用户记录
func (s *UserService) UploadAvatar(userID int64, reader io.Reader, filename string) (string, error) {
	if s.ossClient == nil {
		return "", ErrStorageNotConfigured
	}

	data, err := io.ReadAll(reader)
	if err != nil {
		return "", err
	}

	ext := strings.ToLower(path.Ext(filename))
	avatarURL, err := s.ossClient.UploadAvatar(userID, data, ext)
	if err != nil {
		return "", err
	}

	if err := s.userRepo.UpdateFields(userID, map[string]interface{}{
		"avatar_url": avatarURL,
	}); err != nil {
		return "", err
	}

	return avatarURL, nil
}
