package service

import (
	"errors"

	"gorm.io/gorm"

	"github.com/qs3c/crm_go_server/config"
	"github.com/qs3c/crm_go_server/internal/model/dto"
	"github.com/qs3c/crm_go_server/internal/repository"
)

// UsageService 联系人用量计算，"还能不能再建联系人"的唯一裁决方。
// 结果是请求时刻的实时快照，不缓存也不加锁：同一用户并发创建可能
// 轻微超出上限，按软配额处理
type UsageService struct {
	contactRepo      *repository.ContactRepository
	subscriptionRepo *repository.SubscriptionRepository
	cfg              *config.Config
}

func NewUsageService(
	contactRepo *repository.ContactRepository,
	subscriptionRepo *repository.SubscriptionRepository,
	cfg *config.Config,
) *UsageService {
	return &UsageService{
		contactRepo:      contactRepo,
		subscriptionRepo: subscriptionRepo,
		cfg:              cfg,
	}
}

// PlanName 解析用户当前套餐，没有生效订阅按 free 处理
func (s *UsageService) PlanName(userID int64) (string, error) {
	subscription, err := s.subscriptionRepo.GetActiveByUser(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "free", nil
		}
		return "", err
	}
	return subscription.PlanName, nil
}

// GetUsage 计算用量快照：当前数量、套餐上限、可否继续创建
func (s *UsageService) GetUsage(userID int64) (*dto.UsageInfo, error) {
	planName, err := s.PlanName(userID)
	if err != nil {
		return nil, err
	}

	limit := s.cfg.Plans.ContactLimit(planName)

	current, err := s.contactRepo.CountByUser(userID)
	if err != nil {
		return nil, err
	}

	percentage := 0.0
	if limit != nil && *limit > 0 {
		percentage = float64(current) / float64(*limit) * 100
	}

	return &dto.UsageInfo{
		Current:    current,
		Limit:      limit,
		Plan:       planName,
		CanCreate:  limit == nil || current < int64(*limit),
		Percentage: percentage,
	}, nil
}

// CanCreate 创建联系人前的额度判定
func (s *UsageService) CanCreate(userID int64) (bool, error) {
	usage, err := s.GetUsage(userID)
	if err != nil {
		return false, err
	}
	return usage.CanCreate, nil
}
