package repository

import (
	"gorm.io/gorm"

	"github.com/qs3c/crm_go_server/internal/model"
)

type SubscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) *SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

func (r *SubscriptionRepository) Create(subscription *model.Subscription) error {
	return r.db.Create(subscription).Error
}

// GetActiveByUser 用户当前生效的订阅，没有则返回 ErrRecordNotFound（调用方按 free 处理）
func (r *SubscriptionRepository) GetActiveByUser(userID int64) (*model.Subscription, error) {
	var subscription model.Subscription
	err := r.db.Where("user_id = ? AND status = ?", userID, "active").
		Order("started_at DESC").
		First(&subscription).Error
	if err != nil {
		return nil, err
	}
	return &subscription, nil
}

// UpdateStatus 变更订阅状态
func (r *SubscriptionRepository) UpdateStatus(id int64, status string) error {
	return r.db.Model(&model.Subscription{}).Where("id = ?", id).Update("status", status).Error
}
