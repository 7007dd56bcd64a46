package model

import (
	"time"
)

type Subscription struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	UserID    int64     `gorm:"not null;index" json:"user_id"`
	PlanName  string    `gorm:"size:20;not null" json:"plan_name"`               // free, pro, enterprise
	Status    string    `gorm:"size:20;default:active;index" json:"status"`      // active, expired, cancelled
	StartedAt time.Time `gorm:"not null" json:"started_at"`
	ExpiresAt time.Time `gorm:"index" json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

func (Subscription) TableName() string {
	return "subscriptions"
}
