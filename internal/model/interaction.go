package model

import (
	"time"
)

// Interaction 挂在联系人下的跟进记录，user_id 为冗余归属字段，
// 鉴权始终通过 contacts 联表完成
type Interaction struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	ContactID int64     `gorm:"not null;index" json:"contact_id"`
	UserID    int64     `gorm:"not null;index" json:"user_id"`
	Title     *string   `gorm:"size:255" json:"title"`
	Note      string    `gorm:"type:text;not null" json:"note"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

func (Interaction) TableName() string {
	return "interactions"
}
