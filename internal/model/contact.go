package model

import (
	"time"
)

// Stage 联系人所处的管线阶段，固定六档
type Stage string

const (
	StageIdentified    Stage = "identified"
	StageOutreachSent  Stage = "outreach_sent"
	StageInDiscussion  Stage = "in_discussion"
	StageNegotiating   Stage = "negotiating"
	StageActivePartner Stage = "active_partner"
	StageChurned       Stage = "churned"
)

// Stages 按管线展示顺序排列
var Stages = []Stage{
	StageIdentified,
	StageOutreachSent,
	StageInDiscussion,
	StageNegotiating,
	StageActivePartner,
	StageChurned,
}

var stageDisplayNames = map[Stage]string{
	StageIdentified:    "Identified",
	StageOutreachSent:  "Outreach Sent",
	StageInDiscussion:  "In Discussion",
	StageNegotiating:   "Negotiating",
	StageActivePartner: "Active Partner",
	StageChurned:       "Churned",
}

// Valid 校验阶段值是否在固定集合内
func (s Stage) Valid() bool {
	switch s {
	case StageIdentified, StageOutreachSent, StageInDiscussion,
		StageNegotiating, StageActivePartner, StageChurned:
		return true
	}
	return false
}

// DisplayName 阶段展示名，未知值原样返回
func (s Stage) DisplayName() string {
	if name, ok := stageDisplayNames[s]; ok {
		return name
	}
	return string(s)
}

type Contact struct {
	ID              int64     `gorm:"primaryKey" json:"id"`
	UserID          int64     `gorm:"not null;index" json:"user_id"`
	Name            string    `gorm:"size:255;not null;index" json:"name"`
	Email           *string   `gorm:"size:255" json:"email,omitempty"`
	Phone           *string   `gorm:"size:50" json:"phone,omitempty"`
	Company         *string   `gorm:"size:255;index" json:"company,omitempty"`
	Title           *string   `gorm:"size:255" json:"title,omitempty"`
	Stage           Stage     `gorm:"size:30;default:identified;index" json:"stage"`
	LinkedinURL     *string   `gorm:"size:500" json:"linkedin_url,omitempty"`
	TwitterHandle   *string   `gorm:"size:100" json:"twitter_handle,omitempty"`
	YoutubeChannel  *string   `gorm:"size:255" json:"youtube_channel,omitempty"`
	InstagramHandle *string   `gorm:"size:100" json:"instagram_handle,omitempty"`
	TiktokHandle    *string   `gorm:"size:100" json:"tiktok_handle,omitempty"`
	CreatedAt       time.Time `gorm:"index" json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (Contact) TableName() string {
	return "contacts"
}
