package model

import (
	"time"
)

// Platform 社媒平台，固定五个
type Platform string

const (
	PlatformYoutube   Platform = "youtube"
	PlatformInstagram Platform = "instagram"
	PlatformTwitter   Platform = "twitter"
	PlatformLinkedin  Platform = "linkedin"
	PlatformTiktok    Platform = "tiktok"
)

var Platforms = []Platform{
	PlatformYoutube,
	PlatformInstagram,
	PlatformTwitter,
	PlatformLinkedin,
	PlatformTiktok,
}

// PlatformInfo 平台展示信息，metric 仅用于界面文案
type PlatformInfo struct {
	DisplayName string
	Metric      string
}

var platformInfos = map[Platform]PlatformInfo{
	PlatformYoutube:   {DisplayName: "YouTube", Metric: "subscribers"},
	PlatformInstagram: {DisplayName: "Instagram", Metric: "followers"},
	PlatformTwitter:   {DisplayName: "Twitter/X", Metric: "followers"},
	PlatformLinkedin:  {DisplayName: "LinkedIn", Metric: "connections"},
	PlatformTiktok:    {DisplayName: "TikTok", Metric: "followers"},
}

// Valid 校验平台值是否在固定集合内
func (p Platform) Valid() bool {
	switch p {
	case PlatformYoutube, PlatformInstagram, PlatformTwitter, PlatformLinkedin, PlatformTiktok:
		return true
	}
	return false
}

// Info 平台展示信息，未知平台返回零值
func (p Platform) Info() PlatformInfo {
	return platformInfos[p]
}

// SocialStat 单个平台的粉丝数，(contact_id, platform) 唯一
type SocialStat struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	ContactID int64     `gorm:"not null;uniqueIndex:uk_social_stats_contact_platform" json:"contact_id"`
	Platform  Platform  `gorm:"size:20;not null;uniqueIndex:uk_social_stats_contact_platform;index" json:"platform"`
	Followers int64     `gorm:"default:0" json:"followers"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (SocialStat) TableName() string {
	return "social_stats"
}
