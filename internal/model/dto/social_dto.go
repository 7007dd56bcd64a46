package dto

// SocialStatEntry 批量提交里的一项。
// Followers 为 nil 表示清除该平台的记录
type SocialStatEntry struct {
	Platform  string `json:"platform" binding:"required"`
	Followers *int64 `json:"followers"`
}

// BulkUpdateStatsRequest 批量更新社媒数据请求
type BulkUpdateStatsRequest struct {
	Stats []SocialStatEntry `json:"stats" binding:"required"`
}

// SocialStatItem 社媒数据展示项
type SocialStatItem struct {
	Platform           string `json:"platform"`
	DisplayName        string `json:"display_name"`
	Metric             string `json:"metric"`
	Followers          int64  `json:"followers"`
	FollowersFormatted string `json:"followers_formatted"`
	UpdatedAt          string `json:"updated_at"`
}
