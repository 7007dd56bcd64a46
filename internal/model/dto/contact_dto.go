package dto

// ContactRequest 创建/更新联系人共用的请求体。
// 更新是整体替换：未提交的可选字段会被置空，而不是保留原值
type ContactRequest struct {
	Name            string  `json:"name" binding:"required,max=255"`
	Email           *string `json:"email,omitempty"`
	Phone           *string `json:"phone,omitempty"`
	Company         *string `json:"company,omitempty"`
	Title           *string `json:"title,omitempty"`
	Stage           string  `json:"stage,omitempty"`
	LinkedinURL     *string `json:"linkedin_url,omitempty"`
	TwitterHandle   *string `json:"twitter_handle,omitempty"`
	YoutubeChannel  *string `json:"youtube_channel,omitempty"`
	InstagramHandle *string `json:"instagram_handle,omitempty"`
	TiktokHandle    *string `json:"tiktok_handle,omitempty"`
}

// ListContactsQuery 联系人列表过滤参数
type ListContactsQuery struct {
	Stage  string `form:"stage"`
	Search string `form:"search"`
	SortBy string `form:"sort_by"`
	Order  string `form:"order"`
}

// StageCount 单个阶段的联系人数量
type StageCount struct {
	Stage       string `json:"stage"`
	DisplayName string `json:"display_name"`
	Count       int64  `json:"count"`
}
