package dto

// ExportRow 导出投影：每个联系人一行扁平记录，
// 缺失的平台粉丝数留空串。CSV/文件格式化由调用方负责
type ExportRow struct {
	Name                string `json:"name"`
	Email               string `json:"email"`
	Phone               string `json:"phone"`
	Company             string `json:"company"`
	Title               string `json:"title"`
	Stage               string `json:"stage"`
	LinkedinURL         string `json:"linkedin_url"`
	TwitterHandle       string `json:"twitter_handle"`
	YoutubeChannel      string `json:"youtube_channel"`
	InstagramHandle     string `json:"instagram_handle"`
	TiktokHandle        string `json:"tiktok_handle"`
	YoutubeSubscribers  string `json:"youtube_subscribers"`
	InstagramFollowers  string `json:"instagram_followers"`
	TwitterFollowers    string `json:"twitter_followers"`
	LinkedinConnections string `json:"linkedin_connections"`
	TiktokFollowers     string `json:"tiktok_followers"`
	CreatedAt           string `json:"created_at"`
	UpdatedAt           string `json:"updated_at"`
}
