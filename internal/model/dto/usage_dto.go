package dto

// UsageInfo 联系人用量快照，每次请求实时计算，不做缓存。
// Limit 为 nil 表示不限量
type UsageInfo struct {
	Current    int64   `json:"current"`
	Limit      *int    `json:"limit"`
	Plan       string  `json:"plan"`
	CanCreate  bool    `json:"can_create"`
	Percentage float64 `json:"percentage"`
}
