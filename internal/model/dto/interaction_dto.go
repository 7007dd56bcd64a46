package dto

// InteractionRequest 创建/更新跟进记录请求。
// Title 为指针：更新时传空串表示清除标题，不传表示不动
type InteractionRequest struct {
	Note  string  `json:"note" binding:"required"`
	Title *string `json:"title,omitempty"`
}
