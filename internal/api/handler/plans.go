package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/qs3c/crm_go_server/config"
	"github.com/qs3c/crm_go_server/internal/pkg/response"
)

// 套餐展示顺序固定，map 遍历顺序不可依赖
var planOrder = []string{"free", "pro", "enterprise"}

type PlansHandler struct {
	cfg *config.Config
}

func NewPlansHandler(cfg *config.Config) *PlansHandler {
	return &PlansHandler{
		cfg: cfg,
	}
}

// List 公开的套餐定价表，数据来自配置
// GET /api/v1/plans
func (h *PlansHandler) List(c *gin.Context) {
	plans := make([]gin.H, 0, len(h.cfg.Plans.Levels))
	for _, name := range planOrder {
		level, ok := h.cfg.Plans.Levels[name]
		if !ok {
			continue
		}
		plans = append(plans, gin.H{
			"name":          name,
			"display_name":  level.DisplayName,
			"price":         level.Price,
			"currency":      level.Currency,
			"billing_cycle": level.BillingCycle,
			"contact_limit": level.ContactLimit,
		})
	}

	response.Success(c, gin.H{
		"plans": plans,
	})
}
