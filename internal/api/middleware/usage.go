package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/qs3c/crm_go_server/internal/pkg/metrics"
	"github.com/qs3c/crm_go_server/internal/pkg/response"
	"github.com/qs3c/crm_go_server/internal/service"
)

// ContactLimit 联系人额度检查中间件，挂在创建/复制联系人的路由前。
// 判定和后续写入不在同一事务里：同一用户并发请求可能双双通过，
// 按软配额接受这一竞态
func ContactLimit(usageService *service.UsageService, m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := GetUserID(c)
		if !ok {
			response.AuthError(c, "")
			c.Abort()
			return
		}

		canCreate, err := usageService.CanCreate(userID)
		if err != nil {
			response.ServerError(c, "额度检查失败")
			c.Abort()
			return
		}

		if !canCreate {
			if m != nil {
				m.LimitRejections.Inc()
			}
			response.LimitError(c, "联系人数量已达套餐上限，请升级套餐")
			c.Abort()
			return
		}

		c.Next()
	}
}
