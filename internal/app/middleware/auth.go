package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"techblaze-registration-service/internal/domain/services"
	"techblaze-registration-service/internal/error/response"
	"techblaze-registration-service/internal/infrastructure/config"
)

var tokenService services.InterfaceTokenService

// InitAuthMiddleware 初始化认证中间件
func InitAuthMiddleware(cfg *config.Config) {
	tokenService = services.NewTokenService(cfg)
}

// extractToken 从授权头中提取token
func extractToken(authHeader string) string {
	// 检查并移除 "Bearer " 前缀
	if strings.HasPrefix(authHeader, "Bearer ") {
		return authHeader[7:]
	}
	return authHeader
}

// AuthenticateAdmin 验证管理员令牌。
// 令牌缺失、无效或过期一律返回401 unauthorized，不区分原因。
func AuthenticateAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c.GetHeader("Authorization"))
		if !tokenService.Verify(token) {
			response.Unauthorized(c)
			c.Abort()
			return
		}
		c.Next()
	}
}
