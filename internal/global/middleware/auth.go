package middleware

import (
	"strings"
	"thesis-proposal-system/internal/global/jwt"
	"thesis-proposal-system/internal/global/response"
	"thesis-proposal-system/internal/model"

	"github.com/gin-gonic/gin"
)

// Auth 认证 + 角色鉴权中间件
// 先校验 Bearer 令牌，再检查角色是否在 requiredRoles 中
// requiredRoles 为空时任何已认证用户均可通过
func Auth(requiredRoles ...model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 获取 Authorization 头
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Fail(c, response.ErrUnauthorized)
			c.Abort()
			return
		}

		// 检查 Bearer 前缀并提取 token
		if !strings.HasPrefix(authHeader, "Bearer ") {
			response.Fail(c, response.ErrUnauthorized)
			c.Abort()
			return
		}
		token := strings.TrimPrefix(authHeader, "Bearer ")

		// 解析 token
		payload, errResp := jwt.ParseToken(token)
		if errResp != nil {
			response.Fail(c, errResp)
			c.Abort()
			return
		}

		if len(requiredRoles) > 0 && !containsRole(requiredRoles, payload.Role) {
			response.Fail(c, response.ErrForbidden)
			c.Abort()
			return
		}

		c.Set("payload", payload)
		c.Next()
	}
}

func containsRole(roles []model.Role, role model.Role) bool {
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}
