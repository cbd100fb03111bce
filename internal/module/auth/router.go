package auth

import (
	"thesis-proposal-system/internal/global/middleware"

	"github.com/gin-gonic/gin"
)

// InitRouter 初始化认证模块的路由
func (a *ModuleAuth) InitRouter(r *gin.RouterGroup) {
	authGroup := r.Group("/auth")

	authGroup.POST("/register", Register)
	authGroup.POST("/login", Login)

	// 以下端点要求已认证，不限角色
	authGroup.GET("/me", middleware.Auth(), GetMe)
	authGroup.PUT("/password", middleware.Auth(), ChangePassword)
}
