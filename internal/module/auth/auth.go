package auth

import (
	"thesis-proposal-system/internal/global/database"
	"thesis-proposal-system/internal/global/jwt"
	"thesis-proposal-system/internal/global/response"
	"thesis-proposal-system/internal/model"
	"thesis-proposal-system/tools"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// RegisterReq 定义注册请求的结构体
type RegisterReq struct {
	Username string `json:"username" binding:"required"` // 用户名，全局唯一
	Email    string `json:"email" binding:"required"`    // 邮箱，全局唯一，统一存小写
	Password string `json:"password" binding:"required"` // 密码，注册时加密存储
	Role     string `json:"role"`                        // 角色，缺省为 student
}

// Register 处理用户注册请求
// 成功后直接签发令牌，注册即登录
func Register(c *gin.Context) {
	// 定义请求结构体并绑定 JSON 数据
	var req RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("绑定注册请求失败", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	email := normalizeEmail(req.Email)
	if err := validateEmail(email); err != nil {
		log.Warn("邮箱格式校验失败", "email", email)
		response.Fail(c, response.ErrInvalidRequest.WithTips(err.Error()))
		return
	}

	// 验证密码强度
	if err := validatePasswordStrength(req.Password); err != nil {
		log.Warn("密码强度验证失败", "error", err, "username", req.Username)
		response.Fail(c, response.ErrInvalidRequest.WithTips(err.Error()))
		return
	}

	role := model.Role(req.Role)
	if req.Role == "" {
		role = model.RoleStudent
	}
	if !role.Valid() {
		log.Warn("无效的用户角色", "role", req.Role)
		response.Fail(c, response.ErrInvalidRequest.WithTips("无效的用户角色"))
		return
	}

	// 先做一次友好检查，区分邮箱冲突和用户名冲突
	var existingUser model.User
	err := database.DB.Where("email = ?", email).First(&existingUser).Error
	if err == nil {
		log.Warn("邮箱已被注册", "email", email)
		response.Fail(c, response.ErrDuplicateEmail)
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Error("数据库查询失败", "error", err, "email", email)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	err = database.DB.Where("username = ?", req.Username).First(&existingUser).Error
	if err == nil {
		log.Warn("用户名已被占用", "username", req.Username)
		response.Fail(c, response.ErrDuplicateUsername)
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Error("数据库查询失败", "error", err, "username", req.Username)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	// 加密密码
	encryptedPassword := tools.PasswordEncrypt(req.Password)

	user := model.User{
		Username: req.Username,
		Email:    email,
		Password: encryptedPassword,
		Role:     role,
	}

	// 唯一索引兜底：并发注册同一邮箱/用户名时由数据库裁决
	if err := database.DB.Create(&user).Error; err != nil {
		switch {
		case database.IsDuplicateKeyError(err, "email"):
			response.Fail(c, response.ErrDuplicateEmail)
		case database.IsDuplicateKeyError(err, "username"):
			response.Fail(c, response.ErrDuplicateUsername)
		default:
			log.Error("创建用户失败", "error", err, "username", req.Username)
			response.Fail(c, response.ErrDatabase.WithOrigin(err))
		}
		return
	}

	log.Info("用户注册成功",
		"user_id", user.ID,
		"username", user.Username,
		"role", user.Role)

	response.Success(c, gin.H{
		"token": jwt.CreateToken(jwt.Payload{
			UserID: user.ID,
			Role:   user.Role,
		}),
		"user": user,
	})
}

// LoginReq 定义登录请求的结构体
type LoginReq struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login 处理用户登录请求
// 用户不存在与密码错误返回同一错误，避免探测已注册邮箱
func Login(c *gin.Context) {
	var req LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("绑定登录请求失败", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	email := normalizeEmail(req.Email)

	// 查询用户是否存在
	var user model.User
	err := database.DB.Where("email = ?", email).First(&user).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		log.Warn("登录失败，用户不存在", "email", email)
		response.Fail(c, response.ErrInvalidCredentials)
		return
	case err != nil:
		log.Error("数据库查询失败", "error", err, "email", email)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	// 验证密码
	if !tools.PasswordCompare(req.Password, user.Password) {
		log.Warn("登录失败，密码错误", "user_id", user.ID)
		response.Fail(c, response.ErrInvalidCredentials)
		return
	}

	log.Info("用户登录成功",
		"user_id", user.ID,
		"role", user.Role)

	// 生成 JWT 令牌并返回用户信息
	response.Success(c, gin.H{
		"token": jwt.CreateToken(jwt.Payload{
			UserID: user.ID,
			Role:   user.Role,
		}),
		"user": user,
	})
}

// GetMe 返回当前登录用户的信息
func GetMe(c *gin.Context) {
	payload, exists := jwt.GetUserPayload(c)
	if !exists {
		response.Fail(c, response.ErrUnauthorized)
		return
	}

	var user model.User
	if err := database.DB.First(&user, payload.UserID).Error; err != nil {
		log.Error("查询用户失败", "error", err, "user_id", payload.UserID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	response.Success(c, user)
}

// ChangePasswordReq 定义修改密码请求的结构体
type ChangePasswordReq struct {
	OldPassword string `json:"old_password" binding:"required"` // 旧密码，用于验证
	NewPassword string `json:"new_password" binding:"required"` // 新密码，需加密后保存
}

// ChangePassword 处理用户修改密码请求
// 验证旧密码正确性后更新新密码，要求用户已通过认证
func ChangePassword(c *gin.Context) {
	payload, exists := jwt.GetUserPayload(c)
	if !exists {
		response.Fail(c, response.ErrUnauthorized)
		return
	}

	var req ChangePasswordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("绑定修改密码请求失败", "error", err, "user_id", payload.UserID)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	// 验证新密码强度
	if err := validatePasswordStrength(req.NewPassword); err != nil {
		log.Warn("新密码强度验证失败", "error", err, "user_id", payload.UserID)
		response.Fail(c, response.ErrInvalidRequest.WithTips(err.Error()))
		return
	}

	// 查询用户
	var user model.User
	if err := database.DB.First(&user, payload.UserID).Error; err != nil {
		log.Error("查询用户失败", "error", err, "user_id", payload.UserID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	// 验证旧密码
	if !tools.PasswordCompare(req.OldPassword, user.Password) {
		log.Warn("旧密码错误", "user_id", user.ID)
		response.Fail(c, response.ErrInvalidCredentials)
		return
	}

	// 加密新密码并更新
	newEncryptedPassword := tools.PasswordEncrypt(req.NewPassword)
	if err := database.DB.Model(&user).Update("password", newEncryptedPassword).Error; err != nil {
		log.Error("更新密码失败", "error", err, "user_id", user.ID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("用户修改密码成功", "user_id", user.ID)

	response.Success(c)
}
