package response

import (
	"net/http"
	"runtime/debug"
	"thesis-proposal-system/config"
	"thesis-proposal-system/internal/global/logger"

	"github.com/gin-gonic/gin"
	pkgerrors "github.com/pkg/errors"
)

// 错误码按 http 状态码 * 100 + 序号 编排，响应状态码由错误码推导
var (
	ErrInvalidRequest      = newError(40001, "请求参数错误")
	ErrDuplicateEmail      = newError(40002, "该邮箱已被注册")
	ErrDuplicateUsername   = newError(40003, "该用户名已被占用")
	ErrInvalidCredentials  = newError(40004, "邮箱或密码错误")
	ErrUnsupportedFileType = newError(40005, "仅支持上传 PDF、DOCX、DOC 文件")
	ErrFileTooLarge        = newError(40006, "文件大小不能超过 10MB")
	ErrInvalidStatus       = newError(40007, "无效的提案状态")
	ErrUnauthorized        = newError(40101, "未登录或认证信息缺失")
	ErrTokenInvalid        = newError(40102, "认证令牌无效")
	ErrTokenExpired        = newError(40103, "认证令牌已过期")
	ErrForbidden           = newError(40301, "没有权限执行该操作")
	ErrNotFound            = newError(40401, "资源不存在")
	ErrServerInternal      = newError(50000, "服务器内部错误")
	ErrDatabase            = newError(50001, "数据库操作失败")
	ErrFileSystem          = newError(50002, "文件存储操作失败")
)

// ResponseBody 统一响应体结构
type ResponseBody struct {
	Code int32       `json:"code"`
	Msg  string      `json:"msg"`
	Data interface{} `json:"data,omitempty"`
}

// Success 返回成功响应，data 可省略
func Success(c *gin.Context, data ...interface{}) {
	body := ResponseBody{
		Code: 200,
		Msg:  "success",
	}
	if len(data) > 0 {
		body.Data = data[0]
	}
	c.JSON(http.StatusOK, body)
}

// Fail 返回失败响应，http 状态码由错误码前三位推导
func Fail(c *gin.Context, err error) {
	e := AsError(err)

	body := ResponseBody{
		Code: e.Code,
		Msg:  e.Message,
	}
	// 原始错误文本仅在 debug 模式下暴露给前端
	if config.Get().Mode == config.ModeDebug && e.Origin != "" {
		body.Data = gin.H{"origin": e.Origin}
	}

	c.JSON(httpStatus(e.Code), body)
}

// AsError 将任意 error 归一化为 *Error，未知错误映射为内部错误
func AsError(err error) *Error {
	var e *Error
	if pkgerrors.As(err, &e) {
		return e
	}
	return ErrServerInternal.WithOrigin(err)
}

// Recovery 捕获 handler 中的 panic，记录堆栈并返回统一的内部错误
func Recovery(c *gin.Context) {
	if r := recover(); r != nil {
		logger.New("Recovery").Error("handler panic",
			"panic", r,
			"path", c.Request.URL.Path,
			"stack", string(debug.Stack()),
		)
		c.AbortWithStatusJSON(http.StatusInternalServerError, ResponseBody{
			Code: ErrServerInternal.Code,
			Msg:  ErrServerInternal.Message,
		})
	}
}

func httpStatus(code int32) int {
	status := int(code / 100)
	if status < 100 || status > 599 {
		return http.StatusInternalServerError
	}
	return status
}
