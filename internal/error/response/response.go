package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"techblaze-registration-service/internal/error/code"
)

// 本包输出前端既有的响应格式：
// 成功响应由各控制器自行组装，失败响应统一为 {"error": "<code>"}，
// 服务器侧失败可附带 message 字段用于诊断。

// Success 成功响应
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Fail 失败响应
func Fail(c *gin.Context, errorCode int) {
	c.JSON(code.GetStatus(errorCode), gin.H{
		"error": code.GetKey(errorCode),
	})
}

// FailWithMessage 失败响应（附带诊断消息）
func FailWithMessage(c *gin.Context, errorCode int, message string) {
	c.JSON(code.GetStatus(errorCode), gin.H{
		"error":   code.GetKey(errorCode),
		"message": message,
	})
}

// Unauthorized 未授权响应
func Unauthorized(c *gin.Context) {
	Fail(c, code.ErrUnauthorized)
}

// MethodNotAllowed 请求方法不允许响应
func MethodNotAllowed(c *gin.Context) {
	Fail(c, code.ErrMethodNotAllowed)
}
