package controllers

import (
	"github.com/gin-gonic/gin"

	"techblaze-registration-service/internal/domain/services"
	"techblaze-registration-service/internal/domain/services/container"
	"techblaze-registration-service/internal/error/code"
	"techblaze-registration-service/internal/error/response"
	Logger "techblaze-registration-service/pkg/logger"
)

// InterfaceAuthController 定义认证控制器接口
type InterfaceAuthController interface {
	Login()
}

// AuthController 处理管理员身份验证请求
type AuthController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewAuthController 创建一个新的认证控制器
func NewAuthController(ctx *gin.Context, container *container.ServiceContainer) *AuthController {
	return &AuthController{
		Ctx:       ctx,
		Container: container,
	}
}

// LoginRequest 表示登录请求
type LoginRequest struct {
	Username string `json:"username" example:"admin"`
	Password string `json:"password" example:"techblaze2026"`
}

// HandleAuthFunc 返回一个处理认证请求的Gin处理函数
func HandleAuthFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewAuthController(ctx, container)

		switch method {
		case "login":
			controller.Login()
		default:
			response.Fail(ctx, code.ErrServer)
		}
	}
}

// Login 处理管理员登录
// @Summary      Admin Login
// @Description  Verify admin credentials and return a signed expiring bearer token
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Login request parameters"
// @Success      200  {object}  map[string]interface{}  "{success, token}"
// @Failure      401  {object}  map[string]interface{}  "invalid_credentials"
// @Failure      500  {object}  map[string]interface{}  "server_error"
// @Router       /admin-login [post]
func (c *AuthController) Login() {
	var req LoginRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrServer, err.Error())
		return
	}

	adminService := c.Container.GetService("admin").(services.InterfaceAdminService)
	admin, err := adminService.GetAdminByUsername(req.Username)
	if err != nil || !adminService.CheckPassword(req.Password, admin.Password) {
		response.Fail(c.Ctx, code.ErrInvalidCredentials)
		return
	}

	tokenService := c.Container.GetService("token").(services.InterfaceTokenService)
	token, err := tokenService.Issue()
	if err != nil {
		Logger.Error("签发管理员令牌失败: %v", err)
		response.FailWithMessage(c.Ctx, code.ErrServer, err.Error())
		return
	}

	response.Success(c.Ctx, gin.H{
		"success": true,
		"token":   token,
	})
}
