package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"techblaze-registration-service/internal/domain/services"
	"techblaze-registration-service/internal/domain/services/container"
	"techblaze-registration-service/internal/error/code"
	"techblaze-registration-service/internal/error/response"
	Logger "techblaze-registration-service/pkg/logger"
)

// InterfaceRegistrationController 定义报名控制器接口
type InterfaceRegistrationController interface {
	Register()
}

// RegistrationController 处理报名请求
type RegistrationController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewRegistrationController 创建一个新的报名控制器
func NewRegistrationController(ctx *gin.Context, container *container.ServiceContainer) *RegistrationController {
	return &RegistrationController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleRegistrationFunc 返回一个处理报名请求的Gin处理函数
func HandleRegistrationFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewRegistrationController(ctx, container)

		switch method {
		case "register":
			controller.Register()
		default:
			response.Fail(ctx, code.ErrServer)
		}
	}
}

// Register 处理报名提交
// @Summary      Submit Registration
// @Description  Validate and persist a team registration, returning the assigned ref_id
// @Tags         Registration
// @Accept       json
// @Produce      json
// @Param        request body services.RegistrationInput true "Registration fields"
// @Success      200  {object}  map[string]interface{}  "Confirmation payload"
// @Failure      400  {object}  map[string]interface{}  "missing_fields | invalid_phone | invalid_email"
// @Failure      409  {object}  map[string]interface{}  "duplicate"
// @Failure      500  {object}  map[string]interface{}  "server_error"
// @Router       /register [post]
func (c *RegistrationController) Register() {
	var input services.RegistrationInput
	if err := c.Ctx.ShouldBindJSON(&input); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrServer, err.Error())
		return
	}

	registrationService := c.Container.GetService("registration").(services.InterfaceRegistrationService)
	confirmation, err := registrationService.Register(&input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingFields):
			response.Fail(c.Ctx, code.ErrMissingFields)
		case errors.Is(err, services.ErrInvalidPhone):
			response.Fail(c.Ctx, code.ErrInvalidPhone)
		case errors.Is(err, services.ErrInvalidEmail):
			response.Fail(c.Ctx, code.ErrInvalidEmail)
		case errors.Is(err, services.ErrDuplicate):
			response.Fail(c.Ctx, code.ErrDuplicate)
		default:
			Logger.Error("报名入库失败: %v", err)
			response.FailWithMessage(c.Ctx, code.ErrServer, err.Error())
		}
		return
	}

	response.Success(c.Ctx, gin.H{
		"success":   true,
		"ref_id":    confirmation.RefID,
		"team":      confirmation.Team,
		"leader":    confirmation.Leader,
		"email":     confirmation.Email,
		"team_size": confirmation.TeamSize,
		"college":   confirmation.College,
	})
}
