package controllers

import (
	"github.com/gin-gonic/gin"

	"techblaze-registration-service/internal/domain/services"
	"techblaze-registration-service/internal/domain/services/container"
	"techblaze-registration-service/internal/error/code"
	"techblaze-registration-service/internal/error/response"
	Logger "techblaze-registration-service/pkg/logger"
)

// InterfaceAdminController 定义管理端数据控制器接口
type InterfaceAdminController interface {
	GetAdminData()
}

// AdminController 管理端数据控制器
type AdminController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewAdminController 创建一个新的管理端数据控制器
func NewAdminController(ctx *gin.Context, container *container.ServiceContainer) *AdminController {
	return &AdminController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleAdminFunc 返回一个处理管理端数据请求的Gin处理函数
func HandleAdminFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewAdminController(ctx, container)

		switch method {
		case "getAdminData":
			controller.GetAdminData()
		default:
			response.Fail(ctx, code.ErrServer)
		}
	}
}

// GetAdminData 获取统计数据和报名列表
// @Summary      Admin Data
// @Description  Aggregate stats plus registrations, optionally filtered by a search term
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        q query string false "Case-insensitive search over team/college/leader/ref_id"
// @Success      200  {object}  map[string]interface{}  "{stats, rows}"
// @Failure      401  {object}  map[string]interface{}  "unauthorized"
// @Failure      500  {object}  map[string]interface{}  "db_error"
// @Router       /admin-data [get]
// @Security     BearerAuth
func (c *AdminController) GetAdminData() {
	q := c.Ctx.Query("q")

	registrationService := c.Container.GetService("registration").(services.InterfaceRegistrationService)

	// 管理端列表使用按槽位累计的统计口径
	stats, err := registrationService.StatsPerSlot()
	if err != nil {
		Logger.Error("统计报名数据失败: %v", err)
		response.FailWithMessage(c.Ctx, code.ErrDatabase, err.Error())
		return
	}

	rows, err := registrationService.List(q)
	if err != nil {
		Logger.Error("查询报名列表失败: %v", err)
		response.FailWithMessage(c.Ctx, code.ErrDatabase, err.Error())
		return
	}

	response.Success(c.Ctx, gin.H{
		"stats": stats,
		"rows":  rows,
	})
}
