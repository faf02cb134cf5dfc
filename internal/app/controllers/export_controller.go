package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"techblaze-registration-service/internal/domain/services"
	"techblaze-registration-service/internal/domain/services/container"
	"techblaze-registration-service/internal/error/code"
	"techblaze-registration-service/internal/error/response"
	Logger "techblaze-registration-service/pkg/logger"
)

// 各导出格式的MIME类型
const (
	mimeCSV  = "text/csv; charset=utf-8"
	mimeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	mimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// InterfaceExportController 定义导出控制器接口
type InterfaceExportController interface {
	ExportCSV()
	ExportXLSX()
	ExportDOCX()
}

// ExportController 处理数据导出请求
type ExportController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewExportController 创建一个新的导出控制器
func NewExportController(ctx *gin.Context, container *container.ServiceContainer) *ExportController {
	return &ExportController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleExportFunc 返回一个处理导出请求的Gin处理函数
func HandleExportFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewExportController(ctx, container)

		switch method {
		case "exportCSV":
			controller.ExportCSV()
		case "exportXLSX":
			controller.ExportXLSX()
		case "exportDOCX":
			controller.ExportDOCX()
		default:
			response.Fail(ctx, code.ErrServer)
		}
	}
}

// ExportCSV 导出CSV
// @Summary      Export CSV
// @Description  Download all registrations as a CSV attachment
// @Tags         Export
// @Produce      text/csv
// @Success      200  {file}    file
// @Failure      401  {object}  map[string]interface{}  "unauthorized"
// @Failure      500  {object}  map[string]interface{}  "db_error"
// @Router       /export-csv [get]
// @Security     BearerAuth
func (c *ExportController) ExportCSV() {
	c.serve("csv", mimeCSV, func(s services.InterfaceExportService) ([]byte, error) {
		return s.BuildCSV()
	})
}

// ExportXLSX 导出XLSX
// @Summary      Export XLSX
// @Description  Download all registrations as a styled two-sheet workbook
// @Tags         Export
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}    file
// @Failure      401  {object}  map[string]interface{}  "unauthorized"
// @Failure      500  {object}  map[string]interface{}  "db_error"
// @Router       /export-xlsx [get]
// @Security     BearerAuth
func (c *ExportController) ExportXLSX() {
	c.serve("xlsx", mimeXLSX, func(s services.InterfaceExportService) ([]byte, error) {
		return s.BuildXLSX()
	})
}

// ExportDOCX 导出DOCX
// @Summary      Export DOCX
// @Description  Download all registrations as a styled word-processing document
// @Tags         Export
// @Produce      application/vnd.openxmlformats-officedocument.wordprocessingml.document
// @Success      200  {file}    file
// @Failure      401  {object}  map[string]interface{}  "unauthorized"
// @Failure      500  {object}  map[string]interface{}  "db_error"
// @Router       /export-docx [get]
// @Security     BearerAuth
func (c *ExportController) ExportDOCX() {
	c.serve("docx", mimeDOCX, func(s services.InterfaceExportService) ([]byte, error) {
		return s.BuildDOCX()
	})
}

// serve 构建导出内容并以附件形式返回
func (c *ExportController) serve(ext, mime string, build func(services.InterfaceExportService) ([]byte, error)) {
	exportService := c.Container.GetService("export").(services.InterfaceExportService)

	data, err := build(exportService)
	if err != nil {
		Logger.Error("构建%s导出失败: %v", ext, err)
		response.FailWithMessage(c.Ctx, code.ErrDatabase, err.Error())
		return
	}

	filename := exportService.Filename(ext)
	c.Ctx.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Ctx.Data(http.StatusOK, mime, data)
}
