package services

import (
	"strings"
	"time"

	"techblaze-registration-service/internal/domain/models"
)

// 导出用配色，与前端主题一致
const (
	exportPurple      = "6C63FF"
	exportHeaderBg    = "2C2A4A"
	exportPurpleLight = "EEF0FF"
	exportGreen       = "27AE60"
	exportOrange      = "E67E22"
	exportAltRow      = "F9F8FF"
)

const exportTitle = "⚡ Tech Blaze 3.0 — Participant Registrations"

// InterfaceExportService 导出服务接口。
// 三种格式消费同一份数据：按ID正序的全部报名记录 + 按队伍口径的统计。
type InterfaceExportService interface {
	BuildCSV() ([]byte, error)
	BuildXLSX() ([]byte, error)
	BuildDOCX() ([]byte, error)
	Filename(ext string) string
}

// ExportService 提供报名数据的文件导出
type ExportService struct {
	Registrations InterfaceRegistrationService
}

// NewExportService 创建一个新的导出服务
func NewExportService(registrations InterfaceRegistrationService) InterfaceExportService {
	return &ExportService{
		Registrations: registrations,
	}
}

// Filename 生成带时间戳的导出文件名，时间戳中的冒号和点替换为连字符
func (s *ExportService) Filename(ext string) string {
	stamp := strings.ReplaceAll(time.Now().UTC().Format("2006-01-02T15:04:05"), ":", "-")
	return "techblaze3_" + stamp + "." + ext
}

// csvColumns CSV的固定表头
var csvColumns = []string{
	"Ref ID", "Team", "College", "Size",
	"P1 Name", "P1 Phone", "P1 Email", "P1 Food",
	"P2 Name", "P2 Phone", "P2 Email", "P2 Food",
	"P3 Name", "P3 Phone", "P3 Email", "P3 Food",
	"P4 Name", "P4 Phone", "P4 Email", "P4 Food",
	"Medical", "Registered At",
}

// sheetColumns 表格型导出（XLSX/DOCX）的表头
var sheetColumns = []string{
	"Ref ID", "Team Name", "College", "Size",
	"P1 Name", "P1 Phone", "P1 Email", "P1 Food",
	"P2 Name", "P2 Phone", "P2 Email", "P2 Food",
	"P3 Name", "P3 Phone", "P3 Email", "P3 Food",
	"P4 Name", "P4 Phone", "P4 Email", "P4 Food",
	"Medical Notes", "Registered At",
}

// foodColumns 表格中餐食偏好所在的列（1起）
var foodColumns = map[int]bool{8: true, 12: true, 16: true, 20: true}

// rowValues 将一条报名记录展平为与表头对应的字符串切片。
// 缺省的可选字段输出为空字符串，由各格式自行决定占位展示。
func rowValues(r *models.Registration, sizeStr, timeStr string) []string {
	out := make([]string, 0, len(sheetColumns))
	out = append(out, r.RefIDString(), r.Team, r.College, sizeStr)
	for _, p := range r.Participants() {
		out = append(out, p.Name, p.Phone, p.Email, p.Food)
	}
	out = append(out, derefOr(r.Medical, ""), timeStr)
	return out
}

// formatExportTime 报名时间在表格型导出中的展示格式
func formatExportTime(t time.Time) string {
	return t.Format("02/01/2006, 15:04:05")
}

func derefOr(s *string, fallback string) string {
	if s == nil {
		return fallback
	}
	return *s
}
