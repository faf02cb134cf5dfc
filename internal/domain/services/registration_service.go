package services

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gorm.io/gorm"

	"techblaze-registration-service/internal/domain/models"
	"techblaze-registration-service/internal/infrastructure/config"
	"techblaze-registration-service/utils"
)

// 校验失败的错误种类，控制器据此映射到协议错误码
var (
	ErrMissingFields = errors.New("missing_fields")
	ErrInvalidPhone  = errors.New("invalid_phone")
	ErrInvalidEmail  = errors.New("invalid_email")
	ErrDuplicate     = errors.New("duplicate")
)

// RegistrationInput 报名请求的原始字段，未经清洗
type RegistrationInput struct {
	Team     string      `json:"team"`
	College  string      `json:"college"`
	TeamSize interface{} `json:"team_size"` // 前端可能传数字或字符串
	Medical  string      `json:"medical"`

	P1      string `json:"p1"`
	P1Phone string `json:"p1_phone"`
	P1Email string `json:"p1_email"`
	P1Food  string `json:"p1_food"`

	P2      string `json:"p2"`
	P2Phone string `json:"p2_phone"`
	P2Email string `json:"p2_email"`
	P2Food  string `json:"p2_food"`

	P3      string `json:"p3"`
	P3Phone string `json:"p3_phone"`
	P3Email string `json:"p3_email"`
	P3Food  string `json:"p3_food"`

	P4      string `json:"p4"`
	P4Phone string `json:"p4_phone"`
	P4Email string `json:"p4_email"`
	P4Food  string `json:"p4_food"`
}

// RegistrationConfirmation 报名成功后的确认数据
type RegistrationConfirmation struct {
	RefID    string `json:"ref_id"`
	Team     string `json:"team"`
	Leader   string `json:"leader"`
	Email    string `json:"email"`
	TeamSize int    `json:"team_size"`
	College  string `json:"college"`
}

// RegistrationStats 报名统计数据。
// 注意：管理端列表和导出使用两种不同的荤素统计口径，见下方两个方法。
type RegistrationStats struct {
	TotalTeams   int64 `json:"total_teams"`
	TotalMembers int64 `json:"total_members"`
	Veg          int64 `json:"veg"`
	Nonveg       int64 `json:"nonveg"`
}

// InterfaceRegistrationService 报名服务接口
type InterfaceRegistrationService interface {
	EnsureSchema() error
	Register(input *RegistrationInput) (*RegistrationConfirmation, error)
	FindDuplicate(phone, email string) (bool, error)
	List(search string) ([]models.Registration, error)
	ListForExport() ([]models.Registration, error)
	StatsPerSlot() (*RegistrationStats, error)
	StatsPerTeam() (*RegistrationStats, error)
}

// RegistrationService 提供报名相关的服务
type RegistrationService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewRegistrationService 创建一个新的报名服务
func NewRegistrationService(db *gorm.DB, cfg *config.Config) InterfaceRegistrationService {
	return &RegistrationService{
		DB:     db,
		Config: cfg,
	}
}

// 1 EnsureSchema 确保报名表存在（幂等）
func (s *RegistrationService) EnsureSchema() error {
	return s.DB.AutoMigrate(&models.Registration{})
}

// 2 Register 处理一次报名提交：
// 清洗 → 校验 → 查重 → 建表 → 插入 → 回填ref_id → 返回确认数据。
// 回填ref_id失败时不回滚已插入的行，该不一致是接受的（行存在但无编号）。
func (s *RegistrationService) Register(input *RegistrationInput) (*RegistrationConfirmation, error) {
	team := utils.Clean(input.Team)
	college := utils.Clean(input.College)
	teamSize := parseTeamSize(input.TeamSize)
	medical := utils.Clean(input.Medical)

	p1 := utils.Clean(input.P1)
	p1Phone := utils.Clean(input.P1Phone)
	p1Email := strings.ToLower(utils.Clean(input.P1Email))
	p1Food := utils.Clean(input.P1Food)

	type optionalSlot struct {
		name  string
		phone string
		email string
		food  string
	}
	optionals := []optionalSlot{
		{utils.Clean(input.P2), utils.Clean(input.P2Phone), strings.ToLower(utils.Clean(input.P2Email)), utils.Clean(input.P2Food)},
		{utils.Clean(input.P3), utils.Clean(input.P3Phone), strings.ToLower(utils.Clean(input.P3Email)), utils.Clean(input.P3Food)},
		{utils.Clean(input.P4), utils.Clean(input.P4Phone), strings.ToLower(utils.Clean(input.P4Email)), utils.Clean(input.P4Food)},
	}

	// 必填字段：队名、学校、1号位姓名/手机号/邮箱/餐食偏好
	if team == "" || college == "" || p1 == "" || p1Phone == "" || p1Email == "" || p1Food == "" {
		return nil, ErrMissingFields
	}

	if !utils.IsValidPhone(p1Phone) {
		return nil, ErrInvalidPhone
	}

	if !utils.IsValidEmail(p1Email) {
		return nil, ErrInvalidEmail
	}

	// 可选槽位：填了哪个字段就校验哪个字段，先手机号后邮箱
	for _, m := range optionals {
		if m.phone != "" && !utils.IsValidPhone(m.phone) {
			return nil, ErrInvalidPhone
		}
		if m.email != "" && !utils.IsValidEmail(m.email) {
			return nil, ErrInvalidEmail
		}
	}

	if err := s.EnsureSchema(); err != nil {
		return nil, err
	}

	dup, err := s.FindDuplicate(p1Phone, p1Email)
	if err != nil {
		return nil, err
	}
	if dup {
		return nil, ErrDuplicate
	}

	reg := models.Registration{
		Team:     team,
		College:  college,
		TeamSize: teamSize,
		P1:       p1,
		P1Phone:  p1Phone,
		P1Email:  p1Email,
		P1Food:   p1Food,
		P2:       nullable(optionals[0].name),
		P2Phone:  nullable(optionals[0].phone),
		P2Email:  nullable(optionals[0].email),
		P2Food:   nullable(optionals[0].food),
		P3:       nullable(optionals[1].name),
		P3Phone:  nullable(optionals[1].phone),
		P3Email:  nullable(optionals[1].email),
		P3Food:   nullable(optionals[1].food),
		P4:       nullable(optionals[2].name),
		P4Phone:  nullable(optionals[2].phone),
		P4Email:  nullable(optionals[2].email),
		P4Food:   nullable(optionals[2].food),
		Medical:  nullable(medical),
	}

	if err := s.DB.Create(&reg).Error; err != nil {
		return nil, err
	}

	// ref_id 依赖数据库分配的自增ID，插入后回填
	refID := fmt.Sprintf("TB3-%04d", reg.ID)
	if err := s.DB.Model(&models.Registration{}).Where("id = ?", reg.ID).
		Update("ref_id", refID).Error; err != nil {
		return nil, err
	}

	return &RegistrationConfirmation{
		RefID:    refID,
		Team:     team,
		Leader:   p1,
		Email:    p1Email,
		TeamSize: teamSize,
		College:  college,
	}, nil
}

// 3 FindDuplicate 查重：1号位手机号或邮箱任一命中即视为重复
func (s *RegistrationService) FindDuplicate(phone, email string) (bool, error) {
	var count int64
	err := s.DB.Model(&models.Registration{}).
		Where("p1_phone = ? OR p1_email = ?", phone, email).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// 4 List 获取报名列表，支持大小写不敏感的子串搜索
// （匹配队名/学校/1号位姓名/报名编号），按ID倒序。
func (s *RegistrationService) List(search string) ([]models.Registration, error) {
	var rows []models.Registration

	query := s.DB.Model(&models.Registration{})
	if search != "" {
		like := "%" + strings.ToLower(search) + "%"
		query = query.Where(
			"LOWER(team) LIKE ? OR LOWER(college) LIKE ? OR LOWER(p1) LIKE ? OR LOWER(ref_id) LIKE ?",
			like, like, like, like,
		)
	}

	if err := query.Order("id DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// 5 ListForExport 获取全部报名记录，按ID正序（与提交顺序一致）
func (s *RegistrationService) ListForExport() ([]models.Registration, error) {
	var rows []models.Registration
	if err := s.DB.Model(&models.Registration{}).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// 6 StatsPerSlot 管理端列表的统计口径：
// veg/nonveg 按成员槽位逐个累计，一行最多贡献4次。
func (s *RegistrationService) StatsPerSlot() (*RegistrationStats, error) {
	var stats RegistrationStats
	err := s.DB.Model(&models.Registration{}).Select(`
		COUNT(*) AS total_teams,
		COALESCE(SUM(team_size), 0) AS total_members,
		COALESCE(SUM(
			(CASE WHEN p1_food = 'Vegetarian' THEN 1 ELSE 0 END) +
			(CASE WHEN p2_food = 'Vegetarian' THEN 1 ELSE 0 END) +
			(CASE WHEN p3_food = 'Vegetarian' THEN 1 ELSE 0 END) +
			(CASE WHEN p4_food = 'Vegetarian' THEN 1 ELSE 0 END)
		), 0) AS veg,
		COALESCE(SUM(
			(CASE WHEN p1_food = 'Non-Vegetarian' THEN 1 ELSE 0 END) +
			(CASE WHEN p2_food = 'Non-Vegetarian' THEN 1 ELSE 0 END) +
			(CASE WHEN p3_food = 'Non-Vegetarian' THEN 1 ELSE 0 END) +
			(CASE WHEN p4_food = 'Non-Vegetarian' THEN 1 ELSE 0 END)
		), 0) AS nonveg`).
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// 7 StatsPerTeam 导出的统计口径：
// 任一槽位命中某类餐食，该行计1次。
// 与 StatsPerSlot 的口径在同一数据集上结果可以不同，这是沿用的历史行为，
// 两个口径各自服务各自的端点，不做统一。
func (s *RegistrationService) StatsPerTeam() (*RegistrationStats, error) {
	var stats RegistrationStats
	err := s.DB.Model(&models.Registration{}).Select(`
		COUNT(*) AS total_teams,
		COALESCE(SUM(team_size), 0) AS total_members,
		COALESCE(SUM(CASE WHEN p1_food = 'Vegetarian' OR p2_food = 'Vegetarian'
			OR p3_food = 'Vegetarian' OR p4_food = 'Vegetarian' THEN 1 ELSE 0 END), 0) AS veg,
		COALESCE(SUM(CASE WHEN p1_food = 'Non-Vegetarian' OR p2_food = 'Non-Vegetarian'
			OR p3_food = 'Non-Vegetarian' OR p4_food = 'Non-Vegetarian' THEN 1 ELSE 0 END), 0) AS nonveg`).
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// nullable 空字符串入库为NULL而不是''
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// parseTeamSize 解析队伍人数，非法或缺省时取1
func parseTeamSize(v interface{}) int {
	switch n := v.(type) {
	case float64:
		if int(n) > 0 {
			return int(n)
		}
	case string:
		if parsed, err := strconv.Atoi(strings.TrimSpace(n)); err == nil && parsed > 0 {
			return parsed
		}
	case int:
		if n > 0 {
			return n
		}
	}
	return 1
}
