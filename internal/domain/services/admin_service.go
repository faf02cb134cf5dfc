package services

import (
	"errors"

	"gorm.io/gorm"

	"techblaze-registration-service/internal/domain/models"
	"techblaze-registration-service/internal/infrastructure/config"
	"techblaze-registration-service/utils"
)

// InterfaceAdminService Admin服务接口
type InterfaceAdminService interface {
	GetAdminByUsername(username string) (*models.Admin, error)
	CheckPassword(password, hash string) bool
	EnsureDefaultAdmin() error
}

// AdminService 提供管理员账户相关的服务
type AdminService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewAdminService 创建一个新的管理员服务
func NewAdminService(db *gorm.DB, cfg *config.Config) InterfaceAdminService {
	return &AdminService{
		DB:     db,
		Config: cfg,
	}
}

// 1 GetAdminByUsername 根据用户名获取管理员
func (s *AdminService) GetAdminByUsername(username string) (*models.Admin, error) {
	var admin models.Admin
	if err := s.DB.Where("username = ?", username).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("管理员不存在")
		}
		return nil, err
	}
	return &admin, nil
}

// 2 CheckPassword 验证密码是否匹配
func (s *AdminService) CheckPassword(password, hash string) bool {
	return utils.CheckPasswordHash(password, hash)
}

// 3 EnsureDefaultAdmin 确保系统中至少有一个管理员账户。
// 没有管理员时，用配置中的凭据（可由环境变量覆盖）创建默认账户。
func (s *AdminService) EnsureDefaultAdmin() error {
	var count int64
	if err := s.DB.Model(&models.Admin{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashed, err := utils.HashPassword(s.Config.AdminPassword)
	if err != nil {
		return err
	}

	admin := models.Admin{
		Username: s.Config.AdminUsername,
		Password: hashed,
	}
	return s.DB.Create(&admin).Error
}
