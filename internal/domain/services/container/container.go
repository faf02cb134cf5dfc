package container

import (
	"sync"

	"gorm.io/gorm"

	"techblaze-registration-service/internal/domain/services"
	"techblaze-registration-service/internal/infrastructure/config"
)

// ServiceContainer 管理所有服务的依赖注入
type ServiceContainer struct {
	db     *gorm.DB
	config *config.Config

	// 基础服务
	tokenService services.InterfaceTokenService

	// 业务服务
	adminService        services.InterfaceAdminService
	registrationService services.InterfaceRegistrationService
	exportService       services.InterfaceExportService

	mu sync.RWMutex
}

// NewServiceContainer 创建新的服务容器
func NewServiceContainer(db *gorm.DB, cfg *config.Config) *ServiceContainer {
	if db == nil {
		panic("数据库连接为空")
	}

	if cfg == nil {
		panic("配置为空")
	}

	container := &ServiceContainer{
		db:     db,
		config: cfg,
	}
	container.initializeServices()
	return container
}

// initializeServices 初始化所有服务
func (c *ServiceContainer) initializeServices() {
	c.mu.Lock()
	defer c.mu.Unlock()

	// 初始化基础服务
	c.tokenService = services.NewTokenService(c.config)

	// 初始化业务服务
	c.adminService = services.NewAdminService(c.db, c.config)
	c.registrationService = services.NewRegistrationService(c.db, c.config)
	c.exportService = services.NewExportService(c.registrationService)
}

// GetService 获取指定名称的服务
func (c *ServiceContainer) GetService(name string) interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	switch name {
	case "config":
		return c.config
	case "db":
		return c.db
	case "token":
		return c.tokenService
	case "admin":
		return c.adminService
	case "registration":
		return c.registrationService
	case "export":
		return c.exportService
	default:
		return nil
	}
}

// GetDB 获取数据库连接
func (c *ServiceContainer) GetDB() *gorm.DB {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.db
}

// GetConfig 获取配置
func (c *ServiceContainer) GetConfig() *config.Config {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.config
}
