// @title           TechBlaze Registration Service API
// @version         1.0
// @description     Event registration backend for the Tech Blaze 3.0 college tech-fest
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.email  support@techblaze.example.com

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8080
// @BasePath  /api

// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Enter the token with the `Bearer: ` prefix
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"techblaze-registration-service/internal/app/routes"
	"techblaze-registration-service/internal/domain/models"
	"techblaze-registration-service/internal/domain/services"
	"techblaze-registration-service/internal/infrastructure/config"
	"techblaze-registration-service/internal/infrastructure/database"
	Logger "techblaze-registration-service/pkg/logger"
)

func main() {
	// 初始化日志配置
	if err := Logger.SetupLogger(); err != nil {
		fmt.Printf("初始化日志配置失败: %v\n", err)
		os.Exit(1)
	}

	// 加载.env文件
	if err := godotenv.Load(); err != nil {
		Logger.Warning("无法加载.env文件: %v", err)
		// 即使加载失败也继续执行，可能环境变量已经通过其他方式设置
	} else {
		Logger.Info("成功加载.env文件")
	}

	// 获取配置
	cfg := config.GetConfig()

	// 连接数据库
	pool, err := database.NewConnectionPool(cfg)
	if err != nil {
		Logger.Error("无法连接数据库: %v", err)
		os.Exit(1)
	}
	defer pool.Close()
	db := pool.GetDB()

	// 迁移表结构（只添加新列和新表）
	if err := autoMigrate(db); err != nil {
		Logger.Error("自动迁移失败: %v", err)
		os.Exit(1)
	}

	// 确保系统中有管理员账户
	adminService := services.NewAdminService(db, cfg)
	if err := adminService.EnsureDefaultAdmin(); err != nil {
		Logger.Error("创建默认管理员失败: %v", err)
		os.Exit(1)
	}

	// 初始化路由
	r := routes.SetupRouter(db, cfg)

	// 启动服务器
	Logger.Info("服务器启动在: http://localhost:%s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		Logger.Error("启动服务器失败: %v", err)
		os.Exit(1)
	}
}

// autoMigrate 自动迁移所有模型
func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Registration{},
		&models.Admin{},
	)
}
