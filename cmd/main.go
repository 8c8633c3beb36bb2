package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"maison_shop_v1_202608/internal/controller"
	"maison_shop_v1_202608/internal/middleware"
	"maison_shop_v1_202608/internal/model"
	"maison_shop_v1_202608/internal/repository"
	"maison_shop_v1_202608/internal/router"
	"maison_shop_v1_202608/internal/service"
	"maison_shop_v1_202608/internal/task"
	"maison_shop_v1_202608/pkg/database"
)

func main() {
	// JWT 密钥从环境变量注入，默认值仅限本地开发
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		cfg := middleware.DefaultJWTConfig()
		cfg.SecretKey = secret
		middleware.SetJWTConfig(cfg)
	}

	// 1. 初始化数据库
	db := initDatabase()

	// 2. 初始化依赖
	deps := initDependencies(db)

	// 3. 启动定时任务
	tasks := initTasks(deps)
	defer tasks.stop()

	// 4. 初始化路由
	r := gin.Default()
	router.InitRoutes(r, deps.Controllers)

	// 5. 启动服务
	startServer(r)
}

// ==================== 依赖容器 ====================

// Dependencies 依赖容器
type Dependencies struct {
	DB          *gorm.DB
	Repos       *Repositories
	Services    *Services
	Controllers router.Controllers
}

// Repositories 仓库集合
type Repositories struct {
	Zone       repository.ZoneRepository
	SizeClass  repository.SizeClassRepository
	Method     repository.ShippingMethodRepository
	RateRule   repository.RateRuleRepository
	Threshold  repository.ThresholdRepository
	Option     repository.ShippingOptionRepository
	RateConfig repository.RateConfigRepository
	User       repository.UserRepository
}

// Services 服务集合
type Services struct {
	Rate   *service.RateService
	Config *service.ShippingConfigService
	Auth   *service.AuthService
}

// ==================== 初始化函数 ====================

// initDatabase 初始化数据库
func initDatabase() *gorm.DB {
	dsn := getEnv("DATABASE_DSN", fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_USER", "postgres"),
		getEnv("DB_PASSWORD", "postgres"),
		getEnv("DB_NAME", "maison_shop"),
		getEnv("DB_PORT", "5432"),
	))

	db := database.InitDB(dsn,
		// Manager
		&model.SysUser{},
		// Shipping Config
		&model.Zone{}, &model.ZoneCountry{}, &model.SizeClass{},
		&model.ShippingMethod{}, &model.RateRule{},
		&model.FreeShippingThreshold{},
		&model.ShippingOption{}, &model.OptionPrice{},
	)

	// 审计回调：配置变更自动写 CreatedBy/UpdatedBy
	middleware.RegisterAuditCallbacks(db)

	return db
}

// initDependencies 初始化所有依赖
func initDependencies(db *gorm.DB) *Dependencies {
	// -------- Repo 层 --------
	repos := initRepositories(db)

	// -------- 业务服务 --------
	rateSvc := service.NewRateService(repos.RateConfig)
	configSvc := service.NewShippingConfigService(
		repos.Zone, repos.SizeClass, repos.Method,
		repos.RateRule, repos.Threshold, repos.Option,
		rateSvc,
	)
	authSvc := service.NewAuthService(repos.User)

	services := &Services{
		Rate:   rateSvc,
		Config: configSvc,
		Auth:   authSvc,
	}

	// -------- 初始数据 --------
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// 三个附加服务代码是固定的，建表后补齐
	if err := repos.Option.EnsureDefaults(ctx); err != nil {
		log.Fatalf("初始化附加服务失败: %v", err)
	}
	if err := authSvc.EnsureDefaultAdmin(ctx,
		getEnv("ADMIN_USERNAME", "admin"),
		getEnv("ADMIN_PASSWORD", "admin123"),
	); err != nil {
		log.Fatalf("初始化管理员账号失败: %v", err)
	}

	// -------- Controller 层 --------
	controllers := router.Controllers{
		RateCtl:   controller.NewRateController(rateSvc),
		ConfigCtl: controller.NewShippingConfigController(configSvc, rateSvc),
		AuthCtl:   controller.NewAuthController(authSvc),
	}

	return &Dependencies{
		DB:          db,
		Repos:       repos,
		Services:    services,
		Controllers: controllers,
	}
}

// initRepositories 初始化所有仓库
func initRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Zone:       repository.NewZoneRepository(db),
		SizeClass:  repository.NewSizeClassRepository(db),
		Method:     repository.NewShippingMethodRepository(db),
		RateRule:   repository.NewRateRuleRepository(db),
		Threshold:  repository.NewThresholdRepository(db),
		Option:     repository.NewShippingOptionRepository(db),
		RateConfig: repository.NewRateConfigRepository(db),
		User:       repository.NewUserRepository(db),
	}
}

// ==================== 定时任务 ====================

type runningTasks struct {
	snapshot *task.SnapshotTask
	coverage *task.CoverageAuditTask
}

func (t *runningTasks) stop() {
	if t.snapshot != nil {
		t.snapshot.Stop()
	}
	if t.coverage != nil {
		t.coverage.Stop()
	}
}

// initTasks 初始化定时任务
func initTasks(deps *Dependencies) *runningTasks {
	// 配置快照刷新
	snapshotTask := task.NewSnapshotTask(deps.Services.Rate)
	snapshotTask.Start()

	// 费率覆盖审计
	coverageTask := task.NewCoverageAuditTask(deps.Services.Config)
	coverageTask.Start()

	log.Println("定时任务已启动")
	return &runningTasks{snapshot: snapshotTask, coverage: coverageTask}
}

// ==================== 服务启动 ====================

// startServer 启动服务
func startServer(r *gin.Engine) {
	port := getEnv("SERVER_PORT", "8080")

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	// 异步启动服务
	go func() {
		log.Printf("服务启动在 :%s", port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("服务启动失败: %v", err)
		}
	}()

	// 等待退出信号
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("正在关闭服务...")

	// 优雅关闭，最多等待 30 秒
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("服务强制关闭: %v", err)
	}

	log.Println("服务已退出")
}

// ==================== 工具函数 ====================

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
