package provider

import (
	"fmt"
	"time"

	"github.com/ecat-taratra/backend/internal/auth"
	"github.com/ecat-taratra/backend/internal/cache"
	"github.com/ecat-taratra/backend/internal/config"
	"github.com/ecat-taratra/backend/internal/logger"
	"github.com/ecat-taratra/backend/internal/models"
	"github.com/ecat-taratra/backend/internal/queue"
	"github.com/ecat-taratra/backend/internal/repository"
	"github.com/ecat-taratra/backend/internal/service"

	"gorm.io/gorm"
)

// Container 依赖注入容器
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client

	// Repositories
	AdminRepo          repository.AdminRepository
	FormationRepo      repository.FormationRepository
	ActualiteRepo      repository.ActualiteRepository
	DirectorRepo       repository.DirectorRepository
	AboutRepo          repository.AboutRepository
	ContactInfoRepo    repository.ContactInfoRepository
	ContactMessageRepo repository.ContactMessageRepository

	// Auth core
	PasswordHasher *auth.PasswordHasher
	TokenCodec     *auth.TokenCodec
	AdminDirectory *service.AdminDirectory
	Authenticator  *auth.Authenticator

	// Services
	AuthService           *service.AuthService
	AdminService          *service.AdminService
	EmailService          *service.EmailService
	CaptchaService        *service.CaptchaService
	UploadService         *service.UploadService
	FormationService      *service.FormationService
	ActualiteService      *service.ActualiteService
	DirectorService       *service.DirectorService
	AboutService          *service.AboutService
	ContactInfoService    *service.ContactInfoService
	ContactMessageService *service.ContactMessageService
}

// NewContainer 使用全局数据库初始化容器
func NewContainer(cfg *config.Config) (*Container, error) {
	return NewContainerWithDB(cfg, models.DB)
}

// NewContainerWithDB 使用指定数据库初始化容器
func NewContainerWithDB(cfg *config.Config, db *gorm.DB) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is nil")
	}
	if db == nil {
		return nil, fmt.Errorf("database is not initialized")
	}

	// 初始化缓存
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	// 初始化队列客户端，未启用时为空实现
	queueClient, err := queue.NewClient(&cfg.Queue)
	if err != nil {
		logger.Errorw("provider_init_queue_client_failed", "error", err)
		queueClient, _ = queue.NewClient(nil)
	}

	c := &Container{
		Config:      cfg,
		QueueClient: queueClient,
	}

	// 1. 初始化 Repositories
	c.initRepositories(db)

	// 2. 初始化认证核心
	if err := c.initAuth(); err != nil {
		return nil, err
	}

	// 3. 初始化 Services
	c.initServices()

	return c, nil
}

func (c *Container) initRepositories(db *gorm.DB) {
	c.AdminRepo = repository.NewAdminRepository(db)
	c.FormationRepo = repository.NewFormationRepository(db)
	c.ActualiteRepo = repository.NewActualiteRepository(db)
	c.DirectorRepo = repository.NewDirectorRepository(db)
	c.AboutRepo = repository.NewAboutRepository(db)
	c.ContactInfoRepo = repository.NewContactInfoRepository(db)
	c.ContactMessageRepo = repository.NewContactMessageRepository(db)
}

func (c *Container) initAuth() error {
	codec, err := auth.NewTokenCodec(c.Config.JWT.SecretKey, time.Now)
	if err != nil {
		return fmt.Errorf("init token codec: %w", err)
	}
	c.PasswordHasher = auth.NewPasswordHasher(c.Config.Security.BcryptCost)
	c.TokenCodec = codec
	c.AdminDirectory = service.NewAdminDirectory(c.AdminRepo)
	c.Authenticator = auth.NewAuthenticator(c.AdminDirectory, c.PasswordHasher, c.TokenCodec)
	return nil
}

func (c *Container) initServices() {
	c.EmailService = service.NewEmailService(&c.Config.Email)
	c.CaptchaService = service.NewCaptchaService(c.Config.Captcha)
	c.UploadService = service.NewUploadService(&c.Config.Upload)
	c.AuthService = service.NewAuthService(c.Authenticator, c.PasswordHasher, c.AdminRepo)
	c.AdminService = service.NewAdminService(c.AdminRepo, c.PasswordHasher)
	c.FormationService = service.NewFormationService(c.FormationRepo)
	c.ActualiteService = service.NewActualiteService(c.ActualiteRepo)
	c.DirectorService = service.NewDirectorService(c.DirectorRepo)
	c.AboutService = service.NewAboutService(c.AboutRepo)
	c.ContactInfoService = service.NewContactInfoService(c.ContactInfoRepo)
	c.ContactMessageService = service.NewContactMessageService(c.ContactMessageRepo, c.ContactInfoRepo, c.QueueClient, c.EmailService)
}

// Close 释放外部连接
func (c *Container) Close() {
	if c == nil {
		return
	}
	if err := c.QueueClient.Close(); err != nil {
		logger.Warnw("provider_close_queue_client_failed", "error", err)
	}
	if err := cache.Close(); err != nil {
		logger.Warnw("provider_close_redis_failed", "error", err)
	}
}
