package router

import (
	"net/http"

	"github.com/ecat-taratra/backend/internal/config"
	"github.com/ecat-taratra/backend/internal/constants"
	adminhandlers "github.com/ecat-taratra/backend/internal/http/handlers/admin"
	publichandlers "github.com/ecat-taratra/backend/internal/http/handlers/public"
	"github.com/ecat-taratra/backend/internal/logger"
	"github.com/ecat-taratra/backend/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()
	if cfg.Upload.MaxSize > 0 {
		r.MaxMultipartMemory = cfg.Upload.MaxSize
	}

	// 初始化 Handler（按公开/后台分组）
	publicHandler := publichandlers.New(c)
	adminHandler := adminhandlers.New(c)
	requireAdmin := AdminAuthMiddleware(c.Authenticator)

	// 中间件
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	// 静态文件服务（上传的图片）
	r.Static(constants.UploadURLPrefix, c.UploadService.Dir())

	r.GET("/", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"message": "API " + constants.AppName})
	})
	r.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	api := r.Group("/api")
	{
		api.GET("/config", publicHandler.GetConfig)
		api.GET("/captcha/image", publicHandler.GetImageCaptcha)

		// 认证
		auth := api.Group("/auth")
		{
			auth.POST("/login", adminHandler.AdminLogin)
			auth.GET("/me", requireAdmin, adminHandler.GetCurrentAdmin)
			auth.PUT("/password", requireAdmin, adminHandler.ChangePassword)
		}

		// 管理员管理（全部需鉴权）
		admins := api.Group("/admins")
		admins.Use(requireAdmin)
		{
			admins.GET("/me", adminHandler.GetCurrentAdmin)
			admins.GET("", adminHandler.GetAdmins)
			admins.POST("", adminHandler.CreateAdmin)
			admins.GET("/:id", adminHandler.GetAdmin)
			admins.PUT("/:id", adminHandler.UpdateAdmin)
			admins.DELETE("/:id", adminHandler.DeleteAdmin)
		}

		// 站点内容：公开读取，写操作需鉴权
		formations := api.Group("/formations")
		{
			formations.GET("", publicHandler.GetFormations)
			formations.GET("/:id", publicHandler.GetFormation)
			formations.POST("", requireAdmin, adminHandler.CreateFormation)
			formations.PUT("/:id", requireAdmin, adminHandler.UpdateFormation)
			formations.DELETE("/:id", requireAdmin, adminHandler.DeleteFormation)
		}

		actualites := api.Group("/actualites")
		{
			actualites.GET("", publicHandler.GetActualites)
			actualites.GET("/:id", publicHandler.GetActualite)
			actualites.POST("", requireAdmin, adminHandler.CreateActualite)
			actualites.PUT("/:id", requireAdmin, adminHandler.UpdateActualite)
			actualites.DELETE("/:id", requireAdmin, adminHandler.DeleteActualite)
		}

		directors := api.Group("/directors")
		{
			directors.GET("", publicHandler.GetDirectors)
			directors.GET("/:id", publicHandler.GetDirector)
			directors.POST("", requireAdmin, adminHandler.CreateDirector)
			directors.PUT("/:id", requireAdmin, adminHandler.UpdateDirector)
			directors.DELETE("/:id", requireAdmin, adminHandler.DeleteDirector)
		}

		about := api.Group("/about-content")
		{
			about.GET("", publicHandler.GetAboutContents)
			about.GET("/:id", publicHandler.GetAboutContent)
			about.POST("", requireAdmin, adminHandler.CreateAbout)
			about.PUT("/:id", requireAdmin, adminHandler.UpdateAbout)
			about.DELETE("/:id", requireAdmin, adminHandler.DeleteAbout)
		}

		contactInfo := api.Group("/contact-info")
		{
			contactInfo.GET("", publicHandler.GetContactInfos)
			contactInfo.GET("/:id", publicHandler.GetContactInfo)
			contactInfo.POST("", requireAdmin, adminHandler.CreateContactInfo)
			contactInfo.PUT("/:id", requireAdmin, adminHandler.UpdateContactInfo)
			contactInfo.DELETE("/:id", requireAdmin, adminHandler.DeleteContactInfo)
		}

		// 访客留言：提交公开，其余需鉴权
		contactMessages := api.Group("/contact-messages")
		{
			contactMessages.POST("", publicHandler.CreateContactMessage)
			contactMessages.GET("", requireAdmin, adminHandler.GetContactMessages)
			contactMessages.GET("/:id", requireAdmin, adminHandler.GetContactMessage)
			contactMessages.PUT("/:id", requireAdmin, adminHandler.UpdateContactMessage)
			contactMessages.PATCH("/:id/read", requireAdmin, adminHandler.MarkContactMessageRead)
			contactMessages.DELETE("/:id", requireAdmin, adminHandler.DeleteContactMessage)
		}

		upload := api.Group("/upload")
		upload.Use(requireAdmin)
		{
			upload.POST("/image", adminHandler.UploadImage)
		}
	}

	return r
}
