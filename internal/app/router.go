package app

import (
	"ujikom_backend/docs"
	"ujikom_backend/internal/config"
	"ujikom_backend/internal/middleware"
	"ujikom_backend/internal/model"
	"ujikom_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// Public routes.
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/auth/login", c.auth.Login)
		public.GET("/masterdata/logo", c.masterData.GetLogo)
	}

	// Routes for any authenticated account.
	authed := router.Group("/api")
	authed.Use(middleware.AuthMiddleware(cfg))
	{
		authed.GET("/auth/me", c.auth.Me)
		authed.GET("/masterdata", c.masterData.ListAll)
	}

	// Participant-only routes: taking the written exam.
	exam := router.Group("/api/exam")
	exam.Use(middleware.AuthMiddleware(cfg), middleware.RoleMiddleware(model.RolePeserta))
	{
		exam.GET("/paper", c.exam.GetPaper)
		exam.POST("/submit", c.exam.Submit)
	}

	// Admin routes: participant, question, interview and report management.
	admin := router.Group("/api")
	admin.Use(middleware.AuthMiddleware(cfg), middleware.RoleMiddleware(model.RoleAdmin))
	{
		admin.GET("/participants", c.participant.List)
		admin.POST("/participants", c.participant.Create)
		admin.POST("/participants/bulk", c.participant.BulkImport)
		admin.GET("/participants/:id", c.participant.Get)
		admin.PUT("/participants/:id", c.participant.Update)
		admin.DELETE("/participants/:id", c.participant.Delete)

		admin.GET("/participants/:id/interview", c.interview.GetDetail)
		admin.PUT("/participants/:id/interview", c.interview.Save)
		admin.POST("/participants/:id/interview/analysis", c.interview.Analyze)

		admin.GET("/questions", c.question.List)
		admin.POST("/questions", c.question.Create)
		admin.POST("/questions/bulk", c.question.BulkImport)
		admin.POST("/questions/image", c.question.UploadImage)
		admin.DELETE("/questions", c.question.DeleteByIDP)
		admin.PUT("/questions/:id", c.question.Update)
		admin.DELETE("/questions/:id", c.question.Delete)

		admin.GET("/reports/site", c.report.SiteReport)
		admin.GET("/reports/participants/:id", c.report.ParticipantReport)
	}

	// Master-admin routes: admin accounts and master data maintenance.
	master := router.Group("/api")
	master.Use(middleware.AuthMiddleware(cfg), middleware.MasterAdminMiddleware())
	{
		master.GET("/admins", c.auth.ListAdmins)
		master.POST("/admins", c.auth.CreateAdmin)
		master.PUT("/admins/:id", c.auth.UpdateAdmin)
		master.DELETE("/admins/:id", c.auth.DeleteAdmin)

		master.POST("/masterdata", c.masterData.AddOption)
		master.DELETE("/masterdata", c.masterData.DeleteOption)
		master.PUT("/masterdata/:category", c.masterData.ReplaceList)
		master.POST("/masterdata/logo", c.masterData.UploadLogo)
	}
}
