// Package server contain implementation of go-gin-server and each route handlers
package server

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	// Init swagger doc
	_ "github.com/jawadkoroth/Jobpilotai/docs"

	"github.com/jawadkoroth/Jobpilotai/internal/auth"
	"github.com/jawadkoroth/Jobpilotai/internal/controller/application"
	"github.com/jawadkoroth/Jobpilotai/internal/controller/coverletter"
	"github.com/jawadkoroth/Jobpilotai/internal/controller/file"
	"github.com/jawadkoroth/Jobpilotai/internal/controller/job"
	"github.com/jawadkoroth/Jobpilotai/internal/controller/resume"
	"github.com/jawadkoroth/Jobpilotai/internal/controller/user"
	"github.com/jawadkoroth/Jobpilotai/internal/middleware"
)

// RegisterRoutes will register each http endpoint routes to bound Server instance
func (s *MyServer) RegisterRoutes() http.Handler {
	binding.EnableDecoderDisallowUnknownFields = true

	r := gin.Default()

	var profiles user.ProfileSource
	if s.Identity != nil {
		profiles = s.Identity
	}

	signOut := auth.NewSignOutController(s.Blacklist, s.Identity)
	applicationController := application.NewApplicationController(s.DB)
	resumeController := resume.NewResumeController(s.DB, s.Storage)
	fileController := file.NewFileController(s.Storage)
	jobController := job.NewJobController()
	coverLetterController := coverletter.NewCoverLetterController(s.Completion)
	userController := user.NewUserController(profiles)

	requireAuth := middleware.RequireAuth(s.Tokens, s.Blacklist)
	optionalAuth := middleware.OptionalAuth(s.Tokens, s.Blacklist)
	rateLimit := middleware.RateLimiterMiddleware(s.Config.RateLimit)

	r.Use(cors.New(cors.Config{
		AllowOrigins:     s.Config.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}), middleware.SafeHeader())

	r.GET("/", s.HelloWorldHandler)
	r.GET("/health", s.healthHandler)
	v1 := r.Group("/api/v1")
	{
		v1.GET("/user", optionalAuth, userController.CurrentUser)
		v1.POST("/chatgpt", optionalAuth, rateLimit, coverLetterController.GenerateCoverLetter)
		v1.POST("/parse-resume", optionalAuth, rateLimit, resumeController.Parse)
		v1.GET("/file/*key", fileController.GetFile)

		needAuth := v1.Group("")
		{
			needAuth.Use(requireAuth, middleware.CheckRole(middleware.RoleAuthenticated))

			needAuth.POST("/auth/signout", signOut.SignOutHandler)
			needAuth.POST("/upload-resume", middleware.SizeLimit(resume.MaxResumeSize), resumeController.Upload)
			needAuth.GET("/scrape-jobs", jobController.GetJobs)
			needAuth.GET("/jobs", jobController.GetJobs)
			needAuth.POST("/openai-coverletter", rateLimit, coverLetterController.GenerateForJob)
			needAuth.POST("/apply", applicationController.Submit)

			applicationRoute := needAuth.Group("/applications")
			{
				applicationRoute.GET("", applicationController.List)
				applicationRoute.PATCH("/:id/status", applicationController.UpdateStatus)
			}

			resumeRoute := needAuth.Group("/resumes")
			{
				resumeRoute.POST("", resumeController.Save)
				resumeRoute.GET("", resumeController.List)
				resumeRoute.GET("/current", resumeController.Current)
				resumeRoute.GET("/files", resumeController.Files)
			}
		}
	}

	if s.Config.DevTooling {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}

// HelloWorldHandler handle request by return message "Hello World"
func (s *MyServer) HelloWorldHandler(c *gin.Context) {
	resp := make(map[string]string)
	resp["message"] = "Hello World"

	c.JSON(http.StatusOK, resp)
}

func (s *MyServer) healthHandler(c *gin.Context) {
	if s.DB == nil {
		c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "down", "error": "db not connected"})
		return
	}
	stats := s.DB.Health()
	if stats["status"] != "up" {
		c.JSON(http.StatusServiceUnavailable, stats)
		return
	}
	c.JSON(http.StatusOK, stats)
}
