package routes

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"

	"github.com/naborly/naborly/config"
	"github.com/naborly/naborly/controllers"
	"github.com/naborly/naborly/middleware"
	"github.com/naborly/naborly/store"
	"github.com/naborly/naborly/utils"
)

// SetupRouter wires routes, middlewares, and controllers.
func SetupRouter(st *store.Store) *gin.Engine {
	// Load config and set Gin mode from configuration
	cfg := config.Get()
	switch strings.ToLower(cfg.GinMode) {
	case "debug":
		gin.SetMode(gin.DebugMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	// Replace default console logger with file-based zap logger
	gl, err := utils.NewRollingFileLogger(cfg.GinPath, cfg.LogLevel, cfg.LogMaxSizeMB, cfg.LogMaxBackups, cfg.LogMaxAgeDays, cfg.LogCompress)
	if err == nil {
		r.Use(ginzap.Ginzap(gl, time.RFC3339, true))
		r.Use(ginzap.RecoveryWithZap(gl, false))
	} else {
		// fallback to default recovery if logger failed to init
		r.Use(gin.Recovery())
	}

	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	if len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.AllowedOrigins
	}

	r.Use(cors.New(corsCfg))
	// Record PV after each request
	r.Use(middleware.PageViewRecorder(st))

	feedController := controllers.NewFeedController(st)
	userController := controllers.NewUserController(st)
	complaintController := controllers.NewComplaintController(st)
	directoryController := controllers.NewDirectoryController(st)
	rationController := controllers.NewRationController(st)
	notificationController := controllers.NewNotificationController(st)
	contentController := controllers.NewContentController()
	statsController := controllers.NewStatsController(st)

	r.GET("/health", statsController.Health)

	api := r.Group("/api/v1")

	// Reads are open; every GET below works against whichever backend is
	// live for its dataset.
	api.GET("/feed", feedController.GetFeed)
	api.GET("/posts/:id/comments", feedController.ListComments)
	api.GET("/users/:username", userController.GetUser)
	api.GET("/complaints", complaintController.ListComplaints)
	api.GET("/providers", directoryController.ListProviders)
	api.GET("/vendors", directoryController.ListVendors)
	api.GET("/government-bodies", directoryController.ListGovernmentBodies)
	api.GET("/ration-rates", rationController.ListRates)
	api.GET("/notifications", notificationController.ListNotifications)
	api.GET("/stats", statsController.GetStats)
	api.GET("/content/home", contentController.GetHome)
	api.GET("/content/rations", contentController.GetRations)
	api.GET("/content/reactions", contentController.GetReactions)

	// Writes share the IP rate limiter.
	writes := api.Group("")
	writes.Use(middleware.RateLimitMiddleware())
	writes.POST("/users", userController.CreateUser)
	writes.POST("/posts", feedController.CreatePost)
	writes.POST("/posts/:id/comments", feedController.CreateComment)
	writes.POST("/posts/:id/reactions", feedController.ToggleReaction)
	writes.POST("/complaints", complaintController.CreateComplaint)
	writes.POST("/providers", directoryController.CreateProvider)
	writes.POST("/vendors", directoryController.CreateVendor)
	writes.POST("/government-bodies", directoryController.CreateGovernmentBody)
	writes.POST("/ration-rates", rationController.UpsertRate)
	writes.POST("/notifications", notificationController.CreateNotification)
	writes.POST("/notifications/:id/read", notificationController.MarkRead)

	r.NoRoute(func(ctx *gin.Context) {
		utils.Error(ctx, http.StatusNotFound, utils.CodeNotFound, "route not found")
	})

	return r
}
