package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/noah-isme/school-admission-api/api/swagger"
	"github.com/noah-isme/school-admission-api/internal/handler"
	"github.com/noah-isme/school-admission-api/internal/middleware"
	"github.com/noah-isme/school-admission-api/internal/models"
	"github.com/noah-isme/school-admission-api/internal/repository"
	"github.com/noah-isme/school-admission-api/internal/service"
	"github.com/noah-isme/school-admission-api/pkg/cache"
	"github.com/noah-isme/school-admission-api/pkg/config"
	"github.com/noah-isme/school-admission-api/pkg/database"
	"github.com/noah-isme/school-admission-api/pkg/export"
	"github.com/noah-isme/school-admission-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/school-admission-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/school-admission-api/pkg/middleware/requestid"
	"github.com/noah-isme/school-admission-api/pkg/sms"
	"github.com/noah-isme/school-admission-api/pkg/storage"
)

// @title School Admission API
// @version 1.0.0
// @description Admission lifecycle service: inquiry through enrollment
// @BasePath /api/v1
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to postgres", "error", err)
	}
	defer db.Close() //nolint:errcheck

	metricsService := service.NewMetricsService()

	var cacheService *service.CacheService
	if cfg.Admissions.StatsCacheEnabled {
		redisClient, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Sugar().Warnw("redis unavailable, statistics caching disabled", "error", err)
		} else {
			defer redisClient.Close() //nolint:errcheck
			cacheRepo := repository.NewCacheRepository(redisClient, logr)
			cacheService = service.NewCacheService(cacheRepo, metricsService, cfg.Admissions.StatsCacheTTL, logr, true)
		}
	}

	letterStorage, err := storage.NewLocalStorage(cfg.OfferLetters.StorageDir)
	if err != nil {
		logr.Sugar().Fatalw("failed to prepare offer letter storage", "error", err)
	}
	signer := storage.NewSignedURLSigner(cfg.OfferLetters.SignedURLSecret, cfg.OfferLetters.SignedURLTTL)

	// Letters whose signed URLs have long expired are swept daily.
	go func() {
		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()
		for range ticker.C {
			deleted, err := letterStorage.CleanupOlderThan(2 * cfg.OfferLetters.SignedURLTTL)
			if err != nil {
				logr.Sugar().Warnw("offer letter cleanup failed", "error", err)
				continue
			}
			if len(deleted) > 0 {
				logr.Sugar().Infow("offer letter cleanup", "deleted", len(deleted))
			}
		}
	}()

	var smsClient *sms.Client
	if cfg.SMS.Enabled {
		smsClient = sms.NewClient(cfg.SMS)
	}

	admissionRepo := repository.NewAdmissionRepository(db)
	studentRepo := repository.NewStudentRepository(db)
	counterRepo := repository.NewCounterRepository(db)
	auditRepo := repository.NewAuditRepository(db)

	validate := validator.New()

	notifier := service.NewSMSNotificationGateway(smsClient, logr)
	letterService := service.NewOfferLetterService(export.NewOfferLetterRenderer(), letterStorage, signer, cfg.OfferLetters, logr)
	codeService := service.NewStudentCodeService(counterRepo)

	admitFrom := make([]models.AdmissionStatus, 0, len(cfg.Admissions.AdmitFrom))
	for _, raw := range cfg.Admissions.AdmitFrom {
		status := models.AdmissionStatus(raw)
		if status.Valid() {
			admitFrom = append(admitFrom, status)
		}
	}

	admissionService := service.NewAdmissionService(
		admissionRepo, studentRepo, counterRepo,
		notifier, letterService, codeService,
		validate, logr,
		service.WithAuditLogger(auditRepo),
		service.WithCacheService(cacheService, cfg.Admissions.StatsCacheTTL),
		service.WithMetricsService(metricsService),
		service.WithAdmitFrom(admitFrom),
		service.WithCollaboratorTimeout(cfg.Admissions.CollaboratorTimeout),
	)
	studentService := service.NewStudentService(studentRepo)
	authService := service.NewAuthService(cfg.JWT)

	admissionHandler := handler.NewAdmissionHandler(admissionService)
	studentHandler := handler.NewStudentHandler(studentService)
	letterHandler := handler.NewLetterHandler(signer, letterStorage, logr)
	metricsHandler := handler.NewMetricsHandler(metricsService)

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsService))

	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	r.GET("/metrics", metricsHandler.Prometheus)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)

	// Offer letter downloads authenticate through the signed token itself.
	api.GET("/letters/:token", letterHandler.Download)

	authed := api.Group("")
	authed.Use(middleware.JWT(authService))

	staff := authed.Group("")
	staff.Use(middleware.RequireRoles(models.RoleSuperAdmin, models.RoleAdmin, models.RoleFrontDesk))
	{
		staff.POST("/admissions/inquiries", admissionHandler.CreateInquiry)
		staff.GET("/admissions", admissionHandler.List)
		staff.GET("/admissions/statistics", admissionHandler.Statistics)
		staff.GET("/admissions/:id", admissionHandler.Get)
		staff.PUT("/admissions/:id/application", admissionHandler.ConvertToApplication)
		staff.PUT("/admissions/:id/test-schedule", admissionHandler.ScheduleTest)
		staff.PUT("/admissions/:id/test-score", admissionHandler.RecordTestScore)
		staff.PUT("/admissions/:id/interview-schedule", admissionHandler.ScheduleInterview)
		staff.PUT("/admissions/:id/interview-result", admissionHandler.RecordInterview)
		staff.GET("/students", studentHandler.List)
		staff.GET("/students/:id", studentHandler.Get)
	}

	admins := authed.Group("")
	admins.Use(middleware.RequireRoles(models.RoleSuperAdmin, models.RoleAdmin))
	{
		admins.PUT("/admissions/:id/admit", admissionHandler.Admit)
		admins.POST("/admissions/:id/enroll", admissionHandler.Enroll)
		admins.PUT("/admissions/:id/reject", admissionHandler.Reject)
		admins.PUT("/admissions/:id/withdraw", admissionHandler.Withdraw)
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
