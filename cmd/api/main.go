package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/Garimajunejaa/jobportall/internal/auth"
	"github.com/Garimajunejaa/jobportall/internal/config"
	"github.com/Garimajunejaa/jobportall/internal/database"
	"github.com/Garimajunejaa/jobportall/internal/handlers"
	"github.com/Garimajunejaa/jobportall/internal/middleware"
	"github.com/Garimajunejaa/jobportall/internal/models"
	"github.com/Garimajunejaa/jobportall/internal/services"
	"github.com/Garimajunejaa/jobportall/internal/storage"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	cfg := config.Load()

	db := database.Connect(cfg.PostgresDSN, database.PoolOptions{
		MaxOpenConns: cfg.DBMaxOpenConns,
		MaxIdleConns: cfg.DBMaxIdleConns,
		ConnMaxLife:  cfg.DBConnMaxLife,
	})

	uploader, err := storage.NewCloudinary(cfg.CloudinaryURL)
	if err != nil {
		log.WithError(err).Fatal("failed to configure cloudinary")
	}

	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)

	// With REDIS_ADDR set the login window is shared across instances;
	// otherwise each process counts on its own.
	var limiter middleware.Limiter = middleware.NewRateLimiter()
	if cfg.RedisAddr != "" {
		limiter = middleware.NewRedisLimiter(redis.NewClient(&redis.Options{Addr: cfg.RedisAddr}))
		log.WithField("addr", cfg.RedisAddr).Info("using redis rate limiter")
	}

	userService := services.NewUserService(db, tokens, uploader, log)
	companyService := services.NewCompanyService(db, uploader)
	jobService := services.NewJobService(db)
	applicationService := services.NewApplicationService(db)

	userHandler := handlers.NewUserHandler(userService, applicationService)
	companyHandler := handlers.NewCompanyHandler(companyService)
	jobHandler := handlers.NewJobHandler(jobService)
	applicationHandler := handlers.NewApplicationHandler(applicationService)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.CORSOrigin}
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	authn := middleware.Authenticate(tokens)
	recruiterOnly := middleware.RequireRole(models.RoleRecruiter)
	studentOnly := middleware.RequireRole(models.RoleStudent)
	authLimit := middleware.RateLimit(limiter, cfg.LoginRateLimit, cfg.LoginRateWindow)

	api := r.Group("/api/v1")
	{
		api.GET("/health", handlers.HealthCheck)

		user := api.Group("/user")
		{
			user.POST("/register", authLimit, userHandler.Register)
			user.POST("/login", authLimit, userHandler.Login)
			user.GET("/logout", userHandler.Logout)
			user.POST("/profile/update", authn, userHandler.UpdateProfile)
			// Legacy alias the frontend still calls.
			user.PUT("/update-profile", authn, userHandler.UpdateProfile)
			user.GET("/applications", authn, userHandler.AppliedJobs)
		}

		company := api.Group("/company", authn, recruiterOnly)
		{
			company.POST("/register", companyHandler.Register)
			company.GET("/get", companyHandler.List)
			company.GET("/get/:id", companyHandler.Get)
			company.PUT("/update/:id", companyHandler.Update)
		}

		job := api.Group("/job")
		{
			job.GET("/all", jobHandler.All)
			job.GET("/get/:id", jobHandler.Get)
			job.POST("/filter", jobHandler.Filter)
			job.POST("/post", authn, recruiterOnly, jobHandler.Post)
			job.GET("/getadminjobs", authn, recruiterOnly, jobHandler.AdminJobs)
			job.GET("/dashboard", authn, recruiterOnly, jobHandler.Dashboard)
			job.GET("/recommendations", authn, studentOnly, jobHandler.Recommendations)
			job.POST("/apply/:id", authn, studentOnly, applicationHandler.Apply)
			job.GET("/:id/applicants", authn, recruiterOnly, applicationHandler.Applicants)
		}

		application := api.Group("/application", authn)
		{
			application.POST("/apply/:id", studentOnly, applicationHandler.Apply)
			application.GET("/get", applicationHandler.AppliedJobs)
			application.GET("/:id/applicants", recruiterOnly, applicationHandler.Applicants)
			application.PUT("/status/:id/update", recruiterOnly, applicationHandler.UpdateStatus)
			application.PUT("/status/:id", recruiterOnly, applicationHandler.UpdateStatus)
		}
	}

	log.WithField("port", cfg.Port).Info("server starting")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.WithError(err).Fatal("server failed to start")
	}
}
