package router

import (
	"log"
	"os"
	"time"

	"github.com/alinasr783/studyabroad-buddy/config"
	"github.com/alinasr783/studyabroad-buddy/database"
	"github.com/alinasr783/studyabroad-buddy/handlers"
	admin_handlers "github.com/alinasr783/studyabroad-buddy/handlers/admin"
	application_handlers "github.com/alinasr783/studyabroad-buddy/handlers/application"
	article_handlers "github.com/alinasr783/studyabroad-buddy/handlers/article"
	auth_handlers "github.com/alinasr783/studyabroad-buddy/handlers/auth"
	country_handlers "github.com/alinasr783/studyabroad-buddy/handlers/country"
	dashboard_handlers "github.com/alinasr783/studyabroad-buddy/handlers/dashboard"
	home_handlers "github.com/alinasr783/studyabroad-buddy/handlers/home"
	program_handlers "github.com/alinasr783/studyabroad-buddy/handlers/program"
	settings_handlers "github.com/alinasr783/studyabroad-buddy/handlers/settings"
	university_handlers "github.com/alinasr783/studyabroad-buddy/handlers/university"
	upload_handlers "github.com/alinasr783/studyabroad-buddy/handlers/upload"
	"github.com/alinasr783/studyabroad-buddy/services/storage"
	"github.com/alinasr783/studyabroad-buddy/utils"
	"github.com/alinasr783/studyabroad-buddy/utils/auth"
	"github.com/alinasr783/studyabroad-buddy/utils/cache"
	"github.com/alinasr783/studyabroad-buddy/utils/middleware"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, store database.Storage) {
	getEnv, err := config.Get()
	if err != nil {
		log.Fatal("Failed to load environment configuration")
	}

	jwtSecret := getEnv.JWT_SECRET
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET environment variable is not set")
	}

	jwtIssuer := getEnv.JWT_ISSUER
	if jwtIssuer == "" {
		jwtIssuer = "studyabroad-buddy-api"
	}

	jwtConfig := auth.JWTConfig{
		Secret:        jwtSecret,
		Expiry:        24 * time.Hour,     // Access token expires in 24 hours
		RefreshExpiry: 7 * 24 * time.Hour, // Refresh token expires in 7 days
		Issuer:        jwtIssuer,
	}
	jwtManager := auth.NewJWTManager(jwtConfig)

	// Get DB instance (type assert from interface)
	db, ok := store.GetDB().(*gorm.DB)
	if !ok {
		log.Fatal("Failed to get GORM DB instance")
	}

	// Redis backs login brute force protection; optional
	redisURL := getEnv.REDIS_URL
	if redisURL == "" {
		redisURL = "redis://localhost:6379/0"
	}

	redisCache, err := cache.NewRedisCache(redisURL)
	if err != nil {
		log.Printf("Warning: Failed to connect to Redis: %v. Brute force protection will be disabled.", err)
	}

	var bruteForceProtection *middleware.BruteForceProtection
	if redisCache != nil {
		bruteForceProtection = middleware.NewBruteForceProtection(redisCache)
	}

	authMiddleware := middleware.NewAuthMiddleware(jwtManager, db)

	// Object storage for image uploads; optional
	var uploader storage.Uploader
	if getEnv.SPACES_ACCESS_KEY != "" && getEnv.SPACES_BUCKET != "" {
		spacesClient, err := storage.NewSpacesClient(storage.SpacesConfig{
			AccessKey: getEnv.SPACES_ACCESS_KEY,
			SecretKey: getEnv.SPACES_SECRET_KEY,
			Bucket:    getEnv.SPACES_BUCKET,
			Region:    getEnv.SPACES_REGION,
			Endpoint:  getEnv.SPACES_ENDPOINT,
			CDNURL:    getEnv.SPACES_CDN_URL,
		})
		if err != nil {
			log.Printf("Warning: Failed to initialize object storage: %v. Image uploads will be disabled.", err)
		} else {
			uploader = spacesClient
		}
	}

	// Handlers
	authHandler := auth_handlers.NewAuthHandler(db, jwtManager, bruteForceProtection)
	countryHandler := country_handlers.NewCountryHandler(db)
	universityHandler := university_handlers.NewUniversityHandler(db)
	programHandler := program_handlers.NewProgramHandler(db)
	articleHandler := article_handlers.NewArticleHandler(db)
	applicationHandler := application_handlers.NewApplicationHandler(db)
	settingsHandler := settings_handlers.NewSettingsHandler(db)
	homeHandler := home_handlers.NewHomeHandler(db)
	dashboardHandler := dashboard_handlers.NewDashboardHandler(db)
	auditLogHandler := admin_handlers.NewAuditLogHandler(db)
	uploadHandler := upload_handlers.NewUploadHandler(uploader, getEnv.UPLOAD_MAX_MB)

	// Security middleware
	allowedOrigins := os.Getenv("ALLOWED_ORIGINS")
	if allowedOrigins == "" {
		allowedOrigins = "http://localhost:3000,http://localhost:5173"
	}

	middleware.SetupSecurity(app, middleware.SecurityConfig{
		AllowedOrigins:    allowedOrigins,
		RateLimitRequests: 100,             // 100 requests
		RateLimitWindow:   1 * time.Minute, // per minute
	})

	// Health check endpoint (public)
	app.Get("/ping", utils.MakeHTTPHandleFunc(handlers.HandleCheckHealth, store))

	// API v1 group
	api := app.Group("/api/v1")

	// Auth routes
	authGroup := api.Group("/auth")
	if bruteForceProtection != nil {
		authGroup.Post("/login", bruteForceProtection.CheckAndRecordAttempt(), authHandler.Login)
	} else {
		authGroup.Post("/login", authHandler.Login)
	}
	authGroup.Post("/refresh", authHandler.RefreshToken)
	authGroup.Post("/logout", authMiddleware.RequireAdmin(), authHandler.Logout)
	authGroup.Post("/change-password", authMiddleware.RequireAdmin(), authHandler.ChangePassword)

	// Profile routes (protected)
	profileGroup := api.Group("/profile", authMiddleware.RequireAdmin())
	profileGroup.Get("/", authHandler.GetProfile)
	profileGroup.Put("/", authHandler.UpdateProfile)

	// Home feed
	api.Get("/home", homeHandler.GetHome)

	// Countries routes
	countries := api.Group("/countries")
	countries.Get("/", countryHandler.ListCountries)
	countries.Get("/:id", countryHandler.GetCountry)
	countries.Post("/", authMiddleware.RequireAdmin(), middleware.AuditLog(db, "country_create", "countries"), countryHandler.CreateCountry)
	countries.Put("/:id", authMiddleware.RequireAdmin(), middleware.AuditLog(db, "country_update", "countries"), countryHandler.UpdateCountry)
	countries.Delete("/:id", authMiddleware.RequireAdmin(), middleware.AuditLog(db, "country_delete", "countries"), countryHandler.DeleteCountry)

	// Universities routes
	universities := api.Group("/universities")
	universities.Get("/", universityHandler.ListUniversities)
	universities.Get("/:id", universityHandler.GetUniversity)
	universities.Post("/", authMiddleware.RequireAdmin(), middleware.AuditLog(db, "university_create", "universities"), universityHandler.CreateUniversity)
	universities.Put("/:id", authMiddleware.RequireAdmin(), middleware.AuditLog(db, "university_update", "universities"), universityHandler.UpdateUniversity)
	universities.Delete("/:id", authMiddleware.RequireAdmin(), middleware.AuditLog(db, "university_delete", "universities"), universityHandler.DeleteUniversity)

	// Programs routes
	programs := api.Group("/programs")
	programs.Get("/", programHandler.ListPrograms)
	programs.Get("/:id", programHandler.GetProgram)
	programs.Post("/", authMiddleware.RequireAdmin(), middleware.AuditLog(db, "program_create", "programs"), programHandler.CreateProgram)
	programs.Put("/:id", authMiddleware.RequireAdmin(), middleware.AuditLog(db, "program_update", "programs"), programHandler.UpdateProgram)
	programs.Delete("/:id", authMiddleware.RequireAdmin(), middleware.AuditLog(db, "program_delete", "programs"), programHandler.DeleteProgram)

	// Articles routes
	articles := api.Group("/articles")
	articles.Get("/", articleHandler.ListArticles)
	articles.Get("/:id", articleHandler.GetArticle)
	articles.Post("/", authMiddleware.RequireAdmin(), middleware.AuditLog(db, "article_create", "articles"), articleHandler.CreateArticle)
	articles.Put("/:id", authMiddleware.RequireAdmin(), middleware.AuditLog(db, "article_update", "articles"), articleHandler.UpdateArticle)
	articles.Delete("/:id", authMiddleware.RequireAdmin(), middleware.AuditLog(db, "article_delete", "articles"), articleHandler.DeleteArticle)

	// Applications: public submission, admin management
	api.Post("/applications", applicationHandler.CreateApplication)

	// Site settings (public read)
	api.Get("/settings", settingsHandler.GetSettings)
	api.Get("/settings/whatsapp", settingsHandler.GetWhatsappLink)

	// Admin surface
	admin := api.Group("/admin", authMiddleware.RequireAdmin())
	admin.Get("/dashboard", dashboardHandler.GetDashboard)
	admin.Get("/articles", articleHandler.ListAllArticles)

	admin.Get("/applications", applicationHandler.ListApplications)
	admin.Get("/applications/:id", applicationHandler.GetApplication)
	admin.Patch("/applications/:id/status", middleware.AuditLog(db, "application_status_update", "applications"), applicationHandler.UpdateStatus)
	admin.Delete("/applications/:id", middleware.AuditLog(db, "application_delete", "applications"), applicationHandler.DeleteApplication)

	admin.Put("/settings", middleware.AuditLog(db, "settings_update", "site_settings"), settingsHandler.UpdateSettings)

	admin.Post("/uploads/image", uploadHandler.UploadImage)

	admin.Get("/audit-logs", auditLogHandler.ListAuditLogs)
	admin.Get("/audit-logs/:id", auditLogHandler.GetAuditLog)
}
