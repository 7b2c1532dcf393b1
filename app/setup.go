package app

import (
	"fmt"
	"os"

	"github.com/alinasr783/studyabroad-buddy/api"
	"github.com/alinasr783/studyabroad-buddy/config"
	"github.com/alinasr783/studyabroad-buddy/database"
	"github.com/alinasr783/studyabroad-buddy/router"
	"github.com/alinasr783/studyabroad-buddy/services/cron"
	"github.com/alinasr783/studyabroad-buddy/utils/auth"
	"gorm.io/gorm"
)

func SetupAndRunServer() error {
	// Load ENV
	if err := config.LoadENV(); err != nil {
		return err
	}

	getEnv, err := config.Get()
	if err != nil {
		return err
	}

	// Initialize GORM database connection
	store, err := database.StartGORM()
	if err != nil {
		print("Check whether the Postgres is running or not\n")
		return err
	}

	if err := store.Init(); err != nil {
		print("Failed to initialize database tables\n")
		return err
	}

	// Bootstrap admin account from env on first start
	if db, ok := store.GetDB().(*gorm.DB); ok {
		if err := database.NewSeeder(db).SeedAll(); err != nil {
			return err
		}
	}

	// Initialize Cron Manager (only if enabled via environment variable)
	var cronManager *cron.CronManager
	if os.Getenv("CRON_ENABLED") != "false" { // Default to enabled
		db, ok := store.GetDB().(*gorm.DB)
		if !ok {
			print("Warning: Failed to get database connection for cron jobs\n")
		} else {
			cronManager = cron.NewCronManager(db, auth.NewBlacklistService(db))
			if err := cronManager.Start(); err != nil {
				print("Warning: Failed to start cron jobs\n")
				print("Error: ", err.Error(), "\n")
				// Don't fail the app, just log the warning
			}
		}
	}

	// Defer Closing DB and stopping cron jobs
	defer func() {
		if cronManager != nil {
			cronManager.Stop()
		}
		store.Close()
	}()

	// Init API
	var server *api.APIServer = api.NewAPIServer(fmt.Sprintf(":%d", getEnv.PORT), getEnv.UPLOAD_MAX_MB)
	app := server.GetEngine()

	// Setup routes and middleware
	router.SetupRoutes(app, store)

	// Get the PORT & Start the Server
	return server.Run()
}
