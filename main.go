package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/yeremiapane/restaurant-ordering/config"
	"github.com/yeremiapane/restaurant-ordering/database"
	"github.com/yeremiapane/restaurant-ordering/router"
	"github.com/yeremiapane/restaurant-ordering/utils"
)

func init() {
	utils.InitLogger()
}

func main() {
	if err := godotenv.Load(); err != nil {
		utils.InfoLogger.Println("Warning: .env file not found")
	}

	cfg, err := config.Load()
	if err != nil {
		utils.ErrorLogger.Fatalf("Invalid configuration: %v", err)
	}
	utils.SetLogLevel(cfg.LogLevel)

	if cfg.JWTSecret == "" {
		utils.ErrorLogger.Println("Warning: JWT_SECRET not set, using the development secret")
	}
	utils.ConfigureJWT(cfg.JWTSecret, cfg.JWTTTL)

	if cfg.GinMode == gin.ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := config.InitDB(cfg)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		utils.ErrorLogger.Fatalf("Failed to AutoMigrate: %v", err)
	}
	if err := database.SeedAdmin(db, cfg.AdminName, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		utils.ErrorLogger.Fatalf("Failed to seed admin: %v", err)
	}

	if err := os.MkdirAll(cfg.UploadDir, 0755); err != nil {
		utils.ErrorLogger.Printf("Error creating upload directory %s: %v", cfg.UploadDir, err)
	}

	r := router.SetupRouter(db, cfg)
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		utils.ErrorLogger.Printf("Error setting trusted proxies: %v", err)
	}

	utils.InfoLogger.Printf("Listening on port %s (db=%s)", cfg.Port, cfg.DBDriver)
	if err := r.Run(":" + cfg.Port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}
