package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/dragonpearl/reservation-app/config"
	"github.com/dragonpearl/reservation-app/database"
	"github.com/dragonpearl/reservation-app/router"
	"github.com/dragonpearl/reservation-app/services"
	"github.com/dragonpearl/reservation-app/utils"
)

func main() {
	utils.InitLogger()

	if err := godotenv.Load(); err != nil {
		utils.InfoLogger.Println("Warning: .env file not found")
	}

	cfg := config.Load()

	db, err := config.InitDB(cfg)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		utils.ErrorLogger.Fatalf("Failed to migrate: %v", err)
	}
	if err := database.SeedAdmin(db, cfg); err != nil {
		utils.ErrorLogger.Fatalf("Failed to seed admin user: %v", err)
	}

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	sms := services.NewTwilioClient(cfg.Twilio)
	if err := sms.ValidateConfig(); err != nil {
		utils.InfoLogger.Printf("Warning: SMS confirmations disabled: %v", err)
	}

	payments := services.NewPaymentService(cfg.Midtrans)
	if err := payments.ValidateConfig(); err != nil {
		utils.InfoLogger.Printf("Warning: payment provider not fully configured: %v", err)
	}

	r := router.SetupRouter(db, cfg, sms, payments)

	utils.InfoLogger.Printf("Listening on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}
