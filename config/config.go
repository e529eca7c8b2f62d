package config

import (
	"os"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Config holds every runtime setting. It is built once in main from the
// environment and handed to the components that need it, nothing reads
// os.Getenv after startup.
type Config struct {
	Port          string
	DBPath        string
	JWTSecret     string
	DefaultLocale string

	AdminUsername string
	AdminPassword string

	Twilio   TwilioConfig
	Midtrans MidtransConfig
}

// TwilioConfig configures the SMS client.
type TwilioConfig struct {
	AccountSID string
	AuthToken  string
	FromNumber string
	BaseURL    string
}

// MidtransConfig configures the payment provider client.
type MidtransConfig struct {
	ServerKey    string
	ClientKey    string
	IsProduction bool
}

func Load() *Config {
	return &Config{
		Port:          getEnv("PORT", "8080"),
		DBPath:        getEnv("DB_PATH", "restaurant.db"),
		JWTSecret:     getEnv("JWT_SECRET", "your_super_secret_key"),
		DefaultLocale: getEnv("DEFAULT_LOCALE", "fr"),
		AdminUsername: getEnv("ADMIN_USERNAME", "admin"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "securepassword"),
		Twilio: TwilioConfig{
			AccountSID: os.Getenv("TWILIO_ACCOUNT_SID"),
			AuthToken:  os.Getenv("TWILIO_AUTH_TOKEN"),
			FromNumber: getEnv("TWILIO_FROM_NUMBER", "+33612345678"),
			BaseURL:    getEnv("TWILIO_BASE_URL", "https://api.twilio.com"),
		},
		Midtrans: MidtransConfig{
			ServerKey:    os.Getenv("MIDTRANS_SERVER_KEY"),
			ClientKey:    os.Getenv("MIDTRANS_CLIENT_KEY"),
			IsProduction: os.Getenv("MIDTRANS_ENV") == "production",
		},
	}
}

// InitDB opens the SQLite database file named in the config.
func InitDB(cfg *Config) (*gorm.DB, error) {
	return gorm.Open(sqlite.Open(cfg.DBPath), &gorm.Config{})
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
