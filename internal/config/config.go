package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Mail carries the optional SMTP settings for opt-out alerts. The sender
// stays disabled unless Host and AlertTo are both set.
type Mail struct {
	Host    string
	Port    int
	User    string
	Pass    string
	AlertTo string
}

type Config struct {
	DatabaseURL   string
	SessionSecret string
	AdminUsername string
	AdminPassword string

	TelnyxAPIKey     string
	TelnyxProfileID  string
	TelnyxFromNumber string
	TelnyxAPIURL     string

	// AMQPURL is optional; empty means no event publishing.
	AMQPURL string

	Mail Mail

	Port string
}

// Load reads the environment exactly once at startup. Handlers and
// usecases receive values from this struct at construction instead of
// reading ambient globals per request.
func Load() *Config {
	godotenv.Load()

	mailPort, err := strconv.Atoi(os.Getenv("MAIL_PORT"))
	if err != nil {
		mailPort = 587
	}

	return &Config{
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		SessionSecret: getEnv("SESSION_SECRET", "supersecretkey"),
		AdminUsername: getEnv("ADMIN_USERNAME", "admin"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),

		TelnyxAPIKey:     os.Getenv("TELNYX_API_KEY"),
		TelnyxProfileID:  os.Getenv("TELNYX_MESSAGING_PROFILE_ID"),
		TelnyxFromNumber: os.Getenv("TELNYX_FROM_NUMBER"),
		TelnyxAPIURL:     getEnv("TELNYX_API_URL", "https://api.telnyx.com"),

		AMQPURL: os.Getenv("AMQP_URL"),

		Mail: Mail{
			Host:    os.Getenv("MAIL_HOST"),
			Port:    mailPort,
			User:    os.Getenv("MAIL_USER"),
			Pass:    os.Getenv("MAIL_PASS"),
			AlertTo: os.Getenv("OPTOUT_ALERT_TO"),
		},

		Port: getEnv("PORT", "8080"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
