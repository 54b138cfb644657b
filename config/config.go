package config

import (
	"log"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	PORT       string
	DB_URL     string
	JWT_SECRET string

	CORS_ORIGIN string
	APP_URL     string

	STRIPE_SECRET_KEY     string
	STRIPE_WEBHOOK_SECRET string
	STRIPE_PRO_PRICE_ID   string
)

// Settings holds the typed, defaulted knobs.
type Settings struct {
	DefaultTimezone string `env:"DEFAULT_TIMEZONE" envDefault:"UTC"`
	TrialDays       int    `env:"TRIAL_DAYS" envDefault:"14"`

	RateLimitRPS     float64       `env:"RATE_LIMIT_RPS" envDefault:"5"`
	RateLimitBurst   int           `env:"RATE_LIMIT_BURST" envDefault:"20"`
	RateLimitIdleTTL time.Duration `env:"RATE_LIMIT_IDLE_TTL" envDefault:"10m"`

	// Proxies allowed to set X-Forwarded-For. Empty trusts none.
	TrustedProxies []string `env:"TRUSTED_PROXIES" envSeparator:","`

	AccessSnapshotCron string `env:"ACCESS_SNAPSHOT_CRON" envDefault:"@every 15m"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`
}

var Current = DefaultSettings()

func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found. Using system environment variables.")
	}

	PORT = getEnv("PORT", "8080")
	DB_URL = mustEnv("DB_URL")
	JWT_SECRET = mustEnv("JWT_SECRET")

	CORS_ORIGIN = getEnv("CORS_ORIGIN", "http://localhost:5173")
	APP_URL = getEnv("APP_URL", "http://localhost:5173")

	// billing endpoints answer 500 when these are missing, the menu keeps working
	STRIPE_SECRET_KEY = getEnv("STRIPE_SECRET_KEY", "")
	STRIPE_WEBHOOK_SECRET = getEnv("STRIPE_WEBHOOK_SECRET", "")
	STRIPE_PRO_PRICE_ID = getEnv("STRIPE_PRO_PRICE_ID", "")

	s, err := ParseSettings()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	Current = s
}

// ParseSettings reads Settings from the environment.
func ParseSettings() (Settings, error) {
	var s Settings
	if err := env.Parse(&s); err != nil {
		return Settings{}, err
	}
	if s.TrialDays <= 0 {
		s.TrialDays = 14
	}
	return s, nil
}

func DefaultSettings() Settings {
	return Settings{
		DefaultTimezone:    "UTC",
		TrialDays:          14,
		RateLimitRPS:       5,
		RateLimitBurst:     20,
		RateLimitIdleTTL:   10 * time.Minute,
		AccessSnapshotCron: "@every 15m",
		LogLevel:           "info",
		LogFormat:          "json",
	}
}

// TrialDuration is the trial granted to a newly registered restaurant.
func (s Settings) TrialDuration() time.Duration {
	return time.Duration(s.TrialDays) * 24 * time.Hour
}

// Location resolves DefaultTimezone, falling back to UTC.
func (s Settings) Location() *time.Location {
	return LoadLocation(s.DefaultTimezone, time.UTC)
}

// LoadLocation returns fallback for empty or unknown zone names.
func LoadLocation(name string, fallback *time.Location) *time.Location {
	if name == "" {
		return fallback
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return fallback
	}
	return loc
}

func mustEnv(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("Missing required environment variable: %s", key)
	}
	return v
}

func getEnv(key string, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
