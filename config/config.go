package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds every setting read from the environment.
type Config struct {
	Port          string
	APIBaseURL    string
	APITimeout    time.Duration
	RedisAddr     string
	RedisUser     string
	RedisPassword string
	RedisDB       int
	SessionTTL    time.Duration
	CacheTTL      time.Duration
	CloudinaryURL string
	LogLevel      string
	LogDir        string
	Timezone      string
	CORSOrigins   []string
	SecureCookie  bool
}

func defaults(v *viper.Viper) {
	v.SetDefault("PORT", "8083")
	v.SetDefault("API_BASE_URL", "https://api.vacationbna.ai/api/v1")
	v.SetDefault("API_TIMEOUT", "10s")
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("SESSION_TTL", "168h")
	v.SetDefault("CACHE_TTL", "10m")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("TIMEZONE", "Asia/Kolkata")
	v.SetDefault("CORS_ORIGINS", "")
	v.SetDefault("SECURE_COOKIE", false)
}

// LoadEnv loads .env into the process environment when present.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: no .env file loaded, using process environment: %v", err)
	}
}

// Load reads the configuration from .env and the environment.
func Load() (*Config, error) {
	LoadEnv()

	v := viper.New()
	defaults(v)
	v.AutomaticEnv()

	cfg := &Config{
		Port:          v.GetString("PORT"),
		APIBaseURL:    strings.TrimRight(v.GetString("API_BASE_URL"), "/"),
		APITimeout:    v.GetDuration("API_TIMEOUT"),
		RedisAddr:     v.GetString("REDIS_ADDR"),
		RedisUser:     v.GetString("REDIS_USER"),
		RedisPassword: v.GetString("REDIS_PASSWORD"),
		RedisDB:       v.GetInt("REDIS_DB"),
		SessionTTL:    v.GetDuration("SESSION_TTL"),
		CacheTTL:      v.GetDuration("CACHE_TTL"),
		CloudinaryURL: v.GetString("CLOUDINARY_URL"),
		LogLevel:      v.GetString("LOG_LEVEL"),
		LogDir:        v.GetString("LOG_DIR"),
		Timezone:      v.GetString("TIMEZONE"),
		SecureCookie:  v.GetBool("SECURE_COOKIE"),
	}
	for _, origin := range strings.Split(v.GetString("CORS_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSOrigins = append(cfg.CORSOrigins, origin)
		}
	}

	if cfg.APIBaseURL == "" {
		return nil, fmt.Errorf("API_BASE_URL must not be empty")
	}
	if cfg.APITimeout <= 0 {
		return nil, fmt.Errorf("API_TIMEOUT must be positive, got %s", cfg.APITimeout)
	}
	return cfg, nil
}

// Location resolves the configured timezone, falling back to UTC.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		log.Printf("Warning: unknown timezone %q, using UTC", c.Timezone)
		return time.UTC
	}
	return loc
}

// ConnectCloudinary returns nil when CLOUDINARY_URL is unset; image upload
// is then disabled.
func ConnectCloudinary(cfg *Config) (*cloudinary.Cloudinary, error) {
	if cfg.CloudinaryURL == "" {
		return nil, nil
	}
	cld, err := cloudinary.NewFromURL(cfg.CloudinaryURL)
	if err != nil {
		return nil, fmt.Errorf("init cloudinary: %w", err)
	}
	return cld, nil
}
