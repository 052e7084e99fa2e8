// internal/config/config.go
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Database struct {
		URL        string `json:"url"`
		Host       string `json:"host"`
		Port       string `json:"port"`
		User       string `json:"user"`
		Password   string `json:"password"`
		Name       string `json:"name"`
		SSLMode    string `json:"sslmode"`
		SearchPath string `json:"schema"`
	} `json:"database"`
	JWT struct {
		Secret       string        `json:"secret"`
		ExpiryPeriod time.Duration `json:"expiry_period"`
	} `json:"jwt"`
	Server struct {
		Port         string        `json:"port"`
		ReadTimeout  time.Duration `json:"read_timeout"`
		WriteTimeout time.Duration `json:"write_timeout"`
		CORSOrigins  []string      `json:"cors_origins"`
	} `json:"server"`
	Superadmin struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		Name     string `json:"name"`
	} `json:"superadmin"`
	Media struct {
		Provider      string `json:"provider"`
		CloudinaryURL string `json:"cloudinary_url"`
		CloudName     string `json:"cloud_name"`
		APIKey        string `json:"api_key"`
		APISecret     string `json:"api_secret"`
		UploadDir     string `json:"upload_dir"`
		PublicBaseURL string `json:"public_base_url"`
	} `json:"media"`
	Email struct {
		Provider string `json:"provider"`
		FromName string `json:"from_name"`
		LoginURL string `json:"login_url"`
	} `json:"email"`
	Sendgrid struct {
		APIKey string `json:"api_key"`
		From   string `json:"from"`
	} `json:"sendgrid"`
	SMTP struct {
		Host     string `json:"host"`
		Port     int    `json:"port"`
		Username string `json:"username"`
		Password string `json:"password"`
		From     string `json:"from"`
	} `json:"smtp"`
	LogLevel string `json:"log_level"`
}

// defaultJWTSecret is only fit for local development.
const defaultJWTSecret = "your-secret-key"

// Load reads configuration from the environment. A .env file in the working
// directory is applied first when present; real environment variables win.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("failed to load .env file", "error", err)
	}

	cfg := &Config{}

	// Database configuration
	cfg.Database.URL = getEnv("DATABASE_URL", "")
	cfg.Database.Host = getEnv("DB_HOST", "localhost")
	cfg.Database.Port = getEnv("DB_PORT", "5432")
	cfg.Database.User = getEnv("DB_USER", "postgres")
	cfg.Database.Password = getEnv("DB_PASSWORD", "")
	cfg.Database.Name = getEnv("DB_NAME", "agriformation")
	cfg.Database.SSLMode = getEnv("DB_SSLMODE", "disable")
	cfg.Database.SearchPath = getEnv("DB_SCHEMA", "public")

	// JWT configuration
	cfg.JWT.Secret = getEnv("JWT_SECRET", "")
	if cfg.JWT.Secret == "" || cfg.JWT.Secret == defaultJWTSecret {
		cfg.JWT.Secret = defaultJWTSecret
		slog.Warn("JWT_SECRET is not set, tokens are signed with the built-in development secret")
	}
	expires, err := ParseExpiry(getEnv("JWT_EXPIRES", "7d"))
	if err != nil {
		slog.Warn("invalid JWT_EXPIRES, using 7d", "error", err)
		expires = 7 * 24 * time.Hour
	}
	cfg.JWT.ExpiryPeriod = expires

	// Server configuration
	cfg.Server.Port = getEnv("SERVER_PORT", getEnv("PORT", "8080"))
	cfg.Server.ReadTimeout = time.Second * 15
	cfg.Server.WriteTimeout = time.Second * 60
	cfg.Server.CORSOrigins = splitList(getEnv("CORS_ORIGINS", "https://*,http://*"))

	// Bootstrap superadmin
	cfg.Superadmin.Email = strings.ToLower(getEnv("SUPERADMIN_EMAIL", getEnv("SUPER_ADMIN_EMAIL", "superadmin@agriformation.org")))
	cfg.Superadmin.Password = getEnv("SUPERADMIN_PASSWORD", getEnv("SUPER_ADMIN_PASSWORD", "Admin@123"))
	cfg.Superadmin.Name = getEnv("SUPERADMIN_NAME", "Super Admin")

	// Media host
	cfg.Media.Provider = getEnv("MEDIA_PROVIDER", "cloudinary")
	cfg.Media.CloudinaryURL = getEnv("CLOUDINARY_URL", "")
	cfg.Media.CloudName = getEnv("CLOUDINARY_CLOUD_NAME", "")
	cfg.Media.APIKey = getEnv("CLOUDINARY_API_KEY", "")
	cfg.Media.APISecret = getEnv("CLOUDINARY_API_SECRET", "")
	cfg.Media.UploadDir = getEnv("UPLOAD_DIR", "./uploads")
	cfg.Media.PublicBaseURL = strings.TrimRight(getEnv("PUBLIC_BASE_URL", "http://localhost:"+cfg.Server.Port), "/")

	// Email configuration
	cfg.Email.Provider = getEnv("EMAIL_PROVIDER", "none")
	cfg.Email.FromName = getEnv("EMAIL_FROM_NAME", "Agriformation")
	cfg.Email.LoginURL = getEnv("LOGIN_URL", "http://localhost:3000/login")
	cfg.Sendgrid.APIKey = getEnv("SENDGRID_API_KEY", "")
	cfg.Sendgrid.From = getEnv("SENDGRID_FROM", "")
	cfg.SMTP.Host = getEnv("SMTP_HOST", "")
	cfg.SMTP.Port = getEnvInt("SMTP_PORT", 587)
	cfg.SMTP.Username = getEnv("SMTP_USERNAME", "")
	cfg.SMTP.Password = getEnv("SMTP_PASSWORD", "")
	cfg.SMTP.From = getEnv("SMTP_FROM", "")

	cfg.LogLevel = strings.ToLower(getEnv("LOG_LEVEL", "info"))

	return cfg
}

// DSN returns the postgres connection string. DATABASE_URL takes precedence
// over the discrete DB_* settings.
func (c *Config) DSN() string {
	if c.Database.URL != "" {
		return c.Database.URL
	}
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s search_path=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
		c.Database.SSLMode,
		c.Database.SearchPath,
	)
}

// ParseExpiry accepts a Go duration ("36h") or a whole number of days ("7d").
func ParseExpiry(v string) (time.Duration, error) {
	v = strings.TrimSpace(v)
	if days, ok := strings.CutSuffix(v, "d"); ok {
		n, err := strconv.Atoi(days)
		if err != nil || n <= 0 {
			return 0, fmt.Errorf("invalid day count %q", v)
		}
		return time.Duration(n) * 24 * time.Hour, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, err
	}
	if d <= 0 {
		return 0, fmt.Errorf("expiry must be positive, got %s", v)
	}
	return d, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	v, ok := os.LookupEnv(key)
	if !ok {
		return defaultValue
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("invalid integer in environment", "key", key, "value", v)
		return defaultValue
	}
	return n
}

func splitList(v string) []string {
	var out []string
	for _, s := range strings.Split(v, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
