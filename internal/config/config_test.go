package config

import (
	"bytes"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseExpiry(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Duration
		wantErr bool
	}{
		{"7d", 7 * 24 * time.Hour, false},
		{"1d", 24 * time.Hour, false},
		{"36h", 36 * time.Hour, false},
		{"90m", 90 * time.Minute, false},
		{"0d", 0, true},
		{"-1h", 0, true},
		{"xd", 0, true},
		{"soon", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseExpiry(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg := Load()
		assert.Equal(t, 7*24*time.Hour, cfg.JWT.ExpiryPeriod)
		assert.Equal(t, "8080", cfg.Server.Port)
		assert.Equal(t, "superadmin@agriformation.org", cfg.Superadmin.Email)
		assert.Equal(t, "none", cfg.Email.Provider)
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("JWT_EXPIRES", "12h")
		t.Setenv("SERVER_PORT", "9000")
		t.Setenv("SUPERADMIN_EMAIL", "Root@Example.org")
		t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example ,")
		t.Setenv("SMTP_PORT", "2525")
		t.Setenv("MEDIA_PROVIDER", "local")

		cfg := Load()
		assert.Equal(t, 12*time.Hour, cfg.JWT.ExpiryPeriod)
		assert.Equal(t, "9000", cfg.Server.Port)
		assert.Equal(t, "root@example.org", cfg.Superadmin.Email)
		assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.CORSOrigins)
		assert.Equal(t, 2525, cfg.SMTP.Port)
		assert.Equal(t, "local", cfg.Media.Provider)
		assert.Equal(t, "http://localhost:9000", cfg.Media.PublicBaseURL)
	})

	t.Run("invalid expiry falls back", func(t *testing.T) {
		t.Setenv("JWT_EXPIRES", "forever")
		assert.Equal(t, 7*24*time.Hour, Load().JWT.ExpiryPeriod)
	})

	t.Run("database url wins", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "postgres://u:p@db/app")
		assert.Equal(t, "postgres://u:p@db/app", Load().DSN())
	})

	t.Run("discrete dsn", func(t *testing.T) {
		t.Setenv("DB_HOST", "db")
		t.Setenv("DB_NAME", "volunteers")
		assert.Contains(t, Load().DSN(), "host=db")
		assert.Contains(t, Load().DSN(), "dbname=volunteers")
	})
}

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	previous := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(previous) })
	return &buf
}

func TestLoadWarnsOnDefaultJWTSecret(t *testing.T) {
	t.Run("unset", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "")
		logs := captureLogs(t)

		cfg := Load()
		assert.Equal(t, defaultJWTSecret, cfg.JWT.Secret)
		assert.Contains(t, logs.String(), "level=WARN")
		assert.Contains(t, logs.String(), "JWT_SECRET is not set")
	})

	t.Run("configured", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "a-long-random-production-secret")
		logs := captureLogs(t)

		cfg := Load()
		assert.Equal(t, "a-long-random-production-secret", cfg.JWT.Secret)
		assert.NotContains(t, logs.String(), "JWT_SECRET")
	})
}
