package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config ilovaning konfiguratsiyasi
type Config struct {
	HTTPAddr    string
	CORSOrigins []string
	ShopDBPath  string
	CatalogXLSX string

	GeminiAPIKey string
	GeminiModel  string

	AnalysisInterval  time.Duration
	RateLimitCooldown time.Duration
	FearThreshold     float64
	AlertThrottle     time.Duration
	GuardianEmail     string

	SMTPFrom       string
	ResendAPIKey   string
	SendGridAPIKey string
	SMTPHost       string
	SMTPPort       string
	SMTPUser       string
	SMTPPassword   string

	TelegramToken       string
	TelegramAlertChatID int64
	TelegramAdminBot    bool

	AdminPasswordHash string
	JWTSecret         string
}

// Load konfiguratsiyani yuklash
func Load() (*Config, error) {
	// .env faylini yuklash (mavjud bo'lsa)
	_ = godotenv.Load()

	config := &Config{
		HTTPAddr:          envOr("HTTP_ADDR", ":8080"),
		CORSOrigins:       splitList(envOr("CORS_ORIGINS", "*")),
		ShopDBPath:        envOr("SHOP_DB_PATH", "data/shop.db"),
		CatalogXLSX:       os.Getenv("CATALOG_XLSX"),
		GeminiAPIKey:      os.Getenv("GEMINI_API_KEY"),
		GeminiModel:       envOr("GEMINI_MODEL", "gemini-1.5-flash"),
		AnalysisInterval:  2 * time.Second,
		RateLimitCooldown: 30 * time.Second,
		FearThreshold:     90,
		AlertThrottle:     60 * time.Second,
		GuardianEmail:     os.Getenv("GUARDIAN_EMAIL"),
		SMTPFrom:          os.Getenv("SMTP_FROM"),
		ResendAPIKey:      os.Getenv("RESEND_API_KEY"),
		SendGridAPIKey:    os.Getenv("SENDGRID_API_KEY"),
		SMTPHost:          os.Getenv("SMTP_HOST"),
		SMTPPort:          envOr("SMTP_PORT", "587"),
		SMTPUser:          os.Getenv("SMTP_USER"),
		SMTPPassword:      os.Getenv("SMTP_PASSWORD"),
		TelegramToken:     os.Getenv("TELEGRAM_BOT_TOKEN"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
		JWTSecret:         os.Getenv("JWT_SECRET"),
	}

	var err error
	if config.AnalysisInterval, err = durationEnv("ANALYSIS_INTERVAL", config.AnalysisInterval); err != nil {
		return nil, err
	}
	if config.RateLimitCooldown, err = durationEnv("RATE_LIMIT_COOLDOWN", config.RateLimitCooldown); err != nil {
		return nil, err
	}
	if config.AlertThrottle, err = durationEnv("ALERT_THROTTLE", config.AlertThrottle); err != nil {
		return nil, err
	}

	if raw := os.Getenv("FEAR_THRESHOLD"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil || parsed < 0 || parsed > 100 {
			return nil, fmt.Errorf("FEAR_THRESHOLD noto'g'ri formatda (0..100): %q", raw)
		}
		config.FearThreshold = parsed
	}

	if raw := os.Getenv("TELEGRAM_ALERT_CHAT_ID"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("TELEGRAM_ALERT_CHAT_ID noto'g'ri formatda: %v", err)
		}
		config.TelegramAlertChatID = parsed
	}

	if raw := os.Getenv("TELEGRAM_ADMIN_BOT"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("TELEGRAM_ADMIN_BOT noto'g'ri formatda: %v", err)
		}
		config.TelegramAdminBot = parsed
	}

	// Validatsiya
	if config.GeminiAPIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable bo'sh")
	}
	if config.AdminPasswordHash != "" && config.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET ADMIN_PASSWORD_HASH bilan birga berilishi kerak")
	}
	if config.TelegramAdminBot && config.TelegramToken == "" {
		return nil, fmt.Errorf("TELEGRAM_ADMIN_BOT uchun TELEGRAM_BOT_TOKEN kerak")
	}

	return config, nil
}

// AdminEnabled admin login sozlanganmi
func (c *Config) AdminEnabled() bool {
	return c.AdminPasswordHash != "" && c.JWTSecret != ""
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func durationEnv(key string, fallback time.Duration) (time.Duration, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("%s noto'g'ri formatda: %q", key, raw)
	}
	return d, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
