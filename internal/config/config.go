package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the application configuration.
type Config struct {
	AppPort  string
	LogLevel string

	DBDriver    string // postgres or sqlite
	DatabaseURL string
	DBHost      string
	DBPort      string
	DBName      string
	DBUser      string
	DBPass      string

	CORSOrigins []string
	UploadDir   string

	JWTSecret   string
	AdminEmails []string

	GoogleAPIKey     string
	GeminiModel      string
	AITimeoutSeconds int

	SMTPHost        string
	SMTPPort        int
	SMTPUser        string
	SMTPPass        string
	SMTPUseTLS      bool
	MailFrom        string
	ContactTo       string
	DebugContactRsp bool

	RedisAddr          string
	RedisPass          string
	RedisDB            int
	RateLimitPerMinute int

	RabbitMQURL string
}

// Load reads an optional .env file and then the process environment.
func Load() Config {
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PORT", "5001")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("DB_DRIVER", "postgres")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_NAME", "Palleteandfit")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("CORS_ORIGINS", "http://127.0.0.1:5500,http://localhost:5500")
	v.SetDefault("UPLOAD_FOLDER", "uploads")
	v.SetDefault("GEMINI_MODEL", "gemini-1.5-flash")
	v.SetDefault("AI_TIMEOUT_SECONDS", 60)
	v.SetDefault("SMTP_PORT", 587)
	v.SetDefault("SMTP_USE_TLS", "1")
	v.SetDefault("RATE_LIMIT_PER_MINUTE", 10)
	v.AutomaticEnv()

	port := v.GetString("APP_PORT")
	if port == "" {
		port = v.GetString("PORT")
	}

	smtpUser := strings.TrimSpace(v.GetString("SMTP_USER"))
	mailFrom := strings.TrimSpace(v.GetString("MAIL_FROM"))
	if mailFrom == "" {
		mailFrom = smtpUser
	}
	contactTo := strings.TrimSpace(v.GetString("CONTACT_TO"))
	if contactTo == "" {
		contactTo = smtpUser
	}

	return Config{
		AppPort:  strings.TrimPrefix(port, ":"),
		LogLevel: v.GetString("LOG_LEVEL"),

		DBDriver:    strings.ToLower(v.GetString("DB_DRIVER")),
		DatabaseURL: strings.TrimSpace(v.GetString("DATABASE_URL")),
		DBHost:      v.GetString("DB_HOST"),
		DBPort:      v.GetString("DB_PORT"),
		DBName:      v.GetString("DB_NAME"),
		DBUser:      v.GetString("DB_USER"),
		DBPass:      v.GetString("DB_PASS"),

		CORSOrigins: splitCSV(v.GetString("CORS_ORIGINS")),
		UploadDir:   v.GetString("UPLOAD_FOLDER"),

		JWTSecret:   v.GetString("JWT_SECRET"),
		AdminEmails: splitCSV(v.GetString("ADMIN_EMAILS")),

		GoogleAPIKey:     strings.TrimSpace(v.GetString("GOOGLE_API_KEY")),
		GeminiModel:      v.GetString("GEMINI_MODEL"),
		AITimeoutSeconds: v.GetInt("AI_TIMEOUT_SECONDS"),

		SMTPHost:        strings.TrimSpace(v.GetString("SMTP_HOST")),
		SMTPPort:        v.GetInt("SMTP_PORT"),
		SMTPUser:        smtpUser,
		SMTPPass:        strings.TrimSpace(v.GetString("SMTP_PASS")),
		SMTPUseTLS:      strings.TrimSpace(v.GetString("SMTP_USE_TLS")) == "1",
		MailFrom:        mailFrom,
		ContactTo:       contactTo,
		DebugContactRsp: v.GetString("DEBUG_CONTACT_RESPONSE") == "1",

		RedisAddr:          v.GetString("REDIS_ADDR"),
		RedisPass:          v.GetString("REDIS_PASS"),
		RedisDB:            v.GetInt("REDIS_DB"),
		RateLimitPerMinute: v.GetInt("RATE_LIMIT_PER_MINUTE"),

		RabbitMQURL: v.GetString("RABBITMQ_URL"),
	}
}

// Validate reports configuration the server cannot start without.
func (c Config) Validate() error {
	if strings.TrimSpace(c.JWTSecret) == "" {
		return errors.New("JWT_SECRET is required")
	}
	switch c.DBDriver {
	case "postgres", "sqlite":
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
	return nil
}

// DSN returns the connection string for the configured driver.
// DATABASE_URL wins over the discrete DB_* variables and defaults to sslmode=require.
func (c Config) DSN() string {
	if c.DBDriver == "sqlite" {
		if c.DatabaseURL != "" {
			return c.DatabaseURL
		}
		return c.DBName + ".db"
	}
	if c.DatabaseURL != "" {
		return withSSLRequired(c.DatabaseURL)
	}
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		c.DBHost, c.DBUser, c.DBPass, c.DBName, c.DBPort)
}

// IsAdmin reports whether username is listed in ADMIN_EMAILS.
func (c Config) IsAdmin(username string) bool {
	for _, admin := range c.AdminEmails {
		if strings.EqualFold(admin, strings.TrimSpace(username)) {
			return true
		}
	}
	return false
}

func withSSLRequired(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	if parsed.Scheme == "postgresql" {
		parsed.Scheme = "postgres"
	}
	q := parsed.Query()
	if q.Get("sslmode") == "" {
		q.Set("sslmode", "require")
	}
	parsed.RawQuery = q.Encode()
	return parsed.String()
}

func splitCSV(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
