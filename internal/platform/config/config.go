package config

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL    string
	Port           string
	IsProduction   bool
	EnableDBCheck  bool
	RunMigrations  bool
	MigrationsPath string
	LogLevel       string

	AuthTokenSecret    string
	AuthTokenIssuer    string
	OTPTTL             time.Duration // 0 disables expiry
	LoginRateLimit     string        // ulule/limiter format, e.g. "5-M"
	OTPRateLimit       string
	CORSAllowedOrigins []string

	SMTP    SMTPConfig
	Storage StorageConfig

	// External OAuth Providers
	GoogleClientID     string
	GoogleClientSecret string
	GoogleRedirectURI  string

	PosthogAPIKey  string
	PosthogHost    string
	KafkaBrokers   []string
	KafkaTopic     string
	AlertWebhook   string
	RequestTimeout time.Duration
}

// SMTPConfig configures outbound mail. An empty Host logs mails instead of sending them.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// StorageConfig configures post image uploads. An empty Bucket disables uploads.
type StorageConfig struct {
	Bucket          string
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	PublicBaseURL   string
	MaxImageBytes   int64
}

// GoogleOAuthEnabled reports whether Google sign-in is fully configured.
func (c *Config) GoogleOAuthEnabled() bool {
	return c.GoogleClientID != "" && c.GoogleClientSecret != "" && c.GoogleRedirectURI != ""
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	return fromViper(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("RUN_MIGRATIONS", true)
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("AUTH_TOKEN_SECRET", "")
	v.SetDefault("AUTH_TOKEN_ISSUER", "blogging-platform")
	v.SetDefault("OTP_TTL", "0s")
	v.SetDefault("LOGIN_RATE_LIMIT", "5-M")
	v.SetDefault("OTP_RATE_LIMIT", "3-M")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("SMTP_HOST", "")
	v.SetDefault("SMTP_PORT", 587)
	v.SetDefault("SMTP_USERNAME", "")
	v.SetDefault("SMTP_PASSWORD", "")
	v.SetDefault("SMTP_FROM", "no-reply@localhost")
	v.SetDefault("S3_BUCKET", "")
	v.SetDefault("S3_REGION", "us-east-1")
	v.SetDefault("S3_ENDPOINT", "")
	v.SetDefault("S3_ACCESS_KEY_ID", "")
	v.SetDefault("S3_SECRET_ACCESS_KEY", "")
	v.SetDefault("S3_PUBLIC_BASE_URL", "")
	v.SetDefault("MAX_IMAGE_BYTES", 5<<20)
	v.SetDefault("GOOGLE_CLIENT_ID", "")
	v.SetDefault("GOOGLE_CLIENT_SECRET", "")
	v.SetDefault("GOOGLE_REDIRECT_URI", "")
	v.SetDefault("POSTHOG_API_KEY", "")
	v.SetDefault("POSTHOG_HOST", "https://us.i.posthog.com")
	v.SetDefault("KAFKA_BROKERS", "")
	v.SetDefault("KAFKA_TOPIC", "blog-events")
	v.SetDefault("ALERT_WEBHOOK_URL", "")
	v.SetDefault("REQUEST_TIMEOUT", "30s")
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		DatabaseURL:    v.GetString("PGSQL_URL"),
		Port:           v.GetString("PORT"),
		IsProduction:   v.GetBool("IS_PRODUCTION"),
		EnableDBCheck:  v.GetBool("ENABLE_DB_CHECK"),
		RunMigrations:  v.GetBool("RUN_MIGRATIONS"),
		MigrationsPath: v.GetString("MIGRATIONS_PATH"),
		LogLevel:       v.GetString("LOG_LEVEL"),

		AuthTokenSecret:    v.GetString("AUTH_TOKEN_SECRET"),
		AuthTokenIssuer:    v.GetString("AUTH_TOKEN_ISSUER"),
		OTPTTL:             v.GetDuration("OTP_TTL"),
		LoginRateLimit:     v.GetString("LOGIN_RATE_LIMIT"),
		OTPRateLimit:       v.GetString("OTP_RATE_LIMIT"),
		CORSAllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),

		SMTP: SMTPConfig{
			Host:     v.GetString("SMTP_HOST"),
			Port:     v.GetInt("SMTP_PORT"),
			Username: v.GetString("SMTP_USERNAME"),
			Password: v.GetString("SMTP_PASSWORD"),
			From:     v.GetString("SMTP_FROM"),
		},
		Storage: StorageConfig{
			Bucket:          v.GetString("S3_BUCKET"),
			Region:          v.GetString("S3_REGION"),
			Endpoint:        v.GetString("S3_ENDPOINT"),
			AccessKeyID:     v.GetString("S3_ACCESS_KEY_ID"),
			SecretAccessKey: v.GetString("S3_SECRET_ACCESS_KEY"),
			PublicBaseURL:   v.GetString("S3_PUBLIC_BASE_URL"),
			MaxImageBytes:   v.GetInt64("MAX_IMAGE_BYTES"),
		},

		GoogleClientID:     v.GetString("GOOGLE_CLIENT_ID"),
		GoogleClientSecret: v.GetString("GOOGLE_CLIENT_SECRET"),
		GoogleRedirectURI:  v.GetString("GOOGLE_REDIRECT_URI"),

		PosthogAPIKey:  v.GetString("POSTHOG_API_KEY"),
		PosthogHost:    v.GetString("POSTHOG_HOST"),
		KafkaBrokers:   splitList(v.GetString("KAFKA_BROKERS")),
		KafkaTopic:     v.GetString("KAFKA_TOPIC"),
		AlertWebhook:   v.GetString("ALERT_WEBHOOK_URL"),
		RequestTimeout: v.GetDuration("REQUEST_TIMEOUT"),
	}

	if cfg.DatabaseURL == "" {
		return nil, errors.New("PGSQL_URL environment variable not set")
	}
	if cfg.AuthTokenSecret == "" {
		return nil, errors.New("AUTH_TOKEN_SECRET environment variable not set")
	}
	if cfg.OTPTTL < 0 {
		return nil, errors.New("OTP_TTL must not be negative")
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}
	if cfg.SMTP.Host == "" {
		log.Println("Warning: SMTP_HOST not set. Emails will be written to the log only.")
	}
	if cfg.Storage.Bucket == "" {
		log.Println("Warning: S3_BUCKET not set. Blog image uploads are disabled.")
	}
	if !cfg.GoogleOAuthEnabled() {
		log.Println("Warning: Google OAuth is not fully configured. Google login will not function.")
	}

	return cfg, nil
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
