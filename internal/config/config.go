package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config carries every recognized environment option. Each external feature
// has its own Configured check so a missing secret disables that feature with
// a configuration error instead of crashing the process.
type Config struct {
	Port               string
	DatabaseURL        string
	AdminPassword      string
	ZohoFlowWebhookURL string
	RabbitMQURL        string
	CORSAllowedOrigins []string

	Razorpay RazorpayConfig
	Meta     MetaConfig
	SMTP     SMTPConfig
	Logging  LoggingConfig
}

type RazorpayConfig struct {
	KeyID     string
	KeySecret string
}

func (r RazorpayConfig) Configured() bool {
	return r.KeyID != "" && r.KeySecret != ""
}

type MetaConfig struct {
	PixelID     string
	AccessToken string
}

func (m MetaConfig) Configured() bool {
	return m.PixelID != "" && m.AccessToken != ""
}

type SMTPConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

func (s SMTPConfig) Configured() bool {
	return s.Host != "" && s.User != ""
}

type LoggingConfig struct {
	Level  string
	Format string
}

// Load reads configuration from the environment. godotenv is expected to have
// populated the process env beforehand (see cmd/api).
func Load() *Config {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("SMTP_PORT", 587)
	v.SetDefault("MAIL_FROM", "no-reply@vyaparify.com")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")

	return &Config{
		Port:               v.GetString("PORT"),
		DatabaseURL:        v.GetString("DATABASE_URL"),
		AdminPassword:      v.GetString("ADMIN_PASSWORD"),
		ZohoFlowWebhookURL: v.GetString("ZOHO_FLOW_WEBHOOK_URL"),
		RabbitMQURL:        v.GetString("RABBITMQ_URL"),
		CORSAllowedOrigins: strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ","),
		Razorpay: RazorpayConfig{
			KeyID:     v.GetString("RAZORPAY_KEY_ID"),
			KeySecret: v.GetString("RAZORPAY_KEY_SECRET"),
		},
		Meta: MetaConfig{
			PixelID:     v.GetString("META_PIXEL_ID"),
			AccessToken: v.GetString("META_ACCESS_TOKEN"),
		},
		SMTP: SMTPConfig{
			Host:     v.GetString("SMTP_HOST"),
			Port:     v.GetInt("SMTP_PORT"),
			User:     v.GetString("SMTP_USER"),
			Password: v.GetString("SMTP_PASS"),
			From:     v.GetString("MAIL_FROM"),
		},
		Logging: LoggingConfig{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
		},
	}
}
