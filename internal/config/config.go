package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Mail      MailConfig      `mapstructure:"mail"`
	Cache     CacheConfig     `mapstructure:"cache"`
	Site      SiteConfig      `mapstructure:"site"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	Log       LogConfig       `mapstructure:"log"`
}

type ServerConfig struct {
	Port           int           `mapstructure:"port"`
	Mode           string        `mapstructure:"mode"`
	ReadTimeout    time.Duration `mapstructure:"read_timeout"`
	WriteTimeout   time.Duration `mapstructure:"write_timeout"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
}

type DatabaseConfig struct {
	URL             string        `mapstructure:"url"`
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	Name            string        `mapstructure:"name"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the connection string, preferring an explicit URL.
func (c DatabaseConfig) DSN() string {
	if c.URL != "" {
		return c.URL
	}
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode,
	)
}

type MailConfig struct {
	Provider       string        `mapstructure:"provider"` // brevo or smtp
	APIKey         string        `mapstructure:"api_key"`
	Endpoint       string        `mapstructure:"endpoint"`
	Timeout        time.Duration `mapstructure:"timeout"`
	SenderName     string        `mapstructure:"sender_name"`
	SenderEmail    string        `mapstructure:"sender_email"`
	RecipientName  string        `mapstructure:"recipient_name"`
	RecipientEmail string        `mapstructure:"recipient_email"`
	SMTPHost       string        `mapstructure:"smtp_host"`
	SMTPPort       int           `mapstructure:"smtp_port"`
	SMTPUser       string        `mapstructure:"smtp_user"`
	SMTPPassword   string        `mapstructure:"smtp_password"`
}

// Configured reports whether a provider credential is present.
func (c MailConfig) Configured() bool {
	switch c.Provider {
	case "smtp":
		return c.SMTPHost != ""
	default:
		return c.APIKey != ""
	}
}

type CacheConfig struct {
	TTL             time.Duration `mapstructure:"ttl"`
	CleanupInterval time.Duration `mapstructure:"cleanup_interval"`
	RedisURL        string        `mapstructure:"redis_url"`
}

type SiteConfig struct {
	Name           string `mapstructure:"name"`
	BaseURL        string `mapstructure:"base_url"`
	BookingBaseURL string `mapstructure:"booking_base_url"`
}

type RateLimitConfig struct {
	ContactRPS   float64 `mapstructure:"contact_rps"`
	ContactBurst int     `mapstructure:"contact_burst"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// ErrMissingDatabase is returned when no data-store connection is configured.
var ErrMissingDatabase = errors.New("database connection is not configured")

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 3000)
	v.SetDefault("server.mode", "release")
	v.SetDefault("server.read_timeout", 10*time.Second)
	v.SetDefault("server.write_timeout", 30*time.Second)
	v.SetDefault("server.request_timeout", 15*time.Second)

	v.SetDefault("database.url", "")
	v.SetDefault("database.host", "")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "")
	v.SetDefault("database.password", "")
	v.SetDefault("database.name", "postgres")
	v.SetDefault("database.sslmode", "require")
	v.SetDefault("database.max_open_conns", 10)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.conn_max_lifetime", 30*time.Minute)

	v.SetDefault("mail.provider", "brevo")
	v.SetDefault("mail.api_key", "")
	v.SetDefault("mail.endpoint", "https://api.brevo.com/v3/smtp/email")
	v.SetDefault("mail.timeout", 10*time.Second)
	v.SetDefault("mail.sender_name", "Directorio Médico del Ecuador")
	v.SetDefault("mail.sender_email", "noreply@clinifymed.com")
	v.SetDefault("mail.recipient_name", "Soporte Clinify")
	v.SetDefault("mail.recipient_email", "soporte@clinifymed.com")
	v.SetDefault("mail.smtp_host", "")
	v.SetDefault("mail.smtp_port", 587)
	v.SetDefault("mail.smtp_user", "")
	v.SetDefault("mail.smtp_password", "")

	v.SetDefault("cache.ttl", 10*time.Minute)
	v.SetDefault("cache.cleanup_interval", time.Hour)
	v.SetDefault("cache.redis_url", "")

	v.SetDefault("site.name", "Directorio Médico del Ecuador")
	v.SetDefault("site.base_url", "https://doctoresecuador.com")
	v.SetDefault("site.booking_base_url", "https://app.clinify.io/booking")

	v.SetDefault("rate_limit.contact_rps", 1.0)
	v.SetDefault("rate_limit.contact_burst", 5)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
}

// legacyEnv maps the environment names used by the deployment onto config keys.
var legacyEnv = map[string]string{
	"database.url":  "DATABASE_URL",
	"mail.api_key":  "BREVO_API_KEY",
	"site.base_url": "SITE_URL",
	"server.port":   "PORT",
}

// LoadConfig builds the configuration once at process start. Values come from
// defaults, an optional config.yaml, .env.local/.env and the environment, in
// increasing order of precedence.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load(".env.local")
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/app/config")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, env := range legacyEnv {
		if err := v.BindEnv(key, strings.ToUpper(strings.ReplaceAll(key, ".", "_")), env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks the settings the process cannot start without.
func (c *Config) Validate() error {
	if c.Database.URL == "" && c.Database.Host == "" {
		return ErrMissingDatabase
	}
	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("unsupported server mode %q", c.Server.Mode)
	}
	if c.Mail.Provider != "brevo" && c.Mail.Provider != "smtp" {
		return fmt.Errorf("unsupported mail provider %q", c.Mail.Provider)
	}
	c.Site.BaseURL = strings.TrimRight(c.Site.BaseURL, "/")
	c.Site.BookingBaseURL = strings.TrimRight(c.Site.BookingBaseURL, "/")
	return nil
}
