// Package config manages environment variables.
//
// It reads variables from the process environment (and a `.env` file when
// present), maps them into structured Go types and validates that required
// values are present so the rest of the application can rely on them.
//
// Keys use the EXIMROYALS_ prefix and "." as the nesting delimiter, e.g.
//
//	EXIMROYALS_SERVER.PORT=8080  ->  Config.Server.Port
//	EXIMROYALS_DATABASE.HOST=db  ->  Config.Database.Host
package config

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	// Loads `.env` into the process environment before anything reads it.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"github.com/rs/zerolog"
)

// EnvPrefix is the prefix every configuration variable must carry.
const EnvPrefix = "EXIMROYALS_"

// ServiceName tags logs, traces and metrics emitted by this process.
const ServiceName = "eximroyals"

// Config is the root configuration object for the application.
//
// Observability is a pointer because it is optional. When omitted the
// defaults from DefaultObservabilityConfig are injected.
type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	Database      DatabaseConfig       `koanf:"database" validate:"required"`
	Redis         RedisConfig          `koanf:"redis" validate:"required"`
	Auth          AuthConfig           `koanf:"auth" validate:"required"`
	Integration   IntegrationConfig    `koanf:"integration"`
	Notification  NotificationConfig   `koanf:"notification"`
	Seed          SeedConfig           `koanf:"seed"`
	Observability *ObservabilityConfig `koanf:"observability"`
}

// Primary holds top-level information about the runtime environment.
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups settings for the HTTP server runtime.
// Timeouts are expressed in seconds.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"required"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"required"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"required"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required"`

	// EnquiryRateLimit is the number of enquiry submissions per second
	// accepted from a single client IP. Zero disables the limiter.
	EnquiryRateLimit float64 `koanf:"enquiry_rate_limit" validate:"min=0"`
}

// DatabaseConfig contains PostgreSQL connection parameters and pool tuning.
type DatabaseConfig struct {
	Host            string `koanf:"host" validate:"required"`
	Port            int    `koanf:"port" validate:"required"`
	User            string `koanf:"user" validate:"required"`
	Password        string `koanf:"password" validate:"required"`
	Name            string `koanf:"name" validate:"required"`
	SSLMode         string `koanf:"ssl_mode" validate:"required"`
	MaxOpenConns    int    `koanf:"max_open_conns" validate:"required"`
	MaxIdleConns    int    `koanf:"max_idle_conns" validate:"required"`
	ConnMaxLifetime int    `koanf:"conn_max_lifetime" validate:"required"`
	ConnMaxIdleTime int    `koanf:"conn_max_idle_time" validate:"required"`
}

// DSN builds a postgres:// connection string. The password is URL-escaped
// so characters like '@' or ':' cannot break the URL structure.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=%s",
		d.User,
		url.QueryEscape(d.Password),
		net.JoinHostPort(d.Host, strconv.Itoa(d.Port)),
		d.Name,
		d.SSLMode,
	)
}

// RedisConfig contains Redis connection details. Address is "host:port".
type RedisConfig struct {
	Address string `koanf:"address" validate:"required"`
}

// AuthConfig stores the admin token signing settings.
type AuthConfig struct {
	SecretKey string `koanf:"secret_key" validate:"required,min=16"`

	// TokenTTL is how long an issued admin token stays valid.
	TokenTTL time.Duration `koanf:"token_ttl"`
}

// IntegrationConfig holds credentials for third-party providers.
type IntegrationConfig struct {
	ResendAPIKey string `koanf:"resend_api_key"`
}

// NotificationConfig controls the "new enquiry" email sent to the site owner.
type NotificationConfig struct {
	Enabled   bool   `koanf:"enabled"`
	Recipient string `koanf:"recipient" validate:"required_if=Enabled true,omitempty,email"`
	Sender    string `koanf:"sender"`
}

// SeedConfig overrides the bootstrap administrator credentials.
// Empty values fall back to the built-in defaults.
type SeedConfig struct {
	AdminEmail    string `koanf:"admin_email" validate:"omitempty,email"`
	AdminPassword string `koanf:"admin_password"`
}

const (
	defaultTokenTTL         = 24 * time.Hour
	defaultEnquiryRateLimit = 5
	defaultNotificationFrom = "Exim Royals <onboarding@resend.dev>"
)

// LoadConfig loads configuration from the environment, validates it and
// fills in defaults. The process exits when configuration is unusable.
func LoadConfig() (*Config, error) {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg, err := load()
	if err != nil {
		logger.Fatal().Err(err).Msg("could not load config")
	}

	return cfg, nil
}

// load does the actual work of LoadConfig and returns errors instead of
// exiting, which keeps it testable.
func load() (*Config, error) {
	k := koanf.New(".")

	err := k.Load(env.ProviderWithValue(EnvPrefix, ".", func(key, value string) (string, interface{}) {
		key = strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
		if key == "server.cors_allowed_origins" {
			return key, strings.Split(value, ",")
		}
		return key, value
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("loading env variables: %w", err)
	}

	mainConfig := &Config{}
	if err := k.Unmarshal("", mainConfig); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	if mainConfig.Auth.TokenTTL == 0 {
		mainConfig.Auth.TokenTTL = defaultTokenTTL
	}
	if !k.Exists("server.enquiry_rate_limit") {
		mainConfig.Server.EnquiryRateLimit = defaultEnquiryRateLimit
	}
	if mainConfig.Notification.Sender == "" {
		mainConfig.Notification.Sender = defaultNotificationFrom
	}

	if mainConfig.Observability == nil {
		mainConfig.Observability = DefaultObservabilityConfig()
	} else {
		mainConfig.Observability.applyDefaults()
	}

	if err := validator.New().Struct(mainConfig); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	if mainConfig.Notification.Enabled && mainConfig.Integration.ResendAPIKey == "" {
		return nil, fmt.Errorf("integration.resend_api_key is required when notifications are enabled")
	}

	// Service name and environment are always derived, never configured.
	mainConfig.Observability.ServiceName = ServiceName
	mainConfig.Observability.Environment = mainConfig.Primary.Env

	if err := mainConfig.Observability.Validate(); err != nil {
		return nil, fmt.Errorf("invalid observability config: %w", err)
	}

	return mainConfig, nil
}
