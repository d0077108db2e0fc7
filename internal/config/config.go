package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cooperativa/facturabot/internal/types"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Configuration struct {
	Deployment DeploymentConfig `validate:"required"`
	Server     ServerConfig     `validate:"required"`
	Logging    LoggingConfig    `validate:"required"`
	Postgres   PostgresConfig   `validate:"required"`
	Drive      DriveConfig      `validate:"required"`
	Folders    FoldersConfig    `validate:"required"`
	Messaging  MessagingConfig
	Completion CompletionConfig
	Quota      QuotaConfig
	Sentry     SentryConfig
	Pyroscope  PyroscopeConfig
	Cache      CacheConfig
}

type DeploymentConfig struct {
	Mode types.RunMode `validate:"required"`
}

type ServerConfig struct {
	Address string `validate:"required"`
	// WebhookSecret is the shared secret expected on inbound webhook calls
	WebhookSecret string
	// RequestTimeout bounds the processing of a single inbound message
	RequestTimeout time.Duration
	// RateLimitRPS throttles inbound webhook calls. Zero disables the
	// limiter.
	RateLimitRPS   float64
	RateLimitBurst int
}

type LoggingConfig struct {
	Level types.LogLevel `validate:"required"`
}

type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// DriveConfig points at the bucket holding the invoice folder hierarchy.
// Folders are first-level prefixes inside the bucket.
type DriveConfig struct {
	Region   string `validate:"required"`
	Bucket   string `validate:"required"`
	Endpoint string
}

// FoldersConfig captures the folder naming convention. Invoices from
// CutoverYear/CutoverMonth onwards live in per-type folders named
// {type}-{month}-{year}; earlier periods share a single folder whose
// name comes from SharedNameTemplate ({month} and {year} placeholders).
// The shared name is configuration because the convention predates this
// system and is not derivable from the split convention.
type FoldersConfig struct {
	CutoverMonth       int    `validate:"required,min=1,max=12"`
	CutoverYear        int    `validate:"required"`
	SharedNameTemplate string `validate:"required"`
}

type MessagingConfig struct {
	Enabled bool
	BaseURL string
	Token   string
}

type CompletionConfig struct {
	Enabled bool
	BaseURL string
	APIKey  string
	Model   string
}

// QuotaConfig caps invoice deliveries per recipient per calendar month.
// Zero means unlimited.
type QuotaConfig struct {
	MonthlyLimit int
}

type SentryConfig struct {
	Enabled     bool
	DSN         string
	Environment string
	SampleRate  float64
}

type PyroscopeConfig struct {
	Enabled         bool
	ServerAddress   string
	ApplicationName string
	BasicAuthUser   string
	BasicAuthPass   string
}

type CacheConfig struct {
	Enabled bool
}

func NewConfig() (*Configuration, error) {
	// Load .env if present, for local development
	_ = godotenv.Load()

	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/facturabot")

	v.SetEnvPrefix("FACTURABOT")
	v.SetEnvKeyReplacer(strings.NewReplacer(
		".", "_",
		"-", "_",
	))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return nil, err
		}
	}

	var config Configuration
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("deployment.mode", types.ModeAPI)
	v.SetDefault("server.address", ":8080")
	v.SetDefault("server.requesttimeout", 30*time.Second)
	v.SetDefault("logging.level", types.LogLevelInfo)
	v.SetDefault("postgres.port", 5432)
	v.SetDefault("postgres.sslmode", "disable")
	v.SetDefault("folders.sharednametemplate", "facturas-{month}-{year}")
	v.SetDefault("server.ratelimitburst", 5)
	v.SetDefault("cache.enabled", true)
	v.SetDefault("quota.monthlylimit", 0)
	v.SetDefault("pyroscope.applicationname", "facturabot")
}

func (c Configuration) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

// GetDefaultConfig returns a default configuration for local development
// and tests. Not used by the server entrypoint.
func GetDefaultConfig() *Configuration {
	return &Configuration{
		Deployment: DeploymentConfig{Mode: types.ModeLocal},
		Server:     ServerConfig{Address: ":8080", RequestTimeout: 30 * time.Second},
		Logging:    LoggingConfig{Level: types.LogLevelDebug},
		Folders: FoldersConfig{
			CutoverMonth:       1,
			CutoverYear:        2023,
			SharedNameTemplate: "facturas-{month}-{year}",
		},
		Cache: CacheConfig{Enabled: true},
	}
}

func (c PostgresConfig) GetDSN() string {
	return fmt.Sprintf(
		"user=%s password=%s dbname=%s host=%s port=%d sslmode=%s",
		c.User,
		c.Password,
		c.DBName,
		c.Host,
		c.Port,
		c.SSLMode,
	)
}
