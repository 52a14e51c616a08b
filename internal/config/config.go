package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const defaultJWTSecret = "your-secret-key-change-in-production"

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Identities: the owner may always administer; admins are seeded into the registry
	OwnerID  string   `mapstructure:"OWNER_ID"`
	AdminIDs []string `mapstructure:"ADMIN_IDS"`

	// Team settings
	MaxTeamSize     int `mapstructure:"MAX_TEAM_SIZE"`
	MaxTeams        int `mapstructure:"MAX_TEAMS"`
	DurationMinutes int `mapstructure:"DURATION_MINUTES"`

	// Provisioning parameters, passed through to the teardown hook
	IPBase          string `mapstructure:"IP_BASE"`
	StartResourceID int    `mapstructure:"START_RESOURCE_ID"`
	MachinesPerTeam int    `mapstructure:"MACHINES_PER_TEAM"`

	// Scheduling
	SchedulerIntervalSeconds int `mapstructure:"SCHEDULER_INTERVAL_SECONDS"`
	JoinRequestTTLMinutes    int `mapstructure:"JOIN_REQUEST_TTL_MINUTES"`
	JoinRequestsPerMinute    int `mapstructure:"JOIN_REQUESTS_PER_MINUTE"`

	// JWT configuration. The chat bot presents BotAPIKey when minting tokens for platform users.
	JWTSecret     string `mapstructure:"JWT_SECRET"`
	TokenTTLHours int    `mapstructure:"TOKEN_TTL_HOURS"`
	BotAPIKey     string `mapstructure:"BOT_API_KEY"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`

	// Notification audit log (postgres)
	AuditEnabled       bool   `mapstructure:"AUDIT_ENABLED"`
	AuditRetentionDays int    `mapstructure:"AUDIT_RETENTION_DAYS"`
	DatabaseURL        string `mapstructure:"DATABASE_URL"`
	DatabaseHost       string `mapstructure:"DB_HOST"`
	DatabasePort       string `mapstructure:"DB_PORT"`
	DatabaseUser       string `mapstructure:"DB_USER"`
	DatabasePassword   string `mapstructure:"DB_PASSWORD"`
	DatabaseName       string `mapstructure:"DB_NAME"`
	DatabaseSSLMode    string `mapstructure:"DB_SSL_MODE"`

	// Redis fan-out to the chat bot worker
	RedisAddr          string `mapstructure:"REDIS_ADDR"`
	RedisPassword      string `mapstructure:"REDIS_PASSWORD"`
	RedisDB            int    `mapstructure:"REDIS_DB"`
	RedisChannelPrefix string `mapstructure:"REDIS_CHANNEL_PREFIX"`

	// Jenkins teardown job
	JenkinsBaseURL string `mapstructure:"JENKINS_BASE_URL"`
	JenkinsJob     string `mapstructure:"JENKINS_JOB"`
	JenkinsUser    string `mapstructure:"JENKINS_USER"`
	JenkinsToken   string `mapstructure:"JENKINS_TOKEN"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	// Set default values
	setDefaults(v)

	// Read config file if it exists
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Comma separated env values arrive as a single element
	config.AdminIDs = splitList(config.AdminIDs)
	config.AllowedOrigins = splitList(config.AllowedOrigins)

	// Build database URL if not provided
	if config.DatabaseURL == "" {
		config.DatabaseURL = buildDatabaseURL(&config)
	}

	// Validate required fields
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("PORT", "7008")
	v.SetDefault("LOG_LEVEL", "info")

	v.SetDefault("OWNER_ID", "")
	v.SetDefault("ADMIN_IDS", []string{})

	// Team defaults: five members for twenty-four hours
	v.SetDefault("MAX_TEAM_SIZE", 5)
	v.SetDefault("MAX_TEAMS", 10)
	v.SetDefault("DURATION_MINUTES", 1440)

	v.SetDefault("IP_BASE", "10.0.0.")
	v.SetDefault("START_RESOURCE_ID", 1)
	v.SetDefault("MACHINES_PER_TEAM", 1)

	v.SetDefault("SCHEDULER_INTERVAL_SECONDS", 30)
	v.SetDefault("JOIN_REQUEST_TTL_MINUTES", 0)
	v.SetDefault("JOIN_REQUESTS_PER_MINUTE", 6)

	// JWT defaults
	v.SetDefault("JWT_SECRET", defaultJWTSecret)
	v.SetDefault("TOKEN_TTL_HOURS", 24)
	v.SetDefault("BOT_API_KEY", "")

	// CORS defaults
	v.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:8080"})

	// Database defaults
	v.SetDefault("AUDIT_ENABLED", false)
	v.SetDefault("AUDIT_RETENTION_DAYS", 30)
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "team_lifecycle")
	v.SetDefault("DB_SSL_MODE", "disable")

	// Redis defaults - empty address disables the redis sink
	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("REDIS_CHANNEL_PREFIX", "teams:notify")

	// Jenkins defaults - empty job disables teardown
	v.SetDefault("JENKINS_BASE_URL", "")
	v.SetDefault("JENKINS_JOB", "")
	v.SetDefault("JENKINS_USER", "")
	v.SetDefault("JENKINS_TOKEN", "")
}

func splitList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

func buildDatabaseURL(config *Config) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.DatabaseUser,
		config.DatabasePassword,
		config.DatabaseHost,
		config.DatabasePort,
		config.DatabaseName,
		config.DatabaseSSLMode,
	)
}

func validate(config *Config) error {
	if config.Environment == "production" {
		if config.JWTSecret == defaultJWTSecret {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
	}

	if config.TokenTTLHours <= 0 {
		return fmt.Errorf("TOKEN_TTL_HOURS must be positive")
	}
	if config.MaxTeamSize <= 0 {
		return fmt.Errorf("MAX_TEAM_SIZE must be positive")
	}
	if config.MaxTeams <= 0 {
		return fmt.Errorf("MAX_TEAMS must be positive")
	}
	if config.DurationMinutes <= 0 {
		return fmt.Errorf("DURATION_MINUTES must be positive")
	}
	if config.MachinesPerTeam <= 0 {
		return fmt.Errorf("MACHINES_PER_TEAM must be positive")
	}
	if config.SchedulerIntervalSeconds <= 0 {
		return fmt.Errorf("SCHEDULER_INTERVAL_SECONDS must be positive")
	}
	if config.AuditRetentionDays < 0 {
		return fmt.Errorf("AUDIT_RETENTION_DAYS cannot be negative")
	}
	if config.JoinRequestTTLMinutes < 0 {
		return fmt.Errorf("JOIN_REQUEST_TTL_MINUTES cannot be negative")
	}

	return nil
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// SchedulerInterval returns the milestone scan period
func (c *Config) SchedulerInterval() time.Duration {
	return time.Duration(c.SchedulerIntervalSeconds) * time.Second
}

// TokenTTL returns the lifetime of issued bearer tokens
func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.TokenTTLHours) * time.Hour
}

// AuditRetention returns how long audit rows are kept; zero keeps them forever
func (c *Config) AuditRetention() time.Duration {
	return time.Duration(c.AuditRetentionDays) * 24 * time.Hour
}

// JoinRequestTTL returns the pending join request lifetime; zero disables expiry
func (c *Config) JoinRequestTTL() time.Duration {
	return time.Duration(c.JoinRequestTTLMinutes) * time.Minute
}
