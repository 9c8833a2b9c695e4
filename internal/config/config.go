package config

import (
	"strings"
	"time"

	"github.com/HectorMRC/geocart"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the configuration settings for the conversion service.
// It includes the environment, server port, altitude provider selection,
// number of workers, polling interval, reference sphere radius, and
// database configuration.
//
// Fields:
// - Env: The current environment (e.g., local, dev, prod).
// - Port: The port for the conversion monitoring server.
// - ProviderType: The type of altitude provider to use (static, google, open-elevation).
// - APIKey: The API key for accessing external services (required for Google).
// - ProviderRate: The request rate limit for the altitude provider, per second.
// - Elevation: The fixed elevation returned by the static provider, in meters.
// - Workers: The number of concurrent workers for processing points.
// - Interval: The duration between processing intervals.
// - Radius: The radius of the reference sphere, in meters.
// - Database: Configuration settings for the PostgreSQL database.
type Config struct {
	Env          string         `mapstructure:"env"`           // Env is the current environment: local, dev, prod.
	Port         int            `mapstructure:"health_port"`   // Port is the conversion monitoring server port.
	ProviderType string         `mapstructure:"provider_type"` // ProviderType specifies which altitude provider to use
	APIKey       string         `mapstructure:"provider_key"`  // The API key for accessing external services.
	ProviderRate int            `mapstructure:"provider_rate"` // The request rate limit for the altitude provider.
	Elevation    float64        `mapstructure:"elevation"`     // The fixed elevation for the static provider, in meters.
	Workers      int            `mapstructure:"workers"`       // The number of concurrent workers for processing points.
	Interval     time.Duration  `mapstructure:"interval"`      // The duration between processing intervals.
	Radius       float64        `mapstructure:"radius"`        // The radius of the reference sphere, in meters.
	Database     PostgresConfig `mapstructure:"database"`      // Database holds the postgres database configuration
}

// PostgresConfig struct holds the configuration details for connecting to a PostgreSQL database.
type PostgresConfig struct {
	Host     string `mapstructure:"host"`     // Host is the database server address.
	Port     string `mapstructure:"port"`     // Port is the database server port.
	User     string `mapstructure:"user"`     // User is the database user.
	Password string `mapstructure:"password"` // Password is the database user's password.
	Name     string `mapstructure:"name"`     // Name is the name of the database.
}

// MustLoad loads the configuration from the environment and returns a Config struct.
// A .env file is honored when present, and GEOCART_CONFIG may point at a YAML file
// whose values are overridden by the environment.
func MustLoad() *Config {
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("env", "production")
	v.SetDefault("health_port", 8080)
	v.SetDefault("provider_type", "static")
	v.SetDefault("provider_key", "")
	v.SetDefault("provider_rate", 5)
	v.SetDefault("elevation", 0.0)
	v.SetDefault("workers", 10)
	v.SetDefault("interval", "10m")
	v.SetDefault("radius", geocart.EarthRadius)
	v.SetDefault("database.port", "5432")

	v.SetEnvPrefix("GEOCART")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// The database credentials keep their conventional unprefixed names.
	for key, env := range map[string]string{
		"database.host":     "DB_HOST",
		"database.port":     "DB_PORT",
		"database.user":     "DB_USERNAME",
		"database.password": "DB_PASSWORD",
		"database.name":     "DB_NAME",
	} {
		if err := v.BindEnv(key, env); err != nil {
			panic("failed to bind database environment variables")
		}
	}

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			panic("failed to read configuration file: " + path)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		panic("failed to unmarshal configuration")
	}

	if cfg.Interval <= 0 {
		panic("failed to parse interval from configuration, must be a positive duration")
	}
	if cfg.Workers <= 0 {
		panic("failed to parse workers from configuration, must be a positive integer")
	}
	if cfg.Radius <= 0 {
		panic("failed to parse radius from configuration, must be a positive number of meters")
	}

	return &cfg
}
