// Package config loads runtime settings from configs/app.env and the
// environment, with environment variables taking precedence.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config stores all configuration of the application.
type Config struct {
	DBSource           string        `mapstructure:"DB_SOURCE"`
	ServerAddress      string        `mapstructure:"SERVER_ADDRESS"`
	LogLevel           string        `mapstructure:"LOG_LEVEL"`
	LogFormat          string        `mapstructure:"LOG_FORMAT"`
	GinMode            string        `mapstructure:"GIN_MODE"`
	CORSAllowedOrigins []string      `mapstructure:"CORS_ALLOWED_ORIGINS"`
	ShutdownTimeout    time.Duration `mapstructure:"SHUTDOWN_TIMEOUT"`
}

var defaults = map[string]interface{}{
	"SERVER_ADDRESS":       ":8080",
	"LOG_LEVEL":            "info",
	"LOG_FORMAT":           "json",
	"GIN_MODE":             "release",
	"CORS_ALLOWED_ORIGINS": "*",
	"SHUTDOWN_TIMEOUT":     "10s",
}

// LoadConfig reads app.env from path. A missing file is not an error; every
// key can also come from the environment.
func LoadConfig(path string) (Config, error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")
	v.AutomaticEnv()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	// AutomaticEnv only covers keys viper already knows about.
	v.SetDefault("DB_SOURCE", "")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("config: failed to read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return Config{}, fmt.Errorf("config: failed to decode config: %w", err)
	}
	config.CORSAllowedOrigins = splitOrigins(v.GetString("CORS_ALLOWED_ORIGINS"))

	if config.DBSource == "" {
		return Config{}, fmt.Errorf("config: DB_SOURCE is required")
	}

	return config, nil
}

func splitOrigins(raw string) []string {
	var origins []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
