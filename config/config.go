// Package config provides configuration management for the chess rules
// engine's HTTP surface: server and logging settings read from the
// environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config represents the application configuration.
type Config struct {
	Server  ServerConfig  `json:"server"`
	Logging LoggingConfig `json:"logging"`
}

// ServerConfig contains HTTP server configuration.
type ServerConfig struct {
	Host            string        `json:"host"`
	Port            int           `json:"port"`
	ReadTimeout     time.Duration `json:"read_timeout"`
	WriteTimeout    time.Duration `json:"write_timeout"`
	IdleTimeout     time.Duration `json:"idle_timeout"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout"`
	CORSEnabled     bool          `json:"cors_enabled"`
	AllowedOrigins  []string      `json:"allowed_origins"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	Level      string `json:"level"`
	Format     string `json:"format"`
	OutputPath string `json:"output_path"`
	ErrorPath  string `json:"error_path"`
}

// Default returns a default configuration, reading overrides from the
// environment.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            getEnvString("CHESSRULES_HOST", "localhost"),
			Port:            getEnvInt("CHESSRULES_PORT", 8080),
			ReadTimeout:     getEnvDuration("CHESSRULES_READ_TIMEOUT", 30*time.Second),
			WriteTimeout:    getEnvDuration("CHESSRULES_WRITE_TIMEOUT", 30*time.Second),
			IdleTimeout:     getEnvDuration("CHESSRULES_IDLE_TIMEOUT", 120*time.Second),
			ShutdownTimeout: getEnvDuration("CHESSRULES_SHUTDOWN_TIMEOUT", 10*time.Second),
			CORSEnabled:     getEnvBool("CHESSRULES_CORS_ENABLED", true),
			AllowedOrigins:  getEnvStringSlice("CHESSRULES_ALLOWED_ORIGINS", []string{"*"}),
		},
		Logging: LoggingConfig{
			Level:      getEnvString("CHESSRULES_LOG_LEVEL", "info"),
			Format:     getEnvString("CHESSRULES_LOG_FORMAT", "json"),
			OutputPath: getEnvString("CHESSRULES_LOG_OUTPUT_PATH", "stdout"),
			ErrorPath:  getEnvString("CHESSRULES_LOG_ERROR_PATH", "stderr"),
		},
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid port: %d (must be between 0 and 65535)", c.Server.Port)
	}
	if c.Server.ReadTimeout <= 0 {
		return fmt.Errorf("invalid server read timeout: %v (must be positive)", c.Server.ReadTimeout)
	}
	if c.Server.WriteTimeout <= 0 {
		return fmt.Errorf("invalid server write timeout: %v (must be positive)", c.Server.WriteTimeout)
	}
	return nil
}

// GetServerAddress returns the full server address.
func (c *Config) GetServerAddress() string {
	return c.Server.Host + ":" + strconv.Itoa(c.Server.Port)
}

// Helper functions for environment variable parsing.

func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getEnvStringSlice(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		return []string{value}
	}
	return defaultValue
}
