package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds the full application configuration loaded from
// environment variables or a .env file.
//
// It is composed of smaller structs that represent different concerns
// of the system: HTTP server settings, the upstream quote provider,
// and the default query echoed into the dashboard form.
//
// Example YAML/ENV equivalent:
//
//	SERVER_PORT=8080
//	PROVIDER_BASE_URL=https://q.stock.sohu.com/hisHq
//	PROVIDER_REFERER_BASE=https://q.stock.sohu.com
//	PROVIDER_TIMEOUT_SECONDS=10
//	DEFAULT_STOCK_CODE=cn_600919
//	DEFAULT_START_DATE=20250101
//	DEFAULT_END_DATE=20260203
type Config struct {
	Server   ServerConfig   // HTTP server configuration
	Provider ProviderConfig // Upstream quote provider settings
	Defaults DefaultsConfig // Default query parameters
}

// ServerConfig holds HTTP server settings such as the port to listen on.
type ServerConfig struct {
	Port string // The TCP port the HTTP server will listen on (e.g., "8080")
}

// ProviderConfig defines how to reach the historical quote provider.
//
// Fields:
//   - BaseURL: the hisHq endpoint serving JSONP history data.
//   - RefererBase: site root used to build the per-ticker referer header.
//   - Timeout: bound on each outbound request. The provider call is a
//     single best-effort attempt; there is no retry.
type ProviderConfig struct {
	BaseURL     string
	RefererBase string
	Timeout     time.Duration
}

// DefaultsConfig holds the query used when a fetch request leaves
// fields empty, mirroring the dashboard form defaults.
type DefaultsConfig struct {
	StockCode string
	StartDate string
	EndDate   string
}

// AppConfig is the globally accessible configuration instance.
//
// It is populated once via LoadConfig() and used throughout the
// application. All packages should read from AppConfig instead of
// reloading environment variables directly.
var AppConfig Config

// LoadConfig initializes the global AppConfig by reading from a .env
// file or directly from environment variables.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this function.
//  2. Values from .env file (if present).
//  3. Environment variables.
//
// Fatal exit:
//   - If required variables end up empty, validateConfig() terminates
//     the app with a descriptive log message.
func LoadConfig() {
	// Default values
	viper.SetDefault("SERVER_PORT", "8080")

	viper.SetDefault("PROVIDER_BASE_URL", "https://q.stock.sohu.com/hisHq")
	viper.SetDefault("PROVIDER_REFERER_BASE", "https://q.stock.sohu.com")
	viper.SetDefault("PROVIDER_TIMEOUT_SECONDS", 10)

	viper.SetDefault("DEFAULT_STOCK_CODE", "cn_600919")
	viper.SetDefault("DEFAULT_START_DATE", "20250101")
	viper.SetDefault("DEFAULT_END_DATE", "20260203")

	// Optionally read from .env if present (common in local dev)
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig() // ignore error if no .env

	// Read environment variables automatically
	viper.AutomaticEnv()

	// Populate global config instance
	AppConfig = Config{
		Server: ServerConfig{
			Port: viper.GetString("SERVER_PORT"),
		},
		Provider: ProviderConfig{
			BaseURL:     viper.GetString("PROVIDER_BASE_URL"),
			RefererBase: viper.GetString("PROVIDER_REFERER_BASE"),
			Timeout:     time.Duration(viper.GetInt("PROVIDER_TIMEOUT_SECONDS")) * time.Second,
		},
		Defaults: DefaultsConfig{
			StockCode: viper.GetString("DEFAULT_STOCK_CODE"),
			StartDate: viper.GetString("DEFAULT_START_DATE"),
			EndDate:   viper.GetString("DEFAULT_END_DATE"),
		},
	}

	validateConfig()
}

// validateConfig ensures required variables are present and
// terminates the application if they are missing.
//
// This avoids unexpected runtime failures due to incomplete
// configuration.
func validateConfig() {
	var missing []string

	if AppConfig.Server.Port == "" {
		missing = append(missing, "SERVER_PORT")
	}
	if AppConfig.Provider.BaseURL == "" {
		missing = append(missing, "PROVIDER_BASE_URL")
	}
	if AppConfig.Provider.RefererBase == "" {
		missing = append(missing, "PROVIDER_REFERER_BASE")
	}
	if AppConfig.Provider.Timeout <= 0 {
		missing = append(missing, "PROVIDER_TIMEOUT_SECONDS")
	}

	if len(missing) > 0 {
		log.Fatalf("missing required environment variables: %v\n", missing)
	}
}
