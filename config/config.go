package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Schedule assistant specifics
	LLM         LLMConfig
	GoogleStore GoogleStoreConfig
	API         APIConfig
}

type EnvironmentConfig struct {
	Name     string
	Timezone string // IANA name used for date resolution and all-day boundaries
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// LLMConfig configures the chat-completions backend.
type LLMConfig struct {
	APIKey  string
	BaseURL string
	Model   string
}

// GoogleStoreConfig configures Calendar/Tasks access.
type GoogleStoreConfig struct {
	CredentialsPath       string
	TokenPath             string
	DefaultCalendarID     string
	DefaultReminderListID string
}

// APIConfig protects the HTTP surface.
type APIConfig struct {
	Key             string
	RateLimitPerMin int
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.Environment.Timezone = viper.GetString("environment.timezone")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// LLM backend
	cfg.LLM.APIKey = expandEnvVar(viper.GetString("llm.api_key"))
	cfg.LLM.BaseURL = viper.GetString("llm.base_url")
	cfg.LLM.Model = viper.GetString("llm.model")
	if llmKey := viper.GetString("llm_api_key"); llmKey != "" {
		cfg.LLM.APIKey = llmKey
	}
	if cfg.LLM.APIKey == "" {
		return nil, fmt.Errorf("llm.api_key is required - set it in config.yaml or LLM_API_KEY")
	}

	// Google Calendar / Tasks
	cfg.GoogleStore.CredentialsPath = viper.GetString("google_store.credentials_path")
	cfg.GoogleStore.TokenPath = viper.GetString("google_store.token_path")
	cfg.GoogleStore.DefaultCalendarID = viper.GetString("google_store.default_calendar_id")
	cfg.GoogleStore.DefaultReminderListID = viper.GetString("google_store.default_reminder_list_id")
	if googleCreds := viper.GetString("google_store_credentials"); googleCreds != "" {
		cfg.GoogleStore.CredentialsPath = googleCreds
	}

	// API protection
	cfg.API.Key = expandEnvVar(viper.GetString("api.key"))
	if apiKey := viper.GetString("api_key"); apiKey != "" {
		cfg.API.Key = apiKey
	}
	cfg.API.RateLimitPerMin = viper.GetInt("api.rate_limit_per_min")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("environment.timezone", "UTC")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("llm.base_url", "https://api.openai.com/v1")
	viper.SetDefault("llm.model", "gpt-4o-mini")
	viper.SetDefault("google_store.credentials_path", "credentials.json")
	viper.SetDefault("google_store.token_path", "token.json")
	viper.SetDefault("api.rate_limit_per_min", 60)
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
	}

	return value
}
