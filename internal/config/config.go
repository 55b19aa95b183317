package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// ErrMissingCredential is returned when no API key can be resolved.
var ErrMissingCredential = errors.New("missing API credential")

// Config holds the application configuration
type Config struct {
	LLM     LLMConfig
	Render  RenderConfig
	History HistoryConfig
	Server  ServerConfig
	Log     LogConfig
}

// LLMConfig holds the LLM configuration
type LLMConfig struct {
	BaseURL       string `mapstructure:"base_url"`
	APIKey        string `mapstructure:"api_key"`
	APIKeyFile    string `mapstructure:"api_key_file"`
	Model         string `mapstructure:"model"`
	DeveloperRole string `mapstructure:"developer_role"`
}

// RenderConfig controls how completions are displayed
type RenderConfig struct {
	Style string `mapstructure:"style"`
	Width int    `mapstructure:"width"`
}

// HistoryConfig holds the transcript store configuration. An empty path disables it.
type HistoryConfig struct {
	Path string `mapstructure:"path"`
}

// ServerConfig holds the server configuration
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

// LogConfig holds the log level
type LogConfig struct {
	Level string `mapstructure:"level"`
}

const (
	DefaultBaseURL    = "https://api.openai.com/v1"
	DefaultModel      = "gpt-4.1-nano"
	DefaultAPIKeyFile = "OpenAI_key.txt"
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("llm.base_url", DefaultBaseURL)
	v.SetDefault("llm.api_key", "")
	v.SetDefault("llm.api_key_file", DefaultAPIKeyFile)
	v.SetDefault("llm.model", DefaultModel)
	v.SetDefault("llm.developer_role", "developer")
	v.SetDefault("render.style", "auto")
	v.SetDefault("render.width", 80)
	v.SetDefault("history.path", "")
	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", "8080")
	v.SetDefault("log.level", "info")
}

// Load reads the configuration and resolves the API credential. A missing
// config file is not an error; a missing credential is.
func Load() (*Config, error) {
	config, err := Read()
	if err != nil {
		return nil, err
	}

	if config.LLM.APIKey == "" {
		key, err := ReadCredential(config.LLM.APIKeyFile)
		if err != nil {
			return nil, err
		}
		config.LLM.APIKey = key
	}

	return config, nil
}

// Read loads config.yaml from the working directory, or the file named by
// CONFIG_PATH, applying defaults and environment overrides. The credential
// is left unresolved.
func Read() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("HELLOLLM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("llm.api_key", "HELLOLLM_LLM_API_KEY", "OPENAI_API_KEY"); err != nil {
		return nil, err
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	return &config, nil
}

// ReadCredential reads an API key from a plain-text file, trimming surrounding
// whitespace. A missing or blank file yields ErrMissingCredential.
func ReadCredential(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("no key file configured: %w", ErrMissingCredential)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("key file %s not found: %w", path, ErrMissingCredential)
		}
		return "", fmt.Errorf("read key file %s: %w", path, err)
	}
	key := strings.TrimSpace(string(raw))
	if key == "" {
		return "", fmt.Errorf("key file %s is empty: %w", path, ErrMissingCredential)
	}
	return key, nil
}
