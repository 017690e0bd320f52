package config

import (
	"fmt"
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application. Mapstructure tags map
// environment variables and config-file keys onto fields.
type Config struct {
	// Server
	ServerAddress string `mapstructure:"SERVER_ADDRESS"` // e.g. ":8080"

	// Remote model provider
	OpenAIKey   string `mapstructure:"OPENAI_API_KEY"`
	OpenAIModel string `mapstructure:"OPENAI_MODEL"` // e.g. "gpt-4o"

	// Local model provider (any OpenAI-compatible endpoint, e.g. Ollama)
	LocalLLMURL   string `mapstructure:"LOCAL_LLM_URL"` // e.g. "http://localhost:11434/v1"
	LocalLLMModel string `mapstructure:"LOCAL_LLM_MODEL"`

	// Pipeline tuning
	ProviderTimeoutSeconds int `mapstructure:"PROVIDER_TIMEOUT_SECONDS"` // per provider call
	SectionConcurrency     int `mapstructure:"SECTION_CONCURRENCY"`      // parallel section fills

	// Logging
	LogLevel  string `mapstructure:"LOG_LEVEL"`  // debug|info|warn|error
	LogFormat string `mapstructure:"LOG_FORMAT"` // json|console
}

// ProviderTimeout returns the per-call timeout as a duration.
func (c Config) ProviderTimeout() time.Duration {
	return time.Duration(c.ProviderTimeoutSeconds) * time.Second
}

// LoadConfig reads configuration from config.yaml and environment variables.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.SetDefault("SERVER_ADDRESS", ":8080")
	viper.SetDefault("OPENAI_MODEL", "gpt-4o")
	viper.SetDefault("LOCAL_LLM_URL", "http://localhost:11434/v1")
	viper.SetDefault("LOCAL_LLM_MODEL", "llama3")
	viper.SetDefault("PROVIDER_TIMEOUT_SECONDS", 60)
	viper.SetDefault("SECTION_CONCURRENCY", 4)
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_FORMAT", "console")

	viper.AutomaticEnv()

	err = viper.ReadInConfig()
	if err != nil {
		// Missing config file is fine, env vars may carry everything.
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Config file ('config.yaml') not found, relying on environment variables.")
		} else {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		log.Printf("Using configuration file: %s", viper.ConfigFileUsed())
	}

	err = viper.Unmarshal(&config)
	if err != nil {
		return Config{}, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	if config.OpenAIKey == "" {
		log.Println("WARN: OPENAI_API_KEY is not set; the remote-llm provider will be unavailable.")
	}

	return
}
