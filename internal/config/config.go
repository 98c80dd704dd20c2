package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all application configuration. It is constructed once at
// startup and passed by reference into each component's constructor.
type Config struct {
	App      App      `mapstructure:"app"`
	Server   Server   `mapstructure:"server"`
	Search   Search   `mapstructure:"search"`
	AI       AI       `mapstructure:"ai"`
	Pipeline Pipeline `mapstructure:"pipeline"`
}

// App holds general application configuration
type App struct {
	Debug    bool   `mapstructure:"debug"`
	LogLevel string `mapstructure:"log_level"`
}

// Server holds HTTP server configuration
type Server struct {
	Host         string        `mapstructure:"host"`
	Port         int           `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	CORS         CORS          `mapstructure:"cors"`
}

// CORS holds cross-origin configuration
type CORS struct {
	Enabled        bool     `mapstructure:"enabled"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// Search holds search provider configuration
type Search struct {
	Provider   string        `mapstructure:"provider"`
	MaxResults int           `mapstructure:"max_results"`
	Window     time.Duration `mapstructure:"window"`
	Timeout    time.Duration `mapstructure:"timeout"`
	SerpAPI    SerpAPI       `mapstructure:"serpapi"`
}

// SerpAPI holds SerpAPI credentials
type SerpAPI struct {
	APIKey string `mapstructure:"api_key"`
}

// AI holds LLM provider configuration
type AI struct {
	OpenAI OpenAI `mapstructure:"openai"`
}

// OpenAI holds OpenAI configuration. Separate models per stage: topic
// analysis and email drafting run on the cheaper model, expert discovery
// on the larger one.
type OpenAI struct {
	APIKey            string        `mapstructure:"api_key"`
	AnalysisModel     string        `mapstructure:"analysis_model"`
	ExpertModel       string        `mapstructure:"expert_model"`
	EmailModel        string        `mapstructure:"email_model"`
	Temperature       float64       `mapstructure:"temperature"`
	AnalysisMaxTokens int           `mapstructure:"analysis_max_tokens"`
	ExpertMaxTokens   int           `mapstructure:"expert_max_tokens"`
	EmailMaxTokens    int           `mapstructure:"email_max_tokens"`
	Timeout           time.Duration `mapstructure:"timeout"`
}

// Pipeline holds pipeline defaults
type Pipeline struct {
	DefaultQuery string `mapstructure:"default_query"`
}

// Load reads configuration from .env, environment variables and an optional
// newsdesk.yaml config file, then validates required credentials.
func Load() (*Config, error) {
	// .env is optional; real deployments set environment variables directly
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("newsdesk")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.newsdesk")

	setDefaults(v)
	bindEnvironmentVariables(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	// App defaults
	v.SetDefault("app.debug", false)
	v.SetDefault("app.log_level", "info")

	// Server defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8000)
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "180s")
	v.SetDefault("server.cors.enabled", true)
	v.SetDefault("server.cors.allowed_origins", []string{"*"})

	// Search defaults: last 24 hours, capped at 3 stories
	v.SetDefault("search.provider", "serpapi")
	v.SetDefault("search.max_results", 3)
	v.SetDefault("search.window", "24h")
	v.SetDefault("search.timeout", "30s")

	// AI defaults mirror the models each stage was tuned on
	v.SetDefault("ai.openai.analysis_model", "gpt-4o-mini")
	v.SetDefault("ai.openai.expert_model", "gpt-4o")
	v.SetDefault("ai.openai.email_model", "gpt-4o-mini")
	v.SetDefault("ai.openai.temperature", 0.7)
	v.SetDefault("ai.openai.analysis_max_tokens", 5000)
	v.SetDefault("ai.openai.expert_max_tokens", 5000)
	v.SetDefault("ai.openai.email_max_tokens", 3000)
	v.SetDefault("ai.openai.timeout", "120s")

	// Pipeline defaults
	v.SetDefault("pipeline.default_query", "news")
}

// bindEnvironmentVariables sets up flexible environment variable binding
func bindEnvironmentVariables(v *viper.Viper) {
	bindEnvKeys(v, "search.serpapi.api_key", []string{
		"SERPAPI_KEY",
		"SERPAPI_API_KEY",
	})

	bindEnvKeys(v, "ai.openai.api_key", []string{
		"OPENAI_API_KEY",
	})

	bindEnvKeys(v, "search.provider", []string{
		"SEARCH_PROVIDER",
	})

	bindEnvKeys(v, "server.port", []string{
		"PORT",
		"NEWSDESK_PORT",
	})

	bindEnvKeys(v, "app.debug", []string{
		"DEBUG",
		"NEWSDESK_DEBUG",
	})
}

// bindEnvKeys binds the first found environment variable to a viper key
func bindEnvKeys(v *viper.Viper, viperKey string, envKeys []string) {
	for _, envKey := range envKeys {
		if value := os.Getenv(envKey); value != "" {
			v.Set(viperKey, value)
			return
		}
	}
}

// Validate checks that required credentials are present. Missing credentials
// are a startup failure, not a per-request one.
func (c *Config) Validate() error {
	var missing []string

	if strings.EqualFold(c.Search.Provider, "serpapi") && c.Search.SerpAPI.APIKey == "" {
		missing = append(missing, "SERPAPI_KEY")
	}
	if c.AI.OpenAI.APIKey == "" {
		missing = append(missing, "OPENAI_API_KEY")
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %s (set the environment variable or add it to .env)", strings.Join(missing, ", "))
	}

	if c.Search.MaxResults <= 0 {
		return fmt.Errorf("search.max_results must be positive, got %d", c.Search.MaxResults)
	}

	return nil
}
