package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server struct {
		Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
		Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
	} `yaml:"server" json:"server" jsonschema:"description=Server configuration"`

	Database struct {
		DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:agentpress.db?cache=shared&mode=rwc,description=Database connection string"`
		MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
		MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
		ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
	} `yaml:"database" json:"database" jsonschema:"description=Database configuration"`

	Schedule ScheduleConfig `yaml:"schedule" json:"schedule" jsonschema:"description=Newsletter cycle scheduling"`

	News NewsConfig `yaml:"news" json:"news" jsonschema:"description=News search configuration"`

	LLM LLMConfig `yaml:"llm" json:"llm" jsonschema:"description=LLM configuration for story curation"`

	Delivery DeliveryConfig `yaml:"delivery" json:"delivery" jsonschema:"description=Email delivery provider configuration"`
}

// ScheduleConfig holds orchestrator timing settings
type ScheduleConfig struct {
	CycleInterval time.Duration `yaml:"cycle_interval" json:"cycle_interval" jsonschema:"default=1h,description=How often to evaluate profiles for generation"`
	SweepInterval time.Duration `yaml:"sweep_interval" json:"sweep_interval" jsonschema:"default=15m,description=How often to sweep due editions"`
	MaxWorkers    int           `yaml:"max_workers" json:"max_workers" jsonschema:"default=5,description=Maximum concurrent profile pipelines"`
}

// NewsConfig holds news search settings
type NewsConfig struct {
	Endpoint  string        `yaml:"endpoint" json:"endpoint" jsonschema:"default=https://news.google.com/rss/search,description=RSS search endpoint"`
	PageSize  int           `yaml:"page_size" json:"page_size" jsonschema:"default=10,description=Maximum articles requested per coverage area"`
	MaxTotal  int           `yaml:"max_total" json:"max_total" jsonschema:"default=20,description=Cap on combined candidate articles"`
	Freshness time.Duration `yaml:"freshness" json:"freshness" jsonschema:"default=168h,description=Ignore articles older than this"`
	Timeout   time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=10s,description=Per-query fetch timeout"`
	UserAgent string        `yaml:"user_agent" json:"user_agent" jsonschema:"default=AgentPress/1.0,description=User agent for news requests"`
}

// LLMConfig holds LLM configuration for story curation
type LLMConfig struct {
	Endpoint     string        `yaml:"endpoint" json:"endpoint" jsonschema:"description=OpenAI-compatible API endpoint"`
	APIKey       string        `yaml:"api_key" json:"api_key" jsonschema:"description=API key (can use environment variable)"`
	Model        string        `yaml:"model" json:"model" jsonschema:"required,description=Model name (e.g. gpt-4o-mini)"`
	Temperature  float64       `yaml:"temperature" json:"temperature" jsonschema:"default=0.4,description=Temperature for response generation"`
	MaxTokens    int           `yaml:"max_tokens" json:"max_tokens" jsonschema:"default=2000,description=Maximum tokens in response"`
	Timeout      time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=120s,description=Request timeout"`
	SystemPrompt string        `yaml:"system_prompt" json:"system_prompt" jsonschema:"description=System prompt override (optional)"`
}

// DeliveryConfig holds email delivery provider settings
type DeliveryConfig struct {
	BaseURL           string        `yaml:"base_url" json:"base_url" jsonschema:"default=https://api.cc.email/v3,description=Provider API base URL"`
	TokenURL          string        `yaml:"token_url" json:"token_url" jsonschema:"default=https://authz.constantcontact.com/oauth2/default/v1/token,description=OAuth token endpoint"`
	ClientID          string        `yaml:"client_id" json:"client_id" jsonschema:"description=OAuth client id"`
	ClientSecret      string        `yaml:"client_secret" json:"client_secret" jsonschema:"description=OAuth client secret"`
	Timeout           time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=15s,description=Provider request timeout"`
	PreviewRecipients []string      `yaml:"preview_recipients" json:"preview_recipients" jsonschema:"description=Extra addresses receiving every preview"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	// set defaults for server
	if cfg.Server.Listen == "" {
		cfg.Server.Listen = ":8080"
	}
	if cfg.Server.Timeout == 0 {
		cfg.Server.Timeout = 30 * time.Second
	}

	// set defaults for database
	if cfg.Database.DSN == "" {
		cfg.Database.DSN = "file:agentpress.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 10
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Database.ConnMaxLifetime == 0 {
		cfg.Database.ConnMaxLifetime = 3600
	}

	// set defaults for schedule
	if cfg.Schedule.CycleInterval == 0 {
		cfg.Schedule.CycleInterval = time.Hour
	}
	if cfg.Schedule.SweepInterval == 0 {
		cfg.Schedule.SweepInterval = 15 * time.Minute
	}
	if cfg.Schedule.MaxWorkers == 0 {
		cfg.Schedule.MaxWorkers = 5
	}

	// set defaults for news
	if cfg.News.Endpoint == "" {
		cfg.News.Endpoint = "https://news.google.com/rss/search"
	}
	if cfg.News.PageSize == 0 {
		cfg.News.PageSize = 10
	}
	if cfg.News.MaxTotal == 0 {
		cfg.News.MaxTotal = 20
	}
	if cfg.News.Freshness == 0 {
		cfg.News.Freshness = 7 * 24 * time.Hour
	}
	if cfg.News.Timeout == 0 {
		cfg.News.Timeout = 10 * time.Second
	}
	if cfg.News.UserAgent == "" {
		cfg.News.UserAgent = "AgentPress/1.0"
	}

	// set defaults for LLM
	if cfg.LLM.Temperature == 0 {
		cfg.LLM.Temperature = 0.4
	}
	if cfg.LLM.MaxTokens == 0 {
		cfg.LLM.MaxTokens = 2000
	}
	if cfg.LLM.Timeout == 0 {
		cfg.LLM.Timeout = 120 * time.Second
	}

	// set defaults for delivery
	if cfg.Delivery.BaseURL == "" {
		cfg.Delivery.BaseURL = "https://api.cc.email/v3"
	}
	if cfg.Delivery.TokenURL == "" {
		cfg.Delivery.TokenURL = "https://authz.constantcontact.com/oauth2/default/v1/token"
	}
	if cfg.Delivery.Timeout == 0 {
		cfg.Delivery.Timeout = 15 * time.Second
	}

	// validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// verify against embedded schema
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		// log warning but don't fail - schema validation is supplementary
		fmt.Printf("warning: schema validation failed: %v\n", err)
	}

	return &cfg, nil
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	// validate LLM config
	if cfg.LLM.Model == "" {
		return fmt.Errorf("llm.model is required")
	}
	if cfg.LLM.Temperature < 0 || cfg.LLM.Temperature > 2 {
		return fmt.Errorf("llm.temperature must be between 0 and 2")
	}

	// validate news config
	if cfg.News.PageSize < 1 {
		return fmt.Errorf("news.page_size must be at least 1")
	}
	if cfg.News.MaxTotal < 1 {
		return fmt.Errorf("news.max_total must be at least 1")
	}
	if cfg.News.Timeout < time.Second {
		return fmt.Errorf("news.timeout must be at least 1 second")
	}

	// validate delivery config
	if cfg.Delivery.ClientID == "" {
		return fmt.Errorf("delivery.client_id is required")
	}
	if cfg.Delivery.ClientSecret == "" {
		return fmt.Errorf("delivery.client_secret is required")
	}

	// validate schedule config
	if cfg.Schedule.MaxWorkers < 1 {
		return fmt.Errorf("schedule.max_workers must be at least 1")
	}

	// validate server config
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}

	return nil
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// GetNewsConfig returns news search configuration
func (c *Config) GetNewsConfig() NewsConfig {
	return c.News
}

// GetLLMConfig returns LLM configuration
func (c *Config) GetLLMConfig() LLMConfig {
	return c.LLM
}

// GetDeliveryConfig returns delivery provider configuration
func (c *Config) GetDeliveryConfig() DeliveryConfig {
	return c.Delivery
}

// GetScheduleConfig returns scheduler configuration
func (c *Config) GetScheduleConfig() ScheduleConfig {
	return c.Schedule
}
