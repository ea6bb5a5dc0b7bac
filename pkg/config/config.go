package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/umputun/newsquiz/pkg/quiz"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server     ServerConfig      `yaml:"server" json:"server" jsonschema:"description=Server configuration"`
	Feed       FeedConfig        `yaml:"feed" json:"feed" jsonschema:"description=Feed fetching configuration"`
	Quiz       QuizConfig        `yaml:"quiz" json:"quiz" jsonschema:"description=Quiz generation configuration"`
	Categories map[string]string `yaml:"categories" json:"categories" jsonschema:"description=Category name to RSS feed URL"`
}

// ServerConfig holds http server settings
type ServerConfig struct {
	Listen         string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
	Timeout        time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
	AllowedOrigins []string      `yaml:"allowed_origins" json:"allowed_origins" jsonschema:"description=CORS allowed origins (default any)"`
}

// FeedConfig holds feed fetching settings
type FeedConfig struct {
	Timeout   time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=20s,description=Feed fetch timeout, shorter than server timeout"`
	UserAgent string        `yaml:"user_agent" json:"user_agent" jsonschema:"default=NewsQuiz/1.0,description=User agent for feed requests"`
}

// QuizConfig holds quiz generation settings
type QuizConfig struct {
	Questions       int    `yaml:"questions" json:"questions" jsonschema:"default=7,minimum=1,description=Number of questions requested per quiz"`
	SummaryLength   int    `yaml:"summary_length" json:"summary_length" jsonschema:"default=220,minimum=20,description=Maximum summary length in characters"`
	DefaultCategory string `yaml:"default_category" json:"default_category" jsonschema:"default=sverige,description=Category used for unknown or missing category"`
	HeadlinePrompt  string `yaml:"headline_prompt" json:"headline_prompt" jsonschema:"description=Question asking to pick the headline for a summary"`
	SummaryPrompt   string `yaml:"summary_prompt" json:"summary_prompt" jsonschema:"description=Question asking to pick the summary for a headline"`
}

// default feeds, SVT Nyheter
var defaultCategories = map[string]string{
	"sverige": "https://www.svt.se/nyheter/sverige/rss.xml",
	"varlden": "https://www.svt.se/nyheter/varlden/rss.xml",
	"vast":    "https://www.svt.se/nyheter/lokalt/vast/rss.xml",
}

// Default returns configuration with all defaults set, used when no config file is given
func Default() *Config {
	cfg := &Config{}
	setDefaults(cfg)
	return cfg
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

	setDefaults(&cfg)

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

func setDefaults(cfg *Config) {
	// server
	if cfg.Server.Listen == "" {
		cfg.Server.Listen = ":8080"
	}
	if cfg.Server.Timeout == 0 {
		cfg.Server.Timeout = 30 * time.Second
	}
	if len(cfg.Server.AllowedOrigins) == 0 {
		cfg.Server.AllowedOrigins = []string{"*"}
	}

	// feed
	if cfg.Feed.Timeout == 0 {
		cfg.Feed.Timeout = 20 * time.Second
	}
	if cfg.Feed.UserAgent == "" {
		cfg.Feed.UserAgent = "NewsQuiz/1.0"
	}

	// quiz
	if cfg.Quiz.Questions == 0 {
		cfg.Quiz.Questions = quiz.DefaultQuestionCount
	}
	if cfg.Quiz.SummaryLength == 0 {
		cfg.Quiz.SummaryLength = quiz.DefaultSummaryLength
	}
	if cfg.Quiz.HeadlinePrompt == "" {
		cfg.Quiz.HeadlinePrompt = quiz.DefaultHeadlinePrompt
	}
	if cfg.Quiz.SummaryPrompt == "" {
		cfg.Quiz.SummaryPrompt = quiz.DefaultSummaryPrompt
	}

	// categories, the default set only if none configured
	if len(cfg.Categories) == 0 {
		cfg.Categories = make(map[string]string, len(defaultCategories))
		for k, v := range defaultCategories {
			cfg.Categories[k] = v
		}
		if cfg.Quiz.DefaultCategory == "" {
			cfg.Quiz.DefaultCategory = "sverige"
		}
	}
	cfg.Quiz.DefaultCategory = strings.ToLower(cfg.Quiz.DefaultCategory)
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}
	if cfg.Feed.Timeout < time.Second {
		return fmt.Errorf("feed timeout must be at least 1 second")
	}
	// a fetch running into the server write deadline loses the error response
	if cfg.Feed.Timeout >= cfg.Server.Timeout {
		return fmt.Errorf("feed timeout %v must be shorter than server timeout %v", cfg.Feed.Timeout, cfg.Server.Timeout)
	}
	if cfg.Quiz.Questions < 1 {
		return fmt.Errorf("quiz.questions must be at least 1")
	}
	if cfg.Quiz.SummaryLength < 20 {
		return fmt.Errorf("quiz.summary_length must be at least 20")
	}

	if cfg.Quiz.DefaultCategory == "" {
		return fmt.Errorf("quiz.default_category is required when categories are set")
	}
	found := false
	for name, url := range cfg.Categories {
		if url == "" {
			return fmt.Errorf("category %q has no feed url", name)
		}
		if strings.EqualFold(name, cfg.Quiz.DefaultCategory) {
			found = true
		}
	}
	if !found {
		return fmt.Errorf("quiz.default_category %q is not in categories", cfg.Quiz.DefaultCategory)
	}

	return nil
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// GetAllowedOrigins returns CORS allowed origins
func (c *Config) GetAllowedOrigins() []string {
	return c.Server.AllowedOrigins
}
