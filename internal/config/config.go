// Load envs from .env
// Load YAML or JSON config
// Override with env vars
// Provide default values
// Validate config

package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"

	"go-linkedin-job-source/internal/ai"
	"go-linkedin-job-source/internal/browser"
	"go-linkedin-job-source/internal/scraper/linkedin"
	"go-linkedin-job-source/internal/search"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	JobRole      string `yaml:"job_role"`
	OpenAIAPIKey string `yaml:"open_ai_api_key"`
	//Search criteria
	Location string `yaml:"location"`
	JobType  string `yaml:"job_type"`
	PastTime string `yaml:"past_time"`
	JobLevel string `yaml:"job_level"`
	//Enrichment
	PrimaryModel  string `yaml:"primary_model"`
	FallbackModel string `yaml:"fallback_model"`
	//Scrolling
	ScrollDenominator int `yaml:"scroll_denominator"`
	//Paths
	CookiesPath      string `yaml:"cookies_path"`
	DebugScreenshots string `yaml:"debug_screenshots"`
	//Optional sinks
	DatabaseURL    string `yaml:"database_url"`
	TelegramToken  string `yaml:"telegram_token"`
	TelegramChatID int64  `yaml:"telegram_chat_id"`
	//Browser, from the environment only
	ChromeBin        string `yaml:"-"`
	ChromeDriverPath string `yaml:"-"`
}

// Load reads path (YAML or JSON) on top of .env and the process environment.
// An empty path skips the file.
func Load(path string) (*Config, error) {
	var data []byte
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}
	return LoadBytes(data)
}

// LoadBytes is Load for a config document already in memory.
func LoadBytes(data []byte) (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if len(data) > 0 {
		if err := Parse(data, cfg); err != nil {
			return nil, err
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse decodes a YAML or JSON document into cfg.
func Parse(data []byte, cfg *Config) error {
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("error parsing config: %w", err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	//Override with env vars
	if key := os.Getenv("OPENAI_API_KEY"); key != "" && c.OpenAIAPIKey == "" {
		c.OpenAIAPIKey = key
	}
	if url := os.Getenv("DATABASE_URL"); url != "" {
		c.DatabaseURL = url
	}
	if token := os.Getenv("TELEGRAM_BOT_TOKEN"); token != "" {
		c.TelegramToken = token
	}
	if chatID := os.Getenv("TELEGRAM_CHAT_ID"); chatID != "" {
		id, err := strconv.ParseInt(chatID, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid TELEGRAM_CHAT_ID: %w", err)
		}
		c.TelegramChatID = id
	}
	c.ChromeBin = os.Getenv("CHROME_BIN")
	c.ChromeDriverPath = os.Getenv("CHROME_DRIVER_PATH")
	return nil
}

func (c *Config) applyDefaults() {
	//Set default values if not set
	defaults := search.DefaultFilters()
	if c.Location == "" {
		c.Location = defaults.Location
	}
	if c.JobType == "" {
		c.JobType = defaults.JobType
	}
	if c.PastTime == "" {
		c.PastTime = defaults.PastTime
	}
	if c.JobLevel == "" {
		c.JobLevel = defaults.JobLevel
	}
	if c.PrimaryModel == "" {
		c.PrimaryModel = ai.DefaultPrimaryModel
	}
	if c.FallbackModel == "" {
		c.FallbackModel = ai.DefaultFallbackModel
	}
	if c.ScrollDenominator <= 0 {
		c.ScrollDenominator = linkedin.ResultsPerPage
	}
}

// Validate reports the first missing or unknown setting. Unknown search
// labels are caught here, before any network activity.
func (c *Config) Validate() error {
	if c.JobRole == "" {
		return errors.New("job_role is required")
	}
	if c.OpenAIAPIKey == "" {
		return errors.New("open_ai_api_key (or OPENAI_API_KEY) is required")
	}
	if err := c.Filters().Validate(); err != nil {
		return err
	}
	if (c.TelegramToken == "") != (c.TelegramChatID == 0) {
		log.Printf("⚠️ Telegram summary disabled: both telegram_token and telegram_chat_id are needed")
	}
	return nil
}

func (c *Config) Filters() search.Filters {
	return search.Filters{
		Location: c.Location,
		JobType:  c.JobType,
		PastTime: c.PastTime,
		JobLevel: c.JobLevel,
	}
}

// BrowserOptions returns the launch options for listing sessions.
func (c *Config) BrowserOptions() browser.Options {
	opts := browser.DefaultOptions()
	opts.ExecutablePath = c.ChromeBin
	opts.DriverDirectory = c.ChromeDriverPath
	return opts
}

// TelegramEnabled is true when a run summary can be sent.
func (c *Config) TelegramEnabled() bool {
	return c.TelegramToken != "" && c.TelegramChatID != 0
}
