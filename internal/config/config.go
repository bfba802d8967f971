package config

import (
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	defaultConfigPath = "configs/config.yaml"

	configPathEnv      = "FOOD_SCANNER_CONFIG"
	logLevelEnv        = "FOOD_SCANNER_LOG_LEVEL"
	openAIAPIKeyEnv    = "OPENAI_API_KEY"
	chatGPTModelEnv    = "CHATGPT_MODEL"
	chatGPTEndpointEnv = "CHATGPT_ENDPOINT"
)

// Config holds high-level settings required across the application.
type Config struct {
	Logging LoggingConfig  `yaml:"logging"`
	ChatGPT ChatGPTConfig  `yaml:"chatgpt"`
	Browse  BrowseConfig   `yaml:"browse"`
	Sources []SourceConfig `yaml:"sources"`
}

// LoggingConfig controls log verbosity and destination. The terminal UI owns
// stdout, so logs default to stderr; File redirects them to a file instead.
type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// ChatGPTConfig defines how to contact the chat-completions API.
type ChatGPTConfig struct {
	Endpoint     string  `yaml:"endpoint"`
	Model        string  `yaml:"model"`
	APIKey       string  `yaml:"apiKey"`
	SystemPrompt string  `yaml:"systemPrompt"`
	MaxTokens    int     `yaml:"maxTokens"`
	Completions  int     `yaml:"completions"`
	Temperature  float64 `yaml:"temperature"`
}

// BrowseConfig tunes the article browser.
type BrowseConfig struct {
	PageSize int `yaml:"pageSize"`
}

// SourceConfig is one feed registration entry. Order in the file is the
// order sources are fetched in and the order domains appear in.
type SourceConfig struct {
	URL    string `yaml:"url"`
	Domain string `yaml:"domain"`
}

// Load reads YAML configuration (if present) and applies environment overrides.
func Load() Config {
	cfg := defaultConfig()

	path := os.Getenv(configPathEnv)
	explicit := path != ""
	if path == "" {
		path = defaultConfigPath
	}

	if raw, err := os.ReadFile(path); err != nil {
		if explicit {
			log.Printf("config: cannot read %s: %v (falling back to defaults)", path, err)
		}
	} else {
		var fileCfg Config
		if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
			log.Printf("config: cannot parse %s: %v (falling back to defaults)", path, err)
		} else {
			cfg = mergeConfig(cfg, fileCfg)
		}
	}

	cfg.applyEnvOverrides()

	if len(cfg.Sources) == 0 {
		cfg.Sources = defaultConfig().Sources
	}

	return cfg
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(logLevelEnv); v != "" {
		c.Logging.Level = v
	}

	if v := os.Getenv(openAIAPIKeyEnv); v != "" {
		c.ChatGPT.APIKey = v
	}

	if v := os.Getenv(chatGPTModelEnv); v != "" {
		c.ChatGPT.Model = v
	}

	if v := os.Getenv(chatGPTEndpointEnv); v != "" {
		c.ChatGPT.Endpoint = v
	}
}

func mergeConfig(base, override Config) Config {
	if override.Logging.Level != "" {
		base.Logging.Level = override.Logging.Level
	}
	if override.Logging.File != "" {
		base.Logging.File = override.Logging.File
	}

	if override.ChatGPT.Endpoint != "" {
		base.ChatGPT.Endpoint = override.ChatGPT.Endpoint
	}
	if override.ChatGPT.Model != "" {
		base.ChatGPT.Model = override.ChatGPT.Model
	}
	if override.ChatGPT.APIKey != "" {
		base.ChatGPT.APIKey = override.ChatGPT.APIKey
	}
	if override.ChatGPT.SystemPrompt != "" {
		base.ChatGPT.SystemPrompt = override.ChatGPT.SystemPrompt
	}
	if override.ChatGPT.MaxTokens > 0 {
		base.ChatGPT.MaxTokens = override.ChatGPT.MaxTokens
	}
	if override.ChatGPT.Completions > 0 {
		base.ChatGPT.Completions = override.ChatGPT.Completions
	}
	if override.ChatGPT.Temperature > 0 {
		base.ChatGPT.Temperature = override.ChatGPT.Temperature
	}

	if override.Browse.PageSize > 0 {
		base.Browse.PageSize = override.Browse.PageSize
	}

	if len(override.Sources) > 0 {
		base.Sources = override.Sources
	}

	return base
}

func defaultConfig() Config {
	return Config{
		Logging: LoggingConfig{Level: "info"},
		ChatGPT: ChatGPTConfig{
			Endpoint:     "https://api.openai.com/v1/chat/completions",
			Model:        "gpt-4o-mini",
			APIKey:       "",
			SystemPrompt: "You are an AI assistant tasked with selecting the top 5 articles for each domain (agriculture, aquaculture, future foods, and food safety) most relevant to stakeholders in Singapore's food safety and security.",
			MaxTokens:    2000,
			Completions:  1,
			Temperature:  0.5,
		},
		Browse: BrowseConfig{PageSize: 10},
		Sources: []SourceConfig{
			{URL: "https://vegconomist.com/feed/", Domain: "Future Food"},
			{URL: "https://www.just-food.com/feed/", Domain: "Future Food"},
			{URL: "https://www.fooddive.com/feeds/news/", Domain: "Future Food"},
			{URL: "https://feeds.thefishsite.com/thefishsite-all", Domain: "Aquaculture"},
			{URL: "https://aquaculturemag.com/feed/", Domain: "Aquaculture"},
			{URL: "https://agfundernews.com/feed/", Domain: "Agriculture"},
			{URL: "https://www.globalagtechinitiative.com/feed/", Domain: "Agriculture"},
			{URL: "https://www.rapidmicrobiology.com/feed/", Domain: "Food Safety"},
			{URL: "https://www.food-safety.com/feed/", Domain: "Food Safety"},
		},
	}
}
