package config

import (
	"github.com/spf13/viper"
)

type Config struct {
	Assistant AssistantConfig `mapstructure:"assistant"`
	Extractor ExtractorConfig `mapstructure:"extractor"`
	OpenAI    OpenAIConfig    `mapstructure:"openai"`
}

type AssistantConfig struct {
	ResponseDelayMs   int `mapstructure:"response_delay_ms"`
	SuggestionDelayMs int `mapstructure:"suggestion_delay_ms"`
	InsightDelayMs    int `mapstructure:"insight_delay_ms"`
}

type ExtractorConfig struct {
	CacheSize int  `mapstructure:"cache_size"`
	UseGPT    bool `mapstructure:"use_gpt"`
}

type OpenAIConfig struct {
	APIKey      string  `mapstructure:"api_key"`
	Model       string  `mapstructure:"model"`
	MaxTokens   int     `mapstructure:"max_tokens"`
	Temperature float64 `mapstructure:"temperature"`
}

func LoadConfig(path string) (*Config, error) {
	v := viper.New()

	// Set default values
	v.SetDefault("assistant.response_delay_ms", 1500)
	v.SetDefault("assistant.suggestion_delay_ms", 2000)
	v.SetDefault("assistant.insight_delay_ms", 2000)
	v.SetDefault("extractor.cache_size", 128)
	v.SetDefault("extractor.use_gpt", false)
	v.SetDefault("openai.model", "gpt-3.5-turbo")
	v.SetDefault("openai.max_tokens", 150)
	v.SetDefault("openai.temperature", 0.2)

	// Enable environment variable support
	v.AutomaticEnv()

	// Read the config file
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	if apiKey := v.GetString("OPENAI_API_KEY"); apiKey != "" {
		config.OpenAI.APIKey = apiKey
	}

	return &config, nil
}
