package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server struct {
		Port string
	}
	Resend struct {
		APIKey      string
		BaseURL     string
		FromAddress string
		Timeout     time.Duration
	}
	Gemini struct {
		APIKey  string
		BaseURL string
		Model   string
		Timeout time.Duration
	}
	Feedback struct {
		DefaultSubject string
		RateLimit      int // requests per minute per client
	}
	Explain struct {
		RateLimit int // requests per minute per client
	}
}

func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	var config Config

	// Set defaults
	viper.SetDefault("server.port", "7480")
	viper.SetDefault("resend.base_url", "https://api.resend.com")
	viper.SetDefault("resend.from_address", "MCQS Feedback <code@voting.bartoszbak.org>")
	viper.SetDefault("resend.timeout", "15s")
	viper.SetDefault("gemini.base_url", "https://generativelanguage.googleapis.com")
	viper.SetDefault("gemini.model", "gemini-2.0-flash")
	viper.SetDefault("gemini.timeout", "10s")
	viper.SetDefault("feedback.default_subject", "MCQS Feedback")
	viper.SetDefault("feedback.rate_limit", 25)
	viper.SetDefault("explain.rate_limit", 75)

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	config.Server.Port = viper.GetString("server.port")
	config.Resend.BaseURL = viper.GetString("resend.base_url")
	config.Resend.FromAddress = getEnvOr("DEFAULT_FROM_EMAIL", viper.GetString("resend.from_address"))
	config.Resend.Timeout = viper.GetDuration("resend.timeout")
	config.Resend.APIKey = os.Getenv("RESEND_API_KEY")
	config.Gemini.BaseURL = viper.GetString("gemini.base_url")
	config.Gemini.Model = getEnvOr("GEMINI_MODEL_NAME", viper.GetString("gemini.model"))
	config.Gemini.Timeout = viper.GetDuration("gemini.timeout")
	config.Gemini.APIKey = os.Getenv("GEMINI_API_KEY")
	config.Feedback.DefaultSubject = getEnvOr("DEFAULT_SUBJECT_LINE", viper.GetString("feedback.default_subject"))
	config.Feedback.RateLimit = viper.GetInt("feedback.rate_limit")
	config.Explain.RateLimit = viper.GetInt("explain.rate_limit")

	return &config, nil
}

func (c *Config) ValidateResend() error {
	if c.Resend.APIKey == "" {
		return fmt.Errorf("RESEND_API_KEY is required")
	}
	if c.Resend.BaseURL == "" {
		return fmt.Errorf("resend base URL is required")
	}
	return nil
}

func (c *Config) ValidateGemini() error {
	if c.Gemini.APIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY is required")
	}
	if c.Gemini.Model == "" {
		return fmt.Errorf("gemini model name is required")
	}
	return nil
}

func getEnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
