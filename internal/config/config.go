package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
)

type ServerConfig struct {
	Host string
	Port int
}

type OpenAIConfig struct {
	APIKey  string
	BaseURL string
	Model   string
}

type PerplexityConfig struct {
	APIKey  string
	BaseURL string
	Model   string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
}

// Config holds every environment-sourced setting. It is built once in main
// and passed by reference into component constructors; nothing reads the
// environment after Load returns.
type Config struct {
	Server            ServerConfig
	OpenAI            OpenAIConfig
	Perplexity        PerplexityConfig
	Redis             RedisConfig
	SMTP              SMTPConfig
	DatabaseDSN       string
	NotificationEmail string
	NewsSource        string
	NewsURL           string
	NumQuestions      int
	TriggerURL        string
}

// Load reads recognized environment variables and validates required ones.
func Load() (*Config, error) {
	c := &Config{}

	c.Server.Host = getenv("SERVER_HOST", "0.0.0.0")
	port, err := getenvInt("SERVER_PORT", 8080)
	if err != nil {
		return nil, err
	}
	c.Server.Port = port

	c.OpenAI.APIKey = os.Getenv("OPENAI_API_KEY")
	c.OpenAI.BaseURL = getenv("OPENAI_BASE_URL", "https://api.openai.com/v1/chat/completions")
	c.OpenAI.Model = getenv("OPENAI_MODEL", "gpt-4o-mini")

	c.Perplexity.APIKey = os.Getenv("PERPLEXITY_API_KEY")
	c.Perplexity.BaseURL = getenv("PERPLEXITY_BASE_URL", "https://api.perplexity.ai/chat/completions")
	c.Perplexity.Model = getenv("PERPLEXITY_MODEL", "llama-3.1-sonar-large-128k-online")

	c.DatabaseDSN = os.Getenv("DATABASE_DSN")

	c.Redis.Addr = getenv("REDIS_ADDR", "localhost:6379")
	c.Redis.Password = os.Getenv("REDIS_PASSWORD")
	redisDB, err := getenvInt("REDIS_DB", 0)
	if err != nil {
		return nil, err
	}
	c.Redis.DB = redisDB

	c.SMTP.Host = getenv("SMTP_HOST", "smtp.gmail.com")
	smtpPort, err := getenvInt("SMTP_PORT", 587)
	if err != nil {
		return nil, err
	}
	c.SMTP.Port = smtpPort
	c.SMTP.Username = os.Getenv("SMTP_USERNAME")
	c.SMTP.Password = os.Getenv("SMTP_PASSWORD")
	c.NotificationEmail = os.Getenv("NOTIFICATION_EMAIL")

	c.NewsSource = getenv("NEWS_SOURCE", "scrape")
	if c.NewsSource != "scrape" && c.NewsSource != "digest" {
		return nil, fmt.Errorf("NEWS_SOURCE must be \"scrape\" or \"digest\", got %q", c.NewsSource)
	}
	c.NewsURL = getenv("NEWS_URL", "https://economictimes.indiatimes.com/tech/artificial-intelligence")
	numQuestions, err := getenvInt("NUM_QUESTIONS", 20)
	if err != nil {
		return nil, err
	}
	c.NumQuestions = numQuestions

	c.TriggerURL = getenv("TRIGGER_URL", fmt.Sprintf("http://localhost:%d/generate-quiz", c.Server.Port))

	// Minimal validation
	if c.OpenAI.APIKey == "" {
		return nil, errors.New("OPENAI_API_KEY must be set")
	}
	if c.DatabaseDSN == "" {
		return nil, errors.New("DATABASE_DSN must be set")
	}

	return c, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid value for %s: %w", key, err)
	}
	return n, nil
}
