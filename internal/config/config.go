package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server struct {
		Host string
		Port int
	}
	OpenAI struct {
		APIKey  string
		Model   string
		BaseURL string
	}
	SerpAPI struct {
		APIKey string
	}
	Redis struct {
		Addr     string
		Password string
		DB       int
	}
	Fetch struct {
		Timeout time.Duration
	}
}

// Load reads configuration from the process environment. A .env file in the
// working directory is loaded first if present; missing files are not an error.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var c Config
	c.Server.Host = envOr("HOST", "0.0.0.0")
	port, err := strconv.Atoi(envOr("PORT", "8000"))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT: %w", err)
	}
	c.Server.Port = port

	c.OpenAI.APIKey = os.Getenv("OPENAI_API_KEY")
	c.OpenAI.Model = envOr("OPENAI_MODEL", "gpt-4o-mini")
	c.OpenAI.BaseURL = os.Getenv("OPENAI_BASE_URL")
	c.SerpAPI.APIKey = os.Getenv("SERPAPI_KEY")

	c.Redis.Addr = os.Getenv("REDIS_ADDR")
	c.Redis.Password = os.Getenv("REDIS_PASSWORD")
	if v := os.Getenv("REDIS_DB"); v != "" {
		db, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
		}
		c.Redis.DB = db
	}

	c.Fetch.Timeout = 5 * time.Second
	if v := os.Getenv("FETCH_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid FETCH_TIMEOUT: %w", err)
		}
		c.Fetch.Timeout = d
	}

	if c.OpenAI.APIKey == "" {
		return nil, errors.New("OPENAI_API_KEY must be set")
	}
	if c.SerpAPI.APIKey == "" {
		return nil, errors.New("SERPAPI_KEY must be set")
	}

	return &c, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
