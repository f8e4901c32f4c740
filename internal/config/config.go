package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig
	Places PlacesConfig
	Log    LogConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
}

// PlacesConfig - настройки клиента Google Places API (New)
type PlacesConfig struct {
	APIKey         string
	BaseURL        string
	RequestTimeout int // seconds
}

type LogConfig struct {
	Level string
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// .env is optional: in containers everything comes from the environment
	if err := viper.ReadInConfig(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: viper.GetString("API_HOST"),
			Port: viper.GetInt("API_PORT"),
			Env:  viper.GetString("API_ENV"),
		},
		Places: PlacesConfig{
			APIKey:         viper.GetString("GOOGLE_MAPS_API_KEY"),
			BaseURL:        viper.GetString("PLACES_BASE_URL"),
			RequestTimeout: viper.GetInt("PLACES_REQUEST_TIMEOUT"),
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
	}

	// Set default values if not provided
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 5001
	}
	if cfg.Server.Env == "" {
		cfg.Server.Env = "production"
	}
	if cfg.Places.BaseURL == "" {
		cfg.Places.BaseURL = "https://places.googleapis.com/v1"
	}
	if cfg.Places.RequestTimeout == 0 {
		cfg.Places.RequestTimeout = 10
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}

	return cfg, nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// MaskedKey возвращает ключ API в замаскированном виде для логов
func (p *PlacesConfig) MaskedKey() string {
	if p.APIKey == "" {
		return ""
	}
	if len(p.APIKey) <= 6 {
		return strings.Repeat("*", len(p.APIKey))
	}
	return strings.Repeat("*", len(p.APIKey)-6) + p.APIKey[len(p.APIKey)-6:]
}
