package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App AppConfig
	API APIConfig
}

type AppConfig struct {
	Env         string
	ListPerPage int
}

type APIConfig struct {
	BaseURL string
	Token   string
	Timeout time.Duration
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	timeout, err := time.ParseDuration(viper.GetString("API_TIMEOUT"))
	if err != nil {
		timeout = 15 * time.Second
	}

	perPage := viper.GetInt("LIST_PER_PAGE")
	if perPage < 1 {
		perPage = 10
	}

	config := &Config{
		App: AppConfig{
			Env:         viper.GetString("APP_ENV"),
			ListPerPage: perPage,
		},
		API: APIConfig{
			BaseURL: viper.GetString("API_BASE_URL"),
			Token:   viper.GetString("API_TOKEN"),
			Timeout: timeout,
		},
	}

	return config, nil
}
