package config

import "time"

type Config struct {
	API        APIConfig      `mapstructure:"api"`
	Defaults   DefaultsConfig `mapstructure:"defaults"`
	ConfigPath string         `mapstructure:"-"`
}

type APIConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type DefaultsConfig struct {
	Currency string `mapstructure:"currency"`
	PageSize int    `mapstructure:"page_size"`
}

func NewDefault() *Config {
	return &Config{
		API: APIConfig{
			BaseURL: "http://localhost:3000",
			Timeout: 30 * time.Second,
		},
		Defaults: DefaultsConfig{
			Currency: "MXN",
			PageSize: 25,
		},
	}
}
