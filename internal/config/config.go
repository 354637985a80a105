package config

type Config struct {
	Backend    BackendConfig `mapstructure:"backend"`
	ConfigPath string        `mapstructure:"-"`
}

type BackendConfig struct {
	BaseURL        string `mapstructure:"base_url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

func NewDefault() *Config {
	return &Config{
		Backend: BackendConfig{
			BaseURL:        "http://localhost:8080",
			TimeoutSeconds: 15,
		},
	}
}
