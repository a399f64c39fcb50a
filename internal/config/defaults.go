package config

import "time"

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Redis: RedisConfig{
			TTL: 5 * time.Minute,
		},
		HTTP: HTTPConfig{
			Addr: ":8080",
		},
		Auth: AuthConfig{
			Issuer:   "taskflow",
			TokenTTL: 24 * time.Hour,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		User: UserConfig{
			ID:   "local",
			Name: "Me",
		},
		Save: SaveConfig{
			Timeout: 10 * time.Second,
		},
	}
}
