package config

import "time"

// Config is the full application configuration.
type Config struct {
	DB          DBConfig          `yaml:"db" mapstructure:"db"`
	Preferences PreferencesConfig `yaml:"preferences" mapstructure:"preferences"`
	Redis       RedisConfig       `yaml:"redis" mapstructure:"redis"`
	HTTP        HTTPConfig        `yaml:"http" mapstructure:"http"`
	Auth        AuthConfig        `yaml:"auth" mapstructure:"auth"`
	Log         LogConfig         `yaml:"log" mapstructure:"log"`
	User        UserConfig        `yaml:"user" mapstructure:"user"`
	Save        SaveConfig        `yaml:"save" mapstructure:"save"`
}

// DBConfig locates the SQLite database. An empty path means the user config dir.
type DBConfig struct {
	Path string `yaml:"path" mapstructure:"path"`
}

type PreferencesConfig struct {
	Path string `yaml:"path" mapstructure:"path"`
}

// RedisConfig enables the board snapshot cache when URL is set.
type RedisConfig struct {
	URL string        `yaml:"url" mapstructure:"url"`
	TTL time.Duration `yaml:"ttl" mapstructure:"ttl"`
}

type HTTPConfig struct {
	Addr        string `yaml:"addr" mapstructure:"addr"`
	// CORSOrigins is a comma separated list; empty allows any origin.
	CORSOrigins string `yaml:"cors_origins" mapstructure:"cors_origins"`
}

type AuthConfig struct {
	JWTSecret string        `yaml:"jwt_secret" mapstructure:"jwt_secret"`
	Issuer    string        `yaml:"issuer" mapstructure:"issuer"`
	TokenTTL  time.Duration `yaml:"token_ttl" mapstructure:"token_ttl"`
}

type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// UserConfig is the local identity used by the terminal UI and CLI.
type UserConfig struct {
	ID   string `yaml:"id" mapstructure:"id"`
	Name string `yaml:"name" mapstructure:"name"`
}

type SaveConfig struct {
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`
}
