package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const envPrefix = "TASKFLOW"

// keys lists every setting so environment overrides reach Unmarshal even
// when the config file does not mention them.
var keys = []string{
	"db.path",
	"preferences.path",
	"redis.url",
	"redis.ttl",
	"http.addr",
	"http.cors_origins",
	"auth.jwt_secret",
	"auth.issuer",
	"auth.token_ttl",
	"log.level",
	"log.format",
	"user.id",
	"user.name",
	"save.timeout",
}

// Load reads the YAML file at path (or the default location when path is
// empty) on top of the defaults, then applies TASKFLOW_* environment
// overrides such as TASKFLOW_DB_PATH. A missing default file is not an error.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v, DefaultConfig())

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("read config %s: %w", path, err)
			}
		} else if explicit || !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("stat config %s: %w", path, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper, cfg *Config) {
	values := map[string]any{
		"db.path":           cfg.DB.Path,
		"preferences.path":  cfg.Preferences.Path,
		"redis.url":         cfg.Redis.URL,
		"redis.ttl":         cfg.Redis.TTL,
		"http.addr":         cfg.HTTP.Addr,
		"http.cors_origins": cfg.HTTP.CORSOrigins,
		"auth.jwt_secret":   cfg.Auth.JWTSecret,
		"auth.issuer":       cfg.Auth.Issuer,
		"auth.token_ttl":    cfg.Auth.TokenTTL,
		"log.level":         cfg.Log.Level,
		"log.format":        cfg.Log.Format,
		"user.id":           cfg.User.ID,
		"user.name":         cfg.User.Name,
		"save.timeout":      cfg.Save.Timeout,
	}
	for _, key := range keys {
		v.SetDefault(key, values[key])
	}
}

// Write stores cfg as YAML at path, creating parent directories.
func Write(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	content, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	header := []byte("# taskflow configuration\n# every key can be overridden with TASKFLOW_<SECTION>_<KEY>\n")
	if err := os.WriteFile(path, append(header, content...), 0o600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// DefaultPath returns <user config dir>/taskflow/config.yaml, or "" when the
// config dir cannot be resolved.
func DefaultPath() string {
	cfgDir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(cfgDir, "taskflow", "config.yaml")
}
