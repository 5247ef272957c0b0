package bootstrap

import (
	"errors"
	"io/fs"
	"time"

	"github.com/spf13/viper"
)

const (
	StoreMemory = "memory"
	StoreRedis  = "redis"
)

type Config struct {
	ServerPort       string        `mapstructure:"SERVER_PORT"`
	IsLocalCors      bool          `mapstructure:"LOCAL_CORS"`
	AllowedOrigins   []string      `mapstructure:"ALLOWED_ORIGINS"`
	Store            string        `mapstructure:"STORE"`
	RedisUrl         string        `mapstructure:"REDIS_URL"`
	RedisPassword    string        `mapstructure:"REDIS_PASSWORD"`
	RedisDB          int           `mapstructure:"REDIS_DB"`
	GameTTL          time.Duration `mapstructure:"GAME_TTL"`
	MandatoryCapture bool          `mapstructure:"MANDATORY_CAPTURE"`
	LogDev           bool          `mapstructure:"LOG_DEV"`
}

var keys = map[string]any{
	"SERVER_PORT":       "8080",
	"LOCAL_CORS":        false,
	"ALLOWED_ORIGINS":   []string{"http://localhost:5173"},
	"STORE":             StoreMemory,
	"REDIS_URL":         "localhost:6379",
	"REDIS_PASSWORD":    "",
	"REDIS_DB":          0,
	"GAME_TTL":          24 * time.Hour,
	"MANDATORY_CAPTURE": false,
	"LOG_DEV":           false,
}

// Setup reads cfgPath (a .env file) and lets environment variables override
// it. A missing file is not an error; defaults and the environment apply.
func Setup(cfgPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(cfgPath)
	v.SetConfigType("env")
	v.AutomaticEnv()
	for key, def := range keys {
		v.SetDefault(key, def)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	if cfg.Store != StoreMemory && cfg.Store != StoreRedis {
		return nil, errors.New("STORE must be memory or redis, got " + cfg.Store)
	}

	return &cfg, nil
}
