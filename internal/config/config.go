package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvPrefix      = "STOREMAN"
	configName     = "storeman"
	DefaultBaseURL = "http://localhost:3000/api"
)

type Config struct {
	API    APIConfig    `mapstructure:"api"`
	Server ServerConfig `mapstructure:"server"`
	Log    LogConfig    `mapstructure:"log"`
	UI     UIConfig     `mapstructure:"ui"`
}

type APIConfig struct {
	BaseURL string `mapstructure:"base_url" validate:"required,url"`
	// Timeout of zero means requests wait for the server indefinitely.
	Timeout time.Duration `mapstructure:"timeout" validate:"gte=0"`
}

type ServerConfig struct {
	Addr string `mapstructure:"addr" validate:"required"`
}

type LogConfig struct {
	Level string `mapstructure:"level" validate:"omitempty,oneof=debug info warn error"`
	Env   string `mapstructure:"env"`
}

type UIConfig struct {
	DateLayout string `mapstructure:"date_layout" validate:"required"`
	TruncateAt int    `mapstructure:"truncate_at" validate:"gte=1"`
}

func SetDefaults(v *viper.Viper) {
	v.SetDefault("api.base_url", DefaultBaseURL)
	v.SetDefault("api.timeout", time.Duration(0))
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.env", "development")
	v.SetDefault("ui.date_layout", "1/2/2006")
	v.SetDefault("ui.truncate_at", 40)
}

// Load resolves configuration from defaults, an optional YAML file, a .env
// file and STOREMAN_* environment variables, in increasing precedence.
// Flags bound to v by the caller win over all of them.
func Load(v *viper.Viper, file string) (Config, error) {
	// .env is optional.
	_ = godotenv.Load()

	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", file, err)
		}
	} else {
		v.SetConfigName(configName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
