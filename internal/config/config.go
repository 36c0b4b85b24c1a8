package config

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/fx"
)

// Config holds application configuration. Values come from an optional
// hirelane.yml plus HIRELANE_* environment overrides; a local .env is loaded
// first in dev mode.
type Config struct {
	AppName      string
	Environment  string
	HTTPAddr     string
	LogLevel     string
	SeedDemoData bool
}

func Load() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("app.name", "hirelane")
	v.SetDefault("app.environment", "development")
	v.SetDefault("http.addr", ":8080")
	v.SetDefault("log.level", "info")
	v.SetDefault("seed.demo_data", true)

	v.SetConfigName("hirelane")
	v.SetConfigType("yml")
	v.AddConfigPath("/etc/hirelane")
	v.AddConfigPath(".")

	v.SetEnvPrefix("HIRELANE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, err
		}
	}

	return Config{
		AppName:      v.GetString("app.name"),
		Environment:  v.GetString("app.environment"),
		HTTPAddr:     v.GetString("http.addr"),
		LogLevel:     v.GetString("log.level"),
		SeedDemoData: v.GetBool("seed.demo_data"),
	}, nil
}

var Module = fx.Module("config",
	fx.Provide(Load),
)
