package config

import (
	"github.com/spf13/viper"

	"github.com/rish12345678/DeskManager/internal"
)

type Config struct {
	Rules struct {
		Path string
	}
	Organizer struct {
		AutoConfirm bool
	}
	Logging struct {
		Level string
		File  string
	}
}

var cfg Config

func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.AddConfigPath("$HOME/.deskmanager")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/deskmanager")

	viper.SetDefault("rules.path", internal.DefaultRulesPath)
	viper.SetDefault("organizer.auto_confirm", false)
	viper.SetDefault("logging.level", "info")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func Get() *Config {
	return &cfg
}
