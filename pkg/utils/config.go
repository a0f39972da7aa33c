package utils

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/viper"
)

const (
	ModeConsole = "console"
	ModeHTTP    = "http"
)

type Config struct {
	App       AppConfig
	Inventory InventoryConfig
}

type AppConfig struct {
	Name      string
	Mode      string `validate:"required,oneof=console http"`
	Port      string `validate:"required,numeric"`
	Debug     bool
	LogPath   string
	LogStdout bool
}

type InventoryConfig struct {
	Seed bool
}

// LoadConfig reads .env (optional) and then the process environment.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")

	// Set defaults
	v.SetDefault("APP_NAME", "movie-ticket-booking")
	v.SetDefault("APP_MODE", ModeConsole)
	v.SetDefault("PORT", "8080")
	v.SetDefault("DEBUG", false)
	v.SetDefault("LOG_PATH", "logs/")
	v.SetDefault("LOG_STDOUT", false)
	v.SetDefault("SEED_MOVIES", true)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	v.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:      v.GetString("APP_NAME"),
			Mode:      v.GetString("APP_MODE"),
			Port:      v.GetString("PORT"),
			Debug:     v.GetBool("DEBUG"),
			LogPath:   v.GetString("LOG_PATH"),
			LogStdout: v.GetBool("LOG_STDOUT"),
		},
		Inventory: InventoryConfig{
			Seed: v.GetBool("SEED_MOVIES"),
		},
	}

	if errs := ValidateStruct(config); len(errs) > 0 {
		return nil, fmt.Errorf("invalid config: %s", FormatValidationErrors(errs))
	}

	return config, nil
}
