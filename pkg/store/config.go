package store

import (
	"fmt"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config locates the on-disk database.
type Config interface {
	BasePath() string
}

// LoadConfig reads .docket config (yaml implicit) from the working
// directory or DOCKET_CONFIG_PATH, with DOCKET_* env overrides.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.docket.db")
	viper.SetConfigName(".docket")
	viper.SetEnvPrefix("DOCKET")
	viper.AutomaticEnv()

	if override := os.Getenv("DOCKET_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}
	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("store: expand path: %w", err)
	}
	return &fileConfig{Path: path}, nil
}

type fileConfig struct {
	Path string `json:"path"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}
