package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type CatalogConfig struct {
	FixturePath string `mapstructure:"fixture_path"`
}

func (config CatalogConfig) validate() error {
	if config.FixturePath == "" {
		return fmt.Errorf("missing variable: catalog fixture path")
	}
	return nil
}

func (config CatalogConfig) bindEnvironmentVariables() error {
	return viper.BindEnv("catalog.fixture_path", "CATALOG_FIXTURE_PATH")
}
