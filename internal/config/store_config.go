package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type storeBackend string

const (
	BackendSqlite storeBackend = "sqlite"
	BackendRedis  storeBackend = "redis"
	BackendMemory storeBackend = "memory"
)

type StoreConfig struct {
	Backend          storeBackend `mapstructure:"backend"`
	ConnectionString string       `mapstructure:"connection_string"`
	RedisAddr        string       `mapstructure:"redis_addr"`
	RedisPassword    string       `mapstructure:"redis_password"`
	RedisDB          int          `mapstructure:"redis_db"`
}

func (config StoreConfig) validate() error {
	switch config.Backend {
	case BackendSqlite:
		if config.ConnectionString == "" {
			return fmt.Errorf("missing variable: store connection string")
		}
	case BackendRedis:
		if config.RedisAddr == "" {
			return fmt.Errorf("missing variable: store redis addr")
		}
	case BackendMemory:
	default:
		return fmt.Errorf("invalid store backend: %v", config.Backend)
	}
	return nil
}

func (config StoreConfig) bindEnvironmentVariables() error {
	var errs []error

	if err := viper.BindEnv("store.backend", "STORE_BACKEND"); err != nil {
		errs = append(errs, err)
	}

	if err := viper.BindEnv("store.connection_string", "DB_CONNECTION_STRING"); err != nil {
		errs = append(errs, err)
	}

	if err := viper.BindEnv("store.redis_addr", "REDIS_ADDR"); err != nil {
		errs = append(errs, err)
	}

	if err := viper.BindEnv("store.redis_password", "REDIS_PASSWORD"); err != nil {
		errs = append(errs, err)
	}

	if err := viper.BindEnv("store.redis_db", "REDIS_DB"); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return createMultiError(errs)
	}

	return nil
}
