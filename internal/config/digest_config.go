package config

import (
	"fmt"

	"github.com/robfig/cron/v3"
	"github.com/spf13/viper"
)

type DigestConfig struct {
	ScheduleEnabled bool   `mapstructure:"schedule_enabled"`
	CronSpec        string `mapstructure:"cron_spec"`
}

func (config DigestConfig) validate() error {
	if !config.ScheduleEnabled || config.CronSpec == "" {
		return nil
	}

	if _, err := cron.ParseStandard(config.CronSpec); err != nil {
		return fmt.Errorf("invalid digest cron spec %q: %w", config.CronSpec, err)
	}
	return nil
}

func (config DigestConfig) bindEnvironmentVariables() error {
	var errs []error

	if err := viper.BindEnv("digest.schedule_enabled", "DIGEST_SCHEDULE_ENABLED"); err != nil {
		errs = append(errs, err)
	}

	if err := viper.BindEnv("digest.cron_spec", "DIGEST_CRON_SPEC"); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return createMultiError(errs)
	}

	return nil
}
