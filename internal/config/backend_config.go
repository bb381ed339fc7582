package config

import (
	"fmt"
	"github.com/spf13/viper"
	"strings"
	"time"
)

type BackendConfig struct {
	BaseURL              string        `mapstructure:"base_url"`
	MaxRequestsPerSecond float32       `mapstructure:"max_requests_per_second"`
	MasterListCacheTTL   time.Duration `mapstructure:"master_list_cache_ttl"`
}

func (config BackendConfig) validate() error {

	var missingFields []string

	if config.BaseURL == "" {
		missingFields = append(missingFields, "base_url")
	}

	if len(missingFields) > 0 {
		return fmt.Errorf("missing required variables: %s", strings.Join(missingFields, ", "))
	}

	return nil
}

func (config BackendConfig) bindEnvironmentVariables() error {
	var errs []error

	if err := viper.BindEnv("backend.base_url", "BACKEND_BASE_URL"); err != nil {
		errs = append(errs, err)
	}

	if err := viper.BindEnv("backend.max_requests_per_second", "BACKEND_MAX_REQUESTS_PER_SECOND"); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return createMultiError(errs)
	}

	return nil
}
