package config

import (
	"errors"
	"fmt"
	"github.com/spf13/viper"
)

type GatewayConfig struct {
	Port        int    `mapstructure:"port"`
	MetricsPort int    `mapstructure:"metrics_port"`
	AuthBaseURL string `mapstructure:"auth_base_url"`
}

func (config GatewayConfig) validate() error {
	if config.Port <= 0 {
		return fmt.Errorf("gateway port must be positive, got %d", config.Port)
	}
	return nil
}

func (config GatewayConfig) bindEnvironmentVariables() error {

	err := viper.BindEnv("gateway.port", "GATEWAY_PORT")
	if err != nil {
		return err
	}

	err = viper.BindEnv("gateway.metrics_port", "GATEWAY_METRICS_PORT")
	if err != nil {
		return err
	}

	return viper.BindEnv("gateway.auth_base_url", "AUTH_BASE_URL")
}

func createMultiError(errs []error) error {
	return fmt.Errorf("multiple errors occurred: %w", errors.Join(errs...))
}
