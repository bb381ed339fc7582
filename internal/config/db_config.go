package config

import (
	"fmt"
	"github.com/spf13/viper"
)

type DBConfig struct {
	ConnectionString         string `mapstructure:"connection_string"`
	AncestryExpirationInDays int    `mapstructure:"ancestry_expiration_days"`
}

func (config DBConfig) validate() error {
	if config.ConnectionString == "" {
		return fmt.Errorf("missing variable: db connection string")
	}
	if config.AncestryExpirationInDays < 0 {
		return fmt.Errorf("ancestry expiration days must be non-negative")
	}
	return nil
}

func (config DBConfig) bindEnvironmentVariables() error {
	return viper.BindEnv("db.connection_string", "DB_CONNECTION_STRING")
}
