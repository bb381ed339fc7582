package config

import (
	"github.com/stretchr/testify/assert"
	"os"
	"strconv"
	"testing"
)

func Test_Config_EnvironmentOverrideWorksCorrect(t *testing.T) {
	override := Config{
		Backend: BackendConfig{
			BaseURL:              "http://backend.example:9999",
			MaxRequestsPerSecond: 42,
		},
		Gateway: GatewayConfig{
			Port: 18090,
		},
		DB: DBConfig{
			ConnectionString: "./override.db",
		},
		Logger: LoggerConfig{
			LogLevel: LevelDebug,
		},
	}
	os.Setenv("MODE", "test")

	os.Setenv("BACKEND_BASE_URL", override.Backend.BaseURL)
	os.Setenv("BACKEND_MAX_REQUESTS_PER_SECOND", "42")
	os.Setenv("GATEWAY_PORT", strconv.Itoa(override.Gateway.Port))
	os.Setenv("DB_CONNECTION_STRING", override.DB.ConnectionString)
	os.Setenv("LOG_LEVEL", string(override.Logger.LogLevel))

	cfg := Get()

	assert.Equal(t, override.Backend.BaseURL, cfg.Backend.BaseURL)
	assert.Equal(t, override.Backend.MaxRequestsPerSecond, cfg.Backend.MaxRequestsPerSecond)
	assert.Equal(t, override.Gateway.Port, cfg.Gateway.Port)
	assert.Equal(t, override.DB.ConnectionString, cfg.DB.ConnectionString)
	assert.Equal(t, override.Logger.LogLevel, cfg.Logger.LogLevel)
}
