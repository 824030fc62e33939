package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/CorrelAid/compress_uploader/configs"
)

func validConfig() configs.AppConfig {
	return configs.AppConfig{
		Server: configs.ServerConfig{
			Port:               configs.DefaultPort,
			Host:               configs.DefaultHost,
			MaxMultipartMB:     configs.DefaultMaxMultipartMB,
			RateLimitPerMinute: configs.DefaultRateLimitPerMinute,
		},
		Client: configs.ClientConfig{Endpoint: configs.DefaultEndpoint},
		History: configs.HistoryConfig{
			TTLHours:        configs.DefaultHistoryTTLHours,
			CleanupInterval: configs.DefaultHistoryCleanupInterval,
		},
		Log: configs.LogConfig{Level: configs.DefaultLogLevel, FilePath: configs.DefaultLogFilePath},
	}
}

func TestValidateConfig(t *testing.T) {
	cfg := validConfig()
	assert.NoError(t, ValidateConfig(&cfg))

	cfg.Client.Endpoint = "not a url"
	cfg.Server.Port = 0
	err := ValidateConfig(&cfg)
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), "Client.Endpoint")
		assert.Contains(t, err.Error(), "Server.Port")
	}

	cfg = validConfig()
	cfg.Log.Level = "loud"
	assert.Error(t, ValidateConfig(&cfg))
}
