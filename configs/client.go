package configs

import (
	"time"

	"github.com/spf13/viper"
)

const (
	DefaultEndpoint = "http://localhost:8080/compress"
	DefaultTimeout  = 0 // seconds, 0 waits forever
)

type (
	// ClientConfig configures the outgoing call to the compression endpoint.
	ClientConfig struct {
		Endpoint string `mapstructure:"endpoint"        rule:"required,url"`
		Timeout  int    `mapstructure:"timeout_seconds" rule:"min=0,max=3600"`
	}
)

// GetTimeoutDuration returns the client timeout, zero meaning none.
func (c *ClientConfig) GetTimeoutDuration() time.Duration {
	return time.Duration(c.Timeout) * time.Second
}

func (c *ClientConfig) setDefaults(v *viper.Viper) {
	v.SetDefault("client.endpoint", DefaultEndpoint)
	v.SetDefault("client.timeout_seconds", DefaultTimeout)
}
