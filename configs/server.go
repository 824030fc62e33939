package configs

import (
	"fmt"

	"github.com/spf13/viper"
)

const (
	DefaultPort               = 8081      // page host port; the compression backend usually owns 8080
	DefaultHost               = "0.0.0.0" // listen address
	DefaultDebug              = false     // gin debug mode and caller info in logs
	DefaultMaxMultipartMB     = 10        // same limit the compression backend applies
	DefaultRateLimitPerMinute = 60        // submissions per client IP per minute, 0 disables
)

type (
	// ServerConfig configures the page host.
	ServerConfig struct {
		Port               int      `mapstructure:"port"                  rule:"min=1,max=65535"`
		Host               string   `mapstructure:"host"                  rule:"omitempty,ip"`
		Debug              bool     `mapstructure:"debug"`
		MaxMultipartMB     int      `mapstructure:"max_multipart_mb"      rule:"min=1,max=1024"`
		RateLimitPerMinute float64  `mapstructure:"rate_limit_per_minute" rule:"min=0"`
		AllowedHosts       []string `mapstructure:"allowed_hosts"`
	}
)

// Addr returns the listen address.
func (s *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// MaxMultipartBytes returns the multipart memory limit in bytes.
func (s *ServerConfig) MaxMultipartBytes() int64 {
	return int64(s.MaxMultipartMB) << 20
}

func (s *ServerConfig) setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", DefaultPort)
	v.SetDefault("server.host", DefaultHost)
	v.SetDefault("server.debug", DefaultDebug)
	v.SetDefault("server.max_multipart_mb", DefaultMaxMultipartMB)
	v.SetDefault("server.rate_limit_per_minute", DefaultRateLimitPerMinute)
	v.SetDefault("server.allowed_hosts", []string{})
}
