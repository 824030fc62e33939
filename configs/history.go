package configs

import (
	"time"

	"github.com/spf13/viper"
)

const (
	DefaultHistoryTTLHours        = 24 * 14 // two weeks
	DefaultHistoryCleanupInterval = 60      // minutes
)

type (
	// HistoryConfig controls how long the page host remembers submissions.
	HistoryConfig struct {
		TTLHours        int `mapstructure:"ttl_hours"                rule:"min=1"`
		CleanupInterval int `mapstructure:"cleanup_interval_minutes" rule:"min=1"`
	}
)

func (h *HistoryConfig) TTL() time.Duration {
	return time.Duration(h.TTLHours) * time.Hour
}

func (h *HistoryConfig) Interval() time.Duration {
	return time.Duration(h.CleanupInterval) * time.Minute
}

func (h *HistoryConfig) setDefaults(v *viper.Viper) {
	v.SetDefault("history.ttl_hours", DefaultHistoryTTLHours)
	v.SetDefault("history.cleanup_interval_minutes", DefaultHistoryCleanupInterval)
}
