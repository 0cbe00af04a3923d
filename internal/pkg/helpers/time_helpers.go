package helpers

import (
	"time"

	"github.com/deniz/technexus/internal/pkg/logger"
)

// ParseDuration parses a duration string and falls back to the given
// default when the value is unparseable.
func ParseDuration(value string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(value)
	if err != nil {
		logger.Warn().Str("value", value).Dur("fallback", fallback).Msg("Unparseable duration, using fallback")
		return fallback
	}
	return d
}
