package app

import (
	"os"

	"blood-donor-connector/internal/config"
	"blood-donor-connector/internal/logx"
)

// NewLogger writes JSON lines to stdout at the configured level.
func NewLogger(cfg *config.Config) logx.Logger {
	return logx.NewJSON(os.Stdout, cfg.LogLevel).With(logx.String("service", "blood-donor-connector"))
}
