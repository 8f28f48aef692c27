package main

import (
	"fmt"

	"go.uber.org/zap"
)

// newLogger builds a zap logger in either human ("console") or
// machine ("json") format, matching the pack's convention of pairing
// a cobra command tree with structured zap logging.
func newLogger(format string) (*zap.Logger, error) {
	var cfg zap.Config
	switch format {
	case "", "console":
		cfg = zap.NewDevelopmentConfig()
	case "json":
		cfg = zap.NewProductionConfig()
	default:
		return nil, fmt.Errorf("fpsbench: unknown log format %q (want \"console\" or \"json\")", format)
	}
	return cfg.Build()
}
