package diorama

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger builds a logger for engine diagnostics. Development mode gets
// colored levels and short timestamps for readable frame-by-frame output;
// production mode is JSON at info level.
func NewLogger(development bool) (*zap.Logger, error) {
	if !development {
		return zap.NewProductionConfig().Build()
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	cfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
	return cfg.Build()
}
