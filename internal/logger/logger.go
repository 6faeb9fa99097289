package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const serviceName = "dashboard"

// NewLogger returns a JSON logger for staging and production and a console
// logger with ISO8601 timestamps everywhere else. Test runs log warnings and
// above only.
func NewLogger(env string) (*zap.Logger, error) {
	var cfg zap.Config
	switch env {
	case "production", "staging":
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.EncodeTime = zapcore.RFC3339TimeEncoder
	default:
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.TimeKey = "ts"
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		if env == "test" {
			cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
		}
	}
	return cfg.Build(zap.Fields(zap.String("service", serviceName), zap.String("env", env)))
}
