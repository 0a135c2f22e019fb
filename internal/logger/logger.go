package logger

import (
	"os"
	"path/filepath"

	"minigrep/internal/settings"

	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

func ProvideLogger(cfg *settings.Settings) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	switch cfg.Env {
	case settings.EnvProd:
		if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0755); err != nil {
			return nil, err
		}

		// ротация вместо бесконечно растущего файла
		writer := zapcore.AddSync(&lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    10,
			MaxBackups: 5,
			MaxAge:     28,
		})

		encoderCfg := zap.NewProductionEncoderConfig()
		encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

		core := zapcore.NewCore(
			zapcore.NewJSONEncoder(encoderCfg),
			writer,
			level,
		)

		return zap.New(core), nil

	default:
		// stdout занят результатами поиска, логи только в stderr
		zapCfg := zap.NewDevelopmentConfig()
		zapCfg.Encoding = "console"
		zapCfg.Level = zap.NewAtomicLevelAt(level)
		zapCfg.OutputPaths = []string{"stderr"}
		zapCfg.ErrorOutputPaths = []string{"stderr"}
		return zapCfg.Build()
	}
}

// FxLogger routes fx lifecycle events through the application logger.
func FxLogger(logger *zap.Logger) fxevent.Logger {
	return &fxevent.ZapLogger{Logger: logger}
}
