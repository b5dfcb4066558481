package main

import (
	"fmt"
	"io"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// newLogger builds the CLI logger. Console output goes to stderr; when
// log.filename is configured, JSON logs are also written to a rotated file.
// The returned func flushes and closes the log sinks.
func newLogger(stderr io.Writer, verbose bool) (*zap.Logger, func(), error) {
	level := zapcore.DebugLevel
	if !verbose {
		var err error
		level, err = zapcore.ParseLevel(viper.GetString(logLevelKey))
		if err != nil {
			return nil, nil, usageErrorf("invalid log level: %v", err)
		}
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.TimeKey = ""
	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(stderr), level),
	}

	var logFile *lumberjack.Logger
	if filename := viper.GetString(logFilenameKey); filename != "" {
		logFile = &lumberjack.Logger{
			Filename:   filename,
			MaxSize:    viper.GetInt(logMaxSizeKey),
			MaxBackups: viper.GetInt(logMaxBackupsKey),
			MaxAge:     viper.GetInt(logMaxAgeKey),
			Compress:   viper.GetBool(logCompressKey),
		}
		cores = append(cores, zapcore.NewCore(
			zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
			zapcore.AddSync(logFile),
			level,
		))
	}

	logger := zap.New(zapcore.NewTee(cores...))
	closeFn := func() {
		_ = logger.Sync()
		if logFile != nil {
			if err := logFile.Close(); err != nil {
				fmt.Fprintf(stderr, "Warning: closing log file: %v\n", err)
			}
		}
	}
	return logger, closeFn, nil
}
