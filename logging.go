package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// newLogger builds the run logger: a console sink at info level (debug with
// the -d flag) and a persistent file sink pinned to info, so the update log
// never fills up with debug chatter. The returned func flushes and closes
// both sinks.
func newLogger(logFile string, debug bool) (*zap.SugaredLogger, func(), error) {
	encCfg := zapcore.EncoderConfig{
		MessageKey:  "msg",
		LevelKey:    "level",
		TimeKey:     "time",
		EncodeLevel: zapcore.CapitalLevelEncoder,
		EncodeTime:  zapcore.TimeEncoderOfLayout("15:04:05"),
	}
	encoder := zapcore.NewConsoleEncoder(encCfg)

	consoleLevel := zapcore.InfoLevel
	if debug {
		consoleLevel = zapcore.DebugLevel
	}
	consoleCore := zapcore.NewCore(encoder, zapcore.Lock(os.Stderr), consoleLevel)

	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	fileCore := zapcore.NewCore(encoder, zapcore.AddSync(f), zapcore.InfoLevel)

	logger := zap.New(zapcore.NewTee(consoleCore, fileCore))
	cleanup := func() {
		logger.Sync()
		f.Close()
	}
	return logger.Sugar(), cleanup, nil
}
