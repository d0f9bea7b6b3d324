package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/lixenwraith/derby/config"
)

const (
	logDir      = "logs"
	logFileName = "derby.log"
	maxLogSize  = 10 * 1024 * 1024 // 10MB
)

// setupLogging builds the file logger; the terminal owns stdout so nothing is written there
// Returns a no-op logger when logging is disabled
func setupLogging(cfg config.LoggingConfig) (*zap.Logger, func(), error) {
	if !cfg.Enabled {
		return zap.NewNop(), func() {}, nil
	}

	dir := cfg.Dir
	if dir == "" {
		dir = logDir
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}

	logPath := filepath.Join(dir, logFileName)
	rotateLog(logPath)

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var enc zapcore.Encoder
	if cfg.Format == "json" {
		enc = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	} else {
		ec := zap.NewDevelopmentEncoderConfig()
		ec.EncodeLevel = zapcore.CapitalLevelEncoder
		ec.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		ec.ConsoleSeparator = "  "
		enc = zapcore.NewConsoleEncoder(ec)
	}

	log := zap.New(zapcore.NewCore(enc, zapcore.AddSync(f), level))
	cleanup := func() {
		_ = log.Sync()
		_ = f.Close()
	}
	return log, cleanup, nil
}

// rotateLog moves an oversized log aside with a timestamp suffix
func rotateLog(logPath string) {
	info, err := os.Stat(logPath)
	if err != nil || info.Size() <= maxLogSize {
		return
	}
	ext := filepath.Ext(logPath)
	base := logPath[:len(logPath)-len(ext)]
	rotated := fmt.Sprintf("%s_%s%s", base, time.Now().Format("20060102_150405"), ext)
	_ = os.Rename(logPath, rotated)
}
