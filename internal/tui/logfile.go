package tui

import (
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/natefinch/lumberjack.v2"
)

// ResolveLogFilePath expands a configured log path. "~/" is replaced by the
// user's home directory; an empty path disables file logging.
func ResolveLogFilePath(configured string) string {
	if configured == "" {
		return ""
	}
	if len(configured) > 1 && configured[:2] == "~/" {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, configured[2:])
		}
	}
	return configured
}

// newRotatingWriter creates a lumberjack logger. Limits can be tuned with
// GIX_LOG_MAX_SIZE (MB), GIX_LOG_MAX_BACKUPS and GIX_LOG_MAX_AGE (days).
func newRotatingWriter(logFilePath string) *lumberjack.Logger {
	logger := &lumberjack.Logger{
		Filename:   logFilePath,
		MaxSize:    1,
		MaxBackups: 2,
		MaxAge:     30,
		Compress:   false,
	}

	if v, ok := envInt("GIX_LOG_MAX_SIZE"); ok && v > 0 {
		logger.MaxSize = v
	}
	if v, ok := envInt("GIX_LOG_MAX_BACKUPS"); ok && v >= 0 {
		logger.MaxBackups = v
	}
	if v, ok := envInt("GIX_LOG_MAX_AGE"); ok && v > 0 {
		logger.MaxAge = v
	}

	return logger
}

func envInt(key string) (int, bool) {
	raw := os.Getenv(key)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}
