package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
)

// SetupLogger configures logrus with JSON output to stdout and a
// date-stamped log file.
func SetupLogger(logLevel string) error {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel
	}

	logDir := "logs"
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	logFileName := filepath.Join(logDir, fmt.Sprintf("%s.log", time.Now().Format("2006-01-02")))
	logFile, err := os.OpenFile(logFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(io.MultiWriter(os.Stdout, logFile))
	logrus.SetLevel(level)

	return nil
}

// Info logs an info level message
func Info(format string, v ...interface{}) {
	logrus.Infof(format, v...)
}

// Warning logs a warning level message
func Warning(format string, v ...interface{}) {
	logrus.Warnf(format, v...)
}

// Error logs an error level message
func Error(format string, v ...interface{}) {
	logrus.Errorf(format, v...)
}
