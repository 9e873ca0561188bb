package logger

import (
	"os"
	"strings"
)

var globalLogger *Logger

func init() {
	globalLogger = NewDefault()
	configureFromEnv()
}

// configureFromEnv configures the global logger from environment variables
func configureFromEnv() {
	if levelStr := os.Getenv("LOG_LEVEL"); levelStr != "" {
		if level, ok := ParseLevel(levelStr); ok {
			globalLogger.SetLevel(level)
		}
	}
	if formatStr := os.Getenv("LOG_FORMAT"); formatStr != "" {
		if format, ok := ParseFormat(formatStr); ok {
			globalLogger.SetFormat(format)
		}
	}
}

// ParseLevel parses a log level string
func ParseLevel(level string) (LogLevel, bool) {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return DEBUG, true
	case "INFO":
		return INFO, true
	case "WARN", "WARNING":
		return WARN, true
	case "ERROR":
		return ERROR, true
	case "FATAL":
		return FATAL, true
	default:
		return INFO, false
	}
}

// ParseFormat parses a log format string
func ParseFormat(format string) (LogFormat, bool) {
	switch strings.ToLower(format) {
	case "json":
		return JSONFormat, true
	case "text":
		return TextFormat, true
	default:
		return TextFormat, false
	}
}

// Configure applies level and format strings to the global logger,
// typically from loaded service configuration
func Configure(level, format string) {
	if parsed, ok := ParseLevel(level); ok {
		globalLogger.SetLevel(parsed)
	}
	if parsed, ok := ParseFormat(format); ok {
		globalLogger.SetFormat(parsed)
	}
}

// GetGlobalLogger returns the global logger instance
func GetGlobalLogger() *Logger {
	return globalLogger
}

// SetGlobalLogger sets the global logger instance
func SetGlobalLogger(logger *Logger) {
	globalLogger = logger
}

// Debug logs a debug message using the global logger
func Debug(message string, fields ...map[string]interface{}) {
	globalLogger.Debug(message, fields...)
}

// Info logs an info message using the global logger
func Info(message string, fields ...map[string]interface{}) {
	globalLogger.Info(message, fields...)
}

// Warn logs a warning message using the global logger
func Warn(message string, fields ...map[string]interface{}) {
	globalLogger.Warn(message, fields...)
}

// Error logs an error message using the global logger
func Error(message string, err error, fields ...map[string]interface{}) {
	globalLogger.Error(message, err, fields...)
}

// Fatal logs a fatal message using the global logger and exits
func Fatal(message string, err error, fields ...map[string]interface{}) {
	globalLogger.Fatal(message, err, fields...)
}

// Debugf logs a formatted debug message using the global logger
func Debugf(format string, args ...interface{}) {
	globalLogger.Debugf(format, args...)
}

// Infof logs a formatted info message using the global logger
func Infof(format string, args ...interface{}) {
	globalLogger.Infof(format, args...)
}

// Warnf logs a formatted warning message using the global logger
func Warnf(format string, args ...interface{}) {
	globalLogger.Warnf(format, args...)
}

// Errorf logs a formatted error message using the global logger
func Errorf(format string, args ...interface{}) {
	globalLogger.Errorf(format, args...)
}
