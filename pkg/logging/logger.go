/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: logger.go
Description: Structured logging for the species engine. Wraps logrus with a validated
configuration, text/JSON/custom formats, optional timestamped log files and helpers for
the events the engine produces: solved valuations, counts, listings and verification checks.
*/

package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"time"

	"github.com/sirupsen/logrus"
)

// LogLevel represents the logging level
type LogLevel string

const (
	LogLevelDebug   LogLevel = "debug"
	LogLevelInfo    LogLevel = "info"
	LogLevelWarning LogLevel = "warn"
	LogLevelError   LogLevel = "error"
)

// LogFormat represents the logging format
type LogFormat string

const (
	LogFormatJSON   LogFormat = "json"
	LogFormatText   LogFormat = "text"
	LogFormatCustom LogFormat = "custom"
)

const filePrefix = "species_"

// LoggerConfig holds the configuration for the logger.
// An empty OutputDir logs to Output only.
type LoggerConfig struct {
	Level     LogLevel  `json:"level"`
	Format    LogFormat `json:"format"`
	OutputDir string    `json:"output_dir"`
	MaxFiles  int       `json:"max_files"`
	Timestamp bool      `json:"timestamp"`
	Caller    bool      `json:"caller"`
	Colors    bool      `json:"colors"`

	Output io.Writer `json:"-"` // defaults to os.Stderr
}

// DefaultLoggerConfig returns the console configuration used when none is given.
func DefaultLoggerConfig() *LoggerConfig {
	return &LoggerConfig{
		Level:     LogLevelInfo,
		Format:    LogFormatCustom,
		MaxFiles:  10,
		Timestamp: true,
		Colors:    true,
	}
}

// Validate checks the LoggerConfig for invalid or missing values.
func (c *LoggerConfig) Validate() error {
	if c.OutputDir != "" && c.MaxFiles <= 0 {
		return fmt.Errorf("max_files must be positive when output_dir is set")
	}
	switch c.Format {
	case LogFormatJSON, LogFormatText, LogFormatCustom:
	default:
		return fmt.Errorf("unsupported log format: %s", c.Format)
	}
	switch c.Level {
	case LogLevelDebug, LogLevelInfo, LogLevelWarning, LogLevelError:
	default:
		return fmt.Errorf("unsupported log level: %s", c.Level)
	}
	return nil
}

// Logger provides structured logging for engine events
type Logger struct {
	config     *LoggerConfig
	logger     *logrus.Logger
	fileHandle *os.File
	logFile    string
	startTime  time.Time
}

// NewLogger creates a new logger instance
func NewLogger(config *LoggerConfig) (*Logger, error) {
	if config == nil {
		config = DefaultLoggerConfig()
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid logger config: %w", err)
	}

	l := &Logger{
		config:    config,
		logger:    logrus.New(),
		startTime: time.Now(),
	}
	if err := l.setup(); err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}
	return l, nil
}

// setup configures the logger with the given configuration
func (l *Logger) setup() error {
	level, err := logrus.ParseLevel(string(l.config.Level))
	if err != nil {
		level = logrus.InfoLevel
	}
	l.logger.SetLevel(level)
	l.logger.SetReportCaller(l.config.Caller)

	if err := l.setFormatter(); err != nil {
		return err
	}

	out := l.config.Output
	if out == nil {
		out = os.Stderr
	}
	l.logger.SetOutput(out)

	return l.setupFileOutput(out)
}

// setFormatter configures the log formatter
func (l *Logger) setFormatter() error {
	prettyCaller := func(f *runtime.Frame) (string, string) {
		return "", fmt.Sprintf("%s:%d", filepath.Base(f.File), f.Line)
	}

	switch l.config.Format {
	case LogFormatJSON:
		l.logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat:  time.RFC3339,
			DisableTimestamp: !l.config.Timestamp,
			CallerPrettyfier: prettyCaller,
		})
	case LogFormatText:
		l.logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:    l.config.Timestamp,
			DisableTimestamp: !l.config.Timestamp,
			TimestampFormat:  time.RFC3339,
			ForceColors:      l.config.Colors,
			DisableColors:    !l.config.Colors,
			CallerPrettyfier: prettyCaller,
		})
	case LogFormatCustom:
		l.logger.SetFormatter(&SpeciesFormatter{
			CustomFormatter: CustomFormatter{
				Timestamp: l.config.Timestamp,
				Caller:    l.config.Caller,
				Colors:    l.config.Colors,
			},
		})
	default:
		return fmt.Errorf("unsupported log format: %s", l.config.Format)
	}
	return nil
}

// setupFileOutput tees the log into a timestamped file under OutputDir
func (l *Logger) setupFileOutput(console io.Writer) error {
	if l.config.OutputDir == "" {
		return nil
	}
	if err := os.MkdirAll(l.config.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	name := fmt.Sprintf("%s%s.log", filePrefix, l.startTime.Format("2006-01-02_15-04-05.000000"))
	path := filepath.Join(l.config.OutputDir, name)
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	l.fileHandle = file
	l.logFile = path
	l.logger.SetOutput(io.MultiWriter(console, file))

	l.logger.WithFields(logrus.Fields{
		"log_file": path,
		"level":    l.config.Level,
		"format":   l.config.Format,
	}).Debug("Logging initialized")
	return nil
}

// cleanup removes the oldest log files beyond MaxFiles
func (l *Logger) cleanup() error {
	if l.config.OutputDir == "" {
		return nil
	}
	files, err := filepath.Glob(filepath.Join(l.config.OutputDir, filePrefix+"*.log"))
	if err != nil {
		return err
	}
	if len(files) <= l.config.MaxFiles {
		return nil
	}
	// Names embed the start time, so lexical order is age order.
	sort.Strings(files)
	for _, f := range files[:len(files)-l.config.MaxFiles] {
		if err := os.Remove(f); err != nil {
			return err
		}
	}
	return nil
}

// LogFile returns the path of the current log file, or "" when logging to the console only.
func (l *Logger) LogFile() string { return l.logFile }

// LogValuations logs the solved valuations of a grammar
func (l *Logger) LogValuations(grammarName string, passes int, valuations map[string]int) {
	fields := logrus.Fields{
		"grammar": grammarName,
		"passes":  passes,
		"rules":   len(valuations),
	}
	l.logger.WithFields(fields).Info("Valuations solved")
	for name, v := range valuations {
		l.logger.WithFields(logrus.Fields{
			"grammar":   grammarName,
			"rule":      name,
			"valuation": v,
		}).Debug("Rule valuation")
	}
}

// LogCount logs a computed count
func (l *Logger) LogCount(grammarName, rule string, size int, count string) {
	l.logger.WithFields(logrus.Fields{
		"grammar": grammarName,
		"rule":    rule,
		"size":    size,
		"count":   count,
	}).Debug("Count computed")
}

// LogListing logs a listing run
func (l *Logger) LogListing(grammarName, rule string, labels []int, structures int, duration time.Duration) {
	l.logger.WithFields(logrus.Fields{
		"grammar":    grammarName,
		"rule":       rule,
		"labels":     labels,
		"structures": structures,
		"duration":   duration,
	}).Debug("Structures listed")
}

// LogCheck logs the outcome of one verification check
func (l *Logger) LogCheck(grammarName, rule string, size int, passed bool, detail string) {
	entry := l.logger.WithFields(logrus.Fields{
		"grammar": grammarName,
		"rule":    rule,
		"size":    size,
	})
	if passed {
		entry.Debug("Check passed")
		return
	}
	entry.WithField("detail", detail).Error("Check failed")
}

// LogRun logs a verification run summary
func (l *Logger) LogRun(runID string, checks, failures int, duration time.Duration) {
	entry := l.logger.WithFields(logrus.Fields{
		"run_id":   runID,
		"checks":   checks,
		"failures": failures,
		"duration": duration,
		"uptime":   time.Since(l.startTime),
	})
	if failures > 0 {
		entry.Warn("Verification finished with failures")
		return
	}
	entry.Info("Verification finished")
}

// Close closes the log file and removes old ones
func (l *Logger) Close() error {
	if l.fileHandle != nil {
		l.fileHandle.Close()
	}
	if err := l.cleanup(); err != nil {
		return fmt.Errorf("failed to cleanup log files: %w", err)
	}
	return nil
}

// GetLogger returns the underlying logrus logger
func (l *Logger) GetLogger() *logrus.Logger {
	return l.logger
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, fields map[string]interface{}) {
	l.logger.WithFields(fields).Debug(msg)
}

// Info logs an info message
func (l *Logger) Info(msg string, fields map[string]interface{}) {
	l.logger.WithFields(fields).Info(msg)
}

// Warning logs a warning message
func (l *Logger) Warning(msg string, fields map[string]interface{}) {
	l.logger.WithFields(fields).Warn(msg)
}

// Error logs an error message
func (l *Logger) Error(msg string, fields map[string]interface{}) {
	l.logger.WithFields(fields).Error(msg)
}
