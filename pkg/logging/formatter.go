/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: formatter.go
Description: Custom log formatters for the species engine. CustomFormatter renders a
compact colored line with sorted fields; SpeciesFormatter adds an event prefix for
solver, counting, listing and verification messages.
*/

package logging

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// CustomFormatter renders one line per entry: timestamp, level, caller, message, fields
type CustomFormatter struct {
	Timestamp bool
	Caller    bool
	Colors    bool
}

// Format formats a log entry
func (f *CustomFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	return f.format(entry, ""), nil
}

func (f *CustomFormatter) format(entry *logrus.Entry, prefix string) []byte {
	var output strings.Builder

	if f.Timestamp {
		f.write(&output, 36, entry.Time.Format("2006-01-02 15:04:05.000")) // Cyan
	}

	f.write(&output, f.getLevelColor(entry.Level), strings.ToUpper(entry.Level.String()))

	if prefix != "" {
		f.write(&output, 35, "["+prefix+"]") // Magenta
	}

	if f.Caller && entry.HasCaller() {
		f.write(&output, 33, fmt.Sprintf("[%s:%d]", entry.Caller.File, entry.Caller.Line)) // Yellow
	}

	output.WriteString(entry.Message)

	if len(entry.Data) > 0 {
		output.WriteString(" ")
		output.WriteString(f.formatFields(entry.Data))
	}

	output.WriteString("\n")
	return []byte(output.String())
}

// write appends s and a space, colored when colors are enabled
func (f *CustomFormatter) write(b *strings.Builder, color int, s string) {
	if f.Colors {
		fmt.Fprintf(b, "\033[%dm%s\033[0m ", color, s)
		return
	}
	b.WriteString(s)
	b.WriteString(" ")
}

// getLevelColor returns the ANSI color code for a log level
func (f *CustomFormatter) getLevelColor(level logrus.Level) int {
	switch level {
	case logrus.DebugLevel, logrus.TraceLevel:
		return 37 // White
	case logrus.InfoLevel:
		return 32 // Green
	case logrus.WarnLevel:
		return 33 // Yellow
	case logrus.ErrorLevel:
		return 31 // Red
	default:
		return 35 // Magenta
	}
}

// formatFields formats structured fields sorted by key
func (f *CustomFormatter) formatFields(fields logrus.Fields) string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		value := f.formatValue(fields[key])
		if f.Colors {
			parts = append(parts, fmt.Sprintf("\033[34m%s\033[0m=\033[32m%s\033[0m", key, value)) // Blue key, Green value
		} else {
			parts = append(parts, fmt.Sprintf("%s=%s", key, value))
		}
	}
	return strings.Join(parts, " ")
}

// formatValue formats a field value appropriately
func (f *CustomFormatter) formatValue(value interface{}) string {
	switch v := value.(type) {
	case time.Duration:
		return v.String()
	case time.Time:
		return v.Format("15:04:05.000")
	case string:
		if len(v) > 50 {
			return fmt.Sprintf("%s...", v[:50])
		}
		return v
	case []int:
		if len(v) > 12 {
			return fmt.Sprintf("[%d labels]", len(v))
		}
		return fmt.Sprint(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// SpeciesFormatter prefixes engine events with a short tag
type SpeciesFormatter struct {
	CustomFormatter
}

// Format formats a log entry with its event prefix
func (f *SpeciesFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	return f.format(entry, eventPrefix(entry.Message)), nil
}

// eventPrefix returns a prefix based on the log message
func eventPrefix(message string) string {
	switch {
	case strings.Contains(message, "Valuation"):
		return "SOLVE"
	case strings.Contains(message, "Count"):
		return "COUNT"
	case strings.Contains(message, "listed"):
		return "LIST"
	case strings.Contains(message, "Check"):
		return "CHECK"
	case strings.Contains(message, "Verification"), strings.Contains(message, "Worker"):
		return "VERIFY"
	default:
		return ""
	}
}
