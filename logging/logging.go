package logging

import (
	"fmt"
	"log"
	"os"
	"sort"
	"strings"
	"sync"
)

type Level int

const (
	DebugLevel Level = iota
	InfoLevel
	WarnLevel
	ErrorLevel
)

func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

func ParseLevel(s string) Level {
	switch strings.ToLower(s) {
	case "debug":
		return DebugLevel
	case "warn", "warning":
		return WarnLevel
	case "error":
		return ErrorLevel
	default:
		return InfoLevel
	}
}

// Fields are structured key/value pairs attached to a log line.
type Fields map[string]any

type Logger interface {
	Debug(msg string, fields ...Fields)
	Info(msg string, fields ...Fields)
	Warn(msg string, fields ...Fields)
	Error(err error, msg string, fields ...Fields)

	WithFields(fields Fields) Logger
	SetLevel(level Level)
}

var (
	globalMu     sync.RWMutex
	globalLogger Logger = NewDefaultLogger()
)

func SetGlobalLogger(logger Logger) {
	globalMu.Lock()
	defer globalMu.Unlock()
	if logger == nil {
		globalLogger = NoOpLogger{}
		return
	}
	globalLogger = logger
}

func GetGlobalLogger() Logger {
	globalMu.RLock()
	defer globalMu.RUnlock()
	return globalLogger
}

func WithFields(fields Fields) Logger {
	return GetGlobalLogger().WithFields(fields)
}

// DefaultLogger writes Debug/Info to stdout and Warn/Error to stderr.
type DefaultLogger struct {
	stdout *log.Logger
	stderr *log.Logger
	level  *Level
	fields Fields
}

func NewDefaultLogger() *DefaultLogger {
	level := InfoLevel
	return &DefaultLogger{
		stdout: log.New(os.Stdout, "", log.LstdFlags),
		stderr: log.New(os.Stderr, "", log.LstdFlags),
		level:  &level,
		fields: Fields{},
	}
}

func (d *DefaultLogger) SetLevel(level Level) {
	*d.level = level
}

func (d *DefaultLogger) WithFields(fields Fields) Logger {
	merged := make(Fields, len(d.fields)+len(fields))
	for k, v := range d.fields {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	return &DefaultLogger{stdout: d.stdout, stderr: d.stderr, level: d.level, fields: merged}
}

func (d *DefaultLogger) Debug(msg string, fields ...Fields) {
	d.write(DebugLevel, nil, msg, fields)
}

func (d *DefaultLogger) Info(msg string, fields ...Fields) {
	d.write(InfoLevel, nil, msg, fields)
}

func (d *DefaultLogger) Warn(msg string, fields ...Fields) {
	d.write(WarnLevel, nil, msg, fields)
}

func (d *DefaultLogger) Error(err error, msg string, fields ...Fields) {
	d.write(ErrorLevel, err, msg, fields)
}

func (d *DefaultLogger) write(level Level, err error, msg string, fields []Fields) {
	if level < *d.level {
		return
	}
	line := Format(level, err, msg, d.fields, fields...)
	if level >= WarnLevel {
		d.stderr.Println(line)
		return
	}
	d.stdout.Println(line)
}

// Format renders "[LEVEL] msg key=value ... error=..." with keys sorted.
func Format(level Level, err error, msg string, base Fields, extra ...Fields) string {
	all := make(Fields, len(base))
	for k, v := range base {
		all[k] = v
	}
	for _, f := range extra {
		for k, v := range f {
			all[k] = v
		}
	}

	keys := make([]string, 0, len(all))
	for k := range all {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s", level, msg)
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, all[k])
	}
	if err != nil {
		fmt.Fprintf(&b, " error=%q", err.Error())
	}
	return b.String()
}

type NoOpLogger struct{}

func (NoOpLogger) Debug(string, ...Fields)        {}
func (NoOpLogger) Info(string, ...Fields)         {}
func (NoOpLogger) Warn(string, ...Fields)         {}
func (NoOpLogger) Error(error, string, ...Fields) {}
func (n NoOpLogger) WithFields(Fields) Logger     { return n }
func (NoOpLogger) SetLevel(Level)                 {}
