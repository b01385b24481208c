package logx

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"
)

// Logger writes formatted entries to an io.Writer
type Logger struct {
	mu        sync.Mutex
	config    *Config
	formatter Formatter
	writer    io.Writer
	exitFunc  func(int)
}

// NewLogger builds a logger from config. A nil config means DefaultConfig.
func NewLogger(config *Config) *Logger {
	if config == nil {
		config = DefaultConfig()
	}

	var formatter Formatter = NewConsoleFormatter(config)
	if config.Format == FormatJSON {
		formatter = NewJSONFormatter(config)
	}

	writer := config.Output
	if writer == nil {
		writer = os.Stdout
	}

	return &Logger{
		config:    config,
		formatter: formatter,
		writer:    writer,
		exitFunc:  os.Exit,
	}
}

func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.config.Level = level
}

func (l *Logger) GetLevel() Level {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.config.Level
}

func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.writer = w
}

func (l *Logger) WithField(key string, value interface{}) *Entry {
	return newEntry(l).WithField(key, value)
}

func (l *Logger) WithFields(fields Fields) *Entry {
	return newEntry(l).WithFields(fields)
}

func (l *Logger) WithError(err error) *Entry {
	return newEntry(l).WithError(err)
}

func (l *Logger) log(level Level, msg string, fields Fields, err error) {
	if !l.GetLevel().Enabled(level) {
		return
	}

	entry := &LogEntry{
		Level:     level,
		Message:   msg,
		Fields:    fields,
		Error:     err,
		Timestamp: time.Now(),
	}
	if l.config.EnableCaller {
		entry.Caller = caller(3)
	}

	out, ferr := l.formatter.Format(entry)
	if ferr != nil {
		fmt.Fprintf(os.Stderr, "logx: format: %v\n", ferr)
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if _, werr := l.writer.Write(out); werr != nil {
		fmt.Fprintf(os.Stderr, "logx: write: %v\n", werr)
	}
}

func (l *Logger) exit(code int) {
	l.exitFunc(code)
}

func caller(skip int) string {
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		return "???"
	}
	return fmt.Sprintf("%s:%d", filepath.Base(file), line)
}
