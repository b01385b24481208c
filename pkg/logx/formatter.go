package logx

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"
)

// Formatter renders a LogEntry
type Formatter interface {
	Format(entry *LogEntry) ([]byte, error)
}

// LogEntry is a single record handed to a Formatter
type LogEntry struct {
	Level     Level
	Message   string
	Fields    Fields
	Error     error
	Timestamp time.Time
	Caller    string
}

// Fields is structured context attached to an entry
type Fields map[string]interface{}

func (f Fields) sortedKeys() []string {
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

const (
	colorReset   = "\033[0m"
	colorRed     = "\033[31m"
	colorCyan    = "\033[36m"
	colorGray    = "\033[90m"
	colorBoldRed = "\033[1;31m"
	colorBoldYel = "\033[1;33m"
	colorBoldGrn = "\033[1;32m"
	colorBoldCyn = "\033[1;36m"
)

// ConsoleFormatter writes human readable lines
type ConsoleFormatter struct {
	config *Config
}

func NewConsoleFormatter(config *Config) *ConsoleFormatter {
	return &ConsoleFormatter{config: config}
}

func (f *ConsoleFormatter) Format(entry *LogEntry) ([]byte, error) {
	var b strings.Builder

	if f.config.EnableTimestamp {
		b.WriteString(f.paint(colorGray, entry.Timestamp.Format(f.config.TimeFormat)))
		b.WriteByte(' ')
	}

	b.WriteString(f.level(entry.Level))
	b.WriteByte(' ')

	if f.config.EnableCaller && entry.Caller != "" {
		b.WriteString(f.paint(colorGray, "["+entry.Caller+"]"))
		b.WriteByte(' ')
	}

	b.WriteString(entry.Message)

	if len(entry.Fields) > 0 {
		parts := make([]string, 0, len(entry.Fields))
		for _, k := range entry.Fields.sortedKeys() {
			parts = append(parts, fmt.Sprintf("%s=%v", k, entry.Fields[k]))
		}
		b.WriteByte(' ')
		b.WriteString(f.paint(colorCyan, strings.Join(parts, " ")))
	}

	if entry.Error != nil {
		b.WriteString("\n")
		b.WriteString(f.paint(colorRed, "  ╰─→ error: "+entry.Error.Error()))
	}

	b.WriteByte('\n')
	return []byte(b.String()), nil
}

func (f *ConsoleFormatter) paint(color, s string) string {
	if !f.config.EnableColors {
		return s
	}
	return color + s + colorReset
}

func (f *ConsoleFormatter) level(l Level) string {
	label := fmt.Sprintf("[%-5s]", l.String())
	switch l {
	case LevelDebug:
		return f.paint(colorBoldCyn, label)
	case LevelInfo:
		return f.paint(colorBoldGrn, label)
	case LevelWarn:
		return f.paint(colorBoldYel, label)
	case LevelError, LevelFatal:
		return f.paint(colorBoldRed, label)
	default:
		return f.paint(colorGray, label)
	}
}

// JSONFormatter writes one JSON object per line
type JSONFormatter struct {
	config *Config
}

func NewJSONFormatter(config *Config) *JSONFormatter {
	return &JSONFormatter{config: config}
}

func (f *JSONFormatter) Format(entry *LogEntry) ([]byte, error) {
	data := make(map[string]interface{}, len(entry.Fields)+4)
	for k, v := range entry.Fields {
		data[k] = v
	}

	data["level"] = entry.Level.String()
	data["message"] = entry.Message
	if f.config.EnableTimestamp {
		data["timestamp"] = entry.Timestamp.Format(time.RFC3339Nano)
	}
	if f.config.EnableCaller && entry.Caller != "" {
		data["caller"] = entry.Caller
	}
	if entry.Error != nil {
		data["error"] = entry.Error.Error()
	}

	out, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	return append(out, '\n'), nil
}
