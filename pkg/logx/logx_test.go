package logx_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/Abraxas-365/journalsubmit/pkg/logx"
)

func TestConsoleFormatter_SortsFields(t *testing.T) {
	var buf bytes.Buffer
	cfg := logx.DefaultConfig()
	cfg.EnableColors = false
	cfg.EnableTimestamp = false
	cfg.Output = &buf

	logger := logx.NewLogger(cfg)
	logger.WithFields(logx.Fields{"b": 2, "a": 1}).Info("hello")

	got := buf.String()
	if got != "[INFO ] hello a=1 b=2\n" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestJSONFormatter_IncludesError(t *testing.T) {
	var buf bytes.Buffer
	cfg := logx.DefaultConfig()
	cfg.Format = logx.FormatJSON
	cfg.Output = &buf

	logger := logx.NewLogger(cfg)
	logger.WithError(errors.New("boom")).WithField("submission_id", 12).Warn("send failed")

	var data map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if data["error"] != "boom" || data["level"] != "WARN" {
		t.Fatalf("unexpected payload %v", data)
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	cfg := logx.DefaultConfig()
	cfg.Level = logx.LevelWarn
	cfg.Output = &buf

	logger := logx.NewLogger(cfg)
	logger.WithField("k", "v").Info("dropped")
	if buf.Len() != 0 {
		t.Fatalf("info should be filtered at warn level, got %q", buf.String())
	}

	logger.SetLevel(logx.LevelOff)
	logger.WithField("k", "v").Error("dropped too")
	if strings.Contains(buf.String(), "dropped too") {
		t.Fatal("off level should drop everything")
	}
}
