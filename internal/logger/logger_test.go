package logger_test

import (
	"testing"

	"go.uber.org/zap/zapcore"

	"internmatch-bot/internal/logger"
)

func TestNew_Levels(t *testing.T) {
	cases := []struct {
		level string
		want  zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"info", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
	}
	for _, c := range cases {
		log, err := logger.New(c.level)
		if err != nil {
			t.Fatalf("New(%q) error: %v", c.level, err)
		}
		if !log.Core().Enabled(c.want) {
			t.Errorf("New(%q) does not enable %v", c.level, c.want)
		}
		if c.want > zapcore.DebugLevel && log.Core().Enabled(c.want-1) {
			t.Errorf("New(%q) enables %v", c.level, c.want-1)
		}
	}
}

func TestNew_InvalidLevel(t *testing.T) {
	if _, err := logger.New("verbose"); err == nil {
		t.Error("New(verbose) error = nil, want error")
	}
}
