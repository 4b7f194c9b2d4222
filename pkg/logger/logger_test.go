package logger

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/wonny/fairvalue/pkg/config"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		name     string
		levelStr string
		want     zerolog.Level
	}{
		{"debug level", "debug", zerolog.DebugLevel},
		{"info level", "info", zerolog.InfoLevel},
		{"warn level", "warn", zerolog.WarnLevel},
		{"warning alias", "warning", zerolog.WarnLevel},
		{"error level", "error", zerolog.ErrorLevel},
		{"fatal level", "fatal", zerolog.FatalLevel},
		{"uppercase", "INFO", zerolog.InfoLevel},
		{"unknown falls back to info", "trace", zerolog.InfoLevel},
		{"empty falls back to info", "", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseLogLevel(tt.levelStr); got != tt.want {
				t.Errorf("parseLogLevel(%q) = %v, want %v", tt.levelStr, got, tt.want)
			}
		})
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name      string
		cfg       *config.Config
		wantLevel zerolog.Level
	}{
		{
			name:      "console format",
			cfg:       &config.Config{Env: "development", LogLevel: "debug", LogFormat: "console"},
			wantLevel: zerolog.DebugLevel,
		},
		{
			name:      "json format",
			cfg:       &config.Config{Env: "production", LogLevel: "warn", LogFormat: "json"},
			wantLevel: zerolog.WarnLevel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := New(tt.cfg)
			if log == nil {
				t.Fatal("New() returned nil")
			}
			if zerolog.GlobalLevel() != tt.wantLevel {
				t.Errorf("global level = %v, want %v", zerolog.GlobalLevel(), tt.wantLevel)
			}
		})
	}
}

func TestWithFieldChaining(t *testing.T) {
	log := NewNop()

	child := log.WithField("ticker", "AAPL").WithFields(map[string]interface{}{
		"catalog": "mag7",
		"price":   123.45,
	})

	if child == nil {
		t.Fatal("WithField chain returned nil")
	}
	if child == log {
		t.Error("WithField should return a new logger instance")
	}
}
