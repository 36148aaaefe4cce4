package logger

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name  string
		level string
		want  logrus.Level
	}{
		{name: "debug level", level: "debug", want: logrus.DebugLevel},
		{name: "info level", level: "info", want: logrus.InfoLevel},
		{name: "warn level", level: "warn", want: logrus.WarnLevel},
		{name: "error level", level: "error", want: logrus.ErrorLevel},
		{name: "invalid level defaults to info", level: "invalid", want: logrus.InfoLevel},
		{name: "empty level defaults to info", level: "", want: logrus.InfoLevel},
		{name: "uppercase level", level: "DEBUG", want: logrus.DebugLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := New(tt.level, &bytes.Buffer{})
			require.NotNil(t, log)
			assert.Equal(t, tt.want, log.Level())
		})
	}
}

func TestNew_NilOutput(t *testing.T) {
	log := New("info", nil)
	require.NotNil(t, log)
	assert.NotNil(t, log.log)
}

func TestNop_DiscardsEverything(t *testing.T) {
	log := Nop()
	log.Error().Msg("dropped")
	assert.Equal(t, logrus.PanicLevel, log.Level())
}

func TestLogger_Levels(t *testing.T) {
	buf := &bytes.Buffer{}
	log := New("debug", buf)

	log.Debug().Str("type", "debug").Msg("debug message")
	log.Info().Str("type", "info").Msg("info message")
	log.Warn().Str("type", "warn").Msg("warn message")
	log.Error().Str("type", "error").Msg("error message")

	output := buf.String()
	for _, msg := range []string{"debug message", "info message", "warn message", "error message"} {
		assert.Contains(t, output, msg)
	}
	assert.Contains(t, output, "level=debug")
	assert.Contains(t, output, "level=error")
}

func TestLogger_LevelFiltering(t *testing.T) {
	tests := []struct {
		name      string
		logLevel  string
		emit      func(*Logger)
		shouldLog bool
	}{
		{"debug message with debug level", "debug", func(l *Logger) { l.Debug().Msg("debug") }, true},
		{"debug message with info level", "info", func(l *Logger) { l.Debug().Msg("debug") }, false},
		{"info message with warn level", "warn", func(l *Logger) { l.Info().Msg("info") }, false},
		{"warn message with warn level", "warn", func(l *Logger) { l.Warn().Msg("warn") }, true},
		{"error message with error level", "error", func(l *Logger) { l.Error().Msg("error") }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			tt.emit(New(tt.logLevel, buf))

			if tt.shouldLog {
				assert.NotEmpty(t, buf.String())
			} else {
				assert.Empty(t, buf.String())
			}
		})
	}
}

func TestEntry_Fields(t *testing.T) {
	buf := &bytes.Buffer{}
	log := New("info", buf)

	log.Info().
		Str("name", "build").
		Int("runs", 3).
		Bool("enabled", true).
		Float("lapse", 0.125).
		Dur("elapsed", 1500*time.Microsecond).
		Err(errors.New("exit status 1")).
		Msg("timed")

	output := buf.String()
	assert.Contains(t, output, "timed")
	assert.Contains(t, output, "name=build")
	assert.Contains(t, output, "runs=3")
	assert.Contains(t, output, "enabled=true")
	assert.Contains(t, output, "lapse=0.125")
	assert.Contains(t, output, "elapsed=1.5")
	assert.Contains(t, output, "exit status 1")
}

func TestEntry_Err_Nil(t *testing.T) {
	buf := &bytes.Buffer{}
	log := New("error", buf)

	log.Error().Err(nil).Msg("no error")

	assert.Contains(t, buf.String(), "no error")
	assert.NotContains(t, buf.String(), "error=")
}

func TestLogrus_SharesOutput(t *testing.T) {
	buf := &bytes.Buffer{}
	log := New("debug", buf)

	log.Logrus().WithField("name", "x").Debug("from library")

	assert.Contains(t, buf.String(), "from library")
	assert.Contains(t, buf.String(), "name=x")
}
