package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLogger(t *testing.T) {
	tests := []struct {
		name      string
		verbosity int
		wantLevel zerolog.Level
	}{
		{"quiet logs errors only", Quiet, zerolog.ErrorLevel},
		{"default warn level", 0, zerolog.WarnLevel},
		{"info level", 1, zerolog.InfoLevel},
		{"debug level", 2, zerolog.DebugLevel},
		{"trace level", 3, zerolog.TraceLevel},
		{"high verbosity defaults to trace", 5, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tempDir := t.TempDir()
			t.Setenv("AIASSISTED_STATE_DIR", tempDir)

			SetupLogger(tt.verbosity)

			assert.Equal(t, tt.wantLevel, zerolog.GlobalLevel())

			logPath := filepath.Join(tempDir, "aiassisted.log")
			_, err := os.Stat(logPath)
			assert.NoError(t, err, "log file should be created at %s", logPath)
		})
	}
}

func TestSetupLoggerWithFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "nested", "custom.log")

	SetupLoggerWithFile(1, logPath)
	log.Info().Msg("written to custom file")

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "written to custom file")
}

func TestGetLogger(t *testing.T) {
	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf)
	zerolog.SetGlobalLevel(zerolog.DebugLevel)

	logger := GetLogger("installer")
	logger.Info().Msg("hello")

	assert.Contains(t, buf.String(), `"component":"installer"`)
	assert.Contains(t, buf.String(), "hello")
}

func TestLogCommand(t *testing.T) {
	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf).Level(zerolog.DebugLevel)
	zerolog.SetGlobalLevel(zerolog.DebugLevel)

	LogCommand("update", []string{"--force", "--path", "/tmp"})

	output := buf.String()
	assert.Contains(t, output, "update")
	assert.Contains(t, output, "--force")
	assert.Contains(t, output, "Executing command")
}

func TestLogOperationStart(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)
	zerolog.SetGlobalLevel(zerolog.DebugLevel)

	done := LogOperationStart(logger, "install")
	assert.Contains(t, buf.String(), "Operation started")

	done()
	assert.Contains(t, buf.String(), "Operation completed")
	assert.Contains(t, buf.String(), "duration")
}
