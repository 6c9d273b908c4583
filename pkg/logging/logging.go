package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rstlix0x0/aiassisted/pkg/paths"
)

// Quiet is the verbosity used for --quiet: only errors are logged.
const Quiet = -1

// SetupLogger configures the global logger based on verbosity level
// It sets up dual output to both console and a log file
func SetupLogger(verbosity int) {
	SetupLoggerWithFile(verbosity, "")
}

// logFile is the file the current logger writes to, closed on re-setup
var (
	logFileMu sync.Mutex
	logFile   *os.File
)

// SetupLoggerWithFile is SetupLogger with an explicit log file location.
// An empty path selects the default under the XDG state directory. Console
// output goes to stderr; the file receives JSON lines at the same level.
func SetupLoggerWithFile(verbosity int, path string) {
	zerolog.SetGlobalLevel(LevelForVerbosity(verbosity))

	writers := []io.Writer{zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.Kitchen,
		NoColor:    os.Getenv("NO_COLOR") != "" || !isatty.IsTerminal(os.Stderr.Fd()),
	}}

	if path == "" {
		path = paths.LogFilePath()
	}
	file, fileErr := openLogFile(path)

	logFileMu.Lock()
	if logFile != nil {
		_ = logFile.Close()
	}
	logFile = file
	logFileMu.Unlock()

	if file != nil {
		writers = append(writers, file)
	}

	logger := zerolog.New(zerolog.MultiLevelWriter(writers...)).With().Timestamp()
	if verbosity >= 2 {
		logger = logger.Caller()
	}
	log.Logger = logger.Logger()

	if fileErr != nil {
		log.Warn().Err(fileErr).Str("path", path).Msg("Failed to create log file, logging to console only")
	}
	log.Debug().Int("verbosity", verbosity).Str("logFile", path).Msg("Logger initialized")
}

// LevelForVerbosity maps the -q / -v flag count onto a zerolog level
func LevelForVerbosity(verbosity int) zerolog.Level {
	switch {
	case verbosity < 0:
		return zerolog.ErrorLevel
	case verbosity == 0:
		return zerolog.WarnLevel
	case verbosity == 1:
		return zerolog.InfoLevel
	case verbosity == 2:
		return zerolog.DebugLevel
	default:
		return zerolog.TraceLevel
	}
}

// GetLogger returns a contextualized logger with the given name
func GetLogger(name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}

// openLogFile creates the log file and its parent directories
func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return file, nil
}

// LogCommand logs a command execution with its arguments
func LogCommand(cmd string, args []string) {
	log.Debug().
		Str("command", cmd).
		Strs("args", args).
		Msg("Executing command")
}

// LogOperationStart logs the start of an operation and returns a function to log its completion
func LogOperationStart(logger zerolog.Logger, operation string) func() {
	start := time.Now()
	logger.Debug().
		Str("operation", operation).
		Msg("Operation started")

	return func() {
		logger.Debug().
			Str("operation", operation).
			Dur("duration", time.Since(start)).
			Msg("Operation completed")
	}
}
