package debug

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Build flag for debug mode - can be overridden at build time
// go build -ldflags "-X github.com/standardbeagle/find/internal/debug.EnableDebug=true"
var EnableDebug = "false"

// LogConfig controls where the debug log file lives and how it rotates
type LogConfig struct {
	LogFile    string // Log file path
	MaxSize    int    // Max size in megabytes
	MaxBackups int    // Max number of backups
	MaxAge     int    // Max age in days
	Compress   bool   // Compress backups
}

// DefaultLogConfig places the debug log under the OS temp directory
func DefaultLogConfig() LogConfig {
	return LogConfig{
		LogFile:    filepath.Join(os.TempDir(), "find-debug-logs", "debug.log"),
		MaxSize:    10,
		MaxBackups: 3,
		MaxAge:     7,
		Compress:   false,
	}
}

// debugOutput is the writer for debug output (defaults to nil, meaning no output)
var debugOutput io.Writer

// debugFile holds the rotating logger if debug output goes to a file
var debugFile *lumberjack.Logger

// debugMutex protects access to debug output
var debugMutex sync.Mutex

// SetDebugOutput sets a custom writer for debug output.
// Pass nil to disable debug output entirely.
func SetDebugOutput(w io.Writer) {
	debugMutex.Lock()
	defer debugMutex.Unlock()
	debugOutput = w
}

// InitDebugLogFile initializes debug logging to a rotating file.
// Returns the path to the log file, or an error if initialization fails.
// Call CloseDebugLog when done to ensure the file is properly closed.
func InitDebugLogFile(cfg LogConfig) (string, error) {
	debugMutex.Lock()
	defer debugMutex.Unlock()

	if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0755); err != nil {
		return "", fmt.Errorf("failed to create debug log directory: %w", err)
	}

	logger := &lumberjack.Logger{
		Filename:   cfg.LogFile,
		MaxSize:    cfg.MaxSize,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAge,
		Compress:   cfg.Compress,
	}

	debugFile = logger
	debugOutput = logger
	return cfg.LogFile, nil
}

// CloseDebugLog closes the debug log file if one is open.
func CloseDebugLog() error {
	debugMutex.Lock()
	defer debugMutex.Unlock()

	if debugFile != nil {
		err := debugFile.Close()
		debugFile = nil
		debugOutput = nil
		return err
	}
	return nil
}

// IsDebugEnabled returns true if debug mode was enabled at build time
func IsDebugEnabled() bool {
	return EnableDebug == "true"
}

// getDebugWriter returns the writer for debug output, or nil if none is configured
func getDebugWriter() io.Writer {
	debugMutex.Lock()
	defer debugMutex.Unlock()
	return debugOutput
}

// Printf prints debug information only when debug mode is enabled and output is configured
func Printf(format string, args ...interface{}) {
	if !IsDebugEnabled() {
		return
	}
	w := getDebugWriter()
	if w == nil {
		return
	}
	fmt.Fprintf(w, "[DEBUG] "+format, args...)
}

// Log provides structured debug logging with component names
func Log(component, format string, args ...interface{}) {
	if !IsDebugEnabled() {
		return
	}
	w := getDebugWriter()
	if w == nil {
		return
	}
	fmt.Fprintf(w, "[DEBUG:%s] "+format, append([]interface{}{component}, args...)...)
}

// LogSearch provides debug logging specifically for matching
func LogSearch(format string, args ...interface{}) {
	Log("SEARCH", format, args...)
}

// LogSource provides debug logging specifically for line reading
func LogSource(format string, args ...interface{}) {
	Log("SOURCE", format, args...)
}

// CatastrophicError records an error that ends the run in the debug log.
// The user-facing message is written by the caller.
func CatastrophicError(format string, args ...interface{}) {
	w := getDebugWriter()
	if w != nil {
		fmt.Fprintf(w, "[CATASTROPHIC] "+format, args...)
	}
}
