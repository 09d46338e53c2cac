package log

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	diagLog      zerolog.Logger
	diagFile     *os.File
	injectedFile *os.File
	logMu        sync.Mutex
	logReady     bool
	pid          int
	dir          string
)

// Run describes one injection run for the run_start/run_end events.
type Run struct {
	Backend   string
	Count     int
	InitialMs uint64
	ItemMs    uint64
}

func ResolveDir(flagPath string) (string, error) {
	// Priority 1: -logpath flag
	if flagPath != "" {
		return absPath(flagPath)
	}

	// Priority 2: WEDGE_LOG_PATH environment variable
	if envPath := os.Getenv("WEDGE_LOG_PATH"); envPath != "" {
		return absPath(envPath)
	}

	// Priority 3: Default OS-specific location
	return getDefaultDir()
}

func absPath(p string) (string, error) {
	if filepath.IsAbs(p) {
		return p, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, p), nil
}

func SetDir(d string) {
	dir = d
}

func Dir() string {
	return dir
}

func EnsureDir() error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}
	return nil
}

func Init() error {
	logMu.Lock()
	defer logMu.Unlock()

	if err := EnsureDir(); err != nil {
		return err
	}

	pid = os.Getpid()

	var err error

	diagPath := filepath.Join(dir, "diagnostics_log.txt")
	diagFile, err = os.OpenFile(diagPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}

	injectedPath := filepath.Join(dir, "injected_log.txt")
	injectedFile, err = os.OpenFile(injectedPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		diagFile.Close()
		return err
	}

	consoleWriter := zerolog.ConsoleWriter{
		Out:        diagFile,
		TimeFormat: "2006-01-02 15:04:05",
		NoColor:    true,
	}
	diagLog = zerolog.New(consoleWriter).With().Timestamp().Int("pid", pid).Logger()

	logReady = true
	return nil
}

func Close() {
	logMu.Lock()
	defer logMu.Unlock()
	if diagFile != nil {
		diagFile.Close()
		diagFile = nil
	}
	if injectedFile != nil {
		injectedFile.Close()
		injectedFile = nil
	}
	logReady = false
}

func Info(msg string) {
	if logReady {
		diagLog.Info().Msg(msg)
	}
}

func Infof(format string, args ...any) {
	if logReady {
		diagLog.Info().Msg(fmt.Sprintf(format, args...))
	}
}

func Error(msg string) {
	if logReady {
		diagLog.Error().Msg(msg)
	}
}

func Errorf(format string, args ...any) {
	if logReady {
		diagLog.Error().Msg(fmt.Sprintf(format, args...))
	}
}

func Warn(msg string) {
	if logReady {
		diagLog.Warn().Msg(msg)
	}
}

func Warnf(format string, args ...any) {
	if logReady {
		diagLog.Warn().Msg(fmt.Sprintf(format, args...))
	}
}

func RunStart(r Run) {
	if !logReady {
		return
	}
	diagLog.Info().
		Str("backend", r.Backend).
		Int("count", r.Count).
		Uint64("initial_ms", r.InitialMs).
		Uint64("item_ms", r.ItemMs).
		Msg("run_start")
}

// RunEnd records the outcome of a run. err is nil on success.
func RunEnd(sent int, elapsed time.Duration, err error) {
	if !logReady {
		return
	}
	ev := diagLog.Info()
	if err != nil {
		ev = diagLog.Error().Str("error", err.Error())
	}
	ev.Bool("ok", err == nil).
		Int("sent", sent).
		Float64("elapsed_ms", float64(elapsed.Microseconds())/1000).
		Msg("run_end")
}

// Injected appends one delivered code to injected_log.txt.
func Injected(index int, code string) {
	if !logReady {
		return
	}
	logMu.Lock()
	defer logMu.Unlock()
	if injectedFile == nil {
		return
	}
	line := fmt.Sprintf("%s\t[%d]\t%d\t%s\n", time.Now().Format("2006-01-02 15:04:05"), pid, index, code)
	injectedFile.WriteString(line)
}
