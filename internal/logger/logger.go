package logger

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"pkt.systems/pslog"
)

// DefaultPath is the log file, relative to the working directory.
const DefaultPath = "logs/meshmenu.log"

// maxLines bounds the in-memory history shown by the terminal overlay.
const maxLines = 500

// Options configures a Logger.
type Options struct {
	// Path is the file every entry is appended to. Empty disables the file.
	Path string
	// Level is one of trace, debug, info, warn, error. Empty means info.
	Level string
	// Echo receives a copy of every entry, e.g. os.Stderr for the CLI.
	Echo io.Writer
}

// Logger is a pslog logger whose output is also kept in memory (for the terminal overlay) and
// appended to a file on disk.
type Logger struct {
	mu      sync.Mutex
	lines   []string
	partial []byte
	file    *os.File
	echo    io.Writer
	log     pslog.Logger
}

// New returns a Logger writing console-formatted entries. The log directory is created if needed.
func New(opts Options) (*Logger, error) {
	popts := pslog.Options{Mode: pslog.ModeConsole, NoColor: true}
	if err := SetLevel(&popts, opts.Level); err != nil {
		return nil, err
	}
	l := &Logger{echo: opts.Echo}
	if opts.Path != "" {
		if err := os.MkdirAll(filepath.Dir(opts.Path), 0o755); err != nil {
			return nil, fmt.Errorf("logger: %w", err)
		}
		f, err := os.OpenFile(opts.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("logger: %w", err)
		}
		l.file = f
	}
	l.log = pslog.NewWithOptions(l, popts)
	return l, nil
}

// SetLevel sets o.MinLevel from a level name.
func SetLevel(o *pslog.Options, name string) error {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "trace":
		o.MinLevel = pslog.TraceLevel
	case "debug":
		o.MinLevel = pslog.DebugLevel
	case "", "info":
		o.MinLevel = pslog.InfoLevel
	case "warn", "warning":
		o.MinLevel = pslog.WarnLevel
	case "error":
		o.MinLevel = pslog.ErrorLevel
	default:
		return fmt.Errorf("logger: unknown level %q", name)
	}
	return nil
}

// Logger returns the structured logger.
func (l *Logger) Logger() pslog.Logger {
	return l.log
}

// Log records a line typed by the user.
func (l *Logger) Log(line string) {
	l.log.Info(line)
}

// Write splits p into lines for the in-memory history and copies it to the file and echo writer.
func (l *Logger) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.partial = append(l.partial, p...)
	for {
		i := bytes.IndexByte(l.partial, '\n')
		if i < 0 {
			break
		}
		l.lines = append(l.lines, string(l.partial[:i]))
		l.partial = l.partial[i+1:]
	}
	if over := len(l.lines) - maxLines; over > 0 {
		l.lines = append(l.lines[:0:0], l.lines[over:]...)
	}

	if l.file != nil {
		if _, err := l.file.Write(p); err != nil {
			return 0, err
		}
	}
	if l.echo != nil {
		if _, err := l.echo.Write(p); err != nil {
			return 0, err
		}
	}
	return len(p), nil
}

// Lines returns a copy of the stored lines, oldest first.
func (l *Logger) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}

// Close closes the log file.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}
