package tui

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// LevelSuccess sits between info and warn so file logs can tell the two apart.
const LevelSuccess = slog.Level(2)

// consoleHandler writes bare messages: no timestamps, no level prefixes.
// Warnings and errors go to stderr, everything else to stdout.
type consoleHandler struct {
	stdout    io.Writer
	stderr    io.Writer
	debugMode bool
}

func (h *consoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	if level < slog.LevelInfo {
		return h.debugMode
	}
	return true
}

func (h *consoleHandler) Handle(_ context.Context, record slog.Record) error {
	w := h.stdout
	if record.Level >= slog.LevelWarn {
		w = h.stderr
	}
	_, err := fmt.Fprintln(w, record.Message)
	return err
}

func (h *consoleHandler) WithAttrs(_ []slog.Attr) slog.Handler {
	return h
}

func (h *consoleHandler) WithGroup(_ string) slog.Handler {
	return h
}

// multiHandler fans out log records to multiple handlers
type multiHandler struct {
	handlers []slog.Handler
}

func (h *multiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (h *multiHandler) Handle(ctx context.Context, record slog.Record) error {
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, record.Level) {
			if err := handler.Handle(ctx, record.Clone()); err != nil {
				return err
			}
		}
	}
	return nil
}

func (h *multiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newHandlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		newHandlers[i] = handler.WithAttrs(attrs)
	}
	return &multiHandler{handlers: newHandlers}
}

func (h *multiHandler) WithGroup(name string) slog.Handler {
	newHandlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		newHandlers[i] = handler.WithGroup(name)
	}
	return &multiHandler{handlers: newHandlers}
}

// SplogOptions configures a Splog. Nil writers default to the process streams.
type SplogOptions struct {
	Stdout  io.Writer
	Stderr  io.Writer
	Debug   bool
	LogFile string
}

// Splog routes gix's user-facing output and debug logging.
type Splog struct {
	logger    *slog.Logger
	stdout    io.Writer
	logWriter io.WriteCloser
}

// NewSplog creates a Splog. When opts.LogFile is set every record, debug
// included, is also written to a rotating log file.
func NewSplog(opts SplogOptions) (*Splog, error) {
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}

	splog := &Splog{stdout: opts.Stdout}

	handlers := []slog.Handler{&consoleHandler{
		stdout:    opts.Stdout,
		stderr:    opts.Stderr,
		debugMode: opts.Debug,
	}}

	if path := ResolveLogFilePath(opts.LogFile); path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}

		writer := newRotatingWriter(path)
		splog.logWriter = writer

		handlers = append(handlers, slog.NewTextHandler(writer, &slog.HandlerOptions{
			Level:       slog.LevelDebug,
			ReplaceAttr: fileAttrs,
		}))
	}

	splog.logger = slog.New(&multiHandler{handlers: handlers})
	return splog, nil
}

// NewDiscardSplog returns a Splog that drops everything. Useful in tests.
func NewDiscardSplog() *Splog {
	splog, _ := NewSplog(SplogOptions{Stdout: io.Discard, Stderr: io.Discard})
	return splog
}

func fileAttrs(_ []string, a slog.Attr) slog.Attr {
	switch a.Key {
	case slog.TimeKey:
		return slog.String(a.Key, a.Value.Time().Format("2006-01-02 15:04:05.000"))
	case slog.LevelKey:
		if level, ok := a.Value.Any().(slog.Level); ok && level == LevelSuccess {
			return slog.String(a.Key, "SUCCESS")
		}
	}
	return a
}

// Logger exposes the underlying slog.Logger, e.g. for the git runner.
func (s *Splog) Logger() *slog.Logger {
	return s.logger
}

func (s *Splog) log(level slog.Level, msg string) {
	s.logger.Log(context.Background(), level, msg)
}

func sprintf(format string, args []interface{}) string {
	if len(args) == 0 {
		return format
	}
	return fmt.Sprintf(format, args...)
}

// Info writes a plain message.
// nolint // format string validation is handled internally via fmt.Sprintf
func (s *Splog) Info(format string, args ...interface{}) {
	s.log(slog.LevelInfo, sprintf(format, args))
}

// Success writes a success line.
// nolint // format string validation is handled internally via fmt.Sprintf
func (s *Splog) Success(format string, args ...interface{}) {
	s.log(LevelSuccess, FormatSuccess(sprintf(format, args)))
}

// Warn writes a warning line.
// nolint // format string validation is handled internally via fmt.Sprintf
func (s *Splog) Warn(format string, args ...interface{}) {
	s.log(slog.LevelWarn, FormatWarning(sprintf(format, args)))
}

// Error writes an error line.
// nolint // format string validation is handled internally via fmt.Sprintf
func (s *Splog) Error(format string, args ...interface{}) {
	s.log(slog.LevelError, FormatError(sprintf(format, args)))
}

// Hint writes a remediation hint.
// nolint // format string validation is handled internally via fmt.Sprintf
func (s *Splog) Hint(format string, args ...interface{}) {
	s.log(slog.LevelError, FormatHint(sprintf(format, args)))
}

// Debug writes a message shown only in debug mode.
// nolint // format string validation is handled internally via fmt.Sprintf
func (s *Splog) Debug(format string, args ...interface{}) {
	s.log(slog.LevelDebug, sprintf(format, args))
}

// Newline writes an empty line to stdout.
func (s *Splog) Newline() {
	_, _ = fmt.Fprintln(s.stdout)
}

// Close closes the log file if one was opened
func (s *Splog) Close() error {
	if s.logWriter != nil {
		return s.logWriter.Close()
	}
	return nil
}
