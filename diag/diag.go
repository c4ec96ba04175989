// Package diag provides diagnostic helpers for scripts: severity levels,
// one-line message formatting, and the Assert/Exit condition helpers.
//
// Assert and Exit replace the "check condition, report, fail" boilerplate
// with a single call. On a false condition they write one "LEVEL: message"
// line to the configured stream (os.Stderr unless disabled), forward the
// message to an optional Logger, then fail: Assert returns an
// *AssertionError for the caller to handle, Exit terminates the process.
//
// The package takes no ownership of the stream or logger handed to it; it
// performs a single write per failure and never closes, buffers, or retries.
// Failures of the reporting channel itself propagate as panics from the
// underlying sink, untouched.
package diag

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/agapow/relais-dev/option"
)

// ErrAssertion is the default error kind carried by assertion failures.
var ErrAssertion = errors.New("diag: assertion failed")

// DefaultMessage is used when no message option is supplied.
const DefaultMessage = "unknown error"

// AssertionError is returned by Assert on a false condition. It carries the
// configured message and wraps the configured kind, so
// errors.Is(err, diag.ErrAssertion) holds unless a custom kind was set.
type AssertionError struct {
	Kind    error
	Message string
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	if e.Kind == nil {
		return e.Message
	}
	return e.Kind.Error() + ": " + e.Message
}

// Unwrap exposes the configured kind to errors.Is / errors.As.
func (e *AssertionError) Unwrap() error { return e.Kind }

// Config holds the reporting and failure settings of Assert and Exit.
// Callers normally configure it through the With* options; the zero value is
// not meaningful on its own.
type Config struct {
	// Message is the diagnostic text reported and carried by the failure.
	Message string

	// Kind is the error wrapped by the AssertionError Assert returns.
	Kind error

	// Level classifies the failure; it is printed as the line label and
	// forwarded to the logger.
	Level Level

	// Label overrides the printed label. nil derives it from Level; an
	// explicitly empty label drops the ": " separator entirely.
	Label *string

	// Stream receives the formatted line. nil disables stream reporting.
	Stream io.Writer

	// Logger, when non-nil, receives (Level, Message).
	Logger Logger

	// ExitCode is the process status Exit terminates with.
	ExitCode int

	// Color forces colored (true) or plain (false) labels. nil auto-detects
	// whether Stream is a terminal.
	Color *bool
}

// WithMessage sets the diagnostic message.
func WithMessage(message string) option.Option[Config] {
	return func(c *Config) { c.Message = message }
}

// WithMessagef sets the diagnostic message from a format string.
func WithMessagef(format string, args ...any) option.Option[Config] {
	return func(c *Config) { c.Message = fmt.Sprintf(format, args...) }
}

// WithKind sets the error kind wrapped by the failure Assert returns.
func WithKind(kind error) option.Option[Config] {
	return func(c *Config) { c.Kind = kind }
}

// WithLevel sets the severity of the failure.
func WithLevel(level Level) option.Option[Config] {
	return func(c *Config) { c.Level = level }
}

// WithLabel overrides the printed label. An empty label omits the ": "
// separator, leaving the bare message.
func WithLabel(label string) option.Option[Config] {
	return func(c *Config) { c.Label = &label }
}

// WithStream redirects the formatted line to w. Passing nil disables stream
// reporting, like WithoutStream.
func WithStream(w io.Writer) option.Option[Config] {
	return func(c *Config) { c.Stream = w }
}

// WithoutStream disables stream reporting.
func WithoutStream() option.Option[Config] {
	return func(c *Config) { c.Stream = nil }
}

// WithLogger mirrors the failure to l.
func WithLogger(l Logger) option.Option[Config] {
	return func(c *Config) { c.Logger = l }
}

// WithExitCode sets the process status Exit terminates with.
func WithExitCode(code int) option.Option[Config] {
	return func(c *Config) { c.ExitCode = code }
}

// WithColor forces colored or plain labels instead of terminal detection.
func WithColor(enabled bool) option.Option[Config] {
	return func(c *Config) { c.Color = &enabled }
}

// Line formats a single diagnostic line "LABEL: message". An empty label
// omits the ": " separator.
func Line(label, message string) string {
	if label == "" {
		return message
	}
	return label + ": " + message
}

// Assert returns nil when cond is true; the options are not even applied.
//
// When cond is false it reports through the configured channels and returns
// an *AssertionError carrying the message (default "unknown error") and
// wrapping the kind (default ErrAssertion). Defaults: level LevelError,
// stream os.Stderr, no logger.
func Assert(cond bool, opts ...option.Option[Config]) error {
	if cond {
		return nil
	}
	cfg := option.Apply(defaults(LevelError), opts...)
	report(cfg)
	return &AssertionError{Kind: cfg.Kind, Message: cfg.Message}
}

// Exit returns normally when cond is true; the options are not even applied.
//
// When cond is false it reports like Assert, then terminates the process
// with the configured exit code (default 1, the generic failure status).
// Defaults: level LevelFatal, stream os.Stderr, no logger. Exit never
// returns on failure; prefer Assert anywhere the caller could recover.
func Exit(cond bool, opts ...option.Option[Config]) {
	if cond {
		return
	}
	cfg := option.Apply(defaults(LevelFatal), opts...)
	report(cfg)
	osExit(cfg.ExitCode)
}

// osExit is swapped in tests.
var osExit = os.Exit

func defaults(level Level) *Config {
	return &Config{
		Message:  DefaultMessage,
		Kind:     ErrAssertion,
		Level:    level,
		Stream:   os.Stderr,
		ExitCode: 1,
	}
}

// report writes the formatted line to the stream and mirrors (level, message)
// to the logger. Either channel may be absent; delivery is not guaranteed and
// sink failures propagate untouched.
func report(cfg *Config) {
	if cfg.Stream != nil {
		label := cfg.Level.String()
		if cfg.Label != nil {
			label = *cfg.Label
		}
		line := cfg.Message
		if label != "" {
			if useColor(cfg) {
				label = colorLabel(cfg.Level, label)
			}
			line = Line(label, cfg.Message)
		}
		fmt.Fprintln(cfg.Stream, line)
	}
	if cfg.Logger != nil {
		cfg.Logger.Log(cfg.Level, cfg.Message)
	}
}

func useColor(cfg *Config) bool {
	if cfg.Color != nil {
		return *cfg.Color
	}
	return isTerminal(cfg.Stream)
}
