// Package log defines the logger engine of the transactor.
// A child logger is derived from the parent logger and keeps
// the parent's prefix, so every line shows which part of the
// transactor printed it.
//
// Each root logger picks a random pastel color style for its prefix.
package log

import (
	"fmt"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/gamut"
)

const (
	WITH_TIMESTAMP    = true
	WITHOUT_TIMESTAMP = false
)

// Logger is the wrapper over the charmbracelet logger that keeps the style.
type Logger struct {
	logger log.Logger
	style  LoggerStyle
}

// LoggerStyle defines the colors of the prefix and the separator.
type LoggerStyle struct {
	prefix    lipgloss.Style
	separator lipgloss.Style
}

func random_style() (LoggerStyle, error) {
	raw_palette, err := gamut.Generate(2, gamut.PastelGenerator{})
	if err != nil {
		return LoggerStyle{}, fmt.Errorf("gamut.Generate: %w", err)
	}
	palette := make([]lipgloss.Color, len(raw_palette))
	for i, color := range raw_palette {
		lighter := gamut.Lighter(color, 0.05)
		palette[i] = lipgloss.Color(gamut.ToHex(lighter))
	}

	style := LoggerStyle{
		prefix: lipgloss.NewStyle().
			Bold(true).
			Faint(true).
			Foreground(palette[0]),
		separator: lipgloss.NewStyle().
			Faint(true).
			Foreground(palette[1]),
	}

	return style, nil
}

// the charmbracelet styles are global,
// so the logger sets its own style before printing.
// print_mu keeps the style until the line is printed.
var print_mu sync.Mutex

func (style LoggerStyle) set_primary() {
	log.PrefixStyle = style.prefix
	log.SeparatorStyle = style.separator
}

// New logger with the prefix and optionally with the timestamp.
func New(prefix string, timestamp bool) (*Logger, error) {
	style, err := random_style()
	if err != nil {
		return nil, fmt.Errorf("random_style: %w", err)
	}

	logger := log.New()
	logger.SetPrefix(prefix)
	logger.SetReportCaller(false)
	logger.SetReportTimestamp(timestamp)

	return &Logger{
		logger: logger,
		style:  style,
	}, nil
}

// SetDebug enables or disables the debug messages.
func (logger *Logger) SetDebug(enabled bool) {
	if enabled {
		logger.logger.SetLevel(log.DebugLevel)
	} else {
		logger.logger.SetLevel(log.InfoLevel)
	}
}

// Prefix of the logger, including the parent prefixes.
func (logger *Logger) Prefix() string {
	return logger.logger.GetPrefix()
}

func (logger *Logger) Debug(title string, kv ...interface{}) {
	print_mu.Lock()
	defer print_mu.Unlock()
	logger.style.set_primary()
	logger.logger.Debug(title, kv...)
}

// Info prints the information
func (logger *Logger) Info(title string, kv ...interface{}) {
	print_mu.Lock()
	defer print_mu.Unlock()
	logger.style.set_primary()
	logger.logger.Info(title, kv...)
}

// Warn prints the warning message
func (logger *Logger) Warn(title string, kv ...interface{}) {
	print_mu.Lock()
	defer print_mu.Unlock()
	logger.style.set_primary()
	logger.logger.Warn(title, kv...)
}

// Error prints the error message
func (logger *Logger) Error(title string, kv ...interface{}) {
	print_mu.Lock()
	defer print_mu.Unlock()
	logger.style.set_primary()
	logger.logger.Error(title, kv...)
}

// Fatal prints the error message and then calls the os.Exit()
func (logger *Logger) Fatal(title string, kv ...interface{}) {
	print_mu.Lock()
	defer print_mu.Unlock()
	logger.style.set_primary()
	logger.logger.Fatal(title, kv...)
}

// Child logger from the parent. The child keeps the parent style,
// and the key-values are printed with every message of the child.
//
// For example:
//
//	parent, _ := log.New("transactor", false)
//	rpc := parent.Child("client", "endpoint", url)
//
//	parent.Info("starting")
//	rpc.Info("connected")
//
//	// prints the following
//	// INFO transactor: starting
//	// INFO transactor/client: connected endpoint=http://localhost:8545
func (logger *Logger) Child(prefix string, kv ...interface{}) *Logger {
	child := logger.logger.With(kv...)
	child.SetPrefix(logger.Prefix() + "/" + prefix)

	return &Logger{
		logger: child,
		style:  logger.style,
	}
}
