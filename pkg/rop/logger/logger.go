package logger

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

// Logger wraps zerolog.Logger with the component it logs for.
type Logger struct {
	logger    zerolog.Logger
	component string
}

// New creates a logger from cfg. An unknown level falls back to info.
func New(cfg *Config, component string) *Logger {
	c := *cfg
	c.ApplyDefaults()

	level, err := zerolog.ParseLevel(c.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}

	out := outputWriter(c.Output)
	if strings.ToLower(c.Format) == "console" {
		out = zerolog.ConsoleWriter{Out: out, NoColor: c.NoColor, TimeFormat: "15:04:05.000"}
	}

	zc := zerolog.New(out).Level(level).With()
	if c.Timestamp {
		zc = zc.Timestamp()
	}
	if c.Caller {
		zc = zc.Caller()
	}

	l := &Logger{logger: zc.Logger()}
	return l.WithComponent(component)
}

// NewDefault creates an info level console logger on stderr.
func NewDefault(component string) *Logger {
	return New(&Config{Timestamp: true}, component)
}

// NewWriter creates a JSON logger writing to w, mostly useful in tests.
func NewWriter(w io.Writer, level zerolog.Level) *Logger {
	return &Logger{logger: zerolog.New(w).Level(level)}
}

// NewNop creates a logger that discards everything.
func NewNop() *Logger {
	return &Logger{logger: zerolog.Nop()}
}

// WithComponent returns a logger tagged with a component name.
func (l *Logger) WithComponent(name string) *Logger {
	if name == "" {
		return l
	}
	return &Logger{
		logger:    l.logger.With().Str(FieldComponent, name).Logger(),
		component: name,
	}
}

// WithFields returns a logger with additional fields.
func (l *Logger) WithFields(fields map[string]interface{}) *Logger {
	return &Logger{logger: l.logger.With().Fields(fields).Logger(), component: l.component}
}

// WithError returns a logger with an error field.
func (l *Logger) WithError(err error) *Logger {
	return &Logger{logger: l.logger.With().Err(err).Logger(), component: l.component}
}

// Enabled reports whether messages at level would be written.
func (l *Logger) Enabled(level zerolog.Level) bool {
	return l.logger.GetLevel() <= level && level >= zerolog.GlobalLevel()
}

// GetLogger returns the underlying zerolog.Logger.
func (l *Logger) GetLogger() zerolog.Logger {
	return l.logger
}

func (l *Logger) Debug(msg string, fields ...map[string]interface{}) {
	addFields(l.logger.Debug(), fields...).Msg(msg)
}

func (l *Logger) Info(msg string, fields ...map[string]interface{}) {
	addFields(l.logger.Info(), fields...).Msg(msg)
}

func (l *Logger) Warn(msg string, fields ...map[string]interface{}) {
	addFields(l.logger.Warn(), fields...).Msg(msg)
}

func (l *Logger) Error(msg string, fields ...map[string]interface{}) {
	addFields(l.logger.Error(), fields...).Msg(msg)
}

// --- Global logger ---

var (
	globalMu     sync.RWMutex
	globalLogger *Logger
)

// Init replaces the global logger with one built from cfg.
func Init(cfg Config) {
	SetGlobalLogger(New(&cfg, ""))
}

// SetGlobalLogger sets the global logger instance.
func SetGlobalLogger(l *Logger) {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalLogger = l
}

// GetGlobalLogger returns the global logger, creating a default one if needed.
func GetGlobalLogger() *Logger {
	globalMu.RLock()
	l := globalLogger
	globalMu.RUnlock()
	if l != nil {
		return l
	}

	globalMu.Lock()
	defer globalMu.Unlock()
	if globalLogger == nil {
		globalLogger = NewDefault("")
	}
	return globalLogger
}

// WithComponent returns a component-tagged logger from the global logger.
func WithComponent(name string) *Logger {
	return GetGlobalLogger().WithComponent(name)
}

// --- internal helpers ---

func addFields(event *zerolog.Event, fields ...map[string]interface{}) *zerolog.Event {
	for _, f := range fields {
		event = event.Fields(f)
	}
	return event
}

func outputWriter(output string) io.Writer {
	switch strings.ToLower(output) {
	case "stdout":
		return os.Stdout
	case "", "stderr":
		return os.Stderr
	default:
		f, err := os.OpenFile(output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return os.Stderr
		}
		return f
	}
}
