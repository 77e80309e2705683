package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Logger is a zerolog logger bound to a service name.
type Logger struct {
	zl      zerolog.Logger
	service string
}

// New builds a logger writing to cfg.Output.
func New(cfg *Config, service string) *Logger {
	out := os.Stdout
	if strings.EqualFold(cfg.Output, "stderr") {
		out = os.Stderr
	}
	return NewWithWriter(cfg, out, service)
}

// NewWithWriter builds a logger writing to w. Unknown levels fall back to
// info.
func NewWithWriter(cfg *Config, w io.Writer, service string) *Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	var zl zerolog.Logger
	switch strings.ToLower(cfg.Format) {
	case "console", "pretty":
		zl = zerolog.New(consoleWriter(w, service, cfg.NoColor))
	default:
		zl = zerolog.New(w)
	}

	ctx := zl.Level(level).With()
	if cfg.Timestamp {
		ctx = ctx.Timestamp()
	}
	if cfg.Caller {
		ctx = ctx.Caller()
	}
	return &Logger{zl: ctx.Logger(), service: service}
}

// NewDefault builds an info-level console logger on stdout.
func NewDefault(service string) *Logger {
	cfg := Config{}
	cfg.ApplyDefaults()
	return New(&cfg, service)
}

func (l *Logger) derive(zl zerolog.Logger) *Logger {
	return &Logger{zl: zl, service: l.service}
}

// WithComponent tags every entry with the component name.
func (l *Logger) WithComponent(name string) *Logger {
	return l.derive(l.zl.With().Str(FieldComponent, name).Logger())
}

// WithFields attaches fields to every entry.
func (l *Logger) WithFields(fields map[string]interface{}) *Logger {
	return l.derive(l.zl.With().Fields(fields).Logger())
}

// WithError attaches err under the error field.
func (l *Logger) WithError(err error) *Logger {
	return l.derive(l.zl.With().Err(err).Logger())
}

// DebugEnabled reports whether debug entries are written, so hot paths can
// skip building fields.
func (l *Logger) DebugEnabled() bool {
	return l.zl.GetLevel() <= zerolog.DebugLevel && zerolog.GlobalLevel() <= zerolog.DebugLevel
}

func (l *Logger) Debug(msg string, fields ...map[string]interface{}) {
	write(l.zl.Debug(), msg, fields)
}

func (l *Logger) Info(msg string, fields ...map[string]interface{}) {
	write(l.zl.Info(), msg, fields)
}

func (l *Logger) Warn(msg string, fields ...map[string]interface{}) {
	write(l.zl.Warn(), msg, fields)
}

func (l *Logger) Error(msg string, fields ...map[string]interface{}) {
	write(l.zl.Error(), msg, fields)
}

func write(e *zerolog.Event, msg string, fields []map[string]interface{}) {
	for _, f := range fields {
		e = e.Fields(f)
	}
	e.Msg(msg)
}

var global *Logger

// SetGlobalLogger replaces the logger used by package-level helpers.
func SetGlobalLogger(l *Logger) { global = l }

// GetGlobalLogger returns the package logger, creating a default one on
// first use.
func GetGlobalLogger() *Logger {
	if global == nil {
		global = NewDefault("default")
	}
	return global
}

// Info logs through the global logger.
func Info(msg string, fields ...map[string]interface{}) {
	GetGlobalLogger().Info(msg, fields...)
}

// WithComponent derives a component logger from the global logger.
func WithComponent(name string) *Logger {
	return GetGlobalLogger().WithComponent(name)
}

type levelStyle struct {
	tag   string
	color string
}

var levelStyles = map[string]levelStyle{
	"trace": {"TRC", "\033[90m"},
	"debug": {"DBG", "\033[36m"},
	"info":  {"INF", "\033[32m"},
	"warn":  {"WRN", "\033[33m"},
	"error": {"ERR", "\033[31m"},
	"fatal": {"FTL", "\033[35m"},
}

func paint(s, color string, noColor bool) string {
	if noColor || color == "" {
		return s
	}
	return color + s + "\033[0m"
}

// consoleWriter renders "[SVC][LVL] message key:value". The service tag is
// the first three letters of service, omitted for short or default names.
func consoleWriter(w io.Writer, service string, noColor bool) zerolog.ConsoleWriter {
	prefix := ""
	if len(service) >= 3 && service != "default" {
		prefix = paint("["+strings.ToUpper(service[:3])+"]", "\033[34m", noColor)
	}
	return zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: "15:04:05",
		NoColor:    noColor,
		FormatLevel: func(i interface{}) string {
			name := strings.ToLower(fmt.Sprint(i))
			style, ok := levelStyles[name]
			if !ok {
				style = levelStyle{tag: strings.ToUpper(name)}
			}
			return prefix + paint("["+style.tag+"]", style.color, noColor)
		},
		FormatFieldName: func(i interface{}) string { return fmt.Sprint(i) + ":" },
	}
}
