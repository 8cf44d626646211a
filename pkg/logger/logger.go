package logx

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/seasonal-storefront/server/internal/core"
)

var DefaultLoggerOpts = &LoggerOpts{
	Environment: core.Development,
}

type LoggerOpts struct {
	Environment core.Environment
	// Level overrides the environment default when it parses as a zerolog level.
	Level string
	// Writer defaults to stdout (JSON) in production and a console writer elsewhere.
	Writer io.Writer
}

func safe(otps ...LoggerOpts) *LoggerOpts {
	if len(otps) == 0 {
		return DefaultLoggerOpts
	}
	return &otps[0]
}

func Init(otps ...LoggerOpts) {
	opts := safe(otps...)

	level := zerolog.DebugLevel
	if opts.Environment.IsProduction() {
		level = zerolog.InfoLevel
	}
	if opts.Level != "" {
		if l, err := zerolog.ParseLevel(opts.Level); err == nil {
			level = l
		}
	}

	w := opts.Writer
	if opts.Environment.IsProduction() {
		if w == nil {
			w = os.Stdout
		}
		log.Logger = zerolog.New(w).With().Timestamp().Logger()
	} else {
		if w == nil {
			w = zerolog.NewConsoleWriter()
		}
		log.Logger = zerolog.New(w).With().Timestamp().Caller().Logger()
	}
	log.Logger = log.Logger.Level(level)
}

// Component returns a child logger tagged with the component name.
func Component(name string) zerolog.Logger {
	return log.Logger.With().Str("component", name).Logger()
}

func Debug() *zerolog.Event {
	return log.Debug()
}

func Info() *zerolog.Event {
	return log.Info()
}

func Warn() *zerolog.Event {
	return log.Warn()
}

func Error() *zerolog.Event {
	return log.Error()
}

func Panic() *zerolog.Event {
	return log.Panic()
}

func Fatal() *zerolog.Event {
	return log.Fatal()
}
