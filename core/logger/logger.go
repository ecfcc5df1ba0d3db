package logger

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

var log zerolog.Logger

func init() {
	log = zerolog.New(os.Stdout).With().Timestamp().Logger()
}

// Init reconfigures the global logger. Pretty output is for local dev only,
// production keeps JSON lines.
func Init(level string, pretty bool) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	var out = os.Stdout
	logger := zerolog.New(out)
	if pretty {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339})
	}
	log = logger.Level(lvl).With().Timestamp().Logger()
}

func Debug(msg string, args ...any) { emit(log.Debug(), msg, args) }
func Info(msg string, args ...any)  { emit(log.Info(), msg, args) }
func Warn(msg string, args ...any)  { emit(log.Warn(), msg, args) }
func Error(msg string, args ...any) { emit(log.Error(), msg, args) }

// emit accepts both call shapes used across the codebase:
// Error("tag", err) and Info("tag", "key", value, "key2", value2).
func emit(e *zerolog.Event, msg string, args []any) {
	i := 0
	for i < len(args) {
		if err, ok := args[i].(error); ok {
			e = e.AnErr("error", err)
			i++
			continue
		}
		key, ok := args[i].(string)
		if !ok || i+1 >= len(args) {
			e = e.Interface("extra", args[i])
			i++
			continue
		}
		e = e.Interface(key, args[i+1])
		i += 2
	}
	e.Msg(msg)
}
