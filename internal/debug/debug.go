// Package debug holds environment driven debug switches.
package debug

import (
	"log/slog"
	"os"
	"strconv"
)

type debug struct {
	All    bool
	Decode bool
}

var (
	d      *debug
	logger *slog.Logger
)

func init() {
	d = &debug{}
	d.All = boolEnv("PHPQUERY_DEBUG")
	d.Decode = boolEnv("PHPQUERY_DEBUG_DECODE")
	logger = newLogger(d.All || d.Decode)
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func newLogger(on bool) *slog.Logger {
	if !on {
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// Decode reports whether decoding should be traced.
func Decode() bool {
	return d.All || d.Decode
}

// Logger returns the default logger: a stderr text logger at debug level
// when a switch is on, otherwise a logger that discards everything.
func Logger() *slog.Logger {
	return logger
}
