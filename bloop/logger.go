package bloop

import (
	"log/slog"

	"github.com/mikeschinkel/go-logutil"
)

var logger = logutil.NullLogger

func Logger() *slog.Logger {
	return logger
}

type setLoggerFunc = func(*slog.Logger)

var setLoggerFuncs = make([]setLoggerFunc, 0)

// RegisterSetLoggerFunc lets a package receive the logger passed to
// SetLogger. Packages call it from init() in their logger.go.
func RegisterSetLoggerFunc(fn setLoggerFunc) {
	setLoggerFuncs = append(setLoggerFuncs, fn)
	fn(logger)
}

func SetLogger(l *slog.Logger) {
	if l == nil {
		l = logutil.NullLogger
	}
	logger = l
	for _, fn := range setLoggerFuncs {
		fn(logger)
	}
}
