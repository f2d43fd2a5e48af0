package bloopstore

import (
	"log/slog"

	"github.com/mikeschinkel/bloopcfg/bloop"
)

var logger *slog.Logger

func init() {
	bloop.RegisterSetLoggerFunc(func(l *slog.Logger) {
		logger = l
	})
}
