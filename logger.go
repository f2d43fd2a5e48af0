package bloopcfg

import (
	"log/slog"

	"github.com/mikeschinkel/go-cfgstore"

	"github.com/mikeschinkel/bloopcfg/bloop"
)

// logger is the package-level logger instance.
var logger *slog.Logger

func init() {
	bloop.RegisterSetLoggerFunc(func(l *slog.Logger) {
		logger = l
	})
}

// SetLogger sets the logger used by every package of this module and by the
// configuration store. A nil logger discards output.
func SetLogger(l *slog.Logger) {
	bloop.SetLogger(l)
	cfgstore.SetLogger(bloop.Logger())
}
