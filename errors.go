package bloopcfg

import (
	"errors"
)

var (
	ErrFailedToParseConfig = errors.New("failed to parse configuration")
	ErrFailedToReadConfig  = errors.New("failed to read configuration file")
	ErrFailedToWriteConfig = errors.New("failed to write configuration file")
	ErrNilConfig           = errors.New("configuration is nil")
	ErrDecoderPanic        = errors.New("decoder panicked")
)
