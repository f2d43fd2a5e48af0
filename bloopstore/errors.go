package bloopstore

import (
	"errors"
)

var (
	ErrFailedToFindConfigDir = errors.New("failed to locate configuration directory")
	ErrFailedToListConfigs   = errors.New("failed to list configuration files")
	ErrFailedToLoadConfig    = errors.New("failed to load configuration file")
	ErrInvalidCacheSize      = errors.New("invalid cache size")
)
