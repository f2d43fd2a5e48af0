package bloopmodel

import (
	"errors"
)

var (
	ErrInvalidPath      = errors.New("invalid path")
	ErrEmptyPath        = errors.New("empty path")
	ErrNoProjects       = errors.New("configuration file must hold at least one project")
	ErrInvalidProject   = errors.New("invalid project")
	ErrDuplicateProject = errors.New("duplicate project name")
	ErrInvalidGlob      = errors.New("invalid source glob")

	ErrInvalidText         = errors.New("text is not valid UTF-8")
	ErrUndeclaredEnumValue = errors.New("undeclared enumeration value")
)
