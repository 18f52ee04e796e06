package ir

import (
	"errors"

	"github.com/signadot/clean-yaml/format"
)

var (
	ErrParse            = errors.New("parse error")
	ErrUnsupportedValue = errors.New("unsupported value")
	ErrDuplicateKey     = errors.New("duplicate key")
	ErrBadFormat        = format.ErrBadFormat
)
