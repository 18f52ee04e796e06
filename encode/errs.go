package encode

import "errors"

var (
	ErrBadIndent = errors.New("bad indent")
	ErrBadWidth  = errors.New("bad width")
	ErrTooDeep   = errors.New("nesting too deep")
)
