package libdiff

import "github.com/fatih/color"

// Colors decorates the parts of a unified diff. Nil functions, or a nil
// *Colors passed to Write, print plain text.
type Colors struct {
	Header func(string, ...any) string
	Hunk   func(string, ...any) string
	Delete func(string, ...any) string
	Insert func(string, ...any) string
}

func NewColors() *Colors {
	return &Colors{
		Header: color.New(color.Bold).SprintfFunc(),
		Hunk:   color.RGB(128, 168, 196).SprintfFunc(),
		Delete: color.RedString,
		Insert: color.GreenString,
	}
}

func (c *Colors) paint(f func(string, ...any) string, s string) string {
	if f == nil {
		return s
	}
	return f("%s", s)
}
