// Package libdiff computes and prints line diffs between two renderings.
//
// Lines are diffed with github.com/sergi/go-diff in line mode, so each
// edit is reported as whole lines removed or added. Write prints the
// result in unified format, optionally colored with github.com/fatih/color.
package libdiff
