package libdiff

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type Op int

const (
	Equal Op = iota
	Delete
	Insert
)

func (op Op) String() string {
	switch op {
	case Delete:
		return "-"
	case Insert:
		return "+"
	default:
		return " "
	}
}

// Line is one line of a diff. From and To are 1-based line numbers in
// the old and new text, 0 when the line is absent from that side.
type Line struct {
	Op   Op
	Text string
	From int
	To   int
}

// Lines returns the line diff turning from into to. Text keeps its line
// terminator, except possibly on the last line of either side.
func Lines(from, to string) []Line {
	dmp := diffpatch.New()
	a, b, lineArray := dmp.DiffLinesToChars(from, to)
	diffs := dmp.DiffMain(a, b, false)
	diffs = dmp.DiffCharsToLines(diffs, lineArray)

	var res []Line
	fromLn, toLn := 0, 0
	for _, d := range diffs {
		for _, text := range splitLines(d.Text) {
			ln := Line{Text: text}
			switch d.Type {
			case diffpatch.DiffDelete:
				fromLn++
				ln.Op, ln.From = Delete, fromLn
			case diffpatch.DiffInsert:
				toLn++
				ln.Op, ln.To = Insert, toLn
			default:
				fromLn++
				toLn++
				ln.Op, ln.From, ln.To = Equal, fromLn, toLn
			}
			res = append(res, ln)
		}
	}
	return res
}

// ChangedLines returns the 1-based numbers of the lines removed from
// from and added to to.
func ChangedLines(from, to string) (removed, added []int) {
	for _, ln := range Lines(from, to) {
		switch ln.Op {
		case Delete:
			removed = append(removed, ln.From)
		case Insert:
			added = append(added, ln.To)
		}
	}
	return removed, added
}

func splitLines(s string) []string {
	res := strings.SplitAfter(s, "\n")
	if res[len(res)-1] == "" {
		res = res[:len(res)-1]
	}
	return res
}
