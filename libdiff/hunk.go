package libdiff

// DefaultContext is the number of unchanged lines shown around changes.
const DefaultContext = 3

// Hunk is a run of diff lines with surrounding context, numbered as in
// unified diff headers.
type Hunk struct {
	FromStart, FromLen int
	ToStart, ToLen     int
	Lines              []Line
}

// Hunks groups lines into hunks with context unchanged lines around each
// change. Changes separated by at most 2*context unchanged lines share a
// hunk.
func Hunks(lines []Line, context int) []Hunk {
	var res []Hunk
	n := len(lines)
	i := 0
	for i < n {
		if lines[i].Op == Equal {
			i++
			continue
		}
		start := max(0, i-context)
		end := i
		for j := i; j < n; j++ {
			if lines[j].Op == Equal {
				continue
			}
			if j-end-1 > 2*context {
				break
			}
			end = j
		}
		stop := min(n, end+context+1)
		res = append(res, makeHunk(lines, start, stop))
		i = stop
	}
	return res
}

func makeHunk(lines []Line, start, stop int) Hunk {
	h := Hunk{Lines: lines[start:stop]}
	fromBefore, toBefore := 0, 0
	for _, ln := range lines[:start] {
		if ln.Op != Insert {
			fromBefore++
		}
		if ln.Op != Delete {
			toBefore++
		}
	}
	for _, ln := range h.Lines {
		if ln.Op != Insert {
			h.FromLen++
		}
		if ln.Op != Delete {
			h.ToLen++
		}
	}
	h.FromStart, h.ToStart = fromBefore+1, toBefore+1
	if h.FromLen == 0 {
		h.FromStart--
	}
	if h.ToLen == 0 {
		h.ToStart--
	}
	return h
}
