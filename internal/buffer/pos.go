package buffer

// Pos is an absolute (line, column) position in the buffer. Col is a rune index.
type Pos struct {
	Line int `json:"line"`
	Col  int `json:"col"`
}

// ComparePos orders positions by line, then column.
func ComparePos(a, b Pos) int {
	switch {
	case a.Line < b.Line:
		return -1
	case a.Line > b.Line:
		return 1
	case a.Col < b.Col:
		return -1
	case a.Col > b.Col:
		return 1
	}
	return 0
}

// Normalize returns a and b in document order.
func Normalize(a, b Pos) (Pos, Pos) {
	if ComparePos(a, b) <= 0 {
		return a, b
	}
	return b, a
}
