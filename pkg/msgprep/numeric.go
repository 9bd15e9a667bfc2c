package msgprep

import "strconv"

// ParseNumeric converts a column of cells to numbers.
//
// All non-empty cells parsing as base-10 int64 yield KindInteger; otherwise all
// non-empty cells parsing as float64 yield KindReal. Empty cells become nil.
// If some cell is neither, badIndex is its position and values is nil;
// otherwise badIndex is -1.
func ParseNumeric(cells []string) (kind Kind, values []Value, badIndex int) {
	ints := make([]Value, len(cells))
	isInt := true
	for i, cell := range cells {
		if cell == "" {
			continue
		}
		n, err := strconv.ParseInt(cell, 10, 64)
		if err != nil {
			isInt = false
			break
		}
		ints[i] = n
	}
	if isInt {
		return KindInteger, ints, -1
	}

	reals := make([]Value, len(cells))
	for i, cell := range cells {
		if cell == "" {
			continue
		}
		f, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return KindText, nil, i
		}
		reals[i] = f
	}
	return KindReal, reals, -1
}
