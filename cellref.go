package sheetfill

import (
	"fmt"
	"strings"
)

// CellRef represents a single cell address. Row and Col are 1-based.
type CellRef struct {
	Row int
	Col int
}

// NewCellRef creates a CellRef with explicit 1-based row and column.
func NewCellRef(row, col int) CellRef {
	return CellRef{Row: row, Col: col}
}

// ParseCellRef parses a cell reference in either A1 label form ("B3", "$A$1")
// or numeric "row,col" form ("3,2"). Both forms are 1-based and convert
// losslessly to one another.
func ParseCellRef(s string) (CellRef, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return CellRef{}, fmt.Errorf("empty cell reference")
	}

	if strings.Contains(s, ",") {
		return parseNumericRef(s)
	}

	cellPart := strings.ReplaceAll(s, "$", "")
	col, row, err := parseCellName(cellPart)
	if err != nil {
		return CellRef{}, fmt.Errorf("invalid cell reference %q: %w", s, err)
	}
	return CellRef{Row: row, Col: col}, nil
}

// parseNumericRef parses "row,col" into a CellRef.
func parseNumericRef(s string) (CellRef, error) {
	parts := strings.SplitN(s, ",", 2)
	var row, col int
	if _, err := fmt.Sscanf(strings.TrimSpace(parts[0]), "%d", &row); err != nil {
		return CellRef{}, fmt.Errorf("invalid cell reference %q: bad row", s)
	}
	if _, err := fmt.Sscanf(strings.TrimSpace(parts[1]), "%d", &col); err != nil {
		return CellRef{}, fmt.Errorf("invalid cell reference %q: bad column", s)
	}
	if row < 1 || col < 1 {
		return CellRef{}, fmt.Errorf("invalid cell reference %q: row and column numbering starts at 1", s)
	}
	return CellRef{Row: row, Col: col}, nil
}

// parseCellName parses "B3" into col=2, row=3.
func parseCellName(name string) (col, row int, err error) {
	if len(name) == 0 {
		return 0, 0, fmt.Errorf("empty cell name")
	}

	i := 0
	for i < len(name) && isAlpha(name[i]) {
		i++
	}
	if i == 0 || i == len(name) {
		return 0, 0, fmt.Errorf("invalid cell name: %q", name)
	}

	col, err = NameToCol(name[:i])
	if err != nil {
		return 0, 0, err
	}

	rowNum := 0
	for _, ch := range name[i:] {
		if ch < '0' || ch > '9' {
			return 0, 0, fmt.Errorf("invalid row in cell name: %q", name)
		}
		rowNum = rowNum*10 + int(ch-'0')
	}
	if rowNum < 1 {
		return 0, 0, fmt.Errorf("invalid row number in cell name: %q", name)
	}

	return col, rowNum, nil
}

func isAlpha(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

// Valid reports whether both coordinates are positive.
func (c CellRef) Valid() bool {
	return c.Row >= 1 && c.Col >= 1
}

// String formats the CellRef as an A1 label like "B3".
func (c CellRef) String() string {
	return ColToName(c.Col) + fmt.Sprintf("%d", c.Row)
}

// ColToName converts a 1-based column index to a column name.
// 1→"A", 26→"Z", 27→"AA"
func ColToName(col int) string {
	result := ""
	for col > 0 {
		col-- // adjust for 0-indexed letter
		result = string(rune('A'+col%26)) + result
		col /= 26
	}
	return result
}

// NameToCol converts a column name to a 1-based column index.
// "A"→1, "Z"→26, "AA"→27
func NameToCol(name string) (int, error) {
	name = strings.ToUpper(name)
	if name == "" {
		return 0, fmt.Errorf("empty column name")
	}
	col := 0
	for _, ch := range name {
		if ch < 'A' || ch > 'Z' {
			return 0, fmt.Errorf("invalid column name: %q", name)
		}
		col = col*26 + int(ch-'A') + 1
	}
	return col, nil
}

// RangeRef represents a rectangular cell range defined by its top-left and
// bottom-right corners, both inclusive.
type RangeRef struct {
	Start CellRef
	End   CellRef
}

// NewRangeRef creates a RangeRef from two cell references.
func NewRangeRef(start, end CellRef) RangeRef {
	return RangeRef{Start: start, End: end}
}

// ParseRangeRef parses a range reference like "A1:C5" or "1,1:5,3".
func ParseRangeRef(s string) (RangeRef, error) {
	s = strings.TrimSpace(s)
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return RangeRef{}, fmt.Errorf("invalid range reference (missing ':'): %q", s)
	}

	start, err := ParseCellRef(parts[0])
	if err != nil {
		return RangeRef{}, fmt.Errorf("invalid range reference %q: %w", s, err)
	}
	end, err := ParseCellRef(parts[1])
	if err != nil {
		return RangeRef{}, fmt.Errorf("invalid range reference %q: %w", s, err)
	}

	return RangeRef{Start: start, End: end}, nil
}

// Validate checks that both corners are positive and ordered
// top-left/bottom-right. A single cell is a valid range.
func (r RangeRef) Validate() error {
	if !r.Start.Valid() || !r.End.Valid() {
		return &InvalidRangeError{Range: r, Reason: "row and column numbering starts at 1"}
	}
	if r.End.Row < r.Start.Row || r.End.Col < r.Start.Col {
		return &InvalidRangeError{Range: r, Reason: "corners are not ordered top-left to bottom-right"}
	}
	return nil
}

// Width returns the number of columns the range spans.
func (r RangeRef) Width() int {
	return r.End.Col - r.Start.Col + 1
}

// Height returns the number of rows the range spans.
func (r RangeRef) Height() int {
	return r.End.Row - r.Start.Row + 1
}

// String formats the RangeRef as "A1:C5".
func (r RangeRef) String() string {
	return r.Start.String() + ":" + r.End.String()
}
