package sheetfill

import "fmt"

type headerKind int

const (
	headerFirst headerKind = iota
	headerLast
	headerExplicit
)

// HeaderLocation selects how the header row of a destination sheet is
// located. The zero value is HeaderLast, the common template convention
// where the headers are the final populated row before data is appended.
type HeaderLocation struct {
	kind headerKind
	row  int
}

var (
	// HeaderFirst locates the first row containing a non-null cell.
	HeaderFirst = HeaderLocation{kind: headerFirst}

	// HeaderLast locates the last row containing a non-null cell, scanning
	// from the sheet's used extent downward. During a fill, when that row's
	// cells do not match the input columns, matching retries against the
	// rows above it, so data appended below the header does not shadow it
	// on the next fill.
	HeaderLast = HeaderLocation{kind: headerLast}
)

// HeaderRow pins the header to an explicit 1-based row.
func HeaderRow(n int) HeaderLocation {
	return HeaderLocation{kind: headerExplicit, row: n}
}

// String describes the policy for logs.
func (h HeaderLocation) String() string {
	switch h.kind {
	case headerFirst:
		return "first"
	case headerExplicit:
		return fmt.Sprintf("row %d", h.row)
	default:
		return "last"
	}
}

// HeaderCell is one non-null cell of the resolved header row.
type HeaderCell struct {
	Text string
	Col  int
}

// resolveHeader locates the header row of a sheet under the given policy and
// returns its 1-based row number together with the ordered non-null header
// cell texts.
func resolveHeader(g Grid, loc HeaderLocation) (int, []HeaderCell, error) {
	maxRow, maxCol, err := g.Dims()
	if err != nil {
		return 0, nil, err
	}

	row := 0
	switch loc.kind {
	case headerExplicit:
		if loc.row < 1 {
			return 0, nil, fmt.Errorf("%w: row numbering starts at 1, got %d", ErrHeaderNotFound, loc.row)
		}
		if loc.row > maxRow {
			return 0, nil, fmt.Errorf("%w: row %d is beyond the used range (last used row %d)", ErrHeaderNotFound, loc.row, maxRow)
		}
		row = loc.row
	case headerFirst:
		for r := 1; r <= maxRow; r++ {
			empty, err := rowEmpty(g, r, maxCol)
			if err != nil {
				return 0, nil, err
			}
			if !empty {
				row = r
				break
			}
		}
	default: // headerLast
		for r := maxRow; r >= 1; r-- {
			empty, err := rowEmpty(g, r, maxCol)
			if err != nil {
				return 0, nil, err
			}
			if !empty {
				row = r
				break
			}
		}
	}

	if row == 0 {
		return 0, nil, fmt.Errorf("%w: sheet has no non-empty rows", ErrHeaderNotFound)
	}

	headers, err := headerCells(g, row, maxCol)
	if err != nil {
		return 0, nil, err
	}
	if len(headers) == 0 {
		return 0, nil, fmt.Errorf("%w: row %d has no non-empty cell", ErrHeaderNotFound, row)
	}

	log.WithField("row", row).WithField("policy", loc.String()).Debug("header row resolved")
	return row, headers, nil
}

// rowEmpty reports whether row r holds no non-null cell within the used width.
func rowEmpty(g Grid, r, maxCol int) (bool, error) {
	for c := 1; c <= maxCol; c++ {
		v, err := g.Value(NewCellRef(r, c))
		if err != nil {
			return false, err
		}
		if !v.IsNull() {
			return false, nil
		}
	}
	return true, nil
}

// headerCells collects the non-null cells of the header row as texts paired
// with their column index.
func headerCells(g Grid, row, maxCol int) ([]HeaderCell, error) {
	var headers []HeaderCell
	for c := 1; c <= maxCol; c++ {
		v, err := g.Value(NewCellRef(row, c))
		if err != nil {
			return nil, err
		}
		if v.IsNull() {
			continue
		}
		headers = append(headers, HeaderCell{Text: headerText(v), Col: c})
	}
	return headers, nil
}

// matchHeaderAbove retries column matching against successively higher
// non-empty rows, for the Last policy after the lowest populated row failed
// to match: that row is appended data whenever a fill has already run, and
// the real header sits somewhere above it. Returns ok=false when no row
// matches, leaving the caller's original mismatch to surface.
func matchHeaderAbove(g Grid, below int, columns []string, strict bool) (row int, mapping ColumnMapping, ok bool, err error) {
	_, maxCol, err := g.Dims()
	if err != nil {
		return 0, ColumnMapping{}, false, err
	}
	for r := below - 1; r >= 1; r-- {
		headers, err := headerCells(g, r, maxCol)
		if err != nil {
			return 0, ColumnMapping{}, false, err
		}
		if len(headers) == 0 {
			continue
		}
		m, merr := matchColumns(columns, headers, strict)
		if merr != nil {
			continue
		}
		log.WithField("row", r).WithField("below", below).Debug("header row rematched above data")
		return r, m, true, nil
	}
	return 0, ColumnMapping{}, false, nil
}

// headerText renders a header cell as the text used for column matching.
func headerText(v CellValue) string {
	if v.Kind == KindText {
		return v.Text
	}
	return v.String()
}
