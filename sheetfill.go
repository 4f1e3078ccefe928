// Package sheetfill fills, copies, and aggregates tabular data into existing
// xlsx sheets whose layout is fixed by convention: the header row need not be
// the first row, and the target region may hold data that is preserved,
// overwritten, or selectively masked.
package sheetfill

import "fmt"

// FillSheet places the source rows into the named sheet of the workbook at
// path and saves it in place. The header row is located per the configured
// policy (default: the last populated row), input columns are matched to the
// header by exact name, and writing starts below the existing data unless
// overwriting. It returns the number of rows written.
//
// All header and column resolution happens before the first cell write, so
// a failed fill leaves the file contents unchanged.
func FillSheet(path, sheet string, src *TabularSource, opts ...FillOption) (int, error) {
	o := defaultFillOptions()
	for _, opt := range opts {
		opt(o)
	}

	book, err := OpenBook(path)
	if err != nil {
		return 0, err
	}
	defer book.Close()

	g, err := book.Sheet(sheet)
	if err != nil {
		return 0, err
	}

	n, err := fillGrid(g, src, o)
	if serr := book.Save(); err == nil {
		err = serr
	}
	return n, err
}

// fillGrid runs one fill against an open grid: resolve the header, match
// columns, filter rows, write.
func fillGrid(g Grid, src *TabularSource, o *fillOptions) (int, error) {
	headerRow, headers, err := resolveHeader(g, o.headerRow)
	if err != nil {
		return 0, err
	}

	columns := src.Columns()
	if len(columns) == 0 {
		// Headerless source: per-row values are positional against an
		// externally supplied column list.
		if len(o.columns) == 0 {
			return 0, ErrColumnsRequired
		}
		if src.Len() > 0 && len(o.columns) != src.width() {
			return 0, &RowWidthError{Row: 0, Want: len(o.columns), Got: src.width()}
		}
		columns = o.columns
	}

	mapping, err := matchColumns(columns, headers, o.strict)
	if err != nil && o.headerRow.kind == headerLast {
		// Under the Last policy the lowest populated row is appended data
		// once a fill has run; the header is the nearest matching row above.
		row, m, ok, serr := matchHeaderAbove(g, headerRow, columns, o.strict)
		if serr != nil {
			return 0, serr
		}
		if ok {
			headerRow, mapping, err = row, m, nil
		}
	}
	if err != nil {
		return 0, err
	}

	rows := src.rows
	if o.filter != nil {
		rows, err = filterRows(o.filter, columns, rows)
		if err != nil {
			return 0, err
		}
	}

	return fillRows(g, headerRow, mapping, rows, o)
}

// CopyRange copies a rectangular cell range from one sheet to a destination
// anchor, optionally transposing, and saves the destination workbook. The
// sheets may belong to different files; when they share a file the workbook
// is opened once. It returns the dimensions of the written region.
func CopyRange(srcPath, srcSheet string, rng RangeRef, dstPath, dstSheet string, anchor CellRef, transpose bool) (int, int, error) {
	if err := rng.Validate(); err != nil {
		return 0, 0, err
	}

	srcBook, err := OpenBook(srcPath)
	if err != nil {
		return 0, 0, err
	}
	defer srcBook.Close()

	dstBook := srcBook
	if dstPath != srcPath {
		dstBook, err = OpenBook(dstPath)
		if err != nil {
			return 0, 0, err
		}
		defer dstBook.Close()
	}

	src, err := srcBook.Sheet(srcSheet)
	if err != nil {
		return 0, 0, fmt.Errorf("source: %w", err)
	}
	dst, err := dstBook.Sheet(dstSheet)
	if err != nil {
		return 0, 0, fmt.Errorf("destination: %w", err)
	}

	rows, cols, err := copyGrid(src, rng, dst, anchor, transpose)
	if serr := dstBook.Save(); err == nil {
		err = serr
	}
	return rows, cols, err
}

// AggregateRange reduces a rectangular numeric range by row or by column
// with the given operation and writes the reduced vector at the destination
// anchor: downward for a by-row reduction, rightward for by-column. It
// returns the vector length.
//
// Null cells are ignored rather than summed as zero; a group with no
// numeric cells reduces to Null. Count counts any non-null cell.
func AggregateRange(srcPath, srcSheet string, rng RangeRef, op AggOp, axis Axis, dstPath, dstSheet string, anchor CellRef) (int, error) {
	if err := rng.Validate(); err != nil {
		return 0, err
	}

	srcBook, err := OpenBook(srcPath)
	if err != nil {
		return 0, err
	}
	defer srcBook.Close()

	dstBook := srcBook
	if dstPath != srcPath {
		dstBook, err = OpenBook(dstPath)
		if err != nil {
			return 0, err
		}
		defer dstBook.Close()
	}

	src, err := srcBook.Sheet(srcSheet)
	if err != nil {
		return 0, fmt.Errorf("source: %w", err)
	}
	dst, err := dstBook.Sheet(dstSheet)
	if err != nil {
		return 0, fmt.Errorf("destination: %w", err)
	}

	vec, err := aggregateGrid(src, rng, op, axis)
	if err != nil {
		return 0, err
	}

	err = pasteVector(dst, anchor, vec, axis)
	if serr := dstBook.Save(); err == nil {
		err = serr
	}
	return len(vec), err
}
