package sheetfill

import "fmt"

// startRow computes the first destination row for a fill. Appending starts
// strictly below both the header row and the sheet's used extent, so a
// second append never revisits rows written by the first. Overwriting
// starts immediately below the header row.
//
// An explicit start-row override must still sit below the header row, and
// below the used extent when not overwriting.
func startRow(headerRow, usedRow int, opts *fillOptions) (int, error) {
	if opts.startRow > 0 {
		if opts.startRow <= headerRow {
			return 0, fmt.Errorf("start row %d must be below the header row %d", opts.startRow, headerRow)
		}
		if !opts.overwrite && opts.startRow <= usedRow {
			return 0, fmt.Errorf("start row %d must be below the last used row %d", opts.startRow, usedRow)
		}
		return opts.startRow, nil
	}
	if opts.overwrite {
		return headerRow + 1, nil
	}
	start := headerRow + 1
	if usedRow >= start {
		start = usedRow + 1
	}
	return start, nil
}

// fillRows writes the source rows into the sheet at the computed start row,
// column by column through the mapping. Destination columns outside the
// mapping are never touched, even when overwriting. A Null input cell
// either blanks the destination or, with skip-nulls, leaves it unmodified.
//
// All validation happens before the first write, so a failed fill leaves
// the sheet unchanged.
func fillRows(g Grid, headerRow int, mapping ColumnMapping, rows [][]CellValue, opts *fillOptions) (int, error) {
	usedRow, _, err := g.Dims()
	if err != nil {
		return 0, err
	}

	start, err := startRow(headerRow, usedRow, opts)
	if err != nil {
		return 0, err
	}

	for i, row := range rows {
		if len(row) != mapping.Len() {
			return 0, &RowWidthError{Row: i, Want: mapping.Len(), Got: len(row)}
		}
	}

	log.WithField("start", start).WithField("rows", len(rows)).
		WithField("overwrite", opts.overwrite).Debug("filling sheet")

	for i, row := range rows {
		destRow := start + i
		for j, v := range row {
			if v.IsNull() && opts.skipNulls {
				continue
			}
			ref := NewCellRef(destRow, mapping.Dest(j))
			if err := g.SetValue(ref, v); err != nil {
				return 0, err
			}
		}
	}
	return len(rows), nil
}
