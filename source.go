package sheetfill

import (
	"fmt"
	"sort"
)

// TabularSource is the normalized view over the input shapes the engine
// accepts: row-records, ordered column sequences, or a headerless grid.
// Every row has the same length as the column list; a headerless source has
// an empty column list and needs an explicit list (WithColumns) before it
// can be matched against a sheet.
type TabularSource struct {
	columns []string
	rows    [][]CellValue
}

// Columns returns the ordered column names, empty for a headerless source.
func (s *TabularSource) Columns() []string { return s.columns }

// Len returns the number of rows.
func (s *TabularSource) Len() int { return len(s.rows) }

// width returns the row width: the column count, or the row length for a
// headerless source.
func (s *TabularSource) width() int {
	if len(s.columns) > 0 {
		return len(s.columns)
	}
	if len(s.rows) > 0 {
		return len(s.rows[0])
	}
	return 0
}

// FromRecords builds a TabularSource from row-oriented records. The column
// order is the sorted union of all record keys, so the result is
// deterministic regardless of map iteration; a record missing a key yields
// Null in that column.
func FromRecords(records []map[string]any) (*TabularSource, error) {
	seen := make(map[string]bool)
	var columns []string
	for _, rec := range records {
		for name := range rec {
			if !seen[name] {
				seen[name] = true
				columns = append(columns, name)
			}
		}
	}
	sort.Strings(columns)

	rows := make([][]CellValue, 0, len(records))
	for i, rec := range records {
		row := make([]CellValue, len(columns))
		for j, name := range columns {
			raw, ok := rec[name]
			if !ok {
				row[j] = NullValue()
				continue
			}
			v, err := ValueOf(raw)
			if err != nil {
				return nil, fmt.Errorf("record %d, column %q: %w", i, name, err)
			}
			row[j] = v
		}
		rows = append(rows, row)
	}
	return &TabularSource{columns: columns, rows: rows}, nil
}

// Column is one named value sequence of a column-oriented source.
type Column struct {
	Name   string
	Values []any
}

// FromColumns builds a TabularSource from ordered column sequences. All
// columns must hold the same number of values.
func FromColumns(cols []Column) (*TabularSource, error) {
	if len(cols) == 0 {
		return &TabularSource{}, nil
	}
	height := len(cols[0].Values)
	for _, c := range cols[1:] {
		if len(c.Values) != height {
			return nil, fmt.Errorf("column %q has %d values, column %q has %d: %w",
				c.Name, len(c.Values), cols[0].Name, height, ErrRowWidthMismatch)
		}
	}

	columns := make([]string, len(cols))
	for i, c := range cols {
		columns[i] = c.Name
	}

	rows := make([][]CellValue, height)
	for i := 0; i < height; i++ {
		row := make([]CellValue, len(cols))
		for j, c := range cols {
			v, err := ValueOf(c.Values[i])
			if err != nil {
				return nil, fmt.Errorf("column %q, row %d: %w", c.Name, i, err)
			}
			row[j] = v
		}
		rows[i] = row
	}
	return &TabularSource{columns: columns, rows: rows}, nil
}

// FromColumnMap builds a TabularSource from a name→sequence mapping. Columns
// are ordered by sorted name for determinism.
func FromColumnMap(m map[string][]any) (*TabularSource, error) {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)

	cols := make([]Column, len(names))
	for i, name := range names {
		cols[i] = Column{Name: name, Values: m[name]}
	}
	return FromColumns(cols)
}

// FromGrid builds a headerless TabularSource from bare rows. All rows must
// have the same length; column names are supplied at fill time with
// WithColumns.
func FromGrid(rows [][]any) (*TabularSource, error) {
	if len(rows) == 0 {
		return &TabularSource{}, nil
	}
	width := len(rows[0])
	out := make([][]CellValue, len(rows))
	for i, raw := range rows {
		if len(raw) != width {
			return nil, &RowWidthError{Row: i, Want: width, Got: len(raw)}
		}
		row := make([]CellValue, width)
		for j, x := range raw {
			v, err := ValueOf(x)
			if err != nil {
				return nil, fmt.Errorf("row %d, column %d: %w", i, j+1, err)
			}
			row[j] = v
		}
		out[i] = row
	}
	return &TabularSource{rows: out}, nil
}
