package sheetfill

import (
	"fmt"
	"os"
	"strconv"

	"github.com/xuri/excelize/v2"
)

// Grid is a mutable 2D cell space addressable by CellRef, with no fixed
// upper bound: writing beyond the current extent grows the sheet.
type Grid interface {
	// Value reads the cell at ref. An absent cell reads as Null.
	Value(ref CellRef) (CellValue, error)
	// SetValue writes the cell at ref. Writing Null blanks the cell.
	SetValue(ref CellRef, v CellValue) error
	// Dims returns the current used extent (max row, max column), both
	// zero for an empty sheet.
	Dims() (rows, cols int, err error)
}

// Book is an open workbook. Each Book owns its workbook exclusively for its
// lifetime; callers serialize concurrent access to the same file themselves.
type Book struct {
	file *excelize.File
	path string
}

// OpenBook opens an existing workbook file.
func OpenBook(path string) (*Book, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %q: %w", path, err)
	}
	return &Book{file: f, path: path}, nil
}

// NewBook creates an in-memory workbook with a single default sheet.
func NewBook() *Book {
	return &Book{file: excelize.NewFile()}
}

// Sheet returns a Grid over the named sheet.
func (b *Book) Sheet(name string) (*SheetGrid, error) {
	idx, err := b.file.GetSheetIndex(name)
	if err != nil || idx < 0 {
		return nil, fmt.Errorf("%w: %q", ErrSheetNotFound, name)
	}
	return &SheetGrid{file: b.file, name: name}, nil
}

// AddSheet creates a new empty sheet with the given name.
func (b *Book) AddSheet(name string) error {
	if _, err := b.file.NewSheet(name); err != nil {
		return fmt.Errorf("add sheet %q: %w", name, err)
	}
	return nil
}

// SheetNames returns the workbook's sheet names in workbook order.
func (b *Book) SheetNames() []string {
	return b.file.GetSheetList()
}

// Save writes the workbook back to the path it was opened from.
func (b *Book) Save() error {
	if b.path == "" {
		return fmt.Errorf("workbook has no file path; use SaveAs")
	}
	if err := b.file.SaveAs(b.path); err != nil {
		return fmt.Errorf("save workbook %q: %w", b.path, err)
	}
	return nil
}

// SaveAs writes the workbook to the given path and adopts it for later saves.
func (b *Book) SaveAs(path string) error {
	if err := b.file.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook %q: %w", path, err)
	}
	b.path = path
	return nil
}

// Close releases the workbook's resources without saving.
func (b *Book) Close() error {
	return b.file.Close()
}

// SheetGrid implements Grid over one sheet of an excelize workbook.
type SheetGrid struct {
	file *excelize.File
	name string
}

// Name returns the sheet name.
func (g *SheetGrid) Name() string { return g.name }

// Value reads and types the cell at ref. Boolean cells come back as Boolean,
// cells whose raw value parses as a float as Number, everything else
// non-empty as Text. Date cells are stored by the format as styled numbers
// and read back accordingly; typed dates only flow in from input data.
func (g *SheetGrid) Value(ref CellRef) (CellValue, error) {
	cell, err := excelize.CoordinatesToCellName(ref.Col, ref.Row)
	if err != nil {
		return NullValue(), fmt.Errorf("cell %s: %w", ref, err)
	}
	raw, err := g.file.GetCellValue(g.name, cell)
	if err != nil {
		return NullValue(), fmt.Errorf("read cell %s!%s: %w", g.name, cell, err)
	}
	if raw == "" {
		return NullValue(), nil
	}
	ct, err := g.file.GetCellType(g.name, cell)
	if err == nil && ct == excelize.CellTypeBool {
		return BoolValue(raw == "TRUE" || raw == "1"), nil
	}
	if n, err := strconv.ParseFloat(raw, 64); err == nil {
		return NumberValue(n), nil
	}
	return TextValue(raw), nil
}

// SetValue writes the cell at ref, carrying the value's type through
// unchanged. Null blanks the cell.
func (g *SheetGrid) SetValue(ref CellRef, v CellValue) error {
	cell, err := excelize.CoordinatesToCellName(ref.Col, ref.Row)
	if err != nil {
		return fmt.Errorf("cell %s: %w", ref, err)
	}
	if err := g.file.SetCellValue(g.name, cell, v.Any()); err != nil {
		return fmt.Errorf("write cell %s!%s: %w", g.name, cell, err)
	}
	return nil
}

// Dims returns the used extent of the sheet.
func (g *SheetGrid) Dims() (rows, cols int, err error) {
	data, err := g.file.GetRows(g.name)
	if err != nil {
		return 0, 0, fmt.Errorf("read sheet %q: %w", g.name, err)
	}
	for _, row := range data {
		if len(row) > cols {
			cols = len(row)
		}
	}
	return len(data), cols, nil
}
