package sheetfill

import "fmt"

// Template is an explicit workbook session for callers that perform several
// operations against one file: open once, navigate, write, save. A Template
// owns its workbook exclusively for its whole lifetime; nothing is shared
// between instances and no state survives Close.
type Template struct {
	book      *Book
	sheet     string
	cursor    CellRef // zero value = no cursor set
	header    HeaderLocation
	headerSet bool
}

// OpenTemplate opens an existing workbook as a session.
func OpenTemplate(path string) (*Template, error) {
	book, err := OpenBook(path)
	if err != nil {
		return nil, err
	}
	return &Template{book: book}, nil
}

// AddSheet creates a new empty sheet.
func (t *Template) AddSheet(name string) error {
	return t.book.AddSheet(name)
}

// GotoSheet selects the sheet later operations act on. The cursor resets.
func (t *Template) GotoSheet(name string) error {
	if _, err := t.book.Sheet(name); err != nil {
		return err
	}
	t.sheet = name
	t.cursor = CellRef{}
	return nil
}

// GotoCell moves the cursor within the current sheet.
func (t *Template) GotoCell(ref CellRef) error {
	if !ref.Valid() {
		return fmt.Errorf("invalid cell %s: row and column numbering starts at 1", ref)
	}
	t.cursor = ref
	return nil
}

// SetValue writes a native Go scalar at the cursor. The cursor does not
// advance.
func (t *Template) SetValue(x any) error {
	g, err := t.currentGrid()
	if err != nil {
		return err
	}
	if !t.cursor.Valid() {
		return fmt.Errorf("no cell selected")
	}
	v, err := ValueOf(x)
	if err != nil {
		return err
	}
	return g.SetValue(t.cursor, v)
}

// HeaderAt pins the header location for subsequent Fill calls on this
// session. A per-call WithHeaderRow still wins. Pin the cursor's row with
// HeaderAt(HeaderRow(ref.Row)).
func (t *Template) HeaderAt(loc HeaderLocation) {
	t.header = loc
	t.headerSet = true
}

// Fill places the source rows into the current sheet. Unlike FillSheet it
// does not save; call Save when the session is done.
func (t *Template) Fill(src *TabularSource, opts ...FillOption) (int, error) {
	g, err := t.currentGrid()
	if err != nil {
		return 0, err
	}
	o := defaultFillOptions()
	if t.headerSet {
		o.headerRow = t.header
	}
	for _, opt := range opts {
		opt(o)
	}
	return fillGrid(g, src, o)
}

// RemoveRow deletes one row of the current sheet, shifting the rows below
// it up.
func (t *Template) RemoveRow(row int) error {
	return t.RemoveRows(row, 1)
}

// RemoveRows deletes n rows of the current sheet starting at row.
func (t *Template) RemoveRows(row, n int) error {
	if t.sheet == "" {
		return fmt.Errorf("no sheet selected")
	}
	if row < 1 {
		return fmt.Errorf("invalid row %d: row numbering starts at 1", row)
	}
	if n < 1 {
		return fmt.Errorf("invalid row count %d", n)
	}
	for i := 0; i < n; i++ {
		if err := t.book.file.RemoveRow(t.sheet, row); err != nil {
			return fmt.Errorf("remove row %d of %q: %w", row, t.sheet, err)
		}
	}
	return nil
}

// SheetNames returns the workbook's sheet names.
func (t *Template) SheetNames() []string {
	return t.book.SheetNames()
}

// Save writes the workbook back to the path it was opened from.
func (t *Template) Save() error {
	return t.book.Save()
}

// SaveAs writes the workbook to another path and adopts it for later saves.
func (t *Template) SaveAs(path string) error {
	return t.book.SaveAs(path)
}

// Close releases the workbook without saving.
func (t *Template) Close() error {
	return t.book.Close()
}

func (t *Template) currentGrid() (*SheetGrid, error) {
	if t.sheet == "" {
		return nil, fmt.Errorf("no sheet selected")
	}
	return t.book.Sheet(t.sheet)
}
