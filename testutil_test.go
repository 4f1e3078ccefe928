package sheetfill

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// writeBook creates an xlsx file with the given Sheet1 cells and returns its path.
func writeBook(t *testing.T, name string, cells map[string]any) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for cell, v := range cells {
		require.NoError(t, f.SetCellValue("Sheet1", cell, v))
	}
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, f.SaveAs(path))
	return path
}

// createTemplateBook creates the canonical destination layout: two metadata
// rows, headers on row 3, no data yet.
//
//	A1: "Report"      (metadata)
//	A2: "Q3"          (metadata)
//	A3: "Name"  B3: "Age"  C3: "Gender"
func createTemplateBook(t *testing.T) string {
	t.Helper()
	return writeBook(t, "template.xlsx", map[string]any{
		"A1": "Report",
		"A2": "Q3",
		"A3": "Name",
		"B3": "Age",
		"C3": "Gender",
	})
}

// readCell re-opens a saved workbook and returns the raw cell value.
func readCell(t *testing.T, path, sheet, cell string) string {
	t.Helper()
	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	v, err := f.GetCellValue(sheet, cell)
	require.NoError(t, err)
	return v
}

// memGrid builds an in-memory workbook pre-filled with the given Sheet1
// cells and returns its default sheet as a Grid.
func memGrid(t *testing.T, cells map[string]any) *SheetGrid {
	t.Helper()
	b := NewBook()
	g, err := b.Sheet("Sheet1")
	require.NoError(t, err)
	for cell, raw := range cells {
		ref, err := ParseCellRef(cell)
		require.NoError(t, err)
		v, err := ValueOf(raw)
		require.NoError(t, err)
		require.NoError(t, g.SetValue(ref, v))
	}
	return g
}
