package sheetfill

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplate_SetValue(t *testing.T) {
	path := writeBook(t, "book.xlsx", map[string]any{"A1": "Name"})

	tpl, err := OpenTemplate(path)
	require.NoError(t, err)
	defer tpl.Close()

	require.NoError(t, tpl.GotoSheet("Sheet1"))
	require.NoError(t, tpl.GotoCell(NewCellRef(2, 1)))
	require.NoError(t, tpl.SetValue("Alice"))
	require.NoError(t, tpl.GotoCell(NewCellRef(2, 2)))
	require.NoError(t, tpl.SetValue(25))
	require.NoError(t, tpl.Save())

	assert.Equal(t, "Alice", readCell(t, path, "Sheet1", "A2"))
	assert.Equal(t, "25", readCell(t, path, "Sheet1", "B2"))
}

func TestTemplate_NoSheetSelected(t *testing.T) {
	path := writeBook(t, "book.xlsx", nil)

	tpl, err := OpenTemplate(path)
	require.NoError(t, err)
	defer tpl.Close()

	assert.Error(t, tpl.SetValue("x"))

	require.NoError(t, tpl.GotoSheet("Sheet1"))
	// Sheet selected but no cursor.
	assert.Error(t, tpl.SetValue("x"))
}

func TestTemplate_GotoMissingSheet(t *testing.T) {
	path := writeBook(t, "book.xlsx", nil)

	tpl, err := OpenTemplate(path)
	require.NoError(t, err)
	defer tpl.Close()

	assert.ErrorIs(t, tpl.GotoSheet("Missing"), ErrSheetNotFound)
}

func TestTemplate_AddSheetAndFill(t *testing.T) {
	path := writeBook(t, "book.xlsx", nil)

	tpl, err := OpenTemplate(path)
	require.NoError(t, err)
	defer tpl.Close()

	require.NoError(t, tpl.AddSheet("Data"))
	require.NoError(t, tpl.GotoSheet("Data"))
	require.NoError(t, tpl.GotoCell(NewCellRef(1, 1)))
	require.NoError(t, tpl.SetValue("Name"))
	require.NoError(t, tpl.GotoCell(NewCellRef(1, 2)))
	require.NoError(t, tpl.SetValue("Age"))

	src, err := FromRecords([]map[string]any{{"Name": "Alice", "Age": 25}})
	require.NoError(t, err)

	n, err := tpl.Fill(src)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	require.NoError(t, tpl.Save())

	assert.Contains(t, tpl.SheetNames(), "Data")
	assert.Equal(t, "Alice", readCell(t, path, "Data", "A2"))
	assert.Equal(t, "25", readCell(t, path, "Data", "B2"))
}

func TestTemplate_HeaderAt(t *testing.T) {
	// The lowest populated row is a footer; the pinned header row 2 must be
	// used instead of the default Last resolution.
	path := writeBook(t, "book.xlsx", map[string]any{
		"A1": "meta",
		"A2": "Name", "B2": "Age",
		"A5": "footer",
	})

	tpl, err := OpenTemplate(path)
	require.NoError(t, err)
	defer tpl.Close()

	require.NoError(t, tpl.GotoSheet("Sheet1"))
	tpl.HeaderAt(HeaderRow(2))

	src, err := FromRecords([]map[string]any{{"Name": "Alice", "Age": 25}})
	require.NoError(t, err)

	n, err := tpl.Fill(src, WithOverwrite(true))
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	require.NoError(t, tpl.Save())

	assert.Equal(t, "Alice", readCell(t, path, "Sheet1", "A3"))
	assert.Equal(t, "footer", readCell(t, path, "Sheet1", "A5"))
}

func TestTemplate_RemoveRows(t *testing.T) {
	path := writeBook(t, "book.xlsx", map[string]any{
		"A1": "a",
		"A2": "b",
		"A3": "c",
		"A4": "d",
	})

	tpl, err := OpenTemplate(path)
	require.NoError(t, err)
	defer tpl.Close()

	require.NoError(t, tpl.GotoSheet("Sheet1"))
	require.NoError(t, tpl.RemoveRows(2, 2))
	require.NoError(t, tpl.Save())

	assert.Equal(t, "a", readCell(t, path, "Sheet1", "A1"))
	assert.Equal(t, "d", readCell(t, path, "Sheet1", "A2"))
	assert.Equal(t, "", readCell(t, path, "Sheet1", "A3"))
}

func TestTemplate_RemoveRowInvalid(t *testing.T) {
	path := writeBook(t, "book.xlsx", map[string]any{"A1": "a"})

	tpl, err := OpenTemplate(path)
	require.NoError(t, err)
	defer tpl.Close()

	assert.Error(t, tpl.RemoveRow(1)) // no sheet selected

	require.NoError(t, tpl.GotoSheet("Sheet1"))
	assert.Error(t, tpl.RemoveRow(0))
	assert.Error(t, tpl.RemoveRows(1, 0))
}

func TestTemplate_SaveAs(t *testing.T) {
	path := writeBook(t, "book.xlsx", map[string]any{"A1": "x"})

	tpl, err := OpenTemplate(path)
	require.NoError(t, err)
	defer tpl.Close()

	out := filepath.Join(t.TempDir(), "out.xlsx")
	require.NoError(t, tpl.SaveAs(out))
	assert.Equal(t, "x", readCell(t, out, "Sheet1", "A1"))
}

func TestTemplate_CursorResetsOnSheetChange(t *testing.T) {
	path := writeBook(t, "book.xlsx", nil)

	tpl, err := OpenTemplate(path)
	require.NoError(t, err)
	defer tpl.Close()

	require.NoError(t, tpl.GotoSheet("Sheet1"))
	require.NoError(t, tpl.GotoCell(NewCellRef(1, 1)))
	require.NoError(t, tpl.AddSheet("Other"))
	require.NoError(t, tpl.GotoSheet("Other"))

	assert.Error(t, tpl.SetValue("x"))
}

func TestTemplate_InvalidCursor(t *testing.T) {
	path := writeBook(t, "book.xlsx", nil)

	tpl, err := OpenTemplate(path)
	require.NoError(t, err)
	defer tpl.Close()

	require.NoError(t, tpl.GotoSheet("Sheet1"))
	assert.Error(t, tpl.GotoCell(NewCellRef(0, 1)))
}
