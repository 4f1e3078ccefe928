package sheetfill

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFillSheet_AppendBelowHeader(t *testing.T) {
	path := createTemplateBook(t)

	src, err := FromRecords([]map[string]any{
		{"Name": "Alice", "Age": 25, "Gender": "F"},
	})
	require.NoError(t, err)

	n, err := FillSheet(path, "Sheet1", src)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	assert.Equal(t, "Alice", readCell(t, path, "Sheet1", "A4"))
	assert.Equal(t, "25", readCell(t, path, "Sheet1", "B4"))
	assert.Equal(t, "F", readCell(t, path, "Sheet1", "C4"))
}

func TestFillSheet_SecondAppendNeverRevisits(t *testing.T) {
	path := createTemplateBook(t)

	first, err := FromRecords([]map[string]any{{"Name": "Alice", "Age": 25, "Gender": "F"}})
	require.NoError(t, err)
	_, err = FillSheet(path, "Sheet1", first)
	require.NoError(t, err)

	second, err := FromRecords([]map[string]any{{"Name": "Bob", "Age": 30, "Gender": "M"}})
	require.NoError(t, err)
	n, err := FillSheet(path, "Sheet1", second)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	assert.Equal(t, "Alice", readCell(t, path, "Sheet1", "A4"))
	assert.Equal(t, "Bob", readCell(t, path, "Sheet1", "A5"))
	assert.Equal(t, "30", readCell(t, path, "Sheet1", "B5"))
}

func TestFillSheet_AppendScansPastDataRows(t *testing.T) {
	path := createTemplateBook(t)

	first, err := FromRecords([]map[string]any{
		{"Name": "Alice", "Age": 25, "Gender": "F"},
		{"Name": "Bob", "Age": 30, "Gender": "M"},
	})
	require.NoError(t, err)
	_, err = FillSheet(path, "Sheet1", first)
	require.NoError(t, err)

	// The lowest populated rows are now data; the header two bands up must
	// still be found, even under strict matching.
	second, err := FromRecords([]map[string]any{{"Name": "Carol", "Age": 41, "Gender": "F"}})
	require.NoError(t, err)
	n, err := FillSheet(path, "Sheet1", second, WithStrict(true))
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	assert.Equal(t, "Alice", readCell(t, path, "Sheet1", "A4"))
	assert.Equal(t, "Bob", readCell(t, path, "Sheet1", "A5"))
	assert.Equal(t, "Carol", readCell(t, path, "Sheet1", "A6"))
}

func TestFillSheet_Overwrite(t *testing.T) {
	path := writeBook(t, "book.xlsx", map[string]any{
		"A1": "Name", "B1": "Age", "C1": "Note",
		"A2": "Old", "B2": 99, "C2": "keep me",
		"A3": "Older", "B3": 98, "C3": "keep me too",
	})

	src, err := FromRecords([]map[string]any{
		{"Name": "Alice", "Age": 25},
		{"Name": "Bob", "Age": 30},
	})
	require.NoError(t, err)

	n, err := FillSheet(path, "Sheet1", src,
		WithHeaderRow(HeaderRow(1)),
		WithOverwrite(true))
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	assert.Equal(t, "Alice", readCell(t, path, "Sheet1", "A2"))
	assert.Equal(t, "Bob", readCell(t, path, "Sheet1", "A3"))
	// Overwrite is scoped to matched columns: the unmatched Note column survives.
	assert.Equal(t, "keep me", readCell(t, path, "Sheet1", "C2"))
	assert.Equal(t, "keep me too", readCell(t, path, "Sheet1", "C3"))
}

func TestFillSheet_SkipNullsMasks(t *testing.T) {
	path := writeBook(t, "book.xlsx", map[string]any{
		"A1": "Name", "B1": "Age",
		"A2": "Alice", "B2": 25,
	})

	src, err := FromRecords([]map[string]any{
		{"Name": "Alicia", "Age": nil},
	})
	require.NoError(t, err)

	_, err = FillSheet(path, "Sheet1", src,
		WithHeaderRow(HeaderRow(1)),
		WithOverwrite(true),
		WithSkipNulls(true))
	require.NoError(t, err)

	assert.Equal(t, "Alicia", readCell(t, path, "Sheet1", "A2"))
	// Null input with skip-nulls leaves the pre-existing value in place.
	assert.Equal(t, "25", readCell(t, path, "Sheet1", "B2"))
}

func TestFillSheet_NullBlanksWithoutSkip(t *testing.T) {
	path := writeBook(t, "book.xlsx", map[string]any{
		"A1": "Name", "B1": "Age",
		"A2": "Alice", "B2": 25,
	})

	src, err := FromRecords([]map[string]any{
		{"Name": "Alicia", "Age": nil},
	})
	require.NoError(t, err)

	_, err = FillSheet(path, "Sheet1", src,
		WithHeaderRow(HeaderRow(1)),
		WithOverwrite(true))
	require.NoError(t, err)

	assert.Equal(t, "", readCell(t, path, "Sheet1", "B2"))
}

func TestFillSheet_StrictMismatch(t *testing.T) {
	path := createTemplateBook(t)

	src, err := FromRecords([]map[string]any{{"Name": "Alice", "Age": 25}})
	require.NoError(t, err)

	_, err = FillSheet(path, "Sheet1", src, WithStrict(true))
	require.ErrorIs(t, err, ErrColumnMismatch)

	var mismatch *ColumnMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, []string{"Gender"}, mismatch.Unexpected)

	// The failed fill wrote nothing.
	assert.Equal(t, "", readCell(t, path, "Sheet1", "A4"))
}

func TestFillSheet_HeaderlessGrid(t *testing.T) {
	path := createTemplateBook(t)

	src, err := FromGrid([][]any{
		{"Alice", 25, "F"},
		{"Bob", 30, "M"},
	})
	require.NoError(t, err)

	n, err := FillSheet(path, "Sheet1", src,
		WithColumns([]string{"Name", "Age", "Gender"}))
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	assert.Equal(t, "Alice", readCell(t, path, "Sheet1", "A4"))
	assert.Equal(t, "M", readCell(t, path, "Sheet1", "C5"))
}

func TestFillSheet_HeaderlessWithoutColumns(t *testing.T) {
	path := createTemplateBook(t)

	src, err := FromGrid([][]any{{"Alice", 25, "F"}})
	require.NoError(t, err)

	_, err = FillSheet(path, "Sheet1", src)
	assert.ErrorIs(t, err, ErrColumnsRequired)
}

func TestFillSheet_ColumnsArityMismatch(t *testing.T) {
	path := createTemplateBook(t)

	src, err := FromGrid([][]any{{"Alice", 25, "F"}})
	require.NoError(t, err)

	_, err = FillSheet(path, "Sheet1", src, WithColumns([]string{"Name", "Age"}))
	assert.ErrorIs(t, err, ErrRowWidthMismatch)
}

func TestFillSheet_InputOrderIndependent(t *testing.T) {
	path := createTemplateBook(t)

	// FromRecords orders columns Age, Gender, Name; the sheet has Name, Age, Gender.
	src, err := FromRecords([]map[string]any{{"Gender": "F", "Age": 25, "Name": "Alice"}})
	require.NoError(t, err)

	_, err = FillSheet(path, "Sheet1", src, WithStrict(true))
	require.NoError(t, err)

	assert.Equal(t, "Alice", readCell(t, path, "Sheet1", "A4"))
	assert.Equal(t, "25", readCell(t, path, "Sheet1", "B4"))
	assert.Equal(t, "F", readCell(t, path, "Sheet1", "C4"))
}

func TestFillSheet_StartRowOverride(t *testing.T) {
	path := createTemplateBook(t)

	src, err := FromRecords([]map[string]any{{"Name": "Alice", "Age": 25, "Gender": "F"}})
	require.NoError(t, err)

	_, err = FillSheet(path, "Sheet1", src, WithStartRow(10))
	require.NoError(t, err)
	assert.Equal(t, "Alice", readCell(t, path, "Sheet1", "A10"))
}

func TestFillSheet_StartRowAboveHeaderRejected(t *testing.T) {
	path := createTemplateBook(t)

	src, err := FromRecords([]map[string]any{{"Name": "Alice", "Age": 25, "Gender": "F"}})
	require.NoError(t, err)

	_, err = FillSheet(path, "Sheet1", src, WithStartRow(2))
	assert.Error(t, err)
}

func TestFillSheet_StartRowInsideDataRejected(t *testing.T) {
	path := writeBook(t, "book.xlsx", map[string]any{
		"A1": "Name",
		"A2": "existing",
		"A3": "existing",
	})

	src, err := FromRecords([]map[string]any{{"Name": "Alice"}})
	require.NoError(t, err)

	// Row 3 is inside existing data; without overwrite the append must not
	// land there.
	_, err = FillSheet(path, "Sheet1", src, WithHeaderRow(HeaderRow(1)), WithStartRow(3))
	assert.Error(t, err)

	_, err = FillSheet(path, "Sheet1", src,
		WithHeaderRow(HeaderRow(1)), WithOverwrite(true), WithStartRow(3))
	require.NoError(t, err)
	assert.Equal(t, "Alice", readCell(t, path, "Sheet1", "A3"))
}

func TestFillSheet_TypePreserved(t *testing.T) {
	path := writeBook(t, "book.xlsx", map[string]any{
		"A1": "Name", "B1": "Age", "C1": "Active",
	})

	src, err := FromRecords([]map[string]any{
		{"Name": "Alice", "Age": 25.5, "Active": true},
	})
	require.NoError(t, err)

	_, err = FillSheet(path, "Sheet1", src, WithHeaderRow(HeaderRow(1)))
	require.NoError(t, err)

	assert.Equal(t, "25.5", readCell(t, path, "Sheet1", "B2"))
	assert.Equal(t, "TRUE", readCell(t, path, "Sheet1", "C2"))
}

func TestFillSheet_SheetNotFound(t *testing.T) {
	path := createTemplateBook(t)
	src, err := FromRecords([]map[string]any{{"Name": "x"}})
	require.NoError(t, err)

	_, err = FillSheet(path, "Missing", src)
	assert.ErrorIs(t, err, ErrSheetNotFound)
}

func TestFillSheet_FileNotFound(t *testing.T) {
	src, err := FromRecords([]map[string]any{{"Name": "x"}})
	require.NoError(t, err)

	_, err = FillSheet("does-not-exist.xlsx", "Sheet1", src)
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestFillSheet_EmptySource(t *testing.T) {
	path := createTemplateBook(t)

	src, err := FromRecords(nil)
	require.NoError(t, err)

	// No columns and no rows: behaves as headerless without a column list.
	_, err = FillSheet(path, "Sheet1", src)
	assert.ErrorIs(t, err, ErrColumnsRequired)
}

func TestFillSheet_RowFilter(t *testing.T) {
	path := createTemplateBook(t)

	src, err := FromRecords([]map[string]any{
		{"Name": "Alice", "Age": 25, "Gender": "F"},
		{"Name": "Bob", "Age": 17, "Gender": "M"},
		{"Name": "Carol", "Age": 41, "Gender": "F"},
	})
	require.NoError(t, err)

	n, err := FillSheet(path, "Sheet1", src, WithRowFilter(`Age >= 18`))
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	assert.Equal(t, "Alice", readCell(t, path, "Sheet1", "A4"))
	assert.Equal(t, "Carol", readCell(t, path, "Sheet1", "A5"))
	assert.Equal(t, "", readCell(t, path, "Sheet1", "A6"))
}

func TestFillSheet_RowFilterNonBool(t *testing.T) {
	path := createTemplateBook(t)

	src, err := FromRecords([]map[string]any{{"Name": "Alice", "Age": 25, "Gender": "F"}})
	require.NoError(t, err)

	_, err = FillSheet(path, "Sheet1", src, WithRowFilter(`Age + 1`))
	assert.Error(t, err)
}
