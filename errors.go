package sheetfill

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors, one per failure kind. Structured errors below wrap these
// so callers can match with errors.Is while still reading the offending
// row/column/name from the concrete type.
var (
	// ErrFileNotFound indicates the workbook file does not exist.
	ErrFileNotFound = errors.New("file not found")

	// ErrSheetNotFound indicates the named sheet does not exist in its workbook.
	ErrSheetNotFound = errors.New("sheet not found")

	// ErrHeaderNotFound indicates the header policy could not locate a populated row.
	ErrHeaderNotFound = errors.New("header row not found")

	// ErrColumnsRequired indicates a headerless source was supplied without a column list.
	ErrColumnsRequired = errors.New("column names must be provided for a headerless source")

	// ErrColumnMismatch indicates column reconciliation failed.
	ErrColumnMismatch = errors.New("column mismatch")

	// ErrRowWidthMismatch indicates a row's value count disagrees with its column count.
	ErrRowWidthMismatch = errors.New("row width mismatch")

	// ErrInvalidRange indicates a range's corners are inconsistent.
	ErrInvalidRange = errors.New("invalid range")

	// ErrNonNumericCell indicates Sum or Average hit a non-numeric cell.
	ErrNonNumericCell = errors.New("non-numeric cell")
)

// ColumnMismatchError reports the column names that prevented matching.
// Missing holds input names absent from the destination header; Unexpected
// holds header names absent from the input (strict mode only).
type ColumnMismatchError struct {
	Missing    []string
	Unexpected []string
}

func (e *ColumnMismatchError) Error() string {
	var parts []string
	if len(e.Missing) > 0 {
		parts = append(parts, fmt.Sprintf("columns missing in sheet header: %s", quoteJoin(e.Missing)))
	}
	if len(e.Unexpected) > 0 {
		parts = append(parts, fmt.Sprintf("header columns missing in input: %s", quoteJoin(e.Unexpected)))
	}
	if len(parts) == 0 {
		return "column mismatch"
	}
	return "column mismatch: " + strings.Join(parts, "; ")
}

func (e *ColumnMismatchError) Unwrap() error { return ErrColumnMismatch }

func quoteJoin(names []string) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = fmt.Sprintf("%q", n)
	}
	return strings.Join(quoted, ", ")
}

// RowWidthError reports a row whose value count disagrees with the column count.
// Row is the 0-based index into the input rows.
type RowWidthError struct {
	Row  int
	Want int
	Got  int
}

func (e *RowWidthError) Error() string {
	return fmt.Sprintf("row %d has %d values, expected %d", e.Row, e.Got, e.Want)
}

func (e *RowWidthError) Unwrap() error { return ErrRowWidthMismatch }

// InvalidRangeError reports a range whose corners are inconsistent.
type InvalidRangeError struct {
	Range  RangeRef
	Reason string
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("invalid range %s: %s", e.Range, e.Reason)
}

func (e *InvalidRangeError) Unwrap() error { return ErrInvalidRange }

// NonNumericCellError reports the cell that broke a Sum or Average.
type NonNumericCellError struct {
	Ref   CellRef
	Value CellValue
}

func (e *NonNumericCellError) Error() string {
	return fmt.Sprintf("non-numeric value in cell %s: %s", e.Ref, e.Value)
}

func (e *NonNumericCellError) Unwrap() error { return ErrNonNumericCell }
