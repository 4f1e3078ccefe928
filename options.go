package sheetfill

// fillOptions holds the per-call configuration of one fill. Immutable for
// the duration of the call.
type fillOptions struct {
	headerRow HeaderLocation
	overwrite bool
	skipNulls bool
	strict    bool
	columns   []string
	startRow  int
	filter    *rowFilter
}

func defaultFillOptions() *fillOptions {
	return &fillOptions{headerRow: HeaderLast}
}

// FillOption configures a fill call.
type FillOption func(*fillOptions)

// WithHeaderRow sets the header-location policy (default: HeaderLast).
func WithHeaderRow(loc HeaderLocation) FillOption {
	return func(o *fillOptions) { o.headerRow = loc }
}

// WithOverwrite starts writing immediately below the header row instead of
// appending after existing data. Overwriting is scoped to matched columns;
// unmatched destination columns are left untouched.
func WithOverwrite(overwrite bool) FillOption {
	return func(o *fillOptions) { o.overwrite = overwrite }
}

// WithSkipNulls leaves the destination cell unmodified when the input value
// is Null, instead of blanking it. Enables sparse masking updates over
// pre-existing data.
func WithSkipNulls(skip bool) FillOption {
	return func(o *fillOptions) { o.skipNulls = skip }
}

// WithStrict requires an exact bijection between input column names and the
// sheet's header columns.
func WithStrict(strict bool) FillOption {
	return func(o *fillOptions) { o.strict = strict }
}

// WithColumns supplies column names for a headerless source. The list must
// match the row width; per-row values are assembled positionally against it.
func WithColumns(columns []string) FillOption {
	return func(o *fillOptions) { o.columns = columns }
}

// WithStartRow overrides the computed write-start row. It must sit below the
// header row, and below the sheet's used extent when not overwriting.
func WithStartRow(row int) FillOption {
	return func(o *fillOptions) { o.startRow = row }
}

// WithRowFilter sets a boolean predicate evaluated against each input row
// (column name → value); rows evaluating false are not written.
func WithRowFilter(expression string) FillOption {
	return func(o *fillOptions) { o.filter = newRowFilter(expression) }
}
