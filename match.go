package sheetfill

import "sort"

// ColumnMapping maps each input column position to its destination column
// index in the sheet. It is built once per fill and indexed by input
// position, so input order need not match the sheet's left-to-right order.
type ColumnMapping struct {
	dest []int // dest[i] = 1-based destination column of input column i
}

// Dest returns the destination column of input column i.
func (m ColumnMapping) Dest(i int) int { return m.dest[i] }

// Len returns the number of mapped input columns.
func (m ColumnMapping) Len() int { return len(m.dest) }

// matchColumns reconciles input column names against the resolved header
// cells. Matching is by exact case-sensitive text equality.
//
// Strict requires a bijection: every input name appears exactly once among
// the headers and vice versa. Non-strict requires only that every input
// name appears among the headers; extra header columns are permitted and
// left untouched.
func matchColumns(input []string, headers []HeaderCell, strict bool) (ColumnMapping, error) {
	headerCol := make(map[string]int, len(headers))
	headerCount := make(map[string]int, len(headers))
	for _, h := range headers {
		headerCol[h.Text] = h.Col
		headerCount[h.Text]++
	}

	inputCount := make(map[string]int, len(input))
	for _, name := range input {
		inputCount[name]++
	}

	var missing []string
	for _, name := range input {
		if _, ok := headerCol[name]; !ok {
			missing = append(missing, name)
		}
	}

	if strict {
		var unexpected []string
		for _, h := range headers {
			if _, ok := inputCount[h.Text]; !ok {
				unexpected = append(unexpected, h.Text)
			}
		}
		// Duplicate names on either side break the bijection even when the
		// name sets agree.
		for name, n := range inputCount {
			if n > 1 {
				missing = append(missing, name)
			}
		}
		for name, n := range headerCount {
			if n > 1 {
				unexpected = append(unexpected, name)
			}
		}
		if len(missing) > 0 || len(unexpected) > 0 {
			sort.Strings(missing)
			sort.Strings(unexpected)
			return ColumnMapping{}, &ColumnMismatchError{Missing: dedup(missing), Unexpected: dedup(unexpected)}
		}
	} else if len(missing) > 0 {
		sort.Strings(missing)
		return ColumnMapping{}, &ColumnMismatchError{Missing: dedup(missing)}
	}

	dest := make([]int, len(input))
	for i, name := range input {
		dest[i] = headerCol[name]
		log.WithField("column", name).WithField("dest", dest[i]).Debug("column matched")
	}
	return ColumnMapping{dest: dest}, nil
}

// dedup removes adjacent duplicates from a sorted slice.
func dedup(sorted []string) []string {
	out := sorted[:0]
	for i, s := range sorted {
		if i == 0 || s != sorted[i-1] {
			out = append(out, s)
		}
	}
	return out
}
