package sheetfill

import "fmt"

// AggOp is a range reduction operation.
type AggOp int

const (
	OpSum AggOp = iota
	OpCount
	OpAverage
)

// ParseAggOp parses "sum", "count", "average" (or the short form "avg").
func ParseAggOp(s string) (AggOp, error) {
	switch s {
	case "sum":
		return OpSum, nil
	case "count":
		return OpCount, nil
	case "average", "avg":
		return OpAverage, nil
	default:
		return 0, fmt.Errorf("invalid operation %q: use \"sum\", \"count\" or \"average\"", s)
	}
}

// String returns the operation name.
func (op AggOp) String() string {
	switch op {
	case OpCount:
		return "count"
	case OpAverage:
		return "average"
	default:
		return "sum"
	}
}

// Axis selects whether reduction collapses each row or each column to a
// scalar.
type Axis int

const (
	ByRow Axis = iota
	ByColumn
)

// ParseAxis parses "row" or "column" (or the short form "col").
func ParseAxis(s string) (Axis, error) {
	switch s {
	case "row":
		return ByRow, nil
	case "column", "col":
		return ByColumn, nil
	default:
		return 0, fmt.Errorf("invalid axis %q: use \"row\" or \"column\"", s)
	}
}

// String returns the axis name.
func (a Axis) String() string {
	if a == ByColumn {
		return "column"
	}
	return "row"
}

// aggregateGrid reduces the source range to a vector: one scalar per row
// (ByRow) or per column (ByColumn).
//
// Null cells are ignored, not treated as zero: a group with no numeric
// cells yields Null for Sum and Average rather than 0 or a division error.
// Count counts every non-null cell regardless of its type, while Sum and
// Average fail on the first Text, Boolean or Date cell. That asymmetry is
// deliberate.
func aggregateGrid(src Grid, rng RangeRef, op AggOp, axis Axis) ([]CellValue, error) {
	if err := rng.Validate(); err != nil {
		return nil, err
	}

	groups := rng.Height()
	if axis == ByColumn {
		groups = rng.Width()
	}
	sums := make([]float64, groups)
	counts := make([]int, groups)

	for i := 0; i < rng.Height(); i++ {
		for j := 0; j < rng.Width(); j++ {
			ref := NewCellRef(rng.Start.Row+i, rng.Start.Col+j)
			v, err := src.Value(ref)
			if err != nil {
				return nil, err
			}
			if v.IsNull() {
				continue
			}

			group := i
			if axis == ByColumn {
				group = j
			}

			if v.Kind != KindNumber {
				if op == OpCount {
					counts[group]++
					continue
				}
				return nil, &NonNumericCellError{Ref: ref, Value: v}
			}
			sums[group] += v.Number
			counts[group]++
		}
	}

	out := make([]CellValue, groups)
	for g := 0; g < groups; g++ {
		switch op {
		case OpCount:
			out[g] = NumberValue(float64(counts[g]))
		case OpAverage:
			if counts[g] == 0 {
				out[g] = NullValue()
			} else {
				out[g] = NumberValue(sums[g] / float64(counts[g]))
			}
		default: // OpSum
			if counts[g] == 0 {
				out[g] = NullValue()
			} else {
				out[g] = NumberValue(sums[g])
			}
		}
	}

	log.WithField("range", rng.String()).WithField("op", op.String()).
		WithField("axis", axis.String()).WithField("groups", groups).Debug("range aggregated")
	return out, nil
}

// pasteVector writes the reduced vector at the anchor: downward for a ByRow
// reduction (a column vector), rightward for ByColumn (a row vector).
func pasteVector(dst Grid, anchor CellRef, vec []CellValue, axis Axis) error {
	if !anchor.Valid() {
		return &InvalidRangeError{
			Range:  NewRangeRef(anchor, anchor),
			Reason: "destination anchor row and column numbering starts at 1",
		}
	}
	for i, v := range vec {
		ref := NewCellRef(anchor.Row+i, anchor.Col)
		if axis == ByColumn {
			ref = NewCellRef(anchor.Row, anchor.Col+i)
		}
		if err := dst.SetValue(ref, v); err != nil {
			return err
		}
	}
	return nil
}
