package sheetfill

// copyGrid copies the source range to the destination anchor, cell by cell
// and type-preserving. The source and destination may belong to different
// workbooks. With transpose, source offset (i, j) lands at destination
// (anchor.Row+j, anchor.Col+i), so the copied region's height equals the
// source width and vice versa.
func copyGrid(src Grid, rng RangeRef, dst Grid, anchor CellRef, transpose bool) (int, int, error) {
	if err := rng.Validate(); err != nil {
		return 0, 0, err
	}
	if !anchor.Valid() {
		return 0, 0, &InvalidRangeError{
			Range:  NewRangeRef(anchor, anchor),
			Reason: "destination anchor row and column numbering starts at 1",
		}
	}

	height, width := rng.Height(), rng.Width()
	log.WithField("range", rng.String()).WithField("anchor", anchor.String()).
		WithField("transpose", transpose).Debug("copying range")

	for i := 0; i < height; i++ {
		for j := 0; j < width; j++ {
			v, err := src.Value(NewCellRef(rng.Start.Row+i, rng.Start.Col+j))
			if err != nil {
				return 0, 0, err
			}
			target := NewCellRef(anchor.Row+i, anchor.Col+j)
			if transpose {
				target = NewCellRef(anchor.Row+j, anchor.Col+i)
			}
			if err := dst.SetValue(target, v); err != nil {
				return 0, 0, err
			}
		}
	}

	if transpose {
		return width, height, nil
	}
	return height, width, nil
}
