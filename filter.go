package sheetfill

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// rowFilter evaluates a boolean predicate against a per-row environment of
// column name → value. The expression compiles once, on the first row.
type rowFilter struct {
	expression string
	program    *vm.Program
}

func newRowFilter(expression string) *rowFilter {
	return &rowFilter{expression: expression}
}

// keep reports whether the row passes the predicate. A nil result is
// treated as false; any other non-bool result is an error.
func (f *rowFilter) keep(env map[string]any) (bool, error) {
	if f.program == nil {
		program, err := expr.Compile(f.expression, expr.Env(env), expr.AllowUndefinedVariables())
		if err != nil {
			return false, fmt.Errorf("compile filter %q: %w", f.expression, err)
		}
		f.program = program
	}
	result, err := expr.Run(f.program, env)
	if err != nil {
		return false, fmt.Errorf("evaluate filter %q: %w", f.expression, err)
	}
	if result == nil {
		return false, nil
	}
	b, ok := result.(bool)
	if !ok {
		return false, fmt.Errorf("filter %q evaluated to %T, expected bool", f.expression, result)
	}
	return b, nil
}

// filterRows drops the rows the predicate rejects. Column names become the
// expression environment; Null cells appear as nil.
func filterRows(f *rowFilter, columns []string, rows [][]CellValue) ([][]CellValue, error) {
	kept := make([][]CellValue, 0, len(rows))
	for i, row := range rows {
		env := make(map[string]any, len(columns))
		for j, name := range columns {
			env[name] = row[j].Any()
		}
		ok, err := f.keep(env)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		if ok {
			kept = append(kept, row)
		}
	}
	return kept, nil
}
