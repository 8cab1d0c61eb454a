package dbhelpers

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/itjac/dbhelpers/private/convert"
)

// Row is a snapshot of the current cursor row, passed to caller
// supplied row functions. Cells are addressable by ordinal and, case
// insensitively, by column name. A Row is only valid for the duration
// of the row function call.
type Row struct {
	columns []string
	values  []any
}

// RowFunc converts a row into a value of type T. It is supplied by the
// caller to OneFunc and ListFunc in place of the engine's own
// column-to-field mapping.
type RowFunc[T any] func(*Row) (T, error)

// Len returns the number of columns in the row.
func (r *Row) Len() int { return len(r.values) }

// Columns returns the column names in ordinal order.
func (r *Row) Columns() []string { return r.columns }

// Value returns the raw cell value at the given ordinal. A SQL NULL
// cell is nil.
func (r *Row) Value(index int) any { return r.values[index] }

// Named returns the raw cell value for the column with the given name,
// matched case-insensitively. The second return value reports whether
// the column exists.
func (r *Row) Named(name string) (any, bool) {
	for i, col := range r.columns {
		if strings.EqualFold(col, name) {
			return r.values[i], true
		}
	}
	return nil, false
}

// Field returns the cell for the named column converted to type T.
// A NULL cell yields T's zero value.
func Field[T any](r *Row, name string) (T, error) {
	var zero T
	raw, ok := r.Named(name)
	if !ok {
		return zero, fmt.Errorf("%w: no column named %q", ErrInvalidArgument, name)
	}
	return convertTo[T](raw)
}

// Cell returns the cell at the given ordinal converted to type T.
// A NULL cell yields T's zero value.
func Cell[T any](r *Row, index int) (T, error) {
	if index < 0 || index >= len(r.values) {
		var zero T
		return zero, fmt.Errorf("%w: column ordinal %d out of range", ErrInvalidArgument, index)
	}
	return convertTo[T](r.values[index])
}

// currentRow reads the current cursor row into a Row.
func currentRow(cur Cursor, columns []string) (*Row, error) {
	values, err := cur.Values()
	if err != nil {
		return nil, err
	}
	return &Row{columns: columns, values: values}, nil
}

// convertTo converts a raw cell value to type T using the engine's
// conversion rules.
func convertTo[T any](raw any) (T, error) {
	var zero T
	v, err := convert.Value(raw, typeOf[T]())
	if err != nil {
		return zero, err
	}
	return v.Interface().(T), nil
}

func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}
