package dbhelpers

import (
	"context"
	"fmt"
)

// SlicePageContext executes a query and converts column 0 of each row
// in the page window to type T, in cursor order.
func SlicePageContext[T any](ctx context.Context, e *Engine, page Page, template string, args ...any) ([]T, error) {
	cmd, err := e.command(template, args)
	if err != nil {
		return nil, err
	}
	var out []T
	err = e.query(ctx, cmd, func(cur Cursor, columns []string) error {
		if len(columns) < 1 {
			return fmt.Errorf("%w: query produced no columns", ErrInvalidArgument)
		}
		return WalkCursor(cur, page, func(cur Cursor) error {
			values, err := cur.Values()
			if err != nil {
				return err
			}
			v, err := convertTo[T](values[0])
			if err != nil {
				return err
			}
			out = append(out, v)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// SliceContext executes a query and converts column 0 of every row to
// type T, in cursor order.
func SliceContext[T any](ctx context.Context, e *Engine, template string, args ...any) ([]T, error) {
	return SlicePageContext[T](ctx, e, Page{}, template, args...)
}

// SlicePage is the blocking form of SlicePageContext.
func SlicePage[T any](e *Engine, page Page, template string, args ...any) ([]T, error) {
	return SlicePageContext[T](context.Background(), e, page, template, args...)
}

// Slice is the blocking form of SliceContext.
func Slice[T any](e *Engine, template string, args ...any) ([]T, error) {
	return SlicePageContext[T](context.Background(), e, Page{}, template, args...)
}
