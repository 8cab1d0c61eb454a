package dbhelpers

import (
	"context"
	"reflect"

	"github.com/itjac/dbhelpers/private/colbind"
)

// ListPageContext executes a query and maps each row in the page
// window onto a fresh value of struct type T, in cursor order.
// Columns match fields case-insensitively (a `sql:"name"` field tag
// overrides the field name); unmatched columns are ignored and
// unmatched fields keep their zero value.
func ListPageContext[T any](ctx context.Context, e *Engine, page Page, template string, args ...any) ([]T, error) {
	cmd, err := e.command(template, args)
	if err != nil {
		return nil, err
	}
	var out []T
	err = e.query(ctx, cmd, func(cur Cursor, columns []string) error {
		plan, err := colbind.For(typeOf[T](), columns)
		if err != nil {
			return err
		}
		return WalkCursor(cur, page, func(cur Cursor) error {
			values, err := cur.Values()
			if err != nil {
				return err
			}
			var row T
			if err := plan.Scan(reflect.ValueOf(&row).Elem(), values); err != nil {
				return err
			}
			out = append(out, row)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ListContext executes a query and maps every row onto a fresh value
// of struct type T, in cursor order.
func ListContext[T any](ctx context.Context, e *Engine, template string, args ...any) ([]T, error) {
	return ListPageContext[T](ctx, e, Page{}, template, args...)
}

// ListPage is the blocking form of ListPageContext.
func ListPage[T any](e *Engine, page Page, template string, args ...any) ([]T, error) {
	return ListPageContext[T](context.Background(), e, page, template, args...)
}

// List is the blocking form of ListContext.
func List[T any](e *Engine, template string, args ...any) ([]T, error) {
	return ListPageContext[T](context.Background(), e, Page{}, template, args...)
}

// ListFuncPageContext executes a query and converts each row in the
// page window with the caller-supplied row function, in cursor order.
func ListFuncPageContext[T any](ctx context.Context, e *Engine, page Page, fn RowFunc[T], template string, args ...any) ([]T, error) {
	cmd, err := e.command(template, args)
	if err != nil {
		return nil, err
	}
	var out []T
	err = e.query(ctx, cmd, func(cur Cursor, columns []string) error {
		return WalkCursor(cur, page, func(cur Cursor) error {
			row, err := currentRow(cur, columns)
			if err != nil {
				return err
			}
			v, err := fn(row)
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

// ListFuncContext executes a query and converts every row with the
// caller-supplied row function, in cursor order.
func ListFuncContext[T any](ctx context.Context, e *Engine, fn RowFunc[T], template string, args ...any) ([]T, error) {
	return ListFuncPageContext[T](ctx, e, Page{}, fn, template, args...)
}

// ListFuncPage is the blocking form of ListFuncPageContext.
func ListFuncPage[T any](e *Engine, page Page, fn RowFunc[T], template string, args ...any) ([]T, error) {
	return ListFuncPageContext[T](context.Background(), e, page, fn, template, args...)
}

// ListFunc is the blocking form of ListFuncContext.
func ListFunc[T any](e *Engine, fn RowFunc[T], template string, args ...any) ([]T, error) {
	return ListFuncPageContext[T](context.Background(), e, Page{}, fn, template, args...)
}
