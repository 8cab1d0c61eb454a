package dbhelpers

import (
	"context"
	"reflect"

	"github.com/itjac/dbhelpers/private/colbind"
)

// OneContext executes a query expected to produce at most one row and
// maps it onto a fresh value of struct type T. A query producing no
// rows returns T's zero value with no error; additional rows beyond
// the first are not read.
func OneContext[T any](ctx context.Context, e *Engine, template string, args ...any) (T, error) {
	var out T
	cmd, err := e.command(template, args)
	if err != nil {
		return out, err
	}
	err = e.query(ctx, cmd, func(cur Cursor, columns []string) error {
		plan, err := colbind.For(typeOf[T](), columns)
		if err != nil {
			return err
		}
		return WalkCursor(cur, Page{Take: 1}, func(cur Cursor) error {
			values, err := cur.Values()
			if err != nil {
				return err
			}
			return plan.Scan(reflect.ValueOf(&out).Elem(), values)
		})
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

// One is the blocking form of OneContext.
func One[T any](e *Engine, template string, args ...any) (T, error) {
	return OneContext[T](context.Background(), e, template, args...)
}

// OneFuncContext executes a query expected to produce at most one row
// and converts it with the caller-supplied row function. A query
// producing no rows returns T's zero value with no error.
func OneFuncContext[T any](ctx context.Context, e *Engine, fn RowFunc[T], template string, args ...any) (T, error) {
	var out T
	cmd, err := e.command(template, args)
	if err != nil {
		return out, err
	}
	err = e.query(ctx, cmd, func(cur Cursor, columns []string) error {
		return WalkCursor(cur, Page{Take: 1}, func(cur Cursor) error {
			row, err := currentRow(cur, columns)
			if err != nil {
				return err
			}
			out, err = fn(row)
			return err
		})
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

// OneFunc is the blocking form of OneFuncContext.
func OneFunc[T any](e *Engine, fn RowFunc[T], template string, args ...any) (T, error) {
	return OneFuncContext[T](context.Background(), e, fn, template, args...)
}
