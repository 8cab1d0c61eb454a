package dbhelpers

import (
	"context"
	"fmt"

	"github.com/jjeffery/kv"
)

// MapPageContext executes a query and builds a map from the rows in
// the page window: column 0 converts to the key, column 1 to the
// value. Two rows producing the same converted key fail with
// ErrDuplicateKey and the partial map is discarded.
func MapPageContext[K comparable, V any](ctx context.Context, e *Engine, page Page, template string, args ...any) (map[K]V, error) {
	cmd, err := e.command(template, args)
	if err != nil {
		return nil, err
	}
	out := make(map[K]V)
	err = e.query(ctx, cmd, func(cur Cursor, columns []string) error {
		if len(columns) < 2 {
			return fmt.Errorf("%w: map materialization needs a key and a value column, query produced %d", ErrInvalidArgument, len(columns))
		}
		return WalkCursor(cur, page, func(cur Cursor) error {
			values, err := cur.Values()
			if err != nil {
				return err
			}
			key, err := convertTo[K](values[0])
			if err != nil {
				return err
			}
			if _, dup := out[key]; dup {
				return fmt.Errorf("%w %s", ErrDuplicateKey, kv.List{"key", key})
			}
			value, err := convertTo[V](values[1])
			if err != nil {
				return err
			}
			out[key] = value
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// MapContext executes a query and builds a map from every row:
// column 0 converts to the key, column 1 to the value.
func MapContext[K comparable, V any](ctx context.Context, e *Engine, template string, args ...any) (map[K]V, error) {
	return MapPageContext[K, V](ctx, e, Page{}, template, args...)
}

// MapPage is the blocking form of MapPageContext.
func MapPage[K comparable, V any](e *Engine, page Page, template string, args ...any) (map[K]V, error) {
	return MapPageContext[K, V](context.Background(), e, page, template, args...)
}

// Map is the blocking form of MapContext.
func Map[K comparable, V any](e *Engine, template string, args ...any) (map[K]V, error) {
	return MapPageContext[K, V](context.Background(), e, Page{}, template, args...)
}
