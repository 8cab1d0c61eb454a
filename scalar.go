package dbhelpers

import (
	"context"
)

// ScalarContext executes a command expected to produce a single value
// and converts it to type T. A command that produces no rows, or a
// NULL value, yields T's zero value with no error.
func ScalarContext[T any](ctx context.Context, e *Engine, template string, args ...any) (T, error) {
	var out T
	cmd, err := e.command(template, args)
	if err != nil {
		return out, err
	}
	err = e.withConn(ctx, func(conn Conn) error {
		raw, err := conn.ScalarContext(ctx, cmd)
		if err != nil {
			return err
		}
		out, err = convertTo[T](raw)
		return err
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

// Scalar is the blocking form of ScalarContext.
func Scalar[T any](e *Engine, template string, args ...any) (T, error) {
	return ScalarContext[T](context.Background(), e, template, args...)
}
