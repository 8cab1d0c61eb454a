package dbhelpers

import (
	"context"
)

// ExecContext executes a command that returns no rows and reports the
// number of rows affected.
func ExecContext(ctx context.Context, e *Engine, template string, args ...any) (int64, error) {
	cmd, err := e.command(template, args)
	if err != nil {
		return 0, err
	}
	var affected int64
	err = e.withConn(ctx, func(conn Conn) error {
		affected, err = conn.ExecContext(ctx, cmd)
		return err
	})
	if err != nil {
		return 0, err
	}
	return affected, nil
}

// Exec is the blocking form of ExecContext.
func Exec(e *Engine, template string, args ...any) (int64, error) {
	return ExecContext(context.Background(), e, template, args...)
}
