package dbhelpers

import (
	"context"
	"fmt"
	"sync"

	"github.com/jjeffery/kv"
)

// Logger implements a single method, Print, which prints a message for
// diagnostic purposes. Any implementation must support concurrent
// access by multiple goroutines. The Logger type in the standard
// library package "log" implements this interface.
type Logger interface {
	Print(v ...interface{})
}

// An Engine executes commands against a single driver and data source
// and materializes the results. It is safe for concurrent use by
// multiple goroutines: the only shared state is the placeholder format
// cache, which is written once and read thereafter.
//
// An engine either owns its connections, opening one per operation and
// closing it on every exit path, or is bound to a caller-owned
// connection that it never closes.
type Engine struct {
	// Logger, if not nil, receives a diagnostic message for every
	// command built by the engine.
	Logger Logger

	driver     Driver
	dataSource string
	conn       Conn // caller-owned; never closed by the engine

	ph struct {
		once   sync.Once
		format placeholderFormat
		err    error
	}
}

// New returns an engine that opens a connection from the driver and
// data source for each operation, and closes it when the operation
// completes.
func New(driver Driver, dataSource string) (*Engine, error) {
	if driver == nil {
		return nil, fmt.Errorf("%w: nil driver", ErrConfiguration)
	}
	if dataSource == "" {
		return nil, fmt.Errorf("%w: empty data source", ErrConfiguration)
	}
	return &Engine{driver: driver, dataSource: dataSource}, nil
}

// NewWithConn returns an engine bound to a caller-owned connection.
// The engine uses the connection for every operation and never closes
// it; serializing concurrent use of the connection is the caller's
// responsibility. The driver is still consulted for placeholder
// rendering.
func NewWithConn(driver Driver, conn Conn) (*Engine, error) {
	if driver == nil {
		return nil, fmt.Errorf("%w: nil driver", ErrConfiguration)
	}
	if conn == nil {
		return nil, fmt.Errorf("%w: nil connection", ErrConfiguration)
	}
	return &Engine{driver: driver, conn: conn}, nil
}

// withConn runs op with a connection. A caller-owned connection is
// used as-is; an engine-owned connection is opened from the driver and
// closed on every exit path, including error returns.
func (e *Engine) withConn(ctx context.Context, op func(Conn) error) (err error) {
	if e.conn != nil {
		return op(e.conn)
	}
	conn, err := e.driver.OpenConnection(ctx, e.dataSource)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := conn.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return op(conn)
}

// query executes a cursor-producing command and hands the open cursor
// and its column names to op. The cursor is closed before query
// returns.
func (e *Engine) query(ctx context.Context, cmd *Command, op func(cur Cursor, columns []string) error) error {
	return e.withConn(ctx, func(conn Conn) error {
		cur, err := conn.QueryContext(ctx, cmd)
		if err != nil {
			return err
		}
		defer cur.Close()
		columns, err := cur.Columns()
		if err != nil {
			return err
		}
		return op(cur, columns)
	})
}

// command builds the command for a template and logs it.
func (e *Engine) command(template string, args []any) (*Command, error) {
	cmd, err := e.buildCommand(template, args)
	if err != nil {
		return nil, err
	}
	if e.Logger != nil {
		e.Logger.Print("built " + kv.List{"query", cmd.Text, "params", len(cmd.Params)}.String())
	}
	return cmd, nil
}
