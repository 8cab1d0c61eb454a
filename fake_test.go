package dbhelpers

import (
	"context"
	"fmt"
	"strings"
)

// fakeDriver scripts driver behavior for tests. The marker format is
// applied to the requested index with fmt.Sprintf, so "@p%d" behaves
// like SQL Server and "?" like MySQL.
type fakeDriver struct {
	marker      string
	renderErr   error
	renderCalls int
	openErr     error
	conns       []*fakeConn

	// template for connections opened by this driver
	columns  []string
	rows     [][]any
	scalar   any
	affected int64
}

func (d *fakeDriver) OpenConnection(ctx context.Context, dataSource string) (Conn, error) {
	if d.openErr != nil {
		return nil, d.openErr
	}
	conn := &fakeConn{
		columns:  d.columns,
		rows:     d.rows,
		scalar:   d.scalar,
		affected: d.affected,
	}
	d.conns = append(d.conns, conn)
	return conn, nil
}

func (d *fakeDriver) RenderPlaceholder(index int) (string, error) {
	d.renderCalls++
	if d.renderErr != nil {
		return "", d.renderErr
	}
	if d.marker == "" {
		return "?", nil
	}
	if !strings.Contains(d.marker, "%") {
		return d.marker, nil
	}
	return fmt.Sprintf(d.marker, index), nil
}

type fakeConn struct {
	columns  []string
	rows     [][]any
	scalar   any
	affected int64

	queryErr error
	closed   bool
	execCmds []*Command
}

func (c *fakeConn) ExecContext(ctx context.Context, cmd *Command) (int64, error) {
	c.execCmds = append(c.execCmds, cmd)
	return c.affected, nil
}

func (c *fakeConn) ScalarContext(ctx context.Context, cmd *Command) (any, error) {
	return c.scalar, nil
}

func (c *fakeConn) QueryContext(ctx context.Context, cmd *Command) (Cursor, error) {
	if c.queryErr != nil {
		return nil, c.queryErr
	}
	return &fakeCursor{columns: c.columns, rows: c.rows}, nil
}

func (c *fakeConn) Close() error {
	c.closed = true
	return nil
}

// fakeCursor walks a fixed set of rows.
type fakeCursor struct {
	columns []string
	rows    [][]any
	pos     int // 1-based after first Next
	err     error
	closed  bool
}

func (c *fakeCursor) Columns() ([]string, error) { return c.columns, nil }

func (c *fakeCursor) Next() bool {
	if c.err != nil || c.pos >= len(c.rows) {
		return false
	}
	c.pos++
	return true
}

func (c *fakeCursor) Values() ([]any, error) {
	row := c.rows[c.pos-1]
	return append([]any(nil), row...), nil
}

func (c *fakeCursor) Err() error   { return c.err }
func (c *fakeCursor) Close() error { c.closed = true; return nil }
