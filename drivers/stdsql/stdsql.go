// Package stdsql implements the dbhelpers driver contract for any
// database registered with the standard library database/sql package.
// The driver-native placeholder syntax is selected from the
// database/sql driver name.
package stdsql

import (
	"context"
	"database/sql"

	"github.com/itjac/dbhelpers"
)

// Driver adapts a database/sql driver to the dbhelpers.Driver
// contract. The zero value is not usable; construct with New.
type Driver struct {
	driverName string
	dialect    dialect
}

// New returns a driver for the given database/sql driver name, for
// example "sqlite3", "postgres" or "mysql". The corresponding
// database/sql driver must be linked into the program.
func New(driverName string) *Driver {
	return &Driver{
		driverName: driverName,
		dialect:    dialectFor(driverName),
	}
}

// Register constructs a driver for the database/sql driver name and
// registers it with dbhelpers under the same name.
func Register(driverName string) {
	dbhelpers.Register(driverName, New(driverName))
}

// OpenConnection opens a database handle for the data source and
// verifies it with a ping.
func (d *Driver) OpenConnection(ctx context.Context, dataSource string) (dbhelpers.Conn, error) {
	db, err := sql.Open(d.driverName, dataSource)
	if err != nil {
		return nil, err
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return &conn{db: db}, nil
}

// RenderPlaceholder returns the parameter marker the driver's dialect
// uses for the given zero-based parameter index.
func (d *Driver) RenderPlaceholder(index int) (string, error) {
	return d.dialect.placeholder(index), nil
}

// WrapDB returns a caller-owned connection around an existing database
// handle, for use with dbhelpers.NewWithConn. The engine never closes
// it; closing the handle remains the caller's responsibility.
func WrapDB(db *sql.DB) dbhelpers.Conn {
	return &conn{db: db}
}

// conn wraps a *sql.DB. A *sql.DB is a pool rather than a single
// connection, which satisfies the engine's exclusivity expectations
// trivially.
type conn struct {
	db *sql.DB
}

func (c *conn) ExecContext(ctx context.Context, cmd *dbhelpers.Command) (int64, error) {
	res, err := c.db.ExecContext(ctx, cmd.Text, paramValues(cmd)...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (c *conn) ScalarContext(ctx context.Context, cmd *dbhelpers.Command) (any, error) {
	rows, err := c.db.QueryContext(ctx, cmd.Text, paramValues(cmd)...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	if !rows.Next() {
		return nil, rows.Err()
	}
	var v any
	if err := rows.Scan(&v); err != nil {
		return nil, err
	}
	return cloneBytes(v), nil
}

func (c *conn) QueryContext(ctx context.Context, cmd *dbhelpers.Command) (dbhelpers.Cursor, error) {
	rows, err := c.db.QueryContext(ctx, cmd.Text, paramValues(cmd)...)
	if err != nil {
		return nil, err
	}
	return &cursor{rows: rows}, nil
}

func (c *conn) Close() error {
	return c.db.Close()
}

// FillTableContext implements the optional bulk fill capability for
// the first result set.
func (c *conn) FillTableContext(ctx context.Context, cmd *dbhelpers.Command, page dbhelpers.Page) (*dbhelpers.Table, error) {
	rows, err := c.db.QueryContext(ctx, cmd.Text, paramValues(cmd)...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return fillTable(&cursor{rows: rows}, rows, page)
}

// FillTablesContext implements the optional bulk fill capability for
// every result set the command produces.
func (c *conn) FillTablesContext(ctx context.Context, cmd *dbhelpers.Command, page dbhelpers.Page) ([]*dbhelpers.Table, error) {
	rows, err := c.db.QueryContext(ctx, cmd.Text, paramValues(cmd)...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tables []*dbhelpers.Table
	for {
		table, err := fillTable(&cursor{rows: rows}, rows, page)
		if err != nil {
			return nil, err
		}
		tables = append(tables, table)
		if !rows.NextResultSet() {
			break
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return tables, nil
}

// fillTable drains the current result set into a Table, applying the
// page window with the same walker the engine's cursor shapes use.
func fillTable(cur dbhelpers.Cursor, rows *sql.Rows, page dbhelpers.Page) (*dbhelpers.Table, error) {
	colTypes, err := rows.ColumnTypes()
	if err != nil {
		return nil, err
	}
	table := &dbhelpers.Table{
		Columns: make([]dbhelpers.Column, len(colTypes)),
	}
	for i, ct := range colTypes {
		table.Columns[i] = dbhelpers.Column{
			Name:         ct.Name(),
			DatabaseType: ct.DatabaseTypeName(),
		}
	}
	err = dbhelpers.WalkCursor(cur, page, func(cur dbhelpers.Cursor) error {
		values, err := cur.Values()
		if err != nil {
			return err
		}
		table.Rows = append(table.Rows, values)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return table, nil
}

func paramValues(cmd *dbhelpers.Command) []any {
	if len(cmd.Params) == 0 {
		return nil
	}
	values := make([]any, len(cmd.Params))
	for i, p := range cmd.Params {
		values[i] = p.Value
	}
	return values
}

// cursor adapts *sql.Rows to the engine's cursor contract.
type cursor struct {
	rows *sql.Rows
	cols []string
}

func (c *cursor) Columns() ([]string, error) {
	if c.cols == nil {
		cols, err := c.rows.Columns()
		if err != nil {
			return nil, err
		}
		c.cols = cols
	}
	return c.cols, nil
}

func (c *cursor) Next() bool {
	return c.rows.Next()
}

func (c *cursor) Values() ([]any, error) {
	cols, err := c.Columns()
	if err != nil {
		return nil, err
	}
	values := make([]any, len(cols))
	ptrs := make([]any, len(cols))
	for i := range values {
		ptrs[i] = &values[i]
	}
	if err := c.rows.Scan(ptrs...); err != nil {
		return nil, err
	}
	// Byte slices handed out by database/sql are only valid until the
	// next row advance.
	for i, v := range values {
		values[i] = cloneBytes(v)
	}
	return values, nil
}

func (c *cursor) Err() error {
	return c.rows.Err()
}

func (c *cursor) Close() error {
	return c.rows.Close()
}

func cloneBytes(v any) any {
	if b, ok := v.([]byte); ok {
		return append([]byte(nil), b...)
	}
	return v
}
