package dbhelpers

import (
	"context"
)

// Driver is the capability contract implemented for each concrete
// database backend. The package drivers/stdsql provides an
// implementation for any database/sql driver.
//
// Implementations must be safe for concurrent use by multiple
// goroutines: an Engine calls OpenConnection once per engine-owned
// operation and RenderPlaceholder at most once over its lifetime.
type Driver interface {
	// OpenConnection creates and opens a connection bound to the
	// given data source (connection string). The caller is
	// responsible for closing the returned connection.
	OpenConnection(ctx context.Context, dataSource string) (Conn, error)

	// RenderPlaceholder returns the driver-native parameter marker
	// for the placeholder at the given index, for example "?" for
	// MySQL, "$3" for PostgreSQL, or "@p3" for SQL Server.
	RenderPlaceholder(index int) (string, error)
}

// Conn is a single database connection. Connections are not required
// to be safe for concurrent use; the engine never shares one across
// concurrent operations.
type Conn interface {
	// ExecContext executes a command that returns no rows and reports
	// the number of rows affected.
	ExecContext(ctx context.Context, cmd *Command) (int64, error)

	// ScalarContext executes a command expected to produce a single
	// value: the first column of the first row. It returns nil if the
	// command produces no rows.
	ScalarContext(ctx context.Context, cmd *Command) (any, error)

	// QueryContext executes a command that returns a forward-only
	// row cursor. The caller must close the returned cursor.
	QueryContext(ctx context.Context, cmd *Command) (Cursor, error)

	// Close releases the connection.
	Close() error
}

// TableFiller is an optional capability of a Conn: a bulk fill of one
// or more result sets into Table values, with driver-reported column
// names and types. Table materializations fail with
// ErrUnsupportedDriver when the connection does not implement it.
type TableFiller interface {
	// FillTableContext executes the command and fills the first
	// result set into a Table, restricted to the given page window.
	FillTableContext(ctx context.Context, cmd *Command, page Page) (*Table, error)

	// FillTablesContext executes the command and fills every result
	// set into its own Table, each restricted to the page window.
	FillTablesContext(ctx context.Context, cmd *Command, page Page) ([]*Table, error)
}

// Cursor is a forward-only, non-restartable sequence of rows produced
// by Conn.QueryContext. Once advanced past a row, that row's data is
// unreachable.
type Cursor interface {
	// Columns returns the column names of the result set, in ordinal
	// order.
	Columns() ([]string, error)

	// Next advances to the next row, reporting false at exhaustion or
	// on error. Cancellation of the query's context terminates the
	// cursor; the cause is reported by Err.
	Next() bool

	// Values returns the raw cell values of the current row in
	// ordinal order. A SQL NULL cell is a nil value.
	Values() ([]any, error)

	// Err returns the error, if any, that terminated iteration.
	Err() error

	// Close releases the cursor. Close is idempotent.
	Close() error
}
