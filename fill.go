package dbhelpers

import (
	"context"
	"fmt"
)

// FillTablePageContext executes a query through the driver's bulk fill
// capability and materializes the first result set as a Table,
// restricted to the page window. Connections that do not implement
// TableFiller fail with ErrUnsupportedDriver.
func FillTablePageContext(ctx context.Context, e *Engine, page Page, template string, args ...any) (*Table, error) {
	cmd, err := e.command(template, args)
	if err != nil {
		return nil, err
	}
	var out *Table
	err = e.withConn(ctx, func(conn Conn) error {
		filler, err := tableFiller(conn)
		if err != nil {
			return err
		}
		out, err = filler.FillTableContext(ctx, cmd, page)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// FillTableContext executes a query through the driver's bulk fill
// capability and materializes the first result set as a Table.
func FillTableContext(ctx context.Context, e *Engine, template string, args ...any) (*Table, error) {
	return FillTablePageContext(ctx, e, Page{}, template, args...)
}

// FillTablePage is the blocking form of FillTablePageContext.
func FillTablePage(e *Engine, page Page, template string, args ...any) (*Table, error) {
	return FillTablePageContext(context.Background(), e, page, template, args...)
}

// FillTable is the blocking form of FillTableContext.
func FillTable(e *Engine, template string, args ...any) (*Table, error) {
	return FillTablePageContext(context.Background(), e, Page{}, template, args...)
}

// FillTablesPageContext executes a query through the driver's bulk
// fill capability and materializes every result set as its own Table,
// each restricted to the page window.
func FillTablesPageContext(ctx context.Context, e *Engine, page Page, template string, args ...any) ([]*Table, error) {
	cmd, err := e.command(template, args)
	if err != nil {
		return nil, err
	}
	var out []*Table
	err = e.withConn(ctx, func(conn Conn) error {
		filler, err := tableFiller(conn)
		if err != nil {
			return err
		}
		out, err = filler.FillTablesContext(ctx, cmd, page)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// FillTablesContext executes a query through the driver's bulk fill
// capability and materializes every result set as its own Table.
func FillTablesContext(ctx context.Context, e *Engine, template string, args ...any) ([]*Table, error) {
	return FillTablesPageContext(ctx, e, Page{}, template, args...)
}

// FillTablesPage is the blocking form of FillTablesPageContext.
func FillTablesPage(e *Engine, page Page, template string, args ...any) ([]*Table, error) {
	return FillTablesPageContext(context.Background(), e, page, template, args...)
}

// FillTables is the blocking form of FillTablesContext.
func FillTables(e *Engine, template string, args ...any) ([]*Table, error) {
	return FillTablesPageContext(context.Background(), e, Page{}, template, args...)
}

func tableFiller(conn Conn) (TableFiller, error) {
	filler, ok := conn.(TableFiller)
	if !ok {
		return nil, fmt.Errorf("%w: connection %T has no bulk table fill", ErrUnsupportedDriver, conn)
	}
	return filler, nil
}
