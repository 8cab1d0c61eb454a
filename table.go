package dbhelpers

// Column describes one column of a materialized table as reported by
// the driver.
type Column struct {
	// Name is the column name.
	Name string

	// DatabaseType is the driver-reported database type name, such as
	// "VARCHAR" or "INTEGER". It may be empty if the driver does not
	// report one.
	DatabaseType string
}

// Table is a bulk-materialized result set: column metadata plus every
// row's raw cell values, in cursor order. It is created fresh per
// operation and owned by the caller.
type Table struct {
	Columns []Column
	Rows    [][]any
}

// ColumnNames returns the names of the table's columns in ordinal
// order.
func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		names[i] = col.Name
	}
	return names
}
