package stdsql

import (
	"strconv"
	"strings"
)

// dialect holds the placeholder syntax for one family of database/sql
// drivers.
type dialect struct {
	name            string
	altnames        []string
	placeholderFunc func(index int) string
}

// placeholder renders the marker for a zero-based parameter index. Dialects
// without a placeholder function use a plain question mark.
func (d dialect) placeholder(index int) string {
	if d.placeholderFunc == nil {
		return "?"
	}
	return d.placeholderFunc(index)
}

var dialects = []dialect{
	{
		name: "mysql",
	},
	{
		name:     "sqlite",
		altnames: []string{"sqlite3"},
	},
	{
		name:     "mssql",
		altnames: []string{"sqlserver"},
		placeholderFunc: func(index int) string {
			return "@p" + strconv.Itoa(index)
		},
	},
	{
		name:     "postgres",
		altnames: []string{"pq", "postgresql", "pgx"},
		placeholderFunc: func(index int) string {
			return "$" + strconv.Itoa(index+1)
		},
	},
	{
		name:     "ql",
		altnames: []string{"ql-mem"},
		placeholderFunc: func(index int) string {
			return "?" + strconv.Itoa(index+1)
		},
	},
}

// dialectFor selects the dialect for a database/sql driver name. An
// unknown name gets the default question-mark dialect.
func dialectFor(driverName string) dialect {
	driverName = strings.TrimSpace(strings.ToLower(driverName))
	for _, d := range dialects {
		if d.name == driverName {
			return d
		}
		for _, alt := range d.altnames {
			if alt == driverName {
				return d
			}
		}
	}
	return dialect{name: "default"}
}
