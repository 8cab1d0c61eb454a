// Package colbind builds binding plans that map result-set columns
// onto the fields of a row struct. A plan is computed once per
// (row type, column list) pair and reused for every row of the query;
// only the cell values are re-read per row.
package colbind

import (
	"fmt"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/itjac/dbhelpers/private/convert"
)

var timeType = reflect.TypeOf(time.Time{})

// Field describes one settable field of a row struct.
type Field struct {
	// Name is the column name the field binds to: the value of its
	// `sql` tag if present, otherwise the field name.
	Name string

	// Index locates the field within the row struct, descending into
	// embedded structs.
	Index Index

	// Type is the field's declared type.
	Type reflect.Type
}

// Plan maps the columns of one result-set shape onto the fields of one
// row type. Plans are immutable and safe for concurrent use.
type Plan struct {
	rowType reflect.Type

	// binding[i] is the field for column i, or nil when the column has
	// no matching field and is ignored.
	binding []*Field
}

var planCache sync.Map // planKey -> *Plan

type planKey struct {
	rowType reflect.Type

	// cols is the NUL-joined column list; column names cannot contain
	// NUL, so two distinct lists never share a key.
	cols string
}

// For returns the binding plan for a row type and a column list,
// computing and caching it on first use. Columns are matched to fields
// case-insensitively; columns with no matching field are ignored, and
// fields with no matching column are left at their zero value.
func For(rowType reflect.Type, columns []string) (*Plan, error) {
	if rowType.Kind() != reflect.Struct {
		return nil, fmt.Errorf("cannot map columns onto %s: row type must be a struct", rowType)
	}
	key := planKey{rowType: rowType, cols: strings.Join(columns, "\x00")}
	if v, ok := planCache.Load(key); ok {
		return v.(*Plan), nil
	}

	fields := fieldsForType(rowType)
	plan := &Plan{
		rowType: rowType,
		binding: make([]*Field, len(columns)),
	}
	for i, col := range columns {
		for _, f := range fields {
			if strings.EqualFold(f.Name, col) {
				plan.binding[i] = f
				break
			}
		}
	}

	planCache.Store(key, plan)
	return plan, nil
}

// Scan assigns the raw cell values of one row to the bound fields of
// dest, which must be an addressable value of the plan's row type.
func (p *Plan) Scan(dest reflect.Value, values []any) error {
	if len(values) != len(p.binding) {
		return fmt.Errorf("row has %d cells, plan expects %d", len(values), len(p.binding))
	}
	for i, f := range p.binding {
		if f == nil {
			continue
		}
		cv, err := convert.Value(values[i], f.Type)
		if err != nil {
			return fmt.Errorf("column %q: %w", f.Name, err)
		}
		f.Index.ValueRW(dest).Set(cv)
	}
	return nil
}

var fieldCache sync.Map // reflect.Type -> []*Field

// fieldsForType returns the bindable fields of a row type, descending
// into anonymous embedded structs.
func fieldsForType(rowType reflect.Type) []*Field {
	if v, ok := fieldCache.Load(rowType); ok {
		return v.([]*Field)
	}
	var fields []*Field
	addFields(&fields, rowType, nil)
	fieldCache.Store(rowType, fields)
	return fields
}

func addFields(fields *[]*Field, structType reflect.Type, index Index) {
	for i := 0; i < structType.NumField(); i++ {
		sf := structType.Field(i)
		name := sf.Tag.Get("sql")
		if name == "-" {
			continue
		}
		if sf.PkgPath != "" && !sf.Anonymous {
			// unexported
			continue
		}

		fieldType := sf.Type
		for fieldType.Kind() == reflect.Ptr {
			fieldType = fieldType.Elem()
		}

		if fieldType.Kind() == reflect.Struct && sf.Anonymous && name == "" && fieldType != timeType {
			addFields(fields, fieldType, index.Append(i))
			continue
		}
		if name == "" {
			name = sf.Name
		}
		*fields = append(*fields, &Field{
			Name:  name,
			Index: index.Append(i),
			Type:  sf.Type,
		})
	}
}
