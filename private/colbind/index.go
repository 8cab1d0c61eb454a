package colbind

import (
	"reflect"
)

// Index locates a field within a row struct. In most cases it is a
// single integer; fields of embedded structs need one integer per
// level.
type Index []int

// Append returns a new index with one more level. The original index
// is unchanged.
func (ix Index) Append(i int) Index {
	clone := make(Index, len(ix), len(ix)+1)
	copy(clone, ix)
	return append(clone, i)
}

// ValueRW returns the field value within the struct v, allocating any
// nil pointers along the way so the result is settable.
func (ix Index) ValueRW(v reflect.Value) reflect.Value {
	for _, i := range ix {
		if v.Kind() == reflect.Ptr && v.IsNil() {
			v.Set(reflect.New(v.Type().Elem()))
		}
		v = reflect.Indirect(v).Field(i)
	}
	return v
}
