package dbhelpers

import (
	"fmt"
)

// Page restricts a cursor-shaped materialization to a window of rows:
// Skip rows are advanced past and discarded, then at most Take rows
// are materialized. A Take of zero or less means all remaining rows.
// The zero Page selects every row.
type Page struct {
	Skip int
	Take int
}

// WalkCursor advances past page.Skip rows, stopping silently if the
// cursor is exhausted first, then invokes visit for at most page.Take
// rows (all remaining rows when page.Take <= 0). Every materialization
// shape, and any driver implementing a bulk table fill, applies its
// paging through this one function.
func WalkCursor(cur Cursor, page Page, visit func(Cursor) error) error {
	if page.Skip < 0 {
		return fmt.Errorf("%w: negative skip %d", ErrInvalidArgument, page.Skip)
	}
	for n := 0; n < page.Skip; n++ {
		if !cur.Next() {
			return cur.Err()
		}
	}
	for n := 0; page.Take <= 0 || n < page.Take; n++ {
		if !cur.Next() {
			break
		}
		if err := visit(cur); err != nil {
			return err
		}
	}
	return cur.Err()
}
