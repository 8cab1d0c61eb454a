package dbhelpers

import (
	"fmt"
	"strconv"
	"strings"
)

// representativeIndex is rendered once per engine to discover the
// driver's placeholder syntax. The value is arbitrary but large enough
// that its decimal text cannot occur in the marker's punctuation.
const representativeIndex = 348

// placeholderFormat is the discovered shape of a driver's native
// parameter marker. It is immutable after discovery.
type placeholderFormat struct {
	prefix  string
	suffix  string
	indexed bool // marker embeds the parameter index
	offset  int  // added to the index when rendering (1 for 1-based dialects)
}

func (f placeholderFormat) render(index int) string {
	if !f.indexed {
		return f.prefix
	}
	return f.prefix + strconv.Itoa(index+f.offset) + f.suffix
}

// derivePlaceholderFormat abstracts the index out of a marker rendered
// for representativeIndex. Dialects that number their markers from 1
// (eg PostgreSQL) render representativeIndex+1, which is detected and
// recorded as an offset. Markers that do not embed the index at all
// (eg "?") become a constant format.
func derivePlaceholderFormat(marker string) placeholderFormat {
	for _, c := range []struct {
		text   string
		offset int
	}{
		{strconv.Itoa(representativeIndex), 0},
		{strconv.Itoa(representativeIndex + 1), 1},
	} {
		if n := strings.Index(marker, c.text); n >= 0 {
			return placeholderFormat{
				prefix:  marker[:n],
				suffix:  marker[n+len(c.text):],
				indexed: true,
				offset:  c.offset,
			}
		}
	}
	return placeholderFormat{prefix: marker}
}

// placeholder returns the driver-native marker for the given
// zero-based parameter index. The driver is consulted exactly once per
// engine; discovery failure is terminal for the engine and reported on
// every subsequent call.
func (e *Engine) placeholder(index int) (string, error) {
	e.ph.once.Do(func() {
		marker, err := e.driver.RenderPlaceholder(representativeIndex)
		if err != nil {
			e.ph.err = fmt.Errorf("%w: cannot render placeholder: %v", ErrUnsupportedDriver, err)
			return
		}
		e.ph.format = derivePlaceholderFormat(marker)
	})
	if e.ph.err != nil {
		return "", e.ph.err
	}
	return e.ph.format.render(index), nil
}
