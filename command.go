package dbhelpers

import (
	"fmt"
	"strconv"
	"strings"
)

// Param is a single bound command parameter. A nil Value travels to
// the driver as SQL NULL.
type Param struct {
	Name  string
	Value any
}

// Command is a fully built command: text with driver-native parameter
// markers already substituted, and the bound parameters in declaration
// order. A Command is immutable once built.
type Command struct {
	Text   string
	Params []Param
}

// Explain builds the command a template and argument list would
// execute, without executing it. It is intended for diagnostics and
// tooling.
func Explain(e *Engine, template string, args ...any) (*Command, error) {
	return e.buildCommand(template, args)
}

// buildCommand expands a positional-placeholder template into a
// Command. Each slot {i} in the template is replaced by either the
// literal text of a Literal argument, or a driver-native marker, in
// which case args[i] is bound as a parameter.
//
// Markers are numbered by bound-parameter ordinal, not by slot: the
// first marker in the text always refers to the first bound value, so
// drivers that send values positionally stay aligned with dialects
// that number their markers. A Literal consumes no marker, and a slot
// that appears more than once binds its argument once per occurrence.
//
// When args is empty the template is used verbatim with no formatting
// pass, so templates containing literal braces are usable as long as
// no arguments are supplied.
func (e *Engine) buildCommand(template string, args []any) (*Command, error) {
	if len(args) == 0 {
		return &Command{Text: template}, nil
	}

	var params []Param
	text, err := expandTemplate(template, func(slot int) (string, error) {
		if slot < 0 || slot >= len(args) {
			return "", fmt.Errorf("%w: slot {%d} has no argument (%d supplied)", ErrInvalidTemplate, slot, len(args))
		}
		if lit, ok := args[slot].(Literal); ok {
			return string(lit), nil
		}
		marker, err := e.placeholder(len(params))
		if err != nil {
			return "", err
		}
		params = append(params, Param{Name: marker, Value: args[slot]})
		return marker, nil
	})
	if err != nil {
		return nil, err
	}
	return &Command{Text: text, Params: params}, nil
}

// expandTemplate replaces each {i} slot in the template with the text
// returned by sub(i). Doubled braces escape a literal brace, as in
// "{{" and "}}".
func expandTemplate(template string, sub func(slot int) (string, error)) (string, error) {
	var buf strings.Builder
	buf.Grow(len(template))
	for i := 0; i < len(template); i++ {
		c := template[i]
		switch c {
		case '{':
			if i+1 < len(template) && template[i+1] == '{' {
				buf.WriteByte('{')
				i++
				continue
			}
			end := strings.IndexByte(template[i:], '}')
			if end < 0 {
				return "", fmt.Errorf("%w: unterminated slot at offset %d", ErrInvalidTemplate, i)
			}
			slot, err := strconv.Atoi(template[i+1 : i+end])
			if err != nil {
				return "", fmt.Errorf("%w: malformed slot %q", ErrInvalidTemplate, template[i:i+end+1])
			}
			text, err := sub(slot)
			if err != nil {
				return "", err
			}
			buf.WriteString(text)
			i += end
		case '}':
			if i+1 < len(template) && template[i+1] == '}' {
				i++
			}
			buf.WriteByte('}')
		default:
			buf.WriteByte(c)
		}
	}
	return buf.String(), nil
}
