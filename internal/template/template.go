// Package template renders activity line templates. A template is plain
// text with zero or more {{ expression }} placeholders; expressions are a
// bounded grammar (literals, identifiers, member access, equality, +,
// ternary) evaluated against a read-only bindings map, never executed as
// code.
package template

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Render substitutes every placeholder in tpl with its evaluated value.
// Malformed expression syntax or an unknown identifier is an error; the
// caller treats it as fatal for the run.
func Render(tpl string, vars map[string]any) (string, error) {
	var b strings.Builder
	rest := tpl
	for {
		i := strings.Index(rest, "{{")
		if i < 0 {
			b.WriteString(rest)
			return b.String(), nil
		}
		b.WriteString(rest[:i])
		rest = rest[i+2:]

		j := strings.Index(rest, "}}")
		if j < 0 {
			return "", fmt.Errorf("unterminated placeholder in template %q", tpl)
		}
		expr := strings.TrimSpace(rest[:j])
		rest = rest[j+2:]

		n, err := parse(expr)
		if err != nil {
			return "", fmt.Errorf("invalid expression %q: %w", expr, err)
		}
		v, err := n.eval(vars)
		if err != nil {
			return "", fmt.Errorf("evaluating %q: %w", expr, err)
		}
		b.WriteString(stringify(v))
	}
}

// stringify converts an evaluated value to its string form. Absent values
// render as the empty string; structured values render as JSON.
func stringify(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case int:
		return strconv.Itoa(x)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	default:
		b, err := json.Marshal(x)
		if err != nil {
			return fmt.Sprintf("%v", x)
		}
		return string(b)
	}
}
