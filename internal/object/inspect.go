package object

import (
	"fmt"
	"io"
	"math"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/roach88/helpers/internal/value"
)

// DefaultInspectDepth is how many levels of nesting Inspect expands.
const DefaultInspectDepth = 5

// defaultBreakLength is the width above which containers span lines.
const defaultBreakLength = 80

// InspectOption configures Inspect and Fprint.
type InspectOption func(*inspectConfig)

type inspectConfig struct {
	depth       int
	showHidden  bool
	colors      bool
	breakLength int
}

// WithDepth sets how many levels of nesting to expand. Deeper records print
// as [Object] and deeper arrays as [Array]. A negative depth expands
// everything, up to DefaultMaxDepth.
func WithDepth(n int) InspectOption {
	return func(c *inspectConfig) {
		c.depth = n
	}
}

// WithShowHidden adds each array's [length] to the output.
func WithShowHidden() InspectOption {
	return func(c *inspectConfig) {
		c.showHidden = true
	}
}

// WithColors styles values with ANSI escape codes.
func WithColors() InspectOption {
	return func(c *inspectConfig) {
		c.colors = true
	}
}

// WithBreakLength sets the line width above which containers are split
// over several lines. Values <= 0 are ignored.
func WithBreakLength(n int) InspectOption {
	return func(c *inspectConfig) {
		if n > 0 {
			c.breakLength = n
		}
	}
}

// Inspect renders v for humans, in the style of node's util.inspect.
// The output is deterministic: records print in insertion order.
func Inspect(v value.Value, opts ...InspectOption) string {
	cfg := inspectConfig{depth: DefaultInspectDepth, breakLength: defaultBreakLength}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.depth < 0 || cfg.depth > DefaultMaxDepth {
		cfg.depth = DefaultMaxDepth
	}
	in := &inspector{cfg: cfg}
	return in.format(v, 0, "")
}

// Fprint writes Inspect(v) and a newline to w.
func Fprint(w io.Writer, v value.Value, opts ...InspectOption) error {
	_, err := fmt.Fprintln(w, Inspect(v, opts...))
	return err
}

type style struct {
	open, close string
}

var (
	styleYellow = style{"\x1b[33m", "\x1b[39m"}
	styleGreen  = style{"\x1b[32m", "\x1b[39m"}
	styleGrey   = style{"\x1b[90m", "\x1b[39m"}
	styleBold   = style{"\x1b[1m", "\x1b[22m"}
	styleCyan   = style{"\x1b[36m", "\x1b[39m"}
)

var (
	ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*m`)
	identifier  = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)
)

type inspector struct {
	cfg   inspectConfig
	// stack holds the containers being rendered: *value.Object for records
	// and the address of the first element for arrays.
	stack []any
}

func (in *inspector) stylize(s string, st style) string {
	if !in.cfg.colors {
		return s
	}
	return st.open + s + st.close
}

func (in *inspector) format(v value.Value, level int, indent string) string {
	switch val := v.(type) {
	case nil, value.Undefined:
		return in.stylize("undefined", styleGrey)
	case value.Null:
		return in.stylize("null", styleBold)
	case value.Bool:
		return in.stylize(strconv.FormatBool(bool(val)), styleYellow)
	case value.Number:
		return in.stylize(inspectNumber(float64(val)), styleYellow)
	case value.BigInt:
		return in.stylize(val.String()+"n", styleYellow)
	case value.String:
		return in.stylize(quoteSingle(string(val)), styleGreen)
	case *value.Symbol:
		return in.stylize("Symbol("+val.Description+")", styleGreen)
	case value.Func:
		return in.stylize("[Function (anonymous)]", styleCyan)
	case value.Array:
		if len(val) > 0 && slices.Contains(in.stack, any(&val[0])) {
			return in.stylize("[Circular]", styleCyan)
		}
		if level > in.cfg.depth {
			return in.stylize("[Array]", styleCyan)
		}
		if len(val) > 0 {
			in.stack = append(in.stack, &val[0])
			defer func() { in.stack = in.stack[:len(in.stack)-1] }()
		}
		items := make([]string, 0, len(val)+1)
		for _, elem := range val {
			items = append(items, in.format(elem, level+1, indent+"  "))
		}
		if in.cfg.showHidden {
			items = append(items, "[length]: "+in.stylize(strconv.Itoa(len(val)), styleYellow))
		}
		return in.join("[", "]", items, indent)
	case *value.Object:
		if val == nil {
			return in.stylize("null", styleBold)
		}
		if slices.Contains(in.stack, any(val)) {
			return in.stylize("[Circular]", styleCyan)
		}
		if level > in.cfg.depth {
			return in.stylize("[Object]", styleCyan)
		}
		in.stack = append(in.stack, val)
		defer func() { in.stack = in.stack[:len(in.stack)-1] }()

		items := make([]string, 0, val.Len())
		val.Range(func(k string, elem value.Value) bool {
			items = append(items, in.formatKey(k)+": "+in.format(elem, level+1, indent+"  "))
			return true
		})
		return in.join("{", "}", items, indent)
	}
	return fmt.Sprintf("%v", v)
}

func (in *inspector) formatKey(k string) string {
	if identifier.MatchString(k) {
		return k
	}
	return in.stylize(quoteSingle(k), styleGreen)
}

// join lays items out on one line when they fit within the break length,
// otherwise one item per line.
func (in *inspector) join(open, close string, items []string, indent string) string {
	if len(items) == 0 {
		return open + close
	}
	single := open + " " + strings.Join(items, ", ") + " " + close
	if !strings.Contains(single, "\n") && len(indent)+visibleLen(single) <= in.cfg.breakLength {
		return single
	}
	inner := indent + "  "
	var buf strings.Builder
	buf.WriteString(open)
	buf.WriteByte('\n')
	for i, item := range items {
		buf.WriteString(inner)
		buf.WriteString(item)
		if i < len(items)-1 {
			buf.WriteByte(',')
		}
		buf.WriteByte('\n')
	}
	buf.WriteString(indent)
	buf.WriteString(close)
	return buf.String()
}

func visibleLen(s string) int {
	return utf8.RuneCountInString(ansiPattern.ReplaceAllString(s, ""))
}

func inspectNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0 && math.Signbit(f):
		return "-0"
	}
	data, err := value.MarshalJSON(value.Number(f))
	if err != nil {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	return string(data)
}

// quoteSingle quotes s with single quotes, escaping quotes, backslashes and
// control characters.
func quoteSingle(s string) string {
	var buf strings.Builder
	buf.WriteByte('\'')
	for _, r := range s {
		switch r {
		case '\'':
			buf.WriteString(`\'`)
		case '\\':
			buf.WriteString(`\\`)
		case '\n':
			buf.WriteString(`\n`)
		case '\t':
			buf.WriteString(`\t`)
		case '\r':
			buf.WriteString(`\r`)
		default:
			if r < 0x20 || r == 0x7f {
				fmt.Fprintf(&buf, `\x%02X`, r)
			} else {
				buf.WriteRune(r)
			}
		}
	}
	buf.WriteByte('\'')
	return buf.String()
}
