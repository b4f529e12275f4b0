package object

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/roach88/helpers/internal/value"
)

// Objectify returns a JSON-clean copy of v by encoding and decoding it.
// Undefined, functions and symbols disappear from records and become null
// in arrays; non-finite numbers become null. BigInt values are an error.
func Objectify(v value.Value) (value.Value, error) {
	data, err := value.MarshalJSON(v)
	if err != nil {
		return nil, fmt.Errorf("objectify: %w", err)
	}
	out, err := value.DecodeJSON(data)
	if err != nil {
		return nil, fmt.Errorf("objectify: %w", err)
	}
	return out, nil
}

// DefaultPadWidth is the width Pad uses when none is given.
const DefaultPadWidth = 2

// Pad left-pads the decimal form of n with zeros to width characters.
// A minus sign stays in front and counts toward the width.
func Pad(n int64, width int) string {
	if width <= 0 {
		width = DefaultPadWidth
	}
	digits := strconv.FormatInt(n, 10)
	sign := ""
	if n < 0 {
		sign, digits = "-", digits[1:]
	}
	if fill := width - len(sign) - len(digits); fill > 0 {
		digits = strings.Repeat("0", fill) + digits
	}
	return sign + digits
}
