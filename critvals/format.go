package critvals

import (
	"fmt"
	"strconv"
	"strings"
)

// Format selects how table entries are printed.
type Format int

const (
	// FormatSig prints a fixed number of significant digits, zero padded.
	FormatSig Format = iota
	// FormatDec prints a fixed number of decimal places.
	FormatDec
)

// String implements fmt.Stringer.
func (f Format) String() string {
	switch f {
	case FormatSig:
		return "sig"
	case FormatDec:
		return "dec"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ParseFormat maps "sig" / "dec" to a Format.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "sig":
		return FormatSig, nil
	case "dec":
		return FormatDec, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrFormat, s)
	}
}

// FormatValue renders x with the given number of digits.
//
// FormatDec uses exactly digits decimal places. FormatSig uses %g with digits
// significant digits and then pads with trailing zeros (adding a decimal
// point when needed) so the result always shows digits significant figures;
// exponent notation is returned unchanged.
func FormatValue(x float64, digits int, f Format) string {
	if f == FormatDec {
		return strconv.FormatFloat(x, 'f', digits, 64)
	}

	s := strconv.FormatFloat(x, 'g', digits, 64)
	if strings.ContainsAny(s, "eE") {
		return s
	}
	core := strings.NewReplacer(".", "", "-", "").Replace(s)
	sig := len(strings.TrimLeft(core, "0"))
	if sig < digits {
		if !strings.Contains(s, ".") {
			s += "."
		}
		s += strings.Repeat("0", digits-sig)
	}

	return s
}

// formatAlpha prints an α header the way %g with six significant digits does.
func formatAlpha(a float64) string {
	return strconv.FormatFloat(a, 'g', 6, 64)
}
