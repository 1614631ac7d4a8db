package isoepoch

import (
	"strings"

	"github.com/cockroachdb/apd/v3"
)

// truncateContext performs decimal arithmetic with enough precision for the
// fractional bounds this package supports (at most 9 digits of sub-second
// precision, combined through a handful of additions and one multiplication),
// truncating — never rounding — toward zero. Binary floating point never
// enters this path; exact fractional seconds and zone offsets matter more
// than raw speed here.
var truncateContext = &apd.Context{
	Precision:   40,
	MaxExponent: apd.MaxExponent,
	MinExponent: apd.MinExponent,
	Rounding:    apd.RoundDown,
}

// decimal wraps apd.Decimal so the rest of the pipeline never has to convert
// a fractional time-of-day or zone offset into binary floating point before
// the final emit step.
type decimal struct {
	v apd.Decimal
}

func zeroDecimal() *decimal {
	return &decimal{}
}

// fractionFromDigits parses a digit string as the fractional value 0.<digits>.
// An empty string is zero.
func fractionFromDigits(digits string) *decimal {
	d := &decimal{}
	if digits == "" {
		return d
	}
	if _, _, err := truncateContext.SetString(&d.v, "0."+digits); err != nil {
		panic("isoepoch: invalid fraction digits " + digits)
	}
	return d
}

func decimalFromInt(v int64) *decimal {
	d := &decimal{}
	d.v.SetInt64(v)
	return d
}

func (d *decimal) add(o *decimal) *decimal {
	out := &decimal{}
	if _, err := truncateContext.Add(&out.v, &d.v, &o.v); err != nil {
		panic(err.Error())
	}
	return out
}

func (d *decimal) sub(o *decimal) *decimal {
	out := &decimal{}
	if _, err := truncateContext.Sub(&out.v, &d.v, &o.v); err != nil {
		panic(err.Error())
	}
	return out
}

func (d *decimal) mulInt(n int64) *decimal {
	out := &decimal{}
	var m apd.Decimal
	m.SetInt64(n)
	if _, err := truncateContext.Mul(&out.v, &d.v, &m); err != nil {
		panic(err.Error())
	}
	return out
}

// negative reports whether d is strictly less than zero.
func (d *decimal) negative() bool {
	return d.v.Negative && !d.v.IsZero()
}

// truncate truncates d's fractional part toward zero to at most digits
// decimal places. The returned decimal always carries exactly that many
// fractional digits in its internal representation (possibly trailing
// zeros), which splitTruncated below turns into a digit string.
func (d *decimal) truncate(digits int32) *decimal {
	out := &decimal{}
	if _, err := truncateContext.Quantize(&out.v, &d.v, -digits); err != nil {
		panic(err.Error())
	}
	return out
}

// splitTruncated truncates d toward zero to the given number of fractional
// digits and splits the result into its integer magnitude, its fractional
// digit string (exactly `digits` characters, no trimming), and its sign.
func (d *decimal) splitTruncated(digits int32) (whole int64, fracDigits string, neg bool) {
	t := d.truncate(digits)

	coeff := t.v.Coeff.String()
	if int32(len(coeff)) < digits {
		coeff = strings.Repeat("0", int(digits)-len(coeff)) + coeff
	}

	intLen := len(coeff) - int(digits)
	intStr, frac := coeff[:intLen], coeff[intLen:]

	var w int64
	for i := 0; i < len(intStr); i++ {
		w = w*10 + int64(intStr[i]-'0')
	}

	return w, frac, t.v.Negative && !t.v.IsZero()
}

// cmpAbsGE reports whether |d| >= n.
func (d *decimal) cmpAbsGE(n int64) bool {
	var limit, abs apd.Decimal
	limit.SetInt64(n)
	abs.Abs(&d.v)
	return abs.Cmp(&limit) >= 0
}
