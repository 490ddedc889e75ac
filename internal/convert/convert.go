// Package convert parses digit strings into arbitrary-precision
// magnitudes and formats them back out in any supported base.
//
// Magnitudes are unbounded: values well past 64 bits convert exactly.
package convert

import (
	"math/big"

	"changebase/internal/base"
	"changebase/internal/errors"
)

// Magnitude is a non-negative integer of unbounded size.  The zero value
// is 0.  A Magnitude is never mutated after construction.
type Magnitude struct {
	n *big.Int
}

// FromUint64 returns the Magnitude equal to v.
func FromUint64(v uint64) Magnitude {
	return Magnitude{n: new(big.Int).SetUint64(v)}
}

func (m Magnitude) bigInt() *big.Int {
	if m.n == nil {
		return new(big.Int)
	}
	return m.n
}

// Cmp compares m and o and returns -1, 0 or +1.
func (m Magnitude) Cmp(o Magnitude) int { return m.bigInt().Cmp(o.bigInt()) }

// Equal reports whether m and o hold the same value.
func (m Magnitude) Equal(o Magnitude) bool { return m.Cmp(o) == 0 }

// IsZero reports whether m is 0.
func (m Magnitude) IsZero() bool { return m.bigInt().Sign() == 0 }

// BitLen returns the number of significant bits; 0 for zero.
func (m Magnitude) BitLen() int { return m.bigInt().BitLen() }

func (m Magnitude) String() string { return Format(m, base.Decimal) }

// Parse reads digits as a number in base b.  Every character must be a
// legal digit for b (hex letters in either case); no prefix, sign or
// separator is accepted.
func Parse(digits string, b base.Base) (Magnitude, error) {
	if digits == "" {
		return Magnitude{}, errors.EmptyInput(b)
	}
	radix := b.Radix()
	r := big.NewInt(int64(radix))
	n := new(big.Int)
	d := new(big.Int)
	for i, c := range digits {
		v := digitValue(c)
		if v < 0 || v >= radix {
			return Magnitude{}, errors.InvalidDigit(digits, b, c, i)
		}
		n.Mul(n, r)
		n.Add(n, d.SetInt64(int64(v)))
	}
	return Magnitude{n: n}, nil
}

// Format renders m in base b, most significant digit first, using
// lowercase hex digits.  Zero renders as "0".  An invalid b formats as
// Decimal.
func Format(m Magnitude, b base.Base) string {
	if !b.Valid() {
		b = base.Decimal
	}
	n := m.bigInt()
	if n.Sign() == 0 {
		return "0"
	}
	radix := big.NewInt(int64(b.Radix()))
	q := new(big.Int).Set(n)
	rem := new(big.Int)

	buf := make([]byte, 0, n.BitLen()/bitsPerDigit(b)+1)
	for q.Sign() > 0 {
		q.QuoRem(q, radix, rem)
		buf = append(buf, digitChars[rem.Int64()])
	}
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return string(buf)
}

const digitChars = "0123456789abcdef"

// digitValue returns the value of c as a hex digit, or -1.
func digitValue(c rune) int {
	switch {
	case '0' <= c && c <= '9':
		return int(c - '0')
	case 'a' <= c && c <= 'f':
		return int(c-'a') + 10
	case 'A' <= c && c <= 'F':
		return int(c-'A') + 10
	default:
		return -1
	}
}

// bitsPerDigit sizes the output buffer; it never underestimates the
// digit count.
func bitsPerDigit(b base.Base) int {
	switch b {
	case base.Binary:
		return 1
	case base.Octal:
		return 3
	case base.Hexadecimal:
		return 4
	default:
		return 3
	}
}
