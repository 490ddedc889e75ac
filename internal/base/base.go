// Package base defines the four supported numeral systems and the
// detector that infers one from a raw value.
package base

import "strings"

// Base is one of the supported numeral systems.  The zero value,
// Unspecified, means "not given by the caller".
type Base int

const (
	Unspecified Base = iota
	Binary
	Octal
	Decimal
	Hexadecimal
)

// All lists every supported base in display order.
var All = [...]Base{Binary, Octal, Decimal, Hexadecimal} //nolint:gochecknoglobals

// Radix returns the numeric radix (2, 8, 10 or 16), or 0 for Unspecified.
func (b Base) Radix() int {
	switch b {
	case Binary:
		return 2
	case Octal:
		return 8
	case Decimal:
		return 10
	case Hexadecimal:
		return 16
	default:
		return 0
	}
}

// Prefix returns the conventional literal prefix.  Decimal has none.
func (b Base) Prefix() string {
	switch b {
	case Binary:
		return "0b"
	case Octal:
		return "0o"
	case Hexadecimal:
		return "0x"
	default:
		return ""
	}
}

// Label returns the full name, e.g. "Hexadecimal".
func (b Base) Label() string {
	switch b {
	case Binary:
		return "Binary"
	case Octal:
		return "Octal"
	case Decimal:
		return "Decimal"
	case Hexadecimal:
		return "Hexadecimal"
	default:
		return "Unspecified"
	}
}

// Short returns the three-letter name used on the command line and in
// all-bases output, e.g. "hex".
func (b Base) Short() string {
	switch b {
	case Binary:
		return "bin"
	case Octal:
		return "oct"
	case Decimal:
		return "dec"
	case Hexadecimal:
		return "hex"
	default:
		return ""
	}
}

func (b Base) String() string { return b.Short() }

// Valid reports whether b is one of the four supported bases.
func (b Base) Valid() bool { return b >= Binary && b <= Hexadecimal }

// Parse maps a case-insensitive short name ("bin", "OCT", …) to a Base.
func Parse(name string) (Base, bool) {
	n := strings.ToLower(strings.TrimSpace(name))
	for _, b := range All {
		if b.Short() == n {
			return b, true
		}
	}
	return Unspecified, false
}
