package base

import "strings"

// Detect infers the base of raw and returns it together with the digit
// string left after removing a recognised prefix.
//
// Prefixes win over content; without one, any letter a-f selects
// Hexadecimal and everything else is Decimal.  Detect never fails: an
// empty or malformed digit string is left for the parser to reject.
func Detect(raw string) (Base, string) {
	for _, b := range [...]Base{Binary, Octal, Hexadecimal} {
		if hasPrefix(raw, b) {
			return b, raw[len(b.Prefix()):]
		}
	}
	if strings.ContainsAny(raw, "abcdefABCDEF") {
		return Hexadecimal, raw
	}
	return Decimal, raw
}

// Strip removes b's own prefix from raw if present.  It is used when the
// caller declared the base explicitly, so a foreign prefix ("0x" under
// Decimal) is left in place for the parser to reject.
func Strip(raw string, b Base) string {
	if hasPrefix(raw, b) {
		return raw[len(b.Prefix()):]
	}
	return raw
}

func hasPrefix(raw string, b Base) bool {
	p := b.Prefix()
	return p != "" && len(raw) >= len(p) && strings.EqualFold(raw[:len(p)], p)
}
