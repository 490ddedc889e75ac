package convert

import (
	"math/rand"
	"strings"
	"testing"

	"changebase/internal/base"
	"changebase/internal/errors"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name   string
		digits string
		in     base.Base
		out    base.Base
		want   string
	}{
		{"dec to hex", "255", base.Decimal, base.Hexadecimal, "ff"},
		{"dec to bin", "42", base.Decimal, base.Binary, "101010"},
		{"dec to oct", "64", base.Decimal, base.Octal, "100"},
		{"hex to dec", "ff", base.Hexadecimal, base.Decimal, "255"},
		{"upper hex to dec", "FF", base.Hexadecimal, base.Decimal, "255"},
		{"bin to dec", "11111111", base.Binary, base.Decimal, "255"},
		{"oct to dec", "377", base.Octal, base.Decimal, "255"},
		{"oct to bin", "755", base.Octal, base.Binary, "111101101"},
		{"ip octet", "192", base.Decimal, base.Hexadecimal, "c0"},
		{"memory address", "deadbeef", base.Hexadecimal, base.Decimal, "3735928559"},
		{"leading zeros", "0008", base.Decimal, base.Binary, "1000"},
		{"u64 max", "18446744073709551615", base.Decimal, base.Hexadecimal, "ffffffffffffffff"},
		{"beyond u64", "18446744073709551616", base.Decimal, base.Hexadecimal, "10000000000000000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Parse(tt.digits, tt.in)
			if err != nil {
				t.Fatalf("Parse(%q, %v): %v", tt.digits, tt.in, err)
			}
			if got := Format(m, tt.out); got != tt.want {
				t.Errorf("Format = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParse_256Bit(t *testing.T) {
	m, err := Parse(strings.Repeat("f", 64), base.Hexadecimal)
	if err != nil {
		t.Fatal(err)
	}
	if m.BitLen() != 256 {
		t.Errorf("BitLen = %d, want 256", m.BitLen())
	}
	if got := Format(m, base.Binary); got != strings.Repeat("1", 256) {
		t.Errorf("expected 256 ones, got %q", got)
	}
}

func TestParse_InvalidDigit(t *testing.T) {
	tests := []struct {
		digits    string
		b         base.Base
		wantDigit rune
		wantPos   int
	}{
		{"18", base.Octal, '8', 1},
		{"102", base.Binary, '2', 2},
		{"12a", base.Decimal, 'a', 2},
		{"xyz", base.Hexadecimal, 'x', 0},
		{"0xff", base.Decimal, 'x', 1},
		{"1 0", base.Decimal, ' ', 1},
		{"-5", base.Decimal, '-', 0},
		{"1.5", base.Decimal, '.', 1},
		{"fg", base.Hexadecimal, 'g', 1},
	}
	for _, tt := range tests {
		t.Run(tt.b.Short()+"/"+tt.digits, func(t *testing.T) {
			_, err := Parse(tt.digits, tt.b)
			var ide *errors.InvalidDigitError
			if !errors.As(err, &ide) {
				t.Fatalf("expected InvalidDigitError, got %v", err)
			}
			if ide.Digit != tt.wantDigit || ide.Pos != tt.wantPos {
				t.Errorf("got digit %q at %d, want %q at %d", ide.Digit, ide.Pos, tt.wantDigit, tt.wantPos)
			}
			if ide.Base != tt.b {
				t.Errorf("Base = %v, want %v", ide.Base, tt.b)
			}
			if errors.Is(err, errors.ErrEmptyInput) {
				t.Error("non-empty input should not match ErrEmptyInput")
			}
		})
	}
}

func TestParse_Empty(t *testing.T) {
	for _, b := range base.All {
		t.Run(b.Short(), func(t *testing.T) {
			_, err := Parse("", b)
			if !errors.Is(err, errors.ErrEmptyInput) {
				t.Errorf("expected ErrEmptyInput, got %v", err)
			}
			var ide *errors.InvalidDigitError
			if !errors.As(err, &ide) {
				t.Error("empty input should also be an InvalidDigitError")
			}
		})
	}
}

func TestFormat_Zero(t *testing.T) {
	var zero Magnitude
	for _, b := range base.All {
		if got := Format(zero, b); got != "0" {
			t.Errorf("Format(0, %v) = %q, want \"0\"", b, got)
		}
		if got := Format(FromUint64(0), b); got != "0" {
			t.Errorf("Format(FromUint64(0), %v) = %q, want \"0\"", b, got)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		digits string
		b      base.Base
		want   string
	}{
		{"0", base.Decimal, "0"},
		{"0000", base.Binary, "0"},
		{"00101", base.Binary, "101"},
		{"0777", base.Octal, "777"},
		{"007", base.Decimal, "7"},
		{"00DeadBeef", base.Hexadecimal, "deadbeef"},
		{"123456789012345678901234567890", base.Decimal, "123456789012345678901234567890"},
	}
	for _, tt := range tests {
		t.Run(tt.digits, func(t *testing.T) {
			m, err := Parse(tt.digits, tt.b)
			if err != nil {
				t.Fatal(err)
			}
			if got := Format(m, tt.b); got != tt.want {
				t.Errorf("round trip %q = %q, want %q", tt.digits, got, tt.want)
			}
		})
	}
}

// TestCrossBase checks that every base's rendering of a value parses
// back to the same magnitude, over random values of up to 200 digits.
func TestCrossBase(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		n := 1 + rng.Intn(200)
		var sb strings.Builder
		for j := 0; j < n; j++ {
			sb.WriteByte(digitChars[rng.Intn(10)])
		}
		m, err := Parse(sb.String(), base.Decimal)
		if err != nil {
			t.Fatal(err)
		}
		for _, b := range base.All {
			back, err := Parse(Format(m, b), b)
			if err != nil {
				t.Fatalf("reparse in %v: %v", b, err)
			}
			if !back.Equal(m) {
				t.Fatalf("%s: %v round trip = %s", sb.String(), b, back)
			}
		}
	}
}

func TestMagnitude(t *testing.T) {
	a := FromUint64(10)
	b := FromUint64(11)
	if a.Cmp(b) != -1 || b.Cmp(a) != 1 || a.Cmp(a) != 0 {
		t.Error("Cmp ordering wrong")
	}
	if a.Equal(b) {
		t.Error("10 should not equal 11")
	}
	if !(Magnitude{}).IsZero() || a.IsZero() {
		t.Error("IsZero wrong")
	}
	if a.String() != "10" {
		t.Errorf("String() = %q", a.String())
	}
	if (Magnitude{}).BitLen() != 0 || FromUint64(255).BitLen() != 8 {
		t.Error("BitLen wrong")
	}
}
