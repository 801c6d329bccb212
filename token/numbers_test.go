package token

import (
	"errors"
	"testing"
)

func TestScanNumber(t *testing.T) {
	tests := []struct {
		in  string
		n   int
		err error
	}{
		{"0", 1, nil},
		{"-0", 2, nil},
		{"12", 2, nil},
		{"12,", 2, nil},
		{"-3.25", 5, nil},
		{"1e10", 4, nil},
		{"1E-7]", 4, nil},
		{"6.02e+23", 8, nil},
		{"0.5", 3, nil},
		{"01", 1, ErrNumberLeadingZero},
		{"-", 0, ErrNumber},
		{"+1", 0, ErrNumber},
		{".5", 0, ErrNumber},
		{"1.", 1, ErrNumber},
		{"1e", 1, ErrNumber},
		{"1e+", 1, ErrNumber},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			n, err := ScanNumber(tt.in)
			if !errors.Is(err, tt.err) {
				t.Fatalf("ScanNumber(%q) error %v, want %v", tt.in, err, tt.err)
			}
			if n != tt.n {
				t.Errorf("ScanNumber(%q) = %d, want %d", tt.in, n, tt.n)
			}
		})
	}
}

func TestIsNumber(t *testing.T) {
	for _, in := range []string{"0", "-1", "3.14", "1e9", "-0.0E-0"} {
		if !IsNumber(in) {
			t.Errorf("IsNumber(%q) = false", in)
		}
	}
	for _, in := range []string{"", "1 ", "0x10", "NaN", "1,", "--1", "007"} {
		if IsNumber(in) {
			t.Errorf("IsNumber(%q) = true", in)
		}
	}
}

func TestNumberPrefix(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"42", "42"},
		{"  42abc", "42"},
		{"+7", "+7"},
		{"-1.5e3x", "-1.5e3"},
		{"1e", "1"},
		{".5", ".5"},
		{"007", "007"},
		{"abc", ""},
		{"", ""},
		{"-", ""},
	}
	for _, tt := range tests {
		if got := NumberPrefix(tt.in); got != tt.want {
			t.Errorf("NumberPrefix(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
