package graph

import "testing"

func TestUnmarshalDecimal_AcceptsFormattedStrings(t *testing.T) {
	cases := []struct {
		in       string
		expected string
	}{
		{"20000", "20000"},
		{"20,000", "20000"},
		{"USD 20,000", "20000"},
		{"USD -20,000", "-20000"},
		{"  $ 1,234.50  ", "1234.5"},
	}
	for _, tc := range cases {
		d, err := UnmarshalDecimal(tc.in)
		if err != nil {
			t.Fatalf("UnmarshalDecimal(%q) error: %v", tc.in, err)
		}
		if d.String() != tc.expected {
			t.Fatalf("UnmarshalDecimal(%q) expected %s, got %s", tc.in, tc.expected, d.String())
		}
	}
}

func TestUnmarshalDecimal_RejectsGarbage(t *testing.T) {
	if _, err := UnmarshalDecimal("USD"); err == nil {
		t.Fatal("expected error for value with no digits")
	}
	if _, err := UnmarshalDecimal(42); err == nil {
		t.Fatal("expected error for unsupported type")
	}
}
