package jsonutil

import "testing"

func TestEncodeDecodeRoundTrip(t *testing.T) {
	for _, tc := range []struct {
		sym byte
		eps bool
	}{
		{0, true},
		{'a', false},
		{'(', false},
	} {
		encoded := EncodeSymbol(tc.sym, tc.eps)
		sym, eps := DecodeSymbol(encoded)
		if eps != tc.eps {
			t.Errorf("DecodeSymbol(%q).eps = %v, want %v", encoded, eps, tc.eps)
		}
		if !eps && sym != tc.sym {
			t.Errorf("DecodeSymbol(%q).sym = %q, want %q", encoded, sym, tc.sym)
		}
	}
}

func TestEpsilonRendersAsUTF8Marker(t *testing.T) {
	if got := EncodeSymbol(0, true); got != "ε" {
		t.Errorf("EncodeSymbol(0, true) = %q, want %q", got, "ε")
	}
}
