// Package jsonutil holds the small conventions shared by every automaton's
// ToJSON/FromJSON pair (spec.md §4.7): symbols render as a one-character
// string, epsilon renders as the UTF-8 string "ε". Control-character
// escaping itself is left to encoding/json, which already escapes bytes
// below 0x20 as \u00XX.
package jsonutil

const epsilonSymbol = "ε"

// EncodeSymbol renders sym as spec.md §4.7 requires: "ε" if eps is set,
// otherwise the single byte sym as a one-character string.
func EncodeSymbol(sym byte, eps bool) string {
	if eps {
		return epsilonSymbol
	}
	return string([]byte{sym})
}

// DecodeSymbol is EncodeSymbol's inverse. An empty string decodes to the
// zero byte with eps false; callers that must reject an empty symbol do so
// themselves, since PDA push/pop symbols and NFA/DFA transition symbols
// treat emptiness differently.
func DecodeSymbol(s string) (sym byte, eps bool) {
	if s == epsilonSymbol {
		return 0, true
	}
	if len(s) == 0 {
		return 0, false
	}
	return s[0], false
}
