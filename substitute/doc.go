// Package substitute replaces named kinematic invariants inside algebraic
// expression strings.
//
// Substitution is textual: every whole-word occurrence of a key is replaced
// by its value wrapped in parentheses, so operator precedence survives.
// All keys are matched by one alternation pattern in a single left-to-right
// scan; "m2" never matches inside "m22".
//
//	out := substitute.Substitute("5*m22+11*m2+(3-lam)*m2",
//		map[string]string{"m2": "7", "lam": "1"})
//	// out == "5*m22+11*(7)+(3-(1))*(7)"
//
// Resolve re-expands a value map in terms of itself until no value mentions
// another key, failing with ErrCyclicValue on circular definitions.
//
// The expressions are never parsed; whatever surrounds a match is kept
// byte for byte.
package substitute
