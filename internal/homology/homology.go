// Package homology provides a quick position-wise similarity check for
// already-aligned (or equal-length) sequences, used upstream of the full
// aligner to short-circuit obviously dissimilar pairs.
package homology

import "fmt"

// Fraction returns the fraction of positions at which a and b hold
// identical bytes, comparing up to the shorter of the two lengths. Not
// defined for empty inputs.
func Fraction(a, b string) (float64, error) {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	if n == 0 {
		return 0, fmt.Errorf("homology: inputs must be non-empty")
	}

	matches := 0
	for i := 0; i < n; i++ {
		if a[i] == b[i] {
			matches++
		}
	}
	return float64(matches) / float64(n), nil
}
