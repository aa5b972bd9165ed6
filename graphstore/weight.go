// SPDX-License-Identifier: MIT

package graphstore

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// DefaultWeightDivisor scales on-screen pixels into edge weights.
const DefaultWeightDivisor = 10.0

// validateWeight rejects negative weights and the NoEdge sentinel.
func validateWeight(w Weight) error {
	if w < 0 || w == NoEdge {
		return fmt.Errorf("%w: %d", ErrInvalidWeight, int64(w))
	}

	return nil
}

// DerivedWeight suggests a weight for an edge between two positions:
// the Euclidean distance divided by divisor, rounded to the nearest integer
// (halves away from zero).
func DerivedWeight(a, b Point, divisor float64) (Weight, error) {
	if divisor <= 0 || math.IsNaN(divisor) || math.IsInf(divisor, 0) {
		return 0, fmt.Errorf("%w: %v", ErrBadDivisor, divisor)
	}
	d := math.Hypot(a.X-b.X, a.Y-b.Y) / divisor
	if math.IsNaN(d) || math.IsInf(d, 0) || d >= float64(NoEdge) {
		return 0, fmt.Errorf("%w: distance %v", ErrInvalidWeight, d)
	}

	return Weight(math.Round(d)), nil
}

// ParseWeight converts free-form user input into a Weight. Surrounding
// whitespace is ignored; "7" and "7.0" are accepted, while "", "abc",
// "-1", "2.5", "NaN" and "Inf" fail with ErrInvalidWeight.
func ParseWeight(raw string) (Weight, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, fmt.Errorf("%w: empty input", ErrInvalidWeight)
	}
	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		w := Weight(v)
		if err = validateWeight(w); err != nil {
			return 0, err
		}

		return w, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidWeight, raw)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 || f != math.Trunc(f) || f >= float64(NoEdge) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidWeight, raw)
	}

	return Weight(f), nil
}
