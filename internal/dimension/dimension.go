package dimension

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var ErrInvalidValue = errors.New("invalid dimension value")

// Target holds the values the sketch must be dimensioned to, in entered units.
type Target struct {
	RectA    float64 `json:"rectA"`
	RectB    float64 `json:"rectB"`
	Diameter float64 `json:"diameter"`
	Epsilon  float64 `json:"epsilon"`
}

// RectangleMatches reports whether v1, v2 equal the target pair in either order.
func RectangleMatches(v1, v2, targetA, targetB, eps float64) bool {
	return (almostEqual(v1, targetA, eps) && almostEqual(v2, targetB, eps)) ||
		(almostEqual(v1, targetB, eps) && almostEqual(v2, targetA, eps))
}

// CircleMatches reports whether v equals the target diameter.
func CircleMatches(v, targetD, eps float64) bool {
	return almostEqual(v, targetD, eps)
}

// roundingSlack absorbs float64 error in typed decimals, so 60.01 is within
// 0.01 of 60.
const roundingSlack = 1e-9

func almostEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps+roundingSlack
}

// ParseValue parses dimension text typed by the user. Both "12.5" and "12,5" are
// accepted. Negative, NaN and infinite values are rejected.
func ParseValue(text string) (float64, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return 0, fmt.Errorf("%w: empty", ErrInvalidValue)
	}
	s = strings.Replace(s, ",", ".", 1)

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidValue, text)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0, fmt.Errorf("%w: %q out of range", ErrInvalidValue, text)
	}
	return v, nil
}
