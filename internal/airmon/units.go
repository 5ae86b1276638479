package airmon

import (
	"fmt"
	"math"
)

// PPM is a gas concentration in parts-per-million.
type PPM float64

func (p PPM) Value() float64 { return float64(p) }

func (p PPM) String() string {
	return fmt.Sprintf("%.2f ppm", float64(p))
}

// IsFinite returns false for NaN and infinite concentrations.
func (p PPM) IsFinite() bool {
	v := float64(p)
	return !(math.IsNaN(v) || math.IsInf(v, 0))
}
