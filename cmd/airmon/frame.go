package main

import (
	"fmt"

	"github.com/formicidae-tracker/airmon/internal/airmon"
)

const (
	windowTitle        = "Air Quality Monitoring System"
	readoutPlaceholder = "Air Quality (PPM): -"
	qualityPlaceholder = "Air Quality: -"
	errorIndicator     = "Error reading air quality"
)

// Frame is everything a display needs to render one reading. Indices
// and Values are owned by the Frame.
type Frame struct {
	Index   int
	PPM     airmon.PPM
	Band    airmon.Band
	Indices []float64
	Values  []float64
}

func (f Frame) Readout() string {
	return fmt.Sprintf("Air Quality (PPM): %s", f.PPM)
}

func (f Frame) QualityText() string {
	return "Air Quality: " + f.Band.Label
}
