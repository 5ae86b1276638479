package main

import (
	"fmt"
	"math/rand"
	"time"
)

// simulatedSource emits a bounded random walk of ppm values, one line
// per call, to run the displays without a sensor attached.
type simulatedSource struct {
	rand   *rand.Rand
	value  float64
	step   float64
	low    float64
	high   float64
	closed bool
}

func newSimulatedSource(seed int64) *simulatedSource {
	return &simulatedSource{
		rand:  rand.New(rand.NewSource(seed)),
		value: 600.0,
		step:  120.0,
		low:   350.0,
		high:  45000.0,
	}
}

func (s *simulatedSource) ReadLine(timeout time.Duration) (string, error) {
	if s.closed == true {
		return "", ErrSourceClosed
	}
	// steps grow with the concentration so that every band is
	// eventually visited.
	s.value += s.rand.NormFloat64() * s.step * (1.0 + s.value/2000.0)
	s.value = min(max(s.value, s.low), s.high)
	return fmt.Sprintf("%.2f", s.value), nil
}

func (s *simulatedSource) Close() error {
	if s.closed == true {
		return ErrSourceClosed
	}
	s.closed = true
	return nil
}
