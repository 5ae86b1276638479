package main

import (
	"bytes"
	"errors"
	"fmt"
	"path"
	"time"

	"github.com/sirupsen/logrus"
	"go.bug.st/serial"
)

//go:generate mockgen -source source.go -destination mock_source_test.go -package main

var (
	// ErrNoData is returned when no complete line arrived before the
	// read timeout. It is not a failure.
	ErrNoData       = errors.New("no data")
	ErrSourceClosed = errors.New("source closed")
	ErrLineTooLong  = errors.New("line too long")
)

const maxLineLength = 256

// LineSource provides the newline terminated lines sent by a sensor.
type LineSource interface {
	// ReadLine waits at most timeout for a complete line and returns
	// it without its terminator and surrounding whitespace.
	ReadLine(timeout time.Duration) (string, error)
	Close() error
}

// Port is the subset of serial.Port used to read from the sensor. A
// Read returning no byte and no error means the read timeout
// expired.
type Port interface {
	Read(p []byte) (int, error)
	SetReadTimeout(t time.Duration) error
	Close() error
}

type serialSource struct {
	name    string
	port    Port
	pending []byte
	chunk   []byte
	logger  *logrus.Entry
}

func OpenSerialSource(name string, baud int) (LineSource, error) {
	port, err := serial.Open(name, &serial.Mode{BaudRate: baud})
	if err != nil {
		return nil, fmt.Errorf("could not open serial port '%s': %w", name, err)
	}
	res := newSerialSource(name, port)
	res.logger.WithField("baud", baud).Info("opened serial port")
	return res, nil
}

func newSerialSource(name string, port Port) *serialSource {
	return &serialSource{
		name:    name,
		port:    port,
		pending: make([]byte, 0, maxLineLength),
		chunk:   make([]byte, 64),
		logger:  newLogger(path.Join("serial", name)),
	}
}

func (s *serialSource) takeLine() (string, bool) {
	idx := bytes.IndexByte(s.pending, '\n')
	if idx < 0 {
		return "", false
	}
	line := string(bytes.TrimSpace(s.pending[:idx]))
	s.pending = append(s.pending[:0], s.pending[idx+1:]...)
	return line, true
}

func (s *serialSource) ReadLine(timeout time.Duration) (string, error) {
	if s.port == nil {
		return "", ErrSourceClosed
	}
	if line, ok := s.takeLine(); ok == true {
		return line, nil
	}

	deadline := time.Now().Add(timeout)
	for {
		remaining := time.Until(deadline)
		if remaining <= 0 {
			return "", ErrNoData
		}
		if err := s.port.SetReadTimeout(remaining); err != nil {
			return "", fmt.Errorf("could not set read timeout on '%s': %w", s.name, err)
		}

		n, err := s.port.Read(s.chunk)
		if n > 0 {
			s.pending = append(s.pending, s.chunk[:n]...)
			if line, ok := s.takeLine(); ok == true {
				s.logger.WithField("line", line).Debug("received line")
				return line, nil
			}
			if len(s.pending) > maxLineLength {
				s.pending = s.pending[:0]
				return "", fmt.Errorf("could not read '%s': %w (> %d bytes)", s.name, ErrLineTooLong, maxLineLength)
			}
		}
		if err != nil {
			return "", fmt.Errorf("could not read '%s': %w", s.name, err)
		}
		if n == 0 {
			return "", ErrNoData
		}
	}
}

func (s *serialSource) Close() error {
	if s.port == nil {
		return ErrSourceClosed
	}
	err := s.port.Close()
	s.port = nil
	s.logger.Info("closed serial port")
	return err
}
