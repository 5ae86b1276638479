package main

import (
	"context"
	"errors"
	"time"

	"github.com/formicidae-tracker/airmon/internal/airmon"
	"github.com/sirupsen/logrus"
)

type MonitorOptions struct {
	Source      LineSource
	Display     Display
	Interval    time.Duration
	ReadTimeout time.Duration
	HistorySize int
}

// Monitor periodically reads the sensor, classifies the reading and
// pushes the result to a Display. It owns the History.
type Monitor struct {
	source   LineSource
	display  Display
	history  *airmon.History
	interval time.Duration
	timeout  time.Duration
	logger   *logrus.Entry
}

func NewMonitor(opts MonitorOptions) *Monitor {
	if opts.HistorySize <= 0 {
		opts.HistorySize = airmon.HistorySize
	}
	return &Monitor{
		source:   opts.Source,
		display:  opts.Display,
		history:  airmon.NewHistory(opts.HistorySize),
		interval: opts.Interval,
		timeout:  opts.ReadTimeout,
		logger:   newLogger("monitor"),
	}
}

func (m *Monitor) acquire() (airmon.PPM, error) {
	line, err := m.source.ReadLine(m.timeout)
	if err != nil {
		return 0, err
	}
	return airmon.ParseReading(line)
}

// refresh runs a single read, classify, append and display cycle.
func (m *Monitor) refresh() (Frame, error) {
	ppm, err := m.acquire()
	if errors.Is(err, ErrNoData) {
		m.logger.Debug("no reading before timeout")
		return Frame{}, err
	}
	if err != nil {
		m.logger.WithError(err).Warn("could not read air quality")
		m.display.ShowError(err)
		return Frame{}, err
	}

	f := Frame{
		PPM:  ppm,
		Band: airmon.Classify(ppm),
	}
	f.Index = m.history.Push(ppm)
	f.Indices, f.Values = m.history.Data()

	m.logger.WithFields(logrus.Fields{
		"index": f.Index,
		"ppm":   float64(ppm),
		"band":  f.Band.Label,
	}).Debug("new reading")

	m.display.Show(f)
	return f, nil
}

// Run refreshes immediately, then once per interval until ctx is
// done. The next cycle is scheduled whatever the outcome of the
// previous one.
func (m *Monitor) Run(ctx context.Context) {
	m.logger.WithFields(logrus.Fields{
		"interval": m.interval,
		"timeout":  m.timeout,
	}).Info("starting")

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		m.refresh()

		select {
		case <-ctx.Done():
			m.logger.Info("stopped")
			return
		case <-ticker.C:
		}
	}
}
