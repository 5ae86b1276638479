package main

import (
	"context"

	"github.com/sirupsen/logrus"
)

type logDisplay struct {
	logger *logrus.Entry
}

func newLogDisplay() *logDisplay {
	return &logDisplay{logger: newLogger("display/log")}
}

func (d *logDisplay) Show(f Frame) {
	d.logger.WithFields(logrus.Fields{
		"index": f.Index,
		"ppm":   float64(f.PPM),
		"band":  f.Band.Label,
		"color": f.Band.ColorName,
	}).Info(f.Readout())
}

func (d *logDisplay) ShowError(err error) {
	d.logger.WithError(err).Error(errorIndicator)
}

func (d *logDisplay) Loop(ctx context.Context) error {
	<-ctx.Done()
	return nil
}
