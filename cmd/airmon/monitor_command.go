package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	flags "github.com/jessevdk/go-flags"
	"github.com/sirupsen/logrus"
)

type MonitorCommand struct {
	Config   flags.Filename `long:"config" short:"c" description:"configuration file to use, defaults to $XDG_CONFIG_HOME/airmon/config.yml"`
	Port     string         `long:"port" short:"p" description:"serial port of the sensor, overrides configuration"`
	Baud     int            `long:"baud" short:"b" description:"serial baud rate, overrides configuration"`
	Display  string         `long:"display" short:"d" description:"display to use, overrides configuration" choice:"window" choice:"terminal" choice:"log"`
	Simulate bool           `long:"simulate" description:"reads from a simulated sensor instead of the serial port"`
}

func (c *MonitorCommand) loadConfig() (*Config, error) {
	config, err := OpenConfigFromArg(c.Config)
	if err != nil {
		return nil, err
	}
	if len(c.Port) > 0 {
		config.Port = c.Port
	}
	if c.Baud > 0 {
		config.Baud = c.Baud
	}
	if len(c.Display) > 0 {
		config.Display = c.Display
	}
	config.Simulate = c.Simulate

	if err := config.Check(); err != nil {
		return nil, err
	}
	return config, nil
}

func openSource(config Config) (LineSource, error) {
	if config.Simulate == true {
		return newSimulatedSource(time.Now().UnixNano()), nil
	}
	return OpenSerialSource(config.Port, config.Baud)
}

// runMonitor runs the monitor in the background and the display loop
// in the calling goroutine. It returns once both are done.
func runMonitor(ctx context.Context, m *Monitor, display Display) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		m.Run(ctx)
	}()

	err := display.Loop(ctx)
	cancel()
	<-done
	return err
}

func (c *MonitorCommand) Execute(args []string) error {
	config, err := c.loadConfig()
	if err != nil {
		return err
	}

	if config.Display == "log" && logrus.GetLevel() < logrus.InfoLevel {
		logrus.SetLevel(logrus.InfoLevel)
	}

	display, err := NewDisplay(config.Display)
	if err != nil {
		return err
	}

	source, err := openSource(*config)
	if err != nil {
		return err
	}
	defer source.Close()

	m := NewMonitor(MonitorOptions{
		Source:      source,
		Display:     display,
		Interval:    config.Interval,
		ReadTimeout: config.ReadTimeout,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return runMonitor(ctx, m, display)
}

func init() {
	_, err := parser.AddCommand("monitor",
		"monitors the air quality sensor",
		"reads the sensor periodically and displays the current reading, its air quality and the history of the last readings",
		&MonitorCommand{})
	if err != nil {
		panic(err.Error())
	}
}
