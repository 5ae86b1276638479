package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/adrg/xdg"
	flags "github.com/jessevdk/go-flags"
	yaml "gopkg.in/yaml.v2"
)

var displayKinds = []string{"window", "terminal", "log"}

type Config struct {
	Port        string        `yaml:"port"`
	Baud        int           `yaml:"baud"`
	Interval    time.Duration `yaml:"interval"`
	ReadTimeout time.Duration `yaml:"read-timeout"`
	Display     string        `yaml:"display"`

	// not read from file: --simulate does not need a port.
	Simulate bool `yaml:"-"`
}

func defaultPort() string {
	if runtime.GOOS == "windows" {
		return "COM3"
	}
	return "/dev/ttyACM0"
}

func DefaultConfig() Config {
	return Config{
		Port:        defaultPort(),
		Baud:        9600,
		Interval:    1 * time.Second,
		ReadTimeout: 900 * time.Millisecond,
		Display:     "window",
	}
}

func defaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "airmon", "config.yml")
}

// OpenConfig reads filename over the default values.
func OpenConfig(filename string) (*Config, error) {
	c := DefaultConfig()
	buf, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	if err := yaml.UnmarshalStrict(buf, &c); err != nil {
		return nil, fmt.Errorf("invalid config '%s': %w", filename, err)
	}
	return &c, nil
}

// OpenConfigFromArg opens the given file, or the default one under
// the XDG config directory. A missing default file yields defaults.
func OpenConfigFromArg(option flags.Filename) (*Config, error) {
	if len(option) > 0 {
		return OpenConfig(string(option))
	}
	c, err := OpenConfig(defaultConfigPath())
	if os.IsNotExist(err) {
		res := DefaultConfig()
		return &res, nil
	}
	return c, err
}

func (c Config) checkDisplay() error {
	for _, k := range displayKinds {
		if c.Display == k {
			return nil
		}
	}
	return fmt.Errorf("invalid display '%s' (expected one of %s)", c.Display, strings.Join(displayKinds, ", "))
}

func (c Config) checkTiming() error {
	if c.Interval <= 0 {
		return fmt.Errorf("invalid interval %s", c.Interval)
	}
	if c.ReadTimeout <= 0 || c.ReadTimeout > c.Interval {
		return fmt.Errorf("invalid read-timeout %s: should be in ]0;%s]", c.ReadTimeout, c.Interval)
	}
	return nil
}

func (c Config) checkSerial() error {
	if c.Simulate == true {
		return nil
	}
	if len(c.Port) == 0 {
		return fmt.Errorf("no serial port configured")
	}
	if c.Baud <= 0 {
		return fmt.Errorf("invalid baud rate %d", c.Baud)
	}
	return nil
}

func (c Config) Check() error {
	if err := c.checkSerial(); err != nil {
		return err
	}
	if err := c.checkTiming(); err != nil {
		return err
	}
	return c.checkDisplay()
}
