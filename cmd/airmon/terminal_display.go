package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/adrg/xdg"
	"github.com/formicidae-tracker/airmon/internal/airmon"
	"github.com/formicidae-tracker/airmon/internal/plot"
	tui "github.com/gizak/termui/v3"
	"github.com/gizak/termui/v3/widgets"
	"github.com/sirupsen/logrus"
)

const (
	maxLogLines = 1000
	swatchText  = "██████"
)

var termColors = map[string]tui.Color{
	"green":      tui.ColorGreen,
	"yellow":     tui.ColorYellow,
	"blue":       tui.ColorBlue,
	"darkviolet": tui.Color(92),
	"red":        tui.ColorRed,
}

func termColor(b airmon.Band) tui.Color {
	if c, ok := termColors[b.ColorName]; ok == true {
		return c
	}
	return tui.ColorWhite
}

type logPane struct {
	lines []string
	file  io.WriteCloser
	box   *widgets.Paragraph
}

func newLogPane() *logPane {
	res := &logPane{
		lines: make([]string, 0, 100),
		box:   widgets.NewParagraph(),
	}
	res.box.Title = " Logs "
	res.box.TitleStyle.Fg = tui.ColorCyan
	res.box.BorderStyle.Fg = tui.ColorCyan
	return res
}

func (p *logPane) append(text string) {
	for _, line := range strings.Split(text, "\n") {
		if len(line) == 0 {
			continue
		}
		p.lines = append(p.lines, line)
	}
	p.lines = p.lines[max(0, len(p.lines)-maxLogLines):]
	p.resize()
}

func (p *logPane) resize() {
	available := max(0, p.box.Inner.Dy())
	p.box.Text = strings.Join(p.lines[max(0, len(p.lines)-available):], "\n")
}

func newReferenceTable() *widgets.Table {
	t := widgets.NewTable()
	t.Title = " Reference "
	t.RowSeparator = false
	t.TextAlignment = tui.AlignCenter
	t.Rows = [][]string{{"PPM Range", "Condition", "Indication"}}
	t.RowStyles[0] = tui.NewStyle(tui.ColorWhite, tui.ColorClear, tui.ModifierBold)
	for i, b := range airmon.Bands() {
		t.Rows = append(t.Rows, []string{b.RangeText(), b.Label, swatchText})
		t.RowStyles[i+1] = tui.NewStyle(termColor(b))
	}
	return t
}

// terminalDisplay is a termui dashboard. Widgets are shared between
// the monitor goroutine and the render loop, both under mx.
type terminalDisplay struct {
	logger *logrus.Entry

	mx         sync.Mutex
	needUpdate bool

	title   *widgets.Paragraph
	readout *widgets.Paragraph
	swatch  *widgets.Paragraph
	quality *widgets.Paragraph
	table   *widgets.Table
	plot    *plot.Plot
	logs    *logPane
}

func newTerminalDisplay() *terminalDisplay {
	d := &terminalDisplay{
		logger:     newLogger("display/terminal"),
		needUpdate: true,
		title:      widgets.NewParagraph(),
		readout:    widgets.NewParagraph(),
		swatch:     widgets.NewParagraph(),
		quality:    widgets.NewParagraph(),
		table:      newReferenceTable(),
		plot:       plot.NewPlot(),
		logs:       newLogPane(),
	}
	d.title.Text = windowTitle
	d.title.Border = false
	d.title.TextStyle = tui.NewStyle(tui.ColorWhite, tui.ColorClear, tui.ModifierBold)
	d.readout.Text = readoutPlaceholder
	d.quality.Text = qualityPlaceholder
	d.plot.Title = " PPM Value / Time (s) "
	d.plot.LineColors = []tui.Color{tui.ColorRed}
	return d
}

func (d *terminalDisplay) Show(f Frame) {
	c := termColor(f.Band)

	d.mx.Lock()
	defer d.mx.Unlock()
	d.readout.Text = f.Readout()
	d.quality.Text = f.QualityText()
	d.quality.TextStyle = tui.NewStyle(c)
	d.swatch.Text = swatchText
	d.swatch.TextStyle = tui.NewStyle(c)
	d.plot.XData = f.Indices
	d.plot.YData = [][]float64{f.Values}
	d.needUpdate = true
}

func (d *terminalDisplay) ShowError(err error) {
	d.mx.Lock()
	defer d.mx.Unlock()
	d.readout.Text = errorIndicator
	d.needUpdate = true
}

// Write receives the log output while the dashboard is active.
func (d *terminalDisplay) Write(buf []byte) (int, error) {
	d.mx.Lock()
	d.logs.append(string(buf))
	d.needUpdate = true
	file := d.logs.file
	d.mx.Unlock()

	if file == nil {
		return len(buf), nil
	}
	return file.Write(buf)
}

func terminalLogPath() string {
	return filepath.Join(xdg.DataHome, "airmon", "logs", "airmon.log")
}

func (d *terminalDisplay) redirectLogs() func() {
	f, fname, err := airmon.CreateFileWithoutOverwrite(terminalLogPath())
	if err != nil {
		d.logger.WithError(err).Warn("could not create log file")
	} else {
		d.logger.WithField("file", fname).Info("logging to file")
		d.mx.Lock()
		d.logs.file = f
		d.mx.Unlock()
	}
	logrus.SetOutput(d)

	return func() {
		logrus.SetOutput(os.Stderr)
		d.mx.Lock()
		defer d.mx.Unlock()
		if d.logs.file != nil {
			d.logs.file.Close()
			d.logs.file = nil
		}
	}
}

func (d *terminalDisplay) layout(grid *tui.Grid, width, height int) {
	grid.SetRect(0, 0, width, height)
	grid.Set(
		tui.NewRow(0.06, d.title),
		tui.NewRow(0.12,
			tui.NewCol(0.5, d.readout),
			tui.NewCol(0.15, d.swatch),
			tui.NewCol(0.35, d.quality),
		),
		tui.NewRow(0.27, d.table),
		tui.NewRow(0.40, d.plot),
		tui.NewRow(0.15, d.logs.box),
	)
}

func (d *terminalDisplay) render(grid *tui.Grid) {
	d.mx.Lock()
	defer d.mx.Unlock()
	if d.needUpdate == false {
		return
	}
	d.logs.resize()
	tui.Render(grid)
	d.needUpdate = false
}

func (d *terminalDisplay) Loop(ctx context.Context) error {
	if err := tui.Init(); err != nil {
		return fmt.Errorf("could not initialize terminal: %w", err)
	}
	defer tui.Close()

	restore := d.redirectLogs()
	defer restore()

	grid := tui.NewGrid()
	tw, th := tui.TerminalDimensions()
	d.layout(grid, tw, th)

	// ticker to limit refresh FPS
	t := time.NewTicker(time.Second / 30)
	defer t.Stop()

	events := tui.PollEvents()
	d.render(grid)
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-t.C:
			d.render(grid)
		case e := <-events:
			switch e.ID {
			case "q", "<C-c>":
				return nil
			case "<Resize>":
				payload := e.Payload.(tui.Resize)
				d.mx.Lock()
				grid.SetRect(0, 0, payload.Width, payload.Height)
				d.needUpdate = true
				d.mx.Unlock()
				tui.Clear()
			}
		}
	}
}
