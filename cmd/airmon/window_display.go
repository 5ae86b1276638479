package main

import (
	"context"
	"image"
	"image/color"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/formicidae-tracker/airmon/internal/airmon"
	"github.com/sirupsen/logrus"
)

const appID = "io.github.formicidae-tracker.airmon"

// windowDisplay is a desktop window. Its widgets only exist once Loop
// built them, before that Show only records the latest state.
type windowDisplay struct {
	logger *logrus.Entry

	mx          sync.Mutex
	ready       bool
	readoutText string
	qualityText string
	swatchColor color.Color
	chartImage  image.Image

	app     fyne.App
	window  fyne.Window
	readout *widget.Label
	quality *widget.Label
	swatch  *canvas.Rectangle
	chart   *canvas.Image
}

func newWindowDisplay() *windowDisplay {
	return &windowDisplay{
		logger:      newLogger("display/window"),
		readoutText: readoutPlaceholder,
		qualityText: qualityPlaceholder,
		swatchColor: color.Transparent,
		chartImage:  blankChart(chartWidth, chartHeight),
	}
}

func (d *windowDisplay) Show(f Frame) {
	img, err := renderHistoryChart(f.Indices, f.Values, chartWidth, chartHeight)
	if err != nil {
		d.logger.WithError(err).Warn("could not render chart")
	}

	d.mx.Lock()
	d.readoutText = f.Readout()
	d.qualityText = f.QualityText()
	d.swatchColor = f.Band.Color
	if img != nil {
		d.chartImage = img
	}
	ready := d.ready
	d.mx.Unlock()

	if ready == true {
		fyne.Do(d.apply)
	}
}

func (d *windowDisplay) ShowError(err error) {
	d.mx.Lock()
	d.readoutText = errorIndicator
	ready := d.ready
	d.mx.Unlock()

	if ready == true {
		fyne.Do(d.apply)
	}
}

// apply must run on the fyne main goroutine.
func (d *windowDisplay) apply() {
	d.mx.Lock()
	defer d.mx.Unlock()

	d.readout.SetText(d.readoutText)
	d.quality.SetText(d.qualityText)
	d.swatch.FillColor = d.swatchColor
	d.swatch.Refresh()
	d.chart.Image = d.chartImage
	d.chart.Refresh()
}

func centeredLabel(text string, bold bool) *widget.Label {
	return widget.NewLabelWithStyle(text, fyne.TextAlignCenter, fyne.TextStyle{Bold: bold})
}

func (d *windowDisplay) buildReferenceTable() fyne.CanvasObject {
	cells := []fyne.CanvasObject{
		centeredLabel("PPM Range", true),
		centeredLabel("Condition", true),
		centeredLabel("Indication", true),
	}
	for _, b := range airmon.Bands() {
		box := canvas.NewRectangle(b.Color)
		box.SetMinSize(fyne.NewSize(80, 20))
		cells = append(cells,
			centeredLabel(b.RangeText(), false),
			centeredLabel(b.Label, false),
			box)
	}
	return container.NewGridWithColumns(3, cells...)
}

func (d *windowDisplay) build() fyne.CanvasObject {
	title := canvas.NewText(windowTitle, theme.ForegroundColor())
	title.TextSize = 20
	title.TextStyle = fyne.TextStyle{Bold: true}
	title.Alignment = fyne.TextAlignCenter

	d.readout = centeredLabel(readoutPlaceholder, false)
	d.quality = widget.NewLabel(qualityPlaceholder)
	d.swatch = canvas.NewRectangle(color.Transparent)
	d.swatch.SetMinSize(fyne.NewSize(24, 24))

	d.chart = canvas.NewImageFromImage(blankChart(chartWidth, chartHeight))
	d.chart.FillMode = canvas.ImageFillContain
	d.chart.SetMinSize(fyne.NewSize(chartWidth, chartHeight))

	return container.NewVBox(
		title,
		d.readout,
		container.NewCenter(container.NewHBox(d.swatch, d.quality)),
		d.buildReferenceTable(),
		d.chart,
	)
}

func (d *windowDisplay) Loop(ctx context.Context) error {
	d.app = app.NewWithID(appID)
	d.window = d.app.NewWindow(windowTitle)
	d.window.SetContent(d.build())

	d.mx.Lock()
	d.ready = true
	d.mx.Unlock()
	d.apply()

	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
			d.logger.Debug("closing window")
			fyne.Do(d.app.Quit)
		case <-stop:
		}
	}()

	d.window.ShowAndRun()
	return nil
}
