package main

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"

	"github.com/dustin/go-humanize"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const (
	chartWidth  = 480
	chartHeight = 240
)

func blankChart(width, height int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: color.White}, image.Point{}, draw.Src)
	return img
}

// chartRange returns the [min;max] of values, widened when empty or
// degenerate since go-chart refuses zero-width ranges.
func chartRange(values []float64) *chart.ContinuousRange {
	low, high := math.Inf(1), math.Inf(-1)
	for _, v := range values {
		low = min(low, v)
		high = max(high, v)
	}
	if low > high {
		return &chart.ContinuousRange{Min: 0, Max: 1}
	}
	if low == high {
		return &chart.ContinuousRange{Min: low - 1, Max: high + 1}
	}
	return &chart.ContinuousRange{Min: low, Max: high}
}

func ppmTick(v interface{}) string {
	f, ok := v.(float64)
	if ok == false {
		return ""
	}
	return humanize.Comma(int64(math.Round(f)))
}

// renderHistoryChart draws values against their sample indices as a
// red line with autoscaled axes.
func renderHistoryChart(indices, values []float64, width, height int) (image.Image, error) {
	n := min(len(indices), len(values))
	if n == 0 {
		return blankChart(width, height), nil
	}

	ch := chart.Chart{
		Width:      width,
		Height:     height,
		DPI:        80,
		Background: chart.Style{Padding: chart.Box{Top: 12, Left: 12, Right: 16, Bottom: 12}},
		XAxis: chart.XAxis{
			Name:           "Time (s)",
			Range:          chartRange(indices[:n]),
			ValueFormatter: ppmTick,
		},
		YAxis: chart.YAxis{
			Name:           "PPM Value",
			Range:          chartRange(values[:n]),
			ValueFormatter: ppmTick,
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "ppm",
				XValues: indices[:n],
				YValues: values[:n],
				Style: chart.Style{
					StrokeColor: drawing.ColorRed,
					StrokeWidth: 1.5,
				},
			},
		},
	}

	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, err
	}
	return png.Decode(&buf)
}
