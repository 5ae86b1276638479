// Copyright 2017 Zack Guo <zack.y.guo@gmail.com>. All rights reserved.
// Use of this source code is governed by a MIT license that can
// be found in the LICENSE file.

// Package plot provides a termui line plot drawing Y series against
// arbitrary X values, with axes autoscaled on the data.
package plot

import (
	"fmt"
	"image"
	"math"

	. "github.com/gizak/termui/v3"
)

type PointF struct {
	X, Y float64
}

func PtF(x, y float64) PointF {
	return PointF{X: x, Y: y}
}

type RectangleF struct {
	Min, Max PointF
}

func RectF(x0, y0, x1, y1 float64) RectangleF {
	return RectangleF{Min: PointF{x0, y0}, Max: PointF{x1, y1}}
}

func (r RectangleF) Dx() float64 {
	return r.Max.X - r.Min.X
}

func (r RectangleF) Dy() float64 {
	return r.Max.Y - r.Min.Y
}

// Plot draws one braille line per YData series. When XData is
// empty, the position in the series is used as X. MinVal and MaxVal
// fix the Y axis when MinVal < MaxVal, otherwise it follows the data.
type Plot struct {
	Block

	XData      []float64
	YData      [][]float64
	DataLabels []string
	MaxVal     float64
	MinVal     float64

	LineColors []Color
	AxesColor  Color
	ShowAxes   bool

	XLabelFormat string
	YLabelFormat string

	axisLimits RectangleF
}

const (
	xAxisLabelsHeight = 1
	xAxisLabelsGap    = 4
	yAxisLabelsGap    = 1
)

func NewPlot() *Plot {
	return &Plot{
		Block:        *NewBlock(),
		LineColors:   Theme.Plot.Lines,
		AxesColor:    Theme.Plot.Axes,
		YData:        [][]float64{},
		ShowAxes:     true,
		XLabelFormat: "%.0f",
		YLabelFormat: "%.0f",
	}
}

// AxisLimits returns the data rectangle used by the last Draw.
func (p *Plot) AxisLimits() RectangleF {
	return p.axisLimits
}

func (p *Plot) project(pt PointF, drawArea image.Rectangle) image.Point {
	// braille cells are 2x4 dots
	w := float64(drawArea.Dx()*2 - 1)
	h := float64(drawArea.Dy()*4 - 1)
	x := (pt.X - p.axisLimits.Min.X) / p.axisLimits.Dx() * w
	y := (pt.Y - p.axisLimits.Min.Y) / p.axisLimits.Dy() * h
	return image.Pt(
		drawArea.Min.X*2+int(math.Round(x)),
		drawArea.Max.Y*4-1-int(math.Round(y)),
	)
}

func (p *Plot) pointCount(y []float64) int {
	if len(p.XData) > 0 {
		return min(len(y), len(p.XData))
	}
	return len(y)
}

func (p *Plot) xAt(j int) float64 {
	if len(p.XData) > 0 {
		return p.XData[j]
	}
	return float64(j)
}

func (p *Plot) renderBraille(buf *Buffer, drawArea image.Rectangle) {
	canvas := NewCanvas()
	canvas.Rectangle = drawArea

	for i, line := range p.YData {
		n := p.pointCount(line)
		if n == 0 {
			continue
		}
		color := SelectColor(p.LineColors, i)
		previous := p.project(PtF(p.xAt(0), line[0]), drawArea)
		if n == 1 {
			canvas.SetPoint(previous, color)
			continue
		}
		for j := 1; j < n; j++ {
			pt := p.project(PtF(p.xAt(j), line[j]), drawArea)
			canvas.SetLine(previous, pt, color)
			previous = pt
		}
	}

	canvas.Draw(buf)
}

func (p *Plot) yLabel(v float64) string {
	return fmt.Sprintf(p.YLabelFormat, v)
}

func (p *Plot) yLabelsWidth() int {
	return max(len(p.yLabel(p.axisLimits.Min.Y)), len(p.yLabel(p.axisLimits.Max.Y)))
}

func (p *Plot) plotAxes(buf *Buffer, drawArea image.Rectangle) {
	style := NewStyle(p.AxesColor)
	originX := drawArea.Min.X - 1
	originY := drawArea.Max.Y

	buf.SetCell(NewCell(BOTTOM_LEFT, style), image.Pt(originX, originY))
	for x := drawArea.Min.X; x < drawArea.Max.X; x++ {
		buf.SetCell(NewCell(HORIZONTAL_DASH, style), image.Pt(x, originY))
	}
	for y := drawArea.Min.Y; y < drawArea.Max.Y; y++ {
		buf.SetCell(NewCell(VERTICAL_DASH, style), image.Pt(originX, y))
	}

	// x labels, left aligned on their column
	for i := 0; i < drawArea.Dx(); {
		frac := 0.0
		if drawArea.Dx() > 1 {
			frac = float64(i) / float64(drawArea.Dx()-1)
		}
		label := fmt.Sprintf(p.XLabelFormat, p.axisLimits.Min.X+frac*p.axisLimits.Dx())
		if i+len(label) > drawArea.Dx() {
			break
		}
		buf.SetString(label, style, image.Pt(drawArea.Min.X+i, p.Inner.Max.Y-1))
		i += len(label) + xAxisLabelsGap
	}

	// y labels, bottom up
	lw := p.yLabelsWidth()
	rows := drawArea.Dy()
	for i := 0; i < rows; i += yAxisLabelsGap + 1 {
		frac := 0.0
		if rows > 1 {
			frac = float64(i) / float64(rows-1)
		}
		label := p.yLabel(p.axisLimits.Min.Y + frac*p.axisLimits.Dy())
		buf.SetString(
			fmt.Sprintf("%*s", lw, label),
			style,
			image.Pt(p.Inner.Min.X, drawArea.Max.Y-1-i),
		)
	}
}

func widen(low, high float64) (float64, float64) {
	if high > low {
		return low, high
	}
	return low - 1.0, high + 1.0
}

func (p *Plot) getXRange() (float64, float64) {
	n := 0
	for _, y := range p.YData {
		n = max(n, p.pointCount(y))
	}
	if n == 0 {
		return 0.0, 1.0
	}
	if len(p.XData) == 0 {
		return widen(0.0, float64(n-1))
	}

	minX := math.Inf(1)
	maxX := math.Inf(-1)
	for _, v := range p.XData[:n] {
		minX = min(minX, v)
		maxX = max(maxX, v)
	}
	return widen(minX, maxX)
}

func (p *Plot) getYRange() (float64, float64) {
	if p.MinVal < p.MaxVal {
		return p.MinVal, p.MaxVal
	}
	minY := math.Inf(1)
	maxY := math.Inf(-1)
	for _, d := range p.YData {
		for _, v := range d[:p.pointCount(d)] {
			minY = min(minY, v)
			maxY = max(maxY, v)
		}
	}
	if minY > maxY {
		return 0.0, 1.0
	}
	return widen(minY, maxY)
}

func (p *Plot) updateAxisLimits() {
	p.axisLimits.Min.X, p.axisLimits.Max.X = p.getXRange()
	p.axisLimits.Min.Y, p.axisLimits.Max.Y = p.getYRange()
}

func (p *Plot) Draw(buf *Buffer) {
	p.Block.Draw(buf)

	p.updateAxisLimits()

	drawArea := p.Inner
	if p.ShowAxes {
		drawArea = image.Rect(
			p.Inner.Min.X+p.yLabelsWidth()+1, p.Inner.Min.Y,
			p.Inner.Max.X, p.Inner.Max.Y-xAxisLabelsHeight-1,
		)
	}
	if drawArea.Dx() < 1 || drawArea.Dy() < 1 {
		return
	}
	if p.ShowAxes {
		p.plotAxes(buf, drawArea)
	}

	p.renderBraille(buf, drawArea)
}
