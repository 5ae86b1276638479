package main

import (
	"image"

	. "gopkg.in/check.v1"
)

type ChartSuite struct{}

var _ = Suite(&ChartSuite{})

func (s *ChartSuite) TestRange(c *C) {
	r := chartRange(nil)
	c.Check(r.Min, Equals, 0.0)
	c.Check(r.Max, Equals, 1.0)

	r = chartRange([]float64{400, 400})
	c.Check(r.Min, Equals, 399.0)
	c.Check(r.Max, Equals, 401.0)

	r = chartRange([]float64{1200, 350, 800})
	c.Check(r.Min, Equals, 350.0)
	c.Check(r.Max, Equals, 1200.0)
}

func (s *ChartSuite) TestTicks(c *C) {
	c.Check(ppmTick(40000.2), Equals, "40,000")
	c.Check(ppmTick(349.6), Equals, "350")
	c.Check(ppmTick("foo"), Equals, "")
}

func (s *ChartSuite) TestRenders(c *C) {
	testdata := []struct {
		Indices, Values []float64
	}{
		{nil, nil},
		{[]float64{1}, []float64{350}},
		{[]float64{1, 2, 3}, []float64{500, 500, 500}},
		{[]float64{1, 2, 3, 4}, []float64{350, 1500, 12000, 41000}},
	}

	for _, d := range testdata {
		img, err := renderHistoryChart(d.Indices, d.Values, chartWidth, chartHeight)
		c.Assert(err, IsNil)
		c.Check(img.Bounds(), Equals, image.Rect(0, 0, chartWidth, chartHeight))
	}
}
