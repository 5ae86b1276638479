package airmon

import (
	"math"

	. "gopkg.in/check.v1"
)

type BandSuite struct{}

var _ = Suite(&BandSuite{})

func (s *BandSuite) TestClassify(c *C) {
	testdata := []struct {
		PPM   PPM
		Label string
		Color string
	}{
		{-5, "Good", "green"},
		{0, "Good", "green"},
		{350, "Good", "green"},
		{1000, "Good", "green"},
		{1000.0001, "Not Good", "yellow"},
		{1500, "Not Good", "yellow"},
		{2000, "Not Good", "yellow"},
		{2000.5, "Dangerous", "blue"},
		{5000, "Dangerous", "blue"},
		{5001, "More Dangerous", "darkviolet"},
		{40000, "More Dangerous", "darkviolet"},
		{40000.01, "Hazardous", "red"},
		{1e12, "Hazardous", "red"},
		{PPM(math.Inf(1)), "Hazardous", "red"},
		{PPM(math.Inf(-1)), "Good", "green"},
	}

	for _, d := range testdata {
		b := Classify(d.PPM)
		c.Check(b.Label, Equals, d.Label, Commentf("ppm: %f", d.PPM))
		c.Check(b.ColorName, Equals, d.Color, Commentf("ppm: %f", d.PPM))
	}
}

func (s *BandSuite) TestClassifyIsPure(c *C) {
	for _, v := range []PPM{-1, 999.99, 1000, 4200, 39999, 123456} {
		c.Check(Classify(v), Equals, Classify(v))
	}
}

func (s *BandSuite) TestBandsAreAscending(c *C) {
	bs := Bands()
	c.Assert(bs, HasLen, 5)
	for i := 1; i < len(bs); i++ {
		c.Check(bs[i-1].UpperBound < bs[i].UpperBound, Equals, true)
	}
	c.Check(bs[len(bs)-1].Unbounded(), Equals, true)

	// callers cannot alter the table
	bs[0].Label = "modified"
	c.Check(Classify(0).Label, Equals, "Good")
}

func (s *BandSuite) TestClassifyReturnsTableBands(c *C) {
	for _, b := range Bands() {
		if b.Unbounded() {
			c.Check(Classify(b.rangeStart+1), Equals, b)
			continue
		}
		c.Check(Classify(b.UpperBound), Equals, b)
	}
}

func (s *BandSuite) TestReferenceText(c *C) {
	testdata := []struct {
		Range string
		Label string
		Hex   string
	}{
		{"350-1,000 ppm", "Good", "#00ff00"},
		{"1,000-2,000 ppm", "Not Good", "#ffff00"},
		{"2,000-5,000 ppm", "Dangerous", "#0000ff"},
		{"5,000-40,000 ppm", "More Dangerous", "#9400d3"},
		{">40,000 ppm", "Hazardous", "#ff0000"},
	}
	bs := Bands()
	c.Assert(bs, HasLen, len(testdata))
	for i, d := range testdata {
		c.Check(bs[i].RangeText(), Equals, d.Range)
		c.Check(bs[i].String(), Equals, d.Label)
		c.Check(bs[i].Hex(), Equals, d.Hex)
	}
}
