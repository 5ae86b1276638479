package airmon

import (
	"fmt"
	"image/color"
	"math"

	"github.com/dustin/go-humanize"
)

// Band is a qualitative air quality level. A reading belongs to the
// first band, in ascending order, whose UpperBound is greater or
// equal to it.
type Band struct {
	Label      string
	ColorName  string
	Color      color.RGBA
	UpperBound PPM

	// lower edge only used for the reference range text.
	rangeStart PPM
}

var bands = [...]Band{
	{
		Label:      "Good",
		ColorName:  "green",
		Color:      color.RGBA{R: 0x00, G: 0xff, B: 0x00, A: 0xff},
		UpperBound: 1000,
		rangeStart: 350,
	},
	{
		Label:      "Not Good",
		ColorName:  "yellow",
		Color:      color.RGBA{R: 0xff, G: 0xff, B: 0x00, A: 0xff},
		UpperBound: 2000,
		rangeStart: 1000,
	},
	{
		Label:      "Dangerous",
		ColorName:  "blue",
		Color:      color.RGBA{R: 0x00, G: 0x00, B: 0xff, A: 0xff},
		UpperBound: 5000,
		rangeStart: 2000,
	},
	{
		Label:      "More Dangerous",
		ColorName:  "darkviolet",
		Color:      color.RGBA{R: 0x94, G: 0x00, B: 0xd3, A: 0xff},
		UpperBound: 40000,
		rangeStart: 5000,
	},
	{
		Label:      "Hazardous",
		ColorName:  "red",
		Color:      color.RGBA{R: 0xff, G: 0x00, B: 0x00, A: 0xff},
		UpperBound: PPM(math.Inf(1)),
		rangeStart: 40000,
	},
}

// Bands returns the five air quality bands in ascending order.
func Bands() []Band {
	res := make([]Band, len(bands))
	copy(res, bands[:])
	return res
}

// Classify maps a concentration to its Band. Any value resolves to a
// band: negative values are Good and NaN falls through to Hazardous.
func Classify(ppm PPM) Band {
	for _, b := range bands[:len(bands)-1] {
		if ppm <= b.UpperBound {
			return b
		}
	}
	return bands[len(bands)-1]
}

func (b Band) String() string {
	return b.Label
}

// Unbounded is true for the last band only.
func (b Band) Unbounded() bool {
	return math.IsInf(float64(b.UpperBound), 1)
}

// RangeText is the human readable range used in reference tables,
// e.g. "1,000-2,000 ppm" or ">40,000 ppm".
func (b Band) RangeText() string {
	start := humanize.Comma(int64(b.rangeStart))
	if b.Unbounded() == true {
		return fmt.Sprintf(">%s ppm", start)
	}
	return fmt.Sprintf("%s-%s ppm", start, humanize.Comma(int64(b.UpperBound)))
}

// Hex returns the band color as #rrggbb.
func (b Band) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", b.Color.R, b.Color.G, b.Color.B)
}
