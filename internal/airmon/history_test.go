package airmon

import (
	. "gopkg.in/check.v1"
)

type HistorySuite struct{}

var _ = Suite(&HistorySuite{})

func (s *HistorySuite) TestEmpty(c *C) {
	h := NewHistory(HistorySize)
	c.Check(h.Len(), Equals, 0)
	c.Check(h.Capacity(), Equals, 500)
	_, ok := h.Last()
	c.Check(ok, Equals, false)
	indices, values := h.Data()
	c.Check(indices, HasLen, 0)
	c.Check(values, HasLen, 0)
}

func (s *HistorySuite) TestPushAssignsSequentialIndices(c *C) {
	h := NewHistory(3)
	for i, v := range []PPM{400, 410, 420, 430, 440} {
		c.Check(h.Push(v), Equals, i+1)
	}
	c.Check(h.Samples(), DeepEquals, []Sample{
		{Index: 3, PPM: 420},
		{Index: 4, PPM: 430},
		{Index: 5, PPM: 440},
	})
	last, ok := h.Last()
	c.Check(ok, Equals, true)
	c.Check(last, Equals, Sample{Index: 5, PPM: 440})
}

func (s *HistorySuite) TestEvictsOldestBeyondCapacity(c *C) {
	h := NewHistory(HistorySize)
	for i := 1; i <= 501; i++ {
		h.Push(PPM(i))
	}
	c.Assert(h.Len(), Equals, 500)

	indices, values := h.Data()
	c.Assert(indices, HasLen, 500)
	c.Assert(values, HasLen, 500)
	for i := range values {
		c.Check(values[i], Equals, float64(i+2))
		c.Check(indices[i], Equals, float64(i+2))
	}
	for _, v := range values {
		if v == 1.0 {
			c.Fatalf("first reading still present after 501 pushes")
		}
	}
}

func (s *HistorySuite) TestDataIsACopy(c *C) {
	h := NewHistory(4)
	h.Push(1)
	h.Push(2)
	_, values := h.Data()
	values[0] = 42
	_, again := h.Data()
	c.Check(again, DeepEquals, []float64{1, 2})
}

func (s *HistorySuite) TestMinimalCapacity(c *C) {
	h := NewHistory(0)
	c.Check(h.Capacity(), Equals, 1)
	h.Push(1)
	h.Push(2)
	c.Check(h.Samples(), DeepEquals, []Sample{{Index: 2, PPM: 2}})
}
