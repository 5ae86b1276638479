package airmon

// HistorySize is the number of readings kept for the chart.
const HistorySize = 500

// Sample is a reading with its sequence index. Indices start at 1.
type Sample struct {
	Index int
	PPM   PPM
}

// History is a fixed capacity sequence of the most recent samples.
// Once full, each Push evicts the oldest sample. It is not safe for
// concurrent use.
type History struct {
	samples []Sample
	head    int
	count   int
	next    int
}

func NewHistory(capacity int) *History {
	if capacity < 1 {
		capacity = 1
	}
	return &History{
		samples: make([]Sample, capacity),
		next:    1,
	}
}

// Push stores ppm with the next sequence index and returns that index.
func (h *History) Push(ppm PPM) int {
	s := Sample{Index: h.next, PPM: ppm}
	h.next += 1

	if h.count < len(h.samples) {
		h.samples[(h.head+h.count)%len(h.samples)] = s
		h.count += 1
		return s.Index
	}

	h.samples[h.head] = s
	h.head = (h.head + 1) % len(h.samples)
	return s.Index
}

func (h *History) Len() int {
	return h.count
}

func (h *History) Capacity() int {
	return len(h.samples)
}

// Last returns the most recently pushed sample.
func (h *History) Last() (Sample, bool) {
	if h.count == 0 {
		return Sample{}, false
	}
	return h.samples[(h.head+h.count-1)%len(h.samples)], true
}

// Samples returns a copy of the stored samples, oldest first.
func (h *History) Samples() []Sample {
	res := make([]Sample, h.count)
	for i := range res {
		res[i] = h.samples[(h.head+i)%len(h.samples)]
	}
	return res
}

// Data returns the stored samples as two parallel slices, oldest
// first, ready to be fed to a line chart. Both slices are freshly
// allocated.
func (h *History) Data() (indices []float64, values []float64) {
	indices = make([]float64, h.count)
	values = make([]float64, h.count)
	for i := 0; i < h.count; i++ {
		s := h.samples[(h.head+i)%len(h.samples)]
		indices[i] = float64(s.Index)
		values[i] = float64(s.PPM)
	}
	return indices, values
}
