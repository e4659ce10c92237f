package dashboard

// DefaultHistorySize is the number of samples kept per metric.
const DefaultHistorySize = 60

// ringBuffer is a fixed-size circular buffer for float64 values.
type ringBuffer struct {
	data  []float64
	head  int
	count int
	size  int
}

func newRingBuffer(size int) *ringBuffer {
	if size <= 0 {
		size = DefaultHistorySize
	}
	return &ringBuffer{
		data: make([]float64, size),
		size: size,
	}
}

// push adds a value, overwriting the oldest once the buffer is full.
func (r *ringBuffer) push(value float64) {
	r.data[r.head] = value
	r.head = (r.head + 1) % r.size
	if r.count < r.size {
		r.count++
	}
}

// last returns up to n most recent values, oldest first.
func (r *ringBuffer) last(n int) []float64 {
	if n <= 0 || r.count == 0 {
		return nil
	}
	if n > r.count {
		n = r.count
	}

	out := make([]float64, n)
	start := (r.head - n + r.size) % r.size
	for i := 0; i < n; i++ {
		out[i] = r.data[(start+i)%r.size]
	}
	return out
}

func (r *ringBuffer) len() int {
	return r.count
}

func (r *ringBuffer) reset() {
	r.head = 0
	r.count = 0
}

// History keeps recent values of the metrics that get sparklines.
// It is owned by the Model and only touched from Update.
type History struct {
	roi   *ringBuffer
	leads *ringBuffer
	lift  *ringBuffer
}

// NewHistory creates a history with the given capacity per metric.
func NewHistory(size int) *History {
	return &History{
		roi:   newRingBuffer(size),
		leads: newRingBuffer(size),
		lift:  newRingBuffer(size),
	}
}

// Push records one tick.
func (h *History) Push(roi float64, leads int64, lift float64) {
	h.roi.push(roi)
	h.leads.push(float64(leads))
	h.lift.push(lift)
}

// ROI returns up to n recent growth ROI values.
func (h *History) ROI(n int) []float64 {
	return h.roi.last(n)
}

// Leads returns up to n recent lead totals.
func (h *History) Leads(n int) []float64 {
	return h.leads.last(n)
}

// Lift returns up to n recent conversion lift values.
func (h *History) Lift(n int) []float64 {
	return h.lift.last(n)
}

// Len returns the number of recorded ticks, capped at capacity.
func (h *History) Len() int {
	return h.roi.len()
}

// Reset forgets every sample.
func (h *History) Reset() {
	h.roi.reset()
	h.leads.reset()
	h.lift.reset()
}
