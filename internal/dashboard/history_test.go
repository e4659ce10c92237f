package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRingBuffer(t *testing.T) {
	r := newRingBuffer(3)
	assert.Nil(t, r.last(5))

	r.push(1)
	r.push(2)
	assert.Equal(t, []float64{1, 2}, r.last(5))

	r.push(3)
	r.push(4)
	assert.Equal(t, []float64{2, 3, 4}, r.last(3))
	assert.Equal(t, []float64{3, 4}, r.last(2))
	assert.Equal(t, 3, r.len())

	r.reset()
	assert.Equal(t, 0, r.len())
	assert.Nil(t, r.last(1))
}

func TestRingBuffer_DefaultSize(t *testing.T) {
	r := newRingBuffer(0)
	assert.Equal(t, DefaultHistorySize, r.size)
}

func TestHistory(t *testing.T) {
	h := NewHistory(2)
	h.Push(300.2, 50284, 24.8)
	h.Push(300.4, 50290, 24.9)
	h.Push(300.6, 50291, 24.7)

	assert.Equal(t, 2, h.Len())
	assert.Equal(t, []float64{300.4, 300.6}, h.ROI(10))
	assert.Equal(t, []float64{50290, 50291}, h.Leads(10))
	assert.Equal(t, []float64{24.7}, h.Lift(1))

	h.Reset()
	assert.Zero(t, h.Len())
}
