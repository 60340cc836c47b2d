package tunnel

import "github.com/doublescale/rusty-navigator/constants"

// Tunnel is an oldest-first deque of segments backed by a power-of-two ring buffer
// head is the index of the oldest segment, count the number of live segments
type Tunnel struct {
	buf   []Segment
	mask  int
	head  int
	count int
}

// NewTunnel creates an empty tunnel with the default ring capacity
func NewTunnel() *Tunnel {
	return newTunnelCap(constants.TunnelRingCapacity)
}

func newTunnelCap(capacity int) *Tunnel {
	// round up to power of two
	c := 1
	for c < capacity {
		c <<= 1
	}
	return &Tunnel{
		buf:  make([]Segment, c),
		mask: c - 1,
	}
}

// Len returns the number of segments
func (t *Tunnel) Len() int {
	return t.count
}

// At returns the i-th segment counted from the oldest, panics when out of range
func (t *Tunnel) At(i int) Segment {
	if i < 0 || i >= t.count {
		panic("tunnel: index out of range")
	}
	return t.buf[(t.head+i)&t.mask]
}

// Front returns the oldest segment
func (t *Tunnel) Front() Segment {
	return t.At(0)
}

// Back returns the newest segment
func (t *Tunnel) Back() Segment {
	return t.At(t.count - 1)
}

// PushBack appends a segment, doubling the ring when full
func (t *Tunnel) PushBack(s Segment) {
	if t.count == len(t.buf) {
		t.grow()
	}
	t.buf[(t.head+t.count)&t.mask] = s
	t.count++
}

// PopFront removes and returns the oldest segment
func (t *Tunnel) PopFront() Segment {
	s := t.Front()
	t.buf[t.head] = Segment{}
	t.head = (t.head + 1) & t.mask
	t.count--
	return s
}

// shift moves every segment horizontally by dx
func (t *Tunnel) shift(dx float64) {
	for i := 0; i < t.count; i++ {
		t.buf[(t.head+i)&t.mask].Center.X += dx
	}
}

func (t *Tunnel) grow() {
	next := make([]Segment, len(t.buf)*2)
	for i := 0; i < t.count; i++ {
		next[i] = t.buf[(t.head+i)&t.mask]
	}
	t.buf = next
	t.mask = len(next) - 1
	t.head = 0
}

// Segments returns a copy of all segments, oldest first
func (t *Tunnel) Segments() []Segment {
	out := make([]Segment, t.count)
	for i := range out {
		out[i] = t.buf[(t.head+i)&t.mask]
	}
	return out
}

// Clone returns an independent copy
func (t *Tunnel) Clone() *Tunnel {
	c := &Tunnel{
		buf:   make([]Segment, len(t.buf)),
		mask:  t.mask,
		head:  t.head,
		count: t.count,
	}
	copy(c.buf, t.buf)
	return c
}
