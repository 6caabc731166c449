package session

import "sync"

// OutputBuffer is a bounded byte accumulator for terminal output. Once the
// cap is reached, the oldest bytes are evicted so the length never exceeds
// the cap. It is safe for concurrent use, though the engine only touches it
// from the tick goroutine.
type OutputBuffer struct {
	mu    sync.RWMutex
	data  []byte
	cap   int
	start int
	end   int
	full  bool
}

// NewOutputBuffer creates an OutputBuffer holding at most capacity bytes.
func NewOutputBuffer(capacity int) *OutputBuffer {
	return &OutputBuffer{
		data: make([]byte, capacity),
		cap:  capacity,
	}
}

// Write appends p, evicting the oldest bytes once the cap is exceeded.
// It never fails; the error return satisfies io.Writer.
func (b *OutputBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	// A chunk larger than the whole buffer reduces to its tail.
	if len(p) >= b.cap {
		copy(b.data, p[len(p)-b.cap:])
		b.start = 0
		b.end = 0
		b.full = true
		return len(p), nil
	}

	for _, c := range p {
		b.data[b.end] = c
		b.end = (b.end + 1) % b.cap
		if b.full {
			b.start = (b.start + 1) % b.cap
		}
		if b.end == b.start {
			b.full = true
		}
	}
	return len(p), nil
}

// String returns the buffered output, oldest first.
func (b *OutputBuffer) String() string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	switch {
	case b.full:
		out := make([]byte, 0, b.cap)
		out = append(out, b.data[b.start:]...)
		out = append(out, b.data[:b.end]...)
		return string(out)
	case b.end >= b.start:
		return string(b.data[b.start:b.end])
	default:
		out := make([]byte, 0, b.cap-b.start+b.end)
		out = append(out, b.data[b.start:]...)
		out = append(out, b.data[:b.end]...)
		return string(out)
	}
}

// Len returns the number of buffered bytes.
func (b *OutputBuffer) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.full {
		return b.cap
	}
	if b.end >= b.start {
		return b.end - b.start
	}
	return b.cap - b.start + b.end
}

// Cap returns the buffer capacity.
func (b *OutputBuffer) Cap() int {
	return b.cap
}

// Reset discards all buffered output.
func (b *OutputBuffer) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.start = 0
	b.end = 0
	b.full = false
}
