// internal/clock/millis.go
package clock

import "time"

// Millis counts milliseconds since construction, wrapping at 2^32.
// The epoch is arbitrary; only differences are meaningful.
type Millis struct {
	start time.Time
}

// NewMillis starts a millisecond counter at zero.
func NewMillis() *Millis {
	return &Millis{start: time.Now()}
}

// NowMS returns elapsed milliseconds. Monotonic: time.Since uses the
// runtime monotonic reading, so wall clock steps do not move it.
func (m *Millis) NowMS() uint32 {
	return uint32(time.Since(m.start).Milliseconds())
}
