// internal/stream/monitor.go
package stream

import (
	"context"
	"log"
	"sync"
)

// ChannelMonitor consumes received frames and keeps the most recent
// sample of each channel in volts, for display.
type ChannelMonitor struct {
	mu   sync.Mutex
	last [adcDacChannels]float64
	seen bool

	logf func(format string, v ...any)
}

// NewChannelMonitor starts with no data; Channels reports false until
// the first frame decodes.
func NewChannelMonitor() *ChannelMonitor {
	return &ChannelMonitor{logf: log.Printf}
}

// Run consumes frames until ctx is cancelled.
func (m *ChannelMonitor) Run(ctx context.Context, frames <-chan Frame) {
	for {
		select {
		case <-ctx.Done():
			return
		case f := <-frames:
			m.observe(f)
		}
	}
}

func (m *ChannelMonitor) observe(f Frame) {
	d, err := DecodeAdcDac(f)
	if err != nil {
		m.logf("stream: %v, ignoring", err)
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for ch := range d.Samples {
		if v := d.Volts(ch); len(v) > 0 {
			m.last[ch] = v[len(v)-1]
		}
	}
	m.seen = true
}

// Channels returns the latest sample of each channel in volts, in
// ChannelLabels order, and whether any frame has decoded yet.
func (m *ChannelMonitor) Channels() ([adcDacChannels]float64, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.last, m.seen
}
