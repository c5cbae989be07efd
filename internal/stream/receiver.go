// internal/stream/receiver.go
package stream

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"sync"
)

// Stats is a snapshot of reception accounting.
type Stats struct {
	Frames  uint64
	Batches uint64
	Lost    uint64 // batches missing per sequence arithmetic
	Bytes   uint64
}

// LossRatio is lost/(received+lost). With nothing received the stream
// is considered fully lost.
func (s Stats) LossRatio() float64 {
	sent := s.Batches + s.Lost
	if sent == 0 {
		return 1
	}
	return float64(s.Lost) / float64(sent)
}

// ReceiverConfig configures the UDP frame receiver.
type ReceiverConfig struct {
	// Listen is host:port. A multicast host joins that group.
	Listen    string
	QueueSize int
}

// Receiver listens for streaming frames on UDP and hands them to a
// bounded queue, dropping the oldest frame under backpressure.
type Receiver struct {
	conn *net.UDPConn
	out  chan Frame

	mu     sync.Mutex
	expect uint32
	seen   bool
	stats  Stats

	logf func(format string, v ...any)
}

// NewReceiver binds the socket. Run must be called to start reception.
func NewReceiver(cfg ReceiverConfig) (*Receiver, error) {
	addr, err := net.ResolveUDPAddr("udp4", cfg.Listen)
	if err != nil {
		return nil, fmt.Errorf("stream: listen address: %w", err)
	}

	var conn *net.UDPConn
	if addr.IP != nil && addr.IP.IsMulticast() {
		conn, err = net.ListenMulticastUDP("udp4", nil, addr)
	} else {
		conn, err = net.ListenUDP("udp4", addr)
	}
	if err != nil {
		return nil, fmt.Errorf("stream: listen: %w", err)
	}

	// Large OS buffer so scheduling hiccups do not turn into loss.
	// May be capped by net.core.rmem_max; best effort.
	_ = conn.SetReadBuffer(4 << 20)

	q := cfg.QueueSize
	if q <= 0 {
		q = 1
	}
	return &Receiver{
		conn: conn,
		out:  make(chan Frame, q),
		logf: log.Printf,
	}, nil
}

// Frames is the queue of parsed frames.
func (r *Receiver) Frames() <-chan Frame { return r.out }

// Stats returns the current reception counters.
func (r *Receiver) Stats() Stats {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.stats
}

// Run reads datagrams until ctx is cancelled or the socket dies. The
// socket is released on every return path.
func (r *Receiver) Run(ctx context.Context) error {
	stop := context.AfterFunc(ctx, func() { r.conn.Close() })
	defer stop()
	defer r.conn.Close()

	buf := make([]byte, 2048)
	for {
		n, _, err := r.conn.ReadFromUDP(buf)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, net.ErrClosed) {
				return ctx.Err()
			}
			return fmt.Errorf("stream: read: %w", err)
		}

		data := make([]byte, n)
		copy(data, buf[:n])
		f, err := Parse(data)
		if err != nil {
			r.logf("stream: %v, ignoring", err)
			continue
		}
		if f.Header.FormatID != FormatAdcDac {
			r.logf("stream: no parser for format %d, ignoring", f.Header.FormatID)
			continue
		}

		r.record(f)
		r.enqueue(f)
	}
}

func (r *Receiver) record(f Frame) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stats.Frames++
	r.stats.Bytes += uint64(len(f.Body))
	r.stats.Batches += uint64(f.Header.Batches)
	if r.seen {
		// uint32 subtraction wraps, matching the on-wire counter.
		r.stats.Lost += uint64(f.Header.Sequence - r.expect)
	}
	r.expect = f.Header.Sequence + uint32(f.Header.Batches)
	r.seen = true
}

func (r *Receiver) enqueue(f Frame) {
	select {
	case r.out <- f:
		return
	default:
	}
	// Queue full: shed the oldest frame and retry once.
	select {
	case old := <-r.out:
		r.logf("stream: dropping frame %#08x", old.Header.Sequence)
	default:
	}
	select {
	case r.out <- f:
	default:
	}
}
