// internal/stack/seqs_test.go
package stack

import (
	"errors"
	"testing"
)

type fakeDevice struct {
	inbound [][]byte
	written [][]byte
	readErr error
}

func (d *fakeDevice) ReadFrame(buf []byte) (int, error) {
	if d.readErr != nil {
		return 0, d.readErr
	}
	if len(d.inbound) == 0 {
		return 0, nil
	}
	f := d.inbound[0]
	d.inbound = d.inbound[1:]
	return copy(buf, f), nil
}

func (d *fakeDevice) WriteFrame(frame []byte) error {
	cp := make([]byte, len(frame))
	copy(cp, frame)
	d.written = append(d.written, cp)
	return nil
}

type fakePort struct {
	received [][]byte
	outbound [][]byte
	recvErr  error
}

func (p *fakePort) RecvEth(frame []byte) error {
	if p.recvErr != nil {
		return p.recvErr
	}
	cp := make([]byte, len(frame))
	copy(cp, frame)
	p.received = append(p.received, cp)
	return nil
}

func (p *fakePort) HandleEth(dst []byte) (int, error) {
	if len(p.outbound) == 0 {
		return 0, nil
	}
	f := p.outbound[0]
	p.outbound = p.outbound[1:]
	return copy(dst, f), nil
}

func newTestSeqs(dev Device, port ethPort) *Seqs {
	return &Seqs{port: port, dev: dev, buf: make([]byte, 1514)}
}

func TestPoll_MovesInboundFrames(t *testing.T) {
	dev := &fakeDevice{inbound: [][]byte{{1, 2, 3}, {4, 5}}}
	port := &fakePort{}
	s := newTestSeqs(dev, port)

	progress, err := s.Poll(0)
	if err != nil {
		t.Fatalf("Poll err=%v", err)
	}
	if !progress {
		t.Fatal("progress=false with pending inbound frames")
	}
	if len(port.received) != 2 {
		t.Fatalf("received %d frames, want 2", len(port.received))
	}
}

func TestPoll_MovesOutboundFrames(t *testing.T) {
	dev := &fakeDevice{}
	port := &fakePort{outbound: [][]byte{{9, 9, 9}}}
	s := newTestSeqs(dev, port)

	progress, err := s.Poll(0)
	if err != nil {
		t.Fatalf("Poll err=%v", err)
	}
	if !progress {
		t.Fatal("progress=false with pending outbound frames")
	}
	if len(dev.written) != 1 || len(dev.written[0]) != 3 {
		t.Fatalf("written=%v want one 3-byte frame", dev.written)
	}
}

func TestPoll_Idle(t *testing.T) {
	s := newTestSeqs(&fakeDevice{}, &fakePort{})
	progress, err := s.Poll(0)
	if err != nil {
		t.Fatalf("Poll err=%v", err)
	}
	if progress {
		t.Fatal("progress=true with no traffic")
	}
}

func TestPoll_DeviceErrorPropagates(t *testing.T) {
	dev := &fakeDevice{readErr: errors.New("phy fifo overrun")}
	s := newTestSeqs(dev, &fakePort{})
	if _, err := s.Poll(0); err == nil {
		t.Fatal("expected device read error")
	}
}

func TestPoll_RecvErrorReportsPriorProgress(t *testing.T) {
	dev := &fakeDevice{inbound: [][]byte{{1}, {2}}}
	port := &fakePort{}
	s := newTestSeqs(dev, port)

	// Fail on the second frame only.
	first := true
	s.port = recvFunc(func(frame []byte) error {
		if first {
			first = false
			return port.RecvEth(frame)
		}
		return errors.New("bad frame")
	})

	progress, err := s.Poll(0)
	if err == nil {
		t.Fatal("expected recv error")
	}
	if !progress {
		t.Fatal("progress made before the failure must still be reported")
	}
}

// recvFunc adapts a function to ethPort with no outbound traffic.
type recvFunc func(frame []byte) error

func (f recvFunc) RecvEth(frame []byte) error      { return f(frame) }
func (f recvFunc) HandleEth(dst []byte) (int, error) { return 0, nil }
