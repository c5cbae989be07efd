// internal/stack/seqs.go
package stack

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"net/netip"

	"github.com/soypat/seqs/stacks"
)

const dhcpClientPort = 68

// If no lease lands within this window the exchange is aborted and
// restarted with a fresh transaction id.
const dhcpRetryMS = 8000

// ethPort is the slice of the port stack the adapter drives. Kept as an
// interface so Poll can be tested without a live stack.
type ethPort interface {
	RecvEth(frame []byte) error
	HandleEth(dst []byte) (int, error)
}

var _ ethPort = (*stacks.PortStack)(nil)

// SeqsConfig configures the embedded TCP/IP stack.
type SeqsConfig struct {
	MAC      [6]byte
	Hostname string
	MTU      uint16

	// RequestedAddr hints the DHCP server; zero means any.
	RequestedAddr netip.Addr
	// StaticAddr disables DHCP entirely when valid.
	StaticAddr netip.Addr

	Logger *slog.Logger
}

// Seqs adapts a soypat/seqs port stack and DHCP client to the update
// cycle's Stack contract.
type Seqs struct {
	port ethPort
	ps   *stacks.PortStack
	dhcp *stacks.DHCPClient
	dev  Device
	buf  []byte

	cfg      SeqsConfig
	acquired bool
	lastKick uint32
}

// NewSeqs builds the stack over the given frame device and starts
// address acquisition (or assigns the static address).
func NewSeqs(cfg SeqsConfig, dev Device) (*Seqs, error) {
	if dev == nil {
		return nil, errors.New("stack: device required")
	}
	if cfg.MTU == 0 {
		cfg.MTU = 1500
	}
	ps := stacks.NewPortStack(stacks.PortStackConfig{
		MAC:             cfg.MAC,
		MTU:             cfg.MTU,
		MaxOpenPortsUDP: 2,
		MaxOpenPortsTCP: 2,
		Logger:          cfg.Logger,
	})
	s := &Seqs{
		port: ps,
		ps:   ps,
		dev:  dev,
		buf:  make([]byte, int(cfg.MTU)+14),
		cfg:  cfg,
	}

	if cfg.StaticAddr.IsValid() {
		ps.SetAddr(cfg.StaticAddr)
		s.acquired = true
		return s, nil
	}

	s.dhcp = stacks.NewDHCPClient(ps, dhcpClientPort)
	if err := s.beginRequest(); err != nil {
		return nil, fmt.Errorf("stack: begin dhcp: %w", err)
	}
	return s, nil
}

// Addr returns the currently assigned address and whether one is held.
func (s *Seqs) Addr() (netip.Addr, bool) {
	if !s.acquired {
		return netip.Addr{}, false
	}
	return s.ps.Addr(), true
}

// Poll moves frames between the device and the stack. Progress means at
// least one frame crossed in either direction.
func (s *Seqs) Poll(nowMS uint32) (bool, error) {
	progress := false

	for {
		n, err := s.dev.ReadFrame(s.buf)
		if err != nil {
			return progress, fmt.Errorf("stack: device read: %w", err)
		}
		if n == 0 {
			break
		}
		if err := s.port.RecvEth(s.buf[:n]); err != nil {
			return progress, fmt.Errorf("stack: recv frame: %w", err)
		}
		progress = true
	}

	for {
		n, err := s.port.HandleEth(s.buf)
		if err != nil {
			return progress, fmt.Errorf("stack: handle frame: %w", err)
		}
		if n == 0 {
			break
		}
		if err := s.dev.WriteFrame(s.buf[:n]); err != nil {
			return progress, fmt.Errorf("stack: device write: %w", err)
		}
		progress = true
	}

	s.superviseDHCP(nowMS)
	return progress, nil
}

// HandleLinkReset aborts any in-flight DHCP exchange and starts a fresh
// one so the address is re-acquired on the new link. With a static
// address there is nothing to redo.
func (s *Seqs) HandleLinkReset() {
	if s.dhcp == nil {
		return
	}
	s.dhcp.Abort()
	s.acquired = false
	if err := s.beginRequest(); err != nil && s.cfg.Logger != nil {
		s.cfg.Logger.Error("dhcp restart", slog.String("err", err.Error()))
	}
}

func (s *Seqs) superviseDHCP(nowMS uint32) {
	if s.dhcp == nil || s.acquired {
		return
	}
	if s.dhcp.IsDone() {
		s.ps.SetAddr(s.dhcp.Offer())
		s.acquired = true
		return
	}
	// uint32 arithmetic: wrap-safe.
	if nowMS-s.lastKick > dhcpRetryMS {
		s.lastKick = nowMS
		s.dhcp.Abort()
		if err := s.beginRequest(); err != nil && s.cfg.Logger != nil {
			s.cfg.Logger.Error("dhcp retry", slog.String("err", err.Error()))
		}
	}
}

func (s *Seqs) beginRequest() error {
	return s.dhcp.BeginRequest(stacks.DHCPRequestConfig{
		RequestedAddr: s.cfg.RequestedAddr,
		Xid:           rand.Uint32(),
		Hostname:      s.cfg.Hostname,
	})
}
