package main

import (
	"context"
	"log"
	"net"
	"net/netip"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gbisson-phys/stabilizer/internal/clock"
	"github.com/gbisson-phys/stabilizer/internal/config"
	"github.com/gbisson-phys/stabilizer/internal/health"
	"github.com/gbisson-phys/stabilizer/internal/netproc"
	"github.com/gbisson-phys/stabilizer/internal/phy"
	"github.com/gbisson-phys/stabilizer/internal/stack"
	"github.com/gbisson-phys/stabilizer/internal/stream"
	"github.com/gbisson-phys/stabilizer/internal/tui"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: stabd <config.yaml>")
	}

	// --------------------
	// Load + validate config
	// --------------------

	cfg, err := config.Load(os.Args[1])
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}
	if err := config.Validate(cfg); err != nil {
		log.Fatalf("config validation failed: %v", err)
	}
	config.Normalize(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --------------------
	// PHY monitor
	// --------------------

	monitor, closeMonitor := buildPHY(cfg.Stabd.PHY)
	defer closeMonitor()

	// --------------------
	// Stack over TAP
	// --------------------

	dev, err := stack.OpenTap(cfg.Stabd.Stack.Tap)
	if err != nil {
		log.Fatalf("tap open failed: %v", err)
	}
	defer dev.Close()

	netstack, err := stack.NewSeqs(stackConfig(cfg.Stabd.Stack), dev)
	if err != nil {
		log.Fatalf("stack build failed: %v", err)
	}

	// --------------------
	// Update cycle
	// --------------------

	tracker := health.NewTracker()
	proc := netproc.New(tracker.Instrument(netstack), monitor, clock.NewMillis())

	interval := time.Duration(cfg.Stabd.Poll.IntervalMs) * time.Millisecond
	go runLoop(ctx, proc, tracker, interval)

	// --------------------
	// Optional stream receiver
	// --------------------

	var recv *stream.Receiver
	var chans *stream.ChannelMonitor
	if sc := cfg.Stabd.Stream; sc != nil {
		recv, err = stream.NewReceiver(stream.ReceiverConfig{
			Listen:    sc.Listen,
			QueueSize: sc.Queue,
		})
		if err != nil {
			log.Fatalf("stream receiver failed: %v", err)
		}
		go func() {
			if err := recv.Run(ctx); err != nil && ctx.Err() == nil {
				log.Printf("stream receiver stopped: %v", err)
			}
		}()

		chans = stream.NewChannelMonitor()
		go chans.Run(ctx, recv.Frames())
	}

	// --------------------
	// Optional status export (1 Hz, write on change)
	// --------------------

	if ec := cfg.Stabd.Export; ec != nil {
		writer, err := health.NewStatusWriter(health.ExportConfig{
			Endpoint: ec.Endpoint,
			UnitID:   ec.UnitID,
			Address:  ec.Address,
			Timeout:  time.Duration(ec.TimeoutMs) * time.Millisecond,
		})
		if err != nil {
			log.Fatalf("status export failed: %v", err)
		}
		defer writer.Close()
		go runExport(ctx, tracker, writer)
	}

	// --------------------
	// Foreground: TUI or block until signalled
	// --------------------

	if cfg.Stabd.TUI {
		p := tea.NewProgram(
			tui.NewStatusModel(tracker, recv, chans, cfg.Stabd.Stack.Tap),
			tea.WithAltScreen(),
		)
		if _, err := p.Run(); err != nil {
			log.Printf("tui error: %v", err)
		}
		stop()
		return
	}

	<-ctx.Done()
}

// runLoop is the superloop: one processor tick per interval.
func runLoop(ctx context.Context, proc *netproc.Processor, tracker *health.Tracker, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			state := proc.Update()
			tracker.RecordTick(state == netproc.Updated, proc.LinkUp())
		}
	}
}

// runExport re-asserts the status block on start, then writes whenever
// the snapshot changes. SecondsDown advances while the link is out, so
// outages refresh once per second.
func runExport(ctx context.Context, tracker *health.Tracker, writer *health.StatusWriter) {
	last := tracker.Snapshot()
	if err := writer.Write(last); err != nil {
		log.Printf("status write failed on start: %v", err)
	}

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			snap := tracker.Snapshot()
			if snap == last {
				continue
			}
			if err := writer.Write(snap); err != nil {
				log.Printf("status write failed: %v", err)
				continue
			}
			last = snap
		}
	}
}

func buildPHY(cfg config.PHYConfig) (netproc.LinkMonitor, func()) {
	switch cfg.Kind {
	case "carrier":
		return phy.NewCarrierMonitor(cfg.Carrier.Interface), func() {}

	case "modbus":
		m, err := phy.NewModbusMonitor(phy.ModbusConfig{
			Endpoint: cfg.Modbus.Endpoint,
			UnitID:   cfg.Modbus.UnitID,
			Input:    cfg.Modbus.Input,
			Timeout:  time.Duration(cfg.Modbus.TimeoutMs) * time.Millisecond,
		})
		if err != nil {
			log.Fatalf("phy build failed (modbus): %v", err)
		}
		return m, func() { m.Close() }

	case "arp":
		m, err := phy.NewARPProbe(phy.ARPProbeConfig{
			Interface: cfg.ARP.Interface,
			Gateway:   cfg.ARP.Gateway,
			Timeout:   time.Duration(cfg.ARP.TimeoutMs) * time.Millisecond,
		})
		if err != nil {
			log.Fatalf("phy build failed (arp): %v", err)
		}
		return m, m.Close

	default:
		// Unreachable after config.Validate.
		log.Fatalf("phy build failed: unknown kind %q", cfg.Kind)
		return nil, nil
	}
}

func stackConfig(cfg config.StackConfig) stack.SeqsConfig {
	hw, err := net.ParseMAC(cfg.MAC)
	if err != nil {
		log.Fatalf("stack mac: %v", err)
	}
	var mac [6]byte
	copy(mac[:], hw)

	out := stack.SeqsConfig{
		MAC:      mac,
		Hostname: cfg.Hostname,
		MTU:      uint16(cfg.MTU),
	}
	if cfg.Static != "" {
		out.StaticAddr = netip.MustParseAddr(cfg.Static)
	}
	if cfg.Requested != "" {
		out.RequestedAddr = netip.MustParseAddr(cfg.Requested)
	}
	return out
}
