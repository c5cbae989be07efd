// internal/config/validate.go
package config

import (
	"fmt"
	"net"
	"net/netip"
)

// Validate checks configuration correctness.
// It performs declarative validation only.
// It MUST NOT mutate configuration.
func Validate(cfg *Config) error {
	s := &cfg.Stabd

	// ------------------------------------------------------------
	// POLL
	// ------------------------------------------------------------

	if s.Poll.IntervalMs <= 0 {
		return fmt.Errorf("poll: interval_ms must be > 0, got %d", s.Poll.IntervalMs)
	}

	// ------------------------------------------------------------
	// PHY (exactly one monitor, with its block present)
	// ------------------------------------------------------------

	switch s.PHY.Kind {
	case "carrier":
		if s.PHY.Carrier == nil || s.PHY.Carrier.Interface == "" {
			return fmt.Errorf("phy: kind=carrier requires carrier.interface")
		}
	case "modbus":
		if s.PHY.Modbus == nil || s.PHY.Modbus.Endpoint == "" {
			return fmt.Errorf("phy: kind=modbus requires modbus.endpoint")
		}
	case "arp":
		if s.PHY.ARP == nil || s.PHY.ARP.Interface == "" || s.PHY.ARP.Gateway == "" {
			return fmt.Errorf("phy: kind=arp requires arp.interface and arp.gateway")
		}
		if ip := net.ParseIP(s.PHY.ARP.Gateway); ip == nil || ip.To4() == nil {
			return fmt.Errorf("phy: arp.gateway %q is not an IPv4 address", s.PHY.ARP.Gateway)
		}
	case "":
		return fmt.Errorf("phy: kind is required (carrier, modbus or arp)")
	default:
		return fmt.Errorf("phy: unknown kind %q", s.PHY.Kind)
	}

	// ------------------------------------------------------------
	// STACK
	// ------------------------------------------------------------

	if s.Stack.Tap == "" {
		return fmt.Errorf("stack: tap interface name is required")
	}
	if s.Stack.MAC == "" {
		return fmt.Errorf("stack: mac is required")
	}
	if hw, err := net.ParseMAC(s.Stack.MAC); err != nil {
		return fmt.Errorf("stack: mac %q: %w", s.Stack.MAC, err)
	} else if len(hw) != 6 {
		return fmt.Errorf("stack: mac %q is not a 48-bit address", s.Stack.MAC)
	}
	// Zero means "use the default"; anything else must fit the TAP
	// frame path (min IPv4 MTU up to jumbo) and the uint16 the stack
	// carries it in.
	if s.Stack.MTU != 0 && (s.Stack.MTU < 576 || s.Stack.MTU > 9000) {
		return fmt.Errorf("stack: mtu %d out of range [576, 9000]", s.Stack.MTU)
	}
	if s.Stack.Static != "" && s.Stack.Requested != "" {
		return fmt.Errorf("stack: static and requested are mutually exclusive")
	}
	for _, field := range []struct{ name, val string }{
		{"static", s.Stack.Static},
		{"requested", s.Stack.Requested},
	} {
		if field.val == "" {
			continue
		}
		addr, err := netip.ParseAddr(field.val)
		if err != nil {
			return fmt.Errorf("stack: %s %q: %w", field.name, field.val, err)
		}
		if !addr.Is4() {
			return fmt.Errorf("stack: %s %q must be IPv4", field.name, field.val)
		}
	}

	// ------------------------------------------------------------
	// STREAM / EXPORT (opt-in)
	// ------------------------------------------------------------

	if s.Stream != nil && s.Stream.Listen == "" {
		return fmt.Errorf("stream: listen address is required when stream is set")
	}
	if s.Export != nil && s.Export.Endpoint == "" {
		return fmt.Errorf("export: endpoint is required when export is set")
	}

	return nil
}
