// internal/config/validate_test.go
package config

import "testing"

// helper for a minimal valid config
func base() *Config {
	return &Config{
		Stabd: StabdConfig{
			Poll: PollConfig{IntervalMs: 10},
			PHY: PHYConfig{
				Kind:    "carrier",
				Carrier: &CarrierConfig{Interface: "eth0"},
			},
			Stack: StackConfig{
				Tap: "tap0",
				MAC: "02:00:00:12:34:56",
			},
		},
	}
}

// ---- tests ----

func TestValidate_Minimal(t *testing.T) {
	if err := Validate(base()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_IntervalRequired(t *testing.T) {
	cfg := base()
	cfg.Stabd.Poll.IntervalMs = 0
	if err := Validate(cfg); err == nil {
		t.Fatal("expected interval error, got nil")
	}
}

func TestValidate_UnknownPHYKind(t *testing.T) {
	cfg := base()
	cfg.Stabd.PHY.Kind = "telepathy"
	if err := Validate(cfg); err == nil {
		t.Fatal("expected phy kind error, got nil")
	}
}

func TestValidate_PHYKindNeedsBlock(t *testing.T) {
	cfg := base()
	cfg.Stabd.PHY.Kind = "modbus"
	cfg.Stabd.PHY.Modbus = nil
	if err := Validate(cfg); err == nil {
		t.Fatal("expected missing modbus block error, got nil")
	}
}

func TestValidate_ARPGatewayMustBeIPv4(t *testing.T) {
	cfg := base()
	cfg.Stabd.PHY.Kind = "arp"
	cfg.Stabd.PHY.ARP = &ARPConfig{Interface: "eth0", Gateway: "fe80::1"}
	if err := Validate(cfg); err == nil {
		t.Fatal("expected gateway error, got nil")
	}
}

func TestValidate_BadMAC(t *testing.T) {
	cfg := base()
	cfg.Stabd.Stack.MAC = "not-a-mac"
	if err := Validate(cfg); err == nil {
		t.Fatal("expected mac error, got nil")
	}
}

func TestValidate_MTUBounds(t *testing.T) {
	cfg := base()
	cfg.Stabd.Stack.MTU = 70000
	if err := Validate(cfg); err == nil {
		t.Fatal("expected mtu error for 70000, got nil")
	}

	cfg.Stabd.Stack.MTU = 100
	if err := Validate(cfg); err == nil {
		t.Fatal("expected mtu error for 100, got nil")
	}

	cfg.Stabd.Stack.MTU = 9000
	if err := Validate(cfg); err != nil {
		t.Fatalf("unexpected error for jumbo mtu: %v", err)
	}

	cfg.Stabd.Stack.MTU = 0 // default
	if err := Validate(cfg); err != nil {
		t.Fatalf("unexpected error for default mtu: %v", err)
	}
}

func TestValidate_StaticAndRequestedExclusive(t *testing.T) {
	cfg := base()
	cfg.Stabd.Stack.Static = "192.168.1.10"
	cfg.Stabd.Stack.Requested = "192.168.1.11"
	if err := Validate(cfg); err == nil {
		t.Fatal("expected exclusivity error, got nil")
	}
}

func TestValidate_StaticAddressParsed(t *testing.T) {
	cfg := base()
	cfg.Stabd.Stack.Static = "192.168.1.999"
	if err := Validate(cfg); err == nil {
		t.Fatal("expected address error, got nil")
	}
	cfg.Stabd.Stack.Static = "192.168.1.10"
	if err := Validate(cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestNormalize_Defaults(t *testing.T) {
	cfg := base()
	cfg.Stabd.Stream = &StreamConfig{Listen: "0.0.0.0:9293"}
	cfg.Stabd.PHY.ARP = &ARPConfig{Interface: "eth0", Gateway: "192.168.1.1"}
	Normalize(cfg)

	if cfg.Stabd.Stack.MTU != 1500 {
		t.Fatalf("mtu=%d want 1500", cfg.Stabd.Stack.MTU)
	}
	if cfg.Stabd.Stack.Hostname != "stabilizer" {
		t.Fatalf("hostname=%q", cfg.Stabd.Stack.Hostname)
	}
	if cfg.Stabd.Stream.Queue != 32 {
		t.Fatalf("queue=%d want 32", cfg.Stabd.Stream.Queue)
	}
	if cfg.Stabd.PHY.ARP.TimeoutMs != 500 {
		t.Fatalf("arp timeout=%d want 500", cfg.Stabd.PHY.ARP.TimeoutMs)
	}
}
