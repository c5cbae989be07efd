// internal/config/config.go
package config

type Config struct {
	Stabd StabdConfig `yaml:"stabd"`
}

type StabdConfig struct {
	Poll   PollConfig    `yaml:"poll"`
	PHY    PHYConfig     `yaml:"phy"`
	Stack  StackConfig   `yaml:"stack"`
	Stream *StreamConfig `yaml:"stream"` // optional
	Export *ExportConfig `yaml:"export"` // optional
	TUI    bool          `yaml:"tui"`
}

// ---- POLL ----

type PollConfig struct {
	IntervalMs int `yaml:"interval_ms"`
}

// ---- PHY ----

// PHYConfig selects exactly one link monitor.
type PHYConfig struct {
	Kind    string         `yaml:"kind"` // carrier | modbus | arp
	Carrier *CarrierConfig `yaml:"carrier"`
	Modbus  *ModbusConfig  `yaml:"modbus"`
	ARP     *ARPConfig     `yaml:"arp"`
}

type CarrierConfig struct {
	Interface string `yaml:"interface"`
}

type ModbusConfig struct {
	Endpoint  string `yaml:"endpoint"`
	UnitID    uint8  `yaml:"unit_id"`
	Input     uint16 `yaml:"input"`
	TimeoutMs int    `yaml:"timeout_ms"`
}

type ARPConfig struct {
	Interface string `yaml:"interface"`
	Gateway   string `yaml:"gateway"`
	TimeoutMs int    `yaml:"timeout_ms"`
}

// ---- STACK ----

type StackConfig struct {
	Tap      string `yaml:"tap"`
	MAC      string `yaml:"mac"`
	Hostname string `yaml:"hostname"`
	MTU      int    `yaml:"mtu"`

	// Static assigns a fixed address and disables DHCP.
	Static string `yaml:"static"`
	// Requested hints the DHCP server at a preferred address.
	Requested string `yaml:"requested"`
}

// ---- STREAM ----

type StreamConfig struct {
	Listen string `yaml:"listen"`
	Queue  int    `yaml:"queue"`
}

// ---- EXPORT ----

// ExportConfig mirrors the daemon status block into a supervisory
// Modbus holding register window.
type ExportConfig struct {
	Endpoint  string `yaml:"endpoint"`
	UnitID    uint8  `yaml:"unit_id"`
	Address   uint16 `yaml:"address"`
	TimeoutMs int    `yaml:"timeout_ms"`
}
