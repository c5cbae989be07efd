// internal/config/normalize.go
package config

// Normalize applies post-validation defaults.
// It is allowed to mutate configuration.
// It MUST be called only after Validate().
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}
	s := &cfg.Stabd

	if s.Stack.MTU == 0 {
		s.Stack.MTU = 1500
	}
	if s.Stack.Hostname == "" {
		s.Stack.Hostname = "stabilizer"
	}

	if s.PHY.Modbus != nil && s.PHY.Modbus.TimeoutMs == 0 {
		s.PHY.Modbus.TimeoutMs = 1000
	}
	if s.PHY.ARP != nil && s.PHY.ARP.TimeoutMs == 0 {
		s.PHY.ARP.TimeoutMs = 500
	}

	if s.Stream != nil && s.Stream.Queue == 0 {
		s.Stream.Queue = 32
	}
	if s.Export != nil && s.Export.TimeoutMs == 0 {
		s.Export.TimeoutMs = 1000
	}
}
