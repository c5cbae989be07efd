// internal/phy/modbus.go
package phy

import (
	"errors"
	"time"

	"github.com/goburrow/modbus"
)

// ModbusConfig selects one discrete input on a Modbus TCP device that
// mirrors the transceiver link state. Industrial media converters and
// managed gateways commonly expose per-port link this way.
type ModbusConfig struct {
	Endpoint string
	UnitID   byte
	Input    uint16
	Timeout  time.Duration
}

// ModbusMonitor polls a single discrete input for link presence.
type ModbusMonitor struct {
	handler *modbus.TCPClientHandler
	client  modbus.Client
	input   uint16
}

// NewModbusMonitor creates a connected monitor. Connection failure at
// startup is fatal to the caller; transport failures afterwards read as
// link absent.
func NewModbusMonitor(cfg ModbusConfig) (*ModbusMonitor, error) {
	if cfg.Endpoint == "" {
		return nil, errors.New("phy: modbus endpoint required")
	}
	h := modbus.NewTCPClientHandler(cfg.Endpoint)
	h.Timeout = cfg.Timeout
	h.SlaveId = cfg.UnitID
	if err := h.Connect(); err != nil {
		return nil, err
	}
	return &ModbusMonitor{
		handler: h,
		client:  modbus.NewClient(h),
		input:   cfg.Input,
	}, nil
}

// Close releases the TCP connection.
func (m *ModbusMonitor) Close() error {
	return m.handler.Close()
}

// PollLink reads the configured discrete input. Any transport or device
// failure counts as link absent.
func (m *ModbusMonitor) PollLink() bool {
	res, err := m.client.ReadDiscreteInputs(m.input, 1)
	if err != nil || len(res) == 0 {
		return false
	}
	return res[0]&0x01 != 0
}
