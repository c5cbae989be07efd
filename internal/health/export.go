// internal/health/export.go
package health

import (
	"encoding/binary"
	"errors"
	"time"

	"github.com/goburrow/modbus"
)

// ExportConfig points at a holding register window on a supervisory
// Modbus device (PLC status memory, SCADA concentrator).
type ExportConfig struct {
	Endpoint string
	UnitID   byte
	Address  uint16
	Timeout  time.Duration
}

// StatusWriter delivers encoded status blocks to the register window.
type StatusWriter struct {
	handler *modbus.TCPClientHandler
	client  modbus.Client
	addr    uint16
}

// NewStatusWriter creates a connected writer (fail fast at startup).
func NewStatusWriter(cfg ExportConfig) (*StatusWriter, error) {
	if cfg.Endpoint == "" {
		return nil, errors.New("health: export endpoint required")
	}
	h := modbus.NewTCPClientHandler(cfg.Endpoint)
	h.Timeout = cfg.Timeout
	h.SlaveId = cfg.UnitID
	if err := h.Connect(); err != nil {
		return nil, err
	}
	return &StatusWriter{
		handler: h,
		client:  modbus.NewClient(h),
		addr:    cfg.Address,
	}, nil
}

// Close releases the TCP connection.
func (w *StatusWriter) Close() error {
	return w.handler.Close()
}

// Write delivers one full status block.
func (w *StatusWriter) Write(s Snapshot) error {
	regs := Encode(s)
	buf := make([]byte, 2*len(regs))
	for i, r := range regs {
		binary.BigEndian.PutUint16(buf[2*i:], r)
	}
	_, err := w.client.WriteMultipleRegisters(w.addr, uint16(len(regs)), buf)
	return err
}
