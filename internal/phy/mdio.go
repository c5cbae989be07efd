// internal/phy/mdio.go
package phy

// MDIOBus is a HAL for MDIO bus access supporting both Clause 22 and
// Clause 45 devices. Implementations should use devAddr to select the
// framing:
//   - devAddr=0: Clause 22 framing (devAddr ignored in transaction)
//   - devAddr>=1: Clause 45 framing (PMA/PMD=1, WIS=2, PCS=3, PHY XS=4,
//     DTE XS=5, AN=7)
//
// Register address range: Clause 22 uses 0-31, Clause 45 uses 0-65535.
type MDIOBus interface {
	// Read reads a 16-bit register from the PHY.
	Read(phyAddr, devAddr uint8, regAddr uint16) (uint16, error)
	// Write writes a 16-bit value to a PHY register.
	Write(phyAddr, devAddr uint8, regAddr, value uint16) error
}

// Standard Clause 22 registers used for link supervision.
const (
	RegBMCR uint16 = 0x00
	RegBMSR uint16 = 0x01
)

// bmsrLinkStatus is BMSR bit 2, latched-low per 802.3.
const bmsrLinkStatus uint16 = 1 << 2

// BasicMonitor reports link presence from the standard BMSR register of
// a Clause 22 PHY (LAN87xx-class parts).
type BasicMonitor struct {
	bus  MDIOBus
	addr uint8
}

// NewBasicMonitor supervises the PHY at phyAddr on the given bus.
func NewBasicMonitor(bus MDIOBus, phyAddr uint8) *BasicMonitor {
	return &BasicMonitor{bus: bus, addr: phyAddr}
}

// PollLink reads BMSR twice: the link-status bit latches low on loss,
// so the first read clears any latched loss and the second reports the
// current state. Bus errors count as link absent.
func (m *BasicMonitor) PollLink() bool {
	if _, err := m.bus.Read(m.addr, 0, RegBMSR); err != nil {
		return false
	}
	v, err := m.bus.Read(m.addr, 0, RegBMSR)
	if err != nil {
		return false
	}
	return v&bmsrLinkStatus != 0
}
