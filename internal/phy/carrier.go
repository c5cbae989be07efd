// internal/phy/carrier.go
package phy

import (
	"bytes"
	"os"
	"path/filepath"
)

// CarrierMonitor reads link presence from the kernel's sysfs carrier
// attribute of one interface.
type CarrierMonitor struct {
	path string
}

// NewCarrierMonitor supervises the named interface, e.g. "eth0".
func NewCarrierMonitor(ifname string) *CarrierMonitor {
	return &CarrierMonitor{
		path: filepath.Join("/sys/class/net", ifname, "carrier"),
	}
}

// PollLink reports true iff the carrier attribute reads "1". A missing
// or unreadable attribute (interface down or gone) counts as absent.
func (m *CarrierMonitor) PollLink() bool {
	b, err := os.ReadFile(m.path)
	if err != nil {
		return false
	}
	return string(bytes.TrimSpace(b)) == "1"
}
