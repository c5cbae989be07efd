// internal/phy/phy_test.go
package phy

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

type fakeBus struct {
	reads []uint16
	errs  []error
	calls int
}

func (b *fakeBus) Read(phyAddr, devAddr uint8, regAddr uint16) (uint16, error) {
	i := b.calls
	b.calls++
	var err error
	if i < len(b.errs) {
		err = b.errs[i]
	}
	var v uint16
	if i < len(b.reads) {
		v = b.reads[i]
	}
	return v, err
}

func (b *fakeBus) Write(phyAddr, devAddr uint8, regAddr, value uint16) error {
	return nil
}

func TestBasicMonitor_LinkUp(t *testing.T) {
	bus := &fakeBus{reads: []uint16{0x0004, 0x0004}}
	m := NewBasicMonitor(bus, 0)
	if !m.PollLink() {
		t.Fatal("PollLink()=false with link bit set")
	}
	if bus.calls != 2 {
		t.Fatalf("bus reads=%d want 2 (latched-low bit needs a double read)", bus.calls)
	}
}

func TestBasicMonitor_LatchedLossCleared(t *testing.T) {
	// First read carries the latched loss, second the live state.
	bus := &fakeBus{reads: []uint16{0x0000, 0x0004}}
	m := NewBasicMonitor(bus, 0)
	if !m.PollLink() {
		t.Fatal("PollLink() must trust the second read")
	}
}

func TestBasicMonitor_LinkDown(t *testing.T) {
	bus := &fakeBus{reads: []uint16{0x0004, 0x0000}}
	m := NewBasicMonitor(bus, 0)
	if m.PollLink() {
		t.Fatal("PollLink()=true with link bit clear")
	}
}

func TestBasicMonitor_BusErrorIsAbsent(t *testing.T) {
	bus := &fakeBus{errs: []error{errors.New("mdio timeout")}}
	m := NewBasicMonitor(bus, 0)
	if m.PollLink() {
		t.Fatal("PollLink()=true on bus error")
	}
}

func TestCarrierMonitor(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "carrier")
	m := &CarrierMonitor{path: path}

	if m.PollLink() {
		t.Fatal("PollLink()=true with no carrier attribute")
	}

	if err := os.WriteFile(path, []byte("1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if !m.PollLink() {
		t.Fatal("PollLink()=false with carrier=1")
	}

	if err := os.WriteFile(path, []byte("0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if m.PollLink() {
		t.Fatal("PollLink()=true with carrier=0")
	}
}
