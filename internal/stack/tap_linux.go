// internal/stack/tap_linux.go
package stack

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// TapDevice is a Linux TAP interface carrying raw Ethernet frames.
type TapDevice struct {
	fd   int
	name string
}

// OpenTap attaches to (or creates) the named TAP interface. The caller
// needs CAP_NET_ADMIN, or a persistent TAP owned by its user.
func OpenTap(name string) (*TapDevice, error) {
	fd, err := unix.Open("/dev/net/tun", unix.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("stack: open /dev/net/tun: %w", err)
	}

	ifr, err := unix.NewIfreq(name)
	if err != nil {
		unix.Close(fd)
		return nil, fmt.Errorf("stack: tap name %q: %w", name, err)
	}
	ifr.SetUint16(unix.IFF_TAP | unix.IFF_NO_PI)
	if err := unix.IoctlIfreq(fd, unix.TUNSETIFF, ifr); err != nil {
		unix.Close(fd)
		return nil, fmt.Errorf("stack: TUNSETIFF %q: %w", name, err)
	}

	if err := unix.SetNonblock(fd, true); err != nil {
		unix.Close(fd)
		return nil, fmt.Errorf("stack: set nonblock: %w", err)
	}

	return &TapDevice{fd: fd, name: name}, nil
}

// Name returns the interface name.
func (d *TapDevice) Name() string { return d.name }

// Close releases the TAP file descriptor.
func (d *TapDevice) Close() error { return unix.Close(d.fd) }

// ReadFrame is non-blocking: no pending frame reads as (0, nil).
func (d *TapDevice) ReadFrame(buf []byte) (int, error) {
	n, err := unix.Read(d.fd, buf)
	if err != nil {
		if err == unix.EAGAIN || err == unix.EWOULDBLOCK {
			return 0, nil
		}
		return 0, fmt.Errorf("stack: tap read: %w", err)
	}
	return n, nil
}

// WriteFrame writes one frame to the TAP interface.
func (d *TapDevice) WriteFrame(frame []byte) error {
	if _, err := unix.Write(d.fd, frame); err != nil {
		return fmt.Errorf("stack: tap write: %w", err)
	}
	return nil
}
