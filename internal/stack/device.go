// internal/stack/device.go
package stack

// Device is a raw Ethernet frame device.
type Device interface {
	// ReadFrame is non-blocking and copies one pending frame into buf.
	// It returns 0 bytes when no frame is pending.
	ReadFrame(buf []byte) (int, error)
	// WriteFrame queues one frame for transmission.
	WriteFrame(frame []byte) error
}
