// internal/netproc/types.go
package netproc

// UpdateState tells the caller whether a tick changed anything.
type UpdateState int

const (
	// NoChange means the stack neither consumed nor produced traffic.
	NoChange UpdateState = iota
	// Updated means stack state may have changed and dependent work
	// (display refresh, watchdog feed) should run.
	Updated
)

func (s UpdateState) String() string {
	if s == Updated {
		return "updated"
	}
	return "no-change"
}

// Stack is the embedded network stack as seen by the update cycle.
// The processor depends on this contract only; protocol internals are
// opaque to it.
type Stack interface {
	// Poll services inbound and outbound traffic at the given time and
	// reports whether any progress was made. A non-nil error is an
	// opaque diagnostic; the stack remains usable afterwards.
	Poll(nowMS uint32) (progress bool, err error)

	// HandleLinkReset restarts link-dependent state, e.g. DHCP address
	// acquisition. Assumed to always succeed.
	HandleLinkReset()
}

// LinkMonitor reports physical link presence from the transceiver.
type LinkMonitor interface {
	PollLink() bool
}

// Clock is a monotonic millisecond counter with an arbitrary epoch.
type Clock interface {
	NowMS() uint32
}
