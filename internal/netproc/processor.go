// internal/netproc/processor.go
package netproc

import "log"

// Processor drives one network stack tick at a time: service the stack,
// then debounce the physical link. Single-threaded by contract; callers
// that share it own the synchronization.
type Processor struct {
	stack Stack
	phy   LinkMonitor
	clock Clock

	// networkWasReset is true while the link is absent and a reset has
	// already been issued for the current absent streak. False whenever
	// the last observation saw the link present.
	networkWasReset bool
	linkUp          bool

	logf func(format string, v ...any)
}

// New creates a processor that takes ownership of its collaborators.
// Collaborators are assumed initialized; no validation is performed.
func New(stack Stack, phy LinkMonitor, clock Clock) *Processor {
	return &Processor{
		stack: stack,
		phy:   phy,
		clock: clock,
		// Link assumed present at start, so the first absent
		// observation fires a reset.
		linkUp: true,
		logf:   log.Printf,
	}
}

// Update runs one tick and reports whether the stack made progress.
// It never fails: poll errors are logged and reported as Updated so the
// caller re-checks state it may otherwise have skipped.
func (p *Processor) Update() UpdateState {
	var state UpdateState
	switch progress, err := p.stack.Poll(p.clock.NowMS()); {
	case err != nil:
		p.logf("network error: %v", err)
		state = Updated
	case progress:
		state = Updated
	default:
		state = NoChange
	}

	// Reset link-dependent stack state at most once per absent streak.
	// A present observation rearms the debounce; repeated absent
	// observations are no-ops. This bounds DHCP traffic across a long
	// cable pull.
	link := p.phy.PollLink()
	p.linkUp = link
	switch {
	case link:
		p.networkWasReset = false
	case !p.networkWasReset:
		p.networkWasReset = true
		p.stack.HandleLinkReset()
	}

	// The reset above never rewrites the status already computed.
	return state
}

// LinkUp reports the most recent link observation.
func (p *Processor) LinkUp() bool { return p.linkUp }
