// internal/health/instrument.go
package health

// Stack mirrors the update cycle's stack contract so instrumentation
// stays decoupled from the processor package.
type Stack interface {
	Poll(nowMS uint32) (bool, error)
	HandleLinkReset()
}

// Instrument wraps a stack so poll failures, recoveries and link resets
// land in the tracker without touching the update cycle itself.
func (t *Tracker) Instrument(s Stack) Stack {
	return &instrumented{s: s, t: t}
}

type instrumented struct {
	s Stack
	t *Tracker
}

func (i *instrumented) Poll(nowMS uint32) (bool, error) {
	progress, err := i.s.Poll(nowMS)
	if err != nil {
		i.t.recordPollError()
	} else {
		i.t.recordPollOK()
	}
	return progress, err
}

func (i *instrumented) HandleLinkReset() {
	i.t.recordReset()
	i.s.HandleLinkReset()
}
