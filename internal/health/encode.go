// internal/health/encode.go
package health

// Encode converts a Snapshot into a full status block.
// Layout is protocol-locked. No IO. No side effects.
func Encode(s Snapshot) []uint16 {
	regs := make([]uint16, SlotsPerBlock)

	regs[SlotHealthCode] = s.Health
	if s.LinkUp {
		regs[SlotLinkUp] = 1
	}
	regs[SlotSecondsDown] = s.SecondsDown
	regs[SlotUpdates] = clamp16(s.Updates)
	regs[SlotNoChanges] = clamp16(s.NoChanges)
	regs[SlotPollErrors] = clamp16(s.PollErrors)
	regs[SlotResets] = clamp16(s.Resets)

	return regs
}
