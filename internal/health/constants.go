// internal/health/constants.go
package health

// Daemon status block layout constants.
// These values define the export protocol and MUST NOT be configurable.

// ---- BLOCK GEOMETRY ----

// SlotsPerBlock is the fixed number of registers in the status block.
const SlotsPerBlock = 10

// ---- SLOT INDICES ----

// SlotHealthCode holds the daemon health state.
const SlotHealthCode = 0

// SlotLinkUp holds the last observed link state (0/1).
const SlotLinkUp = 1

// SlotSecondsDown holds the duration (in seconds) of the current link
// outage, saturating at 65535.
const SlotSecondsDown = 2

// SlotUpdates holds the saturating count of ticks that made progress.
const SlotUpdates = 3

// SlotNoChanges holds the saturating count of idle ticks.
const SlotNoChanges = 4

// SlotPollErrors holds the saturating count of stack poll failures.
const SlotPollErrors = 5

// SlotResets holds the saturating count of link resets issued.
const SlotResets = 6

// ---- RESERVED RANGE ----

// Slots 7-9 are reserved for future use.
const SlotReservedStart = 7
const SlotReservedEnd = 9

// ---- HEALTH CODES ----

// HealthUnknown represents a boot state with no tick recorded yet.
const HealthUnknown uint16 = 0

// HealthOK represents a healthy daemon with link present.
const HealthOK uint16 = 1

// HealthDegraded represents an unbroken streak of stack poll failures.
const HealthDegraded uint16 = 2

// HealthLinkDown represents an absent physical link.
const HealthLinkDown uint16 = 3
