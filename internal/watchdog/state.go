// internal/watchdog/state.go
package watchdog

import "time"

// Phase labels the watchdog's position in the stall state machine.
// Used for log reporting only; the machine itself is the step function.
type Phase uint8

const (
	// PhaseTracking means the counter advanced on the latest sample.
	PhaseTracking Phase = iota

	// PhaseStalled means the counter is unchanged but within budget.
	PhaseStalled

	// PhaseRecovering means the stall budget is exhausted and the
	// recovery sequence runs. Always transient within one cycle.
	PhaseRecovering
)

func (p Phase) String() string {
	switch p {
	case PhaseTracking:
		return "tracking"
	case PhaseStalled:
		return "stalled"
	case PhaseRecovering:
		return "recovering"
	default:
		return "unknown"
	}
}

// state is the watchdog's only mutable record. Exclusively owned by
// the loop goroutine; never shared.
type state struct {
	lastRxBytes uint64
	lastChange  time.Time
}

// newState starts tracking from zero observed bytes at now. The very
// first sample is therefore treated as "changed" unless the true
// counter is already 0, in which case the first stall window counts
// from process start. Accepted edge case.
func newState(now time.Time) state {
	return state{lastRxBytes: 0, lastChange: now}
}

// reset returns the state to its initial values. Called right after a
// recovery sequence completes, whether or not the recovery actually
// restored traffic. Cool-down, not verification.
func (st *state) reset(now time.Time) {
	st.lastRxBytes = 0
	st.lastChange = now
}

// step applies one observation to the state and decides the phase.
//
// Any change in the counter resets the stall clock, including a
// decrease: a link reset or counter wrap looks like fresh traffic.
// The comparison is equality, not monotonic-increase.
//
// The timeout check is inclusive: elapsed == timeout already recovers.
func (st *state) step(rx uint64, now time.Time, timeout time.Duration) Phase {
	if rx != st.lastRxBytes {
		st.lastRxBytes = rx
		st.lastChange = now
		return PhaseTracking
	}

	if now.Sub(st.lastChange) >= timeout {
		return PhaseRecovering
	}

	return PhaseStalled
}
