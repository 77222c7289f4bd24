// internal/sampler/types.go
package sampler

// Snapshot is one observation of the interface's receive counter.
// Produced fresh per sample; never mutated.
type Snapshot struct {
	Interface string

	// RxBytes is the cumulative received-byte counter as reported
	// by the counter source. Expected, but not guaranteed, to be
	// non-decreasing: a link reset may wrap it back.
	RxBytes uint64
}
