// internal/recovery/types.go
package recovery

// Plan is the fully-built recovery sequence for one interface.
// Immutable after construction; lifetime = process lifetime.
type Plan struct {
	// Interface is exported to every command as WG_INTERFACE.
	Interface string

	// PreCommand runs first when set. Empty means skip.
	PreCommand string

	// RestartCommand always runs.
	RestartCommand string

	// PostCommand runs last when set. Empty means skip.
	PostCommand string
}
