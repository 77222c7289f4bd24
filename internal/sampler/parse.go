// internal/sampler/parse.go
package sampler

import (
	"fmt"
	"strconv"
	"strings"
)

// rxBytesField is the 0-based position of the received-byte counter in
// the tab-separated `wg show <iface> dump` output, counting fields
// across the whole capture. The dump layout is a stable external
// contract: the interface line carries four fields, the first peer line
// carries eight, so field 8 is the first peer's transfer-rx.
const rxBytesField = 8

// minDumpFields is the smallest field count a dump with at least one
// peer can have.
const minDumpFields = 10

// ParseRxBytes extracts the receive counter from raw dump output.
// Pure parse. No IO. No side effects.
func ParseRxBytes(out string) (uint64, error) {
	fields := strings.Split(out, "\t")
	if len(fields) < minDumpFields {
		return 0, fmt.Errorf("sampler: unexpected dump output: want >= %d tab-separated fields, got %d", minDumpFields, len(fields))
	}

	rx, err := strconv.ParseUint(fields[rxBytesField], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("sampler: receive counter field %q is not an unsigned integer: %w", fields[rxBytesField], err)
	}

	return rx, nil
}
