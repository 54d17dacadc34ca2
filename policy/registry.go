package policy

import (
	"fmt"
	"strconv"

	"github.com/arloliu/stdioworker/types"
)

// Names lists the built-in variant names.
func Names() []string {
	return []string{VolumeName, LatencyName}
}

// New creates a built-in policy by variant name.
//
// Parameters:
//   - name: "volume" or "latency"
//   - opts: Options passed to the policy constructor
//
// Returns:
//   - types.Policy: The new policy
//   - error: types.ErrUnknownVariant for any other name
func New(name string, opts ...Option) (types.Policy, error) {
	switch name {
	case VolumeName:
		return NewVolume(opts...), nil
	case LatencyName:
		return NewLatency(opts...), nil
	default:
		return nil, fmt.Errorf("%w: %q (must be one of: volume, latency)", types.ErrUnknownVariant, name)
	}
}

func formatRowsNotice(rows int) string {
	return "returning " + strconv.Itoa(rows) + " rows"
}

func formatWaitNotice(seconds int) string {
	return "Waiting " + strconv.Itoa(seconds) + " seconds"
}
