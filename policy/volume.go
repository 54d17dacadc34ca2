package policy

import (
	"github.com/arloliu/stdioworker/types"
)

// VolumeName is the variant name of the volume policy.
const VolumeName = "volume"

// Volume writes a request-specific number of lines with no delay.
type Volume struct {
	opts options
}

var _ types.Policy = (*Volume)(nil)

// NewVolume creates the volume policy.
//
// For a request with parameter n the policy writes exactly n lines
// "counter:i:identifier" for i = 0..n-1 in ascending order. n = 0 yields an empty
// block.
//
// Parameters:
//   - opts: Optional logger
//
// Returns:
//   - *Volume: Initialized policy
//
// Example:
//
//	pol := policy.NewVolume(policy.WithLogger(log))
//	eng, err := stdioworker.NewEngine(&cfg, table, pol)
func NewVolume(opts ...Option) *Volume {
	return &Volume{opts: applyOptions(opts)}
}

// Name returns "volume".
func (v *Volume) Name() string {
	return VolumeName
}

// Respond writes req.Param lines tagged with the request counter.
//
// Parameters:
//   - req: Dispatched request; Param is the row count
//   - w: Destination for the data lines
//
// Returns:
//   - error: First write error from w
func (v *Volume) Respond(req types.Request, w types.LineWriter) error {
	v.opts.logger.Info(formatRowsNotice(req.Param), "partition", req.Partition, "counter", req.Counter)

	for i := range req.Param {
		if err := w.WriteLine(types.FormatLine(req.Counter, i, req.Partition)); err != nil {
			return err
		}
	}

	return nil
}
