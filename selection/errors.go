package selection

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// ErrNoSuitableDevice is returned by Select when no enumerated device
// scores above zero, including when there were no devices at all.
var ErrNoSuitableDevice = errors.New("failed to find a suitable GPU")

// BackendQueryError wraps a failed backend query. These are never retried
// and abort the whole selection, not just the device being looked at.
type BackendQueryError struct {
	Op     string
	Device string
	Err    error
}

func (e *BackendQueryError) Error() string {
	if e.Device == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s (%s): %v", e.Op, e.Device, e.Err)
}

func (e *BackendQueryError) Unwrap() error {
	return e.Err
}

func queryError(op, device string, err error) error {
	return errors.WithStack(&BackendQueryError{Op: op, Device: device, Err: err})
}
