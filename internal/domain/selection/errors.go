package selection

import "errors"

// Sentinel errors for parsing externally supplied selection values.
var (
	ErrUnknownMetric = errors.New("unknown metric")
	ErrUnknownStatus = errors.New("unknown status")
	ErrUnknownTab    = errors.New("unknown tab")
)
