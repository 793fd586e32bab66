package scheduler

import "errors"

// ErrInputShape is returned for programmer-error-shaped input: an inverted
// date range, or a request/time-off block referencing a resident not on the
// roster. Per spec.md §7, this is the only condition the engine returns as
// an error rather than folding into the output as alerts.
var ErrInputShape = errors.New("scheduler: invalid input shape")
