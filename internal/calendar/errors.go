package calendar

import "errors"

// ErrNothingToReport indicates the requested span ends before a full week
// has elapsed, so no week can be aggregated yet.
var ErrNothingToReport = errors.New("nothing to report yet")
