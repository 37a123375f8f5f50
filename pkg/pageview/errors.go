package pageview

import "errors"

// ErrNotReady is returned when the page data did not become available
// within the polling budget.
var ErrNotReady = errors.New("pageview.not_ready")
