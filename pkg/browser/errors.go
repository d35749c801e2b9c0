package browser

import "errors"

var (
	ErrNoSuchElement = errors.New("no such element")
	ErrStaleElement  = errors.New("stale element reference")
	ErrSessionClosed = errors.New("browser session closed")
)
