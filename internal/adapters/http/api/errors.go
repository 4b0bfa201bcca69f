package api

import "errors"

// Sentinel kinds for API errors.
var (
	ErrBadRequest  = errors.New("bad request")
	ErrRender      = errors.New("render failed")
	ErrInternal    = errors.New("internal error")
	ErrRateLimited = errors.New("too many theme toggles")
)
