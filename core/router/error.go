package router

import "errors"

var (
	ErrInvalidRegexp  = errors.New("invalid route regexp pattern")
	ErrInvalidMethod  = errors.New("invalid http method")
	ErrInvalidPattern = errors.New("invalid route path pattern")
	ErrNilHandler     = errors.New("nil route handler")
)
