package service

import "errors"

var (
	ErrInvalid  = errors.New("invalid")
	ErrUpstream = errors.New("upstream completion failed")
)
