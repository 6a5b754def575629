package fakejson

import "errors"

// Sentinel errors for common error conditions
var (
	ErrUnknownPolicy = errors.New("unknown policy")
	ErrUnknownPreset = errors.New("unknown preset")
	ErrInvalidShape  = errors.New("invalid shape")
)
