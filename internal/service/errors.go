package service

import "errors"

var (
	// ErrNotJPEG rejects a submission whose bytes do not carry a JPEG
	// signature. Checked synchronously, before any background work is
	// dispatched.
	ErrNotJPEG = errors.New("image is not a JPEG")

	ErrInvalidInput = errors.New("invalid input")
)
