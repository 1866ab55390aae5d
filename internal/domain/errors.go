package domain

import "errors"

var (
	// ErrInvalidArgument is returned for an empty report location, an unknown
	// artifact kind or an example without a usable location.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrIO is returned when a destination directory cannot be created.
	ErrIO = errors.New("io error")
)
