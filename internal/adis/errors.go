package adis

import "errors"

var (
	// ErrInvalidSize is returned when a register access is requested with an
	// unsupported width. No bus transfer is attempted.
	ErrInvalidSize = errors.New("adis: unsupported register size")

	// ErrOutOfRange is returned when a field value exceeds the field's bit
	// width or a configuration value violates a device constraint. No bus
	// transfer is attempted and no settle delay is applied.
	ErrOutOfRange = errors.New("adis: value out of range")

	// ErrChecksum is returned when a burst frame fails checksum validation.
	// The frame payload is discarded.
	ErrChecksum = errors.New("adis: burst checksum mismatch")
)
