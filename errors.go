package dca

import "errors"

var (
	// ErrInvalidArgument is returned when a value is out of its domain
	// (non-positive amount, drawdown outside [0,100], illegal asset name).
	// Nothing is applied when it is returned.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotFound names the NotFound condition. Repositories, ledgers and
	// sessions never return it: a missing asset or purchase is reported as
	// an absent value or a false boolean.
	ErrNotFound = errors.New("not found")

	// ErrPersistence reports an I/O failure while saving or loading an asset.
	// A mutation that returns it has been applied in memory.
	ErrPersistence = errors.New("persistence failure")

	// ErrMalformedRecord reports that a persisted record could only be
	// partially decoded. The decoded value is still usable.
	ErrMalformedRecord = errors.New("malformed record")

	// ErrNoAsset is returned by session mutations when no asset is loaded.
	ErrNoAsset = errors.New("no asset loaded")
)
