package wavelet

import (
	"errors"

	"github.com/mrjoshuak/go-wavelet/internal/extend"
	"github.com/mrjoshuak/go-wavelet/internal/filter"
)

// Errors returned by the engine. Failures wrap one of these, so callers can
// test with errors.Is.
var (
	// ErrConfiguration means no usable filter is configured, or the
	// filter lacks a capability the call needs.
	ErrConfiguration = errors.New("wavelet: invalid configuration")

	// ErrInputTooShort means the signal cannot support one decomposition
	// level with the configured filter.
	ErrInputTooShort = errors.New("wavelet: signal too short for filter")

	// ErrUnsupportedMode means the extension mode cannot be used by the
	// requested operation.
	ErrUnsupportedMode = errors.New("wavelet: unsupported extension mode")

	// ErrNumericInstability means a NaN or infinite sample was found while
	// AbortOnInvalidFloat is set, or a lossless value left the range the
	// lifting arithmetic or the destination type can hold.
	ErrNumericInstability = errors.New("wavelet: non-finite or out of range sample")

	// ErrInvalidExtension means a boundary extension could not be built.
	ErrInvalidExtension = extend.ErrInvalidExtension

	// ErrLengthMismatch means coefficient bands do not agree with their
	// length vector, or the length vector does not match the engine.
	ErrLengthMismatch = errors.New("wavelet: coefficient lengths do not match length vector")

	// ErrUnknownFilter means a wavelet name is not registered.
	ErrUnknownFilter = filter.ErrUnknownFilter
)
