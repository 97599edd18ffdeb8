package bridge

import (
	"errors"
	"fmt"
)

// Kind classifies a bridge failure so callers can branch on the failure
// class instead of parsing message text.
type Kind int

const (
	// KindUnknown is the zero kind, reported for errors that did not
	// originate in this package.
	KindUnknown Kind = iota

	// KindResolution means host:port did not resolve to a socket address.
	KindResolution

	// KindConnect means the TCP connect timed out or was refused.
	KindConnect

	// KindWrite means the request could not be written in full.
	KindWrite

	// KindNoResponse means the read timed out before any byte arrived,
	// the usual signal that the addon server is not running.
	KindNoResponse

	// KindMalformedResponse means bytes arrived but never formed a
	// complete JSON value.
	KindMalformedResponse

	// KindRemoteReported means the addon answered with status "error".
	KindRemoteReported

	// KindConfigMissing means the Blender per-user config root does not exist.
	KindConfigMissing

	// KindNoVersionFound means no directory under the config root parsed
	// as a Blender version.
	KindNoVersionFound

	// KindExecutableNotFound means the activation target is not a regular file.
	KindExecutableNotFound

	// KindActivationProcess means the headless Blender process exited non-zero.
	KindActivationProcess

	// KindActivationReported means the process exited cleanly but never
	// printed the success sentinel.
	KindActivationReported

	// KindUnsupportedPlatform means the operation has no implementation
	// for the current OS.
	KindUnsupportedPlatform
)

// String returns the stable name of the kind.
func (k Kind) String() string {
	switch k {
	case KindResolution:
		return "resolution"
	case KindConnect:
		return "connect"
	case KindWrite:
		return "write"
	case KindNoResponse:
		return "no_response"
	case KindMalformedResponse:
		return "malformed_response"
	case KindRemoteReported:
		return "remote_reported"
	case KindConfigMissing:
		return "config_missing"
	case KindNoVersionFound:
		return "no_version_found"
	case KindExecutableNotFound:
		return "executable_not_found"
	case KindActivationProcess:
		return "activation_process"
	case KindActivationReported:
		return "activation_reported"
	case KindUnsupportedPlatform:
		return "unsupported_platform"
	case KindUnknown:
		return "unknown"
	default:
		return "unknown"
	}
}

// Error is a classified bridge failure carrying a display message.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

// Error returns the display message.
func (e *Error) Error() string {
	return e.Message
}

// Unwrap exposes the underlying cause for errors.Is / errors.As chains.
func (e *Error) Unwrap() error {
	return e.Cause
}

// NewError builds a classified error with a formatted display message.
func NewError(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// WrapError builds a classified error that keeps cause on the unwrap chain.
func WrapError(kind Kind, cause error, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// KindOf returns the kind of err, or KindUnknown when err is not a bridge
// error (including nil).
func KindOf(err error) Kind {
	var be *Error
	if errors.As(err, &be) {
		return be.Kind
	}
	return KindUnknown
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
