package printing

import "fmt"

// ErrorKind classifies dispatch failures
type ErrorKind int

const (
	// UnsupportedPlatform means this OS has no native printing backend
	UnsupportedPlatform ErrorKind = iota

	// PrinterUnavailable means the named printer could not be opened
	PrinterUnavailable

	// DriverFailure means the OS or printer driver failed mid-job
	DriverFailure
)

// String returns the string representation of ErrorKind
func (k ErrorKind) String() string {
	switch k {
	case UnsupportedPlatform:
		return "printing is not supported on this platform"
	case PrinterUnavailable:
		return "printer unavailable"
	case DriverFailure:
		return "printer driver failure"
	default:
		return "unknown print error"
	}
}

// Error is a print dispatch failure
type Error struct {
	Kind  ErrorKind
	Cause error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("print dispatch: %s: %v", e.Kind, e.Cause)
	}
	return "print dispatch: " + e.Kind.String()
}

func (e *Error) Unwrap() error { return e.Cause }
