package ttynamed

import (
	"errors"
	"fmt"
	"strings"
)

// Predefined error types for robust error handling
var (
	ErrEnumeration      = errors.New("unable to enumerate serial devices")
	ErrDeviceNotFound   = errors.New("device is not an attached USB serial device")
	ErrNameNotBound     = errors.New("no binding stored under that name")
	ErrDeviceNotPresent = errors.New("bound device is not currently attached")
	ErrAmbiguousMatch   = errors.New("multiple attached devices match the stored criteria")

	// USB reset errors
	ErrUSBResetNotAvailable = errors.New("usbreset utility not available")
)

// AmbiguousMatchError reports every attached device that matched a binding,
// so the user can rebind with stronger criteria. Unwraps to
// ErrAmbiguousMatch for errors.Is checks.
type AmbiguousMatchError struct {
	Name       string
	Candidates []string
}

func (e *AmbiguousMatchError) Error() string {
	return fmt.Sprintf("multiple attached devices match %q: %s",
		e.Name, strings.Join(e.Candidates, ", "))
}

func (e *AmbiguousMatchError) Unwrap() error { return ErrAmbiguousMatch }
