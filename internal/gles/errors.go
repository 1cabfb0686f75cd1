package gles

import "fmt"

// AllocationError reports a GL object that came back as the null handle.
type AllocationError struct {
	Object string
}

func (e *AllocationError) Error() string {
	return fmt.Sprintf("gles: could not create %s", e.Object)
}

// UnsupportedPlatformError reports a context older than the renderer needs.
type UnsupportedPlatformError struct {
	Have     Version
	Want     Version
	Reported string
}

func (e *UnsupportedPlatformError) Error() string {
	if e.Reported == "" {
		return fmt.Sprintf("gles: %s required, version string unavailable", e.Want)
	}
	return fmt.Sprintf("gles: %s required, context reports %q", e.Want, e.Reported)
}
