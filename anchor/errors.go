package anchor

import "errors"

var (
	// ErrAnchorQueryFailed implies the OS returned no usable taskbar or display geometry.
	// Recovered inside the tracker by the working-area fallback.
	ErrAnchorQueryFailed = errors.New("anchor query failed")

	// ErrHookInstallFailed implies the change notification could not be installed.
	// The tracker keeps running on per-tick polling alone.
	ErrHookInstallFailed = errors.New("anchor hook install failed")

	// ErrUnsupported implies the platform has no native taskbar introspection.
	ErrUnsupported = errors.New("taskbar introspection unsupported on this platform")
)
