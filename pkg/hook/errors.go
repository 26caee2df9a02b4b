package hook

import "fmt"

// Common hook errors.
var (
	// ErrNilAction is returned when registering a nil action.
	ErrNilAction = fmt.Errorf("hook action cannot be nil")

	// ErrEmptyVersionName is returned when resolve hooks leave no version name.
	ErrEmptyVersionName = fmt.Errorf("resolve hooks produced an empty version name")
)

// ErrUnsupportedPhase is returned when an unknown phase is used.
func ErrUnsupportedPhase(phase Phase) error {
	return fmt.Errorf("unsupported hook phase: %q", phase)
}
