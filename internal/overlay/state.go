package overlay

import "errors"

// State is the lifecycle state of a heatmap overlay
type State int

const (
	Uninitialized State = iota
	Hidden
	Visible
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Hidden:
		return "hidden"
	case Visible:
		return "visible"
	default:
		return "unknown"
	}
}

var (
	// ErrNotReady is returned for display actions on an overlay whose data has not loaded
	ErrNotReady = errors.New("overlay not ready")
	// ErrAlreadyInitialized is returned when attaching data to an overlay twice
	ErrAlreadyInitialized = errors.New("overlay already initialized")
)
