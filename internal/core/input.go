package core

// Action represents a semantic player action, abstracted from physical key presses.
type Action int

const (
	ActionNone        Action = iota
	ActionPause              // Space, P - toggle pause
	ActionRestart            // R - rewind to the first tick
	ActionFaster             // +, = - raise ticks per second
	ActionSlower             // -, _ - lower ticks per second
	ActionStepForward        // Right - one tick forward while paused
	ActionStepBack           // Left - one tick back while paused
	ActionLoop               // L - toggle looping
	ActionConfirm            // Enter - confirm selection in menu
	ActionBack               // B, Escape - go back to menu
	ActionQuit               // Q, Ctrl+C - exit player/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionFaster:
		return "Faster"
	case ActionSlower:
		return "Slower"
	case ActionStepForward:
		return "StepForward"
	case ActionStepBack:
		return "StepBack"
	case ActionLoop:
		return "Loop"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
