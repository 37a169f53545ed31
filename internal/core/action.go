package core

// Action represents a semantic input, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionPrimary        // Space - start, jump or restart depending on game state
	ActionQuit           // Q, Ctrl+C - exit the program (platform only)
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionPrimary:
		return "Primary"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
