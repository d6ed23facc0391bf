package controls

// Command is what an input event asks of the car. Every event maps to
// exactly one command.
type Command int

const (
	// CommandNone means nothing happened this frame; the target is left alone.
	CommandNone Command = iota
	CommandForward
	CommandReverse
	CommandRelease
)

func (c Command) String() string {
	switch c {
	case CommandForward:
		return "forward"
	case CommandReverse:
		return "reverse"
	case CommandRelease:
		return "release"
	}
	return "none"
}

// Target converts the command into a target velocity. ok is false for
// CommandNone.
func (c Command) Target(speed float64) (target float64, ok bool) {
	switch c {
	case CommandForward:
		return speed, true
	case CommandReverse:
		return -speed, true
	case CommandRelease:
		return 0, true
	}
	return 0, false
}

// Event is one discrete input signal from any source.
type Event int

const (
	ForwardKeyDown Event = iota
	ForwardKeyUp
	BackwardKeyDown
	BackwardKeyUp
	ForwardButtonDown
	ForwardButtonUp
	BackwardButtonDown
	BackwardButtonUp
	ForwardTouchStart
	ForwardTouchEnd
	BackwardTouchStart
	BackwardTouchEnd
	WheelUp
	WheelDown
)

var eventNames = [...]string{
	ForwardKeyDown:     "forward-key-down",
	ForwardKeyUp:       "forward-key-up",
	BackwardKeyDown:    "backward-key-down",
	BackwardKeyUp:      "backward-key-up",
	ForwardButtonDown:  "forward-button-down",
	ForwardButtonUp:    "forward-button-up",
	BackwardButtonDown: "backward-button-down",
	BackwardButtonUp:   "backward-button-up",
	ForwardTouchStart:  "forward-touch-start",
	ForwardTouchEnd:    "forward-touch-end",
	BackwardTouchStart: "backward-touch-start",
	BackwardTouchEnd:   "backward-touch-end",
	WheelUp:            "wheel-up",
	WheelDown:          "wheel-down",
}

func (e Event) String() string {
	if int(e) >= 0 && int(e) < len(eventNames) {
		return eventNames[e]
	}
	return "unknown"
}

// Bindings is the whole control surface. The wheel has no release: a scroll
// leaves the car cruising until another input arrives.
var Bindings = map[Event]Command{
	ForwardKeyDown:     CommandForward,
	ForwardKeyUp:       CommandRelease,
	BackwardKeyDown:    CommandReverse,
	BackwardKeyUp:      CommandRelease,
	ForwardButtonDown:  CommandForward,
	ForwardButtonUp:    CommandRelease,
	BackwardButtonDown: CommandReverse,
	BackwardButtonUp:   CommandRelease,
	ForwardTouchStart:  CommandForward,
	ForwardTouchEnd:    CommandRelease,
	BackwardTouchStart: CommandReverse,
	BackwardTouchEnd:   CommandRelease,
	WheelUp:            CommandForward,
	WheelDown:          CommandReverse,
}

// Resolve folds a frame's events into a single command. Sources are not
// arbitrated: the last event wins.
func Resolve(events []Event) Command {
	cmd := CommandNone
	for _, e := range events {
		if c, ok := Bindings[e]; ok {
			cmd = c
		}
	}
	return cmd
}
