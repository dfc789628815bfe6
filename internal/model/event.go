package model

// EventKind distinguishes output lines from the terminal completion event
type EventKind int

const (
	EventLine EventKind = iota
	EventCompleted
)

// ExitCodeUnknown is reported when the tool never started or its exit code could not be read
const ExitCodeUnknown = -1

// Event is sent by the runner worker to whoever consumes the run.
// Text is set for EventLine, ExitCode for EventCompleted.
type Event struct {
	Kind     EventKind
	Text     string
	ExitCode int
}

// LineEvent wraps one line of tool output
func LineEvent(text string) Event {
	return Event{Kind: EventLine, Text: text}
}

// CompletedEvent marks the end of a run
func CompletedEvent(exitCode int) Event {
	return Event{Kind: EventCompleted, ExitCode: exitCode}
}

// IsCompleted reports whether this is the terminal event
func (e Event) IsCompleted() bool {
	return e.Kind == EventCompleted
}
