package domain

// Status defines the lifecycle phase of a Runner.
type Status string

const (
	StatusIdle          Status = "idle"           // Not started
	StatusRunning       Status = "running"        // Executing the action sequence
	StatusAwaitingInput Status = "awaiting_input" // Blocked on the final read
	StatusTerminated    Status = "terminated"     // Sink state reached
)
