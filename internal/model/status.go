package model

// RunStatus represents the lifecycle state of a single runner invocation
type RunStatus string

const (
	// RunStatusPending means the run was created but the worker has not spawned the tool yet
	RunStatusPending RunStatus = "Pending"

	// RunStatusRunning means the child process is alive and its output is being read
	RunStatusRunning RunStatus = "Running"

	// RunStatusCompleted means the child process exited with status 0
	RunStatusCompleted RunStatus = "Completed"

	// RunStatusFailed means the tool could not be started, its output could not
	// be read, or it exited with a non-zero status
	RunStatusFailed RunStatus = "Failed"
)

// String returns the string representation of RunStatus
func (rs RunStatus) String() string {
	return string(rs)
}

// IsActive returns true while the run still owns a worker goroutine
func (rs RunStatus) IsActive() bool {
	return rs == RunStatusPending || rs == RunStatusRunning
}

// IsFinished returns true once the completion event has been emitted
func (rs RunStatus) IsFinished() bool {
	return rs == RunStatusCompleted || rs == RunStatusFailed
}
