package model

// TaskStatus represents the status of a speech task
type TaskStatus string

const (
	// TaskStatusPending means the utterance is queued but not started
	TaskStatusPending TaskStatus = "Pending"

	// TaskStatusStarting means the speech engine is being launched
	TaskStatusStarting TaskStatus = "Starting"

	// TaskStatusSpeaking means audio is playing
	TaskStatusSpeaking TaskStatus = "Speaking"

	// TaskStatusStopping means the task is in the process of stopping
	TaskStatusStopping TaskStatus = "Stopping"

	// TaskStatusStopped means the utterance was stopped or superseded
	TaskStatusStopped TaskStatus = "Stopped"

	// TaskStatusCompleted means the utterance was spoken to the end
	TaskStatusCompleted TaskStatus = "Completed"

	// TaskStatusError means the speech engine failed
	TaskStatusError TaskStatus = "Error"
)

// String returns the string representation of TaskStatus
func (ts TaskStatus) String() string {
	return string(ts)
}

// IsActive returns true if the task is in an active state
func (ts TaskStatus) IsActive() bool {
	return ts == TaskStatusStarting || ts == TaskStatusSpeaking || ts == TaskStatusStopping
}

// IsFinished returns true if the task is in a finished state (completed, stopped, or error)
func (ts TaskStatus) IsFinished() bool {
	return ts == TaskStatusCompleted || ts == TaskStatusStopped || ts == TaskStatusError
}
