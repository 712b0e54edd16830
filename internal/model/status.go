package model

// JobStatus represents the status of a print job
type JobStatus string

const (
	// JobStatusPending means the job is accepted but not started
	JobStatusPending JobStatus = "Pending"

	// JobStatusComposing means the label image is being generated
	JobStatusComposing JobStatus = "Composing"

	// JobStatusPrinting means the label is being sent to the printer
	JobStatusPrinting JobStatus = "Printing"

	// JobStatusCompleted means the job finished and was recorded
	JobStatusCompleted JobStatus = "Completed"

	// JobStatusError means the job failed at some stage
	JobStatusError JobStatus = "Error"
)

// String returns the string representation of JobStatus
func (js JobStatus) String() string {
	return string(js)
}

// IsActive returns true if the job is in a running state
func (js JobStatus) IsActive() bool {
	return js == JobStatusComposing || js == JobStatusPrinting
}

// IsFinished returns true if the job is in a terminal state
func (js JobStatus) IsFinished() bool {
	return js == JobStatusCompleted || js == JobStatusError
}
