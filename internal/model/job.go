package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// PrintJob represents a single generate-print-log sequence for one value
type PrintJob struct {
	ID          string
	Value       string
	Status      JobStatus
	LastError   string    // last error message if any
	SubmittedAt time.Time // when the value was submitted
	FinishedAt  time.Time // when the job reached a terminal state
}

// NewPrintJob creates a pending job for value with a fresh ID
func NewPrintJob(value string) *PrintJob {
	return &PrintJob{
		ID:          GenerateJobID(),
		Value:       value,
		Status:      JobStatusPending,
		SubmittedAt: time.Now(),
	}
}

// GenerateJobID generates a unique job ID
func GenerateJobID() string {
	return fmt.Sprintf("job-%s", uuid.NewString())
}
