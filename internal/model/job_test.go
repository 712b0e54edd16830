package model

import (
	"strings"
	"testing"
)

func TestNewPrintJob(t *testing.T) {
	job := NewPrintJob("ABC123")

	if job.Value != "ABC123" {
		t.Errorf("Expected value 'ABC123', got '%s'", job.Value)
	}
	if job.Status != JobStatusPending {
		t.Errorf("Expected status Pending, got %s", job.Status)
	}
	if job.SubmittedAt.IsZero() {
		t.Error("Expected SubmittedAt to be set")
	}
	if !job.FinishedAt.IsZero() {
		t.Error("Expected FinishedAt to be zero for a new job")
	}
}

func TestGenerateJobID(t *testing.T) {
	id1 := GenerateJobID()
	id2 := GenerateJobID()

	if id1 == id2 {
		t.Error("Expected different job IDs")
	}
	if !strings.HasPrefix(id1, "job-") {
		t.Errorf("Expected ID to start with 'job-', got: %s", id1)
	}

	// job- + 36 chars for UUID
	if len(id1) != len("job-")+36 {
		t.Errorf("Expected ID length %d, got %d for ID: %s", len("job-")+36, len(id1), id1)
	}
}
