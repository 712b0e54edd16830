package model

import "testing"

func TestJobStatusString(t *testing.T) {
	tests := []struct {
		status   JobStatus
		expected string
	}{
		{JobStatusPending, "Pending"},
		{JobStatusComposing, "Composing"},
		{JobStatusPrinting, "Printing"},
		{JobStatusCompleted, "Completed"},
		{JobStatusError, "Error"},
	}

	for _, test := range tests {
		if test.status.String() != test.expected {
			t.Errorf("Expected %s, got %s", test.expected, test.status.String())
		}
	}
}

func TestJobStatusIsActive(t *testing.T) {
	activeStatuses := []JobStatus{JobStatusComposing, JobStatusPrinting}
	inactiveStatuses := []JobStatus{JobStatusPending, JobStatusCompleted, JobStatusError}

	for _, status := range activeStatuses {
		if !status.IsActive() {
			t.Errorf("Expected %s to be active", status)
		}
	}
	for _, status := range inactiveStatuses {
		if status.IsActive() {
			t.Errorf("Expected %s to not be active", status)
		}
	}
}

func TestJobStatusIsFinished(t *testing.T) {
	finishedStatuses := []JobStatus{JobStatusCompleted, JobStatusError}
	unfinishedStatuses := []JobStatus{JobStatusPending, JobStatusComposing, JobStatusPrinting}

	for _, status := range finishedStatuses {
		if !status.IsFinished() {
			t.Errorf("Expected %s to be finished", status)
		}
	}
	for _, status := range unfinishedStatuses {
		if status.IsFinished() {
			t.Errorf("Expected %s to not be finished", status)
		}
	}
}
