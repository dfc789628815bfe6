package model

import "testing"

func TestRunStatus_IsActive(t *testing.T) {
	tests := []struct {
		status   RunStatus
		expected bool
	}{
		{RunStatusPending, true},
		{RunStatusRunning, true},
		{RunStatusCompleted, false},
		{RunStatusFailed, false},
	}

	for _, test := range tests {
		result := test.status.IsActive()
		if result != test.expected {
			t.Errorf("RunStatus(%s).IsActive() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestRunStatus_IsFinished(t *testing.T) {
	tests := []struct {
		status   RunStatus
		expected bool
	}{
		{RunStatusPending, false},
		{RunStatusRunning, false},
		{RunStatusCompleted, true},
		{RunStatusFailed, true},
	}

	for _, test := range tests {
		result := test.status.IsFinished()
		if result != test.expected {
			t.Errorf("RunStatus(%s).IsFinished() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestRunStatus_String(t *testing.T) {
	if got := RunStatusRunning.String(); got != "Running" {
		t.Errorf("RunStatus.String() = %s, expected Running", got)
	}
}
