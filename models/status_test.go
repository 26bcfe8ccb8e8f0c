package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected ProjectStatus
		wantErr  bool
	}{
		{name: "idea", input: "idea", expected: StatusIdea},
		{name: "active", input: "active", expected: StatusActive},
		{name: "completed", input: "completed", expected: StatusCompleted},
		{name: "legacy complete spelling", input: "complete", expected: StatusCompleted},
		{name: "mixed case", input: "Active", expected: StatusActive},
		{name: "surrounding whitespace", input: "  idea ", expected: StatusIdea},
		{name: "unknown", input: "paused", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, err := ParseStatus(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, status)
		})
	}
}

// Both spellings of the terminal state are one variant past the data
// boundary; no comparison elsewhere needs to know about "complete".
func TestStatusNormalization_SingleTerminalState(t *testing.T) {
	spelled, err := ParseStatus("completed")
	require.NoError(t, err)
	legacy, err := ParseStatus("complete")
	require.NoError(t, err)

	assert.Equal(t, spelled, legacy)
	assert.True(t, spelled.Valid())
}

func TestScanStatus_PreservesUnknownValues(t *testing.T) {
	assert.Equal(t, StatusCompleted, ScanStatus("complete"))
	assert.Equal(t, ProjectStatus("weird"), ScanStatus("weird"))
}

func TestProjectStatus_UnmarshalJSON(t *testing.T) {
	var p struct {
		Status ProjectStatus `json:"status"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"status":"complete"}`), &p))
	assert.Equal(t, StatusCompleted, p.Status)

	assert.Error(t, json.Unmarshal([]byte(`{"status":"bogus"}`), &p))
}
