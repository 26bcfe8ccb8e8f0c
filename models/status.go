package models

import (
	"fmt"
	"strings"
)

// ProjectStatus is the lifecycle state of a Social Action Project.
// Historical data contains two spellings of the terminal state
// ("completed" and "complete"); both are normalized to StatusCompleted
// once, at the point data enters the system, so comparisons elsewhere
// never need to know about the legacy spelling.
type ProjectStatus string

const (
	StatusIdea      ProjectStatus = "idea"
	StatusActive    ProjectStatus = "active"
	StatusCompleted ProjectStatus = "completed"
)

// ParseStatus normalizes a raw status string into a ProjectStatus.
// Accepts the legacy "complete" spelling and maps it to StatusCompleted.
func ParseStatus(raw string) (ProjectStatus, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "idea":
		return StatusIdea, nil
	case "active":
		return StatusActive, nil
	case "completed", "complete":
		return StatusCompleted, nil
	default:
		return "", fmt.Errorf("unknown project status %q", raw)
	}
}

// Valid reports whether s is one of the canonical status values.
func (s ProjectStatus) Valid() bool {
	switch s {
	case StatusIdea, StatusActive, StatusCompleted:
		return true
	}
	return false
}

// UnmarshalJSON normalizes status values on the JSON read path.
func (s *ProjectStatus) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(string(data), `"`)
	parsed, err := ParseStatus(raw)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// ScanStatus normalizes status values on the database read path.
// Rows written before the spelling was unified may still hold "complete".
func ScanStatus(raw string) ProjectStatus {
	parsed, err := ParseStatus(raw)
	if err != nil {
		// Unknown historical value; surface it as-is rather than drop the row.
		return ProjectStatus(raw)
	}
	return parsed
}
