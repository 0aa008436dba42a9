package models

import "time"

// Event types appended by the service layer.
const (
	EventButton        = "BUTTON"
	EventRefill        = "REFILL"
	EventOverride      = "OVERRIDE"
	EventReset         = "RESET"
	EventBrewStart     = "BREW_START"
	EventBrewComplete  = "BREW_COMPLETE"
	EventBrewAbort     = "BREW_ABORT"
	EventEmergencyStop = "EMERGENCY_STOP"
	EventError         = "ERROR"
	EventErrorCleared  = "ERROR_CLEARED"
)

// BrewEvent is a single log entry.
type BrewEvent struct {
	EventID     string    `json:"event_id"`
	OccurredAt  time.Time `json:"occurred_at"`
	Type        string    `json:"type"`
	Description string    `json:"description"` // human-readable
	Metadata    any       `json:"metadata,omitempty"`
}
