package models

import (
	"time"

	"brewmatic/internal/core"
)

// MachineState is the persisted snapshot of the control core, written once
// per tick by the runner and read by the monitoring service.
type MachineState struct {
	ID        int           `json:"id"`
	Snapshot  core.Snapshot `json:"snapshot"`
	UpdatedAt time.Time     `json:"updated_at"`
}
