package service

import (
	"context"
	"time"

	"brewmatic/internal/core"
	"brewmatic/internal/models"
	"brewmatic/internal/repository"
)

type MonitoringService struct {
	stateRepo repository.StateRepo
}

func NewMonitoringService(stateRepo repository.StateRepo) *MonitoringService {
	return &MonitoringService{stateRepo: stateRepo}
}

// GetStatus returns the latest persisted machine state.
// If no state is persisted yet, returns a baseline power-on snapshot.
func (s *MonitoringService) GetStatus(ctx context.Context) (models.MachineState, error) {
	state, err := s.stateRepo.Load(ctx)
	if err != nil {
		return models.MachineState{}, err
	}
	if state.ID == 0 {
		return s.baselineState(), nil
	}
	state.UpdatedAt = toUTC(state.UpdatedAt)
	return state, nil
}

// baselineState returns a sensible default snapshot for an uninitialized DB.
func (s *MonitoringService) baselineState() models.MachineState {
	return models.MachineState{
		ID: 1, // DB schema enforces single-row state with id=1
		Snapshot: core.Snapshot{
			Menu:   core.MenuStatus{State: core.MenuSplash},
			System: core.SystemStatus{State: core.SysInit, TargetMode: core.TempStandby},
			Brew:   core.BrewStatus{Phase: core.PhaseIdle},
		},
		UpdatedAt: time.Now().UTC(),
	}
}

// toUTC normalizes non-zero time to UTC, preserving zero values.
func toUTC(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return t.UTC()
}
