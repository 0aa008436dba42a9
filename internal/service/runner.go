package service

import (
	"context"
	"time"

	"brewmatic/internal/core"
	"brewmatic/internal/logger"
	"brewmatic/internal/models"
	"brewmatic/internal/repository"

	"github.com/google/uuid"
)

// RunnerService drives the control core at the fixed tick period: it drains
// the input feed, advances the core by one tick, persists the published
// snapshot, and appends events for notable transitions.
type RunnerService struct {
	core      *core.Core
	feed      *inputFeed
	stateRepo repository.StateRepo
	eventRepo repository.EventRepo
	log       *logger.Logger

	last core.Snapshot
}

func NewRunnerService(c *core.Core, feed *inputFeed, stateRepo repository.StateRepo, eventRepo repository.EventRepo, log *logger.Logger) *RunnerService {
	return &RunnerService{
		core:      c,
		feed:      feed,
		stateRepo: stateRepo,
		eventRepo: eventRepo,
		log:       log,
		last:      c.Snapshot(),
	}
}

// Run ticks at the given interval until ctx is canceled.
func (s *RunnerService) Run(ctx context.Context, tick time.Duration) {
	t := time.NewTicker(tick)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-t.C:
			s.step(ctx, now.UTC())
		}
	}
}

func (s *RunnerService) step(ctx context.Context, now time.Time) {
	in, reset := s.feed.take()
	if reset {
		s.core.Reset()
		s.last = s.core.Snapshot()
	}

	snap := s.core.Tick(in)

	if err := s.stateRepo.Save(ctx, models.MachineState{
		ID:        1,
		Snapshot:  snap,
		UpdatedAt: now,
	}); err != nil && s.log != nil {
		s.log.Errorw("state_save_failed", "err", err, "tick", snap.Tick)
	}

	s.emitTransitions(ctx, now, snap)
	s.last = snap
}

// emitTransitions appends one event per notable edge between the previous and
// the current snapshot.
func (s *RunnerService) emitTransitions(ctx context.Context, now time.Time, snap core.Snapshot) {
	if snap.System.StartBrew {
		s.append(ctx, now, models.EventBrewStart, "Brew session started", map[string]any{
			"coffee_bin": snap.Menu.Selection.CoffeeBin,
			"drink_type": snap.Menu.Selection.Drink,
			"size":       snap.Menu.Selection.Size,
		})
	}
	if snap.Brew.CompletePulse {
		s.append(ctx, now, models.EventBrewComplete, "Brew session completed", map[string]any{
			"progress": snap.Brew.Progress,
		})
	}
	if snap.System.EmergencyStop {
		s.append(ctx, now, models.EventEmergencyStop, "Emergency stop: critical error during active brew", map[string]any{
			"errors": snap.Errors,
		})
	} else if snap.System.AbortBrew {
		s.append(ctx, now, models.EventBrewAbort, "Brew session aborted", nil)
	}
	if snap.Errors.Critical && !s.last.Errors.Critical {
		s.append(ctx, now, models.EventError, "Critical error latched", map[string]any{
			"errors": snap.Errors,
		})
	}
	if !snap.Errors.Critical && s.last.Errors.Critical {
		s.append(ctx, now, models.EventErrorCleared, "Critical error cleared", map[string]any{
			"warning_count": snap.Errors.WarningCount,
		})
	}
}

func (s *RunnerService) append(ctx context.Context, now time.Time, typ, desc string, meta any) {
	err := s.eventRepo.Append(ctx, models.BrewEvent{
		EventID:     uuid.NewString(),
		OccurredAt:  now,
		Type:        typ,
		Description: desc,
		Metadata:    meta,
	})
	if err != nil && s.log != nil {
		s.log.Errorw("event_append_failed", "err", err, "type", typ)
	}
}
