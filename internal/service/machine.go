package service

import (
	"context"
	"errors"
	"time"

	"brewmatic/internal/models"
	"brewmatic/internal/repository"

	"github.com/google/uuid"
)

var (
	errUnknownButton     = errors.New("unknown button: must be select, cancel, left, or right")
	errUnknownIngredient = errors.New("unknown ingredient: must be bin0, bin1, creamer, chocolate, or paper")
)

// MachineService latches operator commands for the next control tick and
// records each one in the event log.
type MachineService struct {
	feed      *inputFeed
	eventRepo repository.EventRepo
}

func NewMachineService(feed *inputFeed, eventRepo repository.EventRepo) *MachineService {
	return &MachineService{feed: feed, eventRepo: eventRepo}
}

func validButton(b string) bool {
	switch b {
	case ButtonSelect, ButtonCancel, ButtonLeft, ButtonRight:
		return true
	}
	return false
}

func validIngredient(i string) bool {
	switch i {
	case IngredientBin0, IngredientBin1, IngredientCreamer, IngredientChocolate, IngredientPaper:
		return true
	}
	return false
}

// PressButton injects one debounced button edge into the next tick.
func (s *MachineService) PressButton(ctx context.Context, p ButtonPress) error {
	if !validButton(p.Button) {
		return errUnknownButton
	}
	s.feed.pressButton(p)

	return s.eventRepo.Append(ctx, models.BrewEvent{
		EventID:     uuid.NewString(),
		OccurredAt:  time.Now().UTC(),
		Type:        models.EventButton,
		Description: "Button pressed: " + p.Button,
		Metadata: map[string]any{
			"button":  p.Button,
			"hold":    p.Hold,
			"release": p.Release,
		},
	})
}

// Refill latches an external sensor level reading for the next tick.
func (s *MachineService) Refill(ctx context.Context, p RefillParams) error {
	if !validIngredient(p.Ingredient) {
		return errUnknownIngredient
	}
	s.feed.refill(p)

	return s.eventRepo.Append(ctx, models.BrewEvent{
		EventID:     uuid.NewString(),
		OccurredAt:  time.Now().UTC(),
		Type:        models.EventRefill,
		Description: "Sensor reading forced for " + p.Ingredient,
		Metadata: map[string]any{
			"ingredient": p.Ingredient,
			"level":      p.Level,
		},
	})
}

// SetOverrides flips the maintenance/test override lines.
func (s *MachineService) SetOverrides(ctx context.Context, p OverrideParams) error {
	s.feed.setOverrides(p)

	meta := map[string]any{}
	if p.TempOverride != nil {
		meta["temp_override"] = *p.TempOverride
	}
	if p.PressureOverride != nil {
		meta["pressure_override"] = *p.PressureOverride
	}
	if p.TempFault != nil {
		meta["temp_fault"] = *p.TempFault
	}
	if p.SystemFault != nil {
		meta["system_fault"] = *p.SystemFault
	}
	if p.WaterSupply != nil {
		meta["water_supply"] = *p.WaterSupply
	}
	if p.PressureOK != nil {
		meta["pressure_ok"] = *p.PressureOK
	}

	return s.eventRepo.Append(ctx, models.BrewEvent{
		EventID:     uuid.NewString(),
		OccurredAt:  time.Now().UTC(),
		Type:        models.EventOverride,
		Description: "Override lines changed",
		Metadata:    meta,
	})
}

// Reset requests a synchronous core reset on the next tick.
func (s *MachineService) Reset(ctx context.Context) error {
	s.feed.requestReset()

	return s.eventRepo.Append(ctx, models.BrewEvent{
		EventID:     uuid.NewString(),
		OccurredAt:  time.Now().UTC(),
		Type:        models.EventReset,
		Description: "Machine reset requested",
	})
}
