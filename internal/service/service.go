package service

import (
	"context"
	"time"

	"brewmatic/internal/core"
	"brewmatic/internal/logger"
	"brewmatic/internal/models"
	"brewmatic/internal/repository"
)

type Authorization interface {
	SignUp(username, password string) (int, error)
	GenerateToken(username, password string) (string, error)
	ParseToken(accessToken string) (int, error)
}

// Machine exposes operator commands: button edges, refills, overrides, reset.
type Machine interface {
	PressButton(ctx context.Context, p ButtonPress) error
	Refill(ctx context.Context, p RefillParams) error
	SetOverrides(ctx context.Context, p OverrideParams) error
	Reset(ctx context.Context) error
}

// Monitoring exposes the read-only published snapshot.
type Monitoring interface {
	GetStatus(ctx context.Context) (models.MachineState, error)
}

// EventLog exposes append-only logs with filtering access.
type EventLog interface {
	List(ctx context.Context, f LogFilter) ([]models.BrewEvent, error)
}

// Runner drives the control core at the fixed tick period.
// Stop via context cancellation in main() for graceful shutdown.
type Runner interface {
	Run(ctx context.Context, tick time.Duration)
}

// Service aggregates all sub-services.
type Service struct {
	Machine
	Monitoring
	EventLog
	Runner
	Authorization
}

// NewService wires the repository layer and the control core into concrete
// services. The input feed is shared between the machine service (producer)
// and the runner (consumer).
func NewService(repos *repository.Repository, c *core.Core, log *logger.Logger) *Service {
	feed := newInputFeed()
	return &Service{
		Machine:       NewMachineService(feed, repos.EventRepo),
		Monitoring:    NewMonitoringService(repos.StateRepo),
		EventLog:      NewEventLogService(repos.EventRepo),
		Runner:        NewRunnerService(c, feed, repos.StateRepo, repos.EventRepo, log),
		Authorization: NewAuthService(repos.Auth),
	}
}
