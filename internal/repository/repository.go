package repository

import (
	"context"
	"database/sql"
	"time"

	"brewmatic/internal/models"
)

type Authorization interface {
	Create(username, hash string) (int, error)
	GetByUsername(username string) (*models.User, error)
}

// StateRepo persists the single machine-state row written once per tick.
type StateRepo interface {
	Save(ctx context.Context, s models.MachineState) error
	Load(ctx context.Context) (models.MachineState, error)
}

// EventRepo is the append-only brew event log.
type EventRepo interface {
	Append(ctx context.Context, e models.BrewEvent) error
	List(ctx context.Context, from, to time.Time, typ string) ([]models.BrewEvent, error)
}

type Repository struct {
	StateRepo StateRepo
	EventRepo EventRepo
	Auth      Authorization
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		StateRepo: NewStateSQLite(db),
		EventRepo: NewEventSQLite(db),
		Auth:      NewUserRepository(db),
	}
}
