package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"brewmatic/internal/models"
)

type StateSQLite struct {
	db *sql.DB
}

func NewStateSQLite(db *sql.DB) *StateSQLite {
	return &StateSQLite{db: db}
}

const (
	machineStateRowID = 1

	insertOrUpdateStateSQL = `
		INSERT INTO machine_state (id, menu_state, sys_state, brewing, critical, snapshot, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			menu_state=excluded.menu_state,
			sys_state=excluded.sys_state,
			brewing=excluded.brewing,
			critical=excluded.critical,
			snapshot=excluded.snapshot,
			updated_at=excluded.updated_at
	`

	selectStateSQL = `
		SELECT id, snapshot, updated_at
		FROM machine_state WHERE id=?
	`
)

// Save upserts the machine_state row (id always 1). The full snapshot is kept
// as JSON; a few hot columns are duplicated for ad hoc queries.
func (r *StateSQLite) Save(ctx context.Context, state models.MachineState) error {
	blob, err := json.Marshal(state.Snapshot)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	tsUTC := state.UpdatedAt
	if tsUTC.IsZero() {
		tsUTC = time.Now().UTC()
	} else {
		tsUTC = tsUTC.UTC()
	}

	_, err = r.db.ExecContext(ctx, insertOrUpdateStateSQL,
		machineStateRowID,
		string(state.Snapshot.Menu.State),
		string(state.Snapshot.System.State),
		state.Snapshot.Brew.Active,
		state.Snapshot.Errors.Critical,
		string(blob),
		tsUTC,
	)
	return err
}

// Load fetches the single machine_state row (id=1). A missing row is not an
// error; the zero value signals "no state yet".
func (r *StateSQLite) Load(ctx context.Context) (models.MachineState, error) {
	row := r.db.QueryRowContext(ctx, selectStateSQL, machineStateRowID)

	var s models.MachineState
	var blob string
	if err := row.Scan(&s.ID, &blob, &s.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.MachineState{}, nil
		}
		return models.MachineState{}, err
	}

	if err := json.Unmarshal([]byte(blob), &s.Snapshot); err != nil {
		return models.MachineState{}, fmt.Errorf("unmarshal snapshot: %w", err)
	}
	s.UpdatedAt = s.UpdatedAt.UTC()
	return s, nil
}
