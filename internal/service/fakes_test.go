package service

import (
	"context"
	"time"

	"brewmatic/internal/models"
)

// ---- Repository Fakes ----

type fakeStateRepo struct {
	saved   []models.MachineState
	loaded  models.MachineState
	saveErr error
	loadErr error
}

func (f *fakeStateRepo) Save(ctx context.Context, s models.MachineState) error {
	f.saved = append(f.saved, s)
	return f.saveErr
}

func (f *fakeStateRepo) Load(ctx context.Context) (models.MachineState, error) {
	return f.loaded, f.loadErr
}

type fakeEventRepo struct {
	appended  []models.BrewEvent
	appendErr error

	listResp []models.BrewEvent
	listErr  error
	lastFrom time.Time
	lastTo   time.Time
	lastType string
}

func (f *fakeEventRepo) Append(ctx context.Context, e models.BrewEvent) error {
	f.appended = append(f.appended, e)
	return f.appendErr
}

func (f *fakeEventRepo) List(ctx context.Context, from, to time.Time, typ string) ([]models.BrewEvent, error) {
	f.lastFrom = from
	f.lastTo = to
	f.lastType = typ
	return f.listResp, f.listErr
}

type fakeAuthRepo struct {
	createID  int
	createErr error
	user      *models.User
	getErr    error

	lastUsername string
	lastHash     string
}

func (f *fakeAuthRepo) Create(username, hash string) (int, error) {
	f.lastUsername = username
	f.lastHash = hash
	return f.createID, f.createErr
}

func (f *fakeAuthRepo) GetByUsername(username string) (*models.User, error) {
	f.lastUsername = username
	return f.user, f.getErr
}

// lastEvent returns the most recently appended event, or a zero value.
func (f *fakeEventRepo) lastEvent() models.BrewEvent {
	if len(f.appended) == 0 {
		return models.BrewEvent{}
	}
	return f.appended[len(f.appended)-1]
}
