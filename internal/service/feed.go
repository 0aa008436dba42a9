package service

import (
	"sync"

	"brewmatic/internal/core"
)

// inputFeed latches operator input between ticks. The machine service writes
// under the mutex; the runner drains once per tick. This is the only point of
// synchronization around the core, which itself is single-goroutine.
type inputFeed struct {
	mu sync.Mutex

	edges    core.Buttons      // one-shot rising edges, cleared on take
	held     core.Buttons      // held levels, persist until released
	sensors  core.SensorInputs // persistent sensor levels and override lines
	resetReq bool
}

func defaultSensors() core.SensorInputs {
	return core.SensorInputs{
		PaperPresent: true,
		WaterSupply:  true,
		PressureOK:   true,
	}
}

func newInputFeed() *inputFeed {
	return &inputFeed{sensors: defaultSensors()}
}

func (f *inputFeed) pressButton(p ButtonPress) {
	f.mu.Lock()
	defer f.mu.Unlock()

	held := p.Hold && !p.Release
	switch p.Button {
	case ButtonSelect:
		f.edges.Select = true
		if p.Hold || p.Release {
			f.held.HeldSelect = held
		}
	case ButtonCancel:
		f.edges.Cancel = true
	case ButtonLeft:
		f.edges.Left = true
		if p.Hold || p.Release {
			f.held.HeldLeft = held
		}
	case ButtonRight:
		f.edges.Right = true
		if p.Hold || p.Release {
			f.held.HeldRight = held
		}
	}
}

func (f *inputFeed) refill(p RefillParams) {
	f.mu.Lock()
	defer f.mu.Unlock()

	reading := core.LevelReading{Value: p.Level, Valid: true}
	switch p.Ingredient {
	case IngredientBin0:
		f.sensors.Bin0 = reading
	case IngredientBin1:
		f.sensors.Bin1 = reading
	case IngredientCreamer:
		f.sensors.Creamer = reading
	case IngredientChocolate:
		f.sensors.Chocolate = reading
	case IngredientPaper:
		f.sensors.PaperPresent = p.Level > 0
	}
}

func (f *inputFeed) setOverrides(p OverrideParams) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if p.TempOverride != nil {
		f.sensors.TempOverride = *p.TempOverride
	}
	if p.PressureOverride != nil {
		f.sensors.PressureOverride = *p.PressureOverride
	}
	if p.TempFault != nil {
		f.sensors.TempFault = *p.TempFault
	}
	if p.SystemFault != nil {
		f.sensors.SystemFault = *p.SystemFault
	}
	if p.WaterSupply != nil {
		f.sensors.WaterSupply = *p.WaterSupply
	}
	if p.PressureOK != nil {
		f.sensors.PressureOK = *p.PressureOK
	}
}

func (f *inputFeed) requestReset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.resetReq = true
}

// take drains the pending input for one tick. Edges and level readings are
// one-shot; held levels and override lines persist.
func (f *inputFeed) take() (core.Inputs, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	in := core.Inputs{
		Buttons: core.Buttons{
			Select:     f.edges.Select,
			Cancel:     f.edges.Cancel,
			Left:       f.edges.Left,
			Right:      f.edges.Right,
			HeldSelect: f.held.HeldSelect,
			HeldLeft:   f.held.HeldLeft,
			HeldRight:  f.held.HeldRight,
		},
		Sensors: f.sensors,
	}

	f.edges = core.Buttons{}
	f.sensors.Bin0.Valid = false
	f.sensors.Bin1.Valid = false
	f.sensors.Creamer.Valid = false
	f.sensors.Chocolate.Valid = false

	reset := f.resetReq
	f.resetReq = false
	if reset {
		f.held = core.Buttons{}
		f.sensors = defaultSensors()
		in = core.Inputs{Sensors: f.sensors}
	}
	return in, reset
}
