package core

// waterController simulates the heater and pressure system. The temperature
// ramps toward the mode target while heating is enabled and decays toward the
// cold baseline otherwise; the heater relay toggles with hysteresis so it does
// not chatter near the target.
type waterController struct {
	cfg Config

	currentTemp   uint8
	heaterOn      bool
	pressureTick  int
	pressureReady bool
}

func newWaterController(cfg Config) *waterController {
	w := &waterController{cfg: cfg}
	w.reset()
	return w
}

func (w *waterController) reset() {
	w.currentTemp = w.cfg.ColdBaseline
	w.heaterOn = false
	w.pressureTick = 0
	w.pressureReady = false
}

func (w *waterController) targetFor(mode TempMode) uint8 {
	switch mode {
	case TempBrewing:
		return w.cfg.TargetBrewing
	case TempExtraHot:
		return w.cfg.TargetExtraHot
	default:
		return w.cfg.TargetStandby
	}
}

func satAdd(level, amount uint8) uint8 {
	if amount > 255-level {
		return 255
	}
	return level + amount
}

func absDiff(a, b uint8) uint8 {
	if a > b {
		return a - b
	}
	return b - a
}

func (w *waterController) update(in SensorInputs, sys SystemStatus) WaterStatus {
	target := w.targetFor(sys.TargetMode)

	tempReady := false
	switch {
	case in.TempOverride:
		// Maintenance bypass: only the published reading is forced. The heater
		// is held off and the real temperature keeps cooling underneath, so
		// readiness drops on the tick the override is lowered regardless of
		// whether heating is enabled.
		w.heaterOn = false
		w.currentTemp = w.coolStep(w.cfg.ColdBaseline)
		tempReady = true

	case sys.HeatingEnable:
		if w.currentTemp < target {
			if !w.heaterOn && w.currentTemp+w.cfg.HeaterHysteresis < target {
				w.heaterOn = true
			}
		} else {
			w.heaterOn = false
		}
		if w.heaterOn {
			w.currentTemp = satAdd(w.currentTemp, w.cfg.HeatRate)
			if w.currentTemp >= target {
				w.currentTemp = target
				w.heaterOn = false
			}
		} else if w.currentTemp > target {
			w.currentTemp = w.coolStep(target)
		}
		tempReady = absDiff(w.currentTemp, target) <= w.cfg.TempTolerance

	default:
		// Heating disabled: revert toward cold.
		w.heaterOn = false
		w.currentTemp = w.coolStep(w.cfg.ColdBaseline)
	}

	current := w.currentTemp
	if in.TempOverride {
		current = target
	}

	// Pressure is sampled on a slower cadence than temperature.
	w.pressureTick++
	if w.pressureTick >= w.cfg.PressurePeriodTicks {
		w.pressureTick = 0
		w.pressureReady = in.PressureOK
	}
	pressureReady := w.pressureReady
	if in.PressureOverride {
		pressureReady = false
	}

	return WaterStatus{
		CurrentTemp:   current,
		TargetTemp:    target,
		Mode:          sys.TargetMode,
		HeaterOn:      w.heaterOn,
		TempReady:     tempReady,
		PressureReady: pressureReady,
		SystemOK:      tempReady && pressureReady,
	}
}

// coolStep decays the temperature toward floor without undershooting it.
func (w *waterController) coolStep(floor uint8) uint8 {
	if w.currentTemp <= floor {
		return w.currentTemp
	}
	next := satSub(w.currentTemp, w.cfg.CoolRate)
	if next < floor {
		return floor
	}
	return next
}
