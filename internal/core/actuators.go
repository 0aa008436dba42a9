package core

// actuatorIndex identifies a physical actuator for the watchdog array.
const (
	actGrinder0 = iota
	actGrinder1
	actWaterPour
	actWaterDirect
	actPaperMotor
	actHeater
	actuatorCount
)

// actuatorControl translates logical commands into gated physical outputs.
// Each actuator carries an independent watchdog: a command held continuously
// past the configured timeout is forced off and reported as a fault even
// though the upstream command stays asserted.
type actuatorControl struct {
	cfg Config

	held    [actuatorCount]int
	tripped [actuatorCount]bool
}

func newActuatorControl(cfg Config) *actuatorControl {
	return &actuatorControl{cfg: cfg}
}

func (a *actuatorControl) reset() {
	a.held = [actuatorCount]int{}
	a.tripped = [actuatorCount]bool{}
}

// watch advances one actuator's watchdog and returns whether its output may
// pass through.
func (a *actuatorControl) watch(idx int, commanded bool) bool {
	if !commanded {
		a.held[idx] = 0
		a.tripped[idx] = false
		return false
	}
	a.held[idx]++
	if a.held[idx] > a.cfg.WatchdogTicks {
		a.tripped[idx] = true
	}
	return !a.tripped[idx]
}

func (a *actuatorControl) update(cmd ActuatorCommand, water WaterStatus, sys SystemStatus, errs ErrorStatus, cons ConsumableStatus) ActuatorStatus {
	// Watchdogs track the raw commands regardless of interlocks.
	pass := [actuatorCount]bool{
		actGrinder0:    a.watch(actGrinder0, cmd.Grinder0),
		actGrinder1:    a.watch(actGrinder1, cmd.Grinder1),
		actWaterPour:   a.watch(actWaterPour, cmd.WaterPour),
		actWaterDirect: a.watch(actWaterDirect, cmd.WaterDirect),
		actPaperMotor:  a.watch(actPaperMotor, cmd.PaperMotor),
		actHeater:      a.watch(actHeater, cmd.Heater),
	}

	st := ActuatorStatus{}
	for _, t := range a.tripped {
		if t {
			st.TimeoutFault = true
		}
	}

	// Emergency stop and system fault are evaluated before any interlock and
	// force every output off.
	if sys.EmergencyStop || errs.SystemFault {
		return st
	}

	waterOK := water.TempReady && water.PressureReady && water.SystemOK

	st.Enabled = ActuatorCommand{
		Grinder0:    pass[actGrinder0],
		Grinder1:    pass[actGrinder1],
		WaterPour:   pass[actWaterPour] && waterOK,
		WaterDirect: pass[actWaterDirect] && waterOK,
		PaperMotor:  pass[actPaperMotor] && cons.PaperPresent,
		Heater:      pass[actHeater] && waterOK,
	}

	st.ActiveCount = countEnabled(st.Enabled)
	st.ActuatorsActive = st.ActiveCount > 0
	return st
}

func countEnabled(e ActuatorCommand) int {
	n := 0
	for _, on := range []bool{e.Grinder0, e.Grinder1, e.WaterPour, e.WaterDirect, e.PaperMotor, e.Heater} {
		if on {
			n++
		}
	}
	return n
}
