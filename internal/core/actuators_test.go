package core

import "testing"

func watchdogConfig() Config {
	cfg := testConfig()
	cfg.WatchdogTicks = 3
	return cfg
}

func TestActuators_PassThroughWithInterlocksMet(t *testing.T) {
	a := newActuatorControl(watchdogConfig())

	cmd := ActuatorCommand{Grinder0: true, Heater: true}
	st := a.update(cmd, okWater(), SystemStatus{}, ErrorStatus{}, healthyConsumables())
	if !st.Enabled.Grinder0 || !st.Enabled.Heater {
		t.Fatalf("commands not passed through: %+v", st.Enabled)
	}
	if st.ActiveCount != 2 || !st.ActuatorsActive {
		t.Fatalf("active accounting wrong: %+v", st)
	}
	if st.TimeoutFault {
		t.Fatalf("spurious timeout fault")
	}
}

func TestActuators_WatchdogTripsAndRecovers(t *testing.T) {
	cfg := watchdogConfig()
	a := newActuatorControl(cfg)
	cmd := ActuatorCommand{Grinder0: true}

	var st ActuatorStatus
	for i := 0; i < cfg.WatchdogTicks; i++ {
		st = a.update(cmd, okWater(), SystemStatus{}, ErrorStatus{}, healthyConsumables())
		if !st.Enabled.Grinder0 {
			t.Fatalf("tick %d: tripped before the timeout", i)
		}
	}
	st = a.update(cmd, okWater(), SystemStatus{}, ErrorStatus{}, healthyConsumables())
	if st.Enabled.Grinder0 {
		t.Fatalf("held command not forced off past the timeout")
	}
	if !st.TimeoutFault {
		t.Fatalf("timeout fault not reported")
	}

	// Dropping the command clears the trip; re-commanding starts fresh.
	st = a.update(ActuatorCommand{}, okWater(), SystemStatus{}, ErrorStatus{}, healthyConsumables())
	if st.TimeoutFault {
		t.Fatalf("trip not cleared when command dropped")
	}
	st = a.update(cmd, okWater(), SystemStatus{}, ErrorStatus{}, healthyConsumables())
	if !st.Enabled.Grinder0 {
		t.Fatalf("actuator not re-enabled after recovery")
	}
}

func TestActuators_WatchdogsAreIndependent(t *testing.T) {
	cfg := watchdogConfig()
	a := newActuatorControl(cfg)

	// Trip the grinder, then command the pour: only the grinder stays off.
	cmd := ActuatorCommand{Grinder0: true}
	for i := 0; i <= cfg.WatchdogTicks; i++ {
		a.update(cmd, okWater(), SystemStatus{}, ErrorStatus{}, healthyConsumables())
	}
	both := ActuatorCommand{Grinder0: true, WaterPour: true}
	st := a.update(both, okWater(), SystemStatus{}, ErrorStatus{}, healthyConsumables())
	if st.Enabled.Grinder0 {
		t.Fatalf("tripped grinder re-enabled while command held")
	}
	if !st.Enabled.WaterPour {
		t.Fatalf("independent actuator blocked by another trip")
	}
	if !st.TimeoutFault {
		t.Fatalf("timeout fault lost")
	}
}

func TestActuators_WaterInterlockGatesWetOutputs(t *testing.T) {
	a := newActuatorControl(watchdogConfig())

	cmd := ActuatorCommand{Grinder0: true, WaterPour: true, WaterDirect: true, Heater: true}
	notReady := WaterStatus{TempReady: true} // pressure missing
	st := a.update(cmd, notReady, SystemStatus{}, ErrorStatus{}, healthyConsumables())
	if st.Enabled.WaterPour || st.Enabled.WaterDirect || st.Enabled.Heater {
		t.Fatalf("wet outputs enabled without water readiness: %+v", st.Enabled)
	}
	if !st.Enabled.Grinder0 {
		t.Fatalf("dry output blocked by water interlock")
	}
}

func TestActuators_PaperInterlockGatesFeeder(t *testing.T) {
	a := newActuatorControl(watchdogConfig())

	cons := healthyConsumables()
	cons.PaperPresent = false
	st := a.update(ActuatorCommand{PaperMotor: true}, okWater(), SystemStatus{}, ErrorStatus{}, cons)
	if st.Enabled.PaperMotor {
		t.Fatalf("paper motor enabled with no stack")
	}
}

func TestActuators_EmergencyStopForcesAllOff(t *testing.T) {
	cfg := watchdogConfig()
	a := newActuatorControl(cfg)

	// Trip one watchdog first so the fault flag must survive the stop.
	for i := 0; i <= cfg.WatchdogTicks; i++ {
		a.update(ActuatorCommand{Heater: true}, okWater(), SystemStatus{}, ErrorStatus{}, healthyConsumables())
	}

	cmd := ActuatorCommand{Grinder0: true, WaterPour: true, PaperMotor: true, Heater: true}
	st := a.update(cmd, okWater(), SystemStatus{EmergencyStop: true}, ErrorStatus{}, healthyConsumables())
	if st.Enabled != (ActuatorCommand{}) {
		t.Fatalf("outputs survive emergency stop: %+v", st.Enabled)
	}
	if st.ActuatorsActive || st.ActiveCount != 0 {
		t.Fatalf("active accounting wrong under estop: %+v", st)
	}
	if !st.TimeoutFault {
		t.Fatalf("timeout fault hidden by estop")
	}
}

func TestActuators_SystemFaultForcesAllOff(t *testing.T) {
	a := newActuatorControl(watchdogConfig())

	st := a.update(ActuatorCommand{Grinder0: true}, okWater(), SystemStatus{}, ErrorStatus{SystemFault: true}, healthyConsumables())
	if st.Enabled != (ActuatorCommand{}) {
		t.Fatalf("outputs survive system fault: %+v", st.Enabled)
	}
}
