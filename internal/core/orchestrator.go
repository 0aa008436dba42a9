package core

// orchestrator is the top-level system state machine. It enables heating,
// gates recipe start/abort, derives the ready/active/fault outputs and owns
// the emergency-stop logic.
type orchestrator struct {
	cfg Config

	state         SysState
	initTicks     int
	cooldownTicks int
}

func newOrchestrator(cfg Config) *orchestrator {
	o := &orchestrator{cfg: cfg}
	o.reset()
	return o
}

func (o *orchestrator) reset() {
	o.state = SysInit
	o.initTicks = 0
	o.cooldownTicks = 0
}

// menuActive reports that the user has navigated past the splash screens.
func menuActive(s MenuState) bool {
	return s != MenuSplash && s != MenuCheckErrors
}

// update advances the orchestrator one tick. menu and errs are this tick's
// outputs; water and brew are the previous tick's published snapshot.
func (o *orchestrator) update(menu MenuStatus, errs ErrorStatus, water WaterStatus, brew BrewStatus) SystemStatus {
	out := SystemStatus{State: o.state}

	// Emergency stop takes precedence over every other transition: a critical
	// error while a brew session is active discards the session immediately.
	if errs.Critical && brew.Active {
		o.state = SysErrorCycle
		out.State = o.state
		out.EmergencyStop = true
		out.AbortBrew = true
		out.Fault = true
		out.TargetMode = TempStandby
		return out
	}

	switch o.state {
	case SysInit:
		// Power-on hold: neither ready nor faulted until the delay elapses.
		o.initTicks++
		if o.initTicks >= o.cfg.InitTicks {
			o.state = SysSplash
		}

	case SysSplash:
		switch {
		case errs.Critical:
			o.state = SysErrorCycle
		case menu.EnterSettings:
			o.state = SysMaintenance
		case menuActive(menu.State):
			o.state = SysHeating
		}

	case SysHeating:
		switch {
		case errs.Critical:
			o.state = SysErrorCycle
		case menu.EnterSettings:
			o.state = SysMaintenance
		case !menuActive(menu.State):
			o.state = SysSplash
		case menu.StartBrewing && water.SystemOK:
			// The readiness flag the menu acted on was published while this
			// state machine was still catching up; honor the pulse.
			o.state = SysBrewing
			out.StartBrew = true
		case water.SystemOK:
			o.state = SysReady
		}

	case SysReady:
		switch {
		case errs.Critical:
			o.state = SysErrorCycle
		case menu.EnterSettings:
			o.state = SysMaintenance
		case menu.StartBrewing:
			o.state = SysBrewing
			out.StartBrew = true
		case !menuActive(menu.State):
			o.state = SysSplash
		case !water.SystemOK:
			o.state = SysHeating
		}

	case SysBrewing:
		if menu.AbortBrewing {
			out.AbortBrew = true
			o.state = SysCooldown
			o.cooldownTicks = 0
		} else if brew.CompletePulse || !brew.Active {
			// Completion is observed one tick after the engine publishes it;
			// an externally requested abort lands here as well.
			o.state = SysCooldown
			o.cooldownTicks = 0
		}

	case SysCooldown:
		// Fixed settle window for actuators and the water system.
		o.cooldownTicks++
		if o.cooldownTicks >= o.cfg.CooldownTicks {
			o.state = SysSplash
		}

	case SysErrorCycle:
		// Exit conditions, evaluated in priority order. If none hold the
		// state is retained.
		switch {
		case menu.EnterSettings:
			o.state = SysMaintenance
		case menu.StartBrewing && !errs.Critical:
			o.state = SysSplash
		case menuActive(menu.State) && !errs.Critical:
			o.state = SysSplash
		case !errs.Critical && errs.WarningCount == 0:
			o.state = SysSplash
		}

	case SysMaintenance:
		if menu.State != MenuSettings {
			o.state = SysSplash
		}
	}

	out.State = o.state
	out.Fault = errs.Critical
	out.Ready = o.state != SysInit && water.SystemOK && !errs.Critical
	out.Active = o.state == SysBrewing && brew.Active
	out.HeatingEnable = o.heatingEnabled(menu.State)
	out.TargetMode = o.targetMode()
	return out
}

// Heating starts as soon as the user becomes active, not only at brew time.
func (o *orchestrator) heatingEnabled(menu MenuState) bool {
	switch o.state {
	case SysInit, SysSplash, SysErrorCycle:
		return menuActive(menu)
	default:
		return true
	}
}

func (o *orchestrator) targetMode() TempMode {
	switch o.state {
	case SysBrewing:
		return TempBrewing
	case SysMaintenance:
		return TempExtraHot
	default:
		return TempStandby
	}
}
