// Package core implements the brewing-orchestration state machine network:
// seven cooperating components advanced synchronously once per control tick.
//
// All cross-component communication happens through the published Snapshot.
// Within a tick the components are evaluated in a fixed topological order;
// forward edges read outputs already computed this tick, feedback edges (the
// loop closures through heating enable, consumption requests, brew activity
// and actuator timeouts) read the previous tick's snapshot. The result is a
// deterministic, race-free evaluation with same-tick cancellation semantics.
package core

// Core owns the seven components and the double-buffered snapshot.
// It is not safe for concurrent use; a single caller drives Tick.
type Core struct {
	cfg Config

	consumables *consumableManager
	water       *waterController
	errors      *errorHandler
	menu        *menuNavigator
	orch        *orchestrator
	engine      *recipeEngine
	actuators   *actuatorControl

	snap Snapshot
}

// New builds a core with every component in its reset state.
func New(cfg Config) *Core {
	c := &Core{
		cfg:         cfg,
		consumables: newConsumableManager(cfg),
		water:       newWaterController(cfg),
		errors:      newErrorHandler(cfg),
		menu:        newMenuNavigator(cfg),
		orch:        newOrchestrator(cfg),
		engine:      newRecipeEngine(),
		actuators:   newActuatorControl(cfg),
	}
	c.snap = c.initialSnapshot()
	return c
}

func (c *Core) initialSnapshot() Snapshot {
	return Snapshot{
		Menu:   MenuStatus{State: MenuSplash, Selection: defaultSelection()},
		System: SystemStatus{State: SysInit, TargetMode: TempStandby},
		Brew:   BrewStatus{Phase: PhaseIdle},
	}
}

// Reset synchronously returns every component to its initial state. No state
// persists across a reset.
func (c *Core) Reset() {
	c.consumables.reset()
	c.water.reset()
	c.errors.reset()
	c.menu.reset()
	c.orch.reset()
	c.engine.reset()
	c.actuators.reset()
	c.snap = c.initialSnapshot()
}

// Snapshot returns the last published snapshot.
func (c *Core) Snapshot() Snapshot {
	return c.snap
}

// Config returns the tuning the core was built with.
func (c *Core) Config() Config {
	return c.cfg
}

// Tick advances every component by one control period and atomically publishes
// the new snapshot.
func (c *Core) Tick(in Inputs) Snapshot {
	prev := c.snap
	var next Snapshot
	next.Tick = prev.Tick + 1

	// Leaves first. Consumption requests are the previous tick's, closing the
	// engine → stock loop with a one-tick delay.
	next.Consumables = c.consumables.update(in.Sensors, prev.Brew.Consume)
	next.Water = c.water.update(in.Sensors, prev.System)

	// Aggregate status from this tick's sensor-side outputs; the actuator
	// timeout flag is fed back from the previous tick.
	next.Errors = c.errors.update(in.Sensors, next.Consumables, next.Water, prev.Actuators)

	// User-facing navigation, then the top-level machine, then the engine.
	next.Menu = c.menu.update(in.Buttons, next.Errors, prev.System, prev.Brew)
	next.System = c.orch.update(next.Menu, next.Errors, next.Water, prev.Brew)
	next.Brew = c.engine.update(next.System, next.Consumables, next.Menu.Selection)

	// Output stage last, so an emergency stop zeroes the enables on the very
	// tick it asserts.
	cmd := next.Brew.Commands
	cmd.Heater = next.Water.HeaterOn
	next.Actuators = c.actuators.update(cmd, next.Water, next.System, next.Errors, next.Consumables)

	c.snap = next
	return next
}
