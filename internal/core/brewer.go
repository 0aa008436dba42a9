package core

// recipeEngine sequences the physical brew steps for the selected drink,
// issuing consumption requests at phase boundaries and actuator commands per
// phase. One instance drives at most one session at a time.
type recipeEngine struct {
	phase      BrewPhase
	phaseTick  int
	elapsed    int
	total      int
	recipe     RecipeDefinition
	bin        int
	sessionSel Selection
}

func newRecipeEngine() *recipeEngine {
	e := &recipeEngine{}
	e.reset()
	return e
}

func (e *recipeEngine) reset() {
	e.phase = PhaseIdle
	e.phaseTick = 0
	e.elapsed = 0
	e.total = 0
	e.recipe = RecipeDefinition{}
	e.bin = 0
	e.sessionSel = Selection{}
}

// recipeValid is recomputed continuously, not only at the start pulse.
func recipeValid(sel Selection, cons ConsumableStatus) bool {
	r := ScaledRecipe(sel.Drink, sel.Size)

	binLevel := cons.Levels.Bin0
	if sel.CoffeeBin == 1 {
		binLevel = cons.Levels.Bin1
	}
	if binLevel < r.GrindAmount {
		return false
	}
	if r.NeedsCreamer() && cons.Levels.Creamer == 0 {
		return false
	}
	if r.NeedsChocolate() && cons.Levels.Chocolate == 0 {
		return false
	}
	return cons.PaperPresent
}

// phaseDuration returns the configured tick count of the given phase.
func (e *recipeEngine) phaseDuration(p BrewPhase) int {
	switch p {
	case PhasePaperFeed:
		return e.recipe.PaperFeedTicks
	case PhaseGrind:
		return e.recipe.GrindTicks
	case PhasePour:
		return e.recipe.PourTicks
	case PhaseSettle:
		return e.recipe.SettleTicks
	default:
		return 0
	}
}

func nextPhase(p BrewPhase) BrewPhase {
	switch p {
	case PhasePaperFeed:
		return PhaseGrind
	case PhaseGrind:
		return PhasePour
	case PhasePour:
		return PhaseSettle
	case PhaseSettle:
		return PhaseComplete
	default:
		return PhaseIdle
	}
}

// enterConsume is the one-shot consumption request issued when a phase is entered.
func (e *recipeEngine) enterConsume(p BrewPhase) ConsumeRequest {
	var req ConsumeRequest
	switch p {
	case PhasePaperFeed:
		req.PaperFilter = true
	case PhaseGrind:
		if e.bin == 1 {
			req.Bin1 = e.recipe.GrindAmount
		} else {
			req.Bin0 = e.recipe.GrindAmount
		}
	case PhasePour:
		req.Creamer = e.recipe.CreamerAmount
		req.Chocolate = e.recipe.ChocolateAmount
	}
	return req
}

// phaseCommands maps the current phase onto logical actuator commands.
func (e *recipeEngine) phaseCommands() ActuatorCommand {
	var cmd ActuatorCommand
	switch e.phase {
	case PhasePaperFeed:
		cmd.PaperMotor = true
	case PhaseGrind:
		if e.recipe.GrindAmount > 0 {
			cmd.Grinder0 = e.bin == 0
			cmd.Grinder1 = e.bin == 1
		}
	case PhasePour:
		// Drinks with no grounds bypass the brew basket.
		if e.recipe.GrindAmount > 0 {
			cmd.WaterPour = true
		} else {
			cmd.WaterDirect = true
		}
	}
	return cmd
}

// update advances the engine one tick. sys and cons are this tick's outputs of
// the orchestrator and the Consumable Manager; sel is this tick's selection.
func (e *recipeEngine) update(sys SystemStatus, cons ConsumableStatus, sel Selection) BrewStatus {
	out := BrewStatus{RecipeValid: recipeValid(sel, cons)}

	// Abort is sampled every tick and overrides any phase in flight. No
	// further consumption requests are issued; nothing already consumed is
	// refunded.
	if sys.AbortBrew || sys.EmergencyStop {
		e.reset()
		out.Phase = PhaseIdle
		return out
	}

	switch e.phase {
	case PhaseIdle:
		if sys.StartBrew && out.RecipeValid {
			e.recipe = ScaledRecipe(sel.Drink, sel.Size)
			e.bin = sel.CoffeeBin
			e.sessionSel = sel
			e.total = e.recipe.TotalTicks()
			e.elapsed = 0
			e.phaseTick = 0
			e.phase = PhasePaperFeed
			out.Consume = e.enterConsume(PhasePaperFeed)
		}

	case PhaseComplete:
		e.reset()

	default:
		e.elapsed++
		e.phaseTick++
		if e.phaseTick >= e.phaseDuration(e.phase) {
			e.phase = nextPhase(e.phase)
			e.phaseTick = 0
			if e.phase == PhaseComplete {
				out.CompletePulse = true
			} else {
				out.Consume = e.enterConsume(e.phase)
			}
		}
	}

	out.Phase = e.phase
	out.Active = e.phase != PhaseIdle && e.phase != PhaseComplete
	out.Commands = e.phaseCommands()
	out.Progress = e.progress()
	return out
}

// progress is monotonically non-decreasing and reaches exactly 100 on the
// tick the completion pulse is emitted.
func (e *recipeEngine) progress() uint8 {
	if e.total == 0 {
		return 0
	}
	p := e.elapsed * 100 / e.total
	if p > 100 {
		p = 100
	}
	return uint8(p)
}
