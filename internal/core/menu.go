package core

// menuNavigator drives the user-facing menu state machine from button edges
// and system status. It is the only writer of MenuState and Selection.
type menuNavigator struct {
	cfg Config

	state     MenuState
	selection Selection

	// sawBrewing marks that brewing_active has been observed asserted since
	// entering the Brewing screen, so its deassertion means completion.
	sawBrewing bool

	// interrupted is the screen to restore once a forced error clears.
	interrupted MenuState

	comboTicks   int
	comboEmitted bool
	startWait    int
}

// brewStartGraceTicks bounds how long the Brewing screen waits for the engine
// to pick a session up before falling back to Confirm.
const brewStartGraceTicks = 10

func defaultSelection() Selection {
	return Selection{CoffeeBin: 0, Drink: DrinkBlack, Size: SizeMedium}
}

func newMenuNavigator(cfg Config) *menuNavigator {
	m := &menuNavigator{cfg: cfg}
	m.reset()
	return m
}

func (m *menuNavigator) reset() {
	m.state = MenuSplash
	m.selection = defaultSelection()
	m.sawBrewing = false
	m.interrupted = MenuSplash
	m.comboTicks = 0
	m.comboEmitted = false
	m.startWait = 0
}

func cycleDrink(d DrinkType, dir int) DrinkType {
	idx := 0
	for i, v := range drinkCycle {
		if v == d {
			idx = i
			break
		}
	}
	idx = (idx + dir + len(drinkCycle)) % len(drinkCycle)
	return drinkCycle[idx]
}

func cycleSize(s DrinkSize, dir int) DrinkSize {
	idx := 0
	for i, v := range sizeCycle {
		if v == s {
			idx = i
			break
		}
	}
	idx = (idx + dir + len(sizeCycle)) % len(sizeCycle)
	return sizeCycle[idx]
}

func buttonDir(b Buttons) int {
	switch {
	case b.Left:
		return -1
	case b.Right:
		return 1
	default:
		return 0
	}
}

func anyButton(b Buttons) bool {
	return b.Select || b.Cancel || b.Left || b.Right
}

// update advances the menu one tick. errs is this tick's aggregate status;
// sys and brew are the previous tick's published outputs.
func (m *menuNavigator) update(b Buttons, errs ErrorStatus, sys SystemStatus, brew BrewStatus) MenuStatus {
	prevState := m.state
	prevSelection := m.selection

	out := MenuStatus{}

	// Settings combo: left+right+select held for a sustained duration.
	if b.HeldLeft && b.HeldRight && b.HeldSelect {
		m.comboTicks++
		if m.comboTicks >= m.cfg.SettingsHoldTicks && !m.comboEmitted {
			m.comboEmitted = true
			out.EnterSettings = true
			m.state = MenuSettings
		}
	} else {
		m.comboTicks = 0
		m.comboEmitted = false
	}

	// A critical error forces navigation into the Error screen from anywhere
	// outside Splash/CheckErrors. Warnings never block navigation.
	if errs.Critical && m.state != MenuSplash && m.state != MenuCheckErrors && m.state != MenuError {
		if m.state == MenuBrewing {
			// The session is discarded on an emergency stop; there is nothing
			// to come back to.
			m.interrupted = MenuSplash
			m.selection = defaultSelection()
			m.sawBrewing = false
		} else {
			m.interrupted = m.state
		}
		m.state = MenuError
	}

	switch m.state {
	case MenuSplash:
		if b.Select {
			m.state = MenuCheckErrors
		}

	case MenuCheckErrors:
		if !errs.Critical {
			m.state = MenuCoffeeSelect
		}

	case MenuCoffeeSelect:
		if d := buttonDir(b); d != 0 {
			m.selection.CoffeeBin = 1 - m.selection.CoffeeBin
		}
		switch {
		case b.Select:
			m.state = MenuDrinkSelect
		case b.Cancel:
			m.toSplash()
		}

	case MenuDrinkSelect:
		if d := buttonDir(b); d != 0 {
			m.selection.Drink = cycleDrink(m.selection.Drink, d)
		}
		switch {
		case b.Select:
			m.state = MenuSizeSelect
		case b.Cancel:
			m.state = MenuCoffeeSelect
		}

	case MenuSizeSelect:
		if d := buttonDir(b); d != 0 {
			m.selection.Size = cycleSize(m.selection.Size, d)
		}
		switch {
		case b.Select:
			m.state = MenuConfirm
		case b.Cancel:
			m.state = MenuDrinkSelect
		}

	case MenuConfirm:
		switch {
		case b.Select && brew.RecipeValid && sys.Ready:
			m.state = MenuBrewing
			m.sawBrewing = false
			out.StartBrewing = true
		case b.Cancel:
			m.state = MenuSizeSelect
		}

	case MenuBrewing:
		switch {
		case b.Cancel:
			out.AbortBrewing = true
			m.toSplash()
		case brew.Active:
			m.sawBrewing = true
			m.startWait = 0
		case m.sawBrewing:
			m.state = MenuComplete
		default:
			// The engine never picked the session up (validity changed under
			// us); fall back to the confirm screen instead of hanging.
			m.startWait++
			if m.startWait > brewStartGraceTicks {
				m.state = MenuConfirm
				m.startWait = 0
			}
		}

	case MenuComplete:
		if anyButton(b) {
			m.toSplash()
		}

	case MenuSettings:
		if b.Cancel {
			m.toSplash()
		}

	case MenuError:
		if !errs.Critical {
			m.state = m.interrupted
		}
	}

	out.State = m.state
	out.Selection = m.selection
	out.DisplayRefresh = m.state != prevState || m.selection != prevSelection
	return out
}

func (m *menuNavigator) toSplash() {
	m.state = MenuSplash
	m.selection = defaultSelection()
	m.sawBrewing = false
}
