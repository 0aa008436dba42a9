package core

// consumableManager owns the ingredient and paper-filter stock counters.
// External sensor readings win over the tracked level; consumption requests
// apply saturating subtraction and can never underflow.
type consumableManager struct {
	cfg Config

	levels       IngredientLevels
	paperPresent bool // raw sensor level seen last tick, for edge detection
}

func newConsumableManager(cfg Config) *consumableManager {
	m := &consumableManager{cfg: cfg}
	m.reset()
	return m
}

func (m *consumableManager) reset() {
	m.levels = m.cfg.DefaultLevels
	m.paperPresent = true
}

// satSub clamps at zero instead of wrapping.
func satSub(level, amount uint8) uint8 {
	if amount >= level {
		return 0
	}
	return level - amount
}

// applyLevel resolves one ingredient for this tick: a differing external
// reading forces the level, otherwise an active consumption request is applied.
func applyLevel(level uint8, reading LevelReading, consume uint8) uint8 {
	if reading.Valid && reading.Value != level {
		return reading.Value
	}
	if consume > 0 {
		return satSub(level, consume)
	}
	return level
}

func (m *consumableManager) update(in SensorInputs, consume ConsumeRequest) ConsumableStatus {
	m.levels.Bin0 = applyLevel(m.levels.Bin0, in.Bin0, consume.Bin0)
	m.levels.Bin1 = applyLevel(m.levels.Bin1, in.Bin1, consume.Bin1)
	m.levels.Creamer = applyLevel(m.levels.Creamer, in.Creamer, consume.Creamer)
	m.levels.Chocolate = applyLevel(m.levels.Chocolate, in.Chocolate, consume.Chocolate)

	// A fresh paper stack loaded (rising edge of the presence sensor) forces
	// the tracked count back to full. Deliberately edge triggered, not level
	// triggered: a level rule would top the counter up on every tick the
	// sensor is asserted and the count could never deplete.
	if in.PaperPresent && !m.paperPresent && m.levels.PaperCount != 255 {
		m.levels.PaperCount = 255
	} else if consume.PaperFilter {
		m.levels.PaperCount = satSub(m.levels.PaperCount, 1)
	}
	m.paperPresent = in.PaperPresent

	low := m.cfg.LowThreshold
	st := ConsumableStatus{
		Levels: m.levels,

		PaperPresent: in.PaperPresent && m.levels.PaperCount > 0,

		Bin0Empty:      m.levels.Bin0 == 0,
		Bin1Empty:      m.levels.Bin1 == 0,
		CreamerEmpty:   m.levels.Creamer == 0,
		ChocolateEmpty: m.levels.Chocolate == 0,
		PaperEmpty:     m.levels.PaperCount == 0,

		Bin0Low:      m.levels.Bin0 < low,
		Bin1Low:      m.levels.Bin1 < low,
		CreamerLow:   m.levels.Creamer < low,
		ChocolateLow: m.levels.Chocolate < low,
		PaperLow:     m.levels.PaperCount < low,
	}

	st.CanMakeCoffee = !(st.Bin0Empty && st.Bin1Empty)
	st.CanAddCreamer = !st.CreamerEmpty
	st.CanAddChocolate = !st.ChocolateEmpty
	return st
}
