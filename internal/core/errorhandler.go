package core

// debounceLatch flips its latched value only after the raw condition has held
// the opposite value for a full settle window. Both setting and clearing are
// debounced, so a flickering sensor never reaches the aggregate status.
type debounceLatch struct {
	latched bool
	stable  int
}

func (d *debounceLatch) update(raw bool, window int) bool {
	if raw == d.latched {
		d.stable = 0
		return d.latched
	}
	d.stable++
	if d.stable >= window {
		d.latched = raw
		d.stable = 0
	}
	return d.latched
}

// Indexes into the errorHandler latch arrays.
const (
	causeNoWater = iota
	causeNoPaper
	causeNoCoffee
	causeTempFault
	causePressureFault
	causeSystemFault
	causeCount
)

const (
	warnPaperLow = iota
	warnBin0Low
	warnBin1Low
	warnCreamerLow
	warnChocolateLow
	warnTempHeating
	warnCount
)

// errorHandler aggregates fault and warning predicates into the single
// published ErrorStatus. It is the sole writer of that status.
type errorHandler struct {
	cfg Config

	causes   [causeCount]debounceLatch
	warnings [warnCount]debounceLatch
}

func newErrorHandler(cfg Config) *errorHandler {
	return &errorHandler{cfg: cfg}
}

func (h *errorHandler) reset() {
	h.causes = [causeCount]debounceLatch{}
	h.warnings = [warnCount]debounceLatch{}
}

func (h *errorHandler) update(in SensorInputs, cons ConsumableStatus, water WaterStatus, prevActuators ActuatorStatus) ErrorStatus {
	w := h.cfg.DebounceTicks

	st := ErrorStatus{
		NoWater:       h.causes[causeNoWater].update(!in.WaterSupply, w),
		NoPaper:       h.causes[causeNoPaper].update(!cons.PaperPresent, w),
		NoCoffee:      h.causes[causeNoCoffee].update(!cons.CanMakeCoffee, w),
		TempFault:     h.causes[causeTempFault].update(in.TempFault, w),
		PressureFault: h.causes[causePressureFault].update(!in.PressureOK || in.PressureOverride, w),
		SystemFault:   h.causes[causeSystemFault].update(in.SystemFault || prevActuators.TimeoutFault, w),

		PaperLow:     h.warnings[warnPaperLow].update(cons.PaperLow, w),
		Bin0Low:      h.warnings[warnBin0Low].update(cons.Bin0Low, w),
		Bin1Low:      h.warnings[warnBin1Low].update(cons.Bin1Low, w),
		CreamerLow:   h.warnings[warnCreamerLow].update(cons.CreamerLow, w),
		ChocolateLow: h.warnings[warnChocolateLow].update(cons.ChocolateLow, w),
		TempHeating:  h.warnings[warnTempHeating].update(water.HeaterOn && !water.TempReady, w),
	}

	st.ErrorCount = countFlags(st.NoWater, st.NoPaper, st.NoCoffee, st.TempFault, st.PressureFault, st.SystemFault)
	st.WarningCount = countFlags(st.PaperLow, st.Bin0Low, st.Bin1Low, st.CreamerLow, st.ChocolateLow, st.TempHeating)

	st.Critical = st.ErrorCount > 0
	st.ErrorPresent = st.Critical || st.WarningCount > 0
	return st
}

// countFlags caps at 15 to fit the 4-bit wire field.
func countFlags(flags ...bool) uint8 {
	var n uint8
	for _, f := range flags {
		if f {
			n++
		}
	}
	if n > 15 {
		n = 15
	}
	return n
}
