package core

// Config carries every tuning knob of the control core. All durations are
// expressed in ticks of the fixed control period.
type Config struct {
	// Orchestrator timing.
	InitTicks     int `json:"init_ticks" mapstructure:"init_ticks"`
	CooldownTicks int `json:"cooldown_ticks" mapstructure:"cooldown_ticks"`

	// Error Handler debounce settle window.
	DebounceTicks int `json:"debounce_ticks" mapstructure:"debounce_ticks"`

	// Menu settings combo hold duration.
	SettingsHoldTicks int `json:"settings_hold_ticks" mapstructure:"settings_hold_ticks"`

	// Actuator watchdog timeout.
	WatchdogTicks int `json:"watchdog_ticks" mapstructure:"watchdog_ticks"`

	// Water thermal model.
	HeatRate            uint8 `json:"heat_rate" mapstructure:"heat_rate"`
	CoolRate            uint8 `json:"cool_rate" mapstructure:"cool_rate"`
	ColdBaseline        uint8 `json:"cold_baseline" mapstructure:"cold_baseline"`
	TargetStandby       uint8 `json:"target_standby" mapstructure:"target_standby"`
	TargetBrewing       uint8 `json:"target_brewing" mapstructure:"target_brewing"`
	TargetExtraHot      uint8 `json:"target_extra_hot" mapstructure:"target_extra_hot"`
	TempTolerance       uint8 `json:"temp_tolerance" mapstructure:"temp_tolerance"`
	HeaterHysteresis    uint8 `json:"heater_hysteresis" mapstructure:"heater_hysteresis"`
	PressurePeriodTicks int   `json:"pressure_period_ticks" mapstructure:"pressure_period_ticks"`

	// Consumable thresholds and reset stock.
	LowThreshold  uint8            `json:"low_threshold" mapstructure:"low_threshold"`
	DefaultLevels IngredientLevels `json:"default_levels" mapstructure:"default_levels"`
}

// DefaultConfig returns the tuning used on real hardware at a 10ms tick.
func DefaultConfig() Config {
	return Config{
		InitTicks:     100, // 1s power-on hold
		CooldownTicks: 300,

		DebounceTicks: 5, // 50ms settle window

		SettingsHoldTicks: 200, // 2s combo hold

		WatchdogTicks: 500, // 5s continuous command limit

		HeatRate:            3,
		CoolRate:            2,
		ColdBaseline:        40,
		TargetStandby:       160,
		TargetBrewing:       200,
		TargetExtraHot:      220,
		TempTolerance:       3,
		HeaterHysteresis:    5,
		PressurePeriodTicks: 20,

		LowThreshold: 50,
		DefaultLevels: IngredientLevels{
			Bin0:       255,
			Bin1:       255,
			Creamer:    255,
			Chocolate:  255,
			PaperCount: 255,
		},
	}
}
