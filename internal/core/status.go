package core

// MenuState identifies the screen the user is currently on.
type MenuState string

const (
	MenuSplash       MenuState = "SPLASH"
	MenuCheckErrors  MenuState = "CHECK_ERRORS"
	MenuCoffeeSelect MenuState = "COFFEE_SELECT"
	MenuDrinkSelect  MenuState = "DRINK_SELECT"
	MenuSizeSelect   MenuState = "SIZE_SELECT"
	MenuConfirm      MenuState = "CONFIRM"
	MenuBrewing      MenuState = "BREWING"
	MenuComplete     MenuState = "COMPLETE"
	MenuSettings     MenuState = "SETTINGS"
	MenuError        MenuState = "ERROR"
)

// SysState is the top-level orchestrator state.
type SysState string

const (
	SysInit        SysState = "INIT"
	SysSplash      SysState = "SPLASH"
	SysHeating     SysState = "HEATING"
	SysReady       SysState = "READY"
	SysBrewing     SysState = "BREWING"
	SysCooldown    SysState = "COOLDOWN"
	SysErrorCycle  SysState = "ERROR_CYCLE"
	SysMaintenance SysState = "MAINTENANCE"
)

// BrewPhase is the Recipe Engine's physical sequence position.
type BrewPhase string

const (
	PhaseIdle      BrewPhase = "IDLE"
	PhasePaperFeed BrewPhase = "PAPER_FEED"
	PhaseGrind     BrewPhase = "GRIND"
	PhasePour      BrewPhase = "POUR"
	PhaseSettle    BrewPhase = "SETTLE"
	PhaseComplete  BrewPhase = "COMPLETE"
)

// DrinkType enumerates the menu's drink variants, in cycle order.
type DrinkType string

const (
	DrinkBlack        DrinkType = "BLACK"
	DrinkEspresso     DrinkType = "ESPRESSO"
	DrinkLatte        DrinkType = "LATTE"
	DrinkCappuccino   DrinkType = "CAPPUCCINO"
	DrinkMocha        DrinkType = "MOCHA"
	DrinkHotChocolate DrinkType = "HOT_CHOCOLATE"
)

// drinkCycle is the left/right wraparound order on the drink screen.
var drinkCycle = []DrinkType{
	DrinkBlack, DrinkEspresso, DrinkLatte, DrinkCappuccino, DrinkMocha, DrinkHotChocolate,
}

// DrinkSize scales a recipe's amounts and durations.
type DrinkSize string

const (
	SizeSmall  DrinkSize = "SMALL"
	SizeMedium DrinkSize = "MEDIUM"
	SizeLarge  DrinkSize = "LARGE"
)

var sizeCycle = []DrinkSize{SizeSmall, SizeMedium, SizeLarge}

// TempMode selects the water target temperature.
type TempMode string

const (
	TempStandby  TempMode = "STANDBY"
	TempBrewing  TempMode = "BREWING"
	TempExtraHot TempMode = "EXTRA_HOT"
)

// Selection is the user's incrementally built drink order.
type Selection struct {
	CoffeeBin int       `json:"coffee_bin"` // 0 or 1
	Drink     DrinkType `json:"drink_type"`
	Size      DrinkSize `json:"size"`
}

// IngredientLevels tracks remaining stock on a 0..255 scale.
type IngredientLevels struct {
	Bin0       uint8 `json:"bin0"`
	Bin1       uint8 `json:"bin1"`
	Creamer    uint8 `json:"creamer"`
	Chocolate  uint8 `json:"chocolate"`
	PaperCount uint8 `json:"paper_count"`
}

// ConsumableStatus is the Consumable Manager's published output.
type ConsumableStatus struct {
	Levels IngredientLevels `json:"levels"`

	// PaperPresent is true while the raw sensor sees paper and stock remains.
	PaperPresent bool `json:"paper_present"`

	Bin0Empty      bool `json:"bin0_empty"`
	Bin1Empty      bool `json:"bin1_empty"`
	CreamerEmpty   bool `json:"creamer_empty"`
	ChocolateEmpty bool `json:"chocolate_empty"`
	PaperEmpty     bool `json:"paper_empty"`

	Bin0Low      bool `json:"bin0_low"`
	Bin1Low      bool `json:"bin1_low"`
	CreamerLow   bool `json:"creamer_low"`
	ChocolateLow bool `json:"chocolate_low"`
	PaperLow     bool `json:"paper_low"`

	CanMakeCoffee   bool `json:"can_make_coffee"`
	CanAddCreamer   bool `json:"can_add_creamer"`
	CanAddChocolate bool `json:"can_add_chocolate"`
}

// WaterStatus is the Water Thermal Controller's published output.
type WaterStatus struct {
	CurrentTemp   uint8    `json:"current_temp"`
	TargetTemp    uint8    `json:"target_temp"`
	Mode          TempMode `json:"mode"`
	HeaterOn      bool     `json:"heater_on"`
	TempReady     bool     `json:"temp_ready"`
	PressureReady bool     `json:"pressure_ready"`
	SystemOK      bool     `json:"system_ok"`
}

// ErrorStatus is the aggregate fault/warning state. Error Handler is its sole writer.
type ErrorStatus struct {
	Critical     bool  `json:"critical"`
	ErrorPresent bool  `json:"error_present"`
	ErrorCount   uint8 `json:"error_count"`
	WarningCount uint8 `json:"warning_count"`

	// Critical causes.
	NoWater       bool `json:"no_water"`
	NoPaper       bool `json:"no_paper"`
	NoCoffee      bool `json:"no_coffee"`
	TempFault     bool `json:"temp_fault"`
	PressureFault bool `json:"pressure_fault"`
	SystemFault   bool `json:"system_fault"`

	// Warnings.
	PaperLow     bool `json:"paper_low"`
	Bin0Low      bool `json:"bin0_low"`
	Bin1Low      bool `json:"bin1_low"`
	CreamerLow   bool `json:"creamer_low"`
	ChocolateLow bool `json:"chocolate_low"`
	TempHeating  bool `json:"temp_heating"`
}

// ActuatorCommand carries the logical on/off requests for every physical actuator.
type ActuatorCommand struct {
	Grinder0    bool `json:"grinder0"`
	Grinder1    bool `json:"grinder1"`
	WaterPour   bool `json:"water_pour"`
	WaterDirect bool `json:"water_direct"`
	PaperMotor  bool `json:"paper_motor"`
	Heater      bool `json:"heater"`
}

// ActuatorStatus is the gated output stage plus watchdog state.
type ActuatorStatus struct {
	Enabled         ActuatorCommand `json:"enabled"`
	ActuatorsActive bool            `json:"actuators_active"`
	ActiveCount     int             `json:"active_count"`
	TimeoutFault    bool            `json:"timeout_fault"`
}

// ConsumeRequest is the Recipe Engine's per-tick consumption order.
type ConsumeRequest struct {
	Bin0        uint8 `json:"bin0"`
	Bin1        uint8 `json:"bin1"`
	Creamer     uint8 `json:"creamer"`
	Chocolate   uint8 `json:"chocolate"`
	PaperFilter bool  `json:"paper_filter"`
}

// BrewStatus is the Recipe Engine's published output.
type BrewStatus struct {
	Phase         BrewPhase       `json:"phase"`
	Progress      uint8           `json:"progress"` // 0..100
	Active        bool            `json:"active"`
	CompletePulse bool            `json:"complete_pulse"`
	RecipeValid   bool            `json:"recipe_valid"`
	Commands      ActuatorCommand `json:"commands"`
	Consume       ConsumeRequest  `json:"consume"`
}

// MenuStatus is the Menu Navigator's published output.
type MenuStatus struct {
	State          MenuState `json:"state"`
	Selection      Selection `json:"selection"`
	StartBrewing   bool      `json:"start_brewing"`   // one-tick pulse
	AbortBrewing   bool      `json:"abort_brewing"`   // one-tick pulse
	EnterSettings  bool      `json:"enter_settings"`  // one-tick pulse
	DisplayRefresh bool      `json:"display_refresh"` // one-tick pulse
}

// SystemStatus is the Main Orchestrator's published output.
type SystemStatus struct {
	State         SysState `json:"state"`
	Ready         bool     `json:"ready"`
	Active        bool     `json:"active"`
	Fault         bool     `json:"fault"`
	EmergencyStop bool     `json:"emergency_stop"`
	HeatingEnable bool     `json:"heating_enable"`
	TargetMode    TempMode `json:"target_mode"`
	StartBrew     bool     `json:"start_brew"` // one-tick pulse into the Recipe Engine
	AbortBrew     bool     `json:"abort_brew"` // one-tick pulse into the Recipe Engine
}

// Snapshot is the full set of published component outputs for one tick.
// It is the only cross-component communication channel.
type Snapshot struct {
	Tick        uint64           `json:"tick"`
	Consumables ConsumableStatus `json:"consumables"`
	Water       WaterStatus      `json:"water"`
	Errors      ErrorStatus      `json:"errors"`
	Menu        MenuStatus       `json:"menu"`
	System      SystemStatus     `json:"system"`
	Brew        BrewStatus       `json:"brew"`
	Actuators   ActuatorStatus   `json:"actuators"`
}

// Buttons carries pre-debounced rising-edge button events plus the raw held
// levels needed for the settings combo hold.
type Buttons struct {
	Select bool `json:"select"`
	Cancel bool `json:"cancel"`
	Left   bool `json:"left"`
	Right  bool `json:"right"`

	HeldSelect bool `json:"held_select"`
	HeldLeft   bool `json:"held_left"`
	HeldRight  bool `json:"held_right"`
}

// LevelReading is an optional external sensor reading for one ingredient.
type LevelReading struct {
	Value uint8 `json:"value"`
	Valid bool  `json:"valid"`
}

// SensorInputs are the raw discrete inputs sampled once per tick.
type SensorInputs struct {
	Bin0      LevelReading `json:"bin0"`
	Bin1      LevelReading `json:"bin1"`
	Creamer   LevelReading `json:"creamer"`
	Chocolate LevelReading `json:"chocolate"`

	PaperPresent bool `json:"paper_present"`
	WaterSupply  bool `json:"water_supply"` // raw water-line present
	PressureOK   bool `json:"pressure_ok"`

	TempOverride     bool `json:"temp_override"`
	PressureOverride bool `json:"pressure_override"`
	TempFault        bool `json:"temp_fault"`
	SystemFault      bool `json:"system_fault"`
}

// Inputs is everything the outside world feeds into one tick.
type Inputs struct {
	Buttons Buttons      `json:"buttons"`
	Sensors SensorInputs `json:"sensors"`
}
