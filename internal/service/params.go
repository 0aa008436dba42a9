package service

import "time"

// Button names accepted by PressButton.
const (
	ButtonSelect = "select"
	ButtonCancel = "cancel"
	ButtonLeft   = "left"
	ButtonRight  = "right"
)

// ButtonPress injects one debounced button edge. Hold latches the held level
// of the button (for the settings combo) until Release clears it.
type ButtonPress struct {
	Button  string
	Hold    bool
	Release bool
}

// Ingredient names accepted by Refill.
const (
	IngredientBin0      = "bin0"
	IngredientBin1      = "bin1"
	IngredientCreamer   = "creamer"
	IngredientChocolate = "chocolate"
	IngredientPaper     = "paper"
)

// RefillParams is an external sensor reading for one ingredient. For "paper"
// the level acts as the presence boolean (non-zero means a stack is loaded).
type RefillParams struct {
	Ingredient string
	Level      uint8
}

// OverrideParams flips the maintenance/test override lines. Nil fields are
// left untouched.
type OverrideParams struct {
	TempOverride     *bool
	PressureOverride *bool
	TempFault        *bool
	SystemFault      *bool
	WaterSupply      *bool
	PressureOK       *bool
}

// LogFilter supports history filtering by time range and type.
type LogFilter struct {
	From time.Time // inclusive; zero means no lower bound
	To   time.Time // inclusive; zero means no upper bound
	Type string    // "", or one of the models.Event* constants
}
