package core

// RecipeDefinition is the per-drink base ingredient and phase-duration vector,
// before size scaling. Amounts are on the 0..255 stock scale, durations in ticks.
type RecipeDefinition struct {
	GrindAmount     uint8 `json:"grind_amount"`
	CreamerAmount   uint8 `json:"creamer_amount"`
	ChocolateAmount uint8 `json:"chocolate_amount"`

	PaperFeedTicks int `json:"paper_feed_ticks"`
	GrindTicks     int `json:"grind_ticks"`
	PourTicks      int `json:"pour_ticks"`
	SettleTicks    int `json:"settle_ticks"`
}

// NeedsCreamer reports whether the recipe pulls from the creamer hopper.
func (r RecipeDefinition) NeedsCreamer() bool { return r.CreamerAmount > 0 }

// NeedsChocolate reports whether the recipe pulls from the chocolate hopper.
func (r RecipeDefinition) NeedsChocolate() bool { return r.ChocolateAmount > 0 }

// TotalTicks is the full phase duration of the recipe.
func (r RecipeDefinition) TotalTicks() int {
	return r.PaperFeedTicks + r.GrindTicks + r.PourTicks + r.SettleTicks
}

// recipeCatalog holds the static base recipe per drink. Not mutated at runtime.
var recipeCatalog = map[DrinkType]RecipeDefinition{
	DrinkBlack: {
		GrindAmount:    20,
		PaperFeedTicks: 40, GrindTicks: 120, PourTicks: 200, SettleTicks: 60,
	},
	DrinkEspresso: {
		GrindAmount:    28,
		PaperFeedTicks: 40, GrindTicks: 160, PourTicks: 120, SettleTicks: 60,
	},
	DrinkLatte: {
		GrindAmount: 20, CreamerAmount: 24,
		PaperFeedTicks: 40, GrindTicks: 120, PourTicks: 220, SettleTicks: 80,
	},
	DrinkCappuccino: {
		GrindAmount: 24, CreamerAmount: 16,
		PaperFeedTicks: 40, GrindTicks: 140, PourTicks: 200, SettleTicks: 80,
	},
	DrinkMocha: {
		GrindAmount: 20, CreamerAmount: 12, ChocolateAmount: 16,
		PaperFeedTicks: 40, GrindTicks: 120, PourTicks: 220, SettleTicks: 80,
	},
	DrinkHotChocolate: {
		ChocolateAmount: 32,
		PaperFeedTicks:  40, GrindTicks: 20, PourTicks: 240, SettleTicks: 60,
	},
}

// RecipeFor returns the unscaled base recipe for a drink. Unknown drinks fall
// back to plain black coffee.
func RecipeFor(drink DrinkType) RecipeDefinition {
	if r, ok := recipeCatalog[drink]; ok {
		return r
	}
	return recipeCatalog[DrinkBlack]
}

// Size scaling is a fixed rational factor: Small 3/4, Medium 1/1, Large 3/2.
// The same factor applies to ingredient amounts and phase durations so that
// pour rates stay constant across sizes.
func sizeFactor(size DrinkSize) (num, den int) {
	switch size {
	case SizeSmall:
		return 3, 4
	case SizeLarge:
		return 3, 2
	default:
		return 1, 1
	}
}

func scaleAmount(base uint8, num, den int) uint8 {
	v := int(base) * num / den
	if v > 255 {
		v = 255
	}
	return uint8(v)
}

func scaleTicks(base, num, den int) int {
	v := base * num / den
	if v < 1 {
		v = 1
	}
	return v
}

// ScaledRecipe returns the recipe for a drink with size scaling applied.
func ScaledRecipe(drink DrinkType, size DrinkSize) RecipeDefinition {
	base := RecipeFor(drink)
	num, den := sizeFactor(size)
	return RecipeDefinition{
		GrindAmount:     scaleAmount(base.GrindAmount, num, den),
		CreamerAmount:   scaleAmount(base.CreamerAmount, num, den),
		ChocolateAmount: scaleAmount(base.ChocolateAmount, num, den),
		PaperFeedTicks:  scaleTicks(base.PaperFeedTicks, num, den),
		GrindTicks:      scaleTicks(base.GrindTicks, num, den),
		PourTicks:       scaleTicks(base.PourTicks, num, den),
		SettleTicks:     scaleTicks(base.SettleTicks, num, den),
	}
}
