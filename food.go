package main

import "math"

// Food pellet kinds. Everything beyond FoodNormal carries a power-up.
const (
	FoodNormal  = "normal"
	FoodSpeed   = "speed"
	FoodShield  = "shield"
	FoodAttract = "attract"
)

// foodBaseRadius is the pellet radius whose area counts as one value unit
const foodBaseRadius = 6.0

// Food is a stationary pellet
type Food struct {
	ID    int
	X, Y  float64
	R     float64
	Value float64 // mass granted when eaten
	Kind  string
	Color string
}

// NewFood rolls a pellet at a random in-bounds position. Kind odds come
// from the config; value scales with pellet area against the r=6 baseline.
func NewFood(id int, cfg *Config) *Food {
	kind, color := rollFoodKind(cfg)

	var r float64
	if kind == FoodAttract {
		// attract pellets stay small
		r = randRange(cfg.FoodMinRadius, cfg.FoodMinRadius+2)
	} else {
		r = randRange(cfg.FoodMinRadius, cfg.FoodMaxRadius)
	}

	return &Food{
		ID:    id,
		X:     randRange(0, cfg.MapWidth),
		Y:     randRange(0, cfg.MapHeight),
		R:     r,
		Value: cfg.FoodValue * (math.Pi * r * r) / (math.Pi * foodBaseRadius * foodBaseRadius),
		Kind:  kind,
		Color: color,
	}
}

// AreaRatio returns the pellet area relative to the r=6 baseline, used to
// weight power-up strength.
func (f *Food) AreaRatio() float64 {
	return (f.R / foodBaseRadius) * (f.R / foodBaseRadius)
}

// ToState converts to protocol state
func (f *Food) ToState() FoodState {
	return FoodState{
		ID:    f.ID,
		X:     f.X,
		Y:     f.Y,
		R:     f.R,
		Kind:  f.Kind,
		Color: f.Color,
	}
}

func rollFoodKind(cfg *Config) (string, string) {
	roll := randFloat()
	switch {
	case roll < cfg.ShieldFoodChance:
		return FoodShield, "#ef4444"
	case roll < cfg.ShieldFoodChance+cfg.SpeedFoodChance:
		return FoodSpeed, "#22c55e"
	case roll < cfg.ShieldFoodChance+cfg.SpeedFoodChance+cfg.AttractFoodChance:
		return FoodAttract, "#3b82f6"
	default:
		return FoodNormal, "#ffd54f"
	}
}
