package main

import (
	"fmt"
	"math"
	"regexp"
	"strings"
)

const maxNameLen = 16

// Player is a server-authoritative blob. The simulation loop is the only
// writer of position, radius and score; the owning connection writes
// TargetX/TargetY, Name and Connected through the World accessors.
type Player struct {
	ID        string
	Name      string
	X, Y      float64
	TargetX   float64
	TargetY   float64
	R         float64
	Color     string
	Score     float64
	Connected bool

	// Power-up state, counted down in seconds by Integrate
	SpeedStacks  float64
	SpeedLeft    float64
	ShieldLeft   float64
	AttractLeft  float64
	AttractRange float64
}

// NewPlayer spawns a player at a random in-bounds position. The target
// defaults to the spawn point so a fresh player stays put.
func NewPlayer(id string, cfg *Config) *Player {
	x := randRange(cfg.InitialRadius, cfg.MapWidth-cfg.InitialRadius)
	y := randRange(cfg.InitialRadius, cfg.MapHeight-cfg.InitialRadius)
	return &Player{
		ID:        id,
		X:         x,
		Y:         y,
		TargetX:   x,
		TargetY:   y,
		R:         cfg.InitialRadius,
		Color:     randomColor(),
		Connected: true,
	}
}

// massFromRadius converts radius to area mass
func massFromRadius(r float64) float64 {
	return math.Pi * r * r
}

// radiusFromMass converts area mass back to radius
func radiusFromMass(m float64) float64 {
	return math.Sqrt(m / math.Pi)
}

// Grow adds mass, so the radius gain diminishes as the player gets bigger
func (p *Player) Grow(mass float64) {
	p.R = radiusFromMass(massFromRadius(p.R) + mass)
}

// Speed returns the current movement speed in units/second. Bigger players
// move slower; active speed stacks add 1% each.
func (p *Player) Speed(cfg *Config) float64 {
	mul := 1.0
	if p.SpeedLeft > 0 {
		mul = 1.0 + cfg.SpeedBoostPerStack*p.SpeedStacks
	}
	return cfg.MoveSpeed * math.Pow(massFromRadius(p.R), -cfg.SpeedDecay) * mul
}

// Integrate advances the player one tick toward its target. dt is in
// seconds. The step is capped at the remaining distance and the result is
// clamped inside the map.
func (p *Player) Integrate(dt float64, cfg *Config) {
	p.tickEffects(dt)

	dx := p.TargetX - p.X
	dy := p.TargetY - p.Y
	dist := math.Hypot(dx, dy)
	if dist > 1e-3 {
		step := p.Speed(cfg) * dt
		if step >= dist {
			p.X, p.Y = p.TargetX, p.TargetY
		} else {
			p.X += dx / dist * step
			p.Y += dy / dist * step
		}
	}

	// keep the whole circle inside until it outgrows the map
	mx := math.Min(p.R, cfg.MapWidth/2)
	my := math.Min(p.R, cfg.MapHeight/2)
	p.X = Clamp(p.X, mx, cfg.MapWidth-mx)
	p.Y = Clamp(p.Y, my, cfg.MapHeight-my)
}

// tickEffects counts down power-up timers and clears expired state
func (p *Player) tickEffects(dt float64) {
	if p.SpeedLeft > 0 {
		p.SpeedLeft -= dt
		if p.SpeedLeft <= 0 {
			p.SpeedLeft = 0
			p.SpeedStacks = 0
		}
	}
	if p.ShieldLeft > 0 {
		p.ShieldLeft -= dt
	}
	if p.AttractLeft > 0 {
		p.AttractLeft -= dt
		if p.AttractLeft <= 0 {
			p.AttractLeft = 0
			p.AttractRange = 0
		}
	}
}

// Shielded reports whether the player is currently immune to being eaten
func (p *Player) Shielded() bool {
	return p.ShieldLeft > 0
}

// PickupRange returns the food pickup radius including any attract bonus
func (p *Player) PickupRange() float64 {
	if p.AttractLeft > 0 {
		return p.R + p.AttractRange
	}
	return p.R
}

// ToState converts to protocol state
func (p *Player) ToState() PlayerState {
	return PlayerState{
		ID:    p.ID,
		Name:  p.Name,
		X:     p.X,
		Y:     p.Y,
		R:     p.R,
		Color: p.Color,
		Score: p.Score,
	}
}

var nameRe = regexp.MustCompile(`[^\w\s]`)

// SanitizeName strips non-word characters and truncates. Empty names
// become "Guest".
func SanitizeName(name string) string {
	name = strings.TrimSpace(name)
	name = nameRe.ReplaceAllString(name, "")
	if len(name) > maxNameLen {
		name = name[:maxNameLen]
	}
	if name == "" {
		return "Guest"
	}
	return name
}

// randomColor picks a random hue at fixed saturation/lightness
func randomColor() string {
	return fmt.Sprintf("hsl(%d,70%%,55%%)", int(randFloat()*360))
}
