package main

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all gameplay tuning values. Defaults match the live
// deployment; any field can be overridden through the environment
// (ARENA_* variables, optionally from a .env file).
type Config struct {
	MapWidth  float64
	MapHeight float64

	TickRate int // simulation ticks per second

	InitialRadius float64
	RespawnRadius float64
	RespawnDelay  time.Duration

	MoveSpeed  float64 // base units/second before size scaling
	SpeedDecay float64 // speed scales by mass^-SpeedDecay

	EatRatio float64 // larger must exceed smaller*EatRatio to eat it

	TargetFoodCount int
	FoodValue       float64 // mass gained from a baseline r=6 pellet
	FoodMinRadius   float64
	FoodMaxRadius   float64

	// Power-up pellet odds (remainder is normal food)
	SpeedFoodChance   float64
	ShieldFoodChance  float64
	AttractFoodChance float64

	SpeedBoostPerStack  float64 // speed gain per active stack
	SpeedDuration       float64 // seconds
	ShieldDuration      float64 // seconds, scaled by pellet area
	AttractDuration     float64 // seconds
	AttractRangePerUnit float64 // pickup-range units per pellet area unit
}

// DefaultConfig returns the stock tuning
func DefaultConfig() *Config {
	return &Config{
		MapWidth:  3000,
		MapHeight: 3000,

		TickRate: 30,

		InitialRadius: 15,
		RespawnRadius: 15,
		RespawnDelay:  2 * time.Second,

		MoveSpeed:  2000,
		SpeedDecay: 0.35,

		EatRatio: 1.10,

		TargetFoodCount: 300,
		FoodValue:       3,
		FoodMinRadius:   4,
		FoodMaxRadius:   10,

		SpeedFoodChance:   0.30,
		ShieldFoodChance:  0.02,
		AttractFoodChance: 0.10,

		SpeedBoostPerStack:  0.01,
		SpeedDuration:       5,
		ShieldDuration:      5,
		AttractDuration:     10,
		AttractRangePerUnit: 6,
	}
}

// LoadConfig builds the config from defaults plus environment overrides.
// A .env file is honored when present; real environment variables win.
func LoadConfig() *Config {
	godotenv.Load()

	c := DefaultConfig()
	c.MapWidth = envFloat("ARENA_MAP_WIDTH", c.MapWidth)
	c.MapHeight = envFloat("ARENA_MAP_HEIGHT", c.MapHeight)
	c.TickRate = envInt("ARENA_TICK_RATE", c.TickRate)
	c.InitialRadius = envFloat("ARENA_INITIAL_RADIUS", c.InitialRadius)
	c.RespawnRadius = envFloat("ARENA_RESPAWN_RADIUS", c.RespawnRadius)
	if s := envFloat("ARENA_RESPAWN_DELAY", c.RespawnDelay.Seconds()); s >= 0 {
		c.RespawnDelay = time.Duration(s * float64(time.Second))
	}
	c.MoveSpeed = envFloat("ARENA_MOVE_SPEED", c.MoveSpeed)
	c.SpeedDecay = envFloat("ARENA_SPEED_DECAY", c.SpeedDecay)
	c.EatRatio = envFloat("ARENA_EAT_RATIO", c.EatRatio)
	c.TargetFoodCount = envInt("ARENA_FOOD_COUNT", c.TargetFoodCount)
	c.FoodValue = envFloat("ARENA_FOOD_VALUE", c.FoodValue)
	c.FoodMinRadius = envFloat("ARENA_FOOD_MIN_RADIUS", c.FoodMinRadius)
	c.FoodMaxRadius = envFloat("ARENA_FOOD_MAX_RADIUS", c.FoodMaxRadius)
	c.SpeedFoodChance = envFloat("ARENA_SPEED_FOOD_CHANCE", c.SpeedFoodChance)
	c.ShieldFoodChance = envFloat("ARENA_SHIELD_FOOD_CHANCE", c.ShieldFoodChance)
	c.AttractFoodChance = envFloat("ARENA_ATTRACT_FOOD_CHANCE", c.AttractFoodChance)
	return c
}

// TickDuration returns the wall-clock length of one simulation tick
func (c *Config) TickDuration() time.Duration {
	return time.Second / time.Duration(c.TickRate)
}

func envFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}
