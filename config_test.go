package main

import (
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.MapWidth != 3000 || cfg.MapHeight != 3000 {
		t.Errorf("unexpected bounds: %fx%f", cfg.MapWidth, cfg.MapHeight)
	}
	if cfg.EatRatio != 1.10 {
		t.Errorf("expected eat ratio 1.10, got %f", cfg.EatRatio)
	}
	if cfg.TickDuration() != time.Second/30 {
		t.Errorf("expected 30Hz tick, got %v", cfg.TickDuration())
	}
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("ARENA_MAP_WIDTH", "1234")
	t.Setenv("ARENA_FOOD_COUNT", "42")
	t.Setenv("ARENA_TICK_RATE", "60")
	t.Setenv("ARENA_RESPAWN_DELAY", "0.5")

	cfg := LoadConfig()
	if cfg.MapWidth != 1234 {
		t.Errorf("expected width 1234, got %f", cfg.MapWidth)
	}
	if cfg.TargetFoodCount != 42 {
		t.Errorf("expected food count 42, got %d", cfg.TargetFoodCount)
	}
	if cfg.TickDuration() != time.Second/60 {
		t.Errorf("expected 60Hz tick, got %v", cfg.TickDuration())
	}
	if cfg.RespawnDelay != 500*time.Millisecond {
		t.Errorf("expected 500ms respawn delay, got %v", cfg.RespawnDelay)
	}
}

func TestLoadConfigIgnoresGarbage(t *testing.T) {
	t.Setenv("ARENA_MAP_WIDTH", "banana")
	t.Setenv("ARENA_TICK_RATE", "-3")

	cfg := LoadConfig()
	def := DefaultConfig()
	if cfg.MapWidth != def.MapWidth {
		t.Errorf("bad float should fall back to default, got %f", cfg.MapWidth)
	}
	if cfg.TickRate != def.TickRate {
		t.Errorf("non-positive tick rate should fall back, got %d", cfg.TickRate)
	}
}
