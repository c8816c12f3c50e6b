package main

import (
	"math"
	"testing"
)

func TestCircleContains(t *testing.T) {
	if !circleContains(0, 0, 10, 10, 0) {
		t.Error("point on the edge should be contained")
	}
	if !circleContains(0, 0, 10, 3, 4) {
		t.Error("interior point should be contained")
	}
	if circleContains(0, 0, 10, 10.01, 0) {
		t.Error("exterior point should not be contained")
	}
}

func TestEatWithSizeAdvantage(t *testing.T) {
	w := NewWorld(testConfig())
	putPlayer(w, "a", 50, 50, 30)
	putPlayer(w, "b", 52, 50, 25) // 25*1.10 = 27.5 < 30

	_, deaths := w.Step(testDT)

	if len(deaths) != 1 {
		t.Fatalf("expected 1 death, got %d", len(deaths))
	}
	if deaths[0].VictimID != "b" || deaths[0].KillerID != "a" {
		t.Errorf("expected a eats b, got %+v", deaths[0])
	}
	if w.HasPlayer("b") {
		t.Error("eaten player must be removed")
	}
	w.mu.Lock()
	r := w.players["a"].R
	w.mu.Unlock()
	if r <= 30 {
		t.Errorf("eater radius must strictly increase, got %f", r)
	}
	want := math.Sqrt(30*30 + 25*25) // area-additive growth
	if math.Abs(r-want) > 1e-9 {
		t.Errorf("expected radius %f, got %f", want, r)
	}
}

func TestNearEqualSizesDoNotEat(t *testing.T) {
	w := NewWorld(testConfig())
	putPlayer(w, "a", 50, 50, 20)
	putPlayer(w, "b", 51, 50, 21) // 21 <= 20*1.10, no decisive advantage

	_, deaths := w.Step(testDT)

	if len(deaths) != 0 {
		t.Fatalf("near-equal pair must not eat, got %d deaths", len(deaths))
	}
	if !w.HasPlayer("a") || !w.HasPlayer("b") {
		t.Error("both players must survive")
	}
}

func TestContainmentBoundary(t *testing.T) {
	w := NewWorld(testConfig())
	putPlayer(w, "a", 100, 100, 30)
	putPlayer(w, "b", 131, 100, 10) // outside the larger circle's edge

	_, deaths := w.Step(testDT)
	if len(deaths) != 0 {
		t.Fatal("no containment, no eat")
	}

	// move just onto the edge
	w.mu.Lock()
	w.players["b"].X = 130
	w.players["b"].TargetX = 130
	w.mu.Unlock()
	_, deaths = w.Step(testDT)
	if len(deaths) != 1 {
		t.Fatalf("expected eat at the containment boundary, got %d", len(deaths))
	}
}

func TestEatenPlayerSkippedSameTick(t *testing.T) {
	w := NewWorld(testConfig())
	// all stacked: a eats b, then a (not the removed b) eats c
	putPlayer(w, "a", 100, 100, 40)
	putPlayer(w, "b", 100, 100, 30)
	putPlayer(w, "c", 100, 100, 20)

	_, deaths := w.Step(testDT)

	if len(deaths) != 2 {
		t.Fatalf("expected 2 deaths, got %d", len(deaths))
	}
	for _, d := range deaths {
		if d.KillerID != "a" {
			t.Errorf("removed player acted as killer: %+v", d)
		}
	}
	if w.PlayerCount() != 1 || !w.HasPlayer("a") {
		t.Error("only the largest player should remain")
	}
}

func TestShieldBlocksEat(t *testing.T) {
	w := NewWorld(testConfig())
	putPlayer(w, "a", 50, 50, 30)
	putPlayer(w, "b", 52, 50, 20)
	w.mu.Lock()
	w.players["b"].ShieldLeft = 10
	w.mu.Unlock()

	_, deaths := w.Step(testDT)
	if len(deaths) != 0 {
		t.Fatal("shielded player must not be eaten")
	}
	if !w.HasPlayer("b") {
		t.Error("shielded player removed")
	}
}

func TestFoodConsumptionGrowsAndScores(t *testing.T) {
	w := NewWorld(testConfig())
	putPlayer(w, "a", 100, 100, 20)
	putFood(w, 1, 110, 100, 5, 3, FoodNormal)  // center within radius 20
	putFood(w, 2, 500, 500, 5, 3, FoodNormal)  // far away

	effects, _ := w.Step(testDT)

	if len(effects) != 0 {
		t.Errorf("normal food must not emit effects, got %d", len(effects))
	}
	if w.FoodCount() != 1 {
		t.Fatalf("expected 1 pellet left, got %d", w.FoodCount())
	}
	w.mu.Lock()
	p := w.players["a"]
	r, score := p.R, p.Score
	w.mu.Unlock()
	want := radiusFromMass(massFromRadius(20) + 3)
	if math.Abs(r-want) > 1e-9 {
		t.Errorf("expected radius %f, got %f", want, r)
	}
	if score != 3 {
		t.Errorf("expected score 3, got %f", score)
	}
}

func TestPowerUpFoodAppliesEffect(t *testing.T) {
	cfg := testConfig()
	w := NewWorld(cfg)
	putPlayer(w, "a", 100, 100, 20)
	putFood(w, 1, 105, 100, 6, 3, FoodSpeed)
	putFood(w, 2, 95, 100, 6, 3, FoodShield)
	putFood(w, 3, 100, 105, 6, 3, FoodAttract)

	effects, _ := w.Step(testDT)

	if len(effects) != 3 {
		t.Fatalf("expected 3 effect events, got %d", len(effects))
	}
	seen := map[string]bool{}
	for _, ev := range effects {
		if ev.PlayerID != "a" {
			t.Errorf("effect for wrong player: %+v", ev)
		}
		seen[ev.Msg.Effect] = true
	}
	if !seen[FoodSpeed] || !seen[FoodShield] || !seen[FoodAttract] {
		t.Errorf("missing effect kinds: %v", seen)
	}

	w.mu.Lock()
	p := w.players["a"]
	w.mu.Unlock()
	if p.SpeedStacks != 1 || p.SpeedLeft <= 0 {
		t.Errorf("speed effect not applied: stacks=%f left=%f", p.SpeedStacks, p.SpeedLeft)
	}
	if !p.Shielded() {
		t.Error("shield effect not applied")
	}
	if p.AttractRange != cfg.AttractRangePerUnit || p.AttractLeft <= 0 {
		t.Errorf("attract effect not applied: range=%f left=%f", p.AttractRange, p.AttractLeft)
	}
}

func TestFoodContestedDeterministically(t *testing.T) {
	// two players both contain the pellet; ascending id order wins
	for i := 0; i < 5; i++ {
		w := NewWorld(testConfig())
		putPlayer(w, "b", 95, 100, 20)
		putPlayer(w, "a", 105, 100, 20)
		putFood(w, 1, 100, 100, 5, 3, FoodNormal)

		w.Step(testDT)

		w.mu.Lock()
		aScore := w.players["a"].Score
		bScore := w.players["b"].Score
		w.mu.Unlock()
		if aScore != 3 || bScore != 0 {
			t.Fatalf("pellet must go to ascending-id winner: a=%f b=%f", aScore, bScore)
		}
	}
}
