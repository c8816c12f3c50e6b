package main

// circleContains reports whether point (px,py) lies within radius r of
// (cx,cy). This is the containment test for all consumption checks.
func circleContains(cx, cy, r, px, py float64) bool {
	dx := px - cx
	dy := py - cy
	return dx*dx+dy*dy <= r*r
}

// resolveFoodCollisions eats every pellet whose center is inside a
// player's pickup range. Players are visited in ascending id order so two
// overlapping players contest a pellet deterministically. Caller must
// hold the lock.
func (w *World) resolveFoodCollisions(ids []string) []EffectEvent {
	if len(w.foods) == 0 || len(ids) == 0 {
		return nil
	}

	w.grid.Clear()
	w.foodList = w.foodList[:0]
	for _, f := range w.foods {
		w.grid.Insert(f.X, f.Y, len(w.foodList))
		w.foodList = append(w.foodList, f)
	}

	var events []EffectEvent
	for _, id := range ids {
		p, ok := w.players[id]
		if !ok {
			continue
		}
		reach := p.PickupRange()
		w.queryBuf = w.grid.QueryBuf(p.X, p.Y, reach, w.queryBuf[:0])
		for _, idx := range w.queryBuf {
			f := w.foodList[idx]
			if _, live := w.foods[f.ID]; !live {
				continue // already eaten this tick
			}
			if !circleContains(p.X, p.Y, reach, f.X, f.Y) {
				continue
			}
			delete(w.foods, f.ID)
			if ev, ok := applyFoodEffect(p, f, w.cfg); ok {
				events = append(events, EffectEvent{PlayerID: p.ID, Msg: ev})
			}
			p.Grow(f.Value)
			p.Score += f.Value
		}
	}
	return events
}

// applyFoodEffect applies a pellet's power-up to the player and returns
// the notification to send, if any. Strength scales with pellet area.
func applyFoodEffect(p *Player, f *Food, cfg *Config) (EffectMsg, bool) {
	switch f.Kind {
	case FoodSpeed:
		// stack and refresh
		p.SpeedStacks += f.AreaRatio()
		p.SpeedLeft = cfg.SpeedDuration
		return EffectMsg{
			Type:     MsgEffect,
			Effect:   FoodSpeed,
			Stacks:   p.SpeedStacks,
			Duration: cfg.SpeedDuration,
		}, true
	case FoodShield:
		d := cfg.ShieldDuration * f.AreaRatio()
		p.ShieldLeft = d
		return EffectMsg{
			Type:     MsgEffect,
			Effect:   FoodShield,
			Duration: d,
		}, true
	case FoodAttract:
		p.AttractRange += cfg.AttractRangePerUnit * f.AreaRatio()
		p.AttractLeft = cfg.AttractDuration
		return EffectMsg{
			Type:     MsgEffect,
			Effect:   FoodAttract,
			Range:    p.AttractRange,
			Duration: cfg.AttractDuration,
		}, true
	}
	return EffectMsg{}, false
}

// resolvePlayerCollisions eats the smaller of every colliding pair where
// the larger holds a decisive size advantage. Pairs are walked in
// ascending id order and an eaten player drops out of later pairs within
// the same tick. Caller must hold the lock.
func (w *World) resolvePlayerCollisions(ids []string) []DeathEvent {
	var deaths []DeathEvent
	for i := 0; i < len(ids); i++ {
		a, ok := w.players[ids[i]]
		if !ok {
			continue
		}
		for j := i + 1; j < len(ids); j++ {
			b, ok := w.players[ids[j]]
			if !ok {
				continue
			}
			big, small := a, b
			if b.R > a.R {
				big, small = b, a
			}
			// colliding when the larger circle's edge reaches the
			// smaller's center
			if !circleContains(big.X, big.Y, big.R, small.X, small.Y) {
				continue
			}
			// near-equal sizes bounce off: the eat needs a >10% edge
			if big.R <= small.R*w.cfg.EatRatio {
				continue
			}
			if small.Shielded() {
				continue
			}

			big.Grow(massFromRadius(small.R))
			big.Score += massFromRadius(small.R)
			delete(w.players, small.ID)
			deaths = append(deaths, DeathEvent{
				VictimID:   small.ID,
				VictimName: small.Name,
				KillerID:   big.ID,
				KillerName: big.Name,
			})
			if small == a {
				break // a is gone, move to the next outer player
			}
		}
	}
	return deaths
}
