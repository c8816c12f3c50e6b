package main

import (
	"sort"
	"sync"
)

// spatialCellSize is the broad-phase grid cell size, sized against the
// largest pellet so most pickup queries touch a handful of cells.
const spatialCellSize = 80.0

// World holds all live entities and the bounds. The mutex covers every
// field; connection goroutines only enter through the accessor methods
// (targets, names, connected flags) while Step and Snapshot run on the
// simulation goroutine once per tick, so entity mutation never tears.
type World struct {
	cfg *Config

	mu         sync.Mutex
	players    map[string]*Player
	foods      map[int]*Food
	nextFoodID int
	tick       uint64

	// scratch space reused across ticks
	grid     *SpatialGrid
	foodList []*Food
	queryBuf []int
}

// EffectEvent is a power-up pickup to be relayed to one player
type EffectEvent struct {
	PlayerID string
	Msg      EffectMsg
}

// DeathEvent is one player being eaten by another
type DeathEvent struct {
	VictimID   string
	VictimName string
	KillerID   string
	KillerName string
}

// NewWorld creates a world filled to the target food density
func NewWorld(cfg *Config) *World {
	w := &World{
		cfg:     cfg,
		players: make(map[string]*Player),
		foods:   make(map[int]*Food),
		grid:    NewSpatialGrid(cfg.MapWidth, cfg.MapHeight, spatialCellSize),
	}
	w.replenishFood()
	return w
}

// AddPlayer spawns a fresh player and returns its spawn position.
// The id must be fresh; an existing id is left untouched.
func (w *World) AddPlayer(id string) (x, y float64) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if p, ok := w.players[id]; ok {
		return p.X, p.Y
	}
	p := NewPlayer(id, w.cfg)
	w.players[id] = p
	return p.X, p.Y
}

// RespawnPlayer re-adds an eliminated player with reset size and score,
// keeping the display name. No-op if the id is still (or again) live.
func (w *World) RespawnPlayer(id, name string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if _, ok := w.players[id]; ok {
		return
	}
	p := NewPlayer(id, w.cfg)
	p.R = w.cfg.RespawnRadius
	p.Name = name
	w.players[id] = p
}

// MarkDisconnected flags a player for removal at the start of the next
// tick. Unknown ids are a no-op.
func (w *World) MarkDisconnected(id string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if p, ok := w.players[id]; ok {
		p.Connected = false
	}
}

// UpsertPlayerTarget records the latest target for a player, clamped into
// bounds. Unknown ids are a no-op (the player may have just been eaten).
// Latest value wins; the tick reads whatever was last written.
func (w *World) UpsertPlayerTarget(id string, x, y float64) {
	w.mu.Lock()
	defer w.mu.Unlock()
	p, ok := w.players[id]
	if !ok {
		return
	}
	p.TargetX = Clamp(x, 0, w.cfg.MapWidth)
	p.TargetY = Clamp(y, 0, w.cfg.MapHeight)
}

// SetPlayerName updates display metadata. Unknown ids are a no-op.
func (w *World) SetPlayerName(id, name string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if p, ok := w.players[id]; ok {
		p.Name = name
	}
}

// PlayerName returns the current name for a player ("" if unknown)
func (w *World) PlayerName(id string) string {
	w.mu.Lock()
	defer w.mu.Unlock()
	if p, ok := w.players[id]; ok {
		return p.Name
	}
	return ""
}

// HasPlayer reports whether the id is live
func (w *World) HasPlayer(id string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	_, ok := w.players[id]
	return ok
}

// PlayerCount returns the number of live players
func (w *World) PlayerCount() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.players)
}

// FoodCount returns the number of live pellets
func (w *World) FoodCount() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.foods)
}

// Tick returns the completed tick count
func (w *World) Tick() uint64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.tick
}

// Step runs one simulation tick: sweep disconnected players, integrate
// movement, top up food, resolve consumption, advance the tick counter.
// dt is the tick length in seconds. Returned events are for the caller to
// relay; the world itself has already been mutated.
func (w *World) Step(dt float64) ([]EffectEvent, []DeathEvent) {
	w.mu.Lock()
	defer w.mu.Unlock()

	for id, p := range w.players {
		if !p.Connected {
			delete(w.players, id)
		}
	}

	ids := w.sortedPlayerIDs()
	for _, id := range ids {
		w.players[id].Integrate(dt, w.cfg)
	}

	w.replenishFood()

	effects := w.resolveFoodCollisions(ids)
	deaths := w.resolvePlayerCollisions(ids)

	w.tick++
	return effects, deaths
}

// Snapshot returns a copy of the world for serialization. Only connected
// players are included.
func (w *World) Snapshot() StateMsg {
	w.mu.Lock()
	defer w.mu.Unlock()

	msg := StateMsg{
		Type:    MsgState,
		Tick:    w.tick,
		Players: make([]PlayerState, 0, len(w.players)),
		Foods:   make([]FoodState, 0, len(w.foods)),
	}
	for _, id := range w.sortedPlayerIDs() {
		msg.Players = append(msg.Players, w.players[id].ToState())
	}
	foodIDs := make([]int, 0, len(w.foods))
	for id := range w.foods {
		foodIDs = append(foodIDs, id)
	}
	sort.Ints(foodIDs)
	for _, id := range foodIDs {
		msg.Foods = append(msg.Foods, w.foods[id].ToState())
	}
	return msg
}

// sortedPlayerIDs returns connected player ids in ascending order so pair
// evaluation is reproducible. Caller must hold the lock.
func (w *World) sortedPlayerIDs() []string {
	ids := make([]string, 0, len(w.players))
	for id, p := range w.players {
		if p.Connected {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}

// replenishFood tops the pellet count back up to the target density.
// Fresh pellets always get fresh ids. Caller must hold the lock.
func (w *World) replenishFood() {
	for len(w.foods) < w.cfg.TargetFoodCount {
		id := w.nextFoodID
		w.nextFoodID++
		w.foods[id] = NewFood(id, w.cfg)
	}
}
