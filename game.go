package main

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"
)

// Broadcaster is the outbound side of a connection
type Broadcaster interface {
	SendJSON(msg interface{})
	SendRaw(data []byte)
	SendBinary(data []byte)
	WantsBinary() bool
}

// Simulation loop states
const (
	loopIdle = iota
	loopRunning
	loopStopped
)

// Game drives the shared world at a fixed tick rate and relays snapshots
// and one-shot notices to the connected clients.
type Game struct {
	cfg       *Config
	world     *World
	analytics *Analytics

	mu       sync.RWMutex
	clients  map[string]Broadcaster
	respawns map[string]*time.Timer
	state    int

	stop chan struct{}
	done chan struct{} // closed when Run exits
}

// NewGame creates a game around a freshly populated world
func NewGame(cfg *Config, analytics *Analytics) *Game {
	return &Game{
		cfg:       cfg,
		world:     NewWorld(cfg),
		analytics: analytics,
		clients:   make(map[string]Broadcaster),
		respawns:  make(map[string]*time.Timer),
		stop:      make(chan struct{}),
		done:      make(chan struct{}),
	}
}

// World exposes the world for accessor calls
func (g *Game) World() *World {
	return g.world
}

// Run starts the fixed-rate simulation loop and blocks until Stop
func (g *Game) Run() {
	g.mu.Lock()
	if g.state != loopIdle {
		g.mu.Unlock()
		return
	}
	g.state = loopRunning
	g.mu.Unlock()
	defer close(g.done)

	ticker := time.NewTicker(g.cfg.TickDuration())
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			g.update()
		case <-g.stop:
			g.mu.Lock()
			g.state = loopStopped
			for id, t := range g.respawns {
				t.Stop()
				delete(g.respawns, id)
			}
			g.mu.Unlock()
			return
		}
	}
}

// Stop terminates the loop. The in-flight tick completes first; no
// further ticks are scheduled.
func (g *Game) Stop() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.state == loopRunning {
		g.state = loopStopped
		close(g.stop)
	}
}

// State returns the loop state
func (g *Game) State() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.state
}

// Join spawns a player and returns the fresh player id. The caller
// attaches the connection separately, after queueing its init message, so
// a snapshot can never arrive ahead of the init.
func (g *Game) Join() string {
	id := GenerateID(6)
	g.world.AddPlayer(id)
	return id
}

// Attach registers the outbound side of a player's connection
func (g *Game) Attach(id string, c Broadcaster) {
	g.mu.Lock()
	g.clients[id] = c
	g.mu.Unlock()
}

// Leave detaches a connection: the player is flagged for removal at the
// start of the next tick and any pending respawn is cancelled.
func (g *Game) Leave(id string) {
	g.mu.Lock()
	delete(g.clients, id)
	if t, ok := g.respawns[id]; ok {
		t.Stop()
		delete(g.respawns, id)
	}
	g.mu.Unlock()
	g.world.MarkDisconnected(id)
}

// HandleMove records a target update from a client
func (g *Game) HandleMove(id string, x, y float64) {
	g.world.UpsertPlayerTarget(id, x, y)
}

// HandleSetName records a display-name update from a client
func (g *Game) HandleSetName(id, name string) {
	g.world.SetPlayerName(id, SanitizeName(name))
}

// ClientCount returns the number of attached connections
func (g *Game) ClientCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.clients)
}

func (g *Game) client(id string) Broadcaster {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.clients[id]
}

// update runs one tick: step the world, relay events, broadcast the
// snapshot. Overruns are logged and never replayed.
func (g *Game) update() {
	start := time.Now()
	dt := 1.0 / float64(g.cfg.TickRate)

	effects, deaths := g.world.Step(dt)

	for _, ev := range effects {
		if c := g.client(ev.PlayerID); c != nil {
			c.SendJSON(ev.Msg)
		}
	}
	for _, d := range deaths {
		g.handleDeath(d)
	}

	g.broadcastState()

	if elapsed := time.Since(start); elapsed > g.cfg.TickDuration() {
		log.Printf("tick %d overran budget: %v > %v", g.world.Tick(), elapsed, g.cfg.TickDuration())
	}
}

// handleDeath notifies the victim, records telemetry and schedules the
// respawn. The victim is already out of the world.
func (g *Game) handleDeath(d DeathEvent) {
	killerName := d.KillerName
	if killerName == "" {
		killerName = "Guest"
	}
	if c := g.client(d.VictimID); c != nil {
		c.SendJSON(DeadMsg{Type: MsgDead, Killer: d.KillerID, KillerName: killerName})
	}

	g.analytics.Track(EvtPlayerKill, d.KillerID, killerName, "")
	g.analytics.Track(EvtPlayerDeath, d.VictimID, d.VictimName, "")

	g.scheduleRespawn(d.VictimID, d.VictimName)
}

// scheduleRespawn re-adds the player after the respawn delay, as long as
// its connection is still attached by then.
func (g *Game) scheduleRespawn(id, name string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.state != loopRunning {
		return
	}
	g.respawns[id] = time.AfterFunc(g.cfg.RespawnDelay, func() {
		g.mu.Lock()
		delete(g.respawns, id)
		_, attached := g.clients[id]
		g.mu.Unlock()
		if attached {
			g.world.RespawnPlayer(id, name)
		}
	})
}

// broadcastState serializes the snapshot once per codec and pushes it to
// every client. Sends never block: a slow client drops frames instead of
// stalling the tick, and a broken one is unregistered by its own pumps.
func (g *Game) broadcastState() {
	snap := g.world.Snapshot()

	jsonData, err := json.Marshal(snap)
	if err != nil {
		log.Printf("snapshot marshal: %v", err)
		return
	}
	var binData []byte

	g.mu.RLock()
	defer g.mu.RUnlock()
	for _, c := range g.clients {
		if c.WantsBinary() {
			if binData == nil {
				b, err := msgpack.Marshal(snap)
				if err != nil {
					log.Printf("snapshot msgpack marshal: %v", err)
				} else {
					binData = b
				}
			}
			if binData != nil {
				c.SendBinary(binData)
				continue
			}
		}
		c.SendRaw(jsonData)
	}
}
