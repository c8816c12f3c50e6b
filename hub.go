package main

import "sync"

const (
	maxConnsPerIP = 5
	maxTotalConns = 1000
)

// Hub tracks all live connections and owns the single shared game. One
// connection maps to one player for its whole lifetime.
type Hub struct {
	game      *Game
	analytics *Analytics

	mu         sync.RWMutex
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client

	// Connection limiting (mutex-protected, accessed from HTTP handlers)
	connMu     sync.Mutex
	ipConns    map[string]int
	totalConns int
}

// NewHub creates a hub around a game
func NewHub(game *Game, analytics *Analytics) *Hub {
	return &Hub{
		game:       game,
		analytics:  analytics,
		clients:    make(map[*Client]bool),
		register:   make(chan *Client, 64),
		unregister: make(chan *Client, 64),
		ipConns:    make(map[string]int),
	}
}

// CanAccept reports whether a new connection from ip fits the limits
func (h *Hub) CanAccept(ip string) bool {
	h.connMu.Lock()
	defer h.connMu.Unlock()
	if h.totalConns >= maxTotalConns {
		return false
	}
	if h.ipConns[ip] >= maxConnsPerIP {
		return false
	}
	return true
}

// TrackConnect counts a new connection against its IP
func (h *Hub) TrackConnect(ip string) {
	h.connMu.Lock()
	defer h.connMu.Unlock()
	h.ipConns[ip]++
	h.totalConns++
}

// TrackDisconnect releases a connection slot
func (h *Hub) TrackDisconnect(ip string) {
	h.connMu.Lock()
	defer h.connMu.Unlock()
	h.ipConns[ip]--
	if h.ipConns[ip] <= 0 {
		delete(h.ipConns, ip)
	}
	h.totalConns--
}

// Accept spawns the player for a fresh connection and queues the init
// message. Called from the HTTP handler before the pumps start, so the
// client's player id is set before any inbound message is read.
func (h *Hub) Accept(client *Client) {
	client.playerID = h.game.Join()
	client.SendJSON(InitMsg{
		Type: MsgInit,
		ID:   client.playerID,
		Map:  MapInfo{W: h.game.cfg.MapWidth, H: h.game.cfg.MapHeight},
	})
	h.game.Attach(client.playerID, client)
	h.register <- client
	h.analytics.Track(EvtSessionStart, client.playerID, "", "")
}

// Run processes register/unregister events
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			h.mu.Unlock()
			h.game.Leave(client.playerID)
			h.analytics.Track(EvtSessionEnd, client.playerID, "", "")
		}
	}
}

// ClientCount returns the number of connected clients
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// TotalConns returns the tracked connection count
func (h *Hub) TotalConns() int {
	h.connMu.Lock()
	defer h.connMu.Unlock()
	return h.totalConns
}
