package main

import "testing"

func newTestClient(t *testing.T) (*Client, *Game) {
	t.Helper()
	g := NewGame(testConfig(), nil)
	h := NewHub(g, nil)
	c := &Client{hub: h, send: make(chan []byte, 8)}
	c.playerID = g.Join()
	return c, g
}

func target(t *testing.T, g *Game, id string) (float64, float64) {
	t.Helper()
	w := g.World()
	w.mu.Lock()
	defer w.mu.Unlock()
	p, ok := w.players[id]
	if !ok {
		t.Fatalf("player %s missing", id)
	}
	return p.TargetX, p.TargetY
}

func TestHandleMessageMove(t *testing.T) {
	c, g := newTestClient(t)

	c.handleMessage([]byte(`{"type":"move","x":50,"y":60}`))
	tx, ty := target(t, g, c.playerID)
	if tx != 50 || ty != 60 {
		t.Errorf("expected target (50, 60), got (%f, %f)", tx, ty)
	}

	// malformed variants must all be silent no-ops
	for _, raw := range []string{
		`not json at all`,
		`{"type":"move","y":60}`,
		`{"type":"move","x":"abc","y":60}`,
		`{"type":"unknown","x":1}`,
	} {
		c.handleMessage([]byte(raw))
	}
	tx, ty = target(t, g, c.playerID)
	if tx != 50 || ty != 60 {
		t.Errorf("malformed input moved the target to (%f, %f)", tx, ty)
	}
}

func TestHandleMessageSetName(t *testing.T) {
	c, g := newTestClient(t)

	c.handleMessage([]byte(`{"type":"set_name","name":"<Bob!>"}`))
	if got := g.World().PlayerName(c.playerID); got != "Bob" {
		t.Errorf("expected sanitized name Bob, got %q", got)
	}

	c.handleMessage([]byte(`{"type":"set_name"}`))
	if got := g.World().PlayerName(c.playerID); got != "Bob" {
		t.Errorf("missing name field must be a no-op, got %q", got)
	}
}

func TestHandleMessageCodec(t *testing.T) {
	c, _ := newTestClient(t)
	if c.WantsBinary() {
		t.Fatal("json must be the default codec")
	}
	c.handleMessage([]byte(`{"type":"codec","codec":"msgpack"}`))
	if !c.WantsBinary() {
		t.Error("msgpack codec request ignored")
	}
	c.handleMessage([]byte(`{"type":"codec","codec":"sideways"}`))
	if !c.WantsBinary() {
		t.Error("unknown codec must not change the selection")
	}
	c.handleMessage([]byte(`{"type":"codec","codec":"json"}`))
	if c.WantsBinary() {
		t.Error("switch back to json failed")
	}
}
