package main

import (
	"log"
	"sync"
	"time"
)

// Event types for gameplay telemetry
const (
	EvtPlayerKill   = "player_kill"
	EvtPlayerDeath  = "player_death"
	EvtSessionStart = "session_start"
	EvtSessionEnd   = "session_end"
)

const (
	analyticsBufSize    = 1024
	analyticsBatchSize  = 64
	analyticsFlushEvery = 2 * time.Second
)

// AnalyticsEvent represents a single trackable event
type AnalyticsEvent struct {
	Type       string
	PlayerID   string
	PlayerName string
	Data       string // JSON metadata (optional)
	Timestamp  time.Time
}

// Analytics handles event tracking with batched background writes. A nil
// *Analytics is valid and drops everything, so telemetry can stay off.
type Analytics struct {
	db     *DB
	events chan AnalyticsEvent
	stop   chan struct{}
	wg     sync.WaitGroup
}

// NewAnalytics creates and starts the analytics background writer.
// Returns nil when there is no store to write to.
func NewAnalytics(db *DB) *Analytics {
	if db == nil {
		return nil
	}
	a := &Analytics{
		db:     db,
		events: make(chan AnalyticsEvent, analyticsBufSize),
		stop:   make(chan struct{}),
	}
	a.wg.Add(1)
	go a.writer()
	return a
}

// Track enqueues an event for async persistence (non-blocking)
func (a *Analytics) Track(evtType, playerID, playerName, data string) {
	if a == nil {
		return
	}
	select {
	case a.events <- AnalyticsEvent{
		Type:       evtType,
		PlayerID:   playerID,
		PlayerName: playerName,
		Data:       data,
		Timestamp:  time.Now(),
	}:
	default:
		// Buffer full, drop the event rather than stall gameplay
	}
}

// TopEaters proxies the leaderboard query; empty when telemetry is off
func (a *Analytics) TopEaters(limit int) ([]LeaderboardRow, error) {
	if a == nil {
		return []LeaderboardRow{}, nil
	}
	return a.db.TopEaters(limit)
}

// writer drains the event channel and flushes batches
func (a *Analytics) writer() {
	defer a.wg.Done()

	ticker := time.NewTicker(analyticsFlushEvery)
	defer ticker.Stop()

	batch := make([]AnalyticsEvent, 0, analyticsBatchSize)
	flush := func() {
		if len(batch) == 0 {
			return
		}
		if err := a.db.InsertEvents(batch); err != nil {
			log.Printf("analytics flush: %v", err)
		}
		batch = batch[:0]
	}

	for {
		select {
		case ev := <-a.events:
			batch = append(batch, ev)
			if len(batch) >= analyticsBatchSize {
				flush()
			}
		case <-ticker.C:
			flush()
		case <-a.stop:
			// Drain whatever is still queued, then flush once
			for {
				select {
				case ev := <-a.events:
					batch = append(batch, ev)
				default:
					flush()
					return
				}
			}
		}
	}
}

// Close flushes pending events and stops the writer
func (a *Analytics) Close() {
	if a == nil {
		return
	}
	close(a.stop)
	a.wg.Wait()
}
