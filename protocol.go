package main

// Client -> Server message types
const (
	MsgMove    = "move"
	MsgSetName = "set_name"
	MsgCodec   = "codec"
)

// Server -> Client message types
const (
	MsgInit   = "init"
	MsgState  = "state"
	MsgDead   = "dead"
	MsgEffect = "effect"
)

// Snapshot codecs a client can request
const (
	CodecJSON    = "json"
	CodecMsgpack = "msgpack"
)

// InboundMsg covers all client messages. Pointer fields let the handler
// tell a missing field from a zero value; anything malformed is dropped.
type InboundMsg struct {
	Type  string   `json:"type"`
	X     *float64 `json:"x,omitempty"`
	Y     *float64 `json:"y,omitempty"`
	Name  *string  `json:"name,omitempty"`
	Codec string   `json:"codec,omitempty"`
}

// MapInfo describes the world bounds
type MapInfo struct {
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// InitMsg is sent once when a connection is accepted
type InitMsg struct {
	Type string  `json:"type"`
	ID   string  `json:"id"`
	Map  MapInfo `json:"map"`
}

// PlayerState is broadcast per connected player each tick
type PlayerState struct {
	ID    string  `json:"id" msgpack:"id"`
	Name  string  `json:"name" msgpack:"name"`
	X     float64 `json:"x" msgpack:"x"`
	Y     float64 `json:"y" msgpack:"y"`
	R     float64 `json:"r" msgpack:"r"`
	Color string  `json:"color" msgpack:"color"`
	Score float64 `json:"score" msgpack:"score"`
}

// FoodState is broadcast per pellet each tick
type FoodState struct {
	ID    int     `json:"id" msgpack:"id"`
	X     float64 `json:"x" msgpack:"x"`
	Y     float64 `json:"y" msgpack:"y"`
	R     float64 `json:"r" msgpack:"r"`
	Kind  string  `json:"type" msgpack:"type"`
	Color string  `json:"color" msgpack:"color"`
}

// StateMsg is the full snapshot broadcast once per tick
type StateMsg struct {
	Type    string        `json:"type" msgpack:"type"`
	Tick    uint64        `json:"tick" msgpack:"tick"`
	Players []PlayerState `json:"players" msgpack:"players"`
	Foods   []FoodState   `json:"foods" msgpack:"foods"`
}

// DeadMsg notifies a player they were eaten
type DeadMsg struct {
	Type       string `json:"type"`
	Killer     string `json:"killer"`
	KillerName string `json:"killerName"`
}

// EffectMsg notifies a player of a power-up pickup
type EffectMsg struct {
	Type     string  `json:"type"`
	Effect   string  `json:"effect"`
	Stacks   float64 `json:"stacks,omitempty"`
	Duration float64 `json:"duration,omitempty"`
	Range    float64 `json:"range,omitempty"`
}
