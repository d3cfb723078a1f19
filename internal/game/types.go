package game

import "fun-numbers/internal/session"

// OpeningResponse is the JSON response for begin, again and end.
type OpeningResponse struct {
	Text  string         `json:"text"`
	State session.Fields `json:"state"`
}

// TurnRequest is the JSON body for POST /game/turn. State uses the same
// string encoding as the platform's context store.
type TurnRequest struct {
	State session.Fields `json:"state"`
}

// TurnResponse is the JSON response for POST /game/turn.
type TurnResponse struct {
	Text        string         `json:"text"`
	State       session.Fields `json:"state"`
	Instruction *Instruction   `json:"instruction,omitempty"`
	GameOver    bool           `json:"game_over"`
}

// ReplayRequest is the JSON body for POST /game/replay.
type ReplayRequest struct {
	Track  Track    `json:"track"`
	Seed   uint64   `json:"seed"`
	Secret *float64 `json:"secret,omitempty"`
}
