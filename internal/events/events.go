package events

import (
	"encoding/json"
	"time"
)

const (
	TypeRunStarted  = "run_started"
	TypeRunFinished = "run_finished"
	TypeNewPostings = "new_postings"
)

// Event is one pipeline lifecycle notification as seen by SSE subscribers.
type Event struct {
	Type string          `json:"type"`
	At   time.Time       `json:"at"`
	Data json.RawMessage `json:"data,omitempty"`
}

// Encode renders the wire payload for an SSE data line.
func (e Event) Encode() string {
	b, _ := json.Marshal(e)
	return string(b)
}
