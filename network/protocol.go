package network

import (
	"encoding/json"
	"fmt"
)

// MessageType identifies the semantic meaning of a message
type MessageType string

const (
	// Server to client
	MsgSnapshot MessageType = "snapshot" // Full layout of the latest pass
	MsgError    MessageType = "error"    // Request rejected

	// Client to server
	MsgRegenerate MessageType = "regenerate" // Run a new pass
)

// Envelope wraps every message on the wire
type Envelope struct {
	Type    MessageType     `json:"type"`
	Seq     uint64          `json:"seq"` // Pass counter for snapshots, 0 otherwise
	Payload json.RawMessage `json:"payload,omitempty"`
}

// RegenerateRequest adjusts the next pass; nil fields keep the current value
type RegenerateRequest struct {
	Seed   *int64 `json:"seed,omitempty"`
	Random bool   `json:"random,omitempty"` // Draw a fresh seed
	Rooms  *bool  `json:"rooms,omitempty"`
	Width  *int   `json:"width,omitempty"`
	Height *int   `json:"height,omitempty"`
}

// ErrorPayload explains a rejected request
type ErrorPayload struct {
	Message string `json:"message"`
}

// Encode marshals payload into an envelope
func Encode(t MessageType, seq uint64, payload any) ([]byte, error) {
	env := Envelope{Type: t, Seq: seq}
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encode %s payload: %w", t, err)
		}
		env.Payload = raw
	}
	return json.Marshal(env)
}

// DecodePayload unmarshals the envelope payload into v
func (e Envelope) DecodePayload(v any) error {
	if len(e.Payload) == 0 {
		return nil
	}
	if err := json.Unmarshal(e.Payload, v); err != nil {
		return fmt.Errorf("decode %s payload: %w", e.Type, err)
	}
	return nil
}
