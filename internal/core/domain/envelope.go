package domain

import "encoding/json"

// Envelope is the wrapper every response of the rental API uses.
type Envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
	Message string          `json:"message,omitempty"`
}

// Reason returns the failure text, preferring error over message.
func (e *Envelope) Reason(fallback string) string {
	if e.Error != "" {
		return e.Error
	}
	if e.Message != "" {
		return e.Message
	}
	return fallback
}

func (e *Envelope) HasData() bool {
	return len(e.Data) > 0 && string(e.Data) != "null"
}
