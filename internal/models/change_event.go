package models

import (
	"encoding/json"
	"fmt"
	"io"
)

// Change operations as delivered by the webhook source.
const (
	OpInsert = "INSERT"
	OpUpdate = "UPDATE"
	OpDelete = "DELETE"
)

// ChangeEvent represents a database change event delivered by the upstream
// webhook source.
type ChangeEvent struct {
	Type      string `json:"type"` // INSERT, UPDATE, DELETE
	Schema    string `json:"schema"`
	Table     string `json:"table"`
	Record    Record `json:"record"`
	OldRecord Record `json:"old_record,omitempty"` // For UPDATE events
}

// Record is the row state carried by a change event. Any field may be absent
// or null; accessors treat both as empty.
type Record map[string]interface{}

// DecodeChangeEvent decodes an inbound event payload. Numbers are kept as
// json.Number so integer ids render without float formatting.
func DecodeChangeEvent(r io.Reader) (*ChangeEvent, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var ev ChangeEvent
	if err := dec.Decode(&ev); err != nil {
		return nil, fmt.Errorf("failed to decode change event: %w", err)
	}
	return &ev, nil
}

// Field returns the named field rendered as text, or "" when the field is
// absent or null.
func (r Record) Field(name string) string {
	v, ok := r[name]
	if !ok || v == nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return t
	case json.Number:
		return t.String()
	case bool:
		if t {
			return "true"
		}
		return "false"
	default:
		return fmt.Sprintf("%v", t)
	}
}

// Bool reports whether the named field is the JSON literal true. Anything
// else (false, null, missing, non-boolean) counts as false.
func (r Record) Bool(name string) bool {
	b, ok := r[name].(bool)
	return ok && b
}
