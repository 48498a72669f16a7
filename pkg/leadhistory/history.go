// Package leadhistory is the single serialization boundary for the
// append-only audit trail embedded in each lead. Every read of the
// historial column goes through Parse, every write through Encode, so
// the recover-from-corrupt-data policy lives in exactly one place.
package leadhistory

import (
	"encoding/json"
	"fmt"
	"log"
	"time"
)

// Entry is one immutable audit event in a lead's history.
type Entry struct {
	Estado    string `json:"estado"`
	Timestamp string `json:"timestamp"`
	Usuario   string `json:"usuario"`
}

// NewEntry creates an entry stamped with the current time.
func NewEntry(estado, usuario string) Entry {
	return Entry{
		Estado:    estado,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Usuario:   usuario,
	}
}

// AssignedEntry is the system entry appended when round-robin picks an agent.
func AssignedEntry(agentName string) Entry {
	return NewEntry(fmt.Sprintf("Asignado automáticamente a %s (Round Robin)", agentName), "Sistema")
}

// ReassignedEntry is the entry appended when a lead changes hands.
// Pass "Sin asignar" as the name when the lead is being unassigned.
func ReassignedEntry(agentName, usuario string) Entry {
	return NewEntry(fmt.Sprintf("Reasignado a %s", agentName), usuario)
}

// Parse decodes a stored history log. A corrupt or non-JSON value is not
// fatal: it yields an empty log and a warning, never an error, so one bad
// row cannot take down a list endpoint.
func Parse(leadID int, raw string) []Entry {
	if raw == "" {
		return []Entry{}
	}

	var entries []Entry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		log.Printf("⚠️  Invalid historial JSON for lead %d, substituting empty log: %v", leadID, err)
		return []Entry{}
	}

	if entries == nil {
		return []Entry{}
	}
	return entries
}

// Encode serializes a history log for storage. The log is rewritten
// wholesale on each update because it is embedded in the lead row.
func Encode(entries []Entry) string {
	if entries == nil {
		entries = []Entry{}
	}

	data, err := json.Marshal(entries)
	if err != nil {
		// Entry contains only strings; Marshal cannot fail in practice.
		return "[]"
	}
	return string(data)
}
