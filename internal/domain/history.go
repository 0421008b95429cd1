package domain

import "time"

// HistoryEntry captures one dispatched command and its outcome, success or
// not. Command is the user's original text as received.
type HistoryEntry struct {
	Command string       `json:"command"`
	Result  ActionResult `json:"result"`
	At      time.Time    `json:"at"`
}

// History is an append-only, in-memory execution log owned by exactly one
// session. Entries live in arrival order and never survive the process.
// History does no locking; hosting layers that multiplex callers must
// serialize access themselves.
type History struct {
	entries []HistoryEntry
}

// NewHistory returns an empty log.
func NewHistory() *History {
	return &History{}
}

// Record appends an entry stamped with the current time.
func (h *History) Record(command string, result ActionResult) {
	h.RecordAt(command, result, time.Now())
}

// RecordAt appends an entry with an explicit timestamp.
func (h *History) RecordAt(command string, result ActionResult, at time.Time) {
	h.entries = append(h.entries, HistoryEntry{Command: command, Result: result, At: at})
}

// Recent returns up to n of the newest entries, oldest first. The slice is a
// copy; mutating it does not touch the log.
func (h *History) Recent(n int) []HistoryEntry {
	if n <= 0 || len(h.entries) == 0 {
		return nil
	}
	start := len(h.entries) - n
	if start < 0 {
		start = 0
	}
	out := make([]HistoryEntry, len(h.entries)-start)
	copy(out, h.entries[start:])
	return out
}

// Clear discards every entry.
func (h *History) Clear() {
	h.entries = nil
}

// Len reports how many entries have been recorded since the last clear.
func (h *History) Len() int {
	return len(h.entries)
}
