package pong

import (
	"fmt"
	"strings"
)

// Event is one recorded gameplay occurrence.
type Event struct {
	Frame    int
	Actor    string  // "ball", "Player One", "Player Two" or "--"
	Category string  // ball, score, paddle, canvas
	Key      string  // specific event within the category
	Value    string  // human-readable detail
	NumVal   float64 // optional numeric payload for threshold checks
}

// String formats the event as a fixed-width log line.
//
//	[F=00042] ball       ball     paddle_hit       Player Two cp=+0.31
func (e Event) String() string {
	return fmt.Sprintf("[F=%05d] %-10s %-8s %-16s %s", e.Frame, e.Actor, e.Category, e.Key, e.Value)
}

// EventLog is an unbounded, machine-readable record of a match. The headless
// harness and its reports read it; the interactive front ends leave it nil.
type EventLog struct {
	entries []Event
}

// NewEventLog creates an empty log.
func NewEventLog() *EventLog { return &EventLog{} }

// Add records a new event.
func (el *EventLog) Add(frame int, actor, category, key, value string, numVal float64) {
	el.entries = append(el.entries, Event{
		Frame:    frame,
		Actor:    actor,
		Category: category,
		Key:      key,
		Value:    value,
		NumVal:   numVal,
	})
}

// Entries returns every recorded event.
func (el *EventLog) Entries() []Event { return el.entries }

// Filter returns events matching category and key. An empty string matches
// anything.
func (el *EventLog) Filter(category, key string) []Event {
	var out []Event
	for _, e := range el.entries {
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		out = append(out, e)
	}
	return out
}

// FilterActor returns events attributed to actor.
func (el *EventLog) FilterActor(actor string) []Event {
	var out []Event
	for _, e := range el.entries {
		if e.Actor == actor {
			out = append(out, e)
		}
	}
	return out
}

// Count returns how many events match category and key.
func (el *EventLog) Count(category, key string) int {
	return len(el.Filter(category, key))
}

// LastOf returns the most recent event matching category and key.
func (el *EventLog) LastOf(category, key string) (Event, bool) {
	entries := el.Filter(category, key)
	if len(entries) == 0 {
		return Event{}, false
	}
	return entries[len(entries)-1], true
}

// Format renders events as log lines, one per line.
func Format(events []Event) string {
	var b strings.Builder
	for _, e := range events {
		b.WriteString(e.String())
		b.WriteByte('\n')
	}
	return b.String()
}

const feedCapacity = 12

// Feed is a fixed-size ring of the latest events, shown in the debug overlay.
type Feed struct {
	entries [feedCapacity]Event
	head    int
	count   int
}

// Add appends an event, overwriting the oldest once full.
func (f *Feed) Add(e Event) {
	f.entries[f.head] = e
	f.head = (f.head + 1) % feedCapacity
	if f.count < feedCapacity {
		f.count++
	}
}

// Recent returns the stored events oldest first.
func (f *Feed) Recent() []Event {
	out := make([]Event, f.count)
	for i := 0; i < f.count; i++ {
		idx := (f.head - f.count + i + feedCapacity) % feedCapacity
		out[i] = f.entries[idx]
	}
	return out
}
