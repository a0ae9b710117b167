// Package store provides the in-memory domain stores backing the
// planner views.
//
// Each store owns a mirror of one collection (habits own two), kept
// behind a mutex and written through to storage: the mirror changes
// only after the durable write succeeds, so a failed write leaves the
// previous state intact. Selectors are pure reads over the mirror.
// Change notification is delivered over channels handed out by Watch.
package store

import "sync"

// EventKind identifies the kind of store change.
type EventKind string

const (
	EventLoaded  EventKind = "loaded"
	EventAdded   EventKind = "added"
	EventUpdated EventKind = "updated"
	EventDeleted EventKind = "deleted"
)

// Collection names used in change events and the backup document.
const (
	CollectionTasks    = "tasks"
	CollectionHabits   = "habits"
	CollectionLogs     = "habitLogs"
	CollectionGoals    = "financialGoals"
	CollectionNotes    = "notes"
	CollectionMeetings = "meetings"
	CollectionSettings = "settings"
)

// Event describes a change applied to a store's mirror.
type Event struct {
	Kind       EventKind
	Collection string
	ID         string
}

// watchBuffer is the per-watcher channel capacity. A watcher that
// falls this far behind misses events rather than blocking mutations.
const watchBuffer = 16

// notifier fans change events out to registered watchers.
type notifier struct {
	mu       sync.Mutex
	watchers []chan Event
}

// Watch returns a channel receiving change events. Sends never block:
// a full channel drops the event for that watcher.
func (n *notifier) Watch() <-chan Event {
	n.mu.Lock()
	defer n.mu.Unlock()
	ch := make(chan Event, watchBuffer)
	n.watchers = append(n.watchers, ch)
	return ch
}

// notify delivers an event to every watcher without blocking.
func (n *notifier) notify(e Event) {
	n.mu.Lock()
	defer n.mu.Unlock()
	for _, ch := range n.watchers {
		select {
		case ch <- e:
		default:
		}
	}
}
