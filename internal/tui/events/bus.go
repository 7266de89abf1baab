// Package events routes terminal pointer input to process-wide listeners.
//
// Bubble Tea delivers every mouse message to the root model, which makes the
// terminal the "document": a component that must observe presses or releases
// outside its own bounds subscribes here for as long as it needs to, and
// cancels the subscription on state exit and on teardown.
package events

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

// Kind classifies a pointer event
type Kind int

const (
	Press Kind = iota
	Release
	Motion
)

func (k Kind) String() string {
	switch k {
	case Press:
		return "press"
	case Release:
		return "release"
	case Motion:
		return "motion"
	default:
		return "unknown"
	}
}

// Pointer is one physical pointer event. Seq is unique per event and lets
// several handlers agree on whether the same press was already acted on.
type Pointer struct {
	Seq  uint64
	Kind Kind
	X, Y int
}

// FromMouse converts a Bubble Tea mouse message. Wheel events are not pointer events.
func FromMouse(msg tea.MouseMsg) (Pointer, bool) {
	if msg.Button >= tea.MouseButtonWheelUp && msg.Button <= tea.MouseButtonWheelRight {
		return Pointer{}, false
	}
	switch msg.Action {
	case tea.MouseActionPress:
		return Pointer{Kind: Press, X: msg.X, Y: msg.Y}, true
	case tea.MouseActionRelease:
		return Pointer{Kind: Release, X: msg.X, Y: msg.Y}, true
	case tea.MouseActionMotion:
		return Pointer{Kind: Motion, X: msg.X, Y: msg.Y}, true
	}
	return Pointer{}, false
}

// Handler reacts to a pointer event and may return a command for the program
type Handler func(Pointer) tea.Cmd

type entry struct {
	owner   uuid.UUID
	kind    Kind
	handler Handler
	active  bool
}

// Subscription is a live registration on a Bus
type Subscription struct {
	bus   *Bus
	entry *entry
}

// Cancel detaches the handler. Safe to call more than once and on nil.
func (s *Subscription) Cancel() {
	if s == nil || s.entry == nil || !s.entry.active {
		return
	}
	s.entry.active = false
	s.bus.remove(s.entry)
}

// Active reports whether the handler is still attached
func (s *Subscription) Active() bool {
	return s != nil && s.entry != nil && s.entry.active
}

// Bus fans pointer events out to subscribers in registration order.
// It is owned by the Bubble Tea update loop and is not safe for concurrent use.
type Bus struct {
	seq     uint64
	entries []*entry
}

// NewBus creates an empty bus
func NewBus() *Bus {
	return &Bus{}
}

// Subscribe registers handler for events of kind on behalf of owner
func (b *Bus) Subscribe(owner uuid.UUID, kind Kind, handler Handler) *Subscription {
	e := &entry{owner: owner, kind: kind, handler: handler, active: true}
	b.entries = append(b.entries, e)
	return &Subscription{bus: b, entry: e}
}

// CancelOwner detaches every handler registered by owner
func (b *Bus) CancelOwner(owner uuid.UUID) {
	kept := b.entries[:0]
	for _, e := range b.entries {
		if e.owner == owner {
			e.active = false
			continue
		}
		kept = append(kept, e)
	}
	clearTail(b.entries, len(kept))
	b.entries = kept
}

// Publish stamps ev with the next sequence number and dispatches it.
// Handlers subscribed while dispatching do not see the event being dispatched,
// and handlers cancelled while dispatching are skipped.
func (b *Bus) Publish(ev Pointer) (Pointer, tea.Cmd) {
	b.seq++
	ev.Seq = b.seq

	snapshot := make([]*entry, len(b.entries))
	copy(snapshot, b.entries)

	var cmds []tea.Cmd
	for _, e := range snapshot {
		if !e.active || e.kind != ev.Kind {
			continue
		}
		if cmd := e.handler(ev); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return ev, tea.Batch(cmds...)
}

// Len returns the number of attached handlers
func (b *Bus) Len() int {
	return len(b.entries)
}

// OwnerLen returns the number of attached handlers belonging to owner
func (b *Bus) OwnerLen(owner uuid.UUID) int {
	n := 0
	for _, e := range b.entries {
		if e.owner == owner {
			n++
		}
	}
	return n
}

func (b *Bus) remove(target *entry) {
	for i, e := range b.entries {
		if e == target {
			copy(b.entries[i:], b.entries[i+1:])
			b.entries[len(b.entries)-1] = nil
			b.entries = b.entries[:len(b.entries)-1]
			return
		}
	}
}

func clearTail(entries []*entry, from int) {
	for i := from; i < len(entries); i++ {
		entries[i] = nil
	}
}
