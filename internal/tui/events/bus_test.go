package events

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestBus_DispatchesByKindInOrder(t *testing.T) {
	bus := NewBus()
	owner := uuid.New()

	var got []string
	bus.Subscribe(owner, Press, func(Pointer) tea.Cmd { got = append(got, "press-1"); return nil })
	bus.Subscribe(owner, Release, func(Pointer) tea.Cmd { got = append(got, "release"); return nil })
	bus.Subscribe(owner, Press, func(Pointer) tea.Cmd { got = append(got, "press-2"); return nil })

	bus.Publish(Pointer{Kind: Press})
	assert.Equal(t, []string{"press-1", "press-2"}, got)
}

func TestBus_SequenceIncreases(t *testing.T) {
	bus := NewBus()
	a, _ := bus.Publish(Pointer{Kind: Press})
	b, _ := bus.Publish(Pointer{Kind: Release})
	assert.Less(t, a.Seq, b.Seq)
}

func TestSubscription_CancelIsIdempotent(t *testing.T) {
	bus := NewBus()
	calls := 0
	sub := bus.Subscribe(uuid.New(), Press, func(Pointer) tea.Cmd { calls++; return nil })

	sub.Cancel()
	sub.Cancel()
	var nilSub *Subscription
	nilSub.Cancel()

	bus.Publish(Pointer{Kind: Press})
	assert.Zero(t, calls)
	assert.Zero(t, bus.Len())
	assert.False(t, sub.Active())
}

func TestBus_SubscribeDuringDispatchSkipsCurrentEvent(t *testing.T) {
	bus := NewBus()
	owner := uuid.New()
	late := 0

	bus.Subscribe(owner, Press, func(Pointer) tea.Cmd {
		bus.Subscribe(owner, Press, func(Pointer) tea.Cmd { late++; return nil })
		return nil
	})

	bus.Publish(Pointer{Kind: Press})
	assert.Zero(t, late)
	assert.Equal(t, 2, bus.Len())
}

func TestBus_CancelDuringDispatchSkipsLaterHandler(t *testing.T) {
	bus := NewBus()
	owner := uuid.New()
	second := 0

	var victim *Subscription
	bus.Subscribe(owner, Press, func(Pointer) tea.Cmd { victim.Cancel(); return nil })
	victim = bus.Subscribe(owner, Press, func(Pointer) tea.Cmd { second++; return nil })

	bus.Publish(Pointer{Kind: Press})
	assert.Zero(t, second)
	assert.Equal(t, 1, bus.Len())
}

func TestBus_CancelOwnerIsScoped(t *testing.T) {
	bus := NewBus()
	a, b := uuid.New(), uuid.New()
	noop := func(Pointer) tea.Cmd { return nil }

	subA := bus.Subscribe(a, Release, noop)
	bus.Subscribe(a, Motion, noop)
	subB := bus.Subscribe(b, Release, noop)

	bus.CancelOwner(a)

	assert.False(t, subA.Active())
	assert.True(t, subB.Active())
	assert.Equal(t, 0, bus.OwnerLen(a))
	assert.Equal(t, 1, bus.OwnerLen(b))
}

func TestFromMouse(t *testing.T) {
	ev, ok := FromMouse(tea.MouseMsg{X: 3, Y: 4, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.True(t, ok)
	assert.Equal(t, Pointer{Kind: Press, X: 3, Y: 4}, ev)

	ev, ok = FromMouse(tea.MouseMsg{Action: tea.MouseActionRelease, Button: tea.MouseButtonNone})
	assert.True(t, ok)
	assert.Equal(t, Release, ev.Kind)

	_, ok = FromMouse(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp})
	assert.False(t, ok)
}

func TestRect(t *testing.T) {
	r := Rect{X: 2, Y: 1, Width: 3, Height: 2}
	assert.True(t, r.Contains(2, 1))
	assert.True(t, r.Contains(4, 2))
	assert.False(t, r.Contains(5, 1))
	assert.False(t, r.Contains(2, 3))
	assert.False(t, Rect{}.Contains(0, 0))

	u := r.Union(Rect{X: 0, Y: 5, Width: 1, Height: 1})
	assert.Equal(t, Rect{X: 0, Y: 1, Width: 5, Height: 5}, u)
	assert.Equal(t, r, r.Union(Rect{}))
}
