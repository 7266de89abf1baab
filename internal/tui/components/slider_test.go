package components

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmcdole/squeeze/internal/domain"
	"github.com/mmcdole/squeeze/internal/tui/events"
)

func newTrackedSlider(t *testing.T) (*Slider, *events.Bus, *[]float64) {
	t.Helper()
	bus := events.NewBus()
	var inputs []float64
	s := NewSlider(bus, func(q float64) tea.Cmd {
		inputs = append(inputs, q)
		return nil
	})
	// 19 columns: one per 0.05 step from 0.1 to 1.0
	s.SetTrack(events.Rect{X: 10, Y: 5, Width: 19, Height: 1})
	return s, bus, &inputs
}

func TestSlider_PressWhileDisabledStaysIdle(t *testing.T) {
	s, bus, inputs := newTrackedSlider(t)

	assert.False(t, s.PressStart(true))
	assert.False(t, s.Dragging())

	assert.Nil(t, s.HandlePress(events.Pointer{Kind: events.Press, X: 12, Y: 5}, true))
	assert.False(t, s.Dragging())
	assert.Empty(t, *inputs)
	assert.Zero(t, bus.Len())
}

func TestSlider_PressThenReleaseAnywhere(t *testing.T) {
	s, bus, _ := newTrackedSlider(t)

	s.HandlePress(events.Pointer{Kind: events.Press, X: 12, Y: 5}, false)
	require.True(t, s.Dragging())
	assert.Equal(t, 2, bus.OwnerLen(s.ID()), "release and motion listeners")

	// Release far outside the track still ends the drag
	bus.Publish(events.Pointer{Kind: events.Release, X: 200, Y: 40})
	assert.False(t, s.Dragging())
	assert.Zero(t, bus.Len())
}

func TestSlider_PressOutsideTrackIgnored(t *testing.T) {
	s, _, inputs := newTrackedSlider(t)

	s.HandlePress(events.Pointer{Kind: events.Press, X: 12, Y: 6}, false)
	assert.False(t, s.Dragging())
	assert.Empty(t, *inputs)
}

func TestSlider_MotionDeliversValuesWhileDragging(t *testing.T) {
	s, bus, inputs := newTrackedSlider(t)

	s.HandlePress(events.Pointer{Kind: events.Press, X: 10, Y: 5}, false)
	bus.Publish(events.Pointer{Kind: events.Motion, X: 17, Y: 9})  // off the row
	bus.Publish(events.Pointer{Kind: events.Motion, X: 100, Y: 5}) // past the end
	bus.Publish(events.Pointer{Kind: events.Release})
	bus.Publish(events.Pointer{Kind: events.Motion, X: 12, Y: 5}) // after release

	assert.Equal(t, []float64{0.1, 0.45, 1.0}, *inputs)
}

func TestSlider_DisabledMidDragCompletesNaturally(t *testing.T) {
	s, bus, _ := newTrackedSlider(t)

	require.True(t, s.PressStart(false))
	// A second press while dragging, now disabled, changes nothing
	assert.False(t, s.PressStart(true))
	assert.True(t, s.Dragging())

	bus.Publish(events.Pointer{Kind: events.Release})
	assert.False(t, s.Dragging())
}

func TestSlider_CloseReleasesListeners(t *testing.T) {
	s, bus, _ := newTrackedSlider(t)

	for i := 0; i < 5; i++ {
		require.True(t, s.PressStart(false))
		s.Close()
		assert.False(t, s.Dragging())
		assert.Zero(t, bus.Len(), "cycle %d leaked listeners", i)
	}
}

func TestSlider_InstancesAreScoped(t *testing.T) {
	bus := events.NewBus()
	a := NewSlider(bus, nil)
	b := NewSlider(bus, nil)

	require.True(t, a.PressStart(false))
	require.True(t, b.PressStart(false))

	a.Close()
	assert.False(t, a.Dragging())
	assert.True(t, b.Dragging())
	assert.Equal(t, 2, bus.OwnerLen(b.ID()))

	bus.Publish(events.Pointer{Kind: events.Release})
	assert.False(t, b.Dragging())
	assert.Zero(t, bus.Len())
}

func TestSlider_ValueAtEndpoints(t *testing.T) {
	s, _, _ := newTrackedSlider(t)

	assert.Equal(t, domain.MinQuality, s.ValueAt(10))
	assert.Equal(t, domain.MaxQuality, s.ValueAt(28))
	assert.Equal(t, domain.MinQuality, s.ValueAt(0))
	assert.Equal(t, 0.55, s.ValueAt(19))
}

func TestThumbColumn(t *testing.T) {
	assert.Equal(t, 0, ThumbColumn(0.1, 19))
	assert.Equal(t, 18, ThumbColumn(1.0, 19))
	assert.Equal(t, 7, ThumbColumn(0.45, 19))
	assert.Equal(t, 0, ThumbColumn(0.5, 1))
}

func TestSlider_ViewReflectsDragState(t *testing.T) {
	s, _, _ := newTrackedSlider(t)

	idle := s.View(0.8, false, 19)
	assert.Contains(t, idle, "●")
	assert.NotContains(t, idle, "▔")

	s.PressStart(false)
	dragging := s.View(0.8, false, 19)
	assert.Contains(t, dragging, "◉")
	assert.Contains(t, dragging, "▔")
}

func TestTierGradient(t *testing.T) {
	assert.Equal(t, TierGradient(domain.TierOf(0.8)), TierGradient(domain.TierHigh))
	assert.NotEqual(t, TierGradient(domain.TierHigh), TierGradient(domain.TierLow))
	assert.NotEqual(t, TierGradient(domain.TierMedium), TierGradient(domain.TierLow))
}
