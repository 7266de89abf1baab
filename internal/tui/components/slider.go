package components

import (
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/mmcdole/squeeze/internal/domain"
	"github.com/mmcdole/squeeze/internal/tui/events"
	"github.com/mmcdole/squeeze/internal/tui/styles"
)

// Slider tracks the drag state of the quality track.
//
// It does not own the quality value: positions under the pointer are handed
// to onInput, and the caller passes the current value back in at render time.
type Slider struct {
	id       uuid.UUID
	bus      *events.Bus
	track    events.Rect
	dragging bool

	// Process-wide listeners, held only while dragging
	release *events.Subscription
	motion  *events.Subscription

	onInput func(q float64) tea.Cmd
}

// NewSlider creates an idle slider. onInput receives the quality under the pointer.
func NewSlider(bus *events.Bus, onInput func(q float64) tea.Cmd) *Slider {
	return &Slider{
		id:      uuid.New(),
		bus:     bus,
		onInput: onInput,
	}
}

// ID identifies this instance's subscriptions on the bus
func (s *Slider) ID() uuid.UUID {
	return s.id
}

// SetTrack records where the track was laid out
func (s *Slider) SetTrack(r events.Rect) {
	s.track = r
}

// Track returns the track bounds
func (s *Slider) Track() events.Rect {
	return s.track
}

// Dragging reports whether a press is in progress
func (s *Slider) Dragging() bool {
	return s.dragging
}

// PressStart moves Idle to Dragging unless disabled.
// Returns true when the transition happened.
func (s *Slider) PressStart(disabled bool) bool {
	if disabled || s.dragging {
		return false
	}
	s.dragging = true
	s.release = s.bus.Subscribe(s.id, events.Release, s.handleRelease)
	s.motion = s.bus.Subscribe(s.id, events.Motion, s.handleMotion)
	return true
}

// HandlePress starts a drag when the press lands on the track and reports
// the value under the pointer.
func (s *Slider) HandlePress(ev events.Pointer, disabled bool) tea.Cmd {
	if !s.track.Contains(ev.X, ev.Y) {
		return nil
	}
	if !s.PressStart(disabled) {
		return nil
	}
	return s.input(ev.X)
}

// Close releases any listener still held. The slider can be reused afterwards.
func (s *Slider) Close() {
	s.end()
	s.bus.CancelOwner(s.id)
}

func (s *Slider) handleRelease(events.Pointer) tea.Cmd {
	s.end()
	return nil
}

func (s *Slider) handleMotion(ev events.Pointer) tea.Cmd {
	return s.input(ev.X)
}

func (s *Slider) end() {
	s.dragging = false
	s.release.Cancel()
	s.motion.Cancel()
	s.release, s.motion = nil, nil
}

func (s *Slider) input(x int) tea.Cmd {
	if s.onInput == nil || s.track.Empty() {
		return nil
	}
	return s.onInput(s.ValueAt(x))
}

// ValueAt maps a column to a quality, clamping columns beyond either end
func (s *Slider) ValueAt(x int) float64 {
	if s.track.Width <= 1 {
		return domain.MaxQuality
	}
	p := float64(x-s.track.X) / float64(s.track.Width-1) * 100
	return domain.QualityFromPercent(p)
}

// ThumbColumn returns the thumb offset within a track of the given width
func ThumbColumn(q float64, width int) int {
	if width <= 1 {
		return 0
	}
	return int(math.Round(domain.PercentPosition(q) / 100 * float64(width-1)))
}

// TierGradient returns the color treatment for a quality tier
func TierGradient(t domain.QualityTier) styles.Gradient {
	switch t {
	case domain.TierHigh:
		return styles.HighGradient
	case domain.TierMedium:
		return styles.MediumGradient
	default:
		return styles.LowGradient
	}
}

// View renders the track and its shadow row. Everything is derived from
// q and the drag state at call time.
func (s *Slider) View(q float64, disabled bool, width int) string {
	if width < 2 {
		return ""
	}

	gradient := TierGradient(domain.TierOf(q))
	thumbAt := ThumbColumn(q, width)

	thumbGlyph := styles.ThumbChar
	if s.dragging {
		thumbGlyph = styles.ThumbDraggedChar
	}
	thumbStyle := lipgloss.NewStyle().Foreground(gradient.From).Bold(s.dragging)
	if disabled {
		gradient = styles.Gradient{From: styles.DimGray, To: styles.LightGray}
		thumbStyle = lipgloss.NewStyle().Foreground(styles.DimGray)
	}

	track := styles.RenderGradient(styles.TrackFilledChar, thumbAt, gradient, s.dragging) +
		thumbStyle.Render(thumbGlyph) +
		styles.TrackEmptyStyle.Render(strings.Repeat(styles.TrackEmptyChar, width-thumbAt-1))

	shadow := strings.Repeat(" ", width)
	if s.dragging {
		shadow = styles.TrackShadowStyle.Render(strings.Repeat(styles.TrackShadowChar, thumbAt+1)) +
			strings.Repeat(" ", width-thumbAt-1)
	}

	return track + "\n" + shadow
}
