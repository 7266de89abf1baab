package components

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmcdole/squeeze/internal/tui/events"
)

// Trigger occupies row 0, columns 30-39; the menu sits below it with a
// one-row border above three options on rows 2-4.
var (
	testTrigger = events.Rect{X: 30, Y: 0, Width: 10, Height: 1}
	testMenu    = events.Rect{X: 28, Y: 1, Width: 12, Height: 5}
)

type dropdownHarness struct {
	bus      *events.Bus
	dropdown *Dropdown
	selected []int
	states   []bool // open state after each published press
}

func newDropdownHarness(t *testing.T) *dropdownHarness {
	t.Helper()
	h := &dropdownHarness{bus: events.NewBus()}
	h.dropdown = NewDropdown(h.bus, []string{"English en", "简体中文 zh", "繁體中文 zh-hk"}, func(i int) tea.Cmd {
		h.selected = append(h.selected, i)
		return nil
	})
	h.dropdown.SetBounds(testTrigger, testMenu)
	return h
}

// press mirrors the root model: process-wide listeners first, then the element
func (h *dropdownHarness) press(x, y int) events.Pointer {
	ev, _ := h.bus.Publish(events.Pointer{Kind: events.Press, X: x, Y: y})
	h.dropdown.HandlePress(ev, 0)
	h.states = append(h.states, h.dropdown.IsOpen())
	return ev
}

func (h *dropdownHarness) redeliver(ev events.Pointer) {
	h.dropdown.HandlePress(ev, 0)
	h.states = append(h.states, h.dropdown.IsOpen())
}

func TestDropdown_InitiallyClosedWithoutListeners(t *testing.T) {
	h := newDropdownHarness(t)
	assert.False(t, h.dropdown.IsOpen())
	assert.Zero(t, h.bus.Len())
}

func TestDropdown_TriggerOpensAndInstallsListener(t *testing.T) {
	h := newDropdownHarness(t)

	h.press(32, 0)
	assert.True(t, h.dropdown.IsOpen())
	assert.Equal(t, 1, h.bus.OwnerLen(h.dropdown.ID()))
}

func TestDropdown_PressOutsideCloses(t *testing.T) {
	h := newDropdownHarness(t)

	h.press(32, 0)
	h.press(2, 20)

	assert.False(t, h.dropdown.IsOpen())
	assert.Zero(t, h.bus.Len())
}

func TestDropdown_PressInsideMenuBorderKeepsOpen(t *testing.T) {
	h := newDropdownHarness(t)

	h.press(32, 0)
	h.press(29, 1) // top border of the menu

	assert.True(t, h.dropdown.IsOpen())
	assert.Empty(t, h.selected)
}

func TestDropdown_SelectOptionCloses(t *testing.T) {
	h := newDropdownHarness(t)

	h.press(32, 0)
	h.press(30, 4) // third option

	assert.False(t, h.dropdown.IsOpen())
	assert.Equal(t, []int{2}, h.selected)
	assert.Zero(t, h.bus.Len())
}

func TestDropdown_TwoTriggerPressesOpenExactlyOnce(t *testing.T) {
	h := newDropdownHarness(t)

	h.press(32, 0)
	h.press(33, 0)

	assert.Equal(t, []bool{true, false}, h.states)
	assert.Zero(t, h.bus.Len())
}

func TestDropdown_SamePressDeliveredTwiceCountsOnce(t *testing.T) {
	h := newDropdownHarness(t)

	ev := h.press(32, 0)
	h.redeliver(ev)

	assert.Equal(t, []bool{true, true}, h.states)

	// Outside press handled by the listener must not also reach the element path
	out := h.press(0, 30)
	h.redeliver(out)
	assert.Equal(t, []bool{true, true, false, false}, h.states)
}

func TestDropdown_TriggerWhileOpenIsNotAnOutsidePress(t *testing.T) {
	h := newDropdownHarness(t)

	h.press(32, 0)
	h.press(39, 0) // last trigger column: the listener sees an inside press, the trigger toggles

	assert.False(t, h.dropdown.IsOpen())
	assert.Zero(t, h.bus.Len())
}

func TestDropdown_CloseDetachesListener(t *testing.T) {
	h := newDropdownHarness(t)

	for i := 0; i < 3; i++ {
		h.press(32, 0)
		require.True(t, h.dropdown.IsOpen())
		h.dropdown.Close()
		assert.False(t, h.dropdown.IsOpen())
		assert.Zero(t, h.bus.Len())
	}

	// No stale listener reacts after teardown
	h.bus.Publish(events.Pointer{Kind: events.Press, X: 0, Y: 0})
	assert.Empty(t, h.selected)
}

func TestDropdown_KeyboardNavigation(t *testing.T) {
	h := newDropdownHarness(t)

	handled, _ := h.dropdown.HandleKey(tea.KeyMsg{Type: tea.KeyDown})
	assert.False(t, handled, "closed dropdown ignores keys")

	h.dropdown.Open(0)
	h.dropdown.HandleKey(tea.KeyMsg{Type: tea.KeyDown})
	h.dropdown.HandleKey(tea.KeyMsg{Type: tea.KeyDown})
	h.dropdown.HandleKey(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 2, h.dropdown.Highlight())

	h.dropdown.HandleKey(tea.KeyMsg{Type: tea.KeyUp})
	handled, _ = h.dropdown.HandleKey(tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, handled)
	assert.Equal(t, []int{1}, h.selected)
	assert.False(t, h.dropdown.IsOpen())

	h.dropdown.Open(0)
	h.dropdown.HandleKey(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, h.dropdown.IsOpen())
	assert.Zero(t, h.bus.Len())
}

func TestDropdown_TypeAhead(t *testing.T) {
	h := newDropdownHarness(t)
	h.dropdown.Open(0)

	h.dropdown.HandleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("hk")})
	assert.Equal(t, "hk", h.dropdown.Query())
	assert.Equal(t, 2, h.dropdown.Highlight())

	h.dropdown.HandleKey(tea.KeyMsg{Type: tea.KeyBackspace})
	h.dropdown.HandleKey(tea.KeyMsg{Type: tea.KeyBackspace})
	h.dropdown.HandleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("eng")})
	assert.Equal(t, 0, h.dropdown.Highlight())

	h.dropdown.Dismiss()
	assert.Empty(t, h.dropdown.Query())
}

func TestDropdown_OpenClampsSelection(t *testing.T) {
	h := newDropdownHarness(t)
	h.dropdown.Open(7)
	assert.Equal(t, 2, h.dropdown.Highlight())
}
