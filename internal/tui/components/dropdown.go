package components

import (
	"sort"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/mmcdole/squeeze/internal/tui/events"
)

// Dropdown is the open/closed state of a single-choice menu.
//
// While open it holds a process-wide press listener that dismisses the menu
// when a press lands outside the trigger and menu. Every press is acted on at
// most once, whichever of the two paths sees it first.
type Dropdown struct {
	id  uuid.UUID
	bus *events.Bus

	open      bool
	trigger   events.Rect
	menu      events.Rect
	targets   []string // searchable text per option
	highlight int
	query     string

	lastSeq uint64
	outside *events.Subscription

	onSelect func(index int) tea.Cmd
}

// NewDropdown creates a closed dropdown over the given option texts
func NewDropdown(bus *events.Bus, targets []string, onSelect func(index int) tea.Cmd) *Dropdown {
	return &Dropdown{
		id:       uuid.New(),
		bus:      bus,
		targets:  targets,
		onSelect: onSelect,
	}
}

// ID identifies this instance's subscriptions on the bus
func (d *Dropdown) ID() uuid.UUID {
	return d.id
}

// IsOpen reports whether the menu is shown
func (d *Dropdown) IsOpen() bool {
	return d.open
}

// Highlight returns the option under the keyboard cursor
func (d *Dropdown) Highlight() int {
	return d.highlight
}

// Query returns the type-ahead text entered since opening
func (d *Dropdown) Query() string {
	return d.query
}

// SetBounds records where the trigger and menu were laid out.
// The menu rect includes its border; options start one row below its top.
func (d *Dropdown) SetBounds(trigger, menu events.Rect) {
	d.trigger = trigger
	d.menu = menu
}

// Bounds returns the region that counts as inside the dropdown
func (d *Dropdown) Bounds() events.Rect {
	if !d.open {
		return d.trigger
	}
	return d.trigger.Union(d.menu)
}

// Open shows the menu with the cursor on selected
func (d *Dropdown) Open(selected int) {
	if d.open {
		return
	}
	d.open = true
	d.query = ""
	d.highlight = clampIndex(selected, len(d.targets))
	d.outside = d.bus.Subscribe(d.id, events.Press, d.handleOutsidePress)
}

// Dismiss hides the menu and detaches the outside listener
func (d *Dropdown) Dismiss() {
	d.open = false
	d.query = ""
	d.outside.Cancel()
	d.outside = nil
}

// Toggle flips between open and closed
func (d *Dropdown) Toggle(selected int) {
	if d.open {
		d.Dismiss()
	} else {
		d.Open(selected)
	}
}

// Close releases every listener this dropdown holds
func (d *Dropdown) Close() {
	d.Dismiss()
	d.bus.CancelOwner(d.id)
}

// HandlePress applies an element-level press: the trigger toggles, an option selects.
func (d *Dropdown) HandlePress(ev events.Pointer, selected int) tea.Cmd {
	if ev.Seq != 0 && ev.Seq == d.lastSeq {
		return nil
	}

	if d.trigger.Contains(ev.X, ev.Y) {
		d.lastSeq = ev.Seq
		d.Toggle(selected)
		return nil
	}

	if !d.open {
		return nil
	}
	if i, ok := d.optionAt(ev.X, ev.Y); ok {
		d.lastSeq = ev.Seq
		return d.choose(i)
	}
	return nil
}

// handleOutsidePress is the process-wide listener installed while open
func (d *Dropdown) handleOutsidePress(ev events.Pointer) tea.Cmd {
	if ev.Seq == d.lastSeq {
		return nil
	}
	if d.Bounds().Contains(ev.X, ev.Y) {
		return nil
	}
	d.lastSeq = ev.Seq
	d.Dismiss()
	return nil
}

// HandleKey processes a key while the menu is open, returns (handled, cmd).
// Printable keys narrow the highlight by fuzzy match against the option texts.
func (d *Dropdown) HandleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	if !d.open {
		return false, nil
	}

	switch {
	case key.Matches(msg, DropdownKeys.Up):
		if d.highlight > 0 {
			d.highlight--
		}
		return true, nil
	case key.Matches(msg, DropdownKeys.Down):
		if d.highlight < len(d.targets)-1 {
			d.highlight++
		}
		return true, nil
	case key.Matches(msg, DropdownKeys.Select):
		return true, d.choose(d.highlight)
	case key.Matches(msg, DropdownKeys.Dismiss):
		d.Dismiss()
		return true, nil
	}

	switch msg.Type {
	case tea.KeyBackspace:
		if n := len([]rune(d.query)); n > 0 {
			d.query = string([]rune(d.query)[:n-1])
			d.jumpToBestMatch()
		}
	case tea.KeyRunes:
		d.query += string(msg.Runes)
		d.jumpToBestMatch()
	}
	return true, nil // consume all keys when open
}

func (d *Dropdown) jumpToBestMatch() {
	if d.query == "" {
		return
	}
	ranks := fuzzy.RankFindNormalizedFold(d.query, d.targets)
	if len(ranks) == 0 {
		return
	}
	sort.Sort(ranks)
	d.highlight = ranks[0].OriginalIndex
}

func (d *Dropdown) choose(i int) tea.Cmd {
	d.Dismiss()
	if d.onSelect == nil || i < 0 || i >= len(d.targets) {
		return nil
	}
	return d.onSelect(i)
}

func (d *Dropdown) optionAt(x, y int) (int, bool) {
	if !d.menu.Contains(x, y) {
		return 0, false
	}
	i := y - d.menu.Y - 1
	if i < 0 || i >= len(d.targets) {
		return 0, false
	}
	return i, true
}

func clampIndex(i, n int) int {
	if i < 0 || n == 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
