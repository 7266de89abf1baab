package components

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mmcdole/squeeze/internal/domain"
	"github.com/mmcdole/squeeze/internal/tui/events"
	"github.com/mmcdole/squeeze/internal/tui/styles"
)

// LanguageFunc is called after a language has been committed to the LocaleStore
type LanguageFunc func(domain.LanguageCode) tea.Cmd

// Header shows the app title and the language picker.
// The language itself lives in the LocaleStore; only open/closed is local.
type Header struct {
	locale     domain.LocaleStore
	languages  []domain.LanguageOption
	dropdown   *Dropdown
	onLanguage LanguageFunc
	width      int
}

// NewHeader creates a header whose picker commits to locale
func NewHeader(bus *events.Bus, locale domain.LocaleStore, onLanguage LanguageFunc) *Header {
	h := &Header{
		locale:     locale,
		languages:  domain.Languages(),
		onLanguage: onLanguage,
	}

	targets := make([]string, len(h.languages))
	for i, opt := range h.languages {
		targets[i] = opt.Label + " " + string(opt.Code)
	}
	h.dropdown = NewDropdown(bus, targets, h.selectLanguage)
	return h
}

// Dropdown exposes the open/close controller
func (h *Header) Dropdown() *Dropdown {
	return h.dropdown
}

// SetWidth lays the header out across width columns and updates hit regions
func (h *Header) SetWidth(width int) {
	h.width = width
	trigger := h.renderTrigger()
	menu := h.renderMenu()

	tw, mw := lipgloss.Width(trigger), lipgloss.Width(menu)
	h.dropdown.SetBounds(
		events.Rect{X: width - tw, Y: 0, Width: tw, Height: 1},
		events.Rect{X: width - mw, Y: 1, Width: mw, Height: lipgloss.Height(menu)},
	)
}

// ToggleMenu opens or closes the picker from the keyboard
func (h *Header) ToggleMenu() {
	h.dropdown.Toggle(h.selectedIndex())
}

// HandlePress routes an element-level press to the picker
func (h *Header) HandlePress(ev events.Pointer) tea.Cmd {
	return h.dropdown.HandlePress(ev, h.selectedIndex())
}

// HandleKey forwards keys to the picker while it is open
func (h *Header) HandleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	return h.dropdown.HandleKey(msg)
}

// Close releases the picker's listeners
func (h *Header) Close() {
	h.dropdown.Close()
}

func (h *Header) selectLanguage(i int) tea.Cmd {
	code := h.languages[i].Code
	h.locale.SetCurrentLanguage(code)
	if h.onLanguage == nil {
		return nil
	}
	return h.onLanguage(code)
}

func (h *Header) selectedIndex() int {
	current := h.locale.CurrentLanguage()
	for i, opt := range h.languages {
		if opt.Code == current {
			return i
		}
	}
	return 0
}

func (h *Header) renderTrigger() string {
	opt := h.locale.CurrentLanguage().Option()
	text := "🌐 " + opt.Label + " ▾"
	if h.dropdown.IsOpen() {
		return styles.TriggerOpenStyle.Render(text)
	}
	return styles.TriggerStyle.Render(text)
}

func (h *Header) renderMenu() string {
	current := h.locale.CurrentLanguage()

	labels := make([]string, len(h.languages))
	width := 0
	for i, opt := range h.languages {
		labels[i] = opt.Flag + " " + opt.Label
		width = max(width, lipgloss.Width(labels[i]))
	}

	rows := make([]string, len(h.languages))
	for i, opt := range h.languages {
		text := styles.Pad(labels[i], width)
		switch {
		case i == h.dropdown.Highlight():
			rows[i] = styles.MenuItemHighlightStyle.Render(text)
		case opt.Code == current:
			rows[i] = styles.MenuItemActiveStyle.Render(text)
		default:
			rows[i] = styles.MenuItemStyle.Render(text)
		}
	}
	return styles.MenuStyle.Render(strings.Join(rows, "\n"))
}

// View renders the header, including the open menu
func (h *Header) View() string {
	if h.width == 0 {
		return ""
	}
	t := h.locale.Translate

	right := h.renderTrigger()
	if h.dropdown.IsOpen() {
		right = lipgloss.JoinVertical(lipgloss.Right, right, h.renderMenu())
	}

	leftWidth := max(h.width-lipgloss.Width(right), 0)
	left := lipgloss.NewStyle().Width(leftWidth).Render(
		styles.TitleStyle.Render(styles.Truncate(t(domain.MsgAppTitle), leftWidth)) + "\n" +
			styles.SubtitleStyle.Render(styles.Truncate(t(domain.MsgAppSubtitle), leftWidth)))

	top := lipgloss.JoinHorizontal(lipgloss.Top, left, right)
	rule := styles.HeaderRule.Render(strings.Repeat("─", h.width))
	return top + "\n" + rule
}

// Height returns the rendered height in rows
func (h *Header) Height() int {
	return lipgloss.Height(h.View())
}
