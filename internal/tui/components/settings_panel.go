package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mmcdole/squeeze/internal/domain"
	"github.com/mmcdole/squeeze/internal/tui/events"
	"github.com/mmcdole/squeeze/internal/tui/styles"
)

// PanelFocus is the panel section receiving keyboard input
type PanelFocus int

const (
	FocusQuality PanelFocus = iota
	FocusFormat
)

// Row offsets inside the panel, counted from its top border
const (
	panelRowTitle   = 1
	panelRowBadge   = 3
	panelRowTrack   = 4
	panelRowCaption = 6
	panelRowFormat  = 8
	panelRowButtons = 9

	// border + horizontal padding on each side
	panelInsetX   = 2
	minPanelWidth = 24
)

// ChangeFunc receives every new settings value produced by the panel
type ChangeFunc func(domain.CompressionSettings) tea.Cmd

// SettingsPanel renders the quality slider and format selector.
//
// The panel is fully controlled: the owner passes settings and the disabled
// flag in with SetProps and receives changes through onChange. Drag and focus
// state stay inside the panel and are never reported.
type SettingsPanel struct {
	locale   domain.LocaleStore
	slider   *Slider
	onChange ChangeFunc

	settings domain.CompressionSettings
	disabled bool
	focus    PanelFocus

	x, y, width int
	buttons     []events.Rect // parallel to domain.Formats()
}

// NewSettingsPanel creates a panel reporting changes to onChange
func NewSettingsPanel(bus *events.Bus, locale domain.LocaleStore, onChange ChangeFunc) *SettingsPanel {
	p := &SettingsPanel{
		locale:   locale,
		onChange: onChange,
		settings: domain.DefaultSettings(),
	}
	p.slider = NewSlider(bus, p.setQuality)
	return p
}

// SetProps passes in the owner's current settings and disabled flag
func (p *SettingsPanel) SetProps(settings domain.CompressionSettings, disabled bool) {
	p.settings = settings
	p.disabled = disabled
}

// Settings returns the settings last passed in
func (p *SettingsPanel) Settings() domain.CompressionSettings {
	return p.settings
}

// Disabled returns the disabled flag last passed in
func (p *SettingsPanel) Disabled() bool {
	return p.disabled
}

// Slider exposes the drag controller
func (p *SettingsPanel) Slider() *Slider {
	return p.slider
}

// Focus returns the section receiving keys
func (p *SettingsPanel) Focus() PanelFocus {
	return p.focus
}

// SetLayout positions the panel and recomputes the hit regions
func (p *SettingsPanel) SetLayout(x, y, width int) {
	if width < minPanelWidth {
		width = minPanelWidth
	}
	p.x, p.y, p.width = x, y, width

	p.slider.SetTrack(events.Rect{
		X:      x + panelInsetX,
		Y:      y + panelRowTrack,
		Width:  p.innerWidth(),
		Height: 1,
	})

	p.buttons = p.buttons[:0]
	bx := x + panelInsetX
	for _, f := range domain.Formats() {
		w := lipgloss.Width(styles.ButtonStyle.Render(f.Label()))
		p.buttons = append(p.buttons, events.Rect{X: bx, Y: y + panelRowButtons, Width: w, Height: 3})
		bx += w + 1
	}
}

// FormatButton returns the hit region of a format button
func (p *SettingsPanel) FormatButton(f domain.Format) events.Rect {
	for i, candidate := range domain.Formats() {
		if candidate == f && i < len(p.buttons) {
			return p.buttons[i]
		}
	}
	return events.Rect{}
}

// Close releases the slider's listeners
func (p *SettingsPanel) Close() {
	p.slider.Close()
}

// HandlePress routes an element-level press to the track or a format button
func (p *SettingsPanel) HandlePress(ev events.Pointer) tea.Cmd {
	if p.slider.Track().Contains(ev.X, ev.Y) {
		p.focus = FocusQuality
		return p.slider.HandlePress(ev, p.disabled)
	}
	for i, r := range p.buttons {
		if r.Contains(ev.X, ev.Y) {
			p.focus = FocusFormat
			return p.setFormat(domain.Formats()[i])
		}
	}
	return nil
}

// HandleKey processes keyboard input, returns (handled, cmd)
func (p *SettingsPanel) HandleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	keys := SettingsPanelKeys

	switch {
	case key.Matches(msg, keys.NextFocus):
		if p.focus == FocusQuality {
			p.focus = FocusFormat
		} else {
			p.focus = FocusQuality
		}
		return true, nil
	case key.Matches(msg, keys.FormatJPEG):
		return true, p.setFormat(domain.FormatJPEG)
	case key.Matches(msg, keys.FormatPNG):
		return true, p.setFormat(domain.FormatPNG)
	case key.Matches(msg, keys.FormatWEBP):
		return true, p.setFormat(domain.FormatWEBP)
	}

	if p.focus == FocusFormat {
		switch {
		case key.Matches(msg, keys.Decrease):
			return true, p.stepFormat(-1)
		case key.Matches(msg, keys.Increase):
			return true, p.stepFormat(1)
		}
		return false, nil
	}

	switch {
	case key.Matches(msg, keys.Decrease):
		return true, p.setQuality(domain.SnapQuality(p.settings.Quality - domain.QualityStep))
	case key.Matches(msg, keys.Increase):
		return true, p.setQuality(domain.SnapQuality(p.settings.Quality + domain.QualityStep))
	case key.Matches(msg, keys.Min):
		return true, p.setQuality(domain.MinQuality)
	case key.Matches(msg, keys.Max):
		return true, p.setQuality(domain.MaxQuality)
	}
	return false, nil
}

func (p *SettingsPanel) stepFormat(delta int) tea.Cmd {
	formats := domain.Formats()
	idx := 0
	for i, f := range formats {
		if f == p.settings.Format {
			idx = i
		}
	}
	idx = (idx + delta + len(formats)) % len(formats)
	return p.setFormat(formats[idx])
}

func (p *SettingsPanel) setQuality(q float64) tea.Cmd {
	return p.report(domain.SetQuality(p.settings, q))
}

func (p *SettingsPanel) setFormat(f domain.Format) tea.Cmd {
	return p.report(domain.SetFormat(p.settings, f))
}

// report forwards next to the owner when enabled and actually different
func (p *SettingsPanel) report(next domain.CompressionSettings) tea.Cmd {
	if p.disabled || next == p.settings || p.onChange == nil {
		return nil
	}
	p.settings = next
	return p.onChange(next)
}

func (p *SettingsPanel) innerWidth() int {
	return p.width - 2*panelInsetX
}

// View renders the panel at its laid-out width
func (p *SettingsPanel) View() string {
	if p.width == 0 {
		return ""
	}
	t := p.locale.Translate
	inner := p.innerWidth()
	q := p.settings.Quality
	tier := domain.TierOf(q)
	gradient := TierGradient(tier)

	title := styles.TitleStyle.Render(styles.Truncate("⚙ "+t(domain.MsgSettingsTitle), inner))
	notice := ""
	if p.disabled {
		notice = styles.DimStyle.Render(styles.Truncate(t(domain.MsgReadOnly), inner))
	}

	badge := styles.BadgeStyle.Foreground(gradient.From).Render(
		fmt.Sprintf("%d%% (%s)", domain.DisplayPercent(q), t(domain.LabelFor(tier))))
	qualityLabel := p.sectionLabel(t(domain.MsgQualityLabel), FocusQuality)

	captionLeft := styles.DimStyle.Render(t(domain.MsgLowSize))
	captionRight := styles.DimStyle.Render(t(domain.MsgBestQuality))

	var buttons []string
	for _, f := range domain.Formats() {
		style := styles.ButtonStyle
		switch {
		case p.disabled:
			style = styles.ButtonDisabledStyle
		case f == p.settings.Format:
			style = styles.ButtonSelectedStyle
		}
		buttons = append(buttons, style.Render(f.Label()))
	}
	buttonRow := lipgloss.JoinHorizontal(lipgloss.Top, interleave(buttons, " ")...)

	description := lipgloss.NewStyle().
		Foreground(styles.DimGray).
		Width(inner).
		Render(t(p.settings.Format.DescriptionKey()))

	rows := []string{
		title,
		notice,
		spread(qualityLabel, badge, inner),
		p.slider.View(q, p.disabled, inner),
		spread(captionLeft, captionRight, inner),
		"",
		p.sectionLabel(t(domain.MsgOutputFormat), FocusFormat),
		buttonRow,
		description,
	}

	return styles.PanelBorder.Width(p.width - 2).Render(strings.Join(rows, "\n"))
}

// Height returns the rendered height in rows
func (p *SettingsPanel) Height() int {
	return lipgloss.Height(p.View())
}

func (p *SettingsPanel) sectionLabel(text string, section PanelFocus) string {
	if p.focus == section && !p.disabled {
		return styles.AccentStyle.Render("▸ ") + styles.LabelStyle.Render(text)
	}
	return "  " + styles.LabelStyle.Render(text)
}

// spread places left and right at opposite ends of a row
func spread(left, right string, width int) string {
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

func interleave(parts []string, sep string) []string {
	out := make([]string, 0, len(parts)*2)
	for i, part := range parts {
		if i > 0 {
			out = append(out, sep)
		}
		out = append(out, part)
	}
	return out
}
