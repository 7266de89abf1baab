package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color palette
var (
	Emerald      = lipgloss.Color("#10B981")
	EmeraldLight = lipgloss.Color("#34D399")
	EmeraldDark  = lipgloss.Color("#047857")
	Amber        = lipgloss.Color("#F59E0B")
	AmberLight   = lipgloss.Color("#FBBF24")
	Red          = lipgloss.Color("#EF4444")
	RedLight     = lipgloss.Color("#F87171")
	SlateDark    = lipgloss.Color("#1F2937")
	SlateLight   = lipgloss.Color("#374151")
	DimGray      = lipgloss.Color("#6B7280")
	LightGray    = lipgloss.Color("#9CA3AF")
	White        = lipgloss.Color("#F9FAFB")
)

// Gradient is a two-stop horizontal color ramp
type Gradient struct {
	From lipgloss.Color
	To   lipgloss.Color
}

// Tier treatments, matching the badge and thumb colors
var (
	HighGradient   = Gradient{From: Emerald, To: EmeraldLight}
	MediumGradient = Gradient{From: Amber, To: AmberLight}
	LowGradient    = Gradient{From: Red, To: RedLight}
)

// Borders
var (
	PanelBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(SlateLight).
			Padding(0, 1)

	HeaderRule = lipgloss.NewStyle().
			Foreground(SlateLight)
)

// Text styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(White).
			Bold(true)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(Emerald)

	LabelStyle = lipgloss.NewStyle().
			Foreground(LightGray).
			Bold(true)

	DimStyle = lipgloss.NewStyle().
			Foreground(DimGray)

	AccentStyle = lipgloss.NewStyle().
			Foreground(Emerald)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(Red)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(Emerald)
)

// Badge renders the quality percentage pill
var BadgeStyle = lipgloss.NewStyle().
	Bold(true).
	Padding(0, 1)

// Format button styles
var (
	ButtonStyle = lipgloss.NewStyle().
			Foreground(LightGray).
			Border(lipgloss.NormalBorder()).
			BorderForeground(SlateLight).
			Padding(0, 2)

	ButtonSelectedStyle = lipgloss.NewStyle().
				Foreground(EmeraldLight).
				Bold(true).
				Border(lipgloss.NormalBorder()).
				BorderForeground(Emerald).
				Padding(0, 2)

	ButtonDisabledStyle = lipgloss.NewStyle().
				Foreground(DimGray).
				Border(lipgloss.NormalBorder()).
				BorderForeground(SlateDark).
				Padding(0, 2)
)

// Dropdown styles
var (
	TriggerStyle = lipgloss.NewStyle().
			Foreground(LightGray).
			Padding(0, 1)

	TriggerOpenStyle = lipgloss.NewStyle().
				Foreground(White).
				Background(SlateLight).
				Padding(0, 1)

	MenuStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(SlateLight)

	MenuItemStyle = lipgloss.NewStyle().
			Foreground(LightGray).
			Padding(0, 1)

	MenuItemActiveStyle = lipgloss.NewStyle().
				Foreground(EmeraldLight).
				Bold(true).
				Padding(0, 1)

	MenuItemHighlightStyle = lipgloss.NewStyle().
				Foreground(White).
				Background(SlateLight).
				Padding(0, 1)
)

// Slider styles
var (
	TrackEmptyStyle = lipgloss.NewStyle().
			Foreground(SlateLight)

	TrackShadowStyle = lipgloss.NewStyle().
				Foreground(SlateDark)
)

// Slider glyphs
const (
	TrackFilledChar  = "━"
	TrackEmptyChar   = "─"
	TrackShadowChar  = "▔"
	ThumbChar        = "●"
	ThumbDraggedChar = "◉"
)

// Help styles
var (
	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(Emerald)

	HelpDescStyle = lipgloss.NewStyle().
			Foreground(DimGray)
)

// Helper functions

// At returns the gradient color at position t in [0, 1]
func (g Gradient) At(t float64) lipgloss.Color {
	from, err1 := colorful.Hex(string(g.From))
	to, err2 := colorful.Hex(string(g.To))
	if err1 != nil || err2 != nil {
		return g.From
	}
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return lipgloss.Color(from.BlendLuv(to, t).Clamped().Hex())
}

// RenderGradient renders n copies of glyph shaded across the gradient
func RenderGradient(glyph string, n int, g Gradient, bold bool) string {
	if n <= 0 {
		return ""
	}
	var b strings.Builder
	for i := 0; i < n; i++ {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		b.WriteString(lipgloss.NewStyle().Foreground(g.At(t)).Bold(bold).Render(glyph))
	}
	return b.String()
}

// Truncate shortens s to width cells, adding an ellipsis when it has to cut
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}

// Pad pads s with spaces to width cells
func Pad(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
