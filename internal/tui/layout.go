package tui

// Layout proportions
const (
	MaxPanelWidth = 64
	PanelPercent  = 80

	// Blank row between header and panel
	panelGap = 1
)

// panelLayout holds the panel's position for View and hit-testing
type panelLayout struct {
	x, y  int
	width int
}

// calculatePanelLayout centers the panel below a header of headerHeight rows
func calculatePanelLayout(width, headerHeight int) panelLayout {
	w := min(width*PanelPercent/100, MaxPanelWidth)
	if width <= MaxPanelWidth {
		w = width
	}
	return panelLayout{
		x:     max((width-w)/2, 0),
		y:     headerHeight + panelGap,
		width: w,
	}
}

// relayout sizes components for the current window and their current state.
// The header grows while its menu is open, so this runs after every update.
func (m *Model) relayout() {
	if m.Width == 0 || m.Height == 0 {
		return
	}

	m.Header.SetWidth(m.Width)
	layout := calculatePanelLayout(m.Width, m.Header.Height())
	m.Panel.SetLayout(layout.x, layout.y, layout.width)
}

// currentPanelLayout returns the layout last applied by relayout
func (m Model) currentPanelLayout() panelLayout {
	return calculatePanelLayout(m.Width, m.Header.Height())
}
