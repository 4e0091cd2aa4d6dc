// Package carousel holds the view state of the public gallery: which entry is
// shown, the thumbnail strip offset, and which info panel is open. It is pure
// bookkeeping, kept separate from handlers so the invariants are testable.
package carousel

// Panel identifies the gallery's single open info panel. Modeling it as one
// value (instead of a flag per panel) makes "at most one open" structural.
type Panel int

const (
	PanelNone Panel = iota
	PanelContact
	PanelMap
	PanelTour
)

// String returns the panel name used in templates and query parameters.
func (p Panel) String() string {
	switch p {
	case PanelContact:
		return "contact"
	case PanelMap:
		return "map"
	case PanelTour:
		return "tour"
	default:
		return "none"
	}
}

// ParsePanel maps a query-parameter value to a Panel. Unknown values close
// all panels.
func ParsePanel(s string) Panel {
	switch s {
	case "contact":
		return PanelContact
	case "map":
		return PanelMap
	case "tour":
		return PanelTour
	default:
		return PanelNone
	}
}

// Thumbnail strip geometry, in pixels.
const (
	DefaultItemWidth = 192
	DefaultGap       = 16
)

// State tracks the visitor's position in the gallery.
type State struct {
	count     int
	index     int
	panel     Panel
	itemWidth int
	gap       int
}

// New creates gallery state over count entries, starting at the first one
// with no panel open.
func New(count int) *State {
	return &State{
		count:     count,
		itemWidth: DefaultItemWidth,
		gap:       DefaultGap,
	}
}

// Empty reports whether there is nothing to show. An empty gallery renders
// the placeholder instead of navigation controls.
func (s *State) Empty() bool {
	return s.count == 0
}

// Index returns the current entry index.
func (s *State) Index() int {
	return s.index
}

// Next advances one entry, wrapping from the last back to the first.
func (s *State) Next() int {
	if s.count == 0 {
		return 0
	}
	s.index = (s.index + 1) % s.count
	return s.index
}

// Prev steps back one entry, wrapping from the first to the last.
func (s *State) Prev() int {
	if s.count == 0 {
		return 0
	}
	s.index = (s.index - 1 + s.count) % s.count
	return s.index
}

// Select jumps directly to the entry at i. Out-of-range values are ignored.
func (s *State) Select(i int) int {
	if i >= 0 && i < s.count {
		s.index = i
	}
	return s.index
}

// TogglePanel opens the given panel, closing whichever was open. Toggling the
// already-open panel closes it.
func (s *State) TogglePanel(p Panel) Panel {
	if s.panel == p {
		s.panel = PanelNone
	} else {
		s.panel = p
	}
	return s.panel
}

// ActivePanel returns the currently open panel, or PanelNone.
func (s *State) ActivePanel() Panel {
	return s.panel
}

// StripOffset returns the horizontal pixel offset of the thumbnail strip for
// the current index: -index * (itemWidth + gap).
func (s *State) StripOffset() int {
	return -s.index * (s.itemWidth + s.gap)
}

// Position returns the 1-based position indicator ("current / total").
func (s *State) Position() (current, total int) {
	if s.count == 0 {
		return 0, 0
	}
	return s.index + 1, s.count
}
