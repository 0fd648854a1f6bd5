package state

// Mode represents the current interaction mode of the TUI.
// Each mode determines which keyboard shortcuts are active and what UI is displayed.
type Mode int

const (
	ListMode          Mode = iota // Plan list, default navigation
	FilterMode                    // Typing a tag filter (/)
	DeleteConfirmMode             // Confirming plan deletion
	DetailMode                    // One plan with its cases
	HelpMode                      // Displaying help screen
)

// String names the mode for the status bar
func (m Mode) String() string {
	switch m {
	case FilterMode:
		return "FILTER"
	case DeleteConfirmMode:
		return "DELETE"
	case DetailMode:
		return "DETAIL"
	case HelpMode:
		return "HELP"
	}
	return "LIST"
}

// UIState manages the user interface state: terminal dimensions, the
// current mode and the selected row.
type UIState struct {
	width    int
	height   int
	mode     Mode
	previous Mode // mode to return to from HelpMode
	selected int
}

// NewUIState creates a new UIState in ListMode.
func NewUIState() *UIState {
	return &UIState{mode: ListMode}
}

// Width returns the terminal width in characters.
func (s *UIState) Width() int { return s.width }

// Height returns the terminal height in characters.
func (s *UIState) Height() int { return s.height }

// SetSize records the terminal dimensions.
func (s *UIState) SetSize(width, height int) {
	s.width = width
	s.height = height
}

// Mode returns the current interaction mode.
func (s *UIState) Mode() Mode { return s.mode }

// SetMode switches the interaction mode.
func (s *UIState) SetMode(mode Mode) {
	if mode == HelpMode && s.mode != HelpMode {
		s.previous = s.mode
	}
	s.mode = mode
}

// CloseHelp returns to the mode help was opened from.
func (s *UIState) CloseHelp() {
	if s.mode == HelpMode {
		s.mode = s.previous
	}
}

// Selected returns the index of the selected row.
func (s *UIState) Selected() int { return s.selected }

// SetSelected sets the selected row.
func (s *UIState) SetSelected(i int) { s.selected = i }

// MoveSelection moves the selection by delta, clamped to [0, count).
func (s *UIState) MoveSelection(delta, count int) {
	s.selected = clamp(s.selected+delta, count)
}

// ClampSelection keeps the selection inside a list of count rows.
func (s *UIState) ClampSelection(count int) {
	s.selected = clamp(s.selected, count)
}

func clamp(i, count int) int {
	if count <= 0 || i < 0 {
		return 0
	}
	if i >= count {
		return count - 1
	}
	return i
}
