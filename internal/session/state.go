package session

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/Zachkp/portfolio/internal/skills"
)

// Font size bounds for the customization panel, in pixels.
const (
	MinFontSize     = 12
	MaxFontSize     = 24
	DefaultFontSize = 16
)

var hexColor = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Preferences are the cosmetic settings of one visitor.
type Preferences struct {
	DarkMode   bool
	FontSize   int
	Background string
}

// DarkModeLabel is the text of the toggle button: it names the mode the
// button switches to.
func (p Preferences) DarkModeLabel() string {
	if p.DarkMode {
		return "☀️ Light Mode"
	}
	return "🌙 Dark Mode"
}

// BodyStyle renders the preferences as an inline CSS declaration list.
func (p Preferences) BodyStyle() string {
	style := fmt.Sprintf("font-size: %dpx;", p.FontSize)
	if p.Background != "" {
		style += " background-color: " + p.Background + ";"
	}
	return style
}

// State is the page state of one visitor.
type State struct {
	Skills *skills.Manager

	mu            sync.Mutex
	sortAscending bool
	prefs         Preferences
}

func newState(seed []string) *State {
	return &State{
		Skills:        skills.NewManager(seed...),
		sortAscending: true,
		prefs:         Preferences{FontSize: DefaultFontSize},
	}
}

// SortAscending reports the current project order.
func (s *State) SortAscending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sortAscending
}

// SetSortAscending sets the project order.
func (s *State) SetSortAscending(asc bool) {
	s.mu.Lock()
	s.sortAscending = asc
	s.mu.Unlock()
}

// ToggleSort flips the project order and returns the new value.
func (s *State) ToggleSort() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sortAscending = !s.sortAscending
	return s.sortAscending
}

// Preferences returns a copy of the visitor's cosmetic settings.
func (s *State) Preferences() Preferences {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.prefs
}

// ToggleDarkMode flips dark mode and returns the updated preferences.
func (s *State) ToggleDarkMode() Preferences {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prefs.DarkMode = !s.prefs.DarkMode
	return s.prefs
}

// SetFontSize sets the body font size. Sizes outside the allowed range are
// rejected.
func (s *State) SetFontSize(px int) error {
	if px < MinFontSize || px > MaxFontSize {
		return fmt.Errorf("font size must be between %d and %d", MinFontSize, MaxFontSize)
	}
	s.mu.Lock()
	s.prefs.FontSize = px
	s.mu.Unlock()
	return nil
}

// SetBackground sets the page background to a #rgb or #rrggbb color. An
// empty value restores the theme default.
func (s *State) SetBackground(color string) error {
	color = strings.TrimSpace(color)
	if color != "" && !hexColor.MatchString(color) {
		return fmt.Errorf("invalid background color %q", color)
	}
	s.mu.Lock()
	s.prefs.Background = strings.ToLower(color)
	s.mu.Unlock()
	return nil
}
