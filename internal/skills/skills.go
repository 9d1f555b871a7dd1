// Package skills owns the ordered list of skill tags shown on the portfolio
// page. Each skill carries a stable ID so edits and deletes never depend on
// the position a view happened to render.
package skills

import (
	"errors"
	"slices"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
)

var (
	// ErrEmpty is returned when a skill name is blank after trimming.
	ErrEmpty = errors.New("skill cannot be empty")
	// ErrDuplicate is returned when a skill name matches an existing one,
	// ignoring case.
	ErrDuplicate = errors.New("skill already exists")
	// ErrNotFound is returned when no skill has the requested ID.
	ErrNotFound = errors.New("skill not found")
	// ErrInvalid is returned when a skill name is not valid UTF-8.
	ErrInvalid = errors.New("skill name is not valid UTF-8")
)

// Skill is a single user-managed tag.
type Skill struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Entry is a skill together with its current position in the list.
type Entry struct {
	Skill
	Index int `json:"index"`
}

// Manager holds an ordered list of unique skills. Insertion order is
// display order. All methods are safe for concurrent use.
type Manager struct {
	mu     sync.Mutex
	skills []Skill
}

// NewManager returns a manager seeded with the given names. Blank and
// duplicate seeds are skipped.
func NewManager(seed ...string) *Manager {
	m := &Manager{}
	for _, name := range seed {
		_, _ = m.Add(name)
	}
	return m
}

// fold normalizes a name for case-insensitive comparison.
func fold(s string) string {
	return cases.Fold().String(s)
}

// indexOf returns the position of id, or -1. Caller holds mu.
func (m *Manager) indexOf(id string) int {
	return slices.IndexFunc(m.skills, func(s Skill) bool { return s.ID == id })
}

// validate trims raw and checks it against every skill except the one
// with the given id. Caller holds mu.
func (m *Manager) validate(raw, exceptID string) (string, error) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return "", ErrEmpty
	}
	if !utf8.ValidString(name) {
		return "", ErrInvalid
	}
	key := fold(name)
	for _, s := range m.skills {
		if s.ID != exceptID && fold(s.Name) == key {
			return "", ErrDuplicate
		}
	}
	return name, nil
}

// Add appends a new skill to the end of the list.
func (m *Manager) Add(raw string) (Skill, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	name, err := m.validate(raw, "")
	if err != nil {
		return Skill{}, err
	}
	s := Skill{ID: uuid.NewString(), Name: name}
	m.skills = append(m.skills, s)
	return s, nil
}

// Edit renames the skill with the given id in place. Renaming a skill to a
// different casing of its own name is allowed.
func (m *Manager) Edit(id, raw string) (Skill, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.indexOf(id)
	if i < 0 {
		return Skill{}, ErrNotFound
	}
	name, err := m.validate(raw, id)
	if err != nil {
		return Skill{}, err
	}
	m.skills[i].Name = name
	return m.skills[i], nil
}

// Remove deletes the skill with the given id. Later skills shift down by
// one position.
func (m *Manager) Remove(id string) (Skill, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.indexOf(id)
	if i < 0 {
		return Skill{}, ErrNotFound
	}
	s := m.skills[i]
	m.skills = slices.Delete(m.skills, i, i+1)
	return s, nil
}

// Clear removes every skill.
func (m *Manager) Clear() {
	m.mu.Lock()
	m.skills = nil
	m.mu.Unlock()
}

// Get returns the skill with the given id.
func (m *Manager) Get(id string) (Skill, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.indexOf(id)
	if i < 0 {
		return Skill{}, false
	}
	return m.skills[i], true
}

// List returns a copy of the skills in display order.
func (m *Manager) List() []Skill {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.skills)
}

// Len returns the number of skills.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.skills)
}

// Search returns the skills whose name contains query, ignoring case, in
// display order. An empty query matches everything. The list itself is
// not modified.
func (m *Manager) Search(query string) []Entry {
	m.mu.Lock()
	defer m.mu.Unlock()

	q := fold(strings.TrimSpace(query))
	entries := make([]Entry, 0, len(m.skills))
	for i, s := range m.skills {
		if q == "" || strings.Contains(fold(s.Name), q) {
			entries = append(entries, Entry{Skill: s, Index: i})
		}
	}
	return entries
}
