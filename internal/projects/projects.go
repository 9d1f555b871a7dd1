// Package projects holds the static project gallery and its deadline sort.
package projects

import (
	"slices"
	"strings"
	"time"
)

// Status values shown on a project card.
const (
	StatusCompleted = "Completed"
	StatusOngoing   = "Ongoing"
)

// Project is a portfolio entry. Projects are loaded once and never mutated.
type Project struct {
	Title       string
	Description string
	Deadline    time.Time
	ImageURL    string
	ModalID     string
	Details     string
}

// Status reports Completed when the deadline is before now.
func (p Project) Status(now time.Time) string {
	if p.Deadline.Before(now) {
		return StatusCompleted
	}
	return StatusOngoing
}

// DeadlineLabel formats the deadline as a calendar date.
func (p Project) DeadlineLabel() string {
	return p.Deadline.Format("Jan 2, 2006")
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Defaults returns the projects shown in the gallery.
func Defaults() []Project {
	return []Project{
		{
			Title:       "Ransomware Trends Dashboard",
			Description: "Built an R dashboard to visualize ransomware attack patterns using EDA and visualization libraries.",
			Deadline:    date(2024, time.May, 1),
			ImageURL:    "/images/ransomware-trends.png",
			ModalID:     "project1Modal",
			Details: `Collected public incident reports, cleaned them with the tidyverse and
			charted attack volume by sector, ransom demand and time of year.`,
		},
		{
			Title:       "Battleship Game in C",
			Description: "A console Battleship game in C with grid logic, ship placement, and scoring.",
			Deadline:    date(2023, time.December, 1),
			ImageURL:    "/images/battleship-code.png",
			ModalID:     "project2Modal",
			Details: `Two players place ships on a 10x10 grid and take turns firing. The game
			validates placement, tracks hits and sunk ships, and keeps score across rounds.`,
		},
	}
}

// Gallery is a fixed set of projects.
type Gallery struct {
	projects []Project
}

// NewGallery returns a gallery over a copy of ps.
func NewGallery(ps []Project) *Gallery {
	return &Gallery{projects: slices.Clone(ps)}
}

// Sorted returns the projects ordered by deadline. Projects with the same
// deadline keep their original order. The gallery itself is unchanged.
func (g *Gallery) Sorted(ascending bool) []Project {
	out := slices.Clone(g.projects)
	slices.SortStableFunc(out, func(a, b Project) int {
		if ascending {
			return a.Deadline.Compare(b.Deadline)
		}
		return b.Deadline.Compare(a.Deadline)
	})
	return out
}

// ParseOrder reports whether s asks for ascending order. Anything other
// than "desc" is ascending.
func ParseOrder(s string) bool {
	return !strings.EqualFold(strings.TrimSpace(s), "desc")
}

// SortLabel is the text of the sort toggle button for the current order.
func SortLabel(ascending bool) string {
	if ascending {
		return "Sort by Deadline: Oldest → Newest"
	}
	return "Sort by Deadline: Newest → Oldest"
}
