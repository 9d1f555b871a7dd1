// Package profile holds the static content of the portfolio page.
package profile

import "fmt"

// NavItem is one entry of the navigation menu.
type NavItem struct {
	Label  string
	Anchor string
}

// NavItems returns the navigation menu in display order.
func NavItems() []NavItem {
	return []NavItem{
		{Label: "Skills", Anchor: "#skills"},
		{Label: "Projects", Anchor: "#projects"},
		{Label: "Education", Anchor: "#education"},
		{Label: "Experience", Anchor: "#experience"},
		{Label: "Customize", Anchor: "#customizationPanel"},
		{Label: "Contact", Anchor: "#contact"},
	}
}

// Greeting returns the welcome line for the given hour of the day (0-23).
func Greeting(name string, hour int) string {
	greeting := "Good evening"
	switch {
	case hour < 12:
		greeting = "Good morning"
	case hour < 18:
		greeting = "Good afternoon"
	}
	return fmt.Sprintf("%s, my name is %s! Welcome to my portfolio!", greeting, name)
}

// Table is a static table with a header row.
type Table struct {
	Headers []string
	Rows    [][]string
}

// Education returns the education table.
func Education() Table {
	return Table{
		Headers: []string{"University", "Degree", "Duration"},
		Rows: [][]string{
			{"Northern Arizona University", "B.S. Software Engineering", "2023 - 2028"},
			{"Northern Arizona University", "B.S. Data Science", "2023 - 2028"},
			{"Northern Arizona University", "Minor in Cybersecurity", "2023 - 2028"},
			{"Northern Arizona University", "Minor in Mathematics", "2023 - 2028"},
		},
	}
}

// Experience returns the work experience table.
func Experience() Table {
	return Table{
		Headers: []string{"Company", "Position", "Duration"},
		Rows: [][]string{
			{"NAU", "Resident Assistant", "2024 - Present"},
			{"Mountainside Fitness", "Front Desk Associate", "2022 - 2023"},
			{"Contemporary Allergy & Asthma", "Clerical Assistant", "2022 - Present"},
		},
	}
}

// DefaultSkills are the skills a new visitor starts with.
var DefaultSkills = []string{"Python", "Go", "C", "R", "SQL", "JavaScript"}
