package projects

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func titles(ps []Project) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.Title
	}
	return out
}

func TestSorted(t *testing.T) {
	g := NewGallery([]Project{
		{Title: "b", Deadline: date(2024, time.March, 1)},
		{Title: "a", Deadline: date(2023, time.January, 1)},
		{Title: "c", Deadline: date(2025, time.June, 1)},
		{Title: "a2", Deadline: date(2023, time.January, 1)},
	})

	assert.Equal(t, []string{"a", "a2", "b", "c"}, titles(g.Sorted(true)))
	assert.Equal(t, []string{"c", "b", "a", "a2"}, titles(g.Sorted(false)))
	assert.Equal(t, []string{"b", "a", "c", "a2"}, titles(g.projects), "gallery must not be reordered")
}

func TestDefaults(t *testing.T) {
	asc := NewGallery(Defaults()).Sorted(true)
	require.Len(t, asc, 2)
	assert.Equal(t, "Battleship Game in C", asc[0].Title)
	assert.Equal(t, "Ransomware Trends Dashboard", asc[1].Title)
}

func TestStatus(t *testing.T) {
	p := Project{Deadline: date(2024, time.May, 1)}
	assert.Equal(t, StatusCompleted, p.Status(date(2024, time.May, 2)))
	assert.Equal(t, StatusOngoing, p.Status(date(2024, time.April, 30)))
	assert.Equal(t, StatusOngoing, p.Status(p.Deadline))
}

func TestDeadlineLabel(t *testing.T) {
	p := Project{Deadline: date(2023, time.December, 1)}
	assert.Equal(t, "Dec 1, 2023", p.DeadlineLabel())
}

func TestOrder(t *testing.T) {
	assert.True(t, ParseOrder(""))
	assert.True(t, ParseOrder("asc"))
	assert.False(t, ParseOrder(" DESC "))
	assert.Contains(t, SortLabel(true), "Oldest → Newest")
	assert.Contains(t, SortLabel(false), "Newest → Oldest")
}
