package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOrCreate(t *testing.T) {
	s := NewStore(10, time.Hour, []string{"Go", "Rust"})

	id, st, created := s.GetOrCreate("")
	require.True(t, created)
	require.NotEmpty(t, id)
	assert.Equal(t, 2, st.Skills.Len())

	id2, st2, created := s.GetOrCreate(id)
	assert.False(t, created)
	assert.Equal(t, id, id2)
	assert.Same(t, st, st2)

	id3, _, created := s.GetOrCreate("unknown")
	assert.True(t, created)
	assert.NotEqual(t, "unknown", id3)
	assert.Equal(t, 2, s.Len())
}

func TestSessionsAreIsolated(t *testing.T) {
	s := NewStore(10, time.Hour, []string{"Go"})
	_, a, _ := s.GetOrCreate("")
	_, b, _ := s.GetOrCreate("")

	_, err := a.Skills.Add("Rust")
	require.NoError(t, err)
	assert.Equal(t, 2, a.Skills.Len())
	assert.Equal(t, 1, b.Skills.Len())
}

func TestStoreEvictsOldest(t *testing.T) {
	s := NewStore(2, time.Hour, nil)
	first, _, _ := s.GetOrCreate("")
	s.GetOrCreate("")
	s.GetOrCreate("")

	_, ok := s.Get(first)
	assert.False(t, ok)
	assert.Equal(t, 2, s.Len())
}

func TestStoreExpires(t *testing.T) {
	s := NewStore(10, 20*time.Millisecond, nil)
	id, _, _ := s.GetOrCreate("")
	assert.Eventually(t, func() bool {
		_, ok := s.Get(id)
		return !ok
	}, time.Second, 10*time.Millisecond)
}

func TestSort(t *testing.T) {
	st := newState(nil)
	assert.True(t, st.SortAscending())
	assert.False(t, st.ToggleSort())
	assert.False(t, st.SortAscending())
	st.SetSortAscending(true)
	assert.True(t, st.SortAscending())
}

func TestPreferences(t *testing.T) {
	st := newState(nil)
	p := st.Preferences()
	assert.Equal(t, DefaultFontSize, p.FontSize)
	assert.False(t, p.DarkMode)
	assert.Equal(t, "🌙 Dark Mode", p.DarkModeLabel())

	p = st.ToggleDarkMode()
	assert.True(t, p.DarkMode)
	assert.Equal(t, "☀️ Light Mode", p.DarkModeLabel())

	require.NoError(t, st.SetFontSize(20))
	assert.Error(t, st.SetFontSize(MaxFontSize+1))
	assert.Error(t, st.SetFontSize(MinFontSize-1))

	require.NoError(t, st.SetBackground(" #AbC "))
	assert.Error(t, st.SetBackground("red"))
	assert.Error(t, st.SetBackground("#12345"))

	p = st.Preferences()
	assert.Equal(t, 20, p.FontSize)
	assert.Equal(t, "#abc", p.Background)
	assert.Equal(t, "font-size: 20px; background-color: #abc;", p.BodyStyle())

	require.NoError(t, st.SetBackground(""))
	assert.Equal(t, "font-size: 20px;", st.Preferences().BodyStyle())
}
