package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGreeting(t *testing.T) {
	tests := []struct {
		hour int
		want string
	}{
		{0, "Good morning"},
		{11, "Good morning"},
		{12, "Good afternoon"},
		{17, "Good afternoon"},
		{18, "Good evening"},
		{23, "Good evening"},
	}
	for _, tt := range tests {
		got := Greeting("Sam", tt.hour)
		assert.Equal(t, tt.want+", my name is Sam! Welcome to my portfolio!", got, "hour %d", tt.hour)
	}
}

func TestNavItems(t *testing.T) {
	items := NavItems()
	assert.Len(t, items, 6)
	for _, it := range items {
		assert.Equal(t, byte('#'), it.Anchor[0], it.Label)
	}
}

func TestTablesAreRectangular(t *testing.T) {
	for _, tbl := range []Table{Education(), Experience()} {
		for _, row := range tbl.Rows {
			assert.Len(t, row, len(tbl.Headers))
		}
	}
}
