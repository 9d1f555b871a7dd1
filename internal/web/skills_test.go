package web

import (
	"net/http"
	"net/url"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var skillIDPattern = regexp.MustCompile(`id="skill-([0-9a-f-]{36})" data-index="(\d+)"`)

// skillIDs returns the IDs rendered in a skills fragment, in order.
func skillIDs(body string) []string {
	var ids []string
	for _, m := range skillIDPattern.FindAllStringSubmatch(body, -1) {
		ids = append(ids, m[1])
	}
	return ids
}

func TestAddSkill(t *testing.T) {
	env := newTestEnv(t, Options{})
	c := env.client()
	c.get("/")

	tests := []struct {
		name     string
		input    string
		wantCode int
		wantMsg  string
		wantLen  int
	}{
		{"valid", " Rust ", http.StatusOK, "Skill added ✔", 3},
		{"empty", "   ", http.StatusUnprocessableEntity, "Skill cannot be empty.", 3},
		{"duplicate", "python", http.StatusUnprocessableEntity, "Skill already exists.", 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := c.post("/skills", url.Values{"skill": {tt.input}})
			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantMsg)
			assert.Len(t, skillIDs(rec.Body.String()), tt.wantLen)
		})
	}

	body := c.get("/skills").Body.String()
	assert.Regexp(t, `(?s)Python.*Go.*Rust`, body)
}

func TestEditSkill(t *testing.T) {
	env := newTestEnv(t, Options{})
	c := env.client()
	ids := skillIDs(c.get("/skills").Body.String())
	require.Len(t, ids, 2)

	rec := c.do(http.MethodPut, "/skills/"+ids[1], url.Values{"skill": {"Golang"}}, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Golang")
	assert.Contains(t, rec.Body.String(), "Skill updated ✔")
	assert.Equal(t, ids, skillIDs(rec.Body.String()))

	rec = c.do(http.MethodPut, "/skills/"+ids[1], url.Values{"skill": {"PYTHON"}}, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "Skill already exists.")
	assert.Contains(t, rec.Body.String(), "Golang")

	rec = c.do(http.MethodPut, "/skills/"+ids[1], url.Values{"skill": {" "}}, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "Skill cannot be empty.")

	rec = c.do(http.MethodPut, "/skills/missing", url.Values{"skill": {"Zig"}}, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.NotContains(t, rec.Body.String(), "Zig")
}

func TestEditSkillNonASCII(t *testing.T) {
	env := newTestEnv(t, Options{})
	c := env.client()
	ids := skillIDs(c.get("/skills").Body.String())
	require.Len(t, ids, 2)

	for _, name := range []string{"Café", "日本語"} {
		rec := c.do(http.MethodPut, "/skills/"+ids[0], url.Values{"skill": {name}}, nil)
		require.Equal(t, http.StatusOK, rec.Code, name)
		assert.Contains(t, rec.Body.String(), `skill-text">`+name+`<`)
		assert.Contains(t, rec.Body.String(), `data-name="`+name+`"`)
	}

	// Latin-1 bytes, as a browser would put them in a header.
	rec := c.do(http.MethodPut, "/skills/"+ids[0], url.Values{"skill": {"Caf\xe9"}}, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "Skill name contains invalid characters.")
	assert.Contains(t, rec.Body.String(), "日本語")

	// The header is ignored; only the form field names the skill.
	rec = c.do(http.MethodPut, "/skills/"+ids[0], url.Values{}, map[string]string{"HX-Prompt": "Zig"})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.NotContains(t, rec.Body.String(), "Zig")
}

func TestRemoveSkill(t *testing.T) {
	env := newTestEnv(t, Options{})
	c := env.client()
	c.post("/skills", url.Values{"skill": {"Rust"}})
	ids := skillIDs(c.get("/skills").Body.String())
	require.Len(t, ids, 3)

	rec := c.do(http.MethodDelete, "/skills/"+ids[0], nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	matches := skillIDPattern.FindAllStringSubmatch(rec.Body.String(), -1)
	require.Len(t, matches, 2)
	assert.Equal(t, ids[1], matches[0][1])
	assert.Equal(t, "0", matches[0][2])
	assert.Equal(t, ids[2], matches[1][1])
	assert.Equal(t, "1", matches[1][2])

	// A second delete for the same card, sent while the first was still
	// animating, must not remove anything else.
	rec = c.do(http.MethodDelete, "/skills/"+ids[0], nil, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Len(t, skillIDs(rec.Body.String()), 2)
}

func TestSearchSkills(t *testing.T) {
	env := newTestEnv(t, Options{})
	c := env.client()
	c.post("/skills", url.Values{"skill": {"Golang"}})

	rec := c.get("/skills?q=GO")
	require.Equal(t, http.StatusOK, rec.Code)
	matches := skillIDPattern.FindAllStringSubmatch(rec.Body.String(), -1)
	require.Len(t, matches, 2)
	assert.Equal(t, "1", matches[0][2])
	assert.Equal(t, "2", matches[1][2])
	assert.NotContains(t, rec.Body.String(), "Python")

	rec = c.get("/skills?q=haskell")
	assert.Contains(t, rec.Body.String(), "No skills match")

	assert.Len(t, skillIDs(c.get("/skills?q=").Body.String()), 3)
}

func TestMutationKeepsSearchFilter(t *testing.T) {
	env := newTestEnv(t, Options{})
	c := env.client()

	rec := c.post("/skills", url.Values{"skill": {"Pascal"}, "q": {"p"}})
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Pascal")
	assert.Contains(t, body, "Python")
	assert.Contains(t, body, "Showing 2 of 3")
}

func TestClearSkillsNeedsConfirmation(t *testing.T) {
	env := newTestEnv(t, Options{})
	c := env.client()

	rec := c.post("/skills/clear", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Len(t, skillIDs(rec.Body.String()), 2)

	rec = c.post("/skills/clear", url.Values{"confirm": {"true"}})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "All skills cleared")
	assert.Empty(t, skillIDs(rec.Body.String()))
	assert.Contains(t, rec.Body.String(), "No skills yet.")
}
