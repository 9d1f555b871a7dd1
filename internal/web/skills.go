package web

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/portfolio/internal/skills"
)

// skillsView is the data of the skills-list fragment.
type skillsView struct {
	Entries []skills.Entry
	Total   int
	Query   string
	Message string
	Alert   bool
}

// renderSkills rebuilds the whole list from the current state, filtered by
// the visitor's search query if one is in effect.
func renderSkills(c *gin.Context, status int, m *skills.Manager, msg string, alert bool) {
	q := formValue(c, "q")
	c.HTML(status, "skills-list.html", skillsView{
		Entries: m.Search(q),
		Total:   m.Len(),
		Query:   q,
		Message: msg,
		Alert:   alert,
	})
}

// skillStatus maps a skills error onto an HTTP status.
func skillStatus(err error) int {
	switch {
	case errors.Is(err, skills.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, skills.ErrEmpty), errors.Is(err, skills.ErrDuplicate), errors.Is(err, skills.ErrInvalid):
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

func (s *Server) handleSearchSkills(c *gin.Context) {
	renderSkills(c, http.StatusOK, state(c).Skills, "", false)
}

func (s *Server) handleAddSkill(c *gin.Context) {
	m := state(c).Skills
	skill, err := m.Add(c.PostForm("skill"))
	if err != nil {
		renderSkills(c, skillStatus(err), m, skills.Message(err), true)
		return
	}
	slog.Debug("skill added", "id", skill.ID)
	renderSkills(c, http.StatusOK, m, skills.MsgAdded, false)
}

// handleEditSkill takes the new name from the skill form field. The page
// sends it in the body so non-Latin-1 names survive.
func (s *Server) handleEditSkill(c *gin.Context) {
	m := state(c).Skills
	if _, err := m.Edit(c.Param("id"), formValue(c, "skill")); err != nil {
		renderSkills(c, skillStatus(err), m, skills.Message(err), true)
		return
	}
	renderSkills(c, http.StatusOK, m, skills.MsgUpdated, false)
}

func (s *Server) handleRemoveSkill(c *gin.Context) {
	m := state(c).Skills
	if _, err := m.Remove(c.Param("id")); err != nil {
		renderSkills(c, skillStatus(err), m, skills.Message(err), true)
		return
	}
	renderSkills(c, http.StatusOK, m, skills.MsgRemoved, false)
}

// handleClearSkills empties the list only when the request carries the
// answer of the confirmation dialog.
func (s *Server) handleClearSkills(c *gin.Context) {
	m := state(c).Skills
	if c.PostForm("confirm") != "true" {
		renderSkills(c, http.StatusBadRequest, m, "Clearing skills needs confirmation.", true)
		return
	}
	m.Clear()
	renderSkills(c, http.StatusOK, m, skills.MsgCleared, true)
}
