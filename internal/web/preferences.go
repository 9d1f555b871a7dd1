package web

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type preferencesForm struct {
	FontSize   int    `form:"fontSize" binding:"required,min=12,max=24"`
	Background string `form:"background" binding:"omitempty,hexcolor"`
}

func (s *Server) handleToggleDarkMode(c *gin.Context) {
	prefs := state(c).ToggleDarkMode()
	c.HTML(http.StatusOK, "dark-mode-button.html", prefs)
}

// handleSetPreferences stores font size and background so they survive a
// reload. The page applies them live on its own. Success answers with an
// empty fragment so a previous error is cleared.
func (s *Server) handleSetPreferences(c *gin.Context) {
	var form preferencesForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusUnprocessableEntity, "preferences-error.html", gin.H{
			"error": "Font size must be 12-24px and the background a hex color.",
		})
		return
	}

	st := state(c)
	if err := st.SetFontSize(form.FontSize); err != nil {
		c.HTML(http.StatusUnprocessableEntity, "preferences-error.html", gin.H{"error": err.Error()})
		return
	}
	if err := st.SetBackground(form.Background); err != nil {
		c.HTML(http.StatusUnprocessableEntity, "preferences-error.html", gin.H{"error": err.Error()})
		return
	}
	c.String(http.StatusOK, "")
}
