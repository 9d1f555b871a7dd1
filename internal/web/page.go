package web

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/portfolio/internal/profile"
	"github.com/Zachkp/portfolio/internal/session"
	"github.com/Zachkp/portfolio/internal/store"
)

type pageData struct {
	Owner           string
	Greeting        string
	Tagline         string
	AboutMe         string
	ContactBlurb    string
	Nav             []profile.NavItem
	Skills          skillsView
	Gallery         galleryView
	Education       profile.Table
	Experience      profile.Table
	Prefs           session.Preferences
	Downloads       int64
	ResumeAvailable bool
	Year            int
}

func (s *Server) handleIndex(c *gin.Context) {
	st := state(c)
	now := s.now()

	downloads, err := s.store.Counter(c.Request.Context(), store.CounterResumeDownloads)
	if err != nil {
		slog.Error("reading resume downloads", "err", err)
	}

	c.HTML(http.StatusOK, "index.html", pageData{
		Owner:        s.opts.OwnerName,
		Greeting:     profile.Greeting(s.opts.OwnerName, now.Hour()),
		Tagline:      profile.Tagline,
		AboutMe:      profile.AboutMe,
		ContactBlurb: profile.ContactBlurb,
		Nav:          profile.NavItems(),
		Skills: skillsView{
			Entries: st.Skills.Search(""),
			Total:   st.Skills.Len(),
		},
		Gallery:         s.galleryView(st.SortAscending(), now),
		Education:       profile.Education(),
		Experience:      profile.Experience(),
		Prefs:           st.Preferences(),
		Downloads:       downloads,
		ResumeAvailable: s.resumeAvailable(),
		Year:            now.Year(),
	})
}
