package web

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/portfolio/internal/projects"
)

type projectCard struct {
	projects.Project
	Status string
}

// galleryView is the data of the projects fragment.
type galleryView struct {
	Cards     []projectCard
	Ascending bool
	SortLabel string
}

func (s *Server) galleryView(asc bool, now time.Time) galleryView {
	sorted := s.gallery.Sorted(asc)
	cards := make([]projectCard, len(sorted))
	for i, p := range sorted {
		cards[i] = projectCard{Project: p, Status: p.Status(now)}
	}
	return galleryView{
		Cards:     cards,
		Ascending: asc,
		SortLabel: projects.SortLabel(asc),
	}
}

// handleProjects renders the gallery. An explicit order parameter also
// becomes the visitor's current order.
func (s *Server) handleProjects(c *gin.Context) {
	st := state(c)
	if order, ok := c.GetQuery("order"); ok {
		st.SetSortAscending(projects.ParseOrder(order))
	}
	c.HTML(http.StatusOK, "projects.html", s.galleryView(st.SortAscending(), s.now()))
}

func (s *Server) handleToggleSort(c *gin.Context) {
	asc := state(c).ToggleSort()
	c.HTML(http.StatusOK, "projects.html", s.galleryView(asc, s.now()))
}
