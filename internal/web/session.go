package web

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/portfolio/internal/session"
)

const stateKey = "portfolio.state"

// sessionMiddleware attaches the visitor's page state to the request,
// creating a session on first visit. The cookie is re-sent on every request
// so it expires together with the server-side state.
func (s *Server) sessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := c.Cookie(session.CookieName)
		id, st, _ := s.sessions.GetOrCreate(id)
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(session.CookieName, id, int(s.opts.SessionTTL.Seconds()), "/", "", s.opts.SecureCookies, true)
		c.Set(stateKey, st)
		c.Next()
	}
}

// state returns the page state attached by sessionMiddleware.
func state(c *gin.Context) *session.State {
	return c.MustGet(stateKey).(*session.State)
}
