package web

import (
	"crypto/subtle"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

const adminCookie = "admin_token"

// adminAuth guards the dashboard with a single set of credentials and a
// per-process random token kept in a cookie.
type adminAuth struct {
	username string
	password string
	token    string
}

func newAdminAuth(username, password string) (*adminAuth, error) {
	token, err := randomToken()
	if err != nil {
		return nil, err
	}
	return &adminAuth{username: username, password: password, token: token}, nil
}

func equal(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}

func (a *adminAuth) check(username, password string) bool {
	// Evaluate both so timing does not reveal which one was wrong.
	userOK := equal(username, a.username)
	passOK := equal(password, a.password)
	return a.username != "" && userOK && passOK
}

// middleware redirects to the login page unless the admin cookie matches.
func (a *adminAuth) middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(adminCookie)
		if err != nil || !equal(token, a.token) {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

func (s *Server) setupAdminRoutes(r *gin.Engine) {
	r.GET("/admin/login", func(c *gin.Context) {
		c.HTML(http.StatusOK, "admin-login.html", gin.H{
			"title": "Admin Login",
		})
	})

	r.POST("/admin/login", func(c *gin.Context) {
		if !s.admin.check(c.PostForm("username"), c.PostForm("password")) {
			slog.Warn("failed admin login", "visitor", s.tracker.hashIP(c.ClientIP()))
			c.HTML(http.StatusUnauthorized, "admin-login.html", gin.H{
				"title": "Admin Login",
				"error": "Invalid credentials",
			})
			return
		}
		c.SetSameSite(http.SameSiteStrictMode)
		c.SetCookie(adminCookie, s.admin.token, 3600*24, "/admin", "", s.opts.SecureCookies, true)
		slog.Info("admin login", "visitor", s.tracker.hashIP(c.ClientIP()))
		c.Redirect(http.StatusFound, "/admin/dashboard")
	})

	r.GET("/admin/logout", func(c *gin.Context) {
		c.SetCookie(adminCookie, "", -1, "/admin", "", s.opts.SecureCookies, true)
		c.Redirect(http.StatusFound, "/admin/login")
	})

	admin := r.Group("/admin")
	admin.Use(s.admin.middleware())

	admin.GET("/dashboard", func(c *gin.Context) {
		stats, err := s.store.Stats(c.Request.Context(), s.now())
		if err != nil {
			slog.Error("loading admin stats", "err", err)
			c.HTML(http.StatusInternalServerError, "admin-error.html", gin.H{
				"error": "Failed to load statistics",
			})
			return
		}
		c.HTML(http.StatusOK, "admin-dashboard.html", gin.H{
			"stats":          stats,
			"activeSessions": s.sessions.Len(),
		})
	})

	admin.GET("/api/stats", func(c *gin.Context) {
		stats, err := s.store.Stats(c.Request.Context(), s.now())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"stats":           stats,
			"active_sessions": s.sessions.Len(),
		})
	})

	admin.GET("/visitors", func(c *gin.Context) {
		visitors, err := s.store.RecentVisits(c.Request.Context(), 200)
		if err != nil {
			slog.Error("loading visitors", "err", err)
			c.HTML(http.StatusInternalServerError, "admin-error.html", gin.H{
				"error": "Failed to load visitors",
			})
			return
		}
		c.HTML(http.StatusOK, "admin-visitors.html", gin.H{
			"visitors": visitors,
		})
	})

	admin.GET("/messages", func(c *gin.Context) {
		msgs, err := s.store.ContactMessages(c.Request.Context(), 200)
		if err != nil {
			slog.Error("loading contact messages", "err", err)
			c.HTML(http.StatusInternalServerError, "admin-error.html", gin.H{
				"error": "Failed to load messages",
			})
			return
		}
		c.HTML(http.StatusOK, "admin-messages.html", gin.H{
			"messages": msgs,
		})
	})

	admin.POST("/privacy/cleanup", func(c *gin.Context) {
		n, err := s.PurgeOldVisits(c.Request.Context())
		if err != nil {
			slog.Error("privacy cleanup", "err", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Privacy cleanup failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Privacy cleanup complete", "removed": n})
	})

	admin.GET("/export/stats", func(c *gin.Context) {
		stats, err := s.store.Stats(c.Request.Context(), s.now())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.Header("Content-Disposition", "attachment; filename=admin-stats.json")
		slog.Info("admin stats exported", "visitor", s.tracker.hashIP(c.ClientIP()))
		c.JSON(http.StatusOK, stats)
	})
}
