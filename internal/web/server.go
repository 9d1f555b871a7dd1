// Package web serves the portfolio page and the HTMX fragments that keep it
// in sync with each visitor's state.
package web

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gin-gonic/gin"

	"github.com/Zachkp/portfolio/internal/mail"
	"github.com/Zachkp/portfolio/internal/projects"
	"github.com/Zachkp/portfolio/internal/session"
	"github.com/Zachkp/portfolio/internal/store"
)

//go:embed templates/*.html
var templatesFS embed.FS

//go:embed static
var staticFS embed.FS

// Store is the persistence the server needs.
type Store interface {
	Ping(ctx context.Context) error
	RecordVisit(ctx context.Context, v store.Visit) error
	RecentVisits(ctx context.Context, limit int) ([]store.Visit, error)
	PurgeVisitsBefore(ctx context.Context, cutoff time.Time) (int64, error)
	Stats(ctx context.Context, now time.Time) (*store.Stats, error)
	IncrementCounter(ctx context.Context, name string) (int64, error)
	Counter(ctx context.Context, name string) (int64, error)
	SaveContactMessage(ctx context.Context, m store.ContactMessage) (int64, error)
	MarkContactDelivered(ctx context.Context, id int64, at time.Time) error
	ContactMessages(ctx context.Context, limit int) ([]store.ContactMessage, error)
}

// Options configures a Server.
type Options struct {
	OwnerName        string
	ResumePath       string
	ImagesDir        string
	SessionTTL       time.Duration
	VisitorRetention time.Duration
	AdminUsername    string
	AdminPassword    string
	SecureCookies    bool
}

// Server holds the dependencies of every handler.
type Server struct {
	opts     Options
	store    Store
	sessions *session.Store
	mailer   mail.Sender
	gallery  *projects.Gallery
	admin    *adminAuth
	tracker  *visitorTracker
	tmpl     *template.Template
	now      func() time.Time
}

// New builds a server. The gallery shows projects.Defaults.
func New(opts Options, st Store, sessions *session.Store, mailer mail.Sender) (*Server, error) {
	tmpl, err := parseTemplates()
	if err != nil {
		return nil, err
	}
	admin, err := newAdminAuth(opts.AdminUsername, opts.AdminPassword)
	if err != nil {
		return nil, err
	}
	tracker, err := newVisitorTracker(st)
	if err != nil {
		return nil, err
	}
	if opts.VisitorRetention <= 0 {
		opts.VisitorRetention = 365 * 24 * time.Hour
	}
	return &Server{
		opts:     opts,
		store:    st,
		sessions: sessions,
		mailer:   mailer,
		gallery:  projects.NewGallery(projects.Defaults()),
		admin:    admin,
		tracker:  tracker,
		tmpl:     tmpl,
		now:      time.Now,
	}, nil
}

func parseTemplates() (*template.Template, error) {
	funcs := template.FuncMap{
		"comma":   humanize.Comma,
		"timeAgo": humanize.Time,
		"css":     func(s string) template.CSS { return template.CSS(s) },
	}
	tmpl, err := template.New("").Funcs(funcs).ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}
	return tmpl, nil
}

// Handler returns the gin engine with every route registered.
func (s *Server) Handler() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if gin.Mode() == gin.DebugMode {
		r.Use(gin.Logger())
	}
	r.SetHTMLTemplate(s.tmpl)

	static, _ := fs.Sub(staticFS, "static")
	r.StaticFS("/static", http.FS(static))
	if s.opts.ImagesDir != "" {
		r.Static("/images", s.opts.ImagesDir)
	}

	r.GET("/healthz", s.handleHealth)

	s.setupAdminRoutes(r)

	site := r.Group("/")
	site.Use(s.tracker.middleware(), s.sessionMiddleware())
	{
		site.GET("/", s.handleIndex)

		site.GET("/skills", s.handleSearchSkills)
		site.POST("/skills", s.handleAddSkill)
		site.POST("/skills/clear", s.handleClearSkills)
		site.PUT("/skills/:id", s.handleEditSkill)
		site.DELETE("/skills/:id", s.handleRemoveSkill)

		site.GET("/projects", s.handleProjects)
		site.POST("/projects/sort", s.handleToggleSort)

		site.POST("/preferences/dark-mode", s.handleToggleDarkMode)
		site.POST("/preferences", s.handleSetPreferences)

		site.GET("/resume", s.handleResumeDownload)
		site.GET("/resume/count", s.handleResumeCount)
		site.POST("/resume/count", s.handleResumeIncrement)

		site.GET("/contact-form", s.handleContactForm)
		site.POST("/contact", s.handleContact)

		site.GET("/privacy", func(c *gin.Context) {
			c.HTML(http.StatusOK, "privacy.html", gin.H{"title": "Privacy Policy"})
		})
	}
	return r
}

// PurgeOldVisits deletes visitor records older than the retention window.
func (s *Server) PurgeOldVisits(ctx context.Context) (int64, error) {
	return s.tracker.purge(ctx, s.now().Add(-s.opts.VisitorRetention))
}

func (s *Server) handleHealth(c *gin.Context) {
	if err := s.store.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// formValue reads key from the request body, falling back to the query
// string. htmx sends DELETE parameters in the URL.
func formValue(c *gin.Context, key string) string {
	if v, ok := c.GetPostForm(key); ok {
		return v
	}
	return c.Query(key)
}
