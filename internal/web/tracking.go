package web

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/portfolio/internal/store"
)

// visitorTracker records page views without keeping raw IP addresses.
type visitorTracker struct {
	store Store
	salt  string
}

func newVisitorTracker(st Store) (*visitorTracker, error) {
	salt, err := randomToken()
	if err != nil {
		return nil, err
	}
	return &visitorTracker{store: st, salt: salt}, nil
}

func randomToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generating token: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// hashIP returns a salted, truncated hash. The same IP hashes the same way
// until the process restarts.
func (t *visitorTracker) hashIP(ip string) string {
	sum := sha256.Sum256([]byte(ip + t.salt))
	return hex.EncodeToString(sum[:])[:16]
}

// untracked reports paths that never count as a page view.
func untracked(path string) bool {
	for _, prefix := range []string{"/static/", "/images/", "/admin/", "/favicon", "/privacy", "/healthz"} {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// middleware records full page loads. Fragment requests made by htmx, non-GET
// requests and visitors sending Do Not Track are skipped.
func (t *visitorTracker) middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		path := c.Request.URL.Path
		if c.Request.Method != http.MethodGet ||
			c.GetHeader("HX-Request") == "true" ||
			c.GetHeader("DNT") == "1" ||
			untracked(path) ||
			c.Writer.Status() >= http.StatusBadRequest {
			return
		}

		err := t.store.RecordVisit(c.Request.Context(), store.Visit{
			HashedIP:  t.hashIP(c.ClientIP()),
			UserAgent: c.GetHeader("User-Agent"),
			Path:      path,
			Timestamp: time.Now(),
		})
		if err != nil {
			slog.Error("recording visitor", "err", err)
		}
	}
}

// purge removes visits older than cutoff.
func (t *visitorTracker) purge(ctx context.Context, cutoff time.Time) (int64, error) {
	n, err := t.store.PurgeVisitsBefore(ctx, cutoff)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		slog.Info("privacy cleanup removed old visitor records", "count", n, "before", cutoff.Format(time.DateOnly))
	}
	return n, nil
}
