package web

import (
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/portfolio/internal/store"
)

func (s *Server) resumeAvailable() bool {
	if s.opts.ResumePath == "" {
		return false
	}
	info, err := os.Stat(s.opts.ResumePath)
	return err == nil && !info.IsDir()
}

// handleResumeDownload counts the download and serves the file.
func (s *Server) handleResumeDownload(c *gin.Context) {
	if !s.resumeAvailable() {
		c.String(http.StatusNotFound, "resume not available")
		return
	}
	if _, err := s.store.IncrementCounter(c.Request.Context(), store.CounterResumeDownloads); err != nil {
		slog.Error("counting resume download", "err", err)
	}
	c.FileAttachment(s.opts.ResumePath, filepath.Base(s.opts.ResumePath))
}

func (s *Server) handleResumeCount(c *gin.Context) {
	n, err := s.store.Counter(c.Request.Context(), store.CounterResumeDownloads)
	if err != nil {
		slog.Error("reading resume downloads", "err", err)
		c.Status(http.StatusInternalServerError)
		return
	}
	c.HTML(http.StatusOK, "download-count.html", n)
}

// handleResumeIncrement counts a download when no file is served, for
// pages that only show the counter.
func (s *Server) handleResumeIncrement(c *gin.Context) {
	n, err := s.store.IncrementCounter(c.Request.Context(), store.CounterResumeDownloads)
	if err != nil {
		slog.Error("counting resume download", "err", err)
		c.Status(http.StatusInternalServerError)
		return
	}
	c.HTML(http.StatusOK, "download-count.html", n)
}
