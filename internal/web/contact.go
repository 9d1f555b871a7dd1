package web

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/portfolio/internal/mail"
	"github.com/Zachkp/portfolio/internal/store"
)

type contactForm struct {
	FullName string `form:"fullName" binding:"required,max=100"`
	Email    string `form:"email" binding:"required,email,max=254"`
	Message  string `form:"message" binding:"required,max=5000"`
}

func (s *Server) handleContactForm(c *gin.Context) {
	c.HTML(http.StatusOK, "contact.html", gin.H{
		"title": "Contact Me",
	})
}

// handleContact stores the message, then mails it. A stored but undelivered
// message still reports failure to the visitor.
func (s *Server) handleContact(c *gin.Context) {
	var form contactForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusOK, "contact-error.html", gin.H{
			"error": "Please fill in your name, a valid email address and a message.",
		})
		return
	}

	ctx := c.Request.Context()
	id, err := s.store.SaveContactMessage(ctx, store.ContactMessage{
		Name:      form.FullName,
		Email:     form.Email,
		Message:   form.Message,
		CreatedAt: s.now(),
	})
	if err != nil {
		slog.Error("saving contact message", "err", err)
		c.HTML(http.StatusOK, "contact-error.html", gin.H{
			"error": "Sorry, there was an error sending your message. Please try again later.",
		})
		return
	}

	err = s.mailer.Send(ctx, mail.Contact{Name: form.FullName, Email: form.Email, Message: form.Message})
	if err != nil {
		if errors.Is(err, mail.ErrNotConfigured) {
			slog.Warn("contact message stored but SMTP is not configured", "id", id)
		} else {
			slog.Error("sending contact email", "id", id, "err", err)
		}
		c.HTML(http.StatusOK, "contact-error.html", gin.H{
			"error": "Sorry, there was an error sending your message. Please try again later.",
		})
		return
	}

	if err := s.store.MarkContactDelivered(ctx, id, s.now()); err != nil {
		slog.Error("marking contact message delivered", "id", id, "err", err)
	}
	c.HTML(http.StatusOK, "contact-success.html", gin.H{
		"success": "Thank you for your message! I'll get back to you soon.",
	})
}
