package controller

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	apperrors "github.com/uncode/videojuegos/internal/errors"
	"github.com/uncode/videojuegos/internal/middleware"
)

const (
	flashSuccess = "success"
	flashError   = "error"
)

// addFlash stores a one-shot message that the next rendered page will show
func addFlash(c *gin.Context, kind, message string) {
	session := sessions.Default(c)
	session.AddFlash(message, kind)
	if err := session.Save(); err != nil {
		middleware.GetLoggerFromContext(c).Error("Failed to save flash message", err)
	}
}

// render writes an HTML page, merging any pending flash messages into data.
// A message already present in data wins over a flash of the same kind.
func render(c *gin.Context, status int, name string, data gin.H) {
	session := sessions.Default(c)
	consumed := false
	for _, kind := range []string{flashSuccess, flashError} {
		flashes := session.Flashes(kind)
		if len(flashes) == 0 {
			continue
		}
		consumed = true
		if _, ok := data[kind]; !ok {
			data[kind] = flashes[len(flashes)-1]
		}
	}
	if consumed {
		if err := session.Save(); err != nil {
			middleware.GetLoggerFromContext(c).Error("Failed to clear flash messages", err)
		}
	}

	c.HTML(status, name, data)
}

// bindForm binds the posted form into form. Fields that fail to bind stay
// empty and are reported by validation, so the error is only logged.
func bindForm(c *gin.Context, form interface{}) {
	if err := c.ShouldBind(form); err != nil {
		middleware.GetLoggerFromContext(c).Warn("Invalid form submission", map[string]interface{}{
			"path":         c.FullPath(),
			"content_type": c.ContentType(),
			"error":        err.Error(),
		})
	}
}

func redirect(c *gin.Context, location string) {
	c.Redirect(http.StatusFound, location)
}

// errorMessage returns the message to show for err and logs anything that is
// not a plain domain rejection.
func errorMessage(c *gin.Context, err error) string {
	info := apperrors.ParseError(err)
	if info.Code == apperrors.CodeUnexpected {
		middleware.GetLoggerFromContext(c).Error("Unexpected error", err)
	}
	return info.Message
}
