// Package web holds what every controller shares: page rendering with
// flash messages, redirects and the mapping from service errors to
// responses.
package web

import (
	"errors"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"strings"

	"github.com/Youssef-M-Salama/E-Commerce-Website/auth"
	"github.com/Youssef-M-Salama/E-Commerce-Website/filestore"
	"github.com/Youssef-M-Salama/E-Commerce-Website/services"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

const (
	FlashSuccess = "success"
	FlashError   = "error"
)

const genericError = "Something went wrong. Please try again."

// Env is handed to every handler constructor.
type Env struct {
	Sessions *auth.SessionStore
	Logger   *zap.Logger
}

// Render executes the named template with data plus the pending flash
// messages and the signed-in principals.
func (e *Env) Render(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["Success"] = e.Sessions.Flashes(c.Writer, c.Request, FlashSuccess)
	data["Errors"] = e.Sessions.Flashes(c.Writer, c.Request, FlashError)
	data["CustomerID"] = auth.CustomerID(c)
	data["AdminID"] = auth.AdminID(c)
	c.HTML(status, name, data)
}

// Redirect sends a 302 after queuing an optional flash message.
func (e *Env) Redirect(c *gin.Context, location, kind, message string) {
	if message != "" {
		if err := e.Sessions.AddFlash(c.Writer, c.Request, kind, message); err != nil {
			e.Logger.Warn("flash not saved", zap.Error(err))
		}
	}
	c.Redirect(http.StatusFound, location)
}

// Failed logs err when it is not a caller mistake and returns the status
// and message to show.
func (e *Env) Failed(c *gin.Context, err error, action string) (int, string) {
	status := Status(err)
	if status >= http.StatusInternalServerError {
		e.Logger.Error(action+" failed", zap.Error(err), zap.String("path", c.Request.URL.Path))
		_ = c.Error(err)
	}
	return status, Message(err)
}

// ParamID parses the :id route parameter.
func ParamID(c *gin.Context) (uint, bool) {
	return parseID(c.Param("id"))
}

// FormID parses a positive integer form field.
func FormID(c *gin.Context, field string) (uint, bool) {
	return parseID(c.PostForm(field))
}

// LocalPath returns raw when it is a path inside prefix on this site,
// otherwise fallback.
func LocalPath(raw, prefix, fallback string) string {
	if raw == "" || strings.HasPrefix(raw, "//") || strings.Contains(raw, "\\") {
		return fallback
	}
	u, err := url.Parse(raw)
	if err != nil || u.Scheme != "" || u.Host != "" || u.User != nil {
		return fallback
	}
	if cleaned := path.Clean(u.Path); cleaned != u.Path || !strings.HasPrefix(cleaned, prefix) {
		return fallback
	}
	return raw
}

func parseID(raw string) (uint, bool) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// Status maps a service error onto an HTTP status.
func Status(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, services.ErrValidation),
		errors.Is(err, services.ErrInvalidQuantity),
		errors.Is(err, filestore.ErrNoFile),
		errors.Is(err, filestore.ErrFileTooLarge),
		errors.Is(err, filestore.ErrExtensionNotAllowed):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, services.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, services.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrDuplicate), errors.Is(err, services.ErrCategoryInUse):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Message is the user-facing text for err.
func Message(err error) string {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		return verr.Message
	case errors.Is(err, services.ErrInvalidQuantity):
		return "Quantity must be between 1 and 99."
	case errors.Is(err, services.ErrInvalidCredentials):
		return "Incorrect email or password."
	case errors.Is(err, services.ErrCategoryInUse):
		return "Cannot delete category with products."
	case errors.Is(err, services.ErrForbidden):
		return "You are not allowed to do that."
	case errors.Is(err, services.ErrNotFound):
		return "The requested item was not found."
	case errors.Is(err, filestore.ErrNoFile):
		return "Please select an image."
	case errors.Is(err, filestore.ErrFileTooLarge):
		return "The image is too large."
	case errors.Is(err, filestore.ErrExtensionNotAllowed):
		return "Only image files of the allowed types can be uploaded."
	default:
		return genericError
	}
}

// BindMessage turns a gin binding error into a form message.
func BindMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		switch fe.Tag() {
		case "required":
			return fe.Field() + " is required."
		case "email":
			return "Invalid email address."
		case "max":
			return fe.Field() + " cannot exceed " + fe.Param() + " characters."
		case "min":
			return fe.Field() + " must be at least " + fe.Param() + " characters."
		}
	}
	return "Please check the form and try again."
}
