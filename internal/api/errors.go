package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"socialmedia/internal/apperr"
)

// statusFor maps error kinds onto HTTP statuses. A failed lookup answers 401
// because the only lookup that reaches a client unmasked is login.
func statusFor(kind apperr.Kind) int {
	switch kind {
	case apperr.KindInvalidRequest:
		return http.StatusBadRequest
	case apperr.KindDuplicateResource:
		return http.StatusConflict
	case apperr.KindResourceNotFound:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes the error message as a plain-text body. Errors without
// a kind are logged and hidden from the client.
func (h *Handler) respondError(c *gin.Context, err error) {
	kind := apperr.KindOf(err)
	status := statusFor(kind)
	if kind == apperr.KindUnknown {
		_ = c.Error(err)
		h.log.Error().Err(err).Str("route", c.FullPath()).Msg("request failed")
		c.String(status, "Internal server error")
		return
	}
	c.String(status, err.Error())
}

func (h *Handler) bindJSON(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		c.String(http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}

func (h *Handler) bindURI(c *gin.Context, obj any) bool {
	if err := c.ShouldBindUri(obj); err != nil {
		c.String(http.StatusBadRequest, "Invalid path parameter")
		return false
	}
	return true
}
