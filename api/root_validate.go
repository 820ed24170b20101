package api

import (
	"errors"
	"net/http"

	"recipeshare/backend/service"

	"github.com/gin-gonic/gin"
)

// Validate checks the session cookies against the stored token list so
// the client can tell whether it is still signed in.
func (a *API) Validate(c *gin.Context) {
	name, token, ok := sessionCredentials(c)
	if !ok {
		c.Status(http.StatusUnauthorized)
		return
	}

	if err := a.Accounts.Authorize(c.Request.Context(), name, token); err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.Status(http.StatusUnauthorized)
			return
		}

		c.Status(http.StatusInternalServerError)
		return
	}

	c.Status(http.StatusOK)
}
