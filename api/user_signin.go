package api

import (
	"errors"
	"net/http"

	"recipeshare/backend/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type signinBody struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

func (a *API) UserSignin(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	var data signinBody
	if err := c.ShouldBind(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid request body",
			"requestID": requestID,
		})

		zap.L().Debug("Can't bind request body", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if data.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Name field can't be empty",
			"requestID": requestID,
		})
		return
	}

	if data.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Password field can't be empty",
			"requestID": requestID,
		})
		return
	}

	token, err := a.Accounts.SignIn(c.Request.Context(), data.Name, data.Password)
	if err != nil {
		// Deliberately the same message for an unknown name and a wrong
		// password
		if errors.Is(err, service.ErrWrongNameOrPassword) {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":     "Wrong name or password",
				"requestID": requestID,
			})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})
		return
	}

	setSessionCookies(c, data.Name, token)

	c.JSON(http.StatusOK, gin.H{
		"token":      token.Token,
		"expiration": token.Expiration,
	})
}
