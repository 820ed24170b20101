package api

import (
	"errors"
	"net/http"

	"recipeshare/backend/service"
	"recipeshare/backend/validators"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type signupBody struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

func (a *API) UserSignup(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	var data signupBody
	if err := c.ShouldBind(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid request body",
			"requestID": requestID,
		})

		zap.L().Debug("Can't bind request body", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if err := validators.NameValidator(data.Name); err != nil {
		zap.L().Debug("Invalid name", zap.Error(err), zap.String("requestID", requestID))

		c.JSON(http.StatusBadRequest, gin.H{
			"error":     err.Error(),
			"requestID": requestID,
		})
		return
	}

	if err := validators.PasswordValidator(data.Password); err != nil {
		zap.L().Debug("Invalid password", zap.Error(err), zap.String("requestID", requestID))

		c.JSON(http.StatusBadRequest, gin.H{
			"error":     err.Error(),
			"requestID": requestID,
		})
		return
	}

	token, err := a.Accounts.SignUp(c.Request.Context(), data.Name, data.Password)
	if err != nil {
		if errors.Is(err, service.ErrNameAlreadyTaken) {
			c.JSON(http.StatusConflict, gin.H{
				"error":     "This name is already taken. Please sign in or pick a different name",
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
