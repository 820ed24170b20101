package api

import (
	"time"

	"recipeshare/backend/model"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
)

// Cookie names the web client stores the session under. The client
// replays both on every authorized call.
const (
	cookieName  = "name"
	cookieToken = "token"
)

func setSessionCookies(c *gin.Context, name string, token model.Token) {
	maxAge := int(time.Until(token.Expiration).Seconds())
	secure := viper.GetBool("host.ssl.enabled")

	c.SetCookie(cookieName, name, maxAge, "/", "", secure, false)
	c.SetCookie(cookieToken, token.Token, maxAge, "/", "", secure, true)
}

func sessionCredentials(c *gin.Context) (name, token string, ok bool) {
	name, err := c.Cookie(cookieName)
	if err != nil || name == "" {
		return "", "", false
	}

	token, err = c.Cookie(cookieToken)
	if err != nil || token == "" {
		return "", "", false
	}

	return name, token, true
}
