package api

import (
	"net/http"
	"strconv"

	"recipeshare/backend/model"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
)

func (a *API) RecipeList(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	// The config value is both the default and the cap for the page size
	limit := viper.GetInt("recipes.list_limit")

	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":     "Invalid limit",
				"requestID": requestID,
			})
			return
		}

		if parsed < limit {
			limit = parsed
		}
	}

	recipes, err := a.Recipes.List(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})
		return
	}

	infos := make([]model.RecipeInfo, 0, len(recipes))
	for _, r := range recipes {
		infos = append(infos, model.RecipeInfo{
			Name:    r.Name,
			IconURL: r.IconURL,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"recipes": infos,
	})
}
