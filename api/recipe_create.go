package api

import (
	"errors"
	"net/http"

	"recipeshare/backend/model"
	"recipeshare/backend/service"
	"recipeshare/backend/validators"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type recipeBody struct {
	Name         string             `json:"name"`
	IconURL      string             `json:"icon_url"`
	PriceLevel   uint8              `json:"price_level"`
	HealthyLevel uint8              `json:"healthy_level"`
	Instructions []string           `json:"instructions"`
	Ingredients  []model.Ingredient `json:"ingredients"`
	Tools        []model.Tool       `json:"tools"`
}

func (a *API) RecipeCreate(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	name, token, ok := sessionCredentials(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error":     "Invalid credentials",
			"requestID": requestID,
		})
		return
	}

	var data recipeBody
	if err := c.ShouldBind(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid request body",
			"requestID": requestID,
		})

		zap.L().Debug("Can't bind request body", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if err := validators.RecipeValidator(data.Name, data.PriceLevel, data.HealthyLevel); err != nil {
		zap.L().Debug("Invalid recipe", zap.Error(err), zap.String("requestID", requestID))

		c.JSON(http.StatusBadRequest, gin.H{
			"error":     err.Error(),
			"requestID": requestID,
		})
		return
	}

	err := a.Recipes.Create(c.Request.Context(), name, token, service.RecipeDraft{
		Name:         data.Name,
		IconURL:      data.IconURL,
		PriceLevel:   data.PriceLevel,
		HealthyLevel: data.HealthyLevel,
		Instructions: data.Instructions,
		Ingredients:  data.Ingredients,
		Tools:        data.Tools,
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":     "Invalid credentials",
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

	c.Status(http.StatusCreated)
}
