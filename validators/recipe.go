package validators

import "errors"

var (
	ErrRecipeNameEmpty   = errors.New("no recipe name provided")
	ErrRecipeNameTooLong = errors.New("recipe name is too long")
	ErrLevelOutOfRange   = errors.New("price and healthy levels must be between 0 and 4")
)

// RecipeValidator checks the caller-controlled recipe fields. The bounds
// mirror what the submission form enforces client-side.
func RecipeValidator(name string, priceLevel, healthyLevel uint8) error {
	if name == "" {
		return ErrRecipeNameEmpty
	}

	if len(name) > 256 {
		return ErrRecipeNameTooLong
	}

	if priceLevel > 4 || healthyLevel > 4 {
		return ErrLevelOutOfRange
	}

	return nil
}
