package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Recipe struct {
	Name         string               `bson:"name" json:"name"`
	Instructions []string             `bson:"instructions" json:"instructions"`
	IconURL      string               `bson:"icon_url" json:"icon_url"`
	PriceLevel   uint8                `bson:"price_level" json:"price_level"`
	HealthyLevel uint8                `bson:"healthy_level" json:"healthy_level"`
	Comments     []Comment            `bson:"comment" json:"comment"`
	Notes        []Note               `bson:"notes" json:"notes"`
	Ingredients  []Ingredient         `bson:"ingredients" json:"ingredients"`
	Tools        []Tool               `bson:"tools" json:"tools"`
	Categories   []primitive.ObjectID `bson:"categories" json:"categories"`
}

type Ingredient struct {
	Name     string `bson:"name" json:"name"`
	IconURL  string `bson:"icon_url" json:"icon_url"`
	Quantity string `bson:"quantity" json:"quantity"`
}

type Tool struct {
	Name    string `bson:"name" json:"name"`
	IconURL string `bson:"icon_url" json:"icon_url"`
}

type Comment struct {
	Content string             `bson:"content" json:"content"`
	Date    time.Time          `bson:"date" json:"date"`
	User    primitive.ObjectID `bson:"user" json:"user"`
}

type Note struct {
	Note uint8              `bson:"note" json:"note"`
	User primitive.ObjectID `bson:"user" json:"user"`
}

// RecipeInfo is the projection returned by the public listing.
type RecipeInfo struct {
	Name    string `bson:"name" json:"name"`
	IconURL string `bson:"icon_url" json:"icon_url"`
}
