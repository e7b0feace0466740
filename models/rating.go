package models

import "time"

const (
	MinRating = 1
	MaxRating = 5
)

// Rating is a single score given by a user to a recipe.
type Rating struct {
	RatingID  int64     `json:"id"`
	UserID    int64     `json:"userId"`
	RecipeID  int64     `json:"recipeId"`
	Rating    int       `json:"rating"`
	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the Rating model.
func (r Rating) TableName() string {
	return "ratings"
}
