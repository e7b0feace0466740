package models

import (
	"io"
	"time"
)

// Recipe is a user-submitted recipe.
type Recipe struct {
	RecipeID    int64   `json:"id"`
	Title       string  `json:"title"`
	Picture     *string `json:"picture"`
	Ingredients string  `json:"ingredients"`
	Steps       string  `json:"steps"`
	Category    string  `json:"category"`

	// Rating is the average of all ratings submitted for the recipe.
	Rating     float64 `json:"rating"`
	IsApproved bool    `json:"isApproved"`

	// CreatedBy is the id of the user who submitted the recipe.
	CreatedBy int64 `json:"createdBy"`

	// Author is populated by read queries that join the users table.
	Author *Author `json:"User,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the Recipe model.
func (r Recipe) TableName() string {
	return "recipes"
}

// RecipeFilter narrows a recipe listing. Empty fields are ignored.
type RecipeFilter struct {
	// Name is matched case-insensitively against the title.
	Name string
	// Ingredients is matched case-insensitively against the ingredients.
	Ingredients string
	// Category must match exactly.
	Category string
	// CreatedBy restricts the result to a single author when non-zero.
	CreatedBy int64
}

// RecipeUpdate carries a partial update. Nil fields are left unchanged.
type RecipeUpdate struct {
	RecipeID    int64
	Title       *string
	Picture     *string
	Ingredients *string
	Steps       *string
	Category    *string
	IsApproved  *bool
}

// IsEmpty reports whether the update changes nothing.
func (u RecipeUpdate) IsEmpty() bool {
	return u.Title == nil && u.Picture == nil && u.Ingredients == nil &&
		u.Steps == nil && u.Category == nil && u.IsApproved == nil
}

// ShareLinks holds social network URLs pointing at a recipe.
type ShareLinks struct {
	Facebook string `json:"facebook"`
	Twitter  string `json:"twitter"`
	WhatsApp string `json:"whatsapp"`
}

// PictureUpload is an uploaded picture on its way to picture storage.
type PictureUpload struct {
	FileName    string
	ContentType string
	Content     io.Reader
}
