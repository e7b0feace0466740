package models

// MessageResponse is the generic JSON envelope for status messages and errors.
type MessageResponse struct {
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// FieldError describes a single failed validation rule.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// UserResponse wraps a single user record.
type UserResponse struct {
	Message string `json:"message,omitempty"`
	User    User   `json:"user"`
}

// UsersResponse wraps a user listing.
type UsersResponse struct {
	Users []User `json:"users"`
}

// LoginResponse is returned by a successful login.
type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// IdentityResponse describes the caller as seen by the authorization gate.
type IdentityResponse struct {
	User Identity `json:"user"`
}

// RecipeResponse wraps a single recipe.
type RecipeResponse struct {
	Message string `json:"message,omitempty"`
	Recipe  Recipe `json:"recipe"`
}

// RecipesResponse wraps a recipe listing.
type RecipesResponse struct {
	Recipes []Recipe `json:"recipes"`
}

// RatingResponse is returned after a recipe has been rated.
type RatingResponse struct {
	Message       string  `json:"message"`
	AverageRating float64 `json:"averageRating"`
}

// ShareLinksResponse wraps generated share links.
type ShareLinksResponse struct {
	Message    string     `json:"message"`
	ShareLinks ShareLinks `json:"shareLinks"`
}
