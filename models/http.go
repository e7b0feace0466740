package models

// RegisterRequest is the body of POST /api/auth/register.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"min=6"`
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ResetPasswordRequest is the body of POST /api/auth/reset-password.
type ResetPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ChangePasswordRequest is the body of POST /api/auth/reset/{token}.
type ChangePasswordRequest struct {
	Password string `json:"password" validate:"min=6"`
}

// UpdateRoleRequest is the body of PUT /api/users/{id}/role.
type UpdateRoleRequest struct {
	Role Role `json:"role" validate:"role"`
}

// RateRecipeRequest is the body of POST /api/recipes/{id}/rate.
type RateRecipeRequest struct {
	Rating int `json:"rating" validate:"min=1,max=5"`
}

// RecipeRequest is the body of recipe create and update requests. Pointer
// fields distinguish "absent" from "empty" for partial updates.
type RecipeRequest struct {
	Title       *string `json:"title" validate:"omitempty,min=1"`
	Ingredients *string `json:"ingredients" validate:"omitempty,min=1"`
	Steps       *string `json:"steps" validate:"omitempty,min=1"`
	Category    *string `json:"category" validate:"omitempty,min=1"`
	IsApproved  *bool   `json:"isApproved"`
}
