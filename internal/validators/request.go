package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/MKhiriev/go-recipe-share/models"
	"github.com/go-playground/validator/v10"
)

// Field scopes accepted by [RequestValidator.Validate].
const (
	// FieldRecipeRequired demands every descriptive recipe field on a
	// [models.RecipeRequest], as needed when a recipe is created.
	FieldRecipeRequired = "recipe_required"
)

// RequestValidator checks decoded request bodies against their `validate`
// struct tags. Field names in reported errors follow the JSON names.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator constructs a [RequestValidator] with the "role" rule
// registered.
func NewRequestValidator() Validator {
	validate := validator.New(validator.WithRequiredStructEnabled())

	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	// registration only fails for an empty tag or a nil function
	_ = validate.RegisterValidation("role", func(fl validator.FieldLevel) bool {
		return models.Role(fl.Field().String()).IsValid()
	})

	return &RequestValidator{validate: validate}
}

// Validate implements [Validator]. Every supported request is first checked
// against its struct tags; fields adds scope-specific rules on top.
//
// Returns a [*ValidationError] listing every violation, ErrUnsupportedType for
// values that are not requests, or ErrUnknownField for an unknown scope.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest, *models.RegisterRequest,
		models.LoginRequest, *models.LoginRequest,
		models.ResetPasswordRequest, *models.ResetPasswordRequest,
		models.ChangePasswordRequest, *models.ChangePasswordRequest,
		models.UpdateRoleRequest, *models.UpdateRoleRequest,
		models.RateRecipeRequest, *models.RateRecipeRequest:
		if len(fields) > 0 {
			return ErrUnknownField
		}
		return v.validateStruct(ctx, value)
	case models.RecipeRequest:
		return v.validateRecipeRequest(ctx, value, fields...)
	case *models.RecipeRequest:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateRecipeRequest(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *RequestValidator) validateRecipeRequest(ctx context.Context, request models.RecipeRequest, fields ...string) error {
	var missing []models.FieldError

	for _, f := range fields {
		switch f {
		case FieldRecipeRequired:
			required := []struct {
				name  string
				value *string
			}{
				{"title", request.Title},
				{"ingredients", request.Ingredients},
				{"steps", request.Steps},
				{"category", request.Category},
			}
			for _, r := range required {
				if r.value == nil || strings.TrimSpace(*r.value) == "" {
					missing = append(missing, models.FieldError{Field: r.name, Message: fieldLabel(r.name) + " is required"})
				}
			}
		default:
			return ErrUnknownField
		}
	}

	err := v.validateStruct(ctx, request)
	if err != nil && !errors.Is(err, ErrValidation) {
		return err
	}

	all := append(missing, FieldErrors(err)...)
	if len(all) > 0 {
		return &ValidationError{Fields: all}
	}
	return nil
}

func (v *RequestValidator) validateStruct(ctx context.Context, obj any) error {
	err := v.validate.StructCtx(ctx, obj)
	if err == nil {
		return nil
	}

	var invalid validator.ValidationErrors
	if !errors.As(err, &invalid) {
		return fmt.Errorf("%w: %w", ErrUnsupportedType, err)
	}

	result := &ValidationError{Fields: make([]models.FieldError, 0, len(invalid))}
	for _, fe := range invalid {
		result.Fields = append(result.Fields, models.FieldError{
			Field:   fe.Field(),
			Message: fieldMessage(fe),
		})
	}
	return result
}

// fieldMessage renders a human readable message for a failed rule.
func fieldMessage(fe validator.FieldError) string {
	label := fieldLabel(fe.Field())

	switch fe.Tag() {
	case "required":
		return label + " is required"
	case "email":
		return "Valid " + fe.Field() + " is required"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters", label, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", label, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", label, fe.Param())
	case "role":
		return "Invalid role specified"
	default:
		return fmt.Sprintf("%s is invalid", label)
	}
}

func fieldLabel(field string) string {
	if field == "" {
		return field
	}
	return strings.ToUpper(field[:1]) + field[1:]
}
