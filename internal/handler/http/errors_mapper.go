package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-recipe-share/internal/app"
	"github.com/MKhiriev/go-recipe-share/internal/logger"
	"github.com/MKhiriev/go-recipe-share/internal/service"
	"github.com/MKhiriev/go-recipe-share/internal/store"
	"github.com/MKhiriev/go-recipe-share/internal/utils"
	"github.com/MKhiriev/go-recipe-share/internal/validators"
	"github.com/MKhiriev/go-recipe-share/models"
)

// errorResponse is the status and client message an error is mapped to.
type errorResponse struct {
	status  int
	message string
}

// errorStatusMap is matched with errors.Is in no particular order, so no
// two keys may appear in the same error chain with different responses.
var errorStatusMap = map[error]errorResponse{
	validators.ErrValidation: {http.StatusBadRequest, app.MsgValidationFailed},
	ErrInvalidJSON:           {http.StatusBadRequest, app.MsgInvalidJSON},
	ErrInvalidIdentifier:     {http.StatusBadRequest, app.MsgInvalidIdentifier},
	ErrInvalidPicture:        {http.StatusBadRequest, app.MsgInvalidPicture},

	// identity-lookup gate
	service.ErrNoToken:              {http.StatusUnauthorized, app.MsgNoToken},
	service.ErrTokenIsExpired:       {http.StatusUnauthorized, app.MsgTokenExpired},
	service.ErrTokenMalformed:       {http.StatusBadRequest, app.MsgInvalidToken},
	service.ErrAuthenticationFailed: {http.StatusUnauthorized, app.MsgAuthenticationFailed},
	service.ErrTokenUnspecified:     {http.StatusInternalServerError, app.MsgInternalServerError},
	service.ErrIdentityLookupFailed: {http.StatusInternalServerError, app.MsgInternalServerError},

	// claim-trust gate
	service.ErrAccessTokenMissing:          {http.StatusUnauthorized, app.MsgAccessTokenMissing},
	service.ErrInvalidOrExpiredAccessToken: {http.StatusForbidden, app.MsgInvalidOrExpiredAccessToken},

	service.ErrInsufficientPermissions: {http.StatusForbidden, app.MsgInsufficientPermissions},

	service.ErrInvalidCredentials:    {http.StatusUnauthorized, app.MsgInvalidCredentials},
	service.ErrEmailNotFound:         {http.StatusNotFound, app.MsgEmailNotFound},
	service.ErrInvalidOrExpiredToken: {http.StatusBadRequest, app.MsgInvalidOrExpiredReset},
	service.ErrNotRecipeOwner:        {http.StatusForbidden, app.MsgNotRecipeOwner},
	service.ErrNothingToUpdate:       {http.StatusBadRequest, app.MsgNothingToUpdate},
	service.ErrInvalidRating:         {http.StatusBadRequest, app.MsgInvalidRating},
	service.ErrInvalidRole:           {http.StatusBadRequest, app.MsgInvalidRole},
	service.ErrVersionIsNotSpecified: {http.StatusBadRequest, app.MsgVersionIsNotSpecified},

	store.ErrEmailAlreadyExists:  {http.StatusConflict, app.MsgEmailAlreadyExists},
	store.ErrNoUserWasFound:      {http.StatusNotFound, app.MsgUserNotFound},
	store.ErrRecipeNotFound:      {http.StatusNotFound, app.MsgRecipeNotFound},
	store.ErrConstraintViolation: {http.StatusBadRequest, app.MsgConstraintViolation},
}

// responseFromError returns the status and message for err. Unknown errors,
// including every low-level store failure, become 500.
func responseFromError(err error) errorResponse {
	for target, response := range errorStatusMap {
		if errors.Is(err, target) {
			return response
		}
	}
	return errorResponse{http.StatusInternalServerError, app.MsgInternalServerError}
}

func statusFromError(err error) int {
	return responseFromError(err).status
}

// writeError logs err and answers with its mapped status and a JSON
// message. Validation failures carry their field errors.
func writeError(w http.ResponseWriter, r *http.Request, funcName string, err error) {
	response := responseFromError(err)

	event := logger.FromRequest(r).Info()
	if response.status >= http.StatusInternalServerError {
		event = logger.FromRequest(r).Error()
	}
	event.Err(err).Str("func", funcName).Int("status", response.status).Msg("request failed")

	writeMessage(w, response.status, models.MessageResponse{
		Message: response.message,
		Errors:  validators.FieldErrors(err),
	})
}

func writeMessage(w http.ResponseWriter, status int, body any) {
	// the status is already sent when encoding fails
	_, _ = utils.WriteJSON(w, body, status)
}
