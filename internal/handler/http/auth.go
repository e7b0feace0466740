package http

import (
	"net/http"

	"github.com/MKhiriev/go-recipe-share/internal/app"
	"github.com/MKhiriev/go-recipe-share/internal/logger"
	"github.com/MKhiriev/go-recipe-share/internal/utils"
	"github.com/MKhiriev/go-recipe-share/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, "*Handler.register", err)
		return
	}

	registeredUser, err := h.services.AuthService.Register(r.Context(), req)
	if err != nil {
		writeError(w, r, "*Handler.register", err)
		return
	}

	logger.FromRequest(r).Info().Int64("id", registeredUser.UserID).Msg("user registered")
	writeMessage(w, http.StatusCreated, models.UserResponse{Message: app.MsgUserRegistered, User: registeredUser})
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, "*Handler.login", err)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		writeError(w, r, "*Handler.login", err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		writeError(w, r, "*Handler.login", err)
		return
	}

	logger.FromRequest(r).Debug().Int64("id", foundUser.UserID).Msg("user successfully logged in")
	writeMessage(w, http.StatusOK, models.LoginResponse{Token: token.SignedString, User: foundUser})
}

func (h *Handler) requestPasswordReset(w http.ResponseWriter, r *http.Request) {
	var req models.ResetPasswordRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, "*Handler.requestPasswordReset", err)
		return
	}

	if err := h.services.PasswordResetService.RequestReset(r.Context(), req.Email); err != nil {
		writeError(w, r, "*Handler.requestPasswordReset", err)
		return
	}

	writeMessage(w, http.StatusOK, models.MessageResponse{Message: app.MsgResetTokenSent})
}

func (h *Handler) verifyResetToken(w http.ResponseWriter, r *http.Request) {
	if err := h.services.PasswordResetService.VerifyToken(r.Context(), chi.URLParam(r, "token")); err != nil {
		writeError(w, r, "*Handler.verifyResetToken", err)
		return
	}

	writeMessage(w, http.StatusOK, models.MessageResponse{Message: app.MsgResetTokenValid})
}

func (h *Handler) resetPassword(w http.ResponseWriter, r *http.Request) {
	var req models.ChangePasswordRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, "*Handler.resetPassword", err)
		return
	}

	err := h.services.PasswordResetService.ChangePassword(r.Context(), chi.URLParam(r, "token"), req.Password)
	if err != nil {
		writeError(w, r, "*Handler.resetPassword", err)
		return
	}

	writeMessage(w, http.StatusOK, models.MessageResponse{Message: app.MsgPasswordReset})
}

// me echoes the identity attached by the claim-trusting gate.
func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	identity, _ := utils.GetIdentityFromContext(r.Context())
	writeMessage(w, http.StatusOK, models.IdentityResponse{User: identity})
}
