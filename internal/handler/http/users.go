package http

import (
	"net/http"

	"github.com/MKhiriev/go-recipe-share/internal/app"
	"github.com/MKhiriev/go-recipe-share/models"
)

func (h *Handler) getUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.services.UserService.GetUsers(r.Context())
	if err != nil {
		writeError(w, r, "*Handler.getUsers", err)
		return
	}
	if users == nil {
		users = []models.User{}
	}

	writeMessage(w, http.StatusOK, models.UsersResponse{Users: users})
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	userID, err := idParam(r, "id")
	if err != nil {
		writeError(w, r, "*Handler.getUser", err)
		return
	}

	user, err := h.services.UserService.GetUser(r.Context(), userID)
	if err != nil {
		writeError(w, r, "*Handler.getUser", err)
		return
	}

	writeMessage(w, http.StatusOK, models.UserResponse{User: user})
}

func (h *Handler) updateUserRole(w http.ResponseWriter, r *http.Request) {
	userID, err := idParam(r, "id")
	if err != nil {
		writeError(w, r, "*Handler.updateUserRole", err)
		return
	}

	var req models.UpdateRoleRequest
	if err = decodeJSON(r, &req); err != nil {
		writeError(w, r, "*Handler.updateUserRole", err)
		return
	}

	user, err := h.services.UserService.UpdateUserRole(r.Context(), userID, req.Role)
	if err != nil {
		writeError(w, r, "*Handler.updateUserRole", err)
		return
	}

	writeMessage(w, http.StatusOK, models.UserResponse{Message: app.MsgRoleUpdated, User: user})
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	userID, err := idParam(r, "id")
	if err != nil {
		writeError(w, r, "*Handler.deleteUser", err)
		return
	}

	if err = h.services.UserService.DeleteUser(r.Context(), userID); err != nil {
		writeError(w, r, "*Handler.deleteUser", err)
		return
	}

	writeMessage(w, http.StatusOK, models.MessageResponse{Message: app.MsgUserDeleted})
}
