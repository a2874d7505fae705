package handlers

import (
	"encoding/json"
	"net/http"

	"oncolearn/internal/middleware"
	"oncolearn/internal/models"
	"oncolearn/internal/service"
)

func (h *Handlers) GetUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(r, "id")
	if !ok {
		WriteError(w, "invalid user id", http.StatusBadRequest)
		return
	}

	profile, err := h.UserService.Get(r.Context(), userID)
	if err != nil {
		HandleError(w, err)
		return
	}

	// The route is public so author pages work, but the email stays between
	// the account holder and the administrators.
	viewer := middleware.ProfileFromContext(r.Context())
	if viewer == nil || (viewer.ID != userID && !service.IsAdmin(viewer)) {
		profile.Email = ""
	}

	WriteSuccess(w, profile, http.StatusOK)
}

func (h *Handlers) ListUsers(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.UserService.List(r.Context(), middleware.ProfileFromContext(r.Context()))
	if err != nil {
		HandleError(w, err)
		return
	}

	WriteSuccess(w, profiles, http.StatusOK)
}

type SetRoleRequest struct {
	Role string `json:"role" validate:"required"`
}

func (h *Handlers) SetUserRole(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(r, "id")
	if !ok {
		WriteError(w, "invalid user id", http.StatusBadRequest)
		return
	}

	var req SetRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	role, err := models.ParseRole(req.Role)
	if err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.UserService.SetRole(r.Context(), middleware.ProfileFromContext(r.Context()), userID, role); err != nil {
		HandleError(w, err)
		return
	}

	WriteSuccess(w, map[string]string{"role": string(role)}, http.StatusOK)
}

func (h *Handlers) DeleteUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(r, "id")
	if !ok {
		WriteError(w, "invalid user id", http.StatusBadRequest)
		return
	}

	if err := h.UserService.Delete(r.Context(), middleware.ProfileFromContext(r.Context()), userID); err != nil {
		HandleError(w, err)
		return
	}

	WriteSuccess(w, map[string]string{"status": "deleted"}, http.StatusOK)
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, map[string]string{"status": "ok"}, http.StatusOK)
}
