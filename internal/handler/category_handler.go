package handlers

import (
	"encoding/json"
	"net/http"

	"oncolearn/internal/middleware"
)

func (h *Handlers) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.CategoryService.List(r.Context())
	if err != nil {
		HandleError(w, err)
		return
	}

	WriteSuccess(w, categories, http.StatusOK)
}

type CategoryRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

func (h *Handlers) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req CategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	category, err := h.CategoryService.Create(r.Context(), middleware.ProfileFromContext(r.Context()), req.Name, req.Description)
	if err != nil {
		HandleError(w, err)
		return
	}

	WriteSuccess(w, category, http.StatusCreated)
}

func (h *Handlers) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, ok := pathID(r, "id")
	if !ok {
		WriteError(w, "invalid category id", http.StatusBadRequest)
		return
	}

	var req CategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	category, err := h.CategoryService.Update(r.Context(), middleware.ProfileFromContext(r.Context()), categoryID, req.Name, req.Description)
	if err != nil {
		HandleError(w, err)
		return
	}

	WriteSuccess(w, category, http.StatusOK)
}

func (h *Handlers) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, ok := pathID(r, "id")
	if !ok {
		WriteError(w, "invalid category id", http.StatusBadRequest)
		return
	}

	if err := h.CategoryService.Delete(r.Context(), middleware.ProfileFromContext(r.Context()), categoryID); err != nil {
		HandleError(w, err)
		return
	}

	WriteSuccess(w, map[string]string{"status": "deleted"}, http.StatusOK)
}
