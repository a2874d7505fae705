package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"oncolearn/internal/middleware"
	"oncolearn/internal/models"
	"oncolearn/internal/repository"
)

func contentTypeFromPath(r *http.Request) (models.ContentType, bool) {
	ct, err := models.ParseContentType(mux.Vars(r)["contentType"])
	if err != nil {
		return "", false
	}
	return ct, true
}

func (h *Handlers) ListComments(w http.ResponseWriter, r *http.Request) {
	contentType, ok := contentTypeFromPath(r)
	if !ok {
		WriteError(w, "invalid content type", http.StatusBadRequest)
		return
	}

	contentID, ok := pathID(r, "id")
	if !ok {
		WriteError(w, "invalid content id", http.StatusBadRequest)
		return
	}

	comments, err := h.CommentService.ListByContent(r.Context(), middleware.ProfileFromContext(r.Context()), contentType, contentID)
	if err != nil {
		HandleError(w, err)
		return
	}

	WriteSuccess(w, comments, http.StatusOK)
}

type AddCommentRequest struct {
	Body string `json:"body" validate:"required"`
}

func (h *Handlers) AddComment(w http.ResponseWriter, r *http.Request) {
	contentType, ok := contentTypeFromPath(r)
	if !ok {
		WriteError(w, "invalid content type", http.StatusBadRequest)
		return
	}

	contentID, ok := pathID(r, "id")
	if !ok {
		WriteError(w, "invalid content id", http.StatusBadRequest)
		return
	}

	var req AddCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	comment, err := h.CommentService.AddComment(r.Context(), middleware.ProfileFromContext(r.Context()), contentType, contentID, req.Body)
	if err != nil {
		HandleError(w, err)
		return
	}

	WriteSuccess(w, comment, http.StatusCreated)
}

type AddGuestCommentRequest struct {
	GuestName string `json:"guestName" validate:"required"`
	GuestRole string `json:"guestRole" validate:"required,oneof=user doctor"`
	Body      string `json:"body" validate:"required"`
}

func (h *Handlers) AddGuestComment(w http.ResponseWriter, r *http.Request) {
	contentType, ok := contentTypeFromPath(r)
	if !ok {
		WriteError(w, "invalid content type", http.StatusBadRequest)
		return
	}

	contentID, ok := pathID(r, "id")
	if !ok {
		WriteError(w, "invalid content id", http.StatusBadRequest)
		return
	}

	var req AddGuestCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	comment, err := h.CommentService.AddGuestComment(r.Context(), req.GuestName, models.Role(req.GuestRole), contentType, contentID, req.Body)
	if err != nil {
		HandleError(w, err)
		return
	}

	WriteSuccess(w, comment, http.StatusCreated)
}

func (h *Handlers) ModerateComments(w http.ResponseWriter, r *http.Request) {
	filter := repository.CommentFilter{
		AuthorType: r.URL.Query().Get("authorType"),
		Search:     r.URL.Query().Get("q"),
	}

	comments, err := h.CommentService.ListForModeration(r.Context(), middleware.ProfileFromContext(r.Context()), filter)
	if err != nil {
		HandleError(w, err)
		return
	}

	WriteSuccess(w, comments, http.StatusOK)
}

func (h *Handlers) DeleteComment(w http.ResponseWriter, r *http.Request) {
	commentID, ok := pathID(r, "id")
	if !ok {
		WriteError(w, "invalid comment id", http.StatusBadRequest)
		return
	}

	if err := h.CommentService.Delete(r.Context(), middleware.ProfileFromContext(r.Context()), commentID); err != nil {
		HandleError(w, err)
		return
	}

	WriteSuccess(w, map[string]string{"status": "deleted"}, http.StatusOK)
}
