package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"oncolearn/internal/middleware"
	"oncolearn/internal/models"
	"oncolearn/internal/service"
)

func pathID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)[name], 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func queryCategoryID(r *http.Request) *int64 {
	raw := r.URL.Query().Get("category")
	if raw == "" {
		return nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil
	}
	return &id
}

func (h *Handlers) ListDocuments(w http.ResponseWriter, r *http.Request) {
	viewer := middleware.ProfileFromContext(r.Context())

	docs, err := h.ContentService.ListDocuments(r.Context(), viewer, queryCategoryID(r))
	if err != nil {
		HandleError(w, err)
		return
	}

	WriteSuccess(w, docs, http.StatusOK)
}

func (h *Handlers) GetDocument(w http.ResponseWriter, r *http.Request) {
	documentID, ok := pathID(r, "id")
	if !ok {
		WriteError(w, "invalid document id", http.StatusBadRequest)
		return
	}

	doc, err := h.ContentService.GetDocument(r.Context(), middleware.ProfileFromContext(r.Context()), documentID)
	if err != nil {
		HandleError(w, err)
		return
	}

	WriteSuccess(w, doc, http.StatusOK)
}

func (h *Handlers) UploadDocument(w http.ResponseWriter, r *http.Request) {
	owner := middleware.ProfileFromContext(r.Context())

	if err := r.ParseMultipartForm(h.Cfg.MaxUploadSize); err != nil {
		WriteError(w, "invalid multipart form", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		WriteError(w, "file is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	categoryID, _ := strconv.ParseInt(r.FormValue("categoryId"), 10, 64)
	year, _ := strconv.Atoi(r.FormValue("year"))

	doc, err := h.ContentService.UploadDocument(r.Context(), owner, service.UploadDocumentRequest{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		Journal:     r.FormValue("journal"),
		Year:        year,
		CategoryID:  categoryID,
	}, file, header.Size, header.Filename)
	if err != nil {
		HandleError(w, err)
		return
	}

	WriteSuccess(w, doc, http.StatusCreated)
}

type UpdateDocumentBody struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Journal     *string `json:"journal"`
	Year        *int    `json:"year"`
	CategoryID  *int64  `json:"categoryId"`
}

func (h *Handlers) UpdateDocument(w http.ResponseWriter, r *http.Request) {
	documentID, ok := pathID(r, "id")
	if !ok {
		WriteError(w, "invalid document id", http.StatusBadRequest)
		return
	}

	var req UpdateDocumentBody
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	doc, err := h.ContentService.UpdateDocument(r.Context(), middleware.ProfileFromContext(r.Context()), documentID, service.UpdateDocumentRequest{
		Title:       req.Title,
		Description: req.Description,
		Journal:     req.Journal,
		Year:        req.Year,
		CategoryID:  req.CategoryID,
	})
	if err != nil {
		HandleError(w, err)
		return
	}

	WriteSuccess(w, doc, http.StatusOK)
}

type SetStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

func (h *Handlers) SetDocumentStatus(w http.ResponseWriter, r *http.Request) {
	documentID, ok := pathID(r, "id")
	if !ok {
		WriteError(w, "invalid document id", http.StatusBadRequest)
		return
	}

	var req SetStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	status, err := models.ParseStatus(req.Status)
	if err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.ContentService.SetDocumentStatus(r.Context(), middleware.ProfileFromContext(r.Context()), documentID, status); err != nil {
		HandleError(w, err)
		return
	}

	WriteSuccess(w, map[string]string{"status": string(status)}, http.StatusOK)
}

func (h *Handlers) DeleteDocument(w http.ResponseWriter, r *http.Request) {
	documentID, ok := pathID(r, "id")
	if !ok {
		WriteError(w, "invalid document id", http.StatusBadRequest)
		return
	}

	if err := h.ContentService.DeleteDocument(r.Context(), middleware.ProfileFromContext(r.Context()), documentID); err != nil {
		HandleError(w, err)
		return
	}

	WriteSuccess(w, map[string]string{"status": "deleted"}, http.StatusOK)
}
