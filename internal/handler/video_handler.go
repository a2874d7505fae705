package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"oncolearn/internal/middleware"
	"oncolearn/internal/models"
	"oncolearn/internal/service"
)

func (h *Handlers) ListVideos(w http.ResponseWriter, r *http.Request) {
	viewer := middleware.ProfileFromContext(r.Context())

	videos, err := h.ContentService.ListVideos(r.Context(), viewer, queryCategoryID(r))
	if err != nil {
		HandleError(w, err)
		return
	}

	WriteSuccess(w, videos, http.StatusOK)
}

func (h *Handlers) GetVideo(w http.ResponseWriter, r *http.Request) {
	videoID, ok := pathID(r, "id")
	if !ok {
		WriteError(w, "invalid video id", http.StatusBadRequest)
		return
	}

	video, err := h.ContentService.GetVideo(r.Context(), middleware.ProfileFromContext(r.Context()), videoID)
	if err != nil {
		HandleError(w, err)
		return
	}

	WriteSuccess(w, video, http.StatusOK)
}

func (h *Handlers) UploadVideo(w http.ResponseWriter, r *http.Request) {
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

	video, err := h.ContentService.UploadVideo(r.Context(), owner, service.UploadVideoRequest{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		CategoryID:  categoryID,
	}, file, header.Size, header.Filename)
	if err != nil {
		HandleError(w, err)
		return
	}

	WriteSuccess(w, video, http.StatusCreated)
}

type UpdateVideoBody struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	CategoryID  *int64  `json:"categoryId"`
}

func (h *Handlers) UpdateVideo(w http.ResponseWriter, r *http.Request) {
	videoID, ok := pathID(r, "id")
	if !ok {
		WriteError(w, "invalid video id", http.StatusBadRequest)
		return
	}

	var req UpdateVideoBody
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	video, err := h.ContentService.UpdateVideo(r.Context(), middleware.ProfileFromContext(r.Context()), videoID, service.UpdateVideoRequest{
		Title:       req.Title,
		Description: req.Description,
		CategoryID:  req.CategoryID,
	})
	if err != nil {
		HandleError(w, err)
		return
	}

	WriteSuccess(w, video, http.StatusOK)
}

func (h *Handlers) SetVideoStatus(w http.ResponseWriter, r *http.Request) {
	videoID, ok := pathID(r, "id")
	if !ok {
		WriteError(w, "invalid video id", http.StatusBadRequest)
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

	if err := h.ContentService.SetVideoStatus(r.Context(), middleware.ProfileFromContext(r.Context()), videoID, status); err != nil {
		HandleError(w, err)
		return
	}

	WriteSuccess(w, map[string]string{"status": string(status)}, http.StatusOK)
}

func (h *Handlers) DeleteVideo(w http.ResponseWriter, r *http.Request) {
	videoID, ok := pathID(r, "id")
	if !ok {
		WriteError(w, "invalid video id", http.StatusBadRequest)
		return
	}

	if err := h.ContentService.DeleteVideo(r.Context(), middleware.ProfileFromContext(r.Context()), videoID); err != nil {
		HandleError(w, err)
		return
	}

	WriteSuccess(w, map[string]string{"status": "deleted"}, http.StatusOK)
}
