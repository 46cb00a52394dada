package streak

import (
	"encoding/json"
	"net/http"

	"github.com/civics-prep/backend/internal/models"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RecordActivity(w http.ResponseWriter, r *http.Request) {
	var req models.ActivityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}
	if !models.ValidActivityTypes[req.Type] {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Unknown activity type"})
		return
	}

	status, err := h.service.RecordActivity(req.Type, req.Count)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to record activity"})
		return
	}
	writeJSON(w, http.StatusOK, status)
}

func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	status, err := h.service.Status()
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to load streak status"})
		return
	}
	writeJSON(w, http.StatusOK, status)
}

func (h *Handler) SetDailyGoal(w http.ResponseWriter, r *http.Request) {
	var req models.SetGoalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	if err := h.service.SetDailyGoal(req.Target); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	status, err := h.service.Status()
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to load streak status"})
		return
	}
	writeJSON(w, http.StatusOK, status)
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
