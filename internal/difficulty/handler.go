package difficulty

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"github.com/civics-prep/backend/internal/models"
	"github.com/gorilla/mux"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) ListEntries(w http.ResponseWriter, r *http.Request) {
	entries, err := h.service.Entries()
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to load difficulty records"})
		return
	}
	if entries == nil {
		entries = []models.DifficultyEntry{}
	}
	writeJSON(w, http.StatusOK, entries)
}

func (h *Handler) GetEntry(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	number, err := strconv.Atoi(vars["number"])
	if err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid question number"})
		return
	}

	entry, err := h.service.Entry(number)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to load difficulty record"})
		return
	}
	writeJSON(w, http.StatusOK, entry)
}

func (h *Handler) RecordAttempt(w http.ResponseWriter, r *http.Request) {
	var req models.AttemptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}
	if req.QuestionNumber <= 0 {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "question_number is required"})
		return
	}

	resp, err := h.service.RecordStudyAttempt(req.QuestionNumber, req.Correct, req.TimeSpentMs)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to record attempt"})
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) Hardest(w http.ResponseWriter, r *http.Request) {
	limit := intQueryParam(r.URL.Query(), "limit", 10)

	entries, err := h.service.Hardest(limit)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to rank questions"})
		return
	}
	if entries == nil {
		entries = []models.DifficultyEntry{}
	}
	writeJSON(w, http.StatusOK, entries)
}

func (h *Handler) Reset(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Reset(); err != nil {
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to reset difficulty records"})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func intQueryParam(query url.Values, key string, defaultVal int) int {
	s := query.Get(key)
	if s == "" {
		return defaultVal
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return defaultVal
	}
	return v
}
