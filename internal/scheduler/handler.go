package scheduler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/civics-prep/backend/internal/catalog"
	"github.com/civics-prep/backend/internal/models"
	"github.com/gorilla/mux"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) ReviewQuestion(w http.ResponseWriter, r *http.Request) {
	var req models.ReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}
	if req.QuestionNumber <= 0 {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "question_number is required"})
		return
	}

	resp, err := h.service.ReviewQuestion(req.QuestionNumber, req.Quality)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "Question not found"})
			return
		}
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to record review"})
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) GetCard(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	number, err := strconv.Atoi(vars["number"])
	if err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid question number"})
		return
	}

	card, err := h.service.Card(number)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to load review card"})
		return
	}
	if card == nil {
		writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "Question has no review card"})
		return
	}
	writeJSON(w, http.StatusOK, card)
}

func (h *Handler) DueCards(w http.ResponseWriter, r *http.Request) {
	limit := intQueryParam(r.URL.Query(), "limit", 20)

	cards, err := h.service.DueCards(limit)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to load due cards"})
		return
	}
	if cards == nil {
		cards = []models.ReviewCard{}
	}
	writeJSON(w, http.StatusOK, cards)
}

func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.Stats()
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to load review stats"})
		return
	}
	writeJSON(w, http.StatusOK, stats)
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
