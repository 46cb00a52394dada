package exam

import (
	"encoding/json"
	"errors"
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

func (h *Handler) StartTest(w http.ResponseWriter, r *http.Request) {
	var req models.StartTestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}
	if req.Mode == "" {
		req.Mode = models.ModeStandard
	}

	session, err := h.service.StartTest(req.Mode)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusCreated, session)
}

func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	session, err := h.service.Session(mux.Vars(r)["id"])
	if err != nil {
		writeSessionError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, session)
}

func (h *Handler) Answer(w http.ResponseWriter, r *http.Request) {
	var req models.AnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}
	if req.QuestionNumber <= 0 {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "question_number is required"})
		return
	}

	session, err := h.service.Answer(mux.Vars(r)["id"], req.QuestionNumber, req.Answer, req.TimeSpentMs)
	if err != nil {
		writeSessionError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, session)
}

func (h *Handler) Navigate(w http.ResponseWriter, r *http.Request) {
	var req models.NavigateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	session, err := h.service.Navigate(mux.Vars(r)["id"], req.Index)
	if err != nil {
		writeSessionError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, session)
}

func (h *Handler) SubmitTest(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.SubmitTest(mux.Vars(r)["id"])
	if err != nil {
		writeSessionError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) ResetTest(w http.ResponseWriter, r *http.Request) {
	if err := h.service.ResetTest(mux.Vars(r)["id"]); err != nil {
		writeSessionError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	limit := intQueryParam(r.URL.Query(), "limit", 20)

	records, err := h.service.History(limit)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to load test history"})
		return
	}
	if records == nil {
		records = []models.TestRecord{}
	}
	writeJSON(w, http.StatusOK, records)
}

func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.Stats()
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to load test stats"})
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func writeSessionError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNoSession):
		writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "Test session not found"})
	case errors.Is(err, ErrSessionComplete):
		writeJSON(w, http.StatusConflict, models.ErrorResponse{Error: "Test session already submitted"})
	case errors.Is(err, ErrNotInTest):
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Question is not part of this test"})
	default:
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
	}
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
