package catalog

import (
	"encoding/json"
	"errors"
	"net/http"
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

func (h *Handler) ListQuestions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.All())
}

func (h *Handler) GetQuestion(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	number, err := strconv.Atoi(vars["number"])
	if err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid question number"})
		return
	}

	q, err := h.service.ByNumber(number)
	if err != nil {
		writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "Question not found"})
		return
	}
	writeJSON(w, http.StatusOK, q)
}

func (h *Handler) ListByCategory(w http.ResponseWriter, r *http.Request) {
	category := models.Category(mux.Vars(r)["category"])
	if !models.ValidCategories[category] {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "category must be 'government', 'history', or 'symbols'"})
		return
	}
	writeJSON(w, http.StatusOK, h.service.ByCategory(category))
}

func (h *Handler) ListSenior(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.Senior())
}

func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	q := query.Get("q")
	if q == "" {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "q is required"})
		return
	}
	locale := models.NormalizeLocale(query.Get("locale"))

	results := h.service.Search(q, locale)
	if results == nil {
		results = []models.Question{}
	}
	writeJSON(w, http.StatusOK, results)
}

// ── Bookmarks ────────────────────────────────────────────

func (h *Handler) AddBookmark(w http.ResponseWriter, r *http.Request) {
	var req models.BookmarkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	if err := h.service.AddBookmark(req.QuestionNumber, req.Note); err != nil {
		if errors.Is(err, ErrNotFound) {
			writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "Question not found"})
			return
		}
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to add bookmark"})
		return
	}
	writeJSON(w, http.StatusCreated, map[string]int{"question_number": req.QuestionNumber})
}

func (h *Handler) RemoveBookmark(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	number, err := strconv.Atoi(vars["number"])
	if err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid question number"})
		return
	}

	if err := h.service.RemoveBookmark(number); err != nil {
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to remove bookmark"})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) ListBookmarks(w http.ResponseWriter, r *http.Request) {
	bookmarks, err := h.service.Bookmarks()
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to list bookmarks"})
		return
	}
	if bookmarks == nil {
		bookmarks = []models.Bookmark{}
	}
	writeJSON(w, http.StatusOK, bookmarks)
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
