package achievements

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

func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	status, err := h.service.Status()
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to load achievements"})
		return
	}
	writeJSON(w, http.StatusOK, status)
}

// ListDefs returns the full achievement catalog so the client can render
// locked entries too.
func (h *Handler) ListDefs(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, Defs)
}

func (h *Handler) AcknowledgeNew(w http.ResponseWriter, r *http.Request) {
	if err := h.service.AcknowledgeNew(); err != nil {
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to acknowledge achievements"})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
