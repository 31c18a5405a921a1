package admin

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/personality-cat/backend/internal/models"
)

type Handler struct {
	store *Store
}

func NewHandler(store *Store) *Handler {
	return &Handler{store: store}
}

func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	resp, err := h.store.Dashboard(r.Context())
	if err != nil {
		log.Printf("[admin] Dashboard error: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to build dashboard"})
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) Participants(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	page := 1
	if s := query.Get("page"); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v > 0 {
			page = v
		}
	}

	resp, err := h.store.Participants(r.Context(), page, query.Get("search"))
	if err != nil {
		log.Printf("[admin] Participants error: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to list participants"})
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
