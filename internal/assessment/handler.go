package assessment

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/personality-cat/backend/internal/models"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req models.CreateSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	if strings.TrimSpace(req.Name) == "" {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "name is required"})
		return
	}

	resp, err := h.service.CreateSession(r.Context(), req)
	if err != nil {
		log.Printf("[handler] CreateSession error: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to create session"})
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

func (h *Handler) GetQuestion(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["id"]

	resp, err := h.service.NextQuestion(r.Context(), sessionID)
	if err != nil {
		writeError(w, err, "Failed to get question")
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	var sub models.AnswerSubmission
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	if sub.SessionID == "" || sub.ItemID == "" {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "session_id and question_id are required"})
		return
	}

	resp, err := h.service.SubmitAnswer(r.Context(), sub)
	if err != nil {
		writeError(w, err, "Failed to submit answer")
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) GetDimension(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	sessionID := vars["id"]
	dim := models.Dimension(vars["dimension"])

	if !models.ValidDimensions[dim] {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "invalid dimension"})
		return
	}

	resp, err := h.service.DimensionReport(r.Context(), sessionID, dim)
	if err != nil {
		writeError(w, err, "Failed to get dimension")
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) GetReport(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["id"]

	resp, err := h.service.Report(r.Context(), sessionID)
	if err != nil {
		writeError(w, err, "Failed to build report")
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// writeError maps service errors to HTTP statuses. Anything unrecognized is
// logged and reported as a 500 with the generic message.
func writeError(w http.ResponseWriter, err error, generic string) {
	switch {
	case errors.Is(err, ErrSessionNotFound):
		writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "Session not found"})
	case errors.Is(err, ErrNoMoreQuestions):
		writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "No more questions"})
	case errors.Is(err, ErrItemNotFound):
		writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "Question not found"})
	case errors.Is(err, ErrInvalidResponse):
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "response must be between 1 and 5"})
	case errors.Is(err, ErrItemAlreadyAnswered):
		writeJSON(w, http.StatusConflict, models.ErrorResponse{Error: "Question already answered"})
	case errors.Is(err, ErrSessionCompleted):
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Session already completed"})
	case errors.Is(err, ErrNotCompleted):
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Test not completed yet"})
	default:
		log.Printf("[handler] %s: %v", generic, err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: generic})
	}
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
