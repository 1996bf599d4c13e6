package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dugoutlabs/kbochat-engine/pkg/models"
)

const maxQuestionLength = 500

// Answerer resolves one natural-language question to an answer.
type Answerer interface {
	Answer(ctx context.Context, question string) (models.Answer, error)
}

// AnswerRequest is the POST /v1/answer request body.
type AnswerRequest struct {
	Question string `json:"question"`
}

// AnswerResponse is the POST /v1/answer response body.
type AnswerResponse struct {
	RequestID string       `json:"request_id"`
	Category  string       `json:"category"`
	Text      string       `json:"text,omitempty"`
	Rows      []models.Row `json:"rows,omitempty"`
}

// AnswerHandler serves the question-answering endpoint.
type AnswerHandler struct {
	engine Answerer
	logger *zap.Logger
}

// NewAnswerHandler creates the answer endpoint handler.
func NewAnswerHandler(engine Answerer, logger *zap.Logger) *AnswerHandler {
	return &AnswerHandler{engine: engine, logger: logger}
}

// RegisterRoutes registers the answer handler's routes on the given mux.
func (h *AnswerHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/v1/answer", h.Answer)
}

// Answer handles POST /v1/answer requests.
func (h *AnswerHandler) Answer(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		_ = ErrorResponse(w, http.StatusMethodNotAllowed, "method_not_allowed", "use POST")
		return
	}

	var req AnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = ErrorResponse(w, http.StatusBadRequest, "invalid_request", "request body must be JSON with a question field")
		return
	}
	if req.Question == "" {
		_ = ErrorResponse(w, http.StatusBadRequest, "missing_question", "question is required")
		return
	}
	if len(req.Question) > maxQuestionLength {
		_ = ErrorResponse(w, http.StatusBadRequest, "question_too_long", "question exceeds the maximum length")
		return
	}

	requestID := uuid.NewString()

	answer, err := h.engine.Answer(r.Context(), req.Question)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			// Client went away; nothing useful to write.
			return
		}
		h.logger.Error("answer failed",
			zap.String("request_id", requestID),
			zap.Error(err))
		_ = ErrorResponse(w, http.StatusInternalServerError, "internal_error", "failed to answer the question")
		return
	}

	resp := AnswerResponse{
		RequestID: requestID,
		Category:  string(answer.Category),
		Text:      answer.Text,
		Rows:      answer.Rows,
	}
	if err := WriteJSON(w, http.StatusOK, resp); err != nil {
		h.logger.Error("Failed to encode answer response",
			zap.String("request_id", requestID),
			zap.Error(err))
	}
}
