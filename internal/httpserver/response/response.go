// Package response writes JSON bodies and maps typed errors to status codes.
package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/MrSnakeDoc/startpage/internal/errs"
	"github.com/MrSnakeDoc/startpage/internal/logger"
)

type SuccessEnvelope struct {
	Success bool `json:"success"`
	Data    any  `json:"data,omitempty"`
}

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type Handler struct {
	log logger.Logger
}

func New(log logger.Logger) *Handler {
	return &Handler{log: log}
}

// WriteJSON writes v as the whole response body.
func (h *Handler) WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		// Last-ditch logging; can't return an error now
		h.log.Error("failed to encode response", logger.Error(err), logger.Int("status", status))
	}
}

// WriteSuccess writes {"success": true, "data": data}.
func (h *Handler) WriteSuccess(w http.ResponseWriter, status int, data any) {
	h.WriteJSON(w, status, SuccessEnvelope{Success: true, Data: data})
}

func (h *Handler) WriteError(w http.ResponseWriter, status int, code, message string) {
	h.WriteJSON(w, status, ErrorResponse{Code: code, Message: message})
}

// HandleError logs err and answers with the status its type calls for.
func (h *Handler) HandleError(w http.ResponseWriter, r *http.Request, err error) {
	log := h.log.With(
		logger.String("request_id", middleware.GetReqID(r.Context())),
		logger.String("path", r.URL.Path),
	)

	var (
		malformed *errs.MalformedInputError
		notFound  *errs.NotFoundError
		exists    *errs.AlreadyExistsError
		capacity  *errs.CapacityExceededError
		storage   *errs.StorageError
	)

	switch {
	case errors.As(err, &malformed):
		log.Warn("invalid input", logger.String("error", malformed.Message))
		h.WriteError(w, http.StatusBadRequest, "invalid_input", malformed.Message)

	case errors.As(err, &notFound):
		log.Warn("resource not found", logger.String("error", notFound.Message))
		h.WriteError(w, http.StatusNotFound, "not_found", notFound.Message)

	case errors.As(err, &exists):
		log.Warn("resource already exists", logger.String("error", exists.Message))
		h.WriteError(w, http.StatusConflict, "already_exists", exists.Message)

	case errors.As(err, &capacity):
		log.Warn("category full",
			logger.String("category", capacity.Category),
			logger.Int("capacity", capacity.Capacity))
		h.WriteError(w, http.StatusConflict, "capacity_exceeded", capacity.Message)

	case errors.As(err, &storage):
		log.Error("storage error",
			logger.String("operation", storage.Operation),
			logger.Error(storage.Err))
		h.WriteError(w, http.StatusInternalServerError, "internal_error", "An error occurred")

	default:
		log.Error("unexpected error",
			logger.Error(err),
			logger.String("type", fmt.Sprintf("%T", err)))
		h.WriteError(w, http.StatusInternalServerError, "internal_error", "An unexpected error occurred")
	}
}
