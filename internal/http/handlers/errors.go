// Package handlers defines the HTTP-layer error taxonomy used across all API
// endpoints.
//
// The taxonomy is a closed set: every failure a client can see maps to one of
// the codes below with a fixed human-readable message and a stable HTTP
// status. The message strings are part of the wire contract and must not be
// reworded. Store-side failures of any cause (connectivity, constraints,
// serialization) collapse into the single "Database Query Error" message; the
// underlying detail is logged server-side and never returned.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kpapad/go-qa-backend/internal/http/middleware"
	"github.com/kpapad/go-qa-backend/internal/pagination"
	"github.com/kpapad/go-qa-backend/internal/services"
)

// Machine-readable error codes carried in the error envelope.
const (
	ErrCodeBadRequest       = "bad_request"
	ErrCodeUnauthorized     = "unauthorized"
	ErrCodeNotFound         = "not_found"
	ErrCodeConflict         = "conflict"
	ErrCodeInternal         = "internal_error"
	ErrCodeMethodNotAllowed = "method_not_allowed"

	// Domain-specific:
	ErrCodeParse         = "parse_error"
	ErrCodeMissingParams = "missing_parameters"
	ErrCodeQuestion      = "question_not_found"
	ErrCodeStore         = "database_query_error"
	ErrCodeInvalidInput  = "invalid_input"
)

// Fixed user-facing messages for the taxonomy kinds.
const (
	MsgParse         = "Failed to parse integer"
	MsgMissingParams = "Missing parameters"
	MsgQuestion      = "Question Not Found"
	MsgStore         = "Database Query Error"
)

// failFromError translates a service or pagination error into the uniform
// envelope. Unrecognized errors are treated as store failures: same status,
// same collapsed message, detail in the log only.
func failFromError(c *gin.Context, err error) {
	var pe *pagination.ParseError

	switch {
	case errors.As(err, &pe):
		fail(c, http.StatusBadRequest, ErrCodeParse, MsgParse)
	case errors.Is(err, pagination.ErrMissingParameters):
		fail(c, http.StatusBadRequest, ErrCodeMissingParams, MsgMissingParams)
	case errors.Is(err, services.ErrQuestionNotFound):
		fail(c, http.StatusBadRequest, ErrCodeQuestion, MsgQuestion)
	case errors.Is(err, services.ErrMissingFields):
		fail(c, http.StatusBadRequest, ErrCodeInvalidInput, err.Error())
	default:
		// Store failure or anything unexpected. Log the cause, hide it.
		middleware.LoggerFrom(c).Error().Err(err).Msg("store query failed")
		fail(c, http.StatusBadRequest, ErrCodeStore, MsgStore)
	}
}
