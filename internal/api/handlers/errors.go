package handlers

import (
	"errors"
	"net/http"

	"blackjack-sim/internal/api/models"
	"blackjack-sim/internal/config"
	"blackjack-sim/internal/record"
	"blackjack-sim/internal/stats"
	"blackjack-sim/internal/strategy"
)

// errorResponse maps the pipeline's error taxonomy onto HTTP status codes and
// stable machine codes. Anything unrecognized is an internal error.
func errorResponse(err error) (int, models.ErrorResponse) {
	var (
		missing    *config.MissingFieldError
		typeErr    *config.TypeError
		payoutErr  *config.PayoutFormatError
		resolution *strategy.ResolutionError
		sink       *record.SinkError
	)
	code := "INTERNAL_ERROR"
	status := http.StatusInternalServerError
	switch {
	case errors.As(err, &missing):
		code, status = "MISSING_CONFIGURATION", http.StatusBadRequest
	case errors.As(err, &typeErr):
		code, status = "CONFIGURATION_TYPE_ERROR", http.StatusBadRequest
	case errors.As(err, &payoutErr):
		code, status = "PAYOUT_FORMAT_ERROR", http.StatusBadRequest
	case errors.As(err, &resolution):
		code, status = "UNKNOWN_STRATEGY", http.StatusBadRequest
	case errors.Is(err, stats.ErrEmptyStream):
		code, status = "EMPTY_STREAM", http.StatusUnprocessableEntity
	case errors.As(err, &sink):
		code, status = "SINK_ERROR", http.StatusInternalServerError
	}
	return status, models.ErrorResponse{
		Error: models.ErrorDetail{Code: code, Message: err.Error()},
	}
}
