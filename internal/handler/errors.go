package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/storefront-orders/internal/entities"
	"github.com/SergeyBogomolovv/storefront-orders/pkg/utils"
)

// writeServiceError maps domain errors to HTTP responses. Anything unknown
// is logged and reported as 500.
func writeServiceError(ctx context.Context, logger *slog.Logger, w http.ResponseWriter, err error) {
	var verr *entities.ValidationError
	if errors.As(err, &verr) {
		utils.WriteFieldError(w, verr.Field, verr.Message)
		return
	}

	// A failed store call is a server error whatever it wraps.
	var perr *entities.PersistenceError
	if errors.As(err, &perr) {
		logger.ErrorContext(ctx, "request failed", slog.Any("error", err))
		utils.WriteError(w, "failed to save order", http.StatusInternalServerError)
		return
	}

	switch {
	case errors.Is(err, entities.ErrOrderNotFound):
		utils.WriteError(w, "order not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrProductNotFound):
		utils.WriteError(w, "product not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrCartItemMissing):
		utils.WriteError(w, "cart item not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrInvalidStatus):
		utils.WriteFieldError(w, "status", err.Error())
	case errors.Is(err, entities.ErrEmptyCart),
		errors.Is(err, entities.ErrCheckoutNotStarted),
		errors.Is(err, entities.ErrInvalidStep),
		errors.Is(err, entities.ErrNoNextStatus):
		utils.WriteError(w, err.Error(), http.StatusConflict)
	case errors.Is(err, entities.ErrPaymentNotVerified):
		logger.WarnContext(ctx, "payment not verified", slog.Any("error", err))
		utils.WriteError(w, "payment could not be verified", http.StatusPaymentRequired)
	case errors.Is(err, entities.ErrGatewayUnavailable):
		logger.ErrorContext(ctx, "payment gateway unavailable", slog.Any("error", err))
		utils.WriteError(w, "payment provider unavailable, try again", http.StatusBadGateway)
	default:
		logger.ErrorContext(ctx, "request failed", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
	}
}
