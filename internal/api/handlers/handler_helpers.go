package handlers

import (
	"errors"
	"fitcoach-backend/domain"
	"fitcoach-backend/internal/utils/storage"
	"fitcoach-backend/pkg/usda"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

var (
	notFoundErrors = []error{
		domain.ErrAdminNotFound,
		domain.ErrCustomerNotFound,
		domain.ErrIngredientNotFound,
		domain.ErrRecipeNotFound,
		domain.ErrExerciseNotFound,
		domain.ErrPlanNotFound,
		domain.ErrPlanNotPublished,
		domain.ErrInvoiceNotFound,
		domain.ErrPaymentNotFound,
		domain.ErrPackageNotFound,
		usda.ErrNoMatch,
	}

	conflictErrors = []error{
		domain.ErrCustomerEmailExists,
		domain.ErrIngredientNameExists,
		domain.ErrIngredientInUse,
		domain.ErrPlanAlreadyActive,
		domain.ErrInvoiceNotEditable,
		domain.ErrInvoiceStatusTransition,
		domain.ErrInvoiceHasPayments,
		domain.ErrInvoiceAlreadySettled,
		domain.ErrPaymentStatusTransition,
		domain.ErrPaymentNotDeletable,
		domain.ErrNothingOutstanding,
	}

	unavailableErrors = []error{
		domain.ErrLookupUnavailable,
		domain.ErrVideoSearchUnavailable,
		domain.ErrPaymentGatewayUnavailable,
		domain.ErrPDFRendererUnavailable,
		storage.ErrStorageNotConfigured,
	}
)

// statusFor maps a service error to the HTTP status the API answers with.
// Anything unrecognised is treated as a bad request.
func statusFor(err error) int {
	switch {
	case errorIn(err, notFoundErrors):
		return fiber.StatusNotFound
	case errorIn(err, conflictErrors):
		return fiber.StatusConflict
	case errorIn(err, unavailableErrors):
		return fiber.StatusServiceUnavailable
	case errors.Is(err, domain.ErrInvalidCredentials), errors.Is(err, domain.ErrInvalidSignature):
		return fiber.StatusUnauthorized
	case errors.Is(err, domain.ErrPaymentGateway):
		return fiber.StatusBadGateway
	}
	return fiber.StatusBadRequest
}

func errorIn(err error, targets []error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func pageAndLimit(c *fiber.Ctx) (int, int) {
	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = domain.DefaultPage
	}

	limit, err := strconv.Atoi(c.Query("limit", "20"))
	if err != nil || limit < 1 {
		limit = domain.DefaultLimit
	}
	if limit > domain.MaxLimit {
		limit = domain.MaxLimit
	}
	return page, limit
}

func paginated(items any, page, limit int, total int64) fiber.Map {
	return fiber.Map{
		"items":      items,
		"pagination": domain.NewPagination(page, limit, total),
	}
}

// isClientError reports errors caused by the request itself rather than by a
// downstream dependency.
func isClientError(err error) bool {
	return errorIn(err, []error{
		domain.ErrParseUUID,
		domain.ErrInvoiceCustomerNoEmail,
		domain.ErrInvalidDate,
		domain.ErrInvalidAmount,
	})
}
