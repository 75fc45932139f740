package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	activitydomain "github.com/novayra/storefront/internal/activity/domain"
	adminauthdomain "github.com/novayra/storefront/internal/adminauth/domain"
	authdomain "github.com/novayra/storefront/internal/auth/domain"
	cartdomain "github.com/novayra/storefront/internal/cart/domain"
	contactdomain "github.com/novayra/storefront/internal/contact/domain"
	orderdomain "github.com/novayra/storefront/internal/order/domain"
	productdomain "github.com/novayra/storefront/internal/product/domain"
	sampledomain "github.com/novayra/storefront/internal/sample/domain"
	settingsdomain "github.com/novayra/storefront/internal/settings/domain"
	"gorm.io/gorm"
)

var (
	ErrUnauthorized   = errors.New("authentication required")
	ErrForbidden      = errors.New("admin access required")
	ErrInvalidRequest = errors.New("invalid request body")
)

// ErrorHandlingMiddleware maps the last recorded error to the wire
// envelope after the handler chain runs. Handlers record errors through
// AbortWithError and never write failure bodies themselves.
func ErrorHandlingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}

		lastErr := c.Errors.Last()
		if lastErr == nil {
			return
		}

		status, message := mapError(lastErr.Err)
		c.AbortWithStatusJSON(status, gin.H{
			"success": false,
			"message": message,
		})
	}
}

func AbortWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}

func mapError(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, "Internal server error"
	}

	// Typed conflicts carry counts and state names the client shows
	// verbatim.
	var insufficientStock *cartdomain.InsufficientStockError
	if errors.As(err, &insufficientStock) {
		return http.StatusConflict, insufficientStock.Error()
	}
	var outOfStock *orderdomain.OutOfStockError
	if errors.As(err, &outOfStock) {
		return http.StatusConflict, outOfStock.Error()
	}
	var illegalTransition *orderdomain.IllegalTransitionError
	if errors.As(err, &illegalTransition) {
		return http.StatusConflict, illegalTransition.Error()
	}

	switch {
	case isValidationError(err):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, ErrUnauthorized),
		errors.Is(err, authdomain.ErrInvalidCredentials),
		errors.Is(err, authdomain.ErrInvalidToken),
		errors.Is(err, adminauthdomain.ErrInvalidSession),
		errors.Is(err, adminauthdomain.ErrSessionExpired):
		return http.StatusUnauthorized, err.Error()
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden, err.Error()
	case errors.Is(err, authdomain.ErrUserExists),
		errors.Is(err, sampledomain.ErrDuplicateRequest):
		return http.StatusConflict, err.Error()
	case isNotFoundError(err):
		return http.StatusNotFound, err.Error()
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}

func isValidationError(err error) bool {
	switch {
	case errors.Is(err, ErrInvalidRequest),
		errors.Is(err, ErrInvalidImage),
		errors.Is(err, authdomain.ErrInvalidEmail),
		errors.Is(err, authdomain.ErrWeakPassword),
		errors.Is(err, authdomain.ErrMissingName),
		errors.Is(err, authdomain.ErrMissingCheckout),
		errors.Is(err, authdomain.ErrNothingToUpdate),
		errors.Is(err, productdomain.ErrInvalidName),
		errors.Is(err, productdomain.ErrInvalidDescription),
		errors.Is(err, productdomain.ErrInvalidPrice),
		errors.Is(err, productdomain.ErrInvalidStock),
		errors.Is(err, productdomain.ErrNothingToUpdate),
		errors.Is(err, productdomain.ErrNoImages),
		errors.Is(err, cartdomain.ErrInvalidQuantity),
		errors.Is(err, orderdomain.ErrEmptyCart),
		errors.Is(err, orderdomain.ErrInvalidStatus),
		errors.Is(err, orderdomain.ErrInvalidPaymentStatus),
		errors.Is(err, orderdomain.ErrInvalidPayment),
		errors.Is(err, orderdomain.ErrInvalidShipping),
		errors.Is(err, sampledomain.ErrInvalidSize),
		errors.Is(err, sampledomain.ErrInvalidStatus),
		errors.Is(err, sampledomain.ErrInvalidRequest),
		errors.Is(err, contactdomain.ErrInvalidName),
		errors.Is(err, contactdomain.ErrInvalidEmail),
		errors.Is(err, contactdomain.ErrInvalidPhone),
		errors.Is(err, contactdomain.ErrInvalidSubject),
		errors.Is(err, contactdomain.ErrInvalidMessage),
		errors.Is(err, contactdomain.ErrInvalidStatus),
		errors.Is(err, settingsdomain.ErrSettingsRequired),
		errors.Is(err, settingsdomain.ErrEmailRequired),
		errors.Is(err, activitydomain.ErrInvalidAction):
		return true
	default:
		return false
	}
}

func isNotFoundError(err error) bool {
	switch {
	case errors.Is(err, authdomain.ErrUserNotFound),
		errors.Is(err, adminauthdomain.ErrSessionNotFound),
		errors.Is(err, productdomain.ErrNotFound),
		errors.Is(err, cartdomain.ErrItemNotFound),
		errors.Is(err, orderdomain.ErrNotFound),
		errors.Is(err, sampledomain.ErrNotFound),
		errors.Is(err, contactdomain.ErrNotFound),
		errors.Is(err, gorm.ErrRecordNotFound):
		return true
	default:
		return false
	}
}
