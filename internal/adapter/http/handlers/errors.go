package handlers

import (
	"errors"
	"net/http"

	"trade_credit/internal/adapter/http/middleware"
	"trade_credit/internal/domain/entities"
	"trade_credit/internal/infrastructure/logger"
	"trade_credit/internal/usecase"
	"trade_credit/internal/usecase/interfaces"
	"trade_credit/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	errInvalidPayload  = pkg.NewDomainErrorSimple("INVALID_PAYLOAD", "Invalid request payload", http.StatusBadRequest)
	errInvalidQuery    = pkg.NewDomainErrorSimple("INVALID_QUERY", "Invalid query parameters", http.StatusBadRequest)
	errInvalidDeadline = pkg.NewDomainErrorSimple("INVALID_DEADLINE", "custom_deadline must be YYYY-MM-DD or RFC3339", http.StatusBadRequest)
	errUnauthenticated = pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Missing caller identity", http.StatusUnauthorized)
	errObligationBusy  = pkg.NewDomainErrorSimple("OBLIGATION_BUSY", "Another payment is in progress for this obligation", http.StatusConflict)
	errPaymentRejected = pkg.NewDomainErrorSimple("PAYMENT_REJECTED", "Payment provider rejected the payment", http.StatusPaymentRequired)
)

var kindStatus = map[usecase.ErrorKind]int{
	usecase.KindNotFound:          http.StatusNotFound,
	usecase.KindForbidden:         http.StatusForbidden,
	usecase.KindInvalidInput:      http.StatusBadRequest,
	usecase.KindConflict:          http.StatusConflict,
	usecase.KindAmountExceedsDue:  http.StatusUnprocessableEntity,
	usecase.KindCredentialInvalid: http.StatusUnauthorized,
}

// mapError renders use case failures. Domain errors keep their own code and
// message; anything unknown becomes a 500 without leaking the cause.
func mapError(err error) *pkg.AppError {
	var de *usecase.DomainError
	switch {
	case errors.As(err, &de):
		if status, ok := kindStatus[de.Kind]; ok {
			return pkg.NewDomainError(de.Code, de.Message, err, status)
		}
	case errors.Is(err, interfaces.ErrLockNotObtained):
		return errObligationBusy
	case errors.Is(err, interfaces.ErrPaymentRejected):
		return errPaymentRejected
	}
	return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
}

func respondError(c *gin.Context, err error) {
	appErr := mapError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		logger.FromContext(c.Request.Context()).Error("request failed", zap.Error(err))
	}
	_ = c.Error(err)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func respondAppError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func callerOrAbort(c *gin.Context) (entities.Caller, bool) {
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		respondAppError(c, errUnauthenticated)
		return entities.Caller{}, false
	}
	return caller, true
}
