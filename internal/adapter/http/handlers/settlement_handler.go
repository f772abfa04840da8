package handlers

import (
	"net/http"
	"strings"

	request "trade_credit/internal/adapter/http/dto/request"
	response "trade_credit/internal/adapter/http/dto/response"
	"trade_credit/internal/usecase"

	"github.com/gin-gonic/gin"
)

const HeaderIdempotencyKey = "Idempotency-Key"

// SettlementHandler serves payments and the read surface of obligations.
type SettlementHandler struct {
	settlement usecase.ISettlementUseCase
	queries    usecase.ISettlementQueryUseCase
}

func NewSettlementHandler(settlement usecase.ISettlementUseCase, queries usecase.ISettlementQueryUseCase) *SettlementHandler {
	return &SettlementHandler{settlement: settlement, queries: queries}
}

// SubmitPayment godoc
// @Summary      Pay part or all of an obligation
// @Tags         obligations
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        obligation_id path string true "Obligation ID"
// @Param        Idempotency-Key header string false "Client retry key"
// @Param        payload body request.SubmitPaymentRequest true "Payment"
// @Success      201 {object} response.PaymentResponse
// @Success      200 {object} response.PaymentResponse "idempotent replay"
// @Failure      400,401,402,403,404,409,422 {object} pkg.HTTPError
// @Router       /obligations/{obligation_id}/payments [post]
func (h *SettlementHandler) SubmitPayment(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}

	var payload request.SubmitPaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondAppError(c, errInvalidPayload)
		return
	}

	res, err := h.settlement.SubmitPayment(c.Request.Context(), caller, usecase.SubmitPaymentCommand{
		ObligationID:   c.Param("obligation_id"),
		Amount:         payload.Amount,
		Credential:     payload.Credential,
		IdempotencyKey: strings.TrimSpace(c.GetHeader(HeaderIdempotencyKey)),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	status := http.StatusCreated
	if res.Replayed {
		status = http.StatusOK
	}
	c.JSON(status, response.FromPayment(res.Transaction, res.Obligation, res.Replayed))
}

// GetObligation godoc
// @Summary      Get a payment obligation
// @Tags         obligations
// @Produce      json
// @Security     Bearer
// @Param        obligation_id path string true "Obligation ID"
// @Success      200 {object} response.ObligationResponse
// @Failure      403,404 {object} pkg.HTTPError
// @Router       /obligations/{obligation_id} [get]
func (h *SettlementHandler) GetObligation(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}

	o, err := h.queries.GetObligation(c.Request.Context(), caller, c.Param("obligation_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromObligation(o))
}

// GetObligationByRequest godoc
// @Summary      Get the obligation created from a request
// @Tags         obligation-requests
// @Produce      json
// @Security     Bearer
// @Param        request_id path string true "Request ID"
// @Success      200 {object} response.ObligationResponse
// @Failure      403,404 {object} pkg.HTTPError
// @Router       /obligation-requests/{request_id}/obligation [get]
func (h *SettlementHandler) GetObligationByRequest(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}

	o, err := h.queries.GetObligationByRequestID(c.Request.Context(), caller, c.Param("request_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromObligation(o))
}

// GetBalance godoc
// @Summary      Get the running balance of an obligation
// @Tags         obligations
// @Produce      json
// @Security     Bearer
// @Param        obligation_id path string true "Obligation ID"
// @Success      200 {object} response.BalanceResponse
// @Failure      403,404 {object} pkg.HTTPError
// @Router       /obligations/{obligation_id}/balance [get]
func (h *SettlementHandler) GetBalance(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}

	b, err := h.queries.GetBalance(c.Request.Context(), caller, c.Param("obligation_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromBalance(b))
}

// ListTransactions godoc
// @Summary      List ledger entries in sequence order
// @Tags         obligations
// @Produce      json
// @Security     Bearer
// @Param        obligation_id path string true "Obligation ID"
// @Param        after query int false "Return entries after this sequence"
// @Param        limit query int false "Page size (max 200)"
// @Success      200 {object} response.TransactionPageResponse
// @Failure      400,403,404 {object} pkg.HTTPError
// @Router       /obligations/{obligation_id}/transactions [get]
func (h *SettlementHandler) ListTransactions(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}

	var q request.ListTransactionsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondAppError(c, errInvalidQuery)
		return
	}

	page, err := h.queries.ListTransactions(c.Request.Context(), caller, c.Param("obligation_id"), q.After, q.Limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromTransactionPage(page))
}

// IsCleared godoc
// @Summary      Report whether an obligation is fully paid
// @Tags         obligations
// @Produce      json
// @Security     Bearer
// @Param        obligation_id path string true "Obligation ID"
// @Success      200 {object} response.ClearedResponse
// @Failure      403,404 {object} pkg.HTTPError
// @Router       /obligations/{obligation_id}/cleared [get]
func (h *SettlementHandler) IsCleared(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}

	obligationID := c.Param("obligation_id")
	cleared, err := h.queries.IsCleared(c.Request.Context(), caller, obligationID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.ClearedResponse{ObligationID: obligationID, Cleared: cleared})
}
