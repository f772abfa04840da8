package handlers

import (
	"net/http"
	"time"

	request "trade_credit/internal/adapter/http/dto/request"
	response "trade_credit/internal/adapter/http/dto/response"
	"trade_credit/internal/usecase"

	"github.com/gin-gonic/gin"
)

// ObligationRequestHandler serves the request lifecycle: a company asks, the
// owning vendor accepts or declines.
type ObligationRequestHandler struct {
	usecase  usecase.IObligationRequestUseCase
	location *time.Location
}

// NewObligationRequestHandler builds the handler. loc interprets date-only deadlines.
func NewObligationRequestHandler(uc usecase.IObligationRequestUseCase, loc *time.Location) *ObligationRequestHandler {
	if loc == nil {
		loc = time.UTC
	}
	return &ObligationRequestHandler{usecase: uc, location: loc}
}

// CreateRequest godoc
// @Summary      Request a catalog item on credit
// @Tags         obligation-requests
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        payload body request.CreateObligationRequestRequest true "Request"
// @Success      201 {object} response.ObligationRequestResponse
// @Failure      400,403,404,409 {object} pkg.HTTPError
// @Router       /obligation-requests [post]
func (h *ObligationRequestHandler) CreateRequest(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}

	var payload request.CreateObligationRequestRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondAppError(c, errInvalidPayload)
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), caller, usecase.CreateRequestCommand{
		CatalogItemID: payload.CatalogItemID,
		Quantity:      payload.Quantity,
		Note:          payload.Note,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.FromObligationRequest(created))
}

// GetRequest godoc
// @Summary      Get an obligation request
// @Tags         obligation-requests
// @Produce      json
// @Security     Bearer
// @Param        request_id path string true "Request ID"
// @Success      200 {object} response.ObligationRequestResponse
// @Failure      403,404 {object} pkg.HTTPError
// @Router       /obligation-requests/{request_id} [get]
func (h *ObligationRequestHandler) GetRequest(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}

	r, err := h.usecase.GetByID(c.Request.Context(), caller, c.Param("request_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromObligationRequest(r))
}

// DecideRequest godoc
// @Summary      Accept or decline a pending request
// @Description  Accepting creates the payment obligation. A request with a note needs custom_deadline.
// @Tags         obligation-requests
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        request_id path string true "Request ID"
// @Param        payload body request.DecisionRequest true "Decision"
// @Success      200 {object} response.DecisionResponse
// @Failure      400,403,404,409 {object} pkg.HTTPError
// @Router       /obligation-requests/{request_id}/decision [post]
func (h *ObligationRequestHandler) DecideRequest(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}

	var payload request.DecisionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondAppError(c, errInvalidPayload)
		return
	}
	deadline, err := payload.ParseCustomDeadline(h.location)
	if err != nil {
		respondAppError(c, errInvalidDeadline)
		return
	}

	res, err := h.usecase.Decide(c.Request.Context(), caller, usecase.DecideCommand{
		RequestID:      c.Param("request_id"),
		Decision:       payload.ToDecision(),
		CustomDeadline: deadline,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromDecision(res.Request, res.Obligation))
}
