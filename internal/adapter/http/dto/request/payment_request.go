package request

// SubmitPaymentRequest carries the amount in minor units and the payer's secret,
// re-checked before any balance moves.
type SubmitPaymentRequest struct {
	Amount     int64  `json:"amount"`
	Credential string `json:"credential"`
}

type ListTransactionsQuery struct {
	After int64 `form:"after" binding:"min=0"`
	Limit int   `form:"limit" binding:"min=0,max=200"`
}
