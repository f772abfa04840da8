package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"trade_credit/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

// MercadoPagoGateway authorizes obligation payments with Mercado Pago.
// In mock mode every authorization is approved locally.
type MercadoPagoGateway struct {
	client   payment.Client
	mockMode bool
	logger   *zap.Logger
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string, mockMode bool, logger *zap.Logger) (*MercadoPagoGateway, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.Named("mercadopago")

	if mockMode {
		logger.Info("mock mode enabled")
		return &MercadoPagoGateway{mockMode: true, logger: logger}, nil
	}

	if accessToken == "" {
		logger.Warn("missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		logger.Error("failed creating sdk config", zap.Error(err))
		return nil, err
	}
	logger.Info("Mercado Pago client initialized")

	return &MercadoPagoGateway{client: payment.NewClient(cfg), logger: logger}, nil
}

func (g *MercadoPagoGateway) Authorize(ctx context.Context, auth interfaces.PaymentAuthorization) (string, error) {
	if g != nil && g.mockMode {
		id := "mock-" + strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		g.logger.Info("mock authorize success",
			zap.String("obligation_id", auth.ObligationID),
			zap.Int64("amount", auth.Amount),
			zap.String("provider_reference", id),
		)
		return id, nil
	}

	if g == nil || g.client == nil {
		return "", ErrMercadoPagoGatewayNotConfigured
	}

	req, err := buildPaymentRequest(auth)
	if err != nil {
		g.logger.Error("payload build failed", zap.Error(err))
		return "", err
	}

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		g.logger.Error("sdk create failed", zap.String("obligation_id", auth.ObligationID), zap.Error(err))
		return "", err
	}

	ref := fmt.Sprintf("%d", resp.ID)
	switch resp.Status {
	case "approved", "authorized", "in_process", "pending":
	default:
		g.logger.Warn("payment not approved",
			zap.String("obligation_id", auth.ObligationID),
			zap.String("provider_reference", ref),
			zap.String("provider_status", resp.Status),
			zap.String("status_detail", resp.StatusDetail),
		)
		return "", fmt.Errorf("%w: status=%s", interfaces.ErrPaymentRejected, resp.Status)
	}

	g.logger.Info("authorize success",
		zap.String("obligation_id", auth.ObligationID),
		zap.String("provider_reference", ref),
		zap.String("provider_status", resp.Status),
	)
	return ref, nil
}

// buildPaymentRequest maps an authorization onto the SDK request. Amounts are
// stored in minor units and sent to the provider in major units.
func buildPaymentRequest(auth interfaces.PaymentAuthorization) (payment.Request, error) {
	amount, _ := decimal.New(auth.Amount, -2).Float64()
	payload := map[string]any{
		"transaction_amount": amount,
		"description":        "Payment obligation " + auth.ObligationID,
		"external_reference": auth.ObligationID,
		"metadata": map[string]any{
			"obligation_id":   auth.ObligationID,
			"payer_id":        auth.PayerID,
			"idempotency_key": auth.IdempotencyKey,
		},
	}

	b, err := json.Marshal(payload)
	if err != nil {
		return payment.Request{}, err
	}
	var req payment.Request
	if err := json.Unmarshal(b, &req); err != nil {
		return payment.Request{}, err
	}
	return req, nil
}
