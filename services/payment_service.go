package services

import (
	"fmt"

	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/coreapi"

	"github.com/dragonpearl/reservation-app/config"
	"github.com/dragonpearl/reservation-app/models"
)

// PaymentProvider is the payment surface the admin routes depend on.
type PaymentProvider interface {
	ValidateConfig() error
	ClientConfig() map[string]interface{}
	ChargeDeposit(reservation models.Reservation, amount int64) (*coreapi.ChargeResponse, error)
	CheckStatus(orderID string) (string, error)
}

// PaymentService wraps the Midtrans core API client. The public booking flow
// never touches it; deposits are charged by an admin per reservation.
type PaymentService struct {
	client coreapi.Client
	cfg    config.MidtransConfig
}

func NewPaymentService(cfg config.MidtransConfig) *PaymentService {
	env := midtrans.Sandbox
	if cfg.IsProduction {
		env = midtrans.Production
	}

	var client coreapi.Client
	client.New(cfg.ServerKey, env)

	return &PaymentService{client: client, cfg: cfg}
}

func (ps *PaymentService) ValidateConfig() error {
	if ps.cfg.ServerKey == "" {
		return fmt.Errorf("MIDTRANS_SERVER_KEY is not set")
	}
	if ps.cfg.ClientKey == "" {
		return fmt.Errorf("MIDTRANS_CLIENT_KEY is not set")
	}
	return nil
}

// ClientConfig returns what the dashboard frontend needs to render payment
// widgets. The server key never leaves the process.
func (ps *PaymentService) ClientConfig() map[string]interface{} {
	env := "sandbox"
	if ps.cfg.IsProduction {
		env = "production"
	}
	return map[string]interface{}{
		"client_key":  ps.cfg.ClientKey,
		"environment": env,
	}
}

// ChargeDeposit creates a QRIS charge tagged with the reservation reference.
func (ps *PaymentService) ChargeDeposit(reservation models.Reservation, amount int64) (*coreapi.ChargeResponse, error) {
	req := &coreapi.ChargeReq{
		PaymentType: coreapi.PaymentTypeQris,
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  fmt.Sprintf("DEPOSIT-%s", reservation.Reference),
			GrossAmt: amount,
		},
		CustomerDetails: &midtrans.CustomerDetails{
			FName: reservation.Name,
			Email: reservation.Email,
			Phone: reservation.Phone,
		},
	}

	resp, err := ps.client.ChargeTransaction(req)
	if err != nil {
		return nil, fmt.Errorf("midtrans charge: %v", err)
	}
	return resp, nil
}

// CheckStatus fetches and maps the transaction status for an order id.
func (ps *PaymentService) CheckStatus(orderID string) (string, error) {
	resp, err := ps.client.CheckTransaction(orderID)
	if err != nil {
		return "", fmt.Errorf("midtrans status check: %v", err)
	}
	return mapTransactionStatus(resp.TransactionStatus), nil
}

func mapTransactionStatus(status string) string {
	switch status {
	case "capture", "settlement":
		return "success"
	case "pending", "authorize":
		return "pending"
	case "deny", "cancel", "expire", "failure":
		return "failed"
	default:
		return "unknown"
	}
}
