package midtrans

import (
	"context"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"fitcoach-backend/domain"
	"fmt"

	"github.com/gofiber/fiber/v2/log"
	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/coreapi"
	"github.com/midtrans/midtrans-go/snap"
)

type (
	MidtransService interface {
		CreateTransaction(ctx context.Context, req domain.MidtransPaymentRequest) (domain.MidtransPaymentResponse, error)
		CheckTransaction(ctx context.Context, orderID string) (domain.MidtransNotification, error)
		VerifySignature(notification domain.MidtransNotification) bool
	}

	midtransService struct {
		serverKey string
		snap      snap.Client
		core      coreapi.Client
	}
)

func NewMidtransService(serverKey string, production bool) MidtransService {
	env := midtrans.Sandbox
	if production {
		env = midtrans.Production
	}

	s := &midtransService{serverKey: serverKey}
	s.snap.New(serverKey, env)
	s.core.New(serverKey, env)
	return s
}

func (s *midtransService) CreateTransaction(_ context.Context, req domain.MidtransPaymentRequest) (domain.MidtransPaymentResponse, error) {
	snapReq := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  req.OrderID,
			GrossAmt: req.Amount,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: req.CustomerName,
			Email: req.Email,
			Phone: req.Phone,
		},
		Items: &[]midtrans.ItemDetails{{
			ID:    req.OrderID,
			Name:  req.ItemName,
			Price: req.Amount,
			Qty:   1,
		}},
	}

	// snap returns a typed *midtrans.Error; compare before it becomes an error interface
	resp, midtransErr := s.snap.CreateTransaction(snapReq)
	if midtransErr != nil {
		log.Errorf("midtrans create transaction %s: %s", req.OrderID, midtransErr.Message)
		return domain.MidtransPaymentResponse{}, fmt.Errorf("%w: %s", domain.ErrPaymentGateway, midtransErr.Message)
	}

	return domain.MidtransPaymentResponse{
		Token:       resp.Token,
		RedirectURL: resp.RedirectURL,
	}, nil
}

func (s *midtransService) CheckTransaction(_ context.Context, orderID string) (domain.MidtransNotification, error) {
	res, midtransErr := s.core.CheckTransaction(orderID)
	if midtransErr != nil {
		log.Errorf("midtrans check transaction %s: %s", orderID, midtransErr.Message)
		return domain.MidtransNotification{}, fmt.Errorf("%w: %s", domain.ErrPaymentGateway, midtransErr.Message)
	}

	return domain.MidtransNotification{
		TransactionID:     res.TransactionID,
		TransactionStatus: res.TransactionStatus,
		TransactionTime:   res.TransactionTime,
		StatusCode:        res.StatusCode,
		SignatureKey:      res.SignatureKey,
		PaymentType:       res.PaymentType,
		OrderID:           res.OrderID,
		GrossAmount:       res.GrossAmount,
		FraudStatus:       res.FraudStatus,
		SettlementTime:    res.SettlementTime,
	}, nil
}

func (s *midtransService) VerifySignature(n domain.MidtransNotification) bool {
	expected := Signature(n.OrderID, n.StatusCode, n.GrossAmount, s.serverKey)
	return subtle.ConstantTimeCompare([]byte(expected), []byte(n.SignatureKey)) == 1
}

// Signature is the hex SHA-512 of order id, status code, gross amount and
// server key, as Midtrans signs its notifications.
func Signature(orderID, statusCode, grossAmount, serverKey string) string {
	sum := sha512.Sum512([]byte(orderID + statusCode + grossAmount + serverKey))
	return hex.EncodeToString(sum[:])
}

// MapStatus converts a Midtrans transaction status into a payment status.
// A captured card payment flagged for review stays pending.
func MapStatus(transactionStatus, fraudStatus string) (string, error) {
	switch transactionStatus {
	case "capture":
		if fraudStatus == "challenge" {
			return domain.PaymentStatusPending, nil
		}
		return domain.PaymentStatusCompleted, nil
	case "settlement":
		return domain.PaymentStatusCompleted, nil
	case "pending", "authorize":
		return domain.PaymentStatusPending, nil
	case "deny", "cancel", "expire", "failure":
		return domain.PaymentStatusFailed, nil
	case "refund", "partial_refund":
		return domain.PaymentStatusRefunded, nil
	}
	return "", fmt.Errorf("%w: %q", domain.ErrUnknownTransactionStatus, transactionStatus)
}
