package usecase

import (
	"context"

	"stripe-accounting-export/internal/domain"
)

// PaymentGateway defines the payment-processor operations the export
// depends on. The usecase layer depends on this interface, not on a
// concrete implementation.
//
//go:generate mockgen -destination=mocks/mock_gateway.go -source=interface.go PaymentGateway
type PaymentGateway interface {
	// ListCharges returns one page of charges created within
	// [createdGTE, createdLTE] (epoch seconds, filtered upstream).
	// startingAfter is the pagination cursor: the id of the last charge
	// of the previous page, or "" for the first page.
	ListCharges(ctx context.Context, createdGTE, createdLTE int64, startingAfter string, limit int64) (domain.ChargePage, error)
	GetBalanceTransaction(ctx context.Context, id string) (domain.BalanceTransaction, error)
	GetInvoice(ctx context.Context, id string) (domain.Invoice, error)
	ListInvoiceItems(ctx context.Context, invoiceID string) ([]domain.LineItem, error)
	ListCheckoutSessions(ctx context.Context, paymentIntentID string) ([]domain.CheckoutSession, error)
	ListSessionLineItems(ctx context.Context, sessionID string) ([]domain.LineItem, error)
}

// ReportWriter serializes the ordered entries to a delimited file.
type ReportWriter interface {
	Write(path string, entries []domain.AccountingEntry) error
}
