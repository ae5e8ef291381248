package gateway

import (
	"context"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"

	"stripe-accounting-export/internal/domain"
)

// StripeGateway implements the usecase.PaymentGateway interface against
// the live Stripe API. Stripe objects are mapped to domain snapshots at
// this boundary; nothing above it imports stripe-go.
type StripeGateway struct {
	api *client.API
}

// NewStripeGateway creates a gateway authenticated with the given
// private API key.
func NewStripeGateway(apiKey string) *StripeGateway {
	api := &client.API{}
	api.Init(apiKey, nil)
	return &StripeGateway{api: api}
}

// ListCharges fetches a single page of charges created within
// [createdGTE, createdLTE]. Single-page mode keeps the pagination
// cursor under the caller's control instead of the iterator's.
func (g *StripeGateway) ListCharges(ctx context.Context, createdGTE, createdLTE int64, startingAfter string, limit int64) (domain.ChargePage, error) {
	params := &stripe.ChargeListParams{
		CreatedRange: &stripe.RangeQueryParams{
			GreaterThanOrEqual: createdGTE,
			LesserThanOrEqual:  createdLTE,
		},
	}
	params.Context = ctx
	params.Limit = stripe.Int64(limit)
	params.Single = true
	if startingAfter != "" {
		params.StartingAfter = stripe.String(startingAfter)
	}

	iter := g.api.Charges.List(params)
	var page domain.ChargePage
	for iter.Next() {
		page.Charges = append(page.Charges, chargeFromStripe(iter.Charge()))
	}
	if err := iter.Err(); err != nil {
		return domain.ChargePage{}, err
	}
	page.HasMore = iter.ChargeList().ListMeta.HasMore
	return page, nil
}

// GetBalanceTransaction fetches the ledger entry of a charge.
func (g *StripeGateway) GetBalanceTransaction(ctx context.Context, id string) (domain.BalanceTransaction, error) {
	params := &stripe.BalanceTransactionParams{}
	params.Context = ctx
	txn, err := g.api.BalanceTransactions.Get(id, params)
	if err != nil {
		return domain.BalanceTransaction{}, err
	}
	return domain.BalanceTransaction{Amount: txn.Amount, Fee: txn.Fee, Net: txn.Net}, nil
}

// GetInvoice fetches an invoice by id.
func (g *StripeGateway) GetInvoice(ctx context.Context, id string) (domain.Invoice, error) {
	params := &stripe.InvoiceParams{}
	params.Context = ctx
	invoice, err := g.api.Invoices.Get(id, params)
	if err != nil {
		return domain.Invoice{}, err
	}
	return domain.Invoice{Number: invoice.Number}, nil
}

// ListInvoiceItems lists the items attached to an invoice.
func (g *StripeGateway) ListInvoiceItems(ctx context.Context, invoiceID string) ([]domain.LineItem, error) {
	params := &stripe.InvoiceItemListParams{Invoice: stripe.String(invoiceID)}
	params.Context = ctx

	iter := g.api.InvoiceItems.List(params)
	var items []domain.LineItem
	for iter.Next() {
		items = append(items, domain.LineItem{Description: iter.InvoiceItem().Description})
	}
	return items, iter.Err()
}

// ListCheckoutSessions lists the checkout sessions of a payment intent.
func (g *StripeGateway) ListCheckoutSessions(ctx context.Context, paymentIntentID string) ([]domain.CheckoutSession, error) {
	params := &stripe.CheckoutSessionListParams{PaymentIntent: stripe.String(paymentIntentID)}
	params.Context = ctx

	iter := g.api.CheckoutSessions.List(params)
	var sessions []domain.CheckoutSession
	for iter.Next() {
		sessions = append(sessions, domain.CheckoutSession{ID: iter.CheckoutSession().ID})
	}
	return sessions, iter.Err()
}

// ListSessionLineItems lists the line items of a checkout session.
func (g *StripeGateway) ListSessionLineItems(ctx context.Context, sessionID string) ([]domain.LineItem, error) {
	params := &stripe.CheckoutSessionListLineItemsParams{Session: stripe.String(sessionID)}
	params.Context = ctx

	iter := g.api.CheckoutSessions.ListLineItems(params)
	var items []domain.LineItem
	for iter.Next() {
		items = append(items, domain.LineItem{Description: iter.LineItem().Description})
	}
	return items, iter.Err()
}

// chargeFromStripe maps a stripe charge to its domain snapshot.
// Expandable references arrive as objects carrying only an id.
func chargeFromStripe(c *stripe.Charge) domain.Charge {
	charge := domain.Charge{
		ID:      c.ID,
		Created: c.Created,
		Paid:    c.Paid,
		Status:  string(c.Status),
	}
	if c.BalanceTransaction != nil {
		charge.BalanceTransaction = c.BalanceTransaction.ID
	}
	if c.Invoice != nil {
		charge.Invoice = c.Invoice.ID
	}
	if c.PaymentIntent != nil {
		charge.PaymentIntent = c.PaymentIntent.ID
	}
	return charge
}
