package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"stripe-accounting-export/internal/domain"
)

// chargePageLimit is the upstream listing page size cap.
const chargePageLimit = 100

// ExportUseCase drives the accounting export: it pages through the
// processor's charges, enriches each qualifying charge and expands it
// into its three accounting entries.
type ExportUseCase struct {
	gateway PaymentGateway
	amounts *domain.AmountFormatter
	log     zerolog.Logger
}

// NewExportUseCase creates a new instance of the usecase.
func NewExportUseCase(gateway PaymentGateway, log zerolog.Logger) *ExportUseCase {
	return &ExportUseCase{
		gateway: gateway,
		amounts: domain.NewFrenchAmountFormatter(),
		log:     log,
	}
}

// Export collects the accounting entries for every charge created
// within [start, end] (UTC midnights, inclusive, filtered upstream),
// sorted by day ascending. Charges sharing a day keep the order the
// processor returned them in. Any gateway failure aborts the whole run:
// partial output must never look like a complete report.
func (uc *ExportUseCase) Export(ctx context.Context, start, end time.Time) ([]domain.AccountingEntry, error) {
	var entries []domain.AccountingEntry

	startingAfter := ""
	for {
		page, err := uc.gateway.ListCharges(ctx, start.Unix(), end.Unix(), startingAfter, chargePageLimit)
		if err != nil {
			return nil, fmt.Errorf("could not list charges: %w", err)
		}

		uc.log.Debug().
			Int("charges", len(page.Charges)).
			Bool("has_more", page.HasMore).
			Str("starting_after", startingAfter).
			Msg("Fetched charge page")

		for _, charge := range page.Charges {
			if !charge.Qualifies() {
				continue
			}
			chargeEntries, err := uc.buildChargeEntries(ctx, charge)
			if err != nil {
				return nil, fmt.Errorf("charge %s: %w", charge.ID, err)
			}
			entries = append(entries, chargeEntries...)
		}

		if !page.HasMore || len(page.Charges) == 0 {
			break
		}
		startingAfter = page.Charges[len(page.Charges)-1].ID
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date.Before(entries[j].Date)
	})

	uc.log.Info().Int("entries", len(entries)).Msg("Export aggregated")
	return entries, nil
}

// buildChargeEntries enriches one qualifying charge and expands it into
// its sale, commission and transfer entries.
func (uc *ExportUseCase) buildChargeEntries(ctx context.Context, charge domain.Charge) ([]domain.AccountingEntry, error) {
	txn, err := uc.gateway.GetBalanceTransaction(ctx, charge.BalanceTransaction)
	if err != nil {
		return nil, fmt.Errorf("could not get balance transaction %s: %w", charge.BalanceTransaction, err)
	}

	day := domain.DayOf(charge.Created)

	items, err := uc.itemsDescription(ctx, charge)
	if err != nil {
		return nil, err
	}
	category := domain.Classify(items)

	invoiceRef := ""
	if charge.Invoice != "" {
		invoice, err := uc.gateway.GetInvoice(ctx, charge.Invoice)
		if err != nil {
			return nil, fmt.Errorf("could not get invoice %s: %w", charge.Invoice, err)
		}
		invoiceRef = domain.CompactDate(day) + "_" + invoice.Number
	}

	return domain.BuildEntries(day, txn, category, invoiceRef, uc.amounts), nil
}

// itemsDescription concatenates the item descriptions attached to a
// charge: its invoice's line items when it has an invoice, otherwise
// the line items of the first checkout session of its payment intent.
func (uc *ExportUseCase) itemsDescription(ctx context.Context, charge domain.Charge) (string, error) {
	switch {
	case charge.Invoice != "":
		items, err := uc.gateway.ListInvoiceItems(ctx, charge.Invoice)
		if err != nil {
			return "", fmt.Errorf("could not list items of invoice %s: %w", charge.Invoice, err)
		}
		return joinDescriptions(items), nil

	case charge.PaymentIntent != "":
		sessions, err := uc.gateway.ListCheckoutSessions(ctx, charge.PaymentIntent)
		if err != nil {
			return "", fmt.Errorf("could not list sessions of payment intent %s: %w", charge.PaymentIntent, err)
		}
		if len(sessions) == 0 {
			return "", nil
		}
		items, err := uc.gateway.ListSessionLineItems(ctx, sessions[0].ID)
		if err != nil {
			return "", fmt.Errorf("could not list line items of session %s: %w", sessions[0].ID, err)
		}
		return joinDescriptions(items), nil

	default:
		return "", nil
	}
}

func joinDescriptions(items []domain.LineItem) string {
	descriptions := make([]string, 0, len(items))
	for _, item := range items {
		descriptions = append(descriptions, item.Description)
	}
	return strings.Join(descriptions, ", ")
}
