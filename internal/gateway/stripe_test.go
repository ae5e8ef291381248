package gateway

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stripe/stripe-go/v76"

	"stripe-accounting-export/internal/domain"
)

func TestChargeFromStripe(t *testing.T) {
	charge := chargeFromStripe(&stripe.Charge{
		ID:                 "ch_1",
		Created:            1705312800,
		Paid:               true,
		Status:             "succeeded",
		BalanceTransaction: &stripe.BalanceTransaction{ID: "txn_1"},
		Invoice:            &stripe.Invoice{ID: "in_1"},
		PaymentIntent:      &stripe.PaymentIntent{ID: "pi_1"},
	})

	assert.Equal(t, domain.Charge{
		ID:                 "ch_1",
		Created:            1705312800,
		Paid:               true,
		Status:             domain.ChargeStatusSucceeded,
		BalanceTransaction: "txn_1",
		Invoice:            "in_1",
		PaymentIntent:      "pi_1",
	}, charge)
}

func TestChargeFromStripe_MissingReferences(t *testing.T) {
	charge := chargeFromStripe(&stripe.Charge{
		ID:      "ch_2",
		Created: 1705312800,
		Paid:    false,
		Status:  "failed",
	})

	assert.Empty(t, charge.BalanceTransaction)
	assert.Empty(t, charge.Invoice)
	assert.Empty(t, charge.PaymentIntent)
	assert.False(t, charge.Qualifies())
}
