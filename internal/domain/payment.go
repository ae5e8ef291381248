package domain

// ChargeStatusSucceeded is the only charge status that produces accounting entries.
const ChargeStatusSucceeded = "succeeded"

// Charge is a read-only snapshot of a payment processor charge. Reference
// fields hold upstream ids and are empty when the charge carries no such
// reference.
type Charge struct {
	ID                 string
	Created            int64 // epoch seconds
	Paid               bool
	Status             string
	BalanceTransaction string
	Invoice            string
	PaymentIntent      string
}

// Qualifies reports whether the charge produces accounting entries.
func (c Charge) Qualifies() bool {
	return c.Paid && c.Status == ChargeStatusSucceeded
}

// ChargePage is one page of the processor's charge listing.
type ChargePage struct {
	Charges []Charge
	HasMore bool
}

// BalanceTransaction is the processor's ledger entry for a charge.
// All values are minor units (cents).
type BalanceTransaction struct {
	Amount int64
	Fee    int64
	Net    int64
}

// Invoice is the subset of an upstream invoice the export needs.
type Invoice struct {
	Number string
}

// CheckoutSession identifies an upstream checkout session.
type CheckoutSession struct {
	ID string
}

// LineItem is a single invoice or checkout-session line item.
type LineItem struct {
	Description string
}
