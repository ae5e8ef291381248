package domain

import "time"

// Row literals of the accounting export. The report is consumed by a
// French bookkeeping tool, so the values are business vocabulary, not
// display strings to be translated.
const (
	PayerMember         = "Membre"
	PayerProcessor      = "Stripe"
	ReceiverProcessor   = "Stripe"
	ReceiverAssociation = "Association"

	PostCommissions   = "commissions"
	PostProcessorCash = "caisse stripe"

	NatureCard        = "cb"
	NatureDirectDebit = "prv"

	PointageReconciled = "x"

	NoteSale       = "Vente stripe"
	NoteCommission = "commission stripe"
	NoteTransfer   = "transfert stripe"
)

// AccountingEntry is one line of the output report: a single
// payer->receiver movement with its bookkeeping post. Date is the UTC
// day of the charge and doubles as the sort key; the writer localizes
// it on output. Amount is already formatted by the aggregator.
type AccountingEntry struct {
	Payer    string
	Date     time.Time
	Receiver string
	Post     string
	Amount   string
	Nature   string
	Pointage string
	Note     string
	Invoice  string
}

// BuildEntries expands one qualifying charge into its three accounting
// entries: the member's sale, the processor's commission and the net
// transfer to the association. All three share the charge's day and
// invoice reference, and gross = fee + net.
func BuildEntries(day time.Time, txn BalanceTransaction, category Category, invoiceRef string, amounts *AmountFormatter) []AccountingEntry {
	return []AccountingEntry{
		{
			Payer:    PayerMember,
			Date:     day,
			Receiver: ReceiverProcessor,
			Post:     string(category),
			Amount:   amounts.Format(txn.Amount),
			Nature:   NatureCard,
			Note:     NoteSale,
			Invoice:  invoiceRef,
		},
		{
			Payer:    PayerProcessor,
			Date:     day,
			Receiver: ReceiverProcessor,
			Post:     PostCommissions,
			Amount:   amounts.Format(txn.Fee),
			Nature:   NatureDirectDebit,
			Note:     NoteCommission,
			Invoice:  invoiceRef,
		},
		{
			Payer:    PayerProcessor,
			Date:     day,
			Receiver: ReceiverAssociation,
			Post:     PostProcessorCash,
			Amount:   amounts.Format(txn.Net),
			Nature:   NatureCard,
			Pointage: PointageReconciled,
			Note:     NoteTransfer,
			Invoice:  invoiceRef,
		},
	}
}
