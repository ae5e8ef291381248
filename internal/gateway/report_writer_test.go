package gateway

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"stripe-accounting-export/internal/domain"
)

func TestCSVReportWriter_Write(t *testing.T) {
	dir := t.TempDir()
	// Nested directory that does not exist yet.
	path := filepath.Join(dir, "generated_reports", "ecritures_comptables_2024-01-01_to_2024-01-31.csv")

	entries := []domain.AccountingEntry{
		{
			Payer:    domain.PayerMember,
			Date:     time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			Receiver: domain.ReceiverProcessor,
			Post:     string(domain.CategoryServices),
			Amount:   "123,45 €",
			Nature:   domain.NatureCard,
			Note:     domain.NoteSale,
			Invoice:  "20240115_INV-007",
		},
		{
			Payer:    domain.PayerProcessor,
			Date:     time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC),
			Receiver: domain.ReceiverAssociation,
			Post:     domain.PostProcessorCash,
			Amount:   "118,80 €",
			Nature:   domain.NatureCard,
			Pointage: domain.PointageReconciled,
			Note:     domain.NoteTransfer,
		},
	}

	writer := NewCSVReportWriter()
	err := writer.Write(path, entries)
	assert.NoError(t, err)

	content, err := os.ReadFile(path)
	assert.NoError(t, err)

	expected := "qui paye ?,date,qui reçoit,poste,montant,nature,pointage,note,facture correspondante\n" +
		"Membre,15/01/2024,Stripe,prestations de services,\"123,45 €\",cb,,Vente stripe,20240115_INV-007\n" +
		"Stripe,16/01/2024,Association,caisse stripe,\"118,80 €\",cb,x,transfert stripe,\n"
	assert.Equal(t, expected, string(content))
}

func TestCSVReportWriter_Write_HeaderOnlyWhenNoEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")

	writer := NewCSVReportWriter()
	assert.NoError(t, writer.Write(path, nil))

	content, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.Equal(t, "qui paye ?,date,qui reçoit,poste,montant,nature,pointage,note,facture correspondante\n", string(content))
}

func TestCSVReportWriter_Write_OverwritesPreviousReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.csv")
	writer := NewCSVReportWriter()

	first := []domain.AccountingEntry{
		{Payer: domain.PayerMember, Date: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), Amount: "1,00 €"},
		{Payer: domain.PayerMember, Date: time.Date(2024, 1, 11, 0, 0, 0, 0, time.UTC), Amount: "2,00 €"},
	}
	assert.NoError(t, writer.Write(path, first))

	second := []domain.AccountingEntry{
		{Payer: domain.PayerMember, Date: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), Amount: "3,00 €"},
	}
	assert.NoError(t, writer.Write(path, second))

	content, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.NotContains(t, string(content), "1,00")
	assert.Contains(t, string(content), "01/02/2024")
}
