package gateway

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"stripe-accounting-export/internal/domain"
)

// reportHeader is the fixed column order of the accounting export,
// in the vocabulary of the bookkeeping tool consuming it.
var reportHeader = []string{
	"qui paye ?",
	"date",
	"qui reçoit",
	"poste",
	"montant",
	"nature",
	"pointage",
	"note",
	"facture correspondante",
}

// CSVReportWriter implements the usecase.ReportWriter interface with a
// delimited file on the local filesystem.
type CSVReportWriter struct{}

// NewCSVReportWriter creates a new writer instance.
func NewCSVReportWriter() *CSVReportWriter {
	return &CSVReportWriter{}
}

// Write serializes the entries to path, creating parent directories as
// needed and overwriting any previous report. Entries are written in
// the order given; dates are localized here, everything else verbatim.
func (w *CSVReportWriter) Write(path string, entries []domain.AccountingEntry) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create report directory %s: %w", dir, err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file %s: %w", path, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(reportHeader); err != nil {
		return fmt.Errorf("failed to write header to %s: %w", path, err)
	}

	for _, entry := range entries {
		record := []string{
			entry.Payer,
			entry.Date.Format(domain.DisplayDateFormat),
			entry.Receiver,
			entry.Post,
			entry.Amount,
			entry.Nature,
			entry.Pointage,
			entry.Note,
			entry.Invoice,
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write entry to %s: %w", path, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush report %s: %w", path, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close report %s: %w", path, err)
	}
	return nil
}
