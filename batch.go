package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// ---------------------------------------------------------------------------
// Document Batch
// ---------------------------------------------------------------------------

// Batch lists the documents to build in one run.
type Batch struct {
	Payslips      []Payslip    `yaml:"payslips"`
	SalarySummary []SummaryRow `yaml:"salary_summary"`
	Receipts      []Receipt    `yaml:"receipts"`
	TripReports   []TripReport `yaml:"trip_reports"`
	Ledger        *Ledger      `yaml:"ledger"`
}

func (b *Batch) empty() bool {
	return len(b.Payslips) == 0 && len(b.SalarySummary) == 0 && len(b.Receipts) == 0 &&
		len(b.TripReports) == 0 && (b.Ledger == nil || len(b.Ledger.Entries) == 0)
}

// loadBatch reads a YAML batch file.
func loadBatch(path string) (*Batch, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}

	var b Batch
	if err := yaml.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("failed to parse batch file: %w", err)
	}
	if b.empty() {
		return nil, errors.New("batch file lists no documents")
	}
	return &b, nil
}

// renderBatch builds every document in b.
func (g *generator) renderBatch(b *Batch) ([]Attachment, error) {
	var docs []Attachment
	add := func(kind string, doc Attachment, err error) error {
		if err != nil {
			return fmt.Errorf("%s: %w", kind, err)
		}
		g.logger.Info("document rendered",
			zap.String("kind", kind),
			zap.String("file", doc.Filename),
			zap.Int("bytes", len(doc.Data)))
		docs = append(docs, doc)
		return nil
	}

	if len(b.Payslips) > 0 {
		doc, err := g.createPayslips(b.Payslips)
		if err := add("payslips", doc, err); err != nil {
			return nil, err
		}
	}
	if len(b.SalarySummary) > 0 {
		doc, err := g.createSalarySummary(b.SalarySummary)
		if err := add("salary summary", doc, err); err != nil {
			return nil, err
		}
	}
	for _, rc := range b.Receipts {
		doc, err := g.createReceipt(rc)
		if err := add("voucher", doc, err); err != nil {
			return nil, err
		}
	}
	for _, t := range b.TripReports {
		doc, err := g.createTripReport(t)
		if err := add("trip report", doc, err); err != nil {
			return nil, err
		}
	}
	if b.Ledger != nil && len(b.Ledger.Entries) > 0 {
		summary, err := summarizeLedger(b.Ledger.Label, b.Ledger.Entries)
		if err != nil {
			return nil, fmt.Errorf("ledger: %w", err)
		}
		doc, err := g.createLedger(summary, b.Ledger.Entries)
		if err := add("ledger", doc, err); err != nil {
			return nil, err
		}
	}
	return docs, nil
}

// writeDocuments saves the documents under dir.
func writeDocuments(dir string, docs []Attachment) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output dir: %w", err)
	}
	for _, d := range docs {
		if err := os.WriteFile(filepath.Join(dir, d.Filename), d.Data, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", d.Filename, err)
		}
	}
	return nil
}
