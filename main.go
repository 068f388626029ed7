// Package main generates Thai payroll documents as PDF: payslips, salary
// summaries, payment vouchers, daily trip reports and income/expense ledgers.
//
// Documents are described in a YAML batch file, written to the configured
// output directory and, when SMTP is configured, emailed as one message.
// Amounts on vouchers and payslips are also printed in Thai words.
//
// Usage:
//
//	payrolldocs render documents.yaml
//	payrolldocs bahttext 1250.50
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"payrolldocs/bahttext"
)

const (
	version = "1.0.0"

	configFile = "config.yaml"
)

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: payrolldocs <command> [arguments]")
	fmt.Fprintln(os.Stderr, "Commands: render <documents.yaml>, bahttext <amount>, --version")
}

// run renders a batch file and delivers the documents.
func run(logger *zap.Logger, cfg *Config, batchPath string) error {
	batch, err := loadBatch(batchPath)
	if err != nil {
		return err
	}

	g, err := newGenerator(cfg, logger)
	if err != nil {
		return err
	}
	docs, err := g.renderBatch(batch)
	if err != nil {
		return err
	}

	if err := writeDocuments(cfg.OutputDir, docs); err != nil {
		return err
	}
	logger.Info("documents written", zap.String("dir", cfg.OutputDir), zap.Int("count", len(docs)))

	if !cfg.EmailEnabled() {
		logger.Info("email not configured, skipping delivery")
		return nil
	}
	subject := "เอกสารเงินเดือน " + formatThaiDate(g.now())
	if err := sendEmail(cfg, subject, docs...); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	logger.Info("documents emailed", zap.String("to", cfg.Email.To))
	return nil
}

func main() {
	if len(os.Args) > 1 && (os.Args[1] == "--version" || os.Args[1] == "-v") {
		fmt.Printf("payrolldocs v%s\n", version)
		return
	}
	if len(os.Args) < 3 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "bahttext":
		words, err := bahttext.Parse(os.Args[2])
		if err != nil {
			fmt.Fprintln(os.Stderr, "Invalid amount:", err)
			os.Exit(1)
		}
		fmt.Println(words)

	case "render":
		_ = godotenv.Load()
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Failed to create logger:", err)
			os.Exit(1)
		}
		defer logger.Sync()

		cfg, err := loadConfig(configFile, os.Getenv("PAYROLLDOCS_CONFIG"))
		if err != nil {
			logger.Fatal("load config failed", zap.Error(err))
		}
		applyEnv(cfg)

		if err := run(logger, cfg, os.Args[2]); err != nil {
			logger.Fatal("render failed", zap.Error(err))
		}

	default:
		usage()
		os.Exit(2)
	}
}
