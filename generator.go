package main

import (
	"time"

	"go.uber.org/zap"
)

// Attachment is a generated document, ready to be written or mailed.
type Attachment struct {
	Filename string
	Data     []byte
}

// generator builds the payroll documents for one company.
type generator struct {
	company  string
	fonts    FontConfig
	holidays []time.Time
	logger   *zap.Logger
	now      func() time.Time
}

func newGenerator(cfg *Config, logger *zap.Logger) (*generator, error) {
	holidays, err := cfg.extraHolidays()
	if err != nil {
		return nil, err
	}
	return &generator{
		company:  cfg.Company,
		fonts:    cfg.Fonts,
		holidays: holidays,
		logger:   logger,
		now:      time.Now,
	}, nil
}

func (g *generator) newRenderer(orientation string) (*renderer, error) {
	return newRenderer(g.fonts, orientation, g.logger)
}
