package resolve_mapping

import (
	"context"
	"fmt"

	"github.com/light-bringer/prodmap-service/internal/app/mapping/contracts"
	"github.com/light-bringer/prodmap-service/internal/app/mapping/domain"
)

// Result summarizes one resolution run.
type Result struct {
	Path         string
	CompanyCodes []string
	OrderLines   int
	LabeledLines int
	Mappings     []domain.ResolvedMapping
}

// Interactor handles the resolve mapping use case: fetch both record sets,
// resolve one label per (company, item) pair, and export the result.
type Interactor struct {
	source   contracts.RecordSource
	exporter contracts.Exporter
}

// NewInteractor creates a new resolve mapping interactor.
func NewInteractor(source contracts.RecordSource, exporter contracts.Exporter) *Interactor {
	return &Interactor{
		source:   source,
		exporter: exporter,
	}
}

// Execute runs one resolution end to end. Upstream failures propagate
// without retry, and nothing is exported unless resolution succeeds; there
// is no partial-output mode. An empty mapping is a valid outcome and is
// still exported.
func (i *Interactor) Execute(ctx context.Context) (*Result, error) {
	codes, err := i.source.CompanyCodes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve company codes: %w", err)
	}
	if len(codes) == 0 {
		return nil, domain.ErrNoCompanyCodes
	}

	orderLines, err := i.source.OrderLines(ctx, codes)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch order lines: %w", err)
	}

	labeled, err := i.source.LabeledLines(ctx, codes)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch labeled lines: %w", err)
	}

	mappings := domain.ResolveMappings(orderLines, labeled)

	path, err := i.exporter.Export(ctx, mappings)
	if err != nil {
		return nil, fmt.Errorf("failed to export mapping: %w", err)
	}

	return &Result{
		Path:         path,
		CompanyCodes: codes,
		OrderLines:   len(orderLines),
		LabeledLines: len(labeled),
		Mappings:     mappings,
	}, nil
}
