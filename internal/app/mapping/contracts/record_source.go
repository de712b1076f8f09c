package contracts

import (
	"context"

	"github.com/light-bringer/prodmap-service/internal/app/mapping/domain"
)

// RecordSource supplies the two input record sets for one resolution run.
// Implementations are interchangeable: a live source that queries the
// analytical store, and a synthetic source that generates sample data.
// The resolver is indifferent to which one supplied the records.
type RecordSource interface {
	// CompanyCodes resolves the configured entity allow-list to the company
	// codes the run is restricted to.
	CompanyCodes(ctx context.Context) ([]string, error)

	// OrderLines fetches the order-line records for the given companies,
	// pre-filtered to orders on or after the configured cutoff date.
	OrderLines(ctx context.Context, companyCodes []string) ([]domain.OrderLineRecord, error)

	// LabeledLines fetches the labeled records for the given companies.
	LabeledLines(ctx context.Context, companyCodes []string) ([]domain.LabeledRecord, error)
}
