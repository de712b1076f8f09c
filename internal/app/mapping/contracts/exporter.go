package contracts

import (
	"context"

	"github.com/light-bringer/prodmap-service/internal/app/mapping/domain"
)

// Exporter persists a resolved mapping to a tabular file and returns the
// path it was written to. The resolver has no opinion on format or location.
type Exporter interface {
	Export(ctx context.Context, mappings []domain.ResolvedMapping) (string, error)
}
