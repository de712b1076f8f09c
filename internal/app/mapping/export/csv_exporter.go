package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/light-bringer/prodmap-service/internal/app/mapping/contracts"
	"github.com/light-bringer/prodmap-service/internal/app/mapping/domain"
	"github.com/light-bringer/prodmap-service/internal/pkg/clock"
)

// CSVExporter writes the mapping as a CSV file with a header row.
type CSVExporter struct {
	dir   string
	clock clock.Clock
}

// NewCSVExporter creates a CSV exporter writing under dir.
func NewCSVExporter(dir string, clk clock.Clock) contracts.Exporter {
	return &CSVExporter{dir: dir, clock: clk}
}

// Export writes one row per resolved mapping and returns the file path.
// An empty mapping still produces a file with just the header.
func (e *CSVExporter) Export(_ context.Context, mappings []domain.ResolvedMapping) (string, error) {
	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}

	name := fmt.Sprintf("product_map_%s.csv", e.clock.Now().Format(filenameTimeLayout))
	path := filepath.Join(e.dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create export file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(columns); err != nil {
		return "", fmt.Errorf("failed to write header: %w", err)
	}
	for _, m := range mappings {
		if err := w.Write([]string{m.CompanyCode, m.ItemID, m.ProductLabel}); err != nil {
			return "", fmt.Errorf("failed to write row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("failed to flush export file: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to close export file: %w", err)
	}
	return path, nil
}
