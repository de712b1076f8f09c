package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/light-bringer/prodmap-service/internal/app/mapping/contracts"
	"github.com/light-bringer/prodmap-service/internal/app/mapping/domain"
	"github.com/light-bringer/prodmap-service/internal/pkg/clock"
)

// SheetName is the worksheet the mapping is written to.
const SheetName = "mapping"

// XLSXExporter writes the mapping as an Excel workbook with a single
// "mapping" sheet.
type XLSXExporter struct {
	dir   string
	clock clock.Clock
}

// NewXLSXExporter creates an xlsx exporter writing under dir.
func NewXLSXExporter(dir string, clk clock.Clock) contracts.Exporter {
	return &XLSXExporter{dir: dir, clock: clk}
}

// Export writes one row per resolved mapping and returns the file path.
func (e *XLSXExporter) Export(_ context.Context, mappings []domain.ResolvedMapping) (string, error) {
	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}

	name := fmt.Sprintf("product_map_%s.xlsx", e.clock.Now().Format(filenameTimeLayout))
	path := filepath.Join(e.dir, name)

	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(SheetName)
	if err != nil {
		return "", fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return "", fmt.Errorf("failed to remove default sheet: %w", err)
	}

	header := make([]interface{}, len(columns))
	for i, c := range columns {
		header[i] = c
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return "", fmt.Errorf("failed to write header: %w", err)
	}

	for i, m := range mappings {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return "", fmt.Errorf("failed to compute cell name: %w", err)
		}
		row := []interface{}{m.CompanyCode, m.ItemID, m.ProductLabel}
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return "", fmt.Errorf("failed to write row: %w", err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("failed to save workbook: %w", err)
	}
	return path, nil
}
