// Package export persists resolved mappings to tabular files.
package export

import (
	"fmt"

	"github.com/light-bringer/prodmap-service/internal/app/mapping/contracts"
	"github.com/light-bringer/prodmap-service/internal/config"
	"github.com/light-bringer/prodmap-service/internal/pkg/clock"
)

// Output header shared by all formats.
var columns = []string{"company_code", "item_id", "product_label"}

// filenameTimeLayout stamps each export with the run time so consecutive
// runs never overwrite each other.
const filenameTimeLayout = "20060102_150405"

// New creates an Exporter for the given format, writing timestamped files
// under dir.
func New(format, dir string, clk clock.Clock) (contracts.Exporter, error) {
	switch format {
	case config.FormatCSV:
		return NewCSVExporter(dir, clk), nil
	case config.FormatXLSX:
		return NewXLSXExporter(dir, clk), nil
	default:
		return nil, fmt.Errorf("unknown export format %q", format)
	}
}
