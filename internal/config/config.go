// Package config holds every recognized option for a mapping run. Options
// are read once from the environment; nothing below the CLI reads ambient
// process state.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"cloud.google.com/go/civil"

	"github.com/light-bringer/prodmap-service/internal/app/mapping/domain"
	"github.com/light-bringer/prodmap-service/internal/models/m_mart"
	"github.com/light-bringer/prodmap-service/internal/models/m_orderline"
)

// Export formats.
const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
)

// Fallback entity allow-list files, checked in order when ENTITIES_FILE is
// not set. The private file is gitignored; the sample file is checked in.
const (
	privateEntitiesFile = "entities.private.json"
	sampleEntitiesFile  = "entities.sample.json"
)

// Config enumerates every option of a mapping run.
type Config struct {
	// BigQuery connection.
	ProjectID string
	Location  string

	// Order-line source dataset and tables.
	SrcDataset    string
	TblSalesLines string
	TblSalesOrder string
	TblSalesItem  string

	// Mart dataset, table, and the per-deployment column-name overrides.
	MartDataset         string
	TblMart             string
	ColMartOrder        string
	ColMartOrderLine    string
	ColMartProductLabel string

	// Orders entered before this date are excluded upstream.
	CutoffDate civil.Date

	// Entity allow-list: file path and the loaded names.
	EntitiesFile string
	Entities     []string

	// Export destination.
	ExportDir    string
	ExportFormat string

	// Seed for the synthetic record source.
	SyntheticSeed int64
}

// Load reads configuration from environment variables with defaults.
func Load() (*Config, error) {
	cutoffRaw := getEnvOrDefault("CUTOFF_DATE", "2025-01-01")
	cutoff, err := civil.ParseDate(cutoffRaw)
	if err != nil {
		return nil, fmt.Errorf("invalid CUTOFF_DATE %q: %w", cutoffRaw, err)
	}

	seedRaw := getEnvOrDefault("SYNTHETIC_SEED", "7")
	seed, err := strconv.ParseInt(seedRaw, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid SYNTHETIC_SEED %q: %w", seedRaw, err)
	}

	return &Config{
		ProjectID: os.Getenv("BQ_PROJECT_ID"),
		Location:  getEnvOrDefault("BQ_LOCATION", "EU"),

		SrcDataset:    getEnvOrDefault("SRC_DATASET", "source_dataset"),
		TblSalesLines: getEnvOrDefault("TBL_SALES_LINES", m_orderline.DefaultTableSalesLines),
		TblSalesOrder: getEnvOrDefault("TBL_SALES_ORDER", m_orderline.DefaultTableSalesOrder),
		TblSalesItem:  getEnvOrDefault("TBL_SALES_ITEM", m_orderline.DefaultTableSalesItem),

		MartDataset:         getEnvOrDefault("MART_DATASET", "mart_sales"),
		TblMart:             getEnvOrDefault("TBL_MART", m_mart.DefaultTableName),
		ColMartOrder:        getEnvOrDefault("COL_MG_ORDER", m_mart.DefaultColOrder),
		ColMartOrderLine:    getEnvOrDefault("COL_MG_ORDER_LINE", m_mart.DefaultColOrderLine),
		ColMartProductLabel: getEnvOrDefault("COL_MG_PRODUCT_L5", m_mart.DefaultColProductLabel),

		CutoffDate: cutoff,

		EntitiesFile: os.Getenv("ENTITIES_FILE"),

		ExportDir:    getEnvOrDefault("EXPORT_DIR", "exports"),
		ExportFormat: getEnvOrDefault("EXPORT_FORMAT", FormatXLSX),

		SyntheticSeed: seed,
	}, nil
}

// Validate rejects impossible option combinations.
func (c *Config) Validate() error {
	switch c.ExportFormat {
	case FormatCSV, FormatXLSX:
	default:
		return fmt.Errorf("unknown export format %q (want %q or %q)", c.ExportFormat, FormatCSV, FormatXLSX)
	}
	return nil
}

// LoadEntities reads the entity allow-list into c.Entities. An explicit
// EntitiesFile wins; otherwise the private file is preferred over the
// checked-in sample.
func (c *Config) LoadEntities() error {
	path := c.EntitiesFile
	if path == "" {
		if _, err := os.Stat(privateEntitiesFile); err == nil {
			path = privateEntitiesFile
		} else {
			path = sampleEntitiesFile
		}
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read entities file %s: %w", path, err)
	}

	var entities []string
	if err := json.Unmarshal(raw, &entities); err != nil {
		return fmt.Errorf("failed to parse entities file %s: %w", path, err)
	}
	if len(entities) == 0 {
		return fmt.Errorf("%s: %w", path, domain.ErrNoEntities)
	}

	c.Entities = entities
	return nil
}

func getEnvOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
