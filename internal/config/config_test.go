package config

import (
	"os"
	"path/filepath"
	"testing"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/prodmap-service/internal/app/mapping/domain"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"BQ_PROJECT_ID", "BQ_LOCATION", "SRC_DATASET", "TBL_SALES_LINES",
		"TBL_SALES_ORDER", "TBL_SALES_ITEM", "MART_DATASET", "TBL_MART",
		"COL_MG_ORDER", "COL_MG_ORDER_LINE", "COL_MG_PRODUCT_L5",
		"CUTOFF_DATE", "ENTITIES_FILE", "EXPORT_DIR", "EXPORT_FORMAT",
		"SYNTHETIC_SEED",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "EU", cfg.Location)
	assert.Equal(t, "source_dataset", cfg.SrcDataset)
	assert.Equal(t, "SalesOrderSalesLines", cfg.TblSalesLines)
	assert.Equal(t, "SalesOrder", cfg.TblSalesOrder)
	assert.Equal(t, "SalesItem", cfg.TblSalesItem)
	assert.Equal(t, "mart_sales", cfg.MartDataset)
	assert.Equal(t, "MartEurope", cfg.TblMart)
	assert.Equal(t, "MG Order", cfg.ColMartOrder)
	assert.Equal(t, "MG Order Line Item", cfg.ColMartOrderLine)
	assert.Equal(t, "MG Product - Level 5", cfg.ColMartProductLabel)
	assert.Equal(t, civil.Date{Year: 2025, Month: 1, Day: 1}, cfg.CutoffDate)
	assert.Equal(t, "exports", cfg.ExportDir)
	assert.Equal(t, FormatXLSX, cfg.ExportFormat)
	assert.Equal(t, int64(7), cfg.SyntheticSeed)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("BQ_PROJECT_ID", "my-project")
	t.Setenv("BQ_LOCATION", "US")
	t.Setenv("TBL_MART", "MartAmericas")
	t.Setenv("COL_MG_ORDER", "MG Order Number")
	t.Setenv("CUTOFF_DATE", "2024-06-15")
	t.Setenv("EXPORT_FORMAT", "csv")
	t.Setenv("SYNTHETIC_SEED", "42")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "my-project", cfg.ProjectID)
	assert.Equal(t, "US", cfg.Location)
	assert.Equal(t, "MartAmericas", cfg.TblMart)
	assert.Equal(t, "MG Order Number", cfg.ColMartOrder)
	assert.Equal(t, civil.Date{Year: 2024, Month: 6, Day: 15}, cfg.CutoffDate)
	assert.Equal(t, FormatCSV, cfg.ExportFormat)
	assert.Equal(t, int64(42), cfg.SyntheticSeed)
}

func TestLoad_InvalidValues(t *testing.T) {
	t.Run("bad cutoff date", func(t *testing.T) {
		t.Setenv("CUTOFF_DATE", "01/01/2025")
		_, err := Load()
		assert.ErrorContains(t, err, "CUTOFF_DATE")
	})

	t.Run("bad seed", func(t *testing.T) {
		t.Setenv("SYNTHETIC_SEED", "lucky")
		_, err := Load()
		assert.ErrorContains(t, err, "SYNTHETIC_SEED")
	})
}

func TestValidate(t *testing.T) {
	t.Run("known formats pass", func(t *testing.T) {
		for _, format := range []string{FormatCSV, FormatXLSX} {
			cfg := &Config{ExportFormat: format}
			assert.NoError(t, cfg.Validate())
		}
	})

	t.Run("unknown format fails", func(t *testing.T) {
		cfg := &Config{ExportFormat: "parquet"}
		assert.ErrorContains(t, cfg.Validate(), "parquet")
	})
}

func TestLoadEntities_ExplicitFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "entities.json")
	require.NoError(t, os.WriteFile(path, []byte(`["Acme Blinds", "Shade Co"]`), 0o644))

	cfg := &Config{EntitiesFile: path}
	require.NoError(t, cfg.LoadEntities())
	assert.Equal(t, []string{"Acme Blinds", "Shade Co"}, cfg.Entities)
}

func TestLoadEntities_MissingFile(t *testing.T) {
	cfg := &Config{EntitiesFile: filepath.Join(t.TempDir(), "nope.json")}
	assert.Error(t, cfg.LoadEntities())
}

func TestLoadEntities_EmptyListRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "entities.json")
	require.NoError(t, os.WriteFile(path, []byte(`[]`), 0o644))

	cfg := &Config{EntitiesFile: path}
	assert.ErrorIs(t, cfg.LoadEntities(), domain.ErrNoEntities)
}

func TestLoadEntities_PrivateFilePreferredOverSample(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "entities.sample.json"), []byte(`["Sample Co"]`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "entities.private.json"), []byte(`["Private Co"]`), 0o644))
	t.Chdir(dir)

	cfg := &Config{}
	require.NoError(t, cfg.LoadEntities())
	assert.Equal(t, []string{"Private Co"}, cfg.Entities)
}

func TestLoadEntities_SampleFallback(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "entities.sample.json"), []byte(`["Sample Co"]`), 0o644))
	t.Chdir(dir)

	cfg := &Config{}
	require.NoError(t, cfg.LoadEntities())
	assert.Equal(t, []string{"Sample Co"}, cfg.Entities)
}
