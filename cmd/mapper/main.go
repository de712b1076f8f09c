package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/olekukonko/tablewriter"

	"github.com/light-bringer/prodmap-service/internal/app/mapping/domain"
	"github.com/light-bringer/prodmap-service/internal/config"
	"github.com/light-bringer/prodmap-service/internal/services"
)

// previewRows bounds the mapping preview printed after a run.
const previewRows = 10

var mock = flag.Bool("mock", false, "use synthetic sample data instead of BigQuery")

func main() {
	if err := run(); err != nil {
		log.Fatalf("Failed to run mapper: %v", err)
	}
}

func run() error {
	ctx := context.Background()

	// .env is optional; real deployments configure the environment directly.
	_ = godotenv.Load()
	flag.Parse()
	mockMode := *mock || os.Getenv("USE_MOCK") == "1"

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	runID := uuid.New().String()
	log.Printf("Starting product label mapping run %s", runID)
	if mockMode {
		log.Printf("[%s] Using synthetic sample data (seed %d)", runID, cfg.SyntheticSeed)
	} else {
		log.Printf("[%s] BigQuery project: %s (location %s)", runID, cfg.ProjectID, cfg.Location)
		log.Printf("[%s] Cutoff date: %s", runID, cfg.CutoffDate)
	}

	serviceOpts, err := services.NewServiceOptions(ctx, cfg, mockMode)
	if err != nil {
		return err
	}
	defer serviceOpts.Close()

	result, err := serviceOpts.ResolveMapping.Execute(ctx)
	if err != nil {
		return err
	}

	log.Printf("[%s] Companies: %v", runID, result.CompanyCodes)
	log.Printf("[%s] Order lines: %d, labeled lines: %d", runID, result.OrderLines, result.LabeledLines)
	log.Printf("[%s] Resolved %d (company, item) mappings", runID, len(result.Mappings))
	log.Printf("[%s] Saved: %s", runID, result.Path)

	return printPreview(result.Mappings)
}

// printPreview renders the first few mapping rows as a table on stdout.
func printPreview(mappings []domain.ResolvedMapping) error {
	if len(mappings) == 0 {
		return nil
	}

	table := tablewriter.NewTable(os.Stdout)
	table.Header("company_code", "item_id", "product_label")

	n := len(mappings)
	if n > previewRows {
		n = previewRows
	}
	for _, m := range mappings[:n] {
		if err := table.Append(m.CompanyCode, m.ItemID, m.ProductLabel); err != nil {
			return err
		}
	}
	if err := table.Render(); err != nil {
		return err
	}
	if len(mappings) > n {
		log.Printf("(previewing %d of %d rows)", n, len(mappings))
	}
	return nil
}
