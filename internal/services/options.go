package services

import (
	"context"
	"fmt"

	"cloud.google.com/go/bigquery"

	"github.com/light-bringer/prodmap-service/internal/app/mapping/contracts"
	"github.com/light-bringer/prodmap-service/internal/app/mapping/export"
	"github.com/light-bringer/prodmap-service/internal/app/mapping/repo"
	"github.com/light-bringer/prodmap-service/internal/app/mapping/usecases/resolve_mapping"
	"github.com/light-bringer/prodmap-service/internal/config"
	"github.com/light-bringer/prodmap-service/internal/pkg/clock"
)

// ServiceOptions holds all dependencies for one mapping run.
type ServiceOptions struct {
	BigQueryClient *bigquery.Client
	ResolveMapping *resolve_mapping.Interactor
}

// NewServiceOptions creates and wires up all application dependencies.
// The record source is selected explicitly: synthetic sample data when mock
// is set, otherwise a live BigQuery source. Missing connection settings are
// a configuration error, reported before any query runs.
func NewServiceOptions(ctx context.Context, cfg *config.Config, mock bool) (*ServiceOptions, error) {
	opts := &ServiceOptions{}

	var source contracts.RecordSource
	if mock {
		source = repo.NewSyntheticSource(cfg.SyntheticSeed)
	} else {
		if cfg.ProjectID == "" {
			return nil, fmt.Errorf("BQ_PROJECT_ID is required unless running with --mock")
		}
		if err := cfg.LoadEntities(); err != nil {
			return nil, err
		}
		client, err := bigquery.NewClient(ctx, cfg.ProjectID)
		if err != nil {
			return nil, fmt.Errorf("failed to create BigQuery client: %w", err)
		}
		opts.BigQueryClient = client
		source = repo.NewBigQuerySource(client, cfg)
	}

	exporter, err := export.New(cfg.ExportFormat, cfg.ExportDir, clock.NewRealClock())
	if err != nil {
		opts.Close()
		return nil, err
	}

	opts.ResolveMapping = resolve_mapping.NewInteractor(source, exporter)
	return opts, nil
}

// Close closes all resources.
func (s *ServiceOptions) Close() {
	if s.BigQueryClient != nil {
		s.BigQueryClient.Close()
	}
}
