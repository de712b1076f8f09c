package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/bigquery"
	"google.golang.org/api/iterator"

	"github.com/light-bringer/prodmap-service/internal/app/mapping/contracts"
	"github.com/light-bringer/prodmap-service/internal/app/mapping/domain"
	"github.com/light-bringer/prodmap-service/internal/config"
	"github.com/light-bringer/prodmap-service/internal/models/m_mart"
	"github.com/light-bringer/prodmap-service/internal/models/m_orderline"
	"github.com/light-bringer/prodmap-service/internal/pkg/query"
)

// BigQuerySource implements RecordSource against BigQuery. All queries use
// named parameters; identifiers come from validated table references. No
// retry logic lives here: remote failures propagate to the caller as-is.
type BigQuerySource struct {
	client *bigquery.Client
	cfg    *config.Config
	mart   *m_mart.Model
}

// NewBigQuerySource creates a live RecordSource backed by BigQuery.
func NewBigQuerySource(client *bigquery.Client, cfg *config.Config) contracts.RecordSource {
	return &BigQuerySource{
		client: client,
		cfg:    cfg,
		mart:   m_mart.NewModel(cfg.ColMartOrder, cfg.ColMartOrderLine, cfg.ColMartProductLabel),
	}
}

// CompanyCodes resolves the entity allow-list to company codes by matching
// normalized entity names against normalized company names in the mart.
func (s *BigQuerySource) CompanyCodes(ctx context.Context) ([]string, error) {
	if len(s.cfg.Entities) == 0 {
		return nil, domain.ErrNoEntities
	}

	stmt, err := companyCodesStmt(s.cfg)
	if err != nil {
		return nil, err
	}

	it, err := s.read(ctx, stmt)
	if err != nil {
		return nil, fmt.Errorf("failed to query company codes: %w", err)
	}

	var codes []string
	for {
		var row m_mart.CompanyRow
		err := it.Next(&row)
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate company codes: %w", err)
		}
		codes = append(codes, row.CompanyCode)
	}

	if len(codes) == 0 {
		return nil, domain.ErrNoCompanyCodes
	}
	return codes, nil
}

// OrderLines fetches distinct (company, order, line, item) keys for the
// given companies, restricted to orders on or after the cutoff date.
func (s *BigQuerySource) OrderLines(ctx context.Context, companyCodes []string) ([]domain.OrderLineRecord, error) {
	stmt, err := orderLinesStmt(s.cfg, companyCodes)
	if err != nil {
		return nil, err
	}

	it, err := s.read(ctx, stmt)
	if err != nil {
		return nil, fmt.Errorf("failed to query order lines: %w", err)
	}

	var records []domain.OrderLineRecord
	for {
		var row m_orderline.Row
		err := it.Next(&row)
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate order lines: %w", err)
		}
		records = append(records, domain.OrderLineRecord{
			CompanyCode: row.CompanyCode,
			OrderNumber: row.OrderNumber,
			LineNumber:  row.OrderLine,
			ItemID:      row.SalesItemID,
		})
	}
	return records, nil
}

// LabeledLines fetches labeled mart rows for the given companies. Rows
// whose key or label fails the SAFE_CAST shaping come back NULL and are
// dropped here; they could never join anyway.
func (s *BigQuerySource) LabeledLines(ctx context.Context, companyCodes []string) ([]domain.LabeledRecord, error) {
	stmt, err := labeledLinesStmt(s.cfg, s.mart, companyCodes)
	if err != nil {
		return nil, err
	}

	it, err := s.read(ctx, stmt)
	if err != nil {
		return nil, fmt.Errorf("failed to query labeled lines: %w", err)
	}

	var records []domain.LabeledRecord
	for {
		var row m_mart.Row
		err := it.Next(&row)
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate labeled lines: %w", err)
		}
		if !row.OrderNumber.Valid || !row.OrderLine.Valid || !row.ProductLabel.Valid {
			continue
		}
		records = append(records, domain.LabeledRecord{
			CompanyCode:  row.CompanyCode,
			OrderNumber:  row.OrderNumber.StringVal,
			LineNumber:   row.OrderLine.Int64,
			ProductLabel: row.ProductLabel.StringVal,
		})
	}
	return records, nil
}

// read executes a statement in the configured location.
func (s *BigQuerySource) read(ctx context.Context, stmt query.Statement) (*bigquery.RowIterator, error) {
	q := s.client.Query(stmt.SQL)
	q.Parameters = stmt.Params
	q.Location = s.cfg.Location
	return q.Read(ctx)
}

// normExpr strips an expression down to lowercase alphanumerics, the
// normalization used to match entity names against mart company names.
func normExpr(expr string) string {
	return fmt.Sprintf("REGEXP_REPLACE(LOWER(TRIM(%s)), r'[^a-z0-9]', '')", expr)
}

// companyCodesStmt builds the company-code resolution query. Entity names
// travel as an array parameter, never as SQL literals.
func companyCodesStmt(cfg *config.Config) (query.Statement, error) {
	martRef, err := query.TableRef(cfg.ProjectID, cfg.MartDataset, cfg.TblMart)
	if err != nil {
		return query.Statement{}, fmt.Errorf("invalid mart table: %w", err)
	}

	sql := fmt.Sprintf(`WITH sup AS (
  SELECT DISTINCT %s AS sup_norm
  FROM UNNEST(@entities) AS name
),
nm AS (
  SELECT DISTINCT
    CAST(%s AS STRING) AS company_code,
    %s AS name_norm
  FROM %s
)
SELECT DISTINCT nm.company_code
FROM nm
JOIN sup ON nm.name_norm = sup.sup_norm
ORDER BY nm.company_code`,
		normExpr("name"),
		m_mart.ColCompanyCode,
		normExpr(m_mart.ColCompanyName),
		martRef,
	)

	return query.Statement{
		SQL: sql,
		Params: []bigquery.QueryParameter{
			{Name: "entities", Value: cfg.Entities},
		},
	}, nil
}

// orderLinesStmt builds the three-table join producing the distinct
// order-line keys with their item identifiers.
func orderLinesStmt(cfg *config.Config, companyCodes []string) (query.Statement, error) {
	linesRef, err := query.TableRef(cfg.ProjectID, cfg.SrcDataset, cfg.TblSalesLines)
	if err != nil {
		return query.Statement{}, fmt.Errorf("invalid sales-lines table: %w", err)
	}
	ordersRef, err := query.TableRef(cfg.ProjectID, cfg.SrcDataset, cfg.TblSalesOrder)
	if err != nil {
		return query.Statement{}, fmt.Errorf("invalid sales-order table: %w", err)
	}
	itemsRef, err := query.TableRef(cfg.ProjectID, cfg.SrcDataset, cfg.TblSalesItem)
	if err != nil {
		return query.Statement{}, fmt.Errorf("invalid sales-item table: %w", err)
	}

	sql := fmt.Sprintf(`SELECT DISTINCT
  sol.%[4]s AS company_code,
  sol.%[5]s AS order_number,
  sol.%[6]s AS order_line,
  si.%[7]s AS sales_item_id
FROM %[1]s AS sol
JOIN %[2]s AS so
  ON so.%[4]s = sol.%[4]s
 AND so.%[8]s = sol.%[5]s
JOIN %[3]s AS si
  ON si.%[9]s = sol.%[10]s
 AND si.%[4]s = sol.%[4]s
WHERE sol.%[4]s IN UNNEST(@codes)
  AND sol.%[5]s IS NOT NULL
  AND so.%[11]s >= @cutoff`,
		linesRef,
		ordersRef,
		itemsRef,
		m_orderline.ColCompanyCode,
		m_orderline.ColDimension3,
		m_orderline.ColLineNumber,
		m_orderline.ColSalesItemID,
		m_orderline.ColSalesOrderNumber,
		m_orderline.ColObjectID,
		m_orderline.ColSalesItem,
		m_orderline.ColOrderEntryDate,
	)

	return query.Statement{
		SQL: sql,
		Params: []bigquery.QueryParameter{
			{Name: "codes", Value: companyCodes},
			{Name: "cutoff", Value: cfg.CutoffDate},
		},
	}, nil
}

// labeledLinesStmt builds the mart fetch through the query builder.
func labeledLinesStmt(cfg *config.Config, mart *m_mart.Model, companyCodes []string) (query.Statement, error) {
	martRef, err := query.TableRef(cfg.ProjectID, cfg.MartDataset, cfg.TblMart)
	if err != nil {
		return query.Statement{}, fmt.Errorf("invalid mart table: %w", err)
	}

	exprs, err := mart.SelectExprs()
	if err != nil {
		return query.Statement{}, err
	}

	companyExpr := fmt.Sprintf("CAST(%s AS STRING)", m_mart.ColCompanyCode)
	stmt := query.From(martRef).
		Select(exprs...).
		Where(query.In(companyExpr, companyCodes)).
		Build()
	return stmt, nil
}
