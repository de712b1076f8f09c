package m_mart

import "cloud.google.com/go/bigquery"

// Row is the shape produced by the labeled-line query. Order number, line
// and label are nullable in the mart; rows missing any of them cannot join
// and are dropped by the provider.
type Row struct {
	CompanyCode  string              `bigquery:"company_code"`
	OrderNumber  bigquery.NullString `bigquery:"order_number"`
	OrderLine    bigquery.NullInt64  `bigquery:"order_line"`
	ProductLabel bigquery.NullString `bigquery:"product_label"`
}

// CompanyRow is the shape produced by the company-code resolution query.
type CompanyRow struct {
	CompanyCode string `bigquery:"company_code"`
}
