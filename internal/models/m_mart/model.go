package m_mart

import (
	"fmt"

	"github.com/light-bringer/prodmap-service/internal/pkg/query"
)

// Model provides type-safe SELECT expressions for the mart table, shaping
// its loosely typed columns into the canonical row layout. Column names may
// be overridden per deployment, so every name is validated and quoted.
type Model struct {
	orderCol        string
	orderLineCol    string
	productLabelCol string
}

// NewModel creates a Model with the given label-column overrides. Empty
// overrides fall back to the default mart column names.
func NewModel(orderCol, orderLineCol, productLabelCol string) *Model {
	if orderCol == "" {
		orderCol = DefaultColOrder
	}
	if orderLineCol == "" {
		orderLineCol = DefaultColOrderLine
	}
	if productLabelCol == "" {
		productLabelCol = DefaultColProductLabel
	}
	return &Model{
		orderCol:        orderCol,
		orderLineCol:    orderLineCol,
		productLabelCol: productLabelCol,
	}
}

// SelectExprs returns the SELECT expressions for the labeled-line query.
// Company code and order number are cast to STRING so the composite key has
// one type on both sides of the join; the line number is SAFE_CAST so
// malformed mart values surface as NULL instead of failing the query.
func (m *Model) SelectExprs() ([]string, error) {
	orderCol, err := query.QuoteIdent(m.orderCol)
	if err != nil {
		return nil, fmt.Errorf("invalid order column: %w", err)
	}
	lineCol, err := query.QuoteIdent(m.orderLineCol)
	if err != nil {
		return nil, fmt.Errorf("invalid order-line column: %w", err)
	}
	labelCol, err := query.QuoteIdent(m.productLabelCol)
	if err != nil {
		return nil, fmt.Errorf("invalid product-label column: %w", err)
	}

	return []string{
		fmt.Sprintf("CAST(%s AS STRING) AS company_code", ColCompanyCode),
		fmt.Sprintf("CAST(%s AS STRING) AS order_number", orderCol),
		fmt.Sprintf("SAFE_CAST(%s AS INT64) AS order_line", lineCol),
		fmt.Sprintf("%s AS product_label", labelCol),
	}, nil
}
