package m_orderline

// Row is the shape produced by the order-line key query. All fields are
// non-null by construction: the query excludes null order numbers and joins
// determine the item.
type Row struct {
	CompanyCode string `bigquery:"company_code"`
	OrderNumber string `bigquery:"order_number"`
	OrderLine   int64  `bigquery:"order_line"`
	SalesItemID string `bigquery:"sales_item_id"`
}
