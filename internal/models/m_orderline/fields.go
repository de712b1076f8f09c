package m_orderline

// Default table names and column constants for the order-line source
// dataset. Table names can be overridden through configuration; column
// names are fixed by the source schema.
const (
	DefaultTableSalesLines = "SalesOrderSalesLines"
	DefaultTableSalesOrder = "SalesOrder"
	DefaultTableSalesItem  = "SalesItem"

	ColCompanyCode = "CompanyCode"
	// ColDimension3 carries the sales order number on the sales-line table.
	ColDimension3       = "Dimension3"
	ColLineNumber       = "LineNumber"
	ColSalesItem        = "SalesItem"
	ColSalesOrderNumber = "SalesOrderNumber"
	ColOrderEntryDate   = "OrderEntryDate"
	ColObjectID         = "ObjectId"
	ColSalesItemID      = "SalesItemId"
)
