package m_mart

// Default table and column names for the mart dataset. The three
// label-related columns historically contain spaces and vary between mart
// deployments, so they are configurable; the company columns are fixed.
const (
	DefaultTableName = "MartEurope"

	ColCompanyCode = "CompanyCode"
	ColCompanyName = "CompanyName"

	DefaultColOrder        = "MG Order"
	DefaultColOrderLine    = "MG Order Line Item"
	DefaultColProductLabel = "MG Product - Level 5"
)
