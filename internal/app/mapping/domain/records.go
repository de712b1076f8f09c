package domain

// LineKey is the composite key shared by both record sources. Two records
// describe the same physical order line exactly when their keys are equal.
type LineKey struct {
	CompanyCode string
	OrderNumber string
	LineNumber  int64
}

// OrderLineRecord is one occurrence of an item on an order line, as reported
// by the order-line source. The (company, order, line) triple is its natural
// key; at most one item per key.
type OrderLineRecord struct {
	CompanyCode string
	OrderNumber string
	LineNumber  int64
	ItemID      string
}

// Key returns the composite join key for this record.
func (r OrderLineRecord) Key() LineKey {
	return LineKey{
		CompanyCode: r.CompanyCode,
		OrderNumber: r.OrderNumber,
		LineNumber:  r.LineNumber,
	}
}

// LabeledRecord is one occurrence of a free-form product label on an order
// line, as reported by the labeled source.
type LabeledRecord struct {
	CompanyCode  string
	OrderNumber  string
	LineNumber   int64
	ProductLabel string
}

// Key returns the composite join key for this record.
func (r LabeledRecord) Key() LineKey {
	return LineKey{
		CompanyCode: r.CompanyCode,
		OrderNumber: r.OrderNumber,
		LineNumber:  r.LineNumber,
	}
}

// ResolvedMapping is the canonical label selected for one (company, item)
// pair. Computed fresh on every run; never mutated after creation.
type ResolvedMapping struct {
	CompanyCode  string
	ItemID       string
	ProductLabel string
}
