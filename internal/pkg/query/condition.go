package query

import (
	"fmt"

	"cloud.google.com/go/bigquery"
)

// Condition represents a WHERE clause condition. Implementations generate
// SQL fragments and parameters using BigQuery's named parameter format
// (@paramName).
type Condition interface {
	// SQL returns the SQL fragment and parameters for this condition.
	// paramIndex is used to generate unique parameter names (@p0, @p1, etc.)
	SQL(paramIndex int) (string, []bigquery.QueryParameter)
}

// eqCondition implements equality comparison (field = value).
type eqCondition struct {
	field string
	value interface{}
}

// Eq creates a WHERE condition for equality comparison.
// Example: Eq("status", "active") generates "status = @p0"
func Eq(field string, value interface{}) Condition {
	return &eqCondition{field: field, value: value}
}

func (c *eqCondition) SQL(paramIndex int) (string, []bigquery.QueryParameter) {
	name := fmt.Sprintf("p%d", paramIndex)
	sql := fmt.Sprintf("%s = @%s", c.field, name)
	return sql, []bigquery.QueryParameter{{Name: name, Value: c.value}}
}

// inCondition implements membership in an array parameter.
type inCondition struct {
	field  string
	values []string
}

// In creates a WHERE condition matching any element of values, using an
// array parameter with UNNEST.
// Example: In("company_code", codes) generates "company_code IN UNNEST(@p0)"
func In(field string, values []string) Condition {
	return &inCondition{field: field, values: values}
}

func (c *inCondition) SQL(paramIndex int) (string, []bigquery.QueryParameter) {
	name := fmt.Sprintf("p%d", paramIndex)
	sql := fmt.Sprintf("%s IN UNNEST(@%s)", c.field, name)
	return sql, []bigquery.QueryParameter{{Name: name, Value: c.values}}
}

// gteCondition implements field >= value.
type gteCondition struct {
	field string
	value interface{}
}

// Gte creates a WHERE condition for a greater-or-equal comparison.
// Example: Gte("OrderEntryDate", cutoff) generates "OrderEntryDate >= @p0"
func Gte(field string, value interface{}) Condition {
	return &gteCondition{field: field, value: value}
}

func (c *gteCondition) SQL(paramIndex int) (string, []bigquery.QueryParameter) {
	name := fmt.Sprintf("p%d", paramIndex)
	sql := fmt.Sprintf("%s >= @%s", c.field, name)
	return sql, []bigquery.QueryParameter{{Name: name, Value: c.value}}
}

// IsNotNull creates a WHERE condition for NOT NULL checks.
// Example: IsNotNull("Dimension3") generates "Dimension3 IS NOT NULL"
func IsNotNull(field string) Condition {
	return &isNotNullCondition{field: field}
}

// isNotNullCondition implements IS NOT NULL comparison.
type isNotNullCondition struct {
	field string
}

func (c *isNotNullCondition) SQL(_ int) (string, []bigquery.QueryParameter) {
	return fmt.Sprintf("%s IS NOT NULL", c.field), nil
}
