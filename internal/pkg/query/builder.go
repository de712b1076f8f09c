// Package query constructs parameterized SQL SELECT statements for BigQuery.
// Values only ever travel as named query parameters; identifiers are
// validated and backtick-quoted before they reach a statement.
package query

import (
	"fmt"
	"strings"

	"cloud.google.com/go/bigquery"
)

// Direction represents ORDER BY direction.
type Direction int

const (
	// Asc represents ascending order.
	Asc Direction = iota
	// Desc represents descending order.
	Desc
)

// Statement is a finished SQL statement with its named parameters, ready to
// be attached to a bigquery.Query.
type Statement struct {
	SQL    string
	Params []bigquery.QueryParameter
}

// Builder constructs SQL SELECT queries for BigQuery. It provides a fluent
// API for building queries with SELECT expressions, WHERE clauses, ORDER BY
// and LIMIT. Parameter names are auto-generated to prevent manual
// synchronization errors.
type Builder struct {
	table        string
	distinct     bool
	selectExprs  []string
	whereClauses []Condition
	orderByCol   string
	orderByDir   Direction
	limitVal     int64
}

// From creates a new Builder for the specified table reference.
// Use TableRef to produce a validated, fully qualified reference.
func From(table string) *Builder {
	return &Builder{
		table:        table,
		selectExprs:  []string{},
		whereClauses: []Condition{},
	}
}

// Select specifies the expressions to retrieve.
func (b *Builder) Select(exprs ...string) *Builder {
	nb := b.clone()
	nb.selectExprs = append(nb.selectExprs, exprs...)
	return nb
}

// Distinct makes the query a SELECT DISTINCT.
func (b *Builder) Distinct() *Builder {
	nb := b.clone()
	nb.distinct = true
	return nb
}

// Where adds a WHERE condition.
// Multiple calls are combined with AND logic.
func (b *Builder) Where(condition Condition) *Builder {
	nb := b.clone()
	nb.whereClauses = append(nb.whereClauses, condition)
	return nb
}

// OrderBy specifies the column and direction for sorting.
func (b *Builder) OrderBy(column string, direction Direction) *Builder {
	nb := b.clone()
	nb.orderByCol = column
	nb.orderByDir = direction
	return nb
}

// Limit sets the maximum number of rows to return.
func (b *Builder) Limit(limit int64) *Builder {
	nb := b.clone()
	nb.limitVal = limit
	return nb
}

// Build constructs the final Statement with SQL and named parameters.
func (b *Builder) Build() Statement {
	var sql strings.Builder
	var params []bigquery.QueryParameter

	sql.WriteString("SELECT ")
	if b.distinct {
		sql.WriteString("DISTINCT ")
	}
	if len(b.selectExprs) == 0 {
		sql.WriteString("*")
	} else {
		sql.WriteString(strings.Join(b.selectExprs, ", "))
	}

	sql.WriteString(" FROM ")
	sql.WriteString(b.table)

	if len(b.whereClauses) > 0 {
		sql.WriteString(" WHERE ")
		whereParts := make([]string, 0, len(b.whereClauses))
		paramIndex := 0
		for _, condition := range b.whereClauses {
			fragment, condParams := condition.SQL(paramIndex)
			whereParts = append(whereParts, fragment)
			params = append(params, condParams...)
			paramIndex += len(condParams)
		}
		sql.WriteString(strings.Join(whereParts, " AND "))
	}

	if b.orderByCol != "" {
		sql.WriteString(" ORDER BY ")
		sql.WriteString(b.orderByCol)
		if b.orderByDir == Desc {
			sql.WriteString(" DESC")
		} else {
			sql.WriteString(" ASC")
		}
	}

	if b.limitVal > 0 {
		sql.WriteString(" LIMIT @limit")
		params = append(params, bigquery.QueryParameter{Name: "limit", Value: b.limitVal})
	}

	return Statement{
		SQL:    sql.String(),
		Params: params,
	}
}

// clone creates a shallow copy of the builder for immutability.
func (b *Builder) clone() *Builder {
	nb := &Builder{
		table:        b.table,
		distinct:     b.distinct,
		selectExprs:  make([]string, len(b.selectExprs)),
		whereClauses: make([]Condition, len(b.whereClauses)),
		orderByCol:   b.orderByCol,
		orderByDir:   b.orderByDir,
		limitVal:     b.limitVal,
	}
	copy(nb.selectExprs, b.selectExprs)
	copy(nb.whereClauses, b.whereClauses)
	return nb
}

// String returns a human-readable representation for debugging.
func (b *Builder) String() string {
	stmt := b.Build()
	return fmt.Sprintf("SQL: %s\nParams: %v", stmt.SQL, stmt.Params)
}

// TableRef returns a validated, backtick-quoted `project.dataset.table`
// reference.
func TableRef(projectID, dataset, table string) (string, error) {
	for _, part := range []string{projectID, dataset, table} {
		if err := validateIdent(part); err != nil {
			return "", err
		}
	}
	return fmt.Sprintf("`%s.%s.%s`", projectID, dataset, table), nil
}

// QuoteIdent returns a backtick-quoted column identifier. Names containing
// spaces are allowed (the mart schema has them); anything that could escape
// the quoting is rejected.
func QuoteIdent(name string) (string, error) {
	if err := validateIdent(name); err != nil {
		return "", err
	}
	return "`" + name + "`", nil
}

func validateIdent(name string) error {
	if name == "" {
		return fmt.Errorf("empty identifier")
	}
	if strings.ContainsAny(name, "`\\\n\r;.") {
		return fmt.Errorf("invalid identifier %q", name)
	}
	return nil
}
