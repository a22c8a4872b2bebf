package query

import (
	"fmt"
	"strings"
)

// ProjectionMap maps view field names onto qualified table columns.
type ProjectionMap struct {
	schema  string
	table   string
	alias   string
	columns []string
	views   map[string]string
	lookup  map[string]string
}

// NewProjectionMap creates a projection for schema.table aliased as alias.
func NewProjectionMap(schema, table, alias string) *ProjectionMap {
	return &ProjectionMap{
		schema: schema,
		table:  table,
		alias:  alias,
		views:  make(map[string]string),
		lookup: make(map[string]string),
	}
}

// Project registers column under viewName and returns the map for chaining.
func (p *ProjectionMap) Project(column, viewName string) *ProjectionMap {
	qualified := fmt.Sprintf("%s.%s", p.alias, column)
	p.columns = append(p.columns, qualified)
	p.views[viewName] = qualified
	p.lookup[strings.ToLower(viewName)] = qualified
	p.lookup[strings.ToLower(column)] = qualified
	return p
}

// Alias returns the table alias.
func (p *ProjectionMap) Alias() string {
	return p.alias
}

// Table returns the aliased table reference used in FROM clauses.
func (p *ProjectionMap) Table() string {
	return fmt.Sprintf("%s.%s %s", p.schema, p.table, p.alias)
}

// Column returns the qualified column for viewName, or viewName itself when unknown.
func (p *ProjectionMap) Column(viewName string) string {
	if col, ok := p.views[viewName]; ok {
		return col
	}
	return viewName
}

// Lookup resolves a client-supplied field by view name or column name, ignoring case.
// Unknown fields report false so callers never interpolate raw input into SQL.
func (p *ProjectionMap) Lookup(field string) (string, bool) {
	col, ok := p.lookup[strings.ToLower(field)]
	return col, ok
}

// Columns returns the projected columns joined for a SELECT list.
func (p *ProjectionMap) Columns() string {
	return strings.Join(p.columns, ", ")
}

// ColumnList returns a copy of the projected columns in registration order.
func (p *ProjectionMap) ColumnList() []string {
	list := make([]string, len(p.columns))
	copy(list, p.columns)
	return list
}
