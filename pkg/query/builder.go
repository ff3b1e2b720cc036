package query

import (
	"fmt"
	"strings"
)

// SortField is one ORDER BY term keyed by logical field name.
type SortField struct {
	Field      string
	Descending bool
}

// ParseSortFields parses "name,-createdAt" style input. A leading "-" sorts
// descending. Returns nil for empty input.
func ParseSortFields(s string) []SortField {
	if s == "" {
		return nil
	}

	var fields []SortField
	for part := range strings.SplitSeq(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if after, ok := strings.CutPrefix(part, "-"); ok {
			fields = append(fields, SortField{Field: after, Descending: true})
			continue
		}
		fields = append(fields, SortField{Field: part})
	}
	return fields
}

type condition struct {
	column string
	arg    any
}

// Builder accumulates equality filters and ordering for one projection.
// Fields that are not projected are ignored, so user input never reaches
// the SQL text.
type Builder struct {
	projection  *ProjectionMap
	conditions  []condition
	orderBy     []SortField
	defaultSort []SortField
}

// NewBuilder creates a Builder with defaultSort used when no explicit order
// survives validation.
func NewBuilder(projection *ProjectionMap, defaultSort ...SortField) *Builder {
	return &Builder{projection: projection, defaultSort: defaultSort}
}

// WhereEquals filters field = value. Empty strings and nil are skipped.
func (b *Builder) WhereEquals(field string, value any) *Builder {
	if value == nil {
		return b
	}
	if s, ok := value.(string); ok && s == "" {
		return b
	}
	if col, ok := b.projection.Column(field); ok {
		b.conditions = append(b.conditions, condition{column: col, arg: value})
	}
	return b
}

// OrderByFields replaces the default ordering.
func (b *Builder) OrderByFields(fields []SortField) *Builder {
	b.orderBy = fields
	return b
}

// BuildCount returns a COUNT(*) query honoring the filters.
func (b *Builder) BuildCount() (string, []any) {
	where, args := b.where()
	return fmt.Sprintf("SELECT COUNT(*) FROM %s%s", b.projection.From(), where), args
}

// BuildPage returns a filtered, ordered SELECT with LIMIT and OFFSET
// appended as the final two parameters.
func (b *Builder) BuildPage(limit, offset int) (string, []any) {
	where, args := b.where()
	n := len(args)
	sql := fmt.Sprintf(
		"SELECT %s FROM %s%s%s LIMIT $%d OFFSET $%d",
		b.projection.Columns(),
		b.projection.From(),
		where,
		b.order(),
		n+1, n+2,
	)
	return sql, append(args, limit, offset)
}

// BuildSingle returns a SELECT for the row whose field equals id.
func (b *Builder) BuildSingle(field string, id any) (string, []any) {
	col, ok := b.projection.Column(field)
	if !ok {
		col = field
	}
	sql := fmt.Sprintf(
		"SELECT %s FROM %s WHERE %s = $1",
		b.projection.Columns(),
		b.projection.From(),
		col,
	)
	return sql, []any{id}
}

func (b *Builder) where() (string, []any) {
	if len(b.conditions) == 0 {
		return "", nil
	}

	clauses := make([]string, len(b.conditions))
	args := make([]any, len(b.conditions))
	for i, c := range b.conditions {
		clauses[i] = fmt.Sprintf("%s = $%d", c.column, i+1)
		args[i] = c.arg
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}

func (b *Builder) order() string {
	parts := b.terms(b.orderBy)
	if len(parts) == 0 {
		parts = b.terms(b.defaultSort)
	}
	if len(parts) == 0 {
		return ""
	}
	return " ORDER BY " + strings.Join(parts, ", ")
}

func (b *Builder) terms(fields []SortField) []string {
	var parts []string
	for _, f := range fields {
		col, ok := b.projection.Column(f.Field)
		if !ok {
			continue
		}
		dir := "ASC"
		if f.Descending {
			dir = "DESC"
		}
		parts = append(parts, col+" "+dir)
	}
	return parts
}
