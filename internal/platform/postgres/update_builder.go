package postgres

import (
	"fmt"
	"strings"

	"github.com/pacificaway/pacificaway-api/internal/domain"
)

// UpdateBuilder assembles a parameterized UPDATE from a sparse set of
// column assignments. Column names are always supplied by code, never by
// clients; values are always bound as parameters.
type UpdateBuilder struct {
	table     string
	sets      []string
	args      []any
	where     []string
	whereArgs []any
	returning string
}

// NewUpdateBuilder starts an UPDATE on table.
func NewUpdateBuilder(table string) *UpdateBuilder {
	return &UpdateBuilder{table: table}
}

// Set assigns value to column. A nil value binds NULL.
func (b *UpdateBuilder) Set(column string, value any) *UpdateBuilder {
	b.args = append(b.args, value)
	b.sets = append(b.sets, fmt.Sprintf("%s = $%d", column, len(b.args)))
	return b
}

// SetOptional folds a tri-state value into b: unset is skipped, null binds
// NULL and a present value binds the value.
func SetOptional[T any](b *UpdateBuilder, column string, v domain.Optional[T]) *UpdateBuilder {
	switch {
	case !v.IsSet():
		return b
	case v.IsNull():
		return b.Set(column, nil)
	default:
		return b.Set(column, v.Value())
	}
}

// Where adds an equality predicate. Predicates are ANDed.
func (b *UpdateBuilder) Where(column string, value any) *UpdateBuilder {
	b.where = append(b.where, column)
	b.whereArgs = append(b.whereArgs, value)
	return b
}

// Returning sets the RETURNING column list.
func (b *UpdateBuilder) Returning(columns string) *UpdateBuilder {
	b.returning = columns
	return b
}

// Len reports how many columns have been assigned.
func (b *UpdateBuilder) Len() int {
	return len(b.sets)
}

// Build renders the statement and its arguments. updated_at is bumped
// whenever at least one column is assigned; with no assignments Build
// returns domain.ErrNoUpdates.
func (b *UpdateBuilder) Build() (string, []any, error) {
	if len(b.sets) == 0 {
		return "", nil, domain.ErrNoUpdates
	}

	var sb strings.Builder
	sb.WriteString("UPDATE ")
	sb.WriteString(b.table)
	sb.WriteString(" SET ")
	sb.WriteString(strings.Join(b.sets, ", "))
	sb.WriteString(", updated_at = NOW()")

	args := make([]any, 0, len(b.args)+len(b.whereArgs))
	args = append(args, b.args...)
	for i, column := range b.where {
		if i == 0 {
			sb.WriteString(" WHERE ")
		} else {
			sb.WriteString(" AND ")
		}
		args = append(args, b.whereArgs[i])
		fmt.Fprintf(&sb, "%s = $%d", column, len(args))
	}

	if b.returning != "" {
		sb.WriteString(" RETURNING ")
		sb.WriteString(b.returning)
	}
	return sb.String(), args, nil
}
