package query

import (
	"fmt"
	"strings"
)

const (
	EmployeesTable = "employees e"
	MachinesTable  = "machines m"
)

// Listing describes a filtered, joined and paginated read. It compiles to
// positional SQL for pgx.
type Listing struct {
	From    string
	Columns string
	Joins   []Join
	Where   []Predicate
	Search  []Search
	Order   Order
	Limit   int
	Offset  int
}

// Select compiles the listing into a row query.
func (l Listing) Select() (string, []any) {
	var b binder

	columns := l.Columns
	if columns == "" {
		columns = "*"
	}

	var sb strings.Builder
	sb.WriteString("SELECT ")
	sb.WriteString(columns)
	l.writeBody(&sb, &b)
	sb.WriteString(l.Order.clause())

	if l.Limit > 0 {
		sb.WriteString(" LIMIT ")
		sb.WriteString(b.bind(l.Limit))
	}
	if l.Offset > 0 {
		sb.WriteString(" OFFSET ")
		sb.WriteString(b.bind(l.Offset))
	}

	return sb.String(), b.args
}

// Count compiles the listing into a COUNT(*) query, ignoring order and paging.
func (l Listing) Count() (string, []any) {
	var b binder

	var sb strings.Builder
	sb.WriteString("SELECT COUNT(*)")
	l.writeBody(&sb, &b)

	return sb.String(), b.args
}

func (l Listing) writeBody(sb *strings.Builder, b *binder) {
	fmt.Fprintf(sb, " FROM %s", l.From)
	for _, j := range l.Joins {
		fmt.Fprintf(sb, " LEFT JOIN %s %s ON %s", j.Table, j.Alias, j.On)
	}

	conds := make([]string, 0, len(l.Where)+len(l.Search))
	for _, p := range l.Where {
		conds = append(conds, p.sql(b))
	}
	for _, s := range l.Search {
		conds = append(conds, s.sql(b))
	}

	if len(conds) > 0 {
		sb.WriteString(" WHERE ")
		sb.WriteString(strings.Join(conds, " AND "))
	}
}
