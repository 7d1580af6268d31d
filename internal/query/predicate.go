package query

import (
	"fmt"
	"strings"
	"time"
)

// CertificateApproved is the certificate status counted as approved.
const CertificateApproved = "approved"

// Predicate is one WHERE condition of a listing. The set of predicates is
// closed: Equals, EitherEquals, DateBetween, DateBefore and ApprovalStatus.
type Predicate interface {
	sql(b *binder) string
}

// Equals matches rows whose field equals Value.
type Equals struct {
	Field Field
	Value any
}

// EitherEquals matches rows where Left or Right equals Value.
type EitherEquals struct {
	Left  Field
	Right Field
	Value any
}

// DateBetween matches rows whose date lies in [From, To].
type DateBetween struct {
	Field Field
	From  time.Time
	To    time.Time
}

// DateBefore matches rows whose date is strictly before At.
type DateBefore struct {
	Field Field
	At    time.Time
}

// ApprovalStatus matches employees whose certificates are all approved, or
// the complement when Approved is false.
type ApprovalStatus struct {
	Approved bool
}

func (p Equals) sql(b *binder) string {
	return fmt.Sprintf("%s = %s", p.Field, b.bind(p.Value))
}

func (p EitherEquals) sql(b *binder) string {
	ph := b.bind(p.Value)
	return fmt.Sprintf("(%s = %s OR %s = %s)", p.Left, ph, p.Right, ph)
}

func (p DateBetween) sql(b *binder) string {
	return fmt.Sprintf("%s BETWEEN %s AND %s", p.Field, b.bind(p.From), b.bind(p.To))
}

func (p DateBefore) sql(b *binder) string {
	return fmt.Sprintf("%s < %s", p.Field, b.bind(p.At))
}

func (p ApprovalStatus) sql(b *binder) string {
	status := b.bind(CertificateApproved)
	approved := fmt.Sprintf("(EXISTS (SELECT 1 FROM employee_certificates ec WHERE ec.employee_id = %[1]s AND ec.is_delete = 0)"+
		" AND NOT EXISTS (SELECT 1 FROM employee_certificates ec WHERE ec.employee_id = %[1]s AND ec.is_delete = 0 AND ec.status <> %[2]s))",
		EmployeeID, status)
	if p.Approved {
		return approved
	}

	return "NOT " + approved
}

// Search is a case-insensitive containment match of Term against any of
// Fields. Searches are ANDed with each other and with the predicates.
type Search struct {
	Fields []Field
	Term   string
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func (s Search) sql(b *binder) string {
	ph := b.bind("%" + likeEscaper.Replace(s.Term) + "%")

	parts := make([]string, 0, len(s.Fields))
	for _, f := range s.Fields {
		parts = append(parts, fmt.Sprintf("%s::text ILIKE %s", f, ph))
	}

	return "(" + strings.Join(parts, " OR ") + ")"
}

type binder struct {
	args []any
}

func (b *binder) bind(v any) string {
	b.args = append(b.args, v)
	return fmt.Sprintf("$%d", len(b.args))
}
