// Package filter builds the optional-filter predicates used to list records.
//
// A Predicate is a conjunction of clauses. Each clause carries the same
// condition twice: as a SQL fragment GORM pushes down to the database, and as
// a Go matcher that evaluates a record in memory. Both forms select the same
// records, so a Predicate can be applied with Scope against a store or with
// Filter against a slice interchangeably.
package filter

import (
	"strings"

	"gorm.io/gorm"

	"expensetracker/internal/models"
)

// Clause is a single condition over records of type T.
type Clause[T any] struct {
	SQL   string
	Args  []interface{}
	Match func(T) bool
}

// Predicate is the logical AND of its clauses. The zero value matches everything.
type Predicate[T any] struct {
	clauses []Clause[T]
}

// And returns a predicate that additionally requires c.
func (p Predicate[T]) And(c Clause[T]) Predicate[T] {
	clauses := make([]Clause[T], len(p.clauses), len(p.clauses)+1)
	copy(clauses, p.clauses)
	return Predicate[T]{clauses: append(clauses, c)}
}

// Len returns the number of active clauses.
func (p Predicate[T]) Len() int {
	return len(p.clauses)
}

// Matches reports whether r satisfies every clause.
func (p Predicate[T]) Matches(r T) bool {
	for _, c := range p.clauses {
		if !c.Match(r) {
			return false
		}
	}
	return true
}

// Filter returns the records matching p, preserving their order.
func (p Predicate[T]) Filter(records []T) []T {
	out := make([]T, 0, len(records))
	for _, r := range records {
		if p.Matches(r) {
			out = append(out, r)
		}
	}
	return out
}

// Scope returns a GORM scope that adds one WHERE condition per clause.
func (p Predicate[T]) Scope() func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		for _, c := range p.clauses {
			db = db.Where(c.SQL, c.Args...)
		}
		return db
	}
}

// likeEscape is the LIKE escape character. Backslash is avoided because
// MySQL treats it as a string-literal escape.
const likeEscape = "!"

var likeReplacer = strings.NewReplacer(likeEscape, likeEscape+likeEscape, "%", likeEscape+"%", "_", likeEscape+"_")

// present reports whether an optional string filter is set: non-nil and not
// blank after trimming.
func present(s *string) bool {
	return s != nil && strings.TrimSpace(*s) != ""
}

// OnOrAfter matches records dated on or after d.
func OnOrAfter[T any](column string, d models.Date, date func(T) models.Date) Clause[T] {
	return Clause[T]{
		SQL:   column + " >= ?",
		Args:  []interface{}{d},
		Match: func(r T) bool { return !date(r).Before(d.Time) },
	}
}

// OnOrBefore matches records dated on or before d.
func OnOrBefore[T any](column string, d models.Date, date func(T) models.Date) Clause[T] {
	return Clause[T]{
		SQL:   column + " <= ?",
		Args:  []interface{}{d},
		Match: func(r T) bool { return !date(r).After(d.Time) },
	}
}

// AtLeast matches records whose amount is at least bound.
func AtLeast[T any](column string, bound models.Amount, amount func(T) models.Amount) Clause[T] {
	return Clause[T]{
		SQL:   column + " >= ?",
		Args:  []interface{}{bound},
		Match: func(r T) bool { return amount(r).Cmp(bound) >= 0 },
	}
}

// AtMost matches records whose amount is at most bound.
func AtMost[T any](column string, bound models.Amount, amount func(T) models.Amount) Clause[T] {
	return Clause[T]{
		SQL:   column + " <= ?",
		Args:  []interface{}{bound},
		Match: func(r T) bool { return amount(r).Cmp(bound) <= 0 },
	}
}

// Equals matches records whose field is exactly value.
func Equals[T any](column, value string, field func(T) string) Clause[T] {
	return Clause[T]{
		SQL:   column + " = ?",
		Args:  []interface{}{value},
		Match: func(r T) bool { return field(r) == value },
	}
}

// ContainsFold matches records whose field contains needle, ignoring case.
// A NULL field never matches. LIKE metacharacters in needle are escaped so
// they only ever match themselves.
func ContainsFold[T any](column, needle string, field func(T) *string) Clause[T] {
	lower := strings.ToLower(needle)
	return Clause[T]{
		SQL:  "LOWER(" + column + ") LIKE ? ESCAPE '" + likeEscape + "'",
		Args: []interface{}{"%" + likeReplacer.Replace(lower) + "%"},
		Match: func(r T) bool {
			v := field(r)
			return v != nil && strings.Contains(strings.ToLower(*v), lower)
		},
	}
}
