// Package catalog implements the storefront listing pipeline: building a
// filter predicate from listing selections, resolving the sort order,
// computing the page window and assembling a listing from a Repository.
package catalog

import (
	"strings"

	domain "github.com/donaldgifford/storefront-catalog/pkg/types"
)

// Field names a filterable product attribute.
type Field string

// Filterable product fields.
const (
	FieldName     Field = "name"
	FieldBrand    Field = "brand"
	FieldCategory Field = "category"
	FieldColor    Field = "color"
	FieldSize     Field = "size"
	FieldGender   Field = "gender"
)

// searchFields are matched by a free-text search.
var searchFields = []Field{FieldName, FieldBrand, FieldCategory}

// Selections are the raw filter inputs of a listing request. A nil or empty
// slice means the dimension is absent.
type Selections struct {
	Brands     []string
	Categories []string
	Colors     []string
	Sizes      []string
	Gender     domain.Gender
	Search     string
}

// Clause is one condition of a Predicate. Implementations are InClause,
// EqClause and ContainsClause.
type Clause interface {
	clause()
}

// InClause requires the field to hold one of Values.
type InClause struct {
	Field  Field
	Values []string
}

// EqClause requires the field to equal Value.
type EqClause struct {
	Field Field
	Value string
}

// ContainsClause requires at least one of Fields to contain Term as a
// case-insensitive literal substring.
type ContainsClause struct {
	Fields []Field
	Term   string
}

func (InClause) clause()       {}
func (EqClause) clause()       {}
func (ContainsClause) clause() {}

// Predicate is a conjunction of clauses. The zero value matches everything.
type Predicate struct {
	Clauses []Clause
}

// MatchAll reports whether the predicate imposes no constraint.
func (p *Predicate) MatchAll() bool {
	return p == nil || len(p.Clauses) == 0
}

// BuildFilter turns listing selections into a Predicate. Each present
// dimension contributes exactly one clause, in the order brand, category,
// color, size, gender, search.
func BuildFilter(sel Selections) *Predicate {
	p := &Predicate{}

	dims := []struct {
		field  Field
		values []string
	}{
		{FieldBrand, sel.Brands},
		{FieldCategory, sel.Categories},
		{FieldColor, sel.Colors},
		{FieldSize, sel.Sizes},
	}
	for _, d := range dims {
		if vals := NormalizeValues(d.values); len(vals) > 0 {
			p.Clauses = append(p.Clauses, InClause{Field: d.field, Values: vals})
		}
	}

	if sel.Gender != domain.GenderAny {
		p.Clauses = append(p.Clauses, EqClause{Field: FieldGender, Value: string(sel.Gender)})
	}

	if term := strings.TrimSpace(sel.Search); term != "" {
		p.Clauses = append(p.Clauses, ContainsClause{
			Fields: append([]Field(nil), searchFields...),
			Term:   term,
		})
	}

	return p
}

// NormalizeValues trims values, drops blanks and removes duplicates while
// keeping first-seen order. It returns nil when nothing is left.
func NormalizeValues(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(values))
	var out []string
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// Match evaluates the predicate against a product in memory. Store
// renderers must agree with these semantics.
func (p *Predicate) Match(prod *domain.Product) bool {
	if p.MatchAll() {
		return true
	}
	for _, c := range p.Clauses {
		if !matchClause(c, prod) {
			return false
		}
	}
	return true
}

func matchClause(c Clause, prod *domain.Product) bool {
	switch c := c.(type) {
	case InClause:
		for _, have := range fieldValues(prod, c.Field) {
			for _, want := range c.Values {
				if have == want {
					return true
				}
			}
		}
		return false
	case EqClause:
		for _, have := range fieldValues(prod, c.Field) {
			if have == c.Value {
				return true
			}
		}
		return false
	case ContainsClause:
		term := strings.ToLower(c.Term)
		for _, f := range c.Fields {
			for _, have := range fieldValues(prod, f) {
				if strings.Contains(strings.ToLower(have), term) {
					return true
				}
			}
		}
		return false
	default:
		return false
	}
}

func fieldValues(prod *domain.Product, f Field) []string {
	switch f {
	case FieldName:
		return []string{prod.Name}
	case FieldBrand:
		return []string{prod.Brand}
	case FieldCategory:
		return []string{prod.Category}
	case FieldColor:
		return prod.Colors
	case FieldSize:
		return prod.SizeNames()
	case FieldGender:
		return []string{string(prod.Gender)}
	default:
		return nil
	}
}
