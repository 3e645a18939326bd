package store

import (
	"fmt"
	"strings"

	"github.com/donaldgifford/storefront-catalog/pkg/catalog"
)

// scalarColumns maps single-valued catalog fields to product columns.
var scalarColumns = map[catalog.Field]string{
	catalog.FieldName:     "name",
	catalog.FieldBrand:    "brand",
	catalog.FieldCategory: "category",
	catalog.FieldGender:   "gender",
}

// validOrderBy maps sort directives to their SQL ORDER BY expressions.
// Every ordering ends with id so that pages are stable.
var validOrderBy = map[catalog.SortDirective]string{
	catalog.SortNone:      "created_at ASC, id ASC",
	catalog.SortPriceAsc:  "sale_price ASC, id ASC",
	catalog.SortPriceDesc: "sale_price DESC, id ASC",
}

const productSummarySelect = `SELECT id, name, brand, category, colors, sizes,
	regular_price, sale_price, offer_price, COALESCE(images->0->>'url', ''), gender, active
FROM products`

const countProductsSelect = "SELECT COUNT(*) FROM products"

// ListingSQL holds the SQL rendering of a storefront listing.
type ListingSQL struct {
	Predicate *catalog.Predicate
	Sort      catalog.SortDirective
	Skip      int
	Limit     int // 0 means no limit
}

// ToSQL builds the WHERE clause, ORDER BY, LIMIT and OFFSET for a listing.
// It returns two SQL strings (one for the data query, one for the count
// query) and the positional parameters shared by both.
func (q *ListingSQL) ToSQL() (dataSQL, countSQL string, args []any) {
	where, args := whereClause(q.Predicate, 1)

	orderClause, ok := validOrderBy[q.Sort]
	if !ok {
		orderClause = validOrderBy[catalog.SortNone]
	}

	dataSQL = fmt.Sprintf("%s%s ORDER BY %s", productSummarySelect, where, orderClause)
	if q.Limit > 0 {
		dataSQL += fmt.Sprintf(" LIMIT %d", q.Limit)
	}
	dataSQL += fmt.Sprintf(" OFFSET %d", max(q.Skip, 0))

	countSQL = countProductsSelect + where

	return dataSQL, countSQL, args
}

// whereClause renders p as " WHERE ..." using placeholders from $start.
// A match-all predicate renders as the empty string.
func whereClause(p *catalog.Predicate, start int) (string, []any) {
	if p.MatchAll() {
		return "", nil
	}

	var (
		conditions []string
		args       []any
	)
	paramIdx := start

	for _, c := range p.Clauses {
		switch c := c.(type) {
		case catalog.InClause:
			conditions = append(conditions, membership(c.Field, paramIdx))
			args = append(args, c.Values)
			paramIdx++
		case catalog.EqClause:
			conditions = append(conditions, membership(c.Field, paramIdx))
			args = append(args, []string{c.Value})
			paramIdx++
		case catalog.ContainsClause:
			ors := make([]string, 0, len(c.Fields))
			for _, f := range c.Fields {
				col, ok := scalarColumns[f]
				if !ok {
					continue
				}
				ors = append(ors, fmt.Sprintf(`%s ILIKE $%d ESCAPE '\'`, col, paramIdx))
			}
			if len(ors) == 0 {
				conditions = append(conditions, "FALSE")
				continue
			}
			conditions = append(conditions, "("+strings.Join(ors, " OR ")+")")
			args = append(args, "%"+escapeLike(c.Term)+"%")
			paramIdx++
		}
	}

	return " WHERE " + strings.Join(conditions, " AND "), args
}

// membership renders "field holds one of $n", where $n is a text array.
func membership(f catalog.Field, paramIdx int) string {
	switch f {
	case catalog.FieldColor:
		return fmt.Sprintf("colors && $%d::text[]", paramIdx)
	case catalog.FieldSize:
		return fmt.Sprintf(
			"EXISTS (SELECT 1 FROM jsonb_array_elements(sizes) s WHERE s->>'size' = ANY($%d::text[]))",
			paramIdx,
		)
	}
	if col, ok := scalarColumns[f]; ok {
		return fmt.Sprintf("%s = ANY($%d::text[])", col, paramIdx)
	}
	return "FALSE"
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike escapes LIKE metacharacters so term matches literally.
func escapeLike(term string) string {
	return likeEscaper.Replace(term)
}
