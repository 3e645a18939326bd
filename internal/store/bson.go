package store

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/donaldgifford/storefront-catalog/pkg/catalog"
)

// bsonFields maps catalog fields to product document paths. Array paths
// match when any element matches.
var bsonFields = map[catalog.Field]string{
	catalog.FieldName:     "name",
	catalog.FieldBrand:    "brand",
	catalog.FieldCategory: "category",
	catalog.FieldColor:    "colors",
	catalog.FieldSize:     "sizes.size",
	catalog.FieldGender:   "gender",
}

// bsonSorts maps sort directives to sort documents. SortNone is natural
// (insertion) order; price sorts break ties on _id.
var bsonSorts = map[catalog.SortDirective]bson.D{
	catalog.SortNone:      {{Key: "$natural", Value: 1}},
	catalog.SortPriceAsc:  {{Key: "sale_price", Value: 1}, {Key: "_id", Value: 1}},
	catalog.SortPriceDesc: {{Key: "sale_price", Value: -1}, {Key: "_id", Value: 1}},
}

// predicateBSON renders p as a MongoDB filter document.
func predicateBSON(p *catalog.Predicate) bson.D {
	if p.MatchAll() {
		return bson.D{}
	}

	docs := make(bson.A, 0, len(p.Clauses))
	for _, c := range p.Clauses {
		docs = append(docs, clauseBSON(c))
	}
	if len(docs) == 1 {
		return docs[0].(bson.D)
	}
	return bson.D{{Key: "$and", Value: docs}}
}

func clauseBSON(c catalog.Clause) bson.D {
	switch c := c.(type) {
	case catalog.InClause:
		return bson.D{{Key: bsonFields[c.Field], Value: bson.D{{Key: "$in", Value: c.Values}}}}
	case catalog.EqClause:
		return bson.D{{Key: bsonFields[c.Field], Value: c.Value}}
	case catalog.ContainsClause:
		re := primitive.Regex{Pattern: regexp.QuoteMeta(c.Term), Options: "i"}
		ors := make(bson.A, 0, len(c.Fields))
		for _, f := range c.Fields {
			ors = append(ors, bson.D{{Key: bsonFields[f], Value: re}})
		}
		return bson.D{{Key: "$or", Value: ors}}
	default:
		// Unknown clause kinds match nothing.
		return bson.D{{Key: "_id", Value: bson.D{{Key: "$exists", Value: false}}}}
	}
}

func sortBSON(d catalog.SortDirective) bson.D {
	if s, ok := bsonSorts[d]; ok {
		return s
	}
	return bsonSorts[catalog.SortNone]
}
