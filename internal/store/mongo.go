package store

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/donaldgifford/storefront-catalog/pkg/catalog"
	domain "github.com/donaldgifford/storefront-catalog/pkg/types"
)

const (
	brandsCollection     = "brands"
	categoriesCollection = "categories"
	productsCollection   = "products"
)

// MongoStore implements Store on MongoDB. Documents use UUID strings as
// _id so that ids look the same as in PostgresStore.
type MongoStore struct {
	client     *mongo.Client
	brands     *mongo.Collection
	categories *mongo.Collection
	products   *mongo.Collection
}

// NewMongoStore connects to uri and uses the named database.
func NewMongoStore(ctx context.Context, uri, database string) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connecting to mongodb: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("pinging mongodb: %w", err)
	}

	db := client.Database(database)
	return &MongoStore{
		client:     client,
		brands:     db.Collection(brandsCollection),
		categories: db.Collection(categoriesCollection),
		products:   db.Collection(productsCollection),
	}, nil
}

// Close disconnects the client.
func (s *MongoStore) Close() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = s.client.Disconnect(ctx)
}

// Ping verifies the primary is reachable.
func (s *MongoStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

// Migrate creates the indexes the store relies on. It is idempotent.
func (s *MongoStore) Migrate(ctx context.Context) error {
	unique := options.Index().SetUnique(true)

	if _, err := s.brands.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: unique,
	}); err != nil {
		return fmt.Errorf("creating brand name index: %w", err)
	}

	if _, err := s.categories.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: unique,
	}); err != nil {
		return fmt.Errorf("creating category name index: %w", err)
	}

	if _, err := s.products.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "brand", Value: 1}}},
		{Keys: bson.D{{Key: "category", Value: 1}, {Key: "gender", Value: 1}}},
		{Keys: bson.D{{Key: "colors", Value: 1}}},
		{Keys: bson.D{{Key: "sizes.size", Value: 1}}},
		{Keys: bson.D{{Key: "sale_price", Value: 1}, {Key: "_id", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}}},
	}); err != nil {
		return fmt.Errorf("creating product indexes: %w", err)
	}

	return nil
}

// mongoError translates driver errors into store sentinels.
func mongoError(err error) error {
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		return ErrNotFound
	case mongo.IsDuplicateKeyError(err):
		return fmt.Errorf("%w: %w", ErrDuplicate, err)
	default:
		return err
	}
}

func byID(id string) bson.D {
	return bson.D{{Key: "_id", Value: id}}
}

// updateOne applies update to the document with id and reports
// ErrNotFound when nothing matched.
func updateOne(ctx context.Context, coll *mongo.Collection, id string, update any) error {
	res, err := coll.UpdateOne(ctx, byID(id), update)
	if err != nil {
		return mongoError(err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func deleteOne(ctx context.Context, coll *mongo.Collection, id string) error {
	res, err := coll.DeleteOne(ctx, byID(id))
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func findOne[T any](ctx context.Context, coll *mongo.Collection, filter bson.D) (*T, error) {
	var v T
	if err := coll.FindOne(ctx, filter).Decode(&v); err != nil {
		return nil, mongoError(err)
	}
	return &v, nil
}

func findAll[T any](
	ctx context.Context,
	coll *mongo.Collection,
	filter bson.D,
	opts ...*options.FindOptions,
) ([]T, error) {
	cur, err := coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	var out []T
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// --- Brands ---

// CreateBrand inserts a brand. A taken name returns ErrDuplicate.
func (s *MongoStore) CreateBrand(ctx context.Context, b *domain.Brand) error {
	now := time.Now().UTC()
	b.ID = uuid.NewString()
	b.CreatedAt, b.UpdatedAt = now, now

	if _, err := s.brands.InsertOne(ctx, b); err != nil {
		b.ID = ""
		return fmt.Errorf("inserting brand: %w", mongoError(err))
	}
	return nil
}

// GetBrand retrieves a brand by id.
func (s *MongoStore) GetBrand(ctx context.Context, id string) (*domain.Brand, error) {
	return findOne[domain.Brand](ctx, s.brands, byID(id))
}

// GetBrandByName retrieves a brand by its normalized name.
func (s *MongoStore) GetBrandByName(ctx context.Context, name string) (*domain.Brand, error) {
	return findOne[domain.Brand](ctx, s.brands, bson.D{{Key: "name", Value: name}})
}

// ListBrands returns every brand ordered by name.
func (s *MongoStore) ListBrands(ctx context.Context) ([]domain.Brand, error) {
	brands, err := findAll[domain.Brand](ctx, s.brands, bson.D{},
		options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("querying brands: %w", err)
	}
	return brands, nil
}

// UpdateBrand replaces a brand's mutable fields.
func (s *MongoStore) UpdateBrand(ctx context.Context, b *domain.Brand) error {
	b.UpdatedAt = time.Now().UTC()
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "name", Value: b.Name},
		{Key: "image", Value: b.Image},
		{Key: "active", Value: b.Active},
		{Key: "updated_at", Value: b.UpdatedAt},
	}}}
	if err := updateOne(ctx, s.brands, b.ID, update); err != nil {
		return fmt.Errorf("updating brand: %w", err)
	}
	return nil
}

// DeleteBrand removes a brand.
func (s *MongoStore) DeleteBrand(ctx context.Context, id string) error {
	return deleteOne(ctx, s.brands, id)
}

// --- Categories ---

// CreateCategory inserts a category. A taken name returns ErrDuplicate.
func (s *MongoStore) CreateCategory(ctx context.Context, c *domain.Category) error {
	now := time.Now().UTC()
	c.ID = uuid.NewString()
	c.CreatedAt, c.UpdatedAt = now, now

	if _, err := s.categories.InsertOne(ctx, c); err != nil {
		c.ID = ""
		return fmt.Errorf("inserting category: %w", mongoError(err))
	}
	return nil
}

// GetCategory retrieves a category by id.
func (s *MongoStore) GetCategory(ctx context.Context, id string) (*domain.Category, error) {
	return findOne[domain.Category](ctx, s.categories, byID(id))
}

// GetCategoryByName retrieves a category by its normalized name.
func (s *MongoStore) GetCategoryByName(ctx context.Context, name string) (*domain.Category, error) {
	return findOne[domain.Category](ctx, s.categories, bson.D{{Key: "name", Value: name}})
}

// ListCategories returns every category ordered by name.
func (s *MongoStore) ListCategories(ctx context.Context) ([]domain.Category, error) {
	cats, err := findAll[domain.Category](ctx, s.categories, bson.D{},
		options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("querying categories: %w", err)
	}
	return cats, nil
}

// UpdateCategory replaces a category's mutable fields. A nil promotion
// removes the stored one.
func (s *MongoStore) UpdateCategory(ctx context.Context, c *domain.Category) error {
	c.UpdatedAt = time.Now().UTC()
	set := bson.D{
		{Key: "name", Value: c.Name},
		{Key: "active", Value: c.Active},
		{Key: "updated_at", Value: c.UpdatedAt},
	}
	update := bson.D{}
	if c.Promotion != nil {
		set = append(set, bson.E{Key: "promotion", Value: c.Promotion})
	} else {
		update = append(update, bson.E{Key: "$unset", Value: bson.D{{Key: "promotion", Value: ""}}})
	}
	update = append(update, bson.E{Key: "$set", Value: set})

	if err := updateOne(ctx, s.categories, c.ID, update); err != nil {
		return fmt.Errorf("updating category: %w", err)
	}
	return nil
}

// DeleteCategory removes a category.
func (s *MongoStore) DeleteCategory(ctx context.Context, id string) error {
	return deleteOne(ctx, s.categories, id)
}

// ExpirePromotions clears every promotion that expired before now.
func (s *MongoStore) ExpirePromotions(ctx context.Context, now time.Time) (int, error) {
	cats, err := findAll[domain.Category](ctx, s.categories,
		bson.D{{Key: "promotion", Value: bson.D{{Key: "$type", Value: "object"}}}})
	if err != nil {
		return 0, fmt.Errorf("querying promoted categories: %w", err)
	}

	ids := expiredCategoryIDs(cats, now)
	if len(ids) == 0 {
		return 0, nil
	}

	res, err := s.categories.UpdateMany(ctx,
		bson.D{{Key: "_id", Value: bson.D{{Key: "$in", Value: ids}}}},
		bson.D{
			{Key: "$unset", Value: bson.D{{Key: "promotion", Value: ""}}},
			{Key: "$set", Value: bson.D{{Key: "updated_at", Value: time.Now().UTC()}}},
		},
	)
	if err != nil {
		return 0, fmt.Errorf("clearing promotions: %w", err)
	}
	return int(res.ModifiedCount), nil
}

// --- Products ---

// CreateProduct inserts a product.
func (s *MongoStore) CreateProduct(ctx context.Context, p *domain.Product) error {
	prepareProduct(p)
	now := time.Now().UTC()
	p.ID = uuid.NewString()
	p.CreatedAt, p.UpdatedAt = now, now

	if _, err := s.products.InsertOne(ctx, p); err != nil {
		p.ID = ""
		return fmt.Errorf("inserting product: %w", mongoError(err))
	}
	return nil
}

// GetProduct retrieves a product by id.
func (s *MongoStore) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	return findOne[domain.Product](ctx, s.products, byID(id))
}

// ListProducts returns one page of products, newest first, and the total
// product count.
func (s *MongoStore) ListProducts(
	ctx context.Context,
	skip, limit int,
) ([]domain.Product, int, error) {
	total, err := s.products.CountDocuments(ctx, bson.D{})
	if err != nil {
		return nil, 0, fmt.Errorf("counting products: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: 1}}).
		SetSkip(int64(max(skip, 0)))
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	products, err := findAll[domain.Product](ctx, s.products, bson.D{}, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("querying products: %w", err)
	}
	return products, int(total), nil
}

// UpdateProduct replaces a product's mutable fields. Reviews are only
// changed through AddReview.
func (s *MongoStore) UpdateProduct(ctx context.Context, p *domain.Product) error {
	prepareProduct(p)
	p.UpdatedAt = time.Now().UTC()
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "name", Value: p.Name},
		{Key: "description", Value: p.Description},
		{Key: "colors", Value: p.Colors},
		{Key: "sizes", Value: p.Sizes},
		{Key: "brand", Value: p.Brand},
		{Key: "category", Value: p.Category},
		{Key: "regular_price", Value: p.RegularPrice},
		{Key: "sale_price", Value: p.SalePrice},
		{Key: "offer_price", Value: p.OfferPrice},
		{Key: "images", Value: p.Images},
		{Key: "gender", Value: p.Gender},
		{Key: "active", Value: p.Active},
		{Key: "updated_at", Value: p.UpdatedAt},
	}}}
	if err := updateOne(ctx, s.products, p.ID, update); err != nil {
		return fmt.Errorf("updating product: %w", err)
	}
	return nil
}

// ToggleProductActive flips a product's active flag atomically.
func (s *MongoStore) ToggleProductActive(ctx context.Context, id string) (bool, error) {
	flip := mongo.Pipeline{{{Key: "$set", Value: bson.D{
		{Key: "active", Value: bson.D{{Key: "$not", Value: bson.A{"$active"}}}},
		{Key: "updated_at", Value: "$$NOW"},
	}}}}

	var doc struct {
		Active bool `bson:"active"`
	}
	err := s.products.FindOneAndUpdate(ctx, byID(id), flip,
		options.FindOneAndUpdate().
			SetReturnDocument(options.After).
			SetProjection(bson.D{{Key: "active", Value: 1}}),
	).Decode(&doc)
	if err != nil {
		return false, mongoError(err)
	}
	return doc.Active, nil
}

// RemoveProductImage drops one image from a product.
func (s *MongoStore) RemoveProductImage(ctx context.Context, productID, imageID string) error {
	return updateOne(ctx, s.products, productID, bson.D{
		{Key: "$pull", Value: bson.D{{Key: "images", Value: bson.D{{Key: "id", Value: imageID}}}}},
		{Key: "$set", Value: bson.D{{Key: "updated_at", Value: time.Now().UTC()}}},
	})
}

// AddReview appends a review to a product.
func (s *MongoStore) AddReview(ctx context.Context, productID string, r *domain.Review) error {
	return updateOne(ctx, s.products, productID, bson.D{
		{Key: "$push", Value: bson.D{{Key: "reviews", Value: r}}},
		{Key: "$set", Value: bson.D{{Key: "updated_at", Value: time.Now().UTC()}}},
	})
}

// ListRelatedProducts returns products in p's category and gender.
func (s *MongoStore) ListRelatedProducts(
	ctx context.Context,
	p *domain.Product,
	limit int,
) ([]domain.ProductSummary, error) {
	filter := bson.D{
		{Key: "category", Value: p.Category},
		{Key: "gender", Value: p.Gender},
		{Key: "_id", Value: bson.D{{Key: "$ne", Value: p.ID}}},
	}
	opts := summaryFindOptions().
		SetSort(sortBSON(catalog.SortNone)).
		SetLimit(int64(limit))

	products, err := findAll[domain.Product](ctx, s.products, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("querying related products: %w", err)
	}
	return summaries(products), nil
}

// --- Storefront listing ---

// CountProducts returns the number of products matching pred.
func (s *MongoStore) CountProducts(ctx context.Context, pred *catalog.Predicate) (int, error) {
	n, err := s.products.CountDocuments(ctx, predicateBSON(pred))
	if err != nil {
		return 0, fmt.Errorf("counting products: %w", err)
	}
	return int(n), nil
}

// FindProducts returns one window of products matching pred.
func (s *MongoStore) FindProducts(
	ctx context.Context,
	pred *catalog.Predicate,
	sort catalog.SortDirective,
	skip, limit int,
) ([]domain.ProductSummary, error) {
	opts := summaryFindOptions().
		SetSort(sortBSON(sort)).
		SetSkip(int64(max(skip, 0)))
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	products, err := findAll[domain.Product](ctx, s.products, predicateBSON(pred), opts)
	if err != nil {
		return nil, fmt.Errorf("querying products: %w", err)
	}
	return summaries(products), nil
}

// DistinctValues returns the facet values for field, sorted.
func (s *MongoStore) DistinctValues(ctx context.Context, field catalog.Field) ([]string, error) {
	var (
		coll *mongo.Collection
		path string
	)
	switch field {
	case catalog.FieldBrand:
		coll, path = s.brands, "name"
	case catalog.FieldCategory:
		coll, path = s.categories, "name"
	case catalog.FieldColor, catalog.FieldSize:
		coll, path = s.products, bsonFields[field]
	default:
		return nil, fmt.Errorf("no facet for field %q", field)
	}

	raw, err := coll.Distinct(ctx, path, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("querying %s facet: %w", field, err)
	}

	values := make([]string, 0, len(raw))
	for _, v := range raw {
		if str, ok := v.(string); ok {
			values = append(values, str)
		}
	}
	slices.Sort(values)
	return values, nil
}

func summaryFindOptions() *options.FindOptions {
	return options.Find().SetProjection(bson.D{
		{Key: "description", Value: 0},
		{Key: "reviews", Value: 0},
	})
}

func summaries(products []domain.Product) []domain.ProductSummary {
	out := make([]domain.ProductSummary, 0, len(products))
	for i := range products {
		out = append(out, products[i].Summary())
	}
	return out
}
