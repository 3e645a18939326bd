package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/donaldgifford/storefront-catalog/pkg/catalog"
	domain "github.com/donaldgifford/storefront-catalog/pkg/types"
)

const (
	defaultPoolSize = 10

	pgUniqueViolation = "23505"
)

// PostgresStore implements Store using pgxpool (connection-pooled PostgreSQL).
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a new PostgresStore with connection pooling.
func NewPostgresStore(ctx context.Context, connString string) (*PostgresStore, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("parsing connection string: %w", err)
	}

	cfg.MaxConns = defaultPoolSize

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Close gracefully shuts down the connection pool.
func (s *PostgresStore) Close() {
	s.pool.Close()
}

// Ping verifies the database connection is alive.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Migrate applies pending SQL schema migrations.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	return RunMigrations(ctx, s.pool)
}

// pgError translates driver errors into store sentinels.
func pgError(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return fmt.Errorf("%w: %s", ErrDuplicate, pgErr.ConstraintName)
	}
	return err
}

// validID rejects ids that cannot be a UUID so lookups report ErrNotFound
// instead of a syntax error.
func validID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrNotFound
	}
	return nil
}

// --- Brands ---

// CreateBrand inserts a brand. A taken name returns ErrDuplicate.
func (s *PostgresStore) CreateBrand(ctx context.Context, b *domain.Brand) error {
	args := pgx.NamedArgs{
		"name":   b.Name,
		"image":  b.Image,
		"active": b.Active,
	}
	err := s.pool.QueryRow(ctx, queryInsertBrand, args).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return fmt.Errorf("inserting brand: %w", pgError(err))
	}
	return nil
}

// GetBrand retrieves a brand by id.
func (s *PostgresStore) GetBrand(ctx context.Context, id string) (*domain.Brand, error) {
	if err := validID(id); err != nil {
		return nil, err
	}
	return s.getBrand(ctx, queryGetBrand, id)
}

// GetBrandByName retrieves a brand by its normalized name.
func (s *PostgresStore) GetBrandByName(ctx context.Context, name string) (*domain.Brand, error) {
	return s.getBrand(ctx, queryGetBrandByName, name)
}

func (s *PostgresStore) getBrand(ctx context.Context, query, arg string) (*domain.Brand, error) {
	b := &domain.Brand{}
	err := scanBrand(s.pool.QueryRow(ctx, query, arg), b)
	if err != nil {
		return nil, pgError(err)
	}
	return b, nil
}

// ListBrands returns every brand ordered by name.
func (s *PostgresStore) ListBrands(ctx context.Context) ([]domain.Brand, error) {
	rows, err := s.pool.Query(ctx, queryListBrands)
	if err != nil {
		return nil, fmt.Errorf("querying brands: %w", err)
	}
	defer rows.Close()

	var brands []domain.Brand
	for rows.Next() {
		var b domain.Brand
		if err := scanBrand(rows, &b); err != nil {
			return nil, fmt.Errorf("scanning brand: %w", err)
		}
		brands = append(brands, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating brands: %w", err)
	}
	return brands, nil
}

// UpdateBrand replaces a brand's mutable fields.
func (s *PostgresStore) UpdateBrand(ctx context.Context, b *domain.Brand) error {
	if err := validID(b.ID); err != nil {
		return err
	}
	args := pgx.NamedArgs{
		"id":     b.ID,
		"name":   b.Name,
		"image":  b.Image,
		"active": b.Active,
	}
	if err := s.pool.QueryRow(ctx, queryUpdateBrand, args).Scan(&b.UpdatedAt); err != nil {
		return fmt.Errorf("updating brand: %w", pgError(err))
	}
	return nil
}

// DeleteBrand removes a brand.
func (s *PostgresStore) DeleteBrand(ctx context.Context, id string) error {
	return s.deleteByID(ctx, queryDeleteBrand, id)
}

func (s *PostgresStore) deleteByID(ctx context.Context, query, id string) error {
	if err := validID(id); err != nil {
		return err
	}
	tag, err := s.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanBrand(row pgx.Row, b *domain.Brand) error {
	return row.Scan(&b.ID, &b.Name, &b.Image, &b.Active, &b.CreatedAt, &b.UpdatedAt)
}

// --- Categories ---

// CreateCategory inserts a category. A taken name returns ErrDuplicate.
func (s *PostgresStore) CreateCategory(ctx context.Context, c *domain.Category) error {
	args := pgx.NamedArgs{
		"name":      c.Name,
		"active":    c.Active,
		"promotion": c.Promotion,
	}
	err := s.pool.QueryRow(ctx, queryInsertCategory, args).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("inserting category: %w", pgError(err))
	}
	return nil
}

// GetCategory retrieves a category by id.
func (s *PostgresStore) GetCategory(ctx context.Context, id string) (*domain.Category, error) {
	if err := validID(id); err != nil {
		return nil, err
	}
	return s.getCategory(ctx, queryGetCategory, id)
}

// GetCategoryByName retrieves a category by its normalized name.
func (s *PostgresStore) GetCategoryByName(ctx context.Context, name string) (*domain.Category, error) {
	return s.getCategory(ctx, queryGetCategoryByName, name)
}

func (s *PostgresStore) getCategory(ctx context.Context, query, arg string) (*domain.Category, error) {
	c := &domain.Category{}
	if err := scanCategory(s.pool.QueryRow(ctx, query, arg), c); err != nil {
		return nil, pgError(err)
	}
	return c, nil
}

// ListCategories returns every category ordered by name.
func (s *PostgresStore) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return s.queryCategories(ctx, queryListCategories)
}

func (s *PostgresStore) queryCategories(ctx context.Context, query string) ([]domain.Category, error) {
	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying categories: %w", err)
	}
	defer rows.Close()

	var cats []domain.Category
	for rows.Next() {
		var c domain.Category
		if err := scanCategory(rows, &c); err != nil {
			return nil, fmt.Errorf("scanning category: %w", err)
		}
		cats = append(cats, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating categories: %w", err)
	}
	return cats, nil
}

// UpdateCategory replaces a category's mutable fields, including its
// promotion.
func (s *PostgresStore) UpdateCategory(ctx context.Context, c *domain.Category) error {
	if err := validID(c.ID); err != nil {
		return err
	}
	args := pgx.NamedArgs{
		"id":        c.ID,
		"name":      c.Name,
		"active":    c.Active,
		"promotion": c.Promotion,
	}
	if err := s.pool.QueryRow(ctx, queryUpdateCategory, args).Scan(&c.UpdatedAt); err != nil {
		return fmt.Errorf("updating category: %w", pgError(err))
	}
	return nil
}

// DeleteCategory removes a category.
func (s *PostgresStore) DeleteCategory(ctx context.Context, id string) error {
	return s.deleteByID(ctx, queryDeleteCategory, id)
}

// ExpirePromotions clears every promotion that expired before now.
func (s *PostgresStore) ExpirePromotions(ctx context.Context, now time.Time) (int, error) {
	cats, err := s.queryCategories(ctx, queryListPromotedCategories)
	if err != nil {
		return 0, err
	}

	ids := expiredCategoryIDs(cats, now)
	if len(ids) == 0 {
		return 0, nil
	}

	tag, err := s.pool.Exec(ctx, queryClearPromotions, ids)
	if err != nil {
		return 0, fmt.Errorf("clearing promotions: %w", err)
	}
	return int(tag.RowsAffected()), nil
}

func scanCategory(row pgx.Row, c *domain.Category) error {
	return row.Scan(&c.ID, &c.Name, &c.Active, &c.Promotion, &c.CreatedAt, &c.UpdatedAt)
}

// --- Products ---

func productArgs(p *domain.Product) pgx.NamedArgs {
	prepareProduct(p)
	return pgx.NamedArgs{
		"id":            p.ID,
		"name":          p.Name,
		"description":   p.Description,
		"colors":        p.Colors,
		"sizes":         p.Sizes,
		"brand":         p.Brand,
		"category":      p.Category,
		"regular_price": p.RegularPrice,
		"sale_price":    p.SalePrice,
		"offer_price":   p.OfferPrice,
		"images":        p.Images,
		"gender":        string(p.Gender),
		"active":        p.Active,
		"reviews":       p.Reviews,
	}
}

// CreateProduct inserts a product.
func (s *PostgresStore) CreateProduct(ctx context.Context, p *domain.Product) error {
	err := s.pool.QueryRow(ctx, queryInsertProduct, productArgs(p)).Scan(
		&p.ID, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting product: %w", pgError(err))
	}
	return nil
}

// GetProduct retrieves a product by id.
func (s *PostgresStore) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	if err := validID(id); err != nil {
		return nil, err
	}
	p := &domain.Product{}
	if err := scanProduct(s.pool.QueryRow(ctx, queryGetProduct, id), p); err != nil {
		return nil, pgError(err)
	}
	return p, nil
}

// ListProducts returns one page of products, newest first, and the total
// product count. A limit of 0 returns everything after skip.
func (s *PostgresStore) ListProducts(
	ctx context.Context,
	skip, limit int,
) ([]domain.Product, int, error) {
	var total int
	if err := s.pool.QueryRow(ctx, queryCountAllProducts).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting products: %w", err)
	}

	var (
		rows pgx.Rows
		err  error
	)
	if limit > 0 {
		rows, err = s.pool.Query(ctx, queryListProducts, limit, max(skip, 0))
	} else {
		rows, err = s.pool.Query(ctx, queryListAllProducts, max(skip, 0))
	}
	if err != nil {
		return nil, 0, fmt.Errorf("querying products: %w", err)
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := scanProduct(rows, &p); err != nil {
			return nil, 0, fmt.Errorf("scanning product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterating products: %w", err)
	}

	return products, total, nil
}

// UpdateProduct replaces a product's mutable fields. Reviews are only
// changed through AddReview.
func (s *PostgresStore) UpdateProduct(ctx context.Context, p *domain.Product) error {
	if err := validID(p.ID); err != nil {
		return err
	}
	if err := s.pool.QueryRow(ctx, queryUpdateProduct, productArgs(p)).Scan(&p.UpdatedAt); err != nil {
		return fmt.Errorf("updating product: %w", pgError(err))
	}
	return nil
}

// ToggleProductActive flips a product's active flag.
func (s *PostgresStore) ToggleProductActive(ctx context.Context, id string) (bool, error) {
	if err := validID(id); err != nil {
		return false, err
	}
	var active bool
	if err := s.pool.QueryRow(ctx, queryToggleProductActive, id).Scan(&active); err != nil {
		return false, pgError(err)
	}
	return active, nil
}

// RemoveProductImage drops one image from a product.
func (s *PostgresStore) RemoveProductImage(ctx context.Context, productID, imageID string) error {
	return s.execOne(ctx, queryRemoveProductImage, productID, imageID)
}

// AddReview appends a review to a product.
func (s *PostgresStore) AddReview(ctx context.Context, productID string, r *domain.Review) error {
	return s.execOne(ctx, queryAddReview, productID, r)
}

// execOne runs an update keyed by a product id and reports ErrNotFound
// when no row changed.
func (s *PostgresStore) execOne(ctx context.Context, query, id string, args ...any) error {
	if err := validID(id); err != nil {
		return err
	}
	tag, err := s.pool.Exec(ctx, query, append([]any{id}, args...)...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// ListRelatedProducts returns products in p's category and gender.
func (s *PostgresStore) ListRelatedProducts(
	ctx context.Context,
	p *domain.Product,
	limit int,
) ([]domain.ProductSummary, error) {
	rows, err := s.pool.Query(ctx, queryListRelatedProducts,
		p.Category, string(p.Gender), p.ID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("querying related products: %w", err)
	}
	return collectSummaries(rows)
}

func scanProduct(row pgx.Row, p *domain.Product) error {
	var gender string
	err := row.Scan(
		&p.ID, &p.Name, &p.Description, &p.Colors, &p.Sizes, &p.Brand, &p.Category,
		&p.RegularPrice, &p.SalePrice, &p.OfferPrice, &p.Images, &gender, &p.Active, &p.Reviews,
		&p.CreatedAt, &p.UpdatedAt,
	)
	p.Gender = domain.Gender(gender)
	return err
}

// --- Storefront listing ---

// CountProducts returns the number of products matching pred.
func (s *PostgresStore) CountProducts(ctx context.Context, pred *catalog.Predicate) (int, error) {
	_, countSQL, args := (&ListingSQL{Predicate: pred}).ToSQL()

	var total int
	if err := s.pool.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("counting products: %w", err)
	}
	return total, nil
}

// FindProducts returns one window of products matching pred.
func (s *PostgresStore) FindProducts(
	ctx context.Context,
	pred *catalog.Predicate,
	sort catalog.SortDirective,
	skip, limit int,
) ([]domain.ProductSummary, error) {
	dataSQL, _, args := (&ListingSQL{
		Predicate: pred,
		Sort:      sort,
		Skip:      skip,
		Limit:     limit,
	}).ToSQL()

	rows, err := s.pool.Query(ctx, dataSQL, args...)
	if err != nil {
		return nil, fmt.Errorf("querying products: %w", err)
	}
	return collectSummaries(rows)
}

// DistinctValues returns the facet values for field.
func (s *PostgresStore) DistinctValues(ctx context.Context, field catalog.Field) ([]string, error) {
	var query string
	switch field {
	case catalog.FieldBrand:
		query = queryBrandNames
	case catalog.FieldCategory:
		query = queryCategoryNames
	case catalog.FieldColor:
		query = queryDistinctColors
	case catalog.FieldSize:
		query = queryDistinctSizes
	default:
		return nil, fmt.Errorf("no facet for field %q", field)
	}

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying %s facet: %w", field, err)
	}
	values, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("collecting %s facet: %w", field, err)
	}
	return values, nil
}

func collectSummaries(rows pgx.Rows) ([]domain.ProductSummary, error) {
	defer rows.Close()

	var out []domain.ProductSummary
	for rows.Next() {
		var (
			ps     domain.ProductSummary
			sizes  []domain.SizeStock
			gender string
		)
		if err := rows.Scan(
			&ps.ID, &ps.Name, &ps.Brand, &ps.Category, &ps.Colors, &sizes,
			&ps.RegularPrice, &ps.SalePrice, &ps.OfferPrice, &ps.ImageURL, &gender, &ps.Active,
		); err != nil {
			return nil, fmt.Errorf("scanning product summary: %w", err)
		}
		ps.Gender = domain.Gender(gender)
		ps.Sizes = (&domain.Product{Sizes: sizes}).SizeNames()
		out = append(out, ps)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating product summaries: %w", err)
	}
	return out, nil
}
