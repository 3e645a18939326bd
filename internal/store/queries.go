package store

// SQL query constants organized by entity.
// All SQL lives here; PostgresStore methods reference these constants.

// Brand queries.
const (
	queryInsertBrand = `
		INSERT INTO brands (name, image, active, created_at, updated_at)
		VALUES (@name, @image, @active, now(), now())
		RETURNING id, created_at, updated_at`

	queryGetBrand = `
		SELECT id, name, image, active, created_at, updated_at
		FROM brands
		WHERE id = $1`

	queryGetBrandByName = `
		SELECT id, name, image, active, created_at, updated_at
		FROM brands
		WHERE name = $1`

	queryListBrands = `
		SELECT id, name, image, active, created_at, updated_at
		FROM brands
		ORDER BY name`

	queryUpdateBrand = `
		UPDATE brands SET
			name = @name,
			image = @image,
			active = @active,
			updated_at = now()
		WHERE id = @id
		RETURNING updated_at`

	queryDeleteBrand = `DELETE FROM brands WHERE id = $1`

	queryBrandNames = `SELECT name FROM brands ORDER BY name`
)

// Category queries.
const (
	queryInsertCategory = `
		INSERT INTO categories (name, active, promotion, created_at, updated_at)
		VALUES (@name, @active, @promotion, now(), now())
		RETURNING id, created_at, updated_at`

	queryGetCategory = `
		SELECT id, name, active, promotion, created_at, updated_at
		FROM categories
		WHERE id = $1`

	queryGetCategoryByName = `
		SELECT id, name, active, promotion, created_at, updated_at
		FROM categories
		WHERE name = $1`

	queryListCategories = `
		SELECT id, name, active, promotion, created_at, updated_at
		FROM categories
		ORDER BY name`

	queryListPromotedCategories = `
		SELECT id, name, active, promotion, created_at, updated_at
		FROM categories
		WHERE promotion IS NOT NULL`

	queryUpdateCategory = `
		UPDATE categories SET
			name = @name,
			active = @active,
			promotion = @promotion,
			updated_at = now()
		WHERE id = @id
		RETURNING updated_at`

	queryClearPromotions = `
		UPDATE categories SET promotion = NULL, updated_at = now()
		WHERE id = ANY($1::uuid[])`

	queryDeleteCategory = `DELETE FROM categories WHERE id = $1`

	queryCategoryNames = `SELECT name FROM categories ORDER BY name`
)

// Product queries.
const (
	productColumns = `id, name, description, colors, sizes, brand, category,
			regular_price, sale_price, offer_price, images, gender, active, reviews,
			created_at, updated_at`

	queryInsertProduct = `
		INSERT INTO products (
			name, description, colors, sizes, brand, category,
			regular_price, sale_price, offer_price, images, gender, active, reviews,
			created_at, updated_at
		) VALUES (
			@name, @description, @colors, @sizes, @brand, @category,
			@regular_price, @sale_price, @offer_price, @images, @gender, @active, @reviews,
			now(), now()
		)
		RETURNING id, created_at, updated_at`

	queryGetProduct = `
		SELECT ` + productColumns + `
		FROM products
		WHERE id = $1`

	queryListProducts = `
		SELECT ` + productColumns + `
		FROM products
		ORDER BY created_at DESC, id
		LIMIT $1 OFFSET $2`

	queryListAllProducts = `
		SELECT ` + productColumns + `
		FROM products
		ORDER BY created_at DESC, id
		OFFSET $1`

	queryCountAllProducts = `SELECT COUNT(*) FROM products`

	queryUpdateProduct = `
		UPDATE products SET
			name = @name,
			description = @description,
			colors = @colors,
			sizes = @sizes,
			brand = @brand,
			category = @category,
			regular_price = @regular_price,
			sale_price = @sale_price,
			offer_price = @offer_price,
			images = @images,
			gender = @gender,
			active = @active,
			updated_at = now()
		WHERE id = @id
		RETURNING updated_at`

	queryToggleProductActive = `
		UPDATE products SET active = NOT active, updated_at = now()
		WHERE id = $1
		RETURNING active`

	queryRemoveProductImage = `
		UPDATE products SET
			images = COALESCE((
				SELECT jsonb_agg(img)
				FROM jsonb_array_elements(images) img
				WHERE img->>'id' <> $2
			), '[]'::jsonb),
			updated_at = now()
		WHERE id = $1`

	queryAddReview = `
		UPDATE products SET
			reviews = reviews || jsonb_build_array($2::jsonb),
			updated_at = now()
		WHERE id = $1`

	queryListRelatedProducts = productSummarySelect + `
		WHERE category = $1 AND gender = $2 AND id <> $3
		ORDER BY created_at, id
		LIMIT $4`

	queryDistinctColors = `
		SELECT DISTINCT c
		FROM products, unnest(colors) AS c
		ORDER BY c`

	queryDistinctSizes = `
		SELECT DISTINCT s->>'size'
		FROM products, jsonb_array_elements(sizes) AS s
		ORDER BY 1`
)
