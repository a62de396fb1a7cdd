package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const upsertCategory = `
INSERT INTO categories (id, name, description, icon)
VALUES ($1, $2, $3, $4)
ON CONFLICT (id) DO UPDATE
SET name = EXCLUDED.name, description = EXCLUDED.description, icon = EXCLUDED.icon
`

type UpsertCategoryParams struct {
	ID          uuid.UUID
	Name        string
	Description string
	Icon        string
}

func (q *Queries) UpsertCategory(c context.Context, arg UpsertCategoryParams) error {
	_, err := q.db.Exec(c, upsertCategory, arg.ID, arg.Name, arg.Description, arg.Icon)
	return err
}

const upsertProduct = `
INSERT INTO products (id, name, description, price, category_id, image_url, stock, rating, reviews_count, is_featured)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
ON CONFLICT (id) DO UPDATE
SET name          = EXCLUDED.name,
    description   = EXCLUDED.description,
    price         = EXCLUDED.price,
    category_id   = EXCLUDED.category_id,
    image_url     = EXCLUDED.image_url,
    stock         = EXCLUDED.stock,
    rating        = EXCLUDED.rating,
    reviews_count = EXCLUDED.reviews_count,
    is_featured   = EXCLUDED.is_featured,
    updated_at    = now()
`

type UpsertProductParams struct {
	ID           uuid.UUID
	Name         string
	Description  string
	Price        pgtype.Numeric
	CategoryID   uuid.UUID
	ImageURL     string
	Stock        int32
	Rating       float64
	ReviewsCount int32
	IsFeatured   bool
}

func (q *Queries) UpsertProduct(c context.Context, arg UpsertProductParams) error {
	_, err := q.db.Exec(c, upsertProduct,
		arg.ID,
		arg.Name,
		arg.Description,
		arg.Price,
		arg.CategoryID,
		arg.ImageURL,
		arg.Stock,
		arg.Rating,
		arg.ReviewsCount,
		arg.IsFeatured,
	)
	return err
}

const countProducts = `
SELECT count(id) FROM products
`

func (q *Queries) CountProducts(c context.Context) (int64, error) {
	row := q.db.QueryRow(c, countProducts)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const productColumns = `id, name, description, price, category_id, image_url, stock, rating, reviews_count, is_featured, created_at, updated_at`

const findProducts = `
SELECT ` + productColumns + `
FROM products
ORDER BY name
`

func (q *Queries) FindProducts(c context.Context) ([]Product, error) {
	rows, err := q.db.Query(c, findProducts)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanProducts(rows)
}

const findProductsByCategory = `
SELECT ` + productColumns + `
FROM products
WHERE category_id = $1
ORDER BY name
`

func (q *Queries) FindProductsByCategory(c context.Context, categoryId uuid.UUID) ([]Product, error) {
	rows, err := q.db.Query(c, findProductsByCategory, categoryId)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanProducts(rows)
}

const findProductById = `
SELECT ` + productColumns + `
FROM products
WHERE id = $1
`

func (q *Queries) FindProductById(c context.Context, id uuid.UUID) (Product, error) {
	row := q.db.QueryRow(c, findProductById, id)
	var p Product
	err := scanProduct(row, &p)
	return p, err
}

const findCategories = `
SELECT id, name, description, icon
FROM categories
ORDER BY name
`

func (q *Queries) FindCategories(c context.Context) ([]Category, error) {
	rows, err := q.db.Query(c, findCategories)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []Category{}
	for rows.Next() {
		var cat Category
		err := rows.Scan(&cat.ID, &cat.Name, &cat.Description, &cat.Icon)
		if err != nil {
			return nil, err
		}
		categories = append(categories, cat)
	}
	return categories, rows.Err()
}

type scannable interface {
	Scan(dest ...interface{}) error
}

func scanProduct(row scannable, p *Product) error {
	return row.Scan(
		&p.ID,
		&p.Name,
		&p.Description,
		&p.Price,
		&p.CategoryID,
		&p.ImageURL,
		&p.Stock,
		&p.Rating,
		&p.ReviewsCount,
		&p.IsFeatured,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
}

func scanProducts(rows interface {
	scannable
	Next() bool
	Err() error
}) ([]Product, error) {
	products := []Product{}
	for rows.Next() {
		var p Product
		if err := scanProduct(rows, &p); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}
