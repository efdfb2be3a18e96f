package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"trends-shop/config"
	"trends-shop/models"
)

type ProductRepository struct{}

func NewProductRepository() *ProductRepository {
	return &ProductRepository{}
}

func (r *ProductRepository) Create(ctx context.Context, product *models.Product) error {
	images, err := json.Marshal(product.Images)
	if err != nil {
		return err
	}
	sizes, err := json.Marshal(product.Sizes)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO products (id, name, description, price, images, category, sub_category, sizes, bestseller, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err = config.DB.Exec(ctx, query,
		product.ID, product.Name, product.Description, product.Price,
		images, product.Category, product.SubCategory, sizes,
		product.Bestseller, product.CreatedAt,
	)
	return err
}

func (r *ProductRepository) List(ctx context.Context) ([]models.Product, error) {
	query := `SELECT id, name, description, price, images, category, sub_category, sizes, bestseller, created_at
	          FROM products ORDER BY created_at DESC`

	rows, err := config.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, *p)
	}
	return products, rows.Err()
}

func (r *ProductRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	query := `SELECT id, name, description, price, images, category, sub_category, sizes, bestseller, created_at
	          FROM products WHERE id = $1`

	row := config.DB.QueryRow(ctx, query, id)
	p, err := scanProduct(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	tag, err := config.DB.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return models.ErrProductNotFound
	}
	return nil
}

func scanProduct(row pgx.Row) (*models.Product, error) {
	var p models.Product
	var imagesRaw, sizesRaw []byte
	err := row.Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &imagesRaw,
		&p.Category, &p.SubCategory, &sizesRaw, &p.Bestseller, &p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(imagesRaw) > 0 {
		if err := json.Unmarshal(imagesRaw, &p.Images); err != nil {
			return nil, fmt.Errorf("failed to decode product images: %w", err)
		}
	}
	if len(sizesRaw) > 0 {
		if err := json.Unmarshal(sizesRaw, &p.Sizes); err != nil {
			return nil, fmt.Errorf("failed to decode product sizes: %w", err)
		}
	}
	return &p, nil
}
