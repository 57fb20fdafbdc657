package repo

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Yaseeru/glowgroove/internal/entities"
	"github.com/Yaseeru/glowgroove/pkg/trm"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

type productsRepo struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

func NewProductsRepo(db *sqlx.DB) *productsRepo {
	return &productsRepo{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *productsRepo) GetByIDs(ctx context.Context, productIDs []string) ([]entities.Product, error) {
	query, args := r.qb.Select(
		"product_id", "name", "price", "stock", "sku", "image",
		"is_active", "created_at", "updated_at").
		From("products").
		Where(sq.Eq{"product_id": productIDs}).
		MustSql()

	var products []Product
	if err := r.selectContext(ctx, &products, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select products: %w", err)
	}

	result := make([]entities.Product, 0, len(products))
	for _, p := range products {
		result = append(result, ProductToEntity(p))
	}
	return result, nil
}

// DecrementStock atomically subtracts quantity, guarded by the floor
// check in the same statement. Zero rows affected means the product's
// remaining stock could not cover the quantity.
func (r *productsRepo) DecrementStock(ctx context.Context, productID string, quantity int) error {
	query, args := r.qb.Update("products").
		Set("stock", sq.Expr("stock - ?", quantity)).
		Set("updated_at", time.Now()).
		Where(sq.Eq{"product_id": productID}).
		Where(sq.Expr("stock >= ?", quantity)).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to decrement stock: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("product %s: %w", productID, entities.ErrInsufficientStock)
	}
	return nil
}

// IncrementStock atomically restores quantity on cancellation.
func (r *productsRepo) IncrementStock(ctx context.Context, productID string, quantity int) error {
	query, args := r.qb.Update("products").
		Set("stock", sq.Expr("stock + ?", quantity)).
		Set("updated_at", time.Now()).
		Where(sq.Eq{"product_id": productID}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to increment stock: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("product %s: %w", productID, entities.ErrProductNotFound)
	}
	return nil
}

func (r *productsRepo) execContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.ExecContext(ctx, query, args...)
	}
	return r.db.ExecContext(ctx, query, args...)
}

func (r *productsRepo) selectContext(ctx context.Context, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.SelectContext(ctx, dest, query, args...)
	}
	return r.db.SelectContext(ctx, dest, query, args...)
}
