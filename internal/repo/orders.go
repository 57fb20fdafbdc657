package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Yaseeru/glowgroove/internal/entities"
	"github.com/Yaseeru/glowgroove/pkg/trm"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

var orderColumns = []string{
	"order_id", "order_number", "user_id",
	"customer_name", "customer_email", "customer_phone",
	"shipping_street", "shipping_city", "shipping_state", "shipping_zip", "shipping_country",
	"billing_street", "billing_city", "billing_state", "billing_zip", "billing_country",
	"subtotal", "tax", "shipping", "discount", "total",
	"status", "payment_status", "payment_reference", "payment_method", "stock_deducted",
	"notes", "tracking_number", "delivered_at", "created_at", "updated_at",
}

type ordersRepo struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

func NewOrdersRepo(db *sqlx.DB) *ordersRepo {
	return &ordersRepo{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *ordersRepo) CreateOrder(ctx context.Context, o entities.Order) error {
	query, args := r.qb.Insert("orders").
		Columns(orderColumns...).
		Values(
			o.ID, o.OrderNumber, o.UserID,
			o.Customer.Name, o.Customer.Email, o.Customer.Phone,
			o.ShippingAddress.Street, o.ShippingAddress.City, o.ShippingAddress.State,
			o.ShippingAddress.ZipCode, o.ShippingAddress.Country,
			o.BillingAddress.Street, o.BillingAddress.City, o.BillingAddress.State,
			o.BillingAddress.ZipCode, o.BillingAddress.Country,
			o.Pricing.Subtotal, o.Pricing.Tax, o.Pricing.Shipping, o.Pricing.Discount, o.Pricing.Total,
			string(o.Status), string(o.PaymentStatus), nullString(o.PaymentReference),
			o.PaymentMethod, o.StockDeducted,
			nullString(o.Notes), nullString(o.TrackingNumber), nullTime(o.DeliveredAt),
			o.CreatedAt, o.UpdatedAt,
		).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}

	if len(o.Items) == 0 {
		return nil
	}

	q := r.qb.Insert("order_items").
		Columns("item_id", "order_id", "product_id", "name", "price", "quantity", "image")
	for _, it := range o.Items {
		q = q.Values(it.ID, o.ID, it.ProductID, it.Name, it.Price, it.Quantity, nullString(it.Image))
	}

	query, args = q.MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert order items: %w", err)
	}
	return nil
}

func (r *ordersRepo) GetOrderByID(ctx context.Context, orderID string) (entities.Order, error) {
	return r.getOrder(ctx, sq.Eq{"order_id": orderID})
}

func (r *ordersRepo) GetOrderByReference(ctx context.Context, reference string) (entities.Order, error) {
	return r.getOrder(ctx, sq.Eq{"payment_reference": reference})
}

func (r *ordersRepo) getOrder(ctx context.Context, pred any) (entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		Where(pred).
		MustSql()

	var order Order
	err := r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}

	items, err := r.orderItems(ctx, []string{order.OrderID})
	if err != nil {
		return entities.Order{}, err
	}

	return OrderToEntity(order, items[order.OrderID]), nil
}

func (r *ordersRepo) ListOrders(ctx context.Context, f entities.OrderFilter) ([]entities.Order, int, error) {
	where := r.listPredicate(f)

	query, args := r.qb.Select(orderColumns...).
		From("orders").
		Where(where).
		OrderBy("created_at DESC").
		Limit(uint64(f.Limit)).
		Offset(uint64(f.Offset)).
		MustSql()

	var orders []Order
	if err := r.selectContext(ctx, &orders, query, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to select orders: %w", err)
	}

	query, args = r.qb.Select("COUNT(*)").
		From("orders").
		Where(where).
		MustSql()

	var total int
	if err := r.getContext(ctx, &total, query, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to count orders: %w", err)
	}

	if len(orders) == 0 {
		return []entities.Order{}, total, nil
	}

	ids := make([]string, len(orders))
	for i, o := range orders {
		ids[i] = o.OrderID
	}
	itemsMap, err := r.orderItems(ctx, ids)
	if err != nil {
		return nil, 0, err
	}

	result := make([]entities.Order, 0, len(orders))
	for _, o := range orders {
		result = append(result, OrderToEntity(o, itemsMap[o.OrderID]))
	}
	return result, total, nil
}

func (r *ordersRepo) listPredicate(f entities.OrderFilter) sq.And {
	where := sq.And{}
	if f.UserID != "" {
		where = append(where, sq.Eq{"user_id": f.UserID})
	}
	if f.Status != "" {
		where = append(where, sq.Eq{"status": string(f.Status)})
	}
	if f.Search != "" {
		pattern := "%" + f.Search + "%"
		where = append(where, sq.Or{
			sq.ILike{"order_number": pattern},
			sq.ILike{"customer_name": pattern},
			sq.ILike{"customer_email": pattern},
		})
	}
	if len(where) == 0 {
		where = append(where, sq.Expr("TRUE"))
	}
	return where
}

func (r *ordersRepo) StatusStats(ctx context.Context) ([]entities.StatusStat, error) {
	query, args := r.qb.Select("status", "COUNT(*) AS count", "COALESCE(SUM(total), 0) AS total_amount").
		From("orders").
		GroupBy("status").
		MustSql()

	var rows []struct {
		Status      string  `db:"status"`
		Count       int     `db:"count"`
		TotalAmount float64 `db:"total_amount"`
	}
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select order stats: %w", err)
	}

	stats := make([]entities.StatusStat, 0, len(rows))
	for _, row := range rows {
		stats = append(stats, entities.StatusStat{
			Status:      entities.Status(row.Status),
			Count:       row.Count,
			TotalAmount: row.TotalAmount,
		})
	}
	return stats, nil
}

// ClaimPaymentCompleted flips the order to completed/processing only if the
// payment is still pending and the order itself is still live. The
// conditional write is the idempotency guard: of any number of concurrent
// confirmation attempts exactly one sees rows=1, and the acquired row lock
// serializes racing cancellations. A cancelled or refunded order never
// matches, so a late charge cannot resurrect it.
func (r *ordersRepo) ClaimPaymentCompleted(ctx context.Context, orderID string) (bool, error) {
	query, args := r.qb.Update("orders").
		Set("payment_status", string(entities.PaymentCompleted)).
		Set("status", string(entities.StatusProcessing)).
		Set("stock_deducted", true).
		Set("updated_at", time.Now()).
		Where(sq.Eq{
			"order_id":       orderID,
			"payment_status": string(entities.PaymentPending),
		}).
		Where(sq.NotEq{"status": []string{
			string(entities.StatusCancelled),
			string(entities.StatusRefunded),
		}}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to claim payment completion: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}
	return rows == 1, nil
}

// ClaimCancelled marks the order cancelled if its status still allows it
// and reports whether stock had been deducted for it. The returned flag is
// read from the locked row, so the caller restores stock exactly once.
func (r *ordersRepo) ClaimCancelled(ctx context.Context, orderID string) (claimed bool, stockDeducted bool, err error) {
	query, args := r.qb.Update("orders").
		Set("status", string(entities.StatusCancelled)).
		Set("updated_at", time.Now()).
		Where(sq.Eq{"order_id": orderID}).
		Where(sq.NotEq{"status": []string{
			string(entities.StatusShipped),
			string(entities.StatusDelivered),
			string(entities.StatusCancelled),
		}}).
		Suffix("RETURNING stock_deducted").
		MustSql()

	err = r.getContext(ctx, &stockDeducted, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return false, false, nil
	}
	if err != nil {
		return false, false, fmt.Errorf("failed to claim cancellation: %w", err)
	}
	return true, stockDeducted, nil
}

func (r *ordersRepo) ClearStockDeducted(ctx context.Context, orderID string) error {
	query, args := r.qb.Update("orders").
		Set("stock_deducted", false).
		Set("updated_at", time.Now()).
		Where(sq.Eq{"order_id": orderID}).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to clear stock deducted flag: %w", err)
	}
	return nil
}

func (r *ordersRepo) SetPaymentReference(ctx context.Context, orderID, reference string) error {
	query, args := r.qb.Update("orders").
		Set("payment_reference", reference).
		Set("updated_at", time.Now()).
		Where(sq.Eq{"order_id": orderID}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to set payment reference: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if rows == 0 {
		return entities.ErrOrderNotFound
	}
	return nil
}

// UpdateStatus records logistics and payment metadata set by an admin.
// It never touches stock. Status changes are conditional on the value the
// caller validated the transition against, so an update racing another
// update or a cancellation loses instead of overwriting.
func (r *ordersRepo) UpdateStatus(ctx context.Context, orderID string, upd entities.StatusUpdate) error {
	q := r.qb.Update("orders").
		Set("updated_at", time.Now()).
		Where(sq.Eq{"order_id": orderID})

	guarded := false
	if upd.Status != "" {
		q = q.Set("status", string(upd.Status)).
			Where(sq.Eq{"status": string(upd.PrevStatus)})
		guarded = true
	}
	if upd.PaymentStatus != "" {
		q = q.Set("payment_status", string(upd.PaymentStatus)).
			Where(sq.Eq{"payment_status": string(upd.PrevPaymentStatus)})
		guarded = true
	}
	if upd.TrackingNumber != "" {
		q = q.Set("tracking_number", upd.TrackingNumber)
	}
	if upd.Notes != "" {
		q = q.Set("notes", upd.Notes)
	}
	if upd.DeliveredAt != nil {
		q = q.Set("delivered_at", *upd.DeliveredAt)
	}

	query, args := q.MustSql()
	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if rows == 0 {
		if guarded {
			return fmt.Errorf("order %s changed concurrently: %w", orderID, entities.ErrInvalidTransition)
		}
		return entities.ErrOrderNotFound
	}
	return nil
}

func (r *ordersRepo) orderItems(ctx context.Context, orderIDs []string) (map[string][]OrderItem, error) {
	query, args := r.qb.Select("item_id", "order_id", "product_id", "name", "price", "quantity", "image").
		From("order_items").
		Where(sq.Eq{"order_id": orderIDs}).
		MustSql()

	var items []OrderItem
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select order items: %w", err)
	}

	itemsMap := make(map[string][]OrderItem, len(orderIDs))
	for _, item := range items {
		itemsMap[item.OrderID] = append(itemsMap[item.OrderID], item)
	}
	return itemsMap, nil
}

func (r *ordersRepo) execContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.ExecContext(ctx, query, args...)
	}
	return r.db.ExecContext(ctx, query, args...)
}

func (r *ordersRepo) getContext(ctx context.Context, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.GetContext(ctx, dest, query, args...)
	}
	return r.db.GetContext(ctx, dest, query, args...)
}

func (r *ordersRepo) selectContext(ctx context.Context, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.SelectContext(ctx, dest, query, args...)
	}
	return r.db.SelectContext(ctx, dest, query, args...)
}
