package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/SergeyBogomolovv/storefront-orders/internal/entities"
	"github.com/SergeyBogomolovv/storefront-orders/pkg/trm"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const (
	defaultListLimit = 50

	uniqueViolation        = "23505"
	cardReferenceIndexName = "orders_card_reference_key"
)

type postgresRepo struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

func NewPostgresRepo(db *sqlx.DB) *postgresRepo {
	return &postgresRepo{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// SaveOrder inserts the order row. The store assigns id and timestamps.
// A second order with the same idempotency key is rejected with ErrOrderExists,
// a second card order with the same gateway reference with ErrPaymentReferenceUsed.
func (r *postgresRepo) SaveOrder(ctx context.Context, o entities.Order) (entities.Order, error) {
	query, args := r.qb.Insert("orders").
		Columns(
			"user_id", "idempotency_key",
			"customer_name", "email", "phone", "address", "city", "state",
			"total_amount", "status", "payment_method",
			"payment_receipt", "cancellation_reason",
		).
		Values(
			o.UserID, o.IdempotencyKey,
			o.Shipping.Name, o.Shipping.Email, o.Shipping.Phone, o.Shipping.Address, o.Shipping.City, o.Shipping.State,
			o.TotalAmount, string(o.Status), string(o.PaymentMethod),
			nullString(o.PaymentReceipt), nullString(o.CancellationReason),
		).
		Suffix("ON CONFLICT (idempotency_key) DO NOTHING RETURNING " + strings.Join(orderColumns, ", ")).
		MustSql()

	var row Order
	err := r.getContext(ctx, &row, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderExists
	}
	if isCardReferenceConflict(err) {
		return entities.Order{}, entities.ErrPaymentReferenceUsed
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to insert order: %w", err)
	}

	saved, err := OrderToEntity(row, nil)
	if err != nil {
		return entities.Order{}, err
	}
	saved.Items = o.Items
	return saved, nil
}

func (r *postgresRepo) SaveItems(ctx context.Context, orderID string, items []entities.Item) error {
	if len(items) == 0 {
		return nil
	}

	q := r.qb.Insert("order_items").Columns(itemColumns...)
	for _, it := range items {
		q = q.Values(
			orderID,
			it.ProductID,
			it.ProductName,
			it.Quantity,
			nullString(it.Size),
			nullString(it.Color),
			it.UnitPrice,
		)
	}

	query, args := q.MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert items: %w", err)
	}
	return nil
}

func (r *postgresRepo) GetOrderByID(ctx context.Context, id string) (entities.Order, error) {
	if uuid.Validate(id) != nil {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	return r.getOrder(ctx, sq.Eq{"id": id})
}

func (r *postgresRepo) GetOrderByIdempotencyKey(ctx context.Context, key string) (entities.Order, error) {
	return r.getOrder(ctx, sq.Eq{"idempotency_key": key})
}

func (r *postgresRepo) getOrder(ctx context.Context, where sq.Sqlizer) (entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		Where(where).
		MustSql()

	var order Order
	err := r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}

	items, err := r.selectItems(ctx, order.ID)
	if err != nil {
		return entities.Order{}, err
	}

	return OrderToEntity(order, items)
}

func (r *postgresRepo) ListOrders(ctx context.Context, f entities.OrderFilter) ([]entities.Order, error) {
	limit := f.Limit
	if limit == 0 {
		limit = defaultListLimit
	}

	q := r.qb.Select(orderColumns...).
		From("orders").
		OrderBy("created_at DESC").
		Limit(limit).
		Offset(f.Offset)
	if f.Status != "" {
		q = q.Where(sq.Eq{"status": string(f.Status)})
	}
	if f.UserID != "" {
		q = q.Where(sq.Eq{"user_id": f.UserID})
	}

	query, args := q.MustSql()

	var orders []Order
	if err := r.selectContext(ctx, &orders, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select orders: %w", err)
	}

	if len(orders) == 0 {
		return []entities.Order{}, nil
	}

	ids := make([]string, len(orders))
	for i, order := range orders {
		ids[i] = order.ID
	}

	query, args = r.qb.Select(itemColumns...).
		From("order_items").
		Where(sq.Eq{"order_id": ids}).
		OrderBy("id").
		MustSql()

	var items []Item
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select items: %w", err)
	}
	itemsMap := make(map[string][]Item, len(ids))
	for _, item := range items {
		itemsMap[item.OrderID] = append(itemsMap[item.OrderID], item)
	}

	result := make([]entities.Order, 0, len(orders))
	for _, order := range orders {
		o, err := OrderToEntity(order, itemsMap[order.ID])
		if err != nil {
			return nil, err
		}
		result = append(result, o)
	}

	return result, nil
}

// UpdateOrder overwrites the mutable columns and returns the updated order.
// Last write wins; there is no version check.
func (r *postgresRepo) UpdateOrder(ctx context.Context, id string, upd entities.OrderUpdate) (entities.Order, error) {
	if uuid.Validate(id) != nil {
		return entities.Order{}, entities.ErrOrderNotFound
	}

	q := r.qb.Update("orders").
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(orderColumns, ", "))
	if upd.Status != "" {
		q = q.Set("status", string(upd.Status))
	}
	if upd.PaymentReceipt != "" {
		q = q.Set("payment_receipt", upd.PaymentReceipt)
	}
	if upd.CancellationReason != "" {
		q = q.Set("cancellation_reason", upd.CancellationReason)
	}

	query, args := q.MustSql()

	var order Order
	err := r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to update order: %w", err)
	}

	items, err := r.selectItems(ctx, order.ID)
	if err != nil {
		return entities.Order{}, err
	}

	return OrderToEntity(order, items)
}

func (r *postgresRepo) GetProductByID(ctx context.Context, id string) (entities.Product, error) {
	query, args := r.qb.Select("id", "name", "price").
		From("products").
		Where(sq.Eq{"id": id}).
		MustSql()

	var product Product
	err := r.getContext(ctx, &product, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Product{}, entities.ErrProductNotFound
	}
	if err != nil {
		return entities.Product{}, fmt.Errorf("failed to get product: %w", err)
	}
	return ProductToEntity(product), nil
}

func (r *postgresRepo) selectItems(ctx context.Context, orderID string) ([]Item, error) {
	query, args := r.qb.Select(itemColumns...).
		From("order_items").
		Where(sq.Eq{"order_id": orderID}).
		OrderBy("id").
		MustSql()

	var items []Item
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select items: %w", err)
	}
	return items, nil
}

func isCardReferenceConflict(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) &&
		pqErr.Code == uniqueViolation &&
		pqErr.Constraint == cardReferenceIndexName
}

func (r *postgresRepo) execContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	if tx := trm.ExtractTx(ctx); tx != nil {
		return tx.ExecContext(ctx, query, args...)
	}
	return r.db.ExecContext(ctx, query, args...)
}

func (r *postgresRepo) getContext(ctx context.Context, dest any, query string, args ...any) error {
	if tx := trm.ExtractTx(ctx); tx != nil {
		return tx.GetContext(ctx, dest, query, args...)
	}
	return r.db.GetContext(ctx, dest, query, args...)
}

func (r *postgresRepo) selectContext(ctx context.Context, dest any, query string, args ...any) error {
	if tx := trm.ExtractTx(ctx); tx != nil {
		return tx.SelectContext(ctx, dest, query, args...)
	}
	return r.db.SelectContext(ctx, dest, query, args...)
}
