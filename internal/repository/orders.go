package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const insertOrder = `
INSERT INTO orders (order_number, customer_name, customer_email, customer_phone, delivery_address, total_amount, status)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id, order_number, customer_name, customer_email, customer_phone, delivery_address, total_amount, status, created_at
`

type InsertOrderParams struct {
	OrderNumber     string
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	DeliveryAddress string
	TotalAmount     pgtype.Numeric
	Status          string
}

func (q *Queries) InsertOrder(c context.Context, arg InsertOrderParams) (Order, error) {
	row := q.db.QueryRow(c, insertOrder,
		arg.OrderNumber,
		arg.CustomerName,
		arg.CustomerEmail,
		arg.CustomerPhone,
		arg.DeliveryAddress,
		arg.TotalAmount,
		arg.Status,
	)
	var o Order
	err := row.Scan(
		&o.ID,
		&o.OrderNumber,
		&o.CustomerName,
		&o.CustomerEmail,
		&o.CustomerPhone,
		&o.DeliveryAddress,
		&o.TotalAmount,
		&o.Status,
		&o.CreatedAt,
	)
	return o, err
}

const insertOrderItem = `
INSERT INTO order_items (order_id, product_id, quantity, price_at_purchase)
VALUES ($1, $2::uuid, $3, $4)
`

type InsertOrderItemParams struct {
	OrderID uuid.UUID
	// ProductID stays a string so identifiers the legacy shim passed
	// through unchanged reach the database, which is where unrecognized
	// formats are rejected.
	ProductID       string
	Quantity        int32
	PriceAtPurchase pgtype.Numeric
}

// InsertOrderItems inserts all line items as one batch and returns the
// number of inserted rows. The first failing item fails the whole batch.
func (q *Queries) InsertOrderItems(c context.Context, args []InsertOrderItemParams) (int64, error) {
	batch := &pgx.Batch{}
	for _, arg := range args {
		batch.Queue(insertOrderItem,
			arg.OrderID,
			arg.ProductID,
			arg.Quantity,
			arg.PriceAtPurchase,
		)
	}
	results := q.db.SendBatch(c, batch)
	defer results.Close()

	var inserted int64
	for range args {
		tag, err := results.Exec()
		if err != nil {
			return inserted, err
		}
		inserted += tag.RowsAffected()
	}
	return inserted, nil
}

const deleteOrder = `
DELETE FROM orders WHERE id = $1
`

func (q *Queries) DeleteOrder(c context.Context, id uuid.UUID) error {
	_, err := q.db.Exec(c, deleteOrder, id)
	return err
}

const findOrderById = `
SELECT id, order_number, customer_name, customer_email, customer_phone, delivery_address, total_amount, status, created_at
FROM orders
WHERE id = $1
`

func (q *Queries) FindOrderById(c context.Context, id uuid.UUID) (Order, error) {
	row := q.db.QueryRow(c, findOrderById, id)
	var o Order
	err := row.Scan(
		&o.ID,
		&o.OrderNumber,
		&o.CustomerName,
		&o.CustomerEmail,
		&o.CustomerPhone,
		&o.DeliveryAddress,
		&o.TotalAmount,
		&o.Status,
		&o.CreatedAt,
	)
	return o, err
}

const findOrderItemsByOrderId = `
SELECT id, order_id, product_id, quantity, price_at_purchase
FROM order_items
WHERE order_id = $1
ORDER BY id
`

func (q *Queries) FindOrderItemsByOrderId(c context.Context, orderId uuid.UUID) ([]OrderItem, error) {
	rows, err := q.db.Query(c, findOrderItemsByOrderId, orderId)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []OrderItem{}
	for rows.Next() {
		var i OrderItem
		err := rows.Scan(&i.ID, &i.OrderID, &i.ProductID, &i.Quantity, &i.PriceAtPurchase)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}
