package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateOrder is the successful checkout response body.
type CreateOrder struct {
	Success     bool      `json:"success"`
	OrderNumber string    `json:"orderNumber"`
	OrderId     uuid.UUID `json:"orderId"`
	ItemsCount  int       `json:"itemsCount"`
}

type Order struct {
	ID              uuid.UUID       `json:"id"`
	OrderNumber     string          `json:"order_number"`
	CustomerName    string          `json:"customer_name"`
	CustomerEmail   string          `json:"customer_email"`
	CustomerPhone   string          `json:"customer_phone"`
	DeliveryAddress string          `json:"delivery_address"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	Status          string          `json:"status"`
	OrderItems      []OrderItem     `json:"order_items"`
	CreatedAt       time.Time       `json:"created_at"`
}

type OrderItem struct {
	ID              uuid.UUID       `json:"id"`
	OrderId         uuid.UUID       `json:"order_id"`
	ProductId       uuid.UUID       `json:"product_id"`
	Quantity        int32           `json:"quantity"`
	PriceAtPurchase decimal.Decimal `json:"price_at_purchase"`
}
