package repository

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type Category struct {
	ID          uuid.UUID
	Name        string
	Description string
	Icon        string
}

type Product struct {
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
	CreatedAt    pgtype.Timestamptz
	UpdatedAt    pgtype.Timestamptz
}

type Order struct {
	ID              uuid.UUID
	OrderNumber     string
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	DeliveryAddress string
	TotalAmount     pgtype.Numeric
	Status          string
	CreatedAt       pgtype.Timestamptz
}

type OrderItem struct {
	ID              uuid.UUID
	OrderID         uuid.UUID
	ProductID       uuid.UUID
	Quantity        int32
	PriceAtPurchase pgtype.Numeric
}
