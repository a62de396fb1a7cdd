package request

import (
	"github.com/shopspring/decimal"
)

// CreateOrder is the checkout submission payload. Field names follow the
// storefront client contract.
type CreateOrder struct {
	FirstName string          `validate:"required"            json:"firstName"`
	LastName  string          `validate:"required"            json:"lastName"`
	Email     string          `validate:"required"            json:"email"`
	Phone     string          `validate:"required"            json:"phone"`
	Address   string          `validate:"required"            json:"address"`
	City      string          `validate:"required"            json:"city"`
	ZipCode   string          `validate:"required"            json:"zipCode"`
	Items     []OrderItem     `validate:"required,gt=0,dive"  json:"items"`
	Total     decimal.Decimal `                               json:"total"`
}

type OrderItem struct {
	ID       string          `validate:"required"       json:"id"`
	Name     string          `                          json:"name"`
	Price    decimal.Decimal `                          json:"price"`
	Quantity int32           `validate:"required,gte=1" json:"quantity"`
}
