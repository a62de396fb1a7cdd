package request

import (
	"github.com/shopspring/decimal"
)

type AddItem struct {
	ID       string          `validate:"required"       json:"id"`
	Name     string          `validate:"required"       json:"name"`
	Price    decimal.Decimal `validate:"required"       json:"price"`
	Quantity int32           `validate:"required,gt=0"  json:"quantity"`
	ImageURL string          `                          json:"image_url"`
}

type UpdateQuantity struct {
	Quantity int32 `json:"quantity"`
}
