package response

import (
	"github.com/shopspring/decimal"

	"github.com/freshcart/freshcart/cart/store"
)

type CartItem struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int32           `json:"quantity"`
	ImageURL string          `json:"image_url"`
}

type Cart struct {
	Items     []CartItem      `json:"items"`
	Total     decimal.Decimal `json:"total"`
	ItemCount int32           `json:"item_count"`
}

func CartFromItems(items []store.Item, total decimal.Decimal, itemCount int32) Cart {
	cartItems := make([]CartItem, 0, len(items))
	for _, item := range items {
		cartItems = append(cartItems, CartItem{
			ID:       item.ID,
			Name:     item.Name,
			Price:    item.Price,
			Quantity: item.Quantity,
			ImageURL: item.ImageURL,
		})
	}
	return Cart{Items: cartItems, Total: total, ItemCount: itemCount}
}
