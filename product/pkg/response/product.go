package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/freshcart/freshcart/internal/repository"
)

type Product struct {
	ID           uuid.UUID       `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price"`
	CategoryID   uuid.UUID       `json:"category_id"`
	ImageURL     string          `json:"image_url"`
	Stock        int32           `json:"stock"`
	Rating       float64         `json:"rating"`
	ReviewsCount int32           `json:"reviews_count"`
	IsFeatured   bool            `json:"is_featured"`
	CreatedAt    time.Time       `json:"created_at"`
}

type Category struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
}

func ProductFromRepository(p repository.Product) Product {
	return Product{
		ID:           p.ID,
		Name:         p.Name,
		Description:  p.Description,
		Price:        repository.DecimalFromNumeric(p.Price),
		CategoryID:   p.CategoryID,
		ImageURL:     p.ImageURL,
		Stock:        p.Stock,
		Rating:       p.Rating,
		ReviewsCount: p.ReviewsCount,
		IsFeatured:   p.IsFeatured,
		CreatedAt:    p.CreatedAt.Time,
	}
}

func CategoryFromRepository(c repository.Category) Category {
	return Category{ID: c.ID, Name: c.Name, Description: c.Description, Icon: c.Icon}
}
