// Package seed holds the static reference catalog the store is
// initialized with. Product identifiers live in the fixed
// 20000000-0000-0000-0000-%012d namespace so legacy numeric identifiers
// resolve onto them.
package seed

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
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
	Price        decimal.Decimal
	CategoryID   uuid.UUID
	ImageURL     string
	Stock        int32
	Rating       float64
	ReviewsCount int32
	IsFeatured   bool
}

func categoryId(n int) uuid.UUID {
	return uuid.MustParse(fmt.Sprintf("10000000-0000-0000-0000-%012d", n))
}

func productId(n int) uuid.UUID {
	return uuid.MustParse(fmt.Sprintf("20000000-0000-0000-0000-%012d", n))
}

var Categories = []Category{
	{ID: categoryId(1), Name: "Fruits & Vegetables", Description: "Fresh produce delivered daily", Icon: "🥬"},
	{ID: categoryId(2), Name: "Dairy & Eggs", Description: "Milk, cheese, butter and eggs", Icon: "🥛"},
	{ID: categoryId(3), Name: "Bakery", Description: "Breads and baked goods", Icon: "🍞"},
	{ID: categoryId(4), Name: "Meat & Seafood", Description: "Fresh meat and fish", Icon: "🥩"},
	{ID: categoryId(5), Name: "Pantry", Description: "Staples, grains and canned goods", Icon: "🥫"},
	{ID: categoryId(6), Name: "Beverages", Description: "Juices, coffee and soft drinks", Icon: "🧃"},
}

var Products = []Product{
	{ID: productId(1), Name: "Bananas", Description: "Organic bananas, per bunch", Price: decimal.RequireFromString("1.99"), CategoryID: categoryId(1), Stock: 150, Rating: 4.6, ReviewsCount: 214, IsFeatured: true},
	{ID: productId(2), Name: "Red Apples", Description: "Crisp red apples, 1kg", Price: decimal.RequireFromString("3.49"), CategoryID: categoryId(1), Stock: 120, Rating: 4.5, ReviewsCount: 162},
	{ID: productId(3), Name: "Baby Spinach", Description: "Washed baby spinach, 200g", Price: decimal.RequireFromString("2.79"), CategoryID: categoryId(1), Stock: 80, Rating: 4.4, ReviewsCount: 98},
	{ID: productId(4), Name: "Carrots", Description: "Sweet carrots, 1kg", Price: decimal.RequireFromString("1.49"), CategoryID: categoryId(1), Stock: 140, Rating: 4.3, ReviewsCount: 75},
	{ID: productId(5), Name: "Avocados", Description: "Ripe Hass avocados, pack of 2", Price: decimal.RequireFromString("4.99"), CategoryID: categoryId(1), Stock: 60, Rating: 4.7, ReviewsCount: 301, IsFeatured: true},
	{ID: productId(6), Name: "Whole Milk", Description: "Whole milk, 1L", Price: decimal.RequireFromString("2.50"), CategoryID: categoryId(2), Stock: 200, Rating: 4.8, ReviewsCount: 412, IsFeatured: true},
	{ID: productId(7), Name: "Free-Range Eggs", Description: "Free-range eggs, dozen", Price: decimal.RequireFromString("4.29"), CategoryID: categoryId(2), Stock: 90, Rating: 4.7, ReviewsCount: 256},
	{ID: productId(8), Name: "Cheddar Cheese", Description: "Mature cheddar, 250g", Price: decimal.RequireFromString("5.49"), CategoryID: categoryId(2), Stock: 70, Rating: 4.6, ReviewsCount: 189},
	{ID: productId(9), Name: "Greek Yogurt", Description: "Plain Greek yogurt, 500g", Price: decimal.RequireFromString("3.99"), CategoryID: categoryId(2), Stock: 85, Rating: 4.5, ReviewsCount: 143},
	{ID: productId(10), Name: "Salted Butter", Description: "Salted butter, 250g", Price: decimal.RequireFromString("3.29"), CategoryID: categoryId(2), Stock: 110, Rating: 4.6, ReviewsCount: 97},
	{ID: productId(11), Name: "Sourdough Loaf", Description: "Stone-baked sourdough", Price: decimal.RequireFromString("4.50"), CategoryID: categoryId(3), Stock: 40, Rating: 4.9, ReviewsCount: 328, IsFeatured: true},
	{ID: productId(12), Name: "Bagels", Description: "Plain bagels, pack of 4", Price: decimal.RequireFromString("3.19"), CategoryID: categoryId(3), Stock: 55, Rating: 4.3, ReviewsCount: 84},
	{ID: productId(13), Name: "Croissants", Description: "All-butter croissants, pack of 4", Price: decimal.RequireFromString("4.79"), CategoryID: categoryId(3), Stock: 35, Rating: 4.7, ReviewsCount: 201},
	{ID: productId(14), Name: "Whole Wheat Bread", Description: "Sliced whole wheat loaf", Price: decimal.RequireFromString("2.89"), CategoryID: categoryId(3), Stock: 75, Rating: 4.2, ReviewsCount: 66},
	{ID: productId(15), Name: "Banana Bread", Description: "Homestyle banana bread", Price: decimal.RequireFromString("5.99"), CategoryID: categoryId(3), Stock: 25, Rating: 4.8, ReviewsCount: 152},
	{ID: productId(16), Name: "Chicken Breast", Description: "Skinless chicken breast, 500g", Price: decimal.RequireFromString("6.99"), CategoryID: categoryId(4), Stock: 65, Rating: 4.5, ReviewsCount: 178},
	{ID: productId(17), Name: "Atlantic Salmon", Description: "Salmon fillets, 300g", Price: decimal.RequireFromString("9.99"), CategoryID: categoryId(4), Stock: 40, Rating: 4.7, ReviewsCount: 233, IsFeatured: true},
	{ID: productId(18), Name: "Ground Beef", Description: "Lean ground beef, 500g", Price: decimal.RequireFromString("7.49"), CategoryID: categoryId(4), Stock: 55, Rating: 4.4, ReviewsCount: 121},
	{ID: productId(19), Name: "Pork Sausages", Description: "Butcher's sausages, pack of 6", Price: decimal.RequireFromString("5.79"), CategoryID: categoryId(4), Stock: 45, Rating: 4.3, ReviewsCount: 89},
	{ID: productId(20), Name: "Raw Prawns", Description: "Peeled raw prawns, 250g", Price: decimal.RequireFromString("8.49"), CategoryID: categoryId(4), Stock: 30, Rating: 4.6, ReviewsCount: 104},
	{ID: productId(21), Name: "Basmati Rice", Description: "Basmati rice, 2kg", Price: decimal.RequireFromString("6.49"), CategoryID: categoryId(5), Stock: 95, Rating: 4.6, ReviewsCount: 167},
	{ID: productId(22), Name: "Spaghetti", Description: "Durum wheat spaghetti, 500g", Price: decimal.RequireFromString("1.79"), CategoryID: categoryId(5), Stock: 130, Rating: 4.4, ReviewsCount: 92},
	{ID: productId(23), Name: "Olive Oil", Description: "Extra virgin olive oil, 500ml", Price: decimal.RequireFromString("8.99"), CategoryID: categoryId(5), Stock: 60, Rating: 4.8, ReviewsCount: 276, IsFeatured: true},
	{ID: productId(24), Name: "Chopped Tomatoes", Description: "Canned chopped tomatoes, 400g", Price: decimal.RequireFromString("1.29"), CategoryID: categoryId(5), Stock: 160, Rating: 4.2, ReviewsCount: 58},
	{ID: productId(25), Name: "Peanut Butter", Description: "Crunchy peanut butter, 340g", Price: decimal.RequireFromString("3.79"), CategoryID: categoryId(5), Stock: 85, Rating: 4.5, ReviewsCount: 134},
	{ID: productId(26), Name: "Orange Juice", Description: "Freshly squeezed orange juice, 1L", Price: decimal.RequireFromString("3.49"), CategoryID: categoryId(6), Stock: 75, Rating: 4.6, ReviewsCount: 145},
	{ID: productId(27), Name: "Ground Coffee", Description: "Medium roast ground coffee, 250g", Price: decimal.RequireFromString("7.99"), CategoryID: categoryId(6), Stock: 50, Rating: 4.7, ReviewsCount: 289, IsFeatured: true},
	{ID: productId(28), Name: "Green Tea", Description: "Green tea bags, box of 50", Price: decimal.RequireFromString("4.49"), CategoryID: categoryId(6), Stock: 65, Rating: 4.4, ReviewsCount: 112},
	{ID: productId(29), Name: "Sparkling Water", Description: "Sparkling mineral water, 6x500ml", Price: decimal.RequireFromString("3.99"), CategoryID: categoryId(6), Stock: 100, Rating: 4.3, ReviewsCount: 77},
	{ID: productId(30), Name: "Lemonade", Description: "Cloudy lemonade, 1L", Price: decimal.RequireFromString("2.49"), CategoryID: categoryId(6), Stock: 90, Rating: 4.2, ReviewsCount: 63},
}
