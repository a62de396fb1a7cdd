package repository

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	pgxuuid "github.com/vgarvardt/pgx-google-uuid/v5"
)

func setupQueries(t *testing.T, c context.Context) (*Queries, *pgxpool.Pool, func()) {
	t.Helper()

	pgContainer, err := postgres.Run(
		c,
		"postgres:16.6-alpine3.21",
		postgres.WithUsername("postgres"),
		postgres.WithPassword("postgres"),
		postgres.WithDatabase("postgres"),
		postgres.BasicWaitStrategies(),
		postgres.WithInitScripts(
			filepath.Join("..", "..", "db", "migrations", "000001_create_tables.up.sql"),
		),
	)
	if err != nil {
		t.Fatalf("failed running postgres container with error: %s", err)
	}

	pgConnStr, err := pgContainer.ConnectionString(c)
	if err != nil {
		t.Fatalf("failed getting postgres connection string with error: %s", err)
	}

	pgConfig, err := pgxpool.ParseConfig(pgConnStr)
	if err != nil {
		t.Fatalf("failed parsing pgx config with error: %s", err)
	}
	pgConfig.AfterConnect = func(c context.Context, conn *pgx.Conn) error {
		pgxuuid.Register(conn.TypeMap())
		return nil
	}

	pool, err := pgxpool.NewWithConfig(c, pgConfig)
	if err != nil {
		t.Fatalf("failed creating postgres pool with error: %s", err)
	}
	if err = pool.Ping(c); err != nil {
		t.Fatalf("failed ping postgres pool with error: %s", err)
	}

	teardown := func() {
		pool.Close()
		if err := testcontainers.TerminateContainer(pgContainer); err != nil {
			t.Fatalf("failed to terminate container: %s", err)
		}
	}
	return New(pool), pool, teardown
}

func seedCatalog(t *testing.T, c context.Context, queries *Queries) (uuid.UUID, uuid.UUID) {
	t.Helper()

	categoryId := uuid.MustParse("10000000-0000-0000-0000-000000000001")
	err := queries.UpsertCategory(c, UpsertCategoryParams{
		ID:          categoryId,
		Name:        "Dairy & Eggs",
		Description: "Fresh dairy products",
		Icon:        "milk",
	})
	require.NoError(t, err)

	productId := uuid.MustParse("20000000-0000-0000-0000-000000000006")
	err = queries.UpsertProduct(c, UpsertProductParams{
		ID:          productId,
		Name:        "Whole Milk",
		Description: "One gallon of whole milk",
		Price:       NumericFromDecimal(decimal.RequireFromString("2.50")),
		CategoryID:  categoryId,
		ImageURL:    "https://example.com/milk.jpg",
		Stock:       100,
		Rating:      4.5,
	})
	require.NoError(t, err)

	return categoryId, productId
}

func TestOrderLifecycle(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	c := context.Background()
	queries, _, teardown := setupQueries(t, c)
	defer teardown()

	_, productId := seedCatalog(t, c, queries)

	order, err := queries.InsertOrder(c, InsertOrderParams{
		OrderNumber:     "ORD-1756400000000",
		CustomerName:    "Ada Lovelace",
		CustomerEmail:   "ada@example.com",
		CustomerPhone:   "555-0100",
		DeliveryAddress: "12 Main St, Springfield 62704",
		TotalAmount:     NumericFromDecimal(decimal.RequireFromString("7.50")),
		Status:          "pending",
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, order.ID)
	assert.Equal(t, "ORD-1756400000000", order.OrderNumber)
	assert.True(t, order.CreatedAt.Valid)

	inserted, err := queries.InsertOrderItems(c, []InsertOrderItemParams{
		{
			OrderID:         order.ID,
			ProductID:       productId.String(),
			Quantity:        3,
			PriceAtPurchase: NumericFromDecimal(decimal.RequireFromString("2.50")),
		},
	})
	require.NoError(t, err)
	assert.EqualValues(t, 1, inserted)

	found, err := queries.FindOrderById(c, order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.ID, found.ID)
	assert.True(
		t,
		decimal.RequireFromString("7.50").Equal(DecimalFromNumeric(found.TotalAmount)),
	)

	items, err := queries.FindOrderItemsByOrderId(c, order.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, productId, items[0].ProductID)
	assert.EqualValues(t, 3, items[0].Quantity)
	assert.True(
		t,
		decimal.RequireFromString("2.50").Equal(DecimalFromNumeric(items[0].PriceAtPurchase)),
	)

	require.NoError(t, queries.DeleteOrder(c, order.ID))

	_, err = queries.FindOrderById(c, order.ID)
	assert.Error(t, err, "deleted order should not be found")

	items, err = queries.FindOrderItemsByOrderId(c, order.ID)
	require.NoError(t, err)
	assert.Empty(t, items, "deleting an order should cascade to its items")
}

func TestInsertOrderItemsRejectsUnknownProduct(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	c := context.Background()
	queries, _, teardown := setupQueries(t, c)
	defer teardown()

	seedCatalog(t, c, queries)

	order, err := queries.InsertOrder(c, InsertOrderParams{
		OrderNumber:     "ORD-1756400000001",
		CustomerName:    "Ada Lovelace",
		CustomerEmail:   "ada@example.com",
		CustomerPhone:   "555-0100",
		DeliveryAddress: "12 Main St, Springfield 62704",
		TotalAmount:     NumericFromDecimal(decimal.RequireFromString("2.50")),
		Status:          "pending",
	})
	require.NoError(t, err)

	tests := []struct {
		name      string
		productId string
	}{
		{name: "identifier that is not a uuid", productId: "banana"},
		{name: "uuid without a product row", productId: uuid.NewString()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := queries.InsertOrderItems(c, []InsertOrderItemParams{
				{
					OrderID:         order.ID,
					ProductID:       tt.productId,
					Quantity:        1,
					PriceAtPurchase: NumericFromDecimal(decimal.RequireFromString("2.50")),
				},
			})
			assert.Error(t, err)
		})
	}
}

func TestUpsertProductIsIdempotent(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	c := context.Background()
	queries, _, teardown := setupQueries(t, c)
	defer teardown()

	categoryId, productId := seedCatalog(t, c, queries)

	count, err := queries.CountProducts(c)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)

	err = queries.UpsertProduct(c, UpsertProductParams{
		ID:          productId,
		Name:        "Whole Milk",
		Description: "One gallon of whole milk, updated",
		Price:       NumericFromDecimal(decimal.RequireFromString("2.75")),
		CategoryID:  categoryId,
		ImageURL:    "https://example.com/milk.jpg",
		Stock:       80,
		Rating:      4.6,
	})
	require.NoError(t, err)

	count, err = queries.CountProducts(c)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count, "upserting an existing product should not add a row")

	product, err := queries.FindProductById(c, productId)
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("2.75").Equal(DecimalFromNumeric(product.Price)))
	assert.EqualValues(t, 80, product.Stock)
}
