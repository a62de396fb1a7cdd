package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freshcart/freshcart/cart/service"
	"github.com/freshcart/freshcart/cart/store"
	"github.com/freshcart/freshcart/cart/pkg/response"
	"github.com/freshcart/freshcart/internal/constants"
)

type memoryPersister struct {
	mu    sync.Mutex
	items map[string][]store.Item
}

func (p *memoryPersister) Load(c context.Context, session string) ([]store.Item, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.items[session], nil
}

func (p *memoryPersister) Save(c context.Context, session string, items []store.Item) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.items[session] = items
	return nil
}

func (p *memoryPersister) Delete(c context.Context, session string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.items, session)
	return nil
}

func newCartRouter() *mux.Router {
	router := mux.NewRouter()
	persister := &memoryPersister{items: map[string][]store.Item{}}
	AttachCartController(router, service.NewCartService(persister))
	return router
}

func doJSON(
	t *testing.T,
	router *mux.Router,
	method, target, body string,
	cookies []*http.Cookie,
) (*httptest.ResponseRecorder, response.Cart) {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("{}")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	cart := response.Cart{}
	if rec.Code == http.StatusOK {
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&cart))
	}
	return rec, cart
}

func TestCartEndpoints(t *testing.T) {
	router := newCartRouter()

	rec, cart := doJSON(t, router, http.MethodPost, "/carts/items",
		`{"id": "1", "name": "Whole Milk", "price": "2.50", "quantity": 2}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, cart.Items, 1)
	assert.EqualValues(t, 2, cart.ItemCount)

	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies, "first cart access should mint a session cookie")
	var sessionCookie *http.Cookie
	for _, cookie := range cookies {
		if cookie.Name == constants.SessionCookie {
			sessionCookie = cookie
		}
	}
	require.NotNil(t, sessionCookie)
	session := []*http.Cookie{sessionCookie}

	rec, cart = doJSON(t, router, http.MethodPost, "/carts/items",
		`{"id": "1", "name": "Whole Milk", "price": "2.50", "quantity": 3}`, session)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, cart.Items, 1, "adding the same product should merge quantities")
	assert.EqualValues(t, 5, cart.Items[0].Quantity)
	assert.True(t, decimal.RequireFromString("12.5").Equal(cart.Total))

	rec, cart = doJSON(t, router, http.MethodGet, "/carts", "", session)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 5, cart.ItemCount)

	rec, cart = doJSON(t, router, http.MethodPut, "/carts/items/1",
		`{"quantity": 0}`, session)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, cart.Items, "updating quantity to zero should remove the item")

	rec, cart = doJSON(t, router, http.MethodPost, "/carts/items",
		`{"id": "2", "name": "Sourdough Bread", "price": "4.25", "quantity": 1}`, session)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, cart.Items, 1)

	rec, cart = doJSON(t, router, http.MethodDelete, "/carts/items/2", "", session)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, cart.Items)

	doJSON(t, router, http.MethodPost, "/carts/items",
		`{"id": "3", "name": "Bananas", "price": "0.59", "quantity": 6}`, session)
	rec, cart = doJSON(t, router, http.MethodDelete, "/carts", "", session)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, cart.Items)
	assert.EqualValues(t, 0, cart.ItemCount)
}

func TestCartSessionsAreIsolated(t *testing.T) {
	router := newCartRouter()

	rec, _ := doJSON(t, router, http.MethodPost, "/carts/items",
		`{"id": "1", "name": "Whole Milk", "price": "2.50", "quantity": 2}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, cart := doJSON(t, router, http.MethodGet, "/carts", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, cart.Items, "a new session should start with an empty cart")
}

func TestAddItemValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "malformed body", body: `{"id": `},
		{name: "missing name", body: `{"id": "1", "price": "2.50", "quantity": 2}`},
		{name: "zero quantity", body: `{"id": "1", "name": "Whole Milk", "price": "2.50", "quantity": 0}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newCartRouter()
			rec, _ := doJSON(t, router, http.MethodPost, "/carts/items", tt.body, nil)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}
