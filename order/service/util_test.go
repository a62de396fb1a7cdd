package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestResolveProductID(t *testing.T) {
	tests := []struct {
		name     string
		id       string
		expected string
	}{
		{
			name:     "lowest numeric identifier maps into namespace",
			id:       "1",
			expected: "20000000-0000-0000-0000-000000000001",
		},
		{
			name:     "highest numeric identifier maps into namespace",
			id:       "30",
			expected: "20000000-0000-0000-0000-000000000030",
		},
		{
			name:     "numeric identifier below range passes through",
			id:       "0",
			expected: "0",
		},
		{
			name:     "numeric identifier above range passes through",
			id:       "31",
			expected: "31",
		},
		{
			name:     "uuid passes through unchanged",
			id:       "30000000-0000-0000-0000-000000000007",
			expected: "30000000-0000-0000-0000-000000000007",
		},
		{
			name:     "namespaced legacy uuid passes through unchanged",
			id:       "20000000-0000-0000-0000-000000000006",
			expected: "20000000-0000-0000-0000-000000000006",
		},
		{
			name:     "non numeric identifier passes through",
			id:       "banana",
			expected: "banana",
		},
		{
			name:     "empty identifier passes through",
			id:       "",
			expected: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ResolveProductID(tt.id))
		})
	}
}

func TestIsRecognizedProductID(t *testing.T) {
	tests := []struct {
		name     string
		id       string
		expected bool
	}{
		{name: "legacy numeric in range", id: "15", expected: true},
		{name: "uuid", id: "30000000-0000-0000-0000-000000000007", expected: true},
		{name: "numeric out of range", id: "31", expected: false},
		{name: "non numeric", id: "banana", expected: false},
		{name: "empty", id: "", expected: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsRecognizedProductID(tt.id))
		})
	}
}

func TestOrderNumber(t *testing.T) {
	submittedAt := time.UnixMilli(1756400000000)
	assert.Equal(t, "ORD-1756400000000", orderNumber(submittedAt))
}

func TestCustomerName(t *testing.T) {
	assert.Equal(t, "Ada Lovelace", customerName("Ada", "Lovelace"))
}

func TestDeliveryAddress(t *testing.T) {
	assert.Equal(
		t,
		"12 Main St, Springfield 62704",
		deliveryAddress("12 Main St", "Springfield", "62704"),
	)
}
