package http

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuanvumaihuynh/coffee-store/internal/model"
)

func TestCoffeesToResponse(t *testing.T) {
	now := time.Now()
	coffees := []model.Coffee{
		{ID: 1, Name: "Latte", Price: 3.5, Description: "Espresso with milk", Size: "M", CreatedAt: now, UpdatedAt: now},
		{ID: 2, Name: "Americano", Price: 2.8, Description: "Espresso with water", Size: "L", CreatedAt: now, UpdatedAt: now},
	}

	res, err := coffeesToResponse(coffees)
	require.NoError(t, err)

	assert.Equal(t, []CoffeeResponse{
		{ID: 1, Name: "Latte", Price: 3.5, Description: "Espresso with milk", Size: "M"},
		{ID: 2, Name: "Americano", Price: 2.8, Description: "Espresso with water", Size: "L"},
	}, res)
}

func TestCoffeesToResponse_Empty(t *testing.T) {
	res, err := coffeesToResponse(nil)
	require.NoError(t, err)

	assert.NotNil(t, res)
	assert.Empty(t, res)
}
