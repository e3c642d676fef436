package http

import (
	"fmt"

	"github.com/jinzhu/copier"

	"github.com/tuanvumaihuynh/coffee-store/internal/model"
)

// CoffeeRequest is the body of create and update requests. An id in the body
// is not part of the shape and is therefore ignored.
type CoffeeRequest struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Size        string  `json:"size"`
}

type CoffeeResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Size        string  `json:"size"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

// coffeeToResponse copies the fields shared by name; bookkeeping timestamps
// are not part of the response.
func coffeeToResponse(c model.Coffee) (CoffeeResponse, error) {
	var res CoffeeResponse
	if err := copier.Copy(&res, &c); err != nil {
		return CoffeeResponse{}, fmt.Errorf("copier copy coffee: %w", err)
	}
	return res, nil
}

func coffeesToResponse(coffees []model.Coffee) ([]CoffeeResponse, error) {
	res := make([]CoffeeResponse, 0, len(coffees))
	if len(coffees) == 0 {
		return res, nil
	}
	if err := copier.Copy(&res, &coffees); err != nil {
		return nil, fmt.Errorf("copier copy coffees: %w", err)
	}
	return res, nil
}
