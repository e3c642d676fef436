package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"

	"github.com/tuanvumaihuynh/coffee-store/internal/apperr"
	"github.com/tuanvumaihuynh/coffee-store/internal/service"
)

const (
	coffeesBasePath = "/api/coffees"
	maxBodyBytes    = 1 << 20 // 1 MB
)

type coffeeHandler struct {
	coffeeSvc service.CoffeeService
}

func newCoffeeHandler(coffeeSvc service.CoffeeService) *coffeeHandler {
	return &coffeeHandler{
		coffeeSvc: coffeeSvc,
	}
}

func (h *coffeeHandler) ListCoffees(w http.ResponseWriter, r *http.Request) error {
	ctx, span := tracer.Start(r.Context(), "coffeeHandler.ListCoffees")
	defer span.End()

	coffees, err := h.coffeeSvc.ListAllCoffees(ctx)
	if err != nil {
		return fmt.Errorf("coffeeSvc list all coffees: %w", err)
	}

	res, err := coffeesToResponse(coffees)
	if err != nil {
		return err
	}

	return writeJSON(w, http.StatusOK, res)
}

func (h *coffeeHandler) GetCoffee(w http.ResponseWriter, r *http.Request) error {
	ctx, span := tracer.Start(r.Context(), "coffeeHandler.GetCoffee")
	defer span.End()

	id, err := coffeeIDParam(r)
	if err != nil {
		return err
	}

	coffee, err := h.coffeeSvc.GetCoffee(ctx, id)
	if err != nil {
		return fmt.Errorf("coffeeSvc get coffee: %w", err)
	}

	res, err := coffeeToResponse(coffee)
	if err != nil {
		return err
	}

	return writeJSON(w, http.StatusOK, res)
}

func (h *coffeeHandler) CreateCoffee(w http.ResponseWriter, r *http.Request) error {
	ctx, span := tracer.Start(r.Context(), "coffeeHandler.CreateCoffee")
	defer span.End()

	body, err := decodeCoffeeRequest(w, r)
	if err != nil {
		return err
	}

	coffee, err := h.coffeeSvc.CreateCoffee(ctx, service.CoffeeParams(body))
	if err != nil {
		return fmt.Errorf("coffeeSvc create coffee: %w", err)
	}

	res, err := coffeeToResponse(coffee)
	if err != nil {
		return err
	}

	w.Header().Set("Location", fmt.Sprintf("%s/%d", coffeesBasePath, coffee.ID))
	return writeJSON(w, http.StatusCreated, res)
}

func (h *coffeeHandler) UpdateCoffee(w http.ResponseWriter, r *http.Request) error {
	ctx, span := tracer.Start(r.Context(), "coffeeHandler.UpdateCoffee")
	defer span.End()

	id, err := coffeeIDParam(r)
	if err != nil {
		return err
	}

	body, err := decodeCoffeeRequest(w, r)
	if err != nil {
		return err
	}

	coffee, err := h.coffeeSvc.UpdateCoffee(ctx, id, service.CoffeeParams(body))
	if err != nil {
		return fmt.Errorf("coffeeSvc update coffee: %w", err)
	}

	res, err := coffeeToResponse(coffee)
	if err != nil {
		return err
	}

	return writeJSON(w, http.StatusOK, res)
}

func (h *coffeeHandler) DeleteCoffee(w http.ResponseWriter, r *http.Request) error {
	ctx, span := tracer.Start(r.Context(), "coffeeHandler.DeleteCoffee")
	defer span.End()

	id, err := coffeeIDParam(r)
	if err != nil {
		return err
	}

	if err := h.coffeeSvc.DeleteCoffee(ctx, id); err != nil {
		return fmt.Errorf("coffeeSvc delete coffee: %w", err)
	}

	w.WriteHeader(http.StatusNoContent)
	return nil
}

func coffeeIDParam(r *http.Request) (int64, error) {
	var id int64
	err := runtime.BindStyledParameterWithOptions("simple", "id", chi.URLParam(r, "id"), &id,
		runtime.BindStyledParameterOptions{
			ParamLocation: runtime.ParamLocationPath,
			Explode:       false,
			Required:      true,
		})
	if err != nil {
		return 0, apperr.InvalidParamErr.
			WithMsgf("invalid format for parameter id: must be an integer").
			WrapParent(err)
	}

	return id, nil
}

// decodeCoffeeRequest accepts exactly one JSON object; null and trailing
// data after the object are rejected.
func decodeCoffeeRequest(w http.ResponseWriter, r *http.Request) (CoffeeRequest, error) {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))

	var body *CoffeeRequest
	if err := dec.Decode(&body); err != nil {
		return CoffeeRequest{}, apperr.ValidationErr.
			WithMsgf("can't decode JSON body").
			WrapParent(err)
	}

	if body == nil {
		return CoffeeRequest{}, apperr.ValidationErr.WithMsgf("request body must be a JSON object")
	}

	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return CoffeeRequest{}, apperr.ValidationErr.
			WithMsgf("request body must contain a single JSON object").
			WrapParent(err)
	}

	return *body, nil
}
