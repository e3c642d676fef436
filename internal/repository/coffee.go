package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/tuanvumaihuynh/coffee-store/internal/model"
	"github.com/tuanvumaihuynh/coffee-store/internal/storage/db"
)

type CoffeeRepository interface {
	WithDB(db db.DB) CoffeeRepository
	// ListAllCoffees returns every coffee ordered by id.
	ListAllCoffees(ctx context.Context) ([]model.Coffee, error)
	// FindCoffeeByID returns nil when no coffee has the given id.
	FindCoffeeByID(ctx context.Context, id int64) (*model.Coffee, error)
	// SaveCoffee inserts the coffee when its ID is zero and overwrites the
	// row with that ID otherwise. It returns the stored row.
	SaveCoffee(ctx context.Context, coffee model.Coffee) (model.Coffee, error)
	// DeleteCoffeeByID is a no-op when the row does not exist.
	DeleteCoffeeByID(ctx context.Context, id int64) error
}

type coffeeRow struct {
	ID          int64     `db:"id"`
	Name        string    `db:"name"`
	Price       float64   `db:"price"`
	Description string    `db:"description"`
	Size        string    `db:"size"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

func (r coffeeRow) toModel() model.Coffee {
	return model.Coffee{
		ID:          r.ID,
		Name:        r.Name,
		Price:       r.Price,
		Description: r.Description,
		Size:        r.Size,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

const coffeeColumns = `id, name, price, description, size, created_at, updated_at`

type coffeeRepository struct {
	db db.DB
}

func NewCoffeeRepository(db db.DB) CoffeeRepository {
	return &coffeeRepository{
		db: db,
	}
}

func (r coffeeRepository) WithDB(db db.DB) CoffeeRepository {
	return &coffeeRepository{
		db: db,
	}
}

func (r coffeeRepository) ListAllCoffees(ctx context.Context) ([]model.Coffee, error) {
	rows, err := r.db.Query(ctx, `SELECT `+coffeeColumns+` FROM coffees ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query coffees: %w", err)
	}

	coffeeRows, err := pgx.CollectRows(rows, pgx.RowToStructByName[coffeeRow])
	if err != nil {
		return nil, fmt.Errorf("collect coffees: %w", err)
	}

	coffees := make([]model.Coffee, 0, len(coffeeRows))
	for _, row := range coffeeRows {
		coffees = append(coffees, row.toModel())
	}

	return coffees, nil
}

func (r coffeeRepository) FindCoffeeByID(ctx context.Context, id int64) (*model.Coffee, error) {
	rows, err := r.db.Query(ctx, `SELECT `+coffeeColumns+` FROM coffees WHERE id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("query coffee: %w", err)
	}

	coffeeRows, err := pgx.CollectRows(rows, pgx.RowToStructByName[coffeeRow])
	if err != nil {
		return nil, fmt.Errorf("collect coffee: %w", err)
	}

	if len(coffeeRows) == 0 {
		return nil, nil
	}

	coffee := coffeeRows[0].toModel()
	return &coffee, nil
}

func (r coffeeRepository) SaveCoffee(ctx context.Context, coffee model.Coffee) (model.Coffee, error) {
	if coffee.ID == 0 {
		return r.insertCoffee(ctx, coffee)
	}
	return r.updateCoffee(ctx, coffee)
}

func (r coffeeRepository) insertCoffee(ctx context.Context, coffee model.Coffee) (model.Coffee, error) {
	rows, err := r.db.Query(ctx, `
		INSERT INTO coffees (name, price, description, size, created_at, updated_at)
		VALUES (@name, @price, @description, @size, @created_at, @updated_at)
		RETURNING `+coffeeColumns,
		pgx.NamedArgs{
			"name":        coffee.Name,
			"price":       coffee.Price,
			"description": coffee.Description,
			"size":        coffee.Size,
			"created_at":  coffee.CreatedAt,
			"updated_at":  coffee.UpdatedAt,
		})
	if err != nil {
		return model.Coffee{}, fmt.Errorf("insert coffee: %w", err)
	}

	row, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[coffeeRow])
	if err != nil {
		return model.Coffee{}, fmt.Errorf("collect inserted coffee: %w", err)
	}

	return row.toModel(), nil
}

func (r coffeeRepository) updateCoffee(ctx context.Context, coffee model.Coffee) (model.Coffee, error) {
	rows, err := r.db.Query(ctx, `
		UPDATE coffees
		SET
			name        = @name,
			price       = @price,
			description = @description,
			size        = @size,
			updated_at  = @updated_at
		WHERE id = @id
		RETURNING `+coffeeColumns,
		pgx.NamedArgs{
			"id":          coffee.ID,
			"name":        coffee.Name,
			"price":       coffee.Price,
			"description": coffee.Description,
			"size":        coffee.Size,
			"updated_at":  coffee.UpdatedAt,
		})
	if err != nil {
		return model.Coffee{}, fmt.Errorf("update coffee %d: %w", coffee.ID, err)
	}

	row, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[coffeeRow])
	if err != nil {
		return model.Coffee{}, fmt.Errorf("collect updated coffee %d: %w", coffee.ID, err)
	}

	return row.toModel(), nil
}

func (r coffeeRepository) DeleteCoffeeByID(ctx context.Context, id int64) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM coffees WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete coffee %d: %w", id, err)
	}

	return nil
}
