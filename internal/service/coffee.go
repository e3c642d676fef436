package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/tuanvumaihuynh/coffee-store/internal/apperr"
	"github.com/tuanvumaihuynh/coffee-store/internal/event"
	"github.com/tuanvumaihuynh/coffee-store/internal/model"
	"github.com/tuanvumaihuynh/coffee-store/internal/repository"
	"github.com/tuanvumaihuynh/coffee-store/internal/storage/db"
	"github.com/tuanvumaihuynh/coffee-store/pkg/outbox"
)

// CoffeeParams holds the client supplied fields of a coffee.
type CoffeeParams struct {
	Name        string
	Price       float64
	Description string
	Size        string
}

// CoffeeService returns an error wrapping apperr.CoffeeNotFoundErr when the
// requested id does not exist.
type CoffeeService interface {
	ListAllCoffees(ctx context.Context) ([]model.Coffee, error)
	GetCoffee(ctx context.Context, id int64) (model.Coffee, error)
	CreateCoffee(ctx context.Context, params CoffeeParams) (model.Coffee, error)
	UpdateCoffee(ctx context.Context, id int64, params CoffeeParams) (model.Coffee, error)
	DeleteCoffee(ctx context.Context, id int64) error
}

type coffeeService struct {
	db            db.DB
	coffeeRepo    repository.CoffeeRepository
	outboxMsgRepo repository.OutboxMsgRepository
	now           func() time.Time
}

func NewCoffeeService(
	db db.DB,
	coffeeRepo repository.CoffeeRepository,
	outboxMsgRepo repository.OutboxMsgRepository,
) CoffeeService {
	return &coffeeService{
		db:            db,
		coffeeRepo:    coffeeRepo,
		outboxMsgRepo: outboxMsgRepo,
		now:           time.Now,
	}
}

func (s *coffeeService) ListAllCoffees(ctx context.Context) ([]model.Coffee, error) {
	coffees, err := s.coffeeRepo.ListAllCoffees(ctx)
	if err != nil {
		return nil, fmt.Errorf("coffee repository list all coffees: %w", err)
	}

	return coffees, nil
}

func (s *coffeeService) GetCoffee(ctx context.Context, id int64) (model.Coffee, error) {
	return s.getCoffee(ctx, s.coffeeRepo, id)
}

func (s *coffeeService) getCoffee(ctx context.Context, coffeeRepo repository.CoffeeRepository, id int64) (model.Coffee, error) {
	coffee, err := coffeeRepo.FindCoffeeByID(ctx, id)
	if err != nil {
		return model.Coffee{}, fmt.Errorf("coffee repository find coffee by id: %w", err)
	}

	if coffee == nil {
		return model.Coffee{}, apperr.NewCoffeeNotFound(id)
	}

	return *coffee, nil
}

func (s *coffeeService) CreateCoffee(ctx context.Context, params CoffeeParams) (model.Coffee, error) {
	now := s.now()
	coffee := model.Coffee{
		Name:        params.Name,
		Price:       params.Price,
		Description: params.Description,
		Size:        params.Size,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	var saved model.Coffee
	if err := s.db.WithTx(ctx, func(db db.DB) error {
		var err error
		saved, err = s.coffeeRepo.
			WithDB(db).
			SaveCoffee(ctx, coffee)
		if err != nil {
			return fmt.Errorf("coffee repository save coffee: %w", err)
		}

		return s.publish(ctx, db, event.TopicCoffeeCreated, saved.ID, changedEvent(saved))
	}); err != nil {
		return model.Coffee{}, fmt.Errorf("db with tx: %w", err)
	}

	return saved, nil
}

func (s *coffeeService) UpdateCoffee(ctx context.Context, id int64, params CoffeeParams) (model.Coffee, error) {
	var saved model.Coffee
	if err := s.db.WithTx(ctx, func(db db.DB) error {
		coffeeRepo := s.coffeeRepo.WithDB(db)

		existing, err := s.getCoffee(ctx, coffeeRepo, id)
		if err != nil {
			return err
		}

		existing.Name = params.Name
		existing.Price = params.Price
		existing.Description = params.Description
		existing.Size = params.Size
		existing.UpdatedAt = s.now()

		saved, err = coffeeRepo.SaveCoffee(ctx, existing)
		if err != nil {
			return fmt.Errorf("coffee repository save coffee: %w", err)
		}

		return s.publish(ctx, db, event.TopicCoffeeUpdated, saved.ID, changedEvent(saved))
	}); err != nil {
		return model.Coffee{}, fmt.Errorf("db with tx: %w", err)
	}

	return saved, nil
}

func (s *coffeeService) DeleteCoffee(ctx context.Context, id int64) error {
	if err := s.db.WithTx(ctx, func(db db.DB) error {
		coffeeRepo := s.coffeeRepo.WithDB(db)

		if _, err := s.getCoffee(ctx, coffeeRepo, id); err != nil {
			return err
		}

		if err := coffeeRepo.DeleteCoffeeByID(ctx, id); err != nil {
			return fmt.Errorf("coffee repository delete coffee by id: %w", err)
		}

		return s.publish(ctx, db, event.TopicCoffeeDeleted, id, event.CoffeeDeletedEvent{CoffeeID: id})
	}); err != nil {
		return fmt.Errorf("db with tx: %w", err)
	}

	return nil
}

// publish stores ev in the outbox inside the caller's transaction.
func (s *coffeeService) publish(ctx context.Context, db db.DB, topic string, coffeeID int64, ev any) error {
	evBytes, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	partitionKey := strconv.FormatInt(coffeeID, 10)
	if err := s.outboxMsgRepo.
		WithDB(db).
		CreateOutboxMsg(ctx, repository.CreateOutboxMsgParams{
			Topic:        topic,
			Headers:      outbox.BuildHeaders(ctx),
			Payload:      evBytes,
			PartitionKey: &partitionKey,
		}); err != nil {
		return fmt.Errorf("outbox msg repository create outbox msg: %w", err)
	}

	return nil
}

func changedEvent(coffee model.Coffee) event.CoffeeChangedEvent {
	return event.CoffeeChangedEvent{
		CoffeeID:    coffee.ID,
		Name:        coffee.Name,
		Price:       coffee.Price,
		Description: coffee.Description,
		Size:        coffee.Size,
	}
}
