package event

import (
	"context"
	"log/slog"
)

const (
	TopicCoffeeCreated = "coffee.created"
	TopicCoffeeUpdated = "coffee.updated"
	TopicCoffeeDeleted = "coffee.deleted"
)

// CoffeeChangedEvent is the payload of coffee.created and coffee.updated.
type CoffeeChangedEvent struct {
	CoffeeID    int64   `json:"coffee_id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Size        string  `json:"size"`
}

type CoffeeDeletedEvent struct {
	CoffeeID int64 `json:"coffee_id"`
}

func (s *Service) handleCoffeeCreatedEvent(ctx context.Context, ev CoffeeChangedEvent) error {
	s.logger.InfoContext(ctx, "handling coffee created event",
		slog.Int64("coffee_id", ev.CoffeeID),
		slog.Any("event", ev),
	)
	return nil
}

func (s *Service) handleCoffeeUpdatedEvent(ctx context.Context, ev CoffeeChangedEvent) error {
	s.logger.InfoContext(ctx, "handling coffee updated event",
		slog.Int64("coffee_id", ev.CoffeeID),
		slog.Any("event", ev),
	)
	return nil
}

func (s *Service) handleCoffeeDeletedEvent(ctx context.Context, ev CoffeeDeletedEvent) error {
	s.logger.InfoContext(ctx, "handling coffee deleted event", slog.Int64("coffee_id", ev.CoffeeID))
	return nil
}
