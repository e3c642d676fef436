package relay_test

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuanvumaihuynh/coffee-store/internal/config"
	"github.com/tuanvumaihuynh/coffee-store/internal/relay"
	"github.com/tuanvumaihuynh/coffee-store/internal/repository"
	"github.com/tuanvumaihuynh/coffee-store/internal/storage/db"
	"github.com/tuanvumaihuynh/coffee-store/internal/storage/mq"
)

// fakeDB runs transactions inline. Query methods are never reached because
// the repositories are fakes too.
type fakeDB struct {
	db.DB
}

func (d fakeDB) WithTx(_ context.Context, txFunc func(db.DB) error) error {
	return txFunc(d)
}

type fakeOutboxRepo struct {
	mu        sync.Mutex
	pending   []repository.ListUnprocessedOutboxMsgsResult
	processed map[uuid.UUID]*string
}

func (r *fakeOutboxRepo) WithDB(db.DB) repository.OutboxMsgRepository { return r }

func (r *fakeOutboxRepo) CreateOutboxMsg(context.Context, repository.CreateOutboxMsgParams) error {
	return errors.New("not used")
}

func (r *fakeOutboxRepo) ListUnprocessedOutboxMsgs(_ context.Context, params repository.ListUnprocessedOutboxMsgsParams) ([]repository.ListUnprocessedOutboxMsgsResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := min(int(params.BatchSize), len(r.pending))
	return append([]repository.ListUnprocessedOutboxMsgsResult(nil), r.pending[:n]...), nil
}

func (r *fakeOutboxRepo) BulkUpdateOutboxMsgs(_ context.Context, params repository.BulkUpdateOutboxMsgsParams) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	done := map[uuid.UUID]bool{}
	for _, item := range params.Items {
		r.processed[item.ID] = item.Error
		done[item.ID] = true
	}

	remaining := r.pending[:0]
	for _, msg := range r.pending {
		if !done[msg.ID] {
			remaining = append(remaining, msg)
		}
	}
	r.pending = remaining
	return nil
}

func (r *fakeOutboxRepo) processedCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.processed)
}

type fakeProducer struct {
	mu       sync.Mutex
	produced []mq.ProduceMsg
	failOn   string
}

func (p *fakeProducer) Produce(_ context.Context, msg mq.ProduceMsg) error {
	if msg.Topic == p.failOn {
		return errors.New("broker unavailable")
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.produced = append(p.produced, msg)
	return nil
}

func newMsg(topic string) repository.ListUnprocessedOutboxMsgsResult {
	key := "1"
	return repository.ListUnprocessedOutboxMsgsResult{
		ID:           uuid.Must(uuid.NewV7()),
		Topic:        topic,
		Headers:      map[string]string{"X-Correlation-ID": "corr-1"},
		Payload:      json.RawMessage(`{"coffee_id":1}`),
		PartitionKey: &key,
	}
}

func TestService(t *testing.T) {
	created := newMsg("coffee.created")
	updated := newMsg("coffee.updated")
	deleted := newMsg("coffee.deleted")

	repo := &fakeOutboxRepo{
		pending:   []repository.ListUnprocessedOutboxMsgsResult{created, updated, deleted},
		processed: map[uuid.UUID]*string{},
	}
	producer := &fakeProducer{failOn: "coffee.updated"}

	svc := relay.NewService(
		config.Relay{BatchSize: 2, Interval: 10 * time.Millisecond},
		slog.New(slog.DiscardHandler),
		fakeDB{},
		repo,
		producer,
	)

	cleanup := svc.Run(context.Background())
	require.Eventually(t, func() bool {
		return repo.processedCount() == 3
	}, 2*time.Second, 10*time.Millisecond)
	cleanup()

	assert.Nil(t, repo.processed[created.ID])
	assert.Nil(t, repo.processed[deleted.ID])
	require.NotNil(t, repo.processed[updated.ID])
	assert.Contains(t, *repo.processed[updated.ID], "broker unavailable")

	producer.mu.Lock()
	defer producer.mu.Unlock()
	require.Len(t, producer.produced, 2)
	for _, msg := range producer.produced {
		assert.Equal(t, "corr-1", msg.Headers["X-Correlation-ID"])
		assert.Equal(t, "1", *msg.PartitionKey)
	}
}
