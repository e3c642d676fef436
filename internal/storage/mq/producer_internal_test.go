package mq

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/twmb/franz-go/pkg/kgo"
)

func TestBuildProduceRecord(t *testing.T) {
	t.Run("Should map headers and partition key", func(t *testing.T) {
		key := "42"
		rec := buildProduceRecord(ProduceMsg{
			Topic:        "coffee.created",
			Headers:      map[string]string{"traceparent": "tp", "X-Correlation-ID": "corr"},
			Payload:      []byte(`{"coffee_id":42}`),
			PartitionKey: &key,
		})

		assert.Equal(t, "coffee.created", rec.Topic)
		assert.Equal(t, []byte(`{"coffee_id":42}`), rec.Value)
		assert.Equal(t, []byte("42"), rec.Key)
		assert.Equal(t, []kgo.RecordHeader{
			{Key: "X-Correlation-ID", Value: []byte("corr")},
			{Key: "traceparent", Value: []byte("tp")},
		}, rec.Headers)
	})

	t.Run("Should leave key empty without partition key", func(t *testing.T) {
		rec := buildProduceRecord(ProduceMsg{Topic: "coffee.deleted"})

		assert.Nil(t, rec.Key)
		assert.Empty(t, rec.Headers)
	})
}
