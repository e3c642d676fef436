package telemetry_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"

	"github.com/tuanvumaihuynh/coffee-store/internal/config"
	"github.com/tuanvumaihuynh/coffee-store/internal/telemetry"
)

func TestInitTracer(t *testing.T) {
	t.Run("Should install propagator without collector", func(t *testing.T) {
		cleanup, err := telemetry.InitTracer(context.Background(), config.Otel{ServiceName: "coffee-store"})
		require.NoError(t, err)

		fields := otel.GetTextMapPropagator().Fields()
		assert.Contains(t, fields, "traceparent")
		assert.NoError(t, cleanup(context.Background()))
	})
}
