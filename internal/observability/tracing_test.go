package observability

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
)

func TestInitTracingDisabled(t *testing.T) {
	shutdown, err := InitTracing(context.Background(), TracingConfig{Enabled: false})
	require.NoError(t, err)
	require.NotNil(t, shutdown)
	assert.NoError(t, shutdown(context.Background()))
}

func TestInitTracingWritesSpans(t *testing.T) {
	var buf bytes.Buffer
	ctx := context.Background()

	shutdown, err := InitTracing(ctx, TracingConfig{
		Enabled:     true,
		ServiceName: "gin-pizza-restaurants-test",
		Environment: "test",
		Writer:      &buf,
	})
	require.NoError(t, err)

	_, span := otel.Tracer("test").Start(ctx, "create-restaurant-pizza")
	span.End()

	require.NoError(t, shutdown(ctx))
	assert.Contains(t, buf.String(), "create-restaurant-pizza")
	assert.Contains(t, buf.String(), "gin-pizza-restaurants-test")
}
