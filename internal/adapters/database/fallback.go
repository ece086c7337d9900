// Package database implements the entity repositories on top of the
// resolved data source: the in-memory dataset, the remote Supabase backend,
// or the remote backend with one-shot fallback to the dataset in auto mode.
package database

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/hamsafar-mirza/backend/internal/datasource"
	"github.com/hamsafar-mirza/backend/internal/infrastructure/observability"
	"github.com/hamsafar-mirza/backend/pkg/errors"
)

// metrics is optional; adapters work without it. Set once at startup,
// before any adapter serves a read.
var metrics *observability.Metrics

// SetMetrics wires application metrics into every adapter in this package.
func SetMetrics(m *observability.Metrics) {
	metrics = m
}

// fetch routes one read through the resolver. Mock mode never touches the
// network. Supabase mode without credentials is a configuration error, not
// a silent downgrade. A failed remote read is retried against the dataset
// exactly once, and only in auto mode.
func fetch[T any](
	ctx context.Context,
	resolver *datasource.Resolver,
	entity, operation string,
	mockFn func() (T, error),
	remoteFn func(context.Context) (T, error),
) (T, error) {
	if resolver.UseMock() {
		return mockFn()
	}

	if !resolver.RemoteConfigured() {
		var zero T
		return zero, errors.NewConfigurationError("supabase data source selected but SUPABASE_URL or SUPABASE_ANON_KEY is not set")
	}

	start := time.Now()
	result, err := remoteFn(ctx)
	if metrics != nil {
		observability.RecordRemoteQueryMetric(ctx, metrics, entity, operation, time.Since(start))
	}
	if err == nil {
		return result, nil
	}

	if resolver.AllowFallback() {
		log.Warn().
			Err(err).
			Str("entity", entity).
			Str("operation", operation).
			Msg("Remote read failed, serving mock data")
		if metrics != nil {
			observability.RecordFallback(ctx, metrics, entity, operation)
		}
		return mockFn()
	}

	var zero T
	return zero, errors.NewQueryFailure(entity, operation, err)
}
