package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/domain/booking"
)

const syncInvalidateTimeout = 2 * time.Second

// ViewInvalidator retires the cached view before returning, then hands the
// key to next (usually the Dispatcher) for the asynchronous fan-out. The
// next read after Invalidate returns never sees the old view.
type ViewInvalidator struct {
	cache  *ViewCache
	next   booking.Invalidator
	logger *slog.Logger
}

// NewViewInvalidator accepts a nil next when nothing else needs the signal.
func NewViewInvalidator(cache *ViewCache, next booking.Invalidator, logger *slog.Logger) *ViewInvalidator {
	return &ViewInvalidator{cache: cache, next: next, logger: logger}
}

func (v *ViewInvalidator) Invalidate(ctx context.Context, key booking.ViewKey) {
	// the write already happened; a client disconnect must not skip this
	ctx2, cancel := context.WithTimeout(context.WithoutCancel(ctx), syncInvalidateTimeout)
	defer cancel()

	if err := v.cache.Invalidate(ctx2, key); err != nil {
		v.logger.Warn("view invalidation failed", "key", key, "error", err)
	}

	if v.next != nil {
		v.next.Invalidate(ctx, key)
	}
}

var _ booking.Invalidator = (*ViewInvalidator)(nil)
