package cache

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/domain/booking"
)

// Sink is anything outside this process that must hear about stale views,
// such as other instances through kafka.
type Sink interface {
	Invalidate(ctx context.Context, key booking.ViewKey) error
}

const (
	queueSize   = 100
	sinkTimeout = 5 * time.Second
)

// Dispatcher delivers invalidations to its sinks from a single background
// worker so writers never wait on a broker.
type Dispatcher struct {
	sinks  []Sink
	logger *slog.Logger

	mu     sync.RWMutex
	closed bool
	queue  chan booking.ViewKey
	done   chan struct{}
}

func NewDispatcher(logger *slog.Logger, sinks ...Sink) *Dispatcher {
	d := &Dispatcher{
		sinks:  sinks,
		logger: logger,
		queue:  make(chan booking.ViewKey, queueSize),
		done:   make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)

	for key := range d.queue {
		for _, sink := range d.sinks {
			ctx, cancel := context.WithTimeout(context.Background(), sinkTimeout)
			if err := sink.Invalidate(ctx, key); err != nil {
				d.logger.Warn("view invalidation failed", "key", key, "error", err)
			}
			cancel()
		}
	}
}

// Invalidate enqueues key and returns immediately. A full queue drops the
// signal; cached views still expire through their TTL.
func (d *Dispatcher) Invalidate(_ context.Context, key booking.ViewKey) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		d.logger.Warn("invalidation after shutdown, dropping", "key", key)
		return
	}

	select {
	case d.queue <- key:
	default:
		d.logger.Warn("invalidation queue full, dropping", "key", key)
	}
}

// Close drains the queue and waits for the worker.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	close(d.queue)
	d.mu.Unlock()

	<-d.done
}

var _ booking.Invalidator = (*Dispatcher)(nil)
