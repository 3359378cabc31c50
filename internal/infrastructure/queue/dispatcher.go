package queue

import (
	"context"
	"hash/fnv"
	"strconv"
	"sync"

	"github.com/rs/zerolog"

	"github.com/futsalhub/booking-system/internal/core/ports"
	"github.com/futsalhub/booking-system/internal/metrics"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Dispatcher routes reservation events to a fixed set of workers using
// consistent hashing on the reserving handle, so each player's notifications
// are delivered in booking order.
type Dispatcher struct {
	workers  []chan ports.ReservationEvent
	notifier ports.Notifier
	log      zerolog.Logger

	mu     sync.RWMutex
	closed bool
	wg     sync.WaitGroup
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, notifier ports.Notifier, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers:  make([]chan ports.ReservationEvent, numWorkers),
		notifier: notifier,
		log:      log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.ReservationEvent, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers run until Stop has closed and
// drained their channel; cancelling ctx does not stop them, so events accepted
// by Publish are always handed to the notifier.
func (d *Dispatcher) Start(ctx context.Context) {
	ctx = context.WithoutCancel(ctx)
	for i, ch := range d.workers {
		d.wg.Add(1)
		go d.runWorker(ctx, i, ch)
	}
}

// Publish hands event to the worker responsible for its handle. It never
// blocks: when that worker's buffer is full the event is dropped and counted.
func (d *Dispatcher) Publish(event ports.ReservationEvent) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		metrics.NotificationsTotal.WithLabelValues("dropped").Inc()
		return
	}

	id := d.shardIndex(event.Handle)
	select {
	case d.workers[id] <- event:
		metrics.NotificationQueueDepth.WithLabelValues(strconv.Itoa(id)).Set(float64(len(d.workers[id])))
	default:
		metrics.NotificationsTotal.WithLabelValues("dropped").Inc()
		d.log.Warn().
			Str("reservation_id", event.ReservationID).
			Int("worker_id", id).
			Msg("notification queue full, event dropped")
	}
}

// Stop closes the worker channels and waits for queued events to be delivered.
func (d *Dispatcher) Stop() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	for _, ch := range d.workers {
		close(ch)
	}
	d.mu.Unlock()

	d.wg.Wait()
}

// shardIndex maps a handle deterministically to a worker index.
func (d *Dispatcher) shardIndex(handle string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(handle))
	return int(h.Sum32() % uint32(len(d.workers)))
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.ReservationEvent) {
	defer d.wg.Done()
	depth := metrics.NotificationQueueDepth.WithLabelValues(strconv.Itoa(id))
	for event := range ch {
		depth.Set(float64(len(ch)))
		if err := d.notifier.Notify(ctx, event); err != nil {
			metrics.NotificationsTotal.WithLabelValues("failed").Inc()
			d.log.Error().Err(err).
				Str("reservation_id", event.ReservationID).
				Int("worker_id", id).
				Msg("notification failed")
			continue
		}
		metrics.NotificationsTotal.WithLabelValues("delivered").Inc()
	}
}
