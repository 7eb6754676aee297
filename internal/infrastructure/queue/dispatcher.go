package queue

import (
	"context"
	"errors"
	"hash/fnv"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/scratchie/onboarding-flow/internal/api/metrics"
	"github.com/scratchie/onboarding-flow/internal/core/domain"
	"github.com/scratchie/onboarding-flow/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
	insertTimeout  = 5 * time.Second
)

// ErrQueueFull is returned by Publish when the session's worker is saturated.
var ErrQueueFull = errors.New("analytics queue full")

// Dispatcher forwards recorded analytics events to a repository through a
// fixed set of workers. Events are sharded by session id so each session's
// events are stored in the order they were recorded.
type Dispatcher struct {
	workers []chan domain.AnalyticsEvent
	repo    ports.AnalyticsRepository
	log     zerolog.Logger
}

var _ ports.AnalyticsSink = (*Dispatcher)(nil)

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, repo ports.AnalyticsRepository, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan domain.AnalyticsEvent, numWorkers),
		repo:    repo,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.AnalyticsEvent, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Publish hands an event to the worker responsible for its session. It never
// blocks: a full channel drops the event and returns ErrQueueFull.
func (d *Dispatcher) Publish(event domain.AnalyticsEvent) error {
	idx := d.shardIndex(event.SessionID)
	select {
	case d.workers[idx] <- event:
		metrics.AnalyticsQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
		return nil
	default:
		metrics.AnalyticsForwardedTotal.WithLabelValues("dropped").Inc()
		return ErrQueueFull
	}
}

// shardIndex maps a session id deterministically to a worker index.
func (d *Dispatcher) shardIndex(sessionID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(sessionID))
	return int(h.Sum32() % uint32(len(d.workers)))
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan domain.AnalyticsEvent) {
	label := strconv.Itoa(id)
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-ch:
			if !ok {
				return
			}
			metrics.AnalyticsQueueDepth.WithLabelValues(label).Set(float64(len(ch)))
			d.forward(ctx, id, event)
		}
	}
}

func (d *Dispatcher) forward(ctx context.Context, worker int, event domain.AnalyticsEvent) {
	ctx, cancel := context.WithTimeout(ctx, insertTimeout)
	defer cancel()

	start := time.Now()
	err := d.repo.InsertEvent(ctx, event)
	metrics.AnalyticsForwardDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		metrics.AnalyticsForwardedTotal.WithLabelValues("error").Inc()
		d.log.Error().Err(err).
			Str("event", event.Event).
			Str("session_id", event.SessionID).
			Int("worker_id", worker).
			Msg("analytics forwarding failed")
		return
	}
	metrics.AnalyticsForwardedTotal.WithLabelValues("ok").Inc()
}
