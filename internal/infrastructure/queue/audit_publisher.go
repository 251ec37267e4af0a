package queue

import (
	"context"
	"encoding/json"
	"hash/fnv"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"

	"github.com/tripfolio/travel-platform/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// AuditPublisher delivers audit events to Kafka from a fixed set of sharded
// workers. Events for the same travel record always land on the same worker,
// preserving per-record ordering. Delivery is best effort: callers never wait
// on Kafka and failed writes are only logged.
type AuditPublisher struct {
	writer  *kafka.Writer
	workers []chan ports.AuditEvent
	log     zerolog.Logger
}

// NewAuditPublisher builds a publisher for the given brokers and topic. If
// numWorkers <= 0, defaultWorkers is used.
func NewAuditPublisher(brokers []string, topic string, numWorkers int, log zerolog.Logger) *AuditPublisher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	p := &AuditPublisher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Topic:    topic,
			Balancer: &kafka.Hash{},
		},
		workers: make([]chan ports.AuditEvent, numWorkers),
		log:     log,
	}
	for i := range p.workers {
		p.workers[i] = make(chan ports.AuditEvent, channelBuffer)
	}
	return p
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (p *AuditPublisher) Start(ctx context.Context) {
	for i, ch := range p.workers {
		go p.runWorker(ctx, i, ch)
	}
}

// Enqueue hands an event to the worker responsible for its travel id. When a
// worker's buffer is full the event is dropped rather than blocking a request.
func (p *AuditPublisher) Enqueue(event ports.AuditEvent) {
	ch := p.workers[p.shardIndex(event.TravelID)]
	select {
	case ch <- event:
	default:
		p.log.Warn().
			Str("type", event.Type).
			Int64("travel_id", event.TravelID).
			Msg("audit buffer full, event dropped")
	}
}

// Close flushes and closes the underlying Kafka writer.
func (p *AuditPublisher) Close() error {
	return p.writer.Close()
}

// shardIndex maps a travel id deterministically to a worker index.
func (p *AuditPublisher) shardIndex(travelID int64) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(strconv.FormatInt(travelID, 10)))
	return int(h.Sum32()) % len(p.workers)
}

func (p *AuditPublisher) runWorker(ctx context.Context, id int, ch <-chan ports.AuditEvent) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-ch:
			if !ok {
				return
			}
			if err := p.publish(ctx, event); err != nil {
				p.log.Error().Err(err).
					Str("type", event.Type).
					Int64("travel_id", event.TravelID).
					Int("worker_id", id).
					Msg("audit publish failed")
			}
		}
	}
}

func (p *AuditPublisher) publish(ctx context.Context, event ports.AuditEvent) error {
	value, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.FormatInt(event.TravelID, 10)),
		Value: value,
	})
}
