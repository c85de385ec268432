package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/fjod/foodbay/internal/domain"
	"github.com/segmentio/kafka-go"
	"github.com/sony/gobreaker/v2"
)

const DefaultTopic = "orders-placed"

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher writes OrderPlaced events keyed by order number. Writes go
// through a circuit breaker so an unreachable broker fails fast.
type KafkaPublisher struct {
	writer  messageWriter
	breaker *gobreaker.CircuitBreaker[struct{}]
	timeout time.Duration
}

func NewKafkaPublisher(topic string, brokers ...string) *KafkaPublisher {
	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
	}
	return newKafkaPublisher(w)
}

func newKafkaPublisher(w messageWriter) *KafkaPublisher {
	return &KafkaPublisher{
		writer:  w,
		breaker: gobreaker.NewCircuitBreaker[struct{}](breakerSettings()),
		timeout: 5 * time.Second,
	}
}

func breakerSettings() gobreaker.Settings {
	return gobreaker.Settings{
		Name:        "kafka-orders",
		MaxRequests: 1,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Printf("circuit breaker %s: %s -> %s", name, from, to)
		},
	}
}

func (p *KafkaPublisher) PublishOrderPlaced(ctx context.Context, snapshot *domain.OrderSnapshot) error {
	payload, err := json.Marshal(NewOrderPlacedEvent(snapshot))
	if err != nil {
		return fmt.Errorf("marshal order placed event failed: %w", err)
	}

	_, err = p.breaker.Execute(func() (struct{}, error) {
		writeCtx, cancel := context.WithTimeout(ctx, p.timeout)
		defer cancel()
		return struct{}{}, p.writer.WriteMessages(writeCtx, kafka.Message{
			Key:   []byte(snapshot.OrderNumber),
			Value: payload,
		})
	})
	if err != nil {
		return fmt.Errorf("publish order %s failed: %w", snapshot.OrderNumber, err)
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
