package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
)

// OrderStatusChanged is emitted whenever an order moves through its lifecycle,
// from both webhook settlement and manual restaurant-side updates.
type OrderStatusChanged struct {
	OrderID      string    `json:"order_id"`
	RestaurantID string    `json:"restaurant_id"`
	UserID       string    `json:"user_id"`
	Status       string    `json:"status"`
	TotalAmount  int64     `json:"total_amount,omitempty"`
	Timestamp    time.Time `json:"timestamp"`
}

// Publisher emits order lifecycle events. Callers treat a nil Publisher as a
// disabled event stream.
type Publisher interface {
	PublishOrderStatus(ctx context.Context, event OrderStatusChanged) error
}

type KafkaPublisher struct {
	writer *kafka.Writer
}

func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Topic:    topic,
			Balancer: &kafka.LeastBytes{},
		},
	}
}

func (p *KafkaPublisher) PublishOrderStatus(ctx context.Context, event OrderStatusChanged) error {
	payload, _ := json.Marshal(event)
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.OrderID),
		Value: payload,
	})
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
