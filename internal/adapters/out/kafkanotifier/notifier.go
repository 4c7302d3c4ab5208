// Package kafkanotifier publishes order and wallet notifications to Kafka.
//
// Notifications are best effort. Handlers hand events to an async dispatcher
// that queues them on a buffered channel; a single goroutine drains the queue
// and writes to the broker. A full queue or a broker failure is logged and
// the event dropped, never surfaced to the calling operation.
package kafkanotifier

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"msosihub/internal/core/ports"

	"github.com/segmentio/kafka-go"
)

// Message kinds written to the topic.
const (
	kindOrderConfirmed = "order_confirmed"
	kindStatusChanged  = "status_changed"
	kindWalletChanged  = "wallet_changed"
)

// envelope is the JSON document written for every notification.
type envelope struct {
	Kind              string         `json:"kind"`
	OrderID           string         `json:"order_id,omitempty"`
	CustomerID        string         `json:"customer_id,omitempty"`
	RestaurantID      string         `json:"restaurant_id,omitempty"`
	RestaurantOwnerID string         `json:"restaurant_owner_id,omitempty"`
	UserID            string         `json:"user_id,omitempty"`
	OldStatus         string         `json:"old_status,omitempty"`
	NewStatus         string         `json:"new_status,omitempty"`
	Operation         string         `json:"operation,omitempty"`
	Amount            int64          `json:"amount,omitempty"`
	NewBalance        int64          `json:"new_balance,omitempty"`
	TotalAmount       int64          `json:"total_amount,omitempty"`
	Items             []envelopeItem `json:"items,omitempty"`
	OccurredAt        string         `json:"occurred_at"`
}

// envelopeItem is one order line inside an order_confirmed envelope.
type envelopeItem struct {
	DishID   string `json:"dish_id"`
	Title    string `json:"title"`
	Quantity int    `json:"quantity"`
	Price    int64  `json:"price"`
}

// NewWriter builds a Kafka writer for the notifications topic.
func NewWriter(broker, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:     kafka.TCP(broker),
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
	}
}

// messageWriter is the part of kafka.Writer the notifier uses.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Notifier implements ports.Notifier by queueing events for async delivery.
type Notifier struct {
	writer messageWriter
	logger *slog.Logger
	queue  chan envelope
	done   chan struct{}
}

// New creates a notifier and starts its dispatch goroutine.
// Close must be called on shutdown to flush the queue.
func New(writer messageWriter, logger *slog.Logger, queueSize int) *Notifier {
	n := &Notifier{
		writer: writer,
		logger: logger.With("component", "kafka_notifier"),
		queue:  make(chan envelope, queueSize),
		done:   make(chan struct{}),
	}
	go n.dispatch()
	return n
}

// NotifyOrderConfirmed queues an order confirmation notification.
func (n *Notifier) NotifyOrderConfirmed(_ context.Context, event ports.OrderConfirmedEvent) {
	items := make([]envelopeItem, 0, len(event.Items))
	for _, item := range event.Items {
		items = append(items, envelopeItem{
			DishID:   item.DishID.String(),
			Title:    item.Title,
			Quantity: item.Quantity,
			Price:    item.Price.Amount(),
		})
	}

	n.enqueue(envelope{
		Kind:              kindOrderConfirmed,
		OrderID:           event.OrderID.String(),
		CustomerID:        event.CustomerID.String(),
		RestaurantID:      event.RestaurantID.String(),
		RestaurantOwnerID: event.RestaurantOwnerID.String(),
		TotalAmount:       event.TotalAmount.Amount(),
		Items:             items,
	})
}

// NotifyStatusChanged queues an order status notification.
func (n *Notifier) NotifyStatusChanged(_ context.Context, event ports.StatusChangedEvent) {
	n.enqueue(envelope{
		Kind:       kindStatusChanged,
		OrderID:    event.OrderID.String(),
		CustomerID: event.CustomerID.String(),
		OldStatus:  event.OldStatus,
		NewStatus:  event.NewStatus,
	})
}

// NotifyWalletChanged queues a wallet mutation notification.
func (n *Notifier) NotifyWalletChanged(_ context.Context, event ports.WalletChangedEvent) {
	n.enqueue(envelope{
		Kind:       kindWalletChanged,
		UserID:     event.UserID.String(),
		Operation:  event.Operation,
		Amount:     event.Amount.Amount(),
		NewBalance: event.NewBalance.Amount(),
	})
}

// Close stops accepting events and waits for the queue to drain.
func (n *Notifier) Close() error {
	close(n.queue)
	<-n.done
	return n.writer.Close()
}

func (n *Notifier) enqueue(e envelope) {
	e.OccurredAt = time.Now().UTC().Format(time.RFC3339)
	select {
	case n.queue <- e:
	default:
		n.logger.Warn("notification queue full, dropping event", "kind", e.Kind)
	}
}

func (n *Notifier) dispatch() {
	defer close(n.done)
	for e := range n.queue {
		payload, err := json.Marshal(e)
		if err != nil {
			n.logger.Error("marshal notification", "kind", e.Kind, "error", err)
			continue
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err = n.writer.WriteMessages(ctx, kafka.Message{
			Key:   []byte(keyFor(e)),
			Value: payload,
		})
		cancel()
		if err != nil {
			n.logger.Error("publish notification", "kind", e.Kind, "error", err)
		}
	}
}

// keyFor partitions events by the entity they concern so per-entity ordering
// is preserved.
func keyFor(e envelope) string {
	if e.OrderID != "" {
		return e.OrderID
	}
	return e.UserID
}
