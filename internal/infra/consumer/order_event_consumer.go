package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"time"

	"github.com/RoyceAzure/lab/shopcenter/internal/event"
	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"
)

// OrderEventConsumer 訂閱 order_placed，目前僅做通知記錄
// 之後的信件、簡訊通知掛在 handleOrderPlaced
type OrderEventConsumer struct {
	reader *kafka.Reader
	logger zerolog.Logger
}

func NewOrderEventConsumer(brokers []string, topic, groupID string, logger zerolog.Logger) *OrderEventConsumer {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        brokers,
		Topic:          topic,
		GroupID:        groupID,
		MinBytes:       1,
		MaxBytes:       10e6,
		MaxWait:        500 * time.Millisecond,
		CommitInterval: time.Second,
	})
	return &OrderEventConsumer{
		reader: reader,
		logger: logger.With().Str("component", "order_event_consumer").Logger(),
	}
}

// Start 持續消費直到 ctx 取消
func (c *OrderEventConsumer) Start(ctx context.Context) error {
	for {
		msg, err := c.reader.ReadMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, io.EOF) {
				return nil
			}
			c.logger.Error().Err(err).Msg("read message failed")
			continue
		}

		if err := c.handle(ctx, msg); err != nil {
			c.logger.Error().Err(err).
				Str("topic", msg.Topic).
				Int64("offset", msg.Offset).
				Msg("handle message failed")
		}
	}
}

func (c *OrderEventConsumer) handle(ctx context.Context, msg kafka.Message) error {
	for _, h := range msg.Headers {
		if h.Key == "event_type" && string(h.Value) == string(event.EventTypeOrderPlaced) {
			return c.handleOrderPlaced(ctx, msg.Value)
		}
	}
	c.logger.Warn().Str("topic", msg.Topic).Int64("offset", msg.Offset).Msg("unknown event type, skipped")
	return nil
}

func (c *OrderEventConsumer) handleOrderPlaced(_ context.Context, value []byte) error {
	var evt event.OrderPlacedEvent
	if err := json.Unmarshal(value, &evt); err != nil {
		return err
	}

	c.logger.Info().
		Str("event_id", evt.EventID).
		Uint("order_id", evt.OrderID).
		Uint("user_id", evt.UserID).
		Str("total_amount", evt.TotalAmount.String()).
		Int("item_count", evt.ItemCount).
		Msg("order placed notification")
	return nil
}

func (c *OrderEventConsumer) Close() error {
	return c.reader.Close()
}
