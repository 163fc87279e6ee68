package producer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"sync/atomic"
	"time"

	"github.com/RoyceAzure/lab/shopcenter/internal/event"
	"github.com/segmentio/kafka-go"
)

var ErrProducerClosed = errors.New("producer closed")

// 需要根據userid做分區，同一使用者的事件保序
// topic: 由producer創建時設置
type IOrderEventProducer interface {
	ProduceOrderPlacedEvent(ctx context.Context, evt *event.OrderPlacedEvent) error
	Close() error
}

type OrderEventProducer struct {
	writer *kafka.Writer
	closed atomic.Bool
}

func NewOrderEventProducer(brokers []string, topic string) *OrderEventProducer {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		BatchSize:    100,
		BatchTimeout: 10 * time.Millisecond,
		RequiredAcks: kafka.RequireAll,
		Async:        false,
		MaxAttempts:  3,

		// 重連機制設置
		Transport: &kafka.Transport{
			Dial: func(ctx context.Context, network string, address string) (net.Conn, error) {
				dialer := &kafka.Dialer{
					Timeout:   10 * time.Second,
					DualStack: true,
					KeepAlive: 30 * time.Second,
				}
				return dialer.DialContext(ctx, network, address)
			},
		},

		Compression: kafka.Snappy,
	}

	return &OrderEventProducer{writer: writer}
}

// ProduceOrderPlacedEvent 同步發送，會block到消息寫入
func (p *OrderEventProducer) ProduceOrderPlacedEvent(ctx context.Context, evt *event.OrderPlacedEvent) error {
	if p.closed.Load() {
		return ErrProducerClosed
	}

	value, err := json.Marshal(evt)
	if err != nil {
		return err
	}

	msg := kafka.Message{
		Key:   []byte(fmt.Sprintf("%d", evt.UserID)),
		Value: value,
		Headers: []kafka.Header{
			{
				Key:   "event_type",
				Value: []byte(evt.Type()),
			},
		},
	}

	return p.writer.WriteMessages(ctx, msg)
}

func (p *OrderEventProducer) Close() error {
	if !p.closed.CompareAndSwap(false, true) {
		return nil
	}
	return p.writer.Close()
}

var _ IOrderEventProducer = (*OrderEventProducer)(nil)
