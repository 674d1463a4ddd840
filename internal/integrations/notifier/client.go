package notifier

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client кладет уведомления о бронированиях в Redis-очередь (LPUSH).
// Доставку писем выполняет отдельный воркер, читающий очередь.
type Client struct {
	rdb   redis.Cmdable
	queue string
	log   Logger
}

// NewClient создает новый экземпляр клиента уведомлений
func NewClient(rdb redis.Cmdable, queue string, log Logger) *Client {
	return &Client{
		rdb:   rdb,
		queue: queue,
		log:   log,
	}
}

// NotifyBookingCreated ставит уведомление о новом бронировании в очередь
func (c *Client) NotifyBookingCreated(ctx context.Context, n BookingNotification) error {
	data, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMarshal, err)
	}

	if err := c.rdb.LPush(ctx, c.queue, data).Err(); err != nil {
		return fmt.Errorf("%w: queue=%s: %v", ErrEnqueue, c.queue, err)
	}

	c.log.Info("Notification queued: booking_id=%d, queue=%s", n.BookingID, c.queue)
	return nil
}

// NoopClient используется, когда уведомления выключены
type NoopClient struct {
	log Logger
}

// NewNoopClient создает клиент, который только пишет в лог
func NewNoopClient(log Logger) *NoopClient {
	return &NoopClient{log: log}
}

// NotifyBookingCreated ничего не отправляет
func (c *NoopClient) NotifyBookingCreated(_ context.Context, n BookingNotification) error {
	c.log.Info("Notifications disabled, skipping booking_id=%d", n.BookingID)
	return nil
}
