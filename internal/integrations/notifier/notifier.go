// Package notifier публикует события подтверждения бронирования в RabbitMQ.
// Замена почтовой рассылки исходной системы: сервис только отдает событие
// на границе, доставку уведомления выполняет внешний потребитель очереди.
package notifier

import (
	"context"
	"encoding/json"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/avkotov/KNS-SeatService/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
}

// BookingConfirmedEvent полезная нагрузка события подтверждения.
// Содержит достаточно данных для письма или аналитики без обращения
// к хранилищу бронирований.
type BookingConfirmedEvent struct {
	BookingID     string   `json:"booking_id,omitempty"`
	Date          string   `json:"date"`
	TimeSlot      string   `json:"time_slot"`
	LocationID    string   `json:"location_id,omitempty"`
	Location      string   `json:"location,omitempty"`
	Seats         []string `json:"seats"`
	CustomerName  string   `json:"customer_name"`
	CustomerEmail string   `json:"customer_email"`
	CustomerPhone string   `json:"customer_phone"`
	ConfirmedAt   string   `json:"confirmed_at"`
}

// Publisher публикует события в очередь RabbitMQ
type Publisher struct {
	url   string
	queue string
	log   Logger
}

// NewPublisher создает новый экземпляр публикатора
func NewPublisher(url, queue string, log Logger) *Publisher {
	return &Publisher{
		url:   url,
		queue: queue,
		log:   log,
	}
}

// PublishBookingConfirmed публикует событие подтверждения бронирования.
// Побочный эффект fire-and-forget: любая ошибка логируется и возвращается,
// но вызывающая сторона вправе её игнорировать - неудача публикации
// не должна ломать уже записанное бронирование.
func (p *Publisher) PublishBookingConfirmed(ctx context.Context, record domain.BookingRecord) error {
	conn, err := amqp.Dial(p.url)
	if err != nil {
		p.log.Warn("notifier: dial failed: %v", err)
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		p.log.Warn("notifier: channel open failed: %v", err)
		return err
	}
	defer func() { _ = ch.Close() }()

	// Очередь durable, объявление идемпотентно
	if _, err := ch.QueueDeclare(p.queue, true, false, false, false, nil); err != nil {
		p.log.Warn("notifier: queue declare failed: %v", err)
		return err
	}

	seats := make([]string, len(record.Seats))
	for i, s := range record.Seats {
		seats[i] = string(s)
	}

	event := BookingConfirmedEvent{
		BookingID:     record.BookingID,
		Date:          record.Key.Date,
		TimeSlot:      record.Key.TimeSlot,
		LocationID:    record.Key.LocationID,
		Location:      record.Location,
		Seats:         seats,
		CustomerName:  record.CustomerName,
		CustomerEmail: record.CustomerEmail,
		CustomerPhone: record.CustomerPhone,
		ConfirmedAt:   record.Timestamp.UTC().Format(time.RFC3339),
	}

	body, err := json.Marshal(event)
	if err != nil {
		p.log.Warn("notifier: marshal event failed: %v", err)
		return err
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}

	if err := ch.PublishWithContext(ctx, "", p.queue, false, false, pub); err != nil {
		p.log.Warn("notifier: publish failed: %v", err)
		return err
	}

	p.log.Info("notifier: booking confirmation published, queue=%s, email=%s", p.queue, record.CustomerEmail)
	return nil
}
