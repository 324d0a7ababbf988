// Package amqp fans committed notifications out to a RabbitMQ exchange.
package amqp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/rabbitmq/amqp091-go"

	"github.com/sangwaemm/The-Partners-App/internal/core/domain"
	portssvc "github.com/sangwaemm/The-Partners-App/internal/core/ports/services"
)

const publishTimeout = 5 * time.Second

// NotificationMessage is the wire form of a notification.
type NotificationMessage struct {
	ID         string    `json:"id"`
	Message    string    `json:"message"`
	Type       string    `json:"type"`
	TargetRole string    `json:"targetRole,omitempty"`
	Date       time.Time `json:"date"`
	Timestamp  time.Time `json:"timestamp"`
}

// NewNotificationMessage converts n into its wire form stamped with now.
func NewNotificationMessage(n domain.Notification, now time.Time) NotificationMessage {
	return NotificationMessage{
		ID:         n.ID,
		Message:    n.Message,
		Type:       string(n.Type),
		TargetRole: string(n.TargetRole),
		Date:       n.Date,
		Timestamp:  now,
	}
}

func (m NotificationMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// Publisher publishes notifications to a durable direct exchange.
type Publisher struct {
	mu           sync.Mutex
	conn         *amqp091.Connection
	channel      *amqp091.Channel
	exchangeName string
	queueName    string
}

var _ portssvc.NotificationPublisher = (*Publisher)(nil)

func NewPublisher(url, exchangeName, queueName string) (*Publisher, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial AMQP: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	p := &Publisher{
		conn:         conn,
		channel:      channel,
		exchangeName: exchangeName,
		queueName:    queueName,
	}

	if err := p.setup(); err != nil {
		p.Close()
		return nil, fmt.Errorf("setup exchange and queue: %w", err)
	}

	return p, nil
}

func (p *Publisher) setup() error {
	err := p.channel.ExchangeDeclare(
		p.exchangeName, // name
		"direct",       // type
		true,           // durable
		false,          // auto-deleted
		false,          // internal
		false,          // no-wait
		nil,            // arguments
	)
	if err != nil {
		return fmt.Errorf("declare exchange: %w", err)
	}

	_, err = p.channel.QueueDeclare(
		p.queueName, // name
		true,        // durable
		false,       // delete when unused
		false,       // exclusive
		false,       // no-wait
		nil,         // arguments
	)
	if err != nil {
		return fmt.Errorf("declare queue: %w", err)
	}

	// routing key is the queue name
	if err := p.channel.QueueBind(p.queueName, p.queueName, p.exchangeName, false, nil); err != nil {
		return fmt.Errorf("bind queue: %w", err)
	}

	return nil
}

// PublishNotification implements portssvc.NotificationPublisher.
func (p *Publisher) PublishNotification(ctx context.Context, n domain.Notification) error {
	body, err := NewNotificationMessage(n, time.Now().UTC()).ToJSON()
	if err != nil {
		return fmt.Errorf("marshal notification: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	p.mu.Lock()
	defer p.mu.Unlock()

	err = p.channel.PublishWithContext(
		ctx,
		p.exchangeName, // exchange
		p.queueName,    // routing key
		false,          // mandatory
		false,          // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			MessageId:    n.ID,
			Timestamp:    time.Now(),
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("publish notification: %w", err)
	}

	slog.InfoContext(ctx, "Published notification",
		"id", n.ID,
		"type", n.Type,
		"exchange", p.exchangeName,
		"queue", p.queueName)
	return nil
}

func (p *Publisher) Close() error {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}
