package rabbitmq

import (
	"fmt"
	"log"
	"time"

	amqp "github.com/streadway/amqp"
)

// Queue names used across the application.
const (
	// QueueOrderEvents carries order lifecycle events (order.created).
	QueueOrderEvents = "order_events"
	// QueueMailEvents carries outbound mail requests (user.registered
	// verification links); the mailer consumes it out of process.
	QueueMailEvents = "mail_events"
)

// Client holds the RabbitMQ connection and channel.
type Client struct {
	conn    *amqp.Connection
	channel *amqp.Channel
}

// Config holds RabbitMQ connection details.
type Config struct {
	URL string
}

// NewClient creates a new RabbitMQ client. It connects, opens a channel
// and declares the durable queues upfront so publishers never race the
// first consumer.
func NewClient(cfg Config) (*Client, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close() // Close connection if channel creation fails
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	for _, queue := range []string{QueueOrderEvents, QueueMailEvents} {
		_, err = ch.QueueDeclare(
			queue, // name
			true,  // durable (persists messages across broker restarts)
			false, // delete when unused
			false, // exclusive
			false, // no-wait
			nil,   // arguments
		)
		if err != nil {
			ch.Close()
			conn.Close()
			return nil, fmt.Errorf("failed to declare %s: %w", queue, err)
		}
	}

	log.Println("RabbitMQ client connected, queues declared.")

	return &Client{
		conn:    conn,
		channel: ch,
	}, nil
}

// Close closes the RabbitMQ connection and channel.
func (c *Client) Close() error {
	var errs []error
	if c.channel != nil {
		if err := c.channel.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close channel: %w", err))
		}
	}
	if c.conn != nil {
		if err := c.conn.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close connection: %w", err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("multiple errors occurred during RabbitMQ client close: %v", errs)
	}
	return nil
}

// Publish sends a JSON payload to one of the declared queues using the
// default exchange. Messages are persistent.
func (c *Client) Publish(queue string, body []byte) error {
	if c.channel == nil {
		return fmt.Errorf("RabbitMQ channel is not available")
	}

	err := c.channel.Publish(
		"",    // exchange: default exchange
		queue, // routing key: the queue name
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
		})
	if err != nil {
		return fmt.Errorf("failed to publish to %s: %w", queue, err)
	}

	log.Printf(" [x] Sent event to %s: %s", queue, body)
	return nil
}

// Consume starts a goroutine that feeds messages from the queue to the
// handler. A handler error nacks the message back onto the queue;
// success acks it.
func (c *Client) Consume(queue string, messageHandler func(msg amqp.Delivery) error) error {
	if c.channel == nil {
		return fmt.Errorf("RabbitMQ channel is not available for consumption")
	}

	msgs, err := c.channel.Consume(
		queue, // queue
		"",    // consumer tag
		false, // auto-ack: manual acknowledgement
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		return fmt.Errorf("failed to register consumer on %s: %w", queue, err)
	}

	log.Printf(" [*] Waiting for events on %s", queue)

	go func() {
		for msg := range msgs {
			if err := messageHandler(msg); err != nil {
				log.Printf("Error processing message %d: %v", msg.DeliveryTag, err)
				// Requeue once; unprocessable messages should go to a
				// dead-letter queue before this loops.
				if requeueErr := msg.Nack(false, true); requeueErr != nil {
					log.Printf("Error nacking message %d: %v", msg.DeliveryTag, requeueErr)
				}
			} else {
				if ackErr := msg.Ack(false); ackErr != nil {
					log.Printf("Error acking message %d: %v", msg.DeliveryTag, ackErr)
				}
			}
		}
	}()

	return nil
}
