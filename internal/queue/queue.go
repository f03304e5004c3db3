// Package queue publishes inventory change events to RabbitMQ for
// downstream consumers (SIEM forwarders, notification hooks). The stream
// is optional: when no broker is configured the server runs without it
// and publishing is skipped.
package queue

import (
	"fmt"
	"time"

	"github.com/cloud-compass/compass/backend/internal/util"
	"github.com/cloud-compass/compass/backend/pkg/logger"

	"github.com/rabbitmq/amqp091-go"
)

// EventQueue is the queue carrying inventory change events.
const EventQueue = "asset_events"

// Event kinds published by the server.
const (
	EventAssetsIngested    = "assets.ingested"
	EventRelationshipAdded = "relationship.added"
)

// Event is the payload published for every inventory change.
type Event struct {
	Kind       string `json:"kind"`
	AssetCount int    `json:"asset_count,omitempty"`
	AssetID    string `json:"asset_id,omitempty"`
	RelationID string `json:"relation_id,omitempty"`
	OccurredAt string `json:"occurred_at"`
}

// Init connects to the broker configured via RABBITMQ_* env variables.
// It returns nil when RABBITMQ_HOST is unset, which disables the event
// stream entirely.
func Init() *amqp091.Connection {
	host := util.GetEnv("RABBITMQ_HOST")
	if host == "" {
		logger.Info("RABBITMQ_HOST not set, event stream disabled")
		return nil
	}

	connURL := fmt.Sprintf(
		"amqp://%s:%s@%s:%s/",
		util.GetEnv("RABBITMQ_USER"),
		util.GetEnv("RABBITMQ_PASSWORD"),
		host,
		util.GetEnvString("RABBITMQ_PORT", "5672"),
	)

	conn, err := amqp091.Dial(connURL)
	if err != nil {
		logger.Fatal("Failed to connect to RabbitMQ", "err", err)
	}

	return conn
}

// SetupQueues declares the event queue on the given channel.
func SetupQueues(ch *amqp091.Channel) error {
	_, err := ch.QueueDeclare(
		EventQueue,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,   // args
	)
	if err != nil {
		return fmt.Errorf("failed to declare %s: %w", EventQueue, err)
	}
	return nil
}

// PublishEvent sends one event to the event queue. A nil channel is a
// no-op. Failures are logged and swallowed: the event stream must never
// break an inventory mutation that already happened.
func PublishEvent(ch *amqp091.Channel, event Event) {
	if ch == nil {
		return
	}
	if event.OccurredAt == "" {
		event.OccurredAt = time.Now().UTC().Format(time.RFC3339)
	}

	err := ch.Publish(
		"",
		EventQueue,
		false,
		false,
		amqp091.Publishing{
			ContentType:  "application/json",
			Body:         []byte(util.ConvertStructToJson(event)),
			DeliveryMode: amqp091.Persistent,
			Timestamp:    time.Now(),
		},
	)
	if err != nil {
		logger.Error("Failed to publish event", "kind", event.Kind, "err", err)
	}
}
