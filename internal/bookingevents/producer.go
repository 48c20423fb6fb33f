package bookingevents

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
)

// Publisher publishes booking lifecycle events for downstream
// consumers (receipts, vendor notifications, analytics pipelines).
type Publisher interface {
	PublishBookingCreated(ctx context.Context, event *BookingCreatedEvent) error
	PublishBookingStatusChanged(ctx context.Context, event *BookingStatusChangedEvent) error
	Close() error
}

// BookingCreatedEvent is emitted once per successful reservation.
type BookingCreatedEvent struct {
	BookingID  uuid.UUID `json:"booking_id"`
	UserID     uuid.UUID `json:"user_id"`
	VenueID    uuid.UUID `json:"venue_id"`
	StartDate  string    `json:"start_date"`
	EndDate    string    `json:"end_date"`
	TotalPrice float64   `json:"total_price"`
	CreatedAt  time.Time `json:"created_at"`
}

// BookingStatusChangedEvent is emitted on admin-driven transitions.
type BookingStatusChangedEvent struct {
	BookingID uuid.UUID `json:"booking_id"`
	UserID    uuid.UUID `json:"user_id"`
	VenueID   uuid.UUID `json:"venue_id"`
	OldStatus string    `json:"old_status"`
	NewStatus string    `json:"new_status"`
	ChangedAt time.Time `json:"changed_at"`
}

// KafkaConfig contains configuration for the Kafka booking publisher
type KafkaConfig struct {
	Brokers       []string
	BookingsTopic string
	RetryMax      int
	TimeoutMs     int
}

// DefaultKafkaConfig returns a default publisher configuration
func DefaultKafkaConfig() *KafkaConfig {
	return &KafkaConfig{
		Brokers:       []string{"localhost:9092"},
		BookingsTopic: "booking-events",
		RetryMax:      3,
		TimeoutMs:     10000, // 10 seconds
	}
}

// KafkaPublisher publishes booking events to Kafka
type KafkaPublisher struct {
	producer sarama.SyncProducer
	config   *KafkaConfig
}

// NewKafkaPublisher creates a new Kafka booking publisher
func NewKafkaPublisher(config *KafkaConfig) (Publisher, error) {
	saramaConfig := sarama.NewConfig()

	saramaConfig.Producer.Return.Successes = true
	saramaConfig.Producer.Return.Errors = true
	saramaConfig.Producer.RequiredAcks = sarama.WaitForAll
	saramaConfig.Producer.Compression = sarama.CompressionSnappy
	saramaConfig.Producer.Retry.Max = config.RetryMax
	saramaConfig.Producer.Timeout = time.Duration(config.TimeoutMs) * time.Millisecond
	saramaConfig.Producer.Idempotent = true
	saramaConfig.Net.MaxOpenRequests = 1

	// Hash partitioner keeps one venue's events in order
	saramaConfig.Producer.Partitioner = sarama.NewHashPartitioner

	producer, err := sarama.NewSyncProducer(config.Brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	log.Printf("Kafka booking publisher created successfully")
	return &KafkaPublisher{producer: producer, config: config}, nil
}

func (p *KafkaPublisher) PublishBookingCreated(ctx context.Context, event *BookingCreatedEvent) error {
	return p.publish(event.VenueID.String(), "booking.created", event)
}

func (p *KafkaPublisher) PublishBookingStatusChanged(ctx context.Context, event *BookingStatusChangedEvent) error {
	return p.publish(event.VenueID.String(), "booking.status_changed", event)
}

func (p *KafkaPublisher) publish(key, eventType string, payload interface{}) error {
	messageBytes, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal booking event: %w", err)
	}

	message := &sarama.ProducerMessage{
		Topic: p.config.BookingsTopic,
		Key:   sarama.StringEncoder(key),
		Value: sarama.ByteEncoder(messageBytes),
		Headers: []sarama.RecordHeader{
			{Key: []byte("event_type"), Value: []byte(eventType)},
		},
	}

	partition, offset, err := p.producer.SendMessage(message)
	if err != nil {
		return fmt.Errorf("failed to publish booking event: %w", err)
	}

	log.Printf("Published %s to partition %d at offset %d", eventType, partition, offset)
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.producer.Close()
}

// NoopPublisher drops events. Used when Kafka is not configured.
type NoopPublisher struct{}

func NewNoopPublisher() Publisher {
	return &NoopPublisher{}
}

func (NoopPublisher) PublishBookingCreated(ctx context.Context, event *BookingCreatedEvent) error {
	return nil
}

func (NoopPublisher) PublishBookingStatusChanged(ctx context.Context, event *BookingStatusChangedEvent) error {
	return nil
}

func (NoopPublisher) Close() error { return nil }
