package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"github.com/shenikar/campus_safety/internal/models"
)

const (
	sosQueueKey = "sos_events"
)

// SOSEvent - оповещение о переданном SOS
type SOSEvent struct {
	LogID           string    `json:"log_id"`
	IncidentID      string    `json:"incident_id"`
	Message         string    `json:"message"`
	Latitude        float64   `json:"latitude"`
	Longitude       float64   `json:"longitude"`
	Building        string    `json:"building,omitempty"`
	OperatorDetails string    `json:"operator_details,omitempty"`
	Timestamp       time.Time `json:"timestamp"`
}

func NewSOSEvent(log models.EmergencyLog) SOSEvent {
	return SOSEvent{
		LogID:           log.ID,
		IncidentID:      models.SOSIncidentPrefix + log.ID,
		Message:         log.Message,
		Latitude:        log.Location.Lat,
		Longitude:       log.Location.Lng,
		Building:        log.Building,
		OperatorDetails: log.OperatorDetails,
		Timestamp:       log.Timestamp,
	}
}

// Publisher - интерфейс для публикации SOS событий
type Publisher interface {
	Publish(ctx context.Context, event SOSEvent) error
}

// RedisPublisher кладет события в очередь Redis, которую разбирает Worker
type RedisPublisher struct {
	redisClient *redis.Client
}

func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{
		redisClient: client,
	}
}

func (p *RedisPublisher) Publish(ctx context.Context, event SOSEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal sos event: %w", err)
	}

	// LPUSH в голову списка, Worker забирает с хвоста через BRPOP
	if err := p.redisClient.LPush(ctx, sosQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish sos event to Redis: %w", err)
	}
	return nil
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher пишет события в топик, ключ - id записи журнала
type KafkaPublisher struct {
	writer messageWriter
}

func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
			Async:        false,
		},
	}
}

func (p *KafkaPublisher) Publish(ctx context.Context, event SOSEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal sos event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(event.LogID),
		Value: payload,
		Time:  event.Timestamp,
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to publish sos event to Kafka: %w", err)
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// NopPublisher используется, когда оповещение не настроено
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, SOSEvent) error { return nil }
