package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"blood-donor-connector/internal/domain"
	"blood-donor-connector/internal/logx"
	"blood-donor-connector/internal/tracing"
)

var newSyncProducer = sarama.NewSyncProducer

// NewSyncProducer dials the brokers. It returns nil when Kafka is not configured.
func NewSyncProducer(brokers []string) (sarama.SyncProducer, error) {
	if len(brokers) == 0 {
		return nil, nil
	}

	cfg := sarama.NewConfig()
	cfg.Producer.Return.Successes = true
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Retry.Max = 3

	return newSyncProducer(brokers, cfg)
}

// Producer publishes request events to a topic
type Producer struct {
	producer sarama.SyncProducer
	topic    string
	logger   logx.Logger
	tracer   trace.Tracer
	newID    func() string
}

// NewProducer wraps a sarama producer. It returns nil when sp is nil or the
// topic is empty, and a nil *Producer is safe to publish to.
func NewProducer(sp sarama.SyncProducer, topic string, logger logx.Logger) *Producer {
	if sp == nil || strings.TrimSpace(topic) == "" {
		return nil
	}
	return &Producer{
		producer: sp,
		topic:    topic,
		logger:   logger,
		tracer:   tracing.Tracer("kafka"),
		newID:    func() string { return uuid.NewString() },
	}
}

// PublishRequestSubmitted sends a request.submitted event keyed by request id.
func (p *Producer) PublishRequestSubmitted(ctx context.Context, q domain.Request) error {
	if p == nil {
		return nil
	}

	ctx, span := p.tracer.Start(ctx, "kafka.publish", trace.WithSpanKind(trace.SpanKindProducer))
	defer span.End()

	dto := FromRequest(p.newID(), q)
	data, err := json.Marshal(dto)
	if err != nil {
		tracing.RecordError(span, err)
		return fmt.Errorf("marshal event: %w", err)
	}

	key := strconv.FormatInt(q.ID, 10)
	msg := &sarama.ProducerMessage{
		Topic:   p.topic,
		Key:     sarama.StringEncoder(key),
		Value:   sarama.ByteEncoder(data),
		Headers: injectTraceContext(ctx, nil),
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		tracing.RecordError(span, err)
		return fmt.Errorf("send event %s: %w", dto.ID, err)
	}

	span.SetAttributes(
		attribute.String("messaging.system", "kafka"),
		attribute.String("messaging.destination", p.topic),
		attribute.Int64("messaging.kafka.partition", int64(partition)),
		attribute.Int64("messaging.kafka.offset", offset),
	)
	p.logger.Debug("event published",
		logx.String("event_id", dto.ID),
		logx.String("type", dto.Type),
		logx.String("key", key),
		logx.Int64("offset", offset),
	)
	return nil
}

// Close flushes and closes the underlying producer.
func (p *Producer) Close() error {
	if p == nil {
		return nil
	}
	return p.producer.Close()
}
