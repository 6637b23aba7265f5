package kafka

import (
	"bytes"
	"context"
	"encoding/json"

	"github.com/confluentinc/confluent-kafka-go/kafka"
	"go.opentelemetry.io/otel"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"

	"github.com/aryasaumitra/projecthub-backend/internal"
)

const otelName = "github.com/aryasaumitra/projecthub-backend/internal/kafka"

// Project represents the repository used for publishing Project records.
type Project struct {
	producer  *kafka.Producer
	topicName string
}

// Event is the message published to the topic.
type Event struct {
	Type  string
	Value internal.Project
}

// NewProject instantiates the Project repository.
func NewProject(producer *kafka.Producer, topicName string) *Project {
	return &Project{
		topicName: topicName,
		producer:  producer,
	}
}

// Created publishes a message indicating a project was created.
func (p *Project) Created(ctx context.Context, project internal.Project) error {
	return p.publish(ctx, "Project.Created", internal.EventProjectCreated, project)
}

// Deleted publishes a message indicating a project was deleted.
func (p *Project) Deleted(ctx context.Context, id int64) error {
	return p.publish(ctx, "Project.Deleted", internal.EventProjectDeleted, internal.Project{ID: id})
}

// Updated publishes a message indicating a project was updated.
func (p *Project) Updated(ctx context.Context, project internal.Project) error {
	return p.publish(ctx, "Project.Updated", internal.EventProjectUpdated, project)
}

func (p *Project) publish(ctx context.Context, spanName, msgType string, project internal.Project) error {
	_, span := otel.Tracer(otelName).Start(ctx, spanName)
	defer span.End()

	span.SetAttributes(semconv.MessagingSystemKey.String("kafka"))

	var b bytes.Buffer

	evt := Event{
		Type:  msgType,
		Value: project,
	}

	if err := json.NewEncoder(&b).Encode(evt); err != nil {
		return internal.WrapErrorf(err, internal.ErrorCodeUnknown, "json.Encode")
	}

	if err := p.producer.Produce(&kafka.Message{
		TopicPartition: kafka.TopicPartition{
			Topic:     &p.topicName,
			Partition: kafka.PartitionAny,
		},
		Value: b.Bytes(),
	}, nil); err != nil {
		return internal.WrapErrorf(err, internal.ErrorCodeUnknown, "producer.Produce")
	}

	return nil
}
