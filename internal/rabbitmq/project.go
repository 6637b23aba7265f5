package rabbitmq

import (
	"bytes"
	"context"
	"encoding/gob"
	"time"

	"github.com/streadway/amqp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"

	"github.com/aryasaumitra/projecthub-backend/internal"
)

const (
	otelName = "github.com/aryasaumitra/projecthub-backend/internal/rabbitmq"

	// ExchangeName is the topic exchange receiving project events.
	ExchangeName = "projects"
)

// Project represents the repository used for publishing Project records.
type Project struct {
	ch *amqp.Channel
}

// NewProject instantiates the Project repository.
func NewProject(channel *amqp.Channel) *Project {
	return &Project{
		ch: channel,
	}
}

// Created publishes a message indicating a project was created.
func (p *Project) Created(ctx context.Context, project internal.Project) error {
	return p.publish(ctx, "Project.Created", internal.EventProjectCreated, project)
}

// Deleted publishes a message indicating a project was deleted.
func (p *Project) Deleted(ctx context.Context, id int64) error {
	return p.publish(ctx, "Project.Deleted", internal.EventProjectDeleted, id)
}

// Updated publishes a message indicating a project was updated.
func (p *Project) Updated(ctx context.Context, project internal.Project) error {
	return p.publish(ctx, "Project.Updated", internal.EventProjectUpdated, project)
}

func (p *Project) publish(ctx context.Context, spanName, routingKey string, e interface{}) error {
	_, span := otel.Tracer(otelName).Start(ctx, spanName)
	defer span.End()

	span.SetAttributes(
		semconv.MessagingSystemKey.String("rabbitmq"),
		attribute.String("messaging.rabbitmq.routing_key", routingKey),
	)

	var b bytes.Buffer
	if err := gob.NewEncoder(&b).Encode(e); err != nil {
		return internal.WrapErrorf(err, internal.ErrorCodeUnknown, "gob.Encode")
	}

	err := p.ch.Publish(
		ExchangeName, // exchange
		routingKey,   // routing key
		false,        // mandatory
		false,        // immediate
		amqp.Publishing{
			AppId:       "projects-rest-server",
			ContentType: "application/x-encoding-gob",
			Body:        b.Bytes(),
			Timestamp:   time.Now(),
		})
	if err != nil {
		return internal.WrapErrorf(err, internal.ErrorCodeUnknown, "ch.Publish")
	}

	return nil
}
