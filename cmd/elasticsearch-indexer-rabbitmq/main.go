package main

import (
	"bytes"
	"context"
	"encoding/gob"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/streadway/amqp"
	"go.uber.org/zap"

	"github.com/aryasaumitra/projecthub-backend/cmd/internal"
	internaldomain "github.com/aryasaumitra/projecthub-backend/internal"
	"github.com/aryasaumitra/projecthub-backend/internal/elasticsearch"
	"github.com/aryasaumitra/projecthub-backend/internal/envvar"
	"github.com/aryasaumitra/projecthub-backend/internal/rabbitmq"
)

const rabbitMQConsumerName = "elasticsearch-indexer"

func main() {
	var env string

	flag.StringVar(&env, "env", "", "Environment Variables filename")
	flag.Parse()

	errC, err := run(env)
	if err != nil {
		log.Fatalf("Couldn't run: %s", err)
	}

	if err := <-errC; err != nil {
		log.Fatalf("Error while running: %s", err)
	}
}

func run(env string) (<-chan error, error) {
	logger, err := zap.NewProduction()
	if err != nil {
		return nil, internaldomain.WrapErrorf(err, internaldomain.ErrorCodeUnknown, "zap.NewProduction")
	}

	if err := envvar.Load(env); err != nil {
		return nil, internaldomain.WrapErrorf(err, internaldomain.ErrorCodeUnknown, "envvar.Load")
	}

	vault, err := internal.NewVaultProvider()
	if err != nil {
		return nil, internaldomain.WrapErrorf(err, internaldomain.ErrorCodeUnknown, "internal.NewVaultProvider")
	}

	conf := envvar.New(vault)

	esClient, err := internal.NewElasticSearch(conf)
	if err != nil {
		return nil, internaldomain.WrapErrorf(err, internaldomain.ErrorCodeUnknown, "internal.NewElasticSearch")
	}

	if esClient == nil {
		return nil, internaldomain.NewErrorf(internaldomain.ErrorCodeInvalidArgument, "ELASTICSEARCH_URL is required")
	}

	rmq, err := internal.NewRabbitMQ(conf)
	if err != nil {
		return nil, internaldomain.WrapErrorf(err, internaldomain.ErrorCodeUnknown, "internal.NewRabbitMQ")
	}

	if _, err := internal.NewOTExporter(conf, "projecthub-indexer-rabbitmq"); err != nil {
		return nil, internaldomain.WrapErrorf(err, internaldomain.ErrorCodeUnknown, "internal.NewOTExporter")
	}

	srv := &Server{
		logger:  logger,
		rmq:     rmq,
		project: elasticsearch.NewProject(esClient),
		done:    make(chan struct{}),
	}

	errC := make(chan error, 1)

	ctx, stop := signal.NotifyContext(context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
		syscall.SIGQUIT)

	go func() {
		<-ctx.Done()

		logger.Info("Shutdown signal received")

		ctxTimeout, cancel := context.WithTimeout(context.Background(), 10*time.Second)

		defer func() {
			_ = logger.Sync()

			rmq.Close()
			stop()
			cancel()
			close(errC)
		}()

		if err := srv.Shutdown(ctxTimeout); err != nil {
			errC <- err
		}

		logger.Info("Shutdown completed")
	}()

	go func() {
		logger.Info("Listening and serving")

		if err := srv.ListenAndServe(); err != nil {
			errC <- err
		}
	}()

	return errC, nil
}

// Server consumes Project events and keeps the search index up to date.
type Server struct {
	logger  *zap.Logger
	rmq     *internal.RabbitMQ
	project *elasticsearch.Project
	done    chan struct{}
}

// ListenAndServe starts consuming messages in the background.
func (s *Server) ListenAndServe() error {
	queue, err := s.rmq.Channel.QueueDeclare(
		rabbitMQConsumerName, // name
		true,                 // durable
		false,                // delete when unused
		false,                // exclusive
		false,                // no-wait
		nil,                  // arguments
	)
	if err != nil {
		return internaldomain.WrapErrorf(err, internaldomain.ErrorCodeUnknown, "channel.QueueDeclare")
	}

	err = s.rmq.Channel.QueueBind(
		queue.Name,            // queue name
		"projects.event.*",    // routing key
		rabbitmq.ExchangeName, // exchange
		false,
		nil,
	)
	if err != nil {
		return internaldomain.WrapErrorf(err, internaldomain.ErrorCodeUnknown, "channel.QueueBind")
	}

	msgs, err := s.rmq.Channel.Consume(
		queue.Name,           // queue
		rabbitMQConsumerName, // consumer
		false,                // auto-ack
		false,                // exclusive
		false,                // no-local
		false,                // no-wait
		nil,                  // args
	)
	if err != nil {
		return internaldomain.WrapErrorf(err, internaldomain.ErrorCodeUnknown, "channel.Consume")
	}

	go func() {
		for msg := range msgs {
			s.handle(msg)
		}

		s.logger.Info("No more messages to consume. Exiting.")

		s.done <- struct{}{}
	}()

	return nil
}

func (s *Server) handle(msg amqp.Delivery) {
	s.logger.Info("Received message", zap.String("routing_key", msg.RoutingKey))

	var err error

	switch msg.RoutingKey {
	case internaldomain.EventProjectCreated, internaldomain.EventProjectUpdated:
		var project internaldomain.Project

		if err = decode(msg.Body, &project); err == nil {
			err = s.project.Index(context.Background(), project)
		}
	case internaldomain.EventProjectDeleted:
		var id int64

		if err = decode(msg.Body, &id); err == nil {
			err = s.project.Delete(context.Background(), id)
		}
	default:
		s.logger.Info("Ignoring message with unknown routing key", zap.String("routing_key", msg.RoutingKey))

		_ = msg.Nack(false, false)

		return
	}

	if err != nil {
		var ierr *internaldomain.Error

		// Malformed messages are dropped, everything else is retried.
		requeue := !(errors.As(err, &ierr) && ierr.Code() == internaldomain.ErrorCodeInvalidArgument)

		s.logger.Info("Nacking", zap.Error(err), zap.Bool("requeue", requeue))

		_ = msg.Nack(false, requeue)

		return
	}

	_ = msg.Ack(false)
}

// Shutdown stops consuming and waits for in flight messages.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down server")

	_ = s.rmq.Channel.Cancel(rabbitMQConsumerName, false)

	for {
		select {
		case <-ctx.Done():
			return internaldomain.WrapErrorf(ctx.Err(), internaldomain.ErrorCodeUnknown, "context.Done")
		case <-s.done:
			return nil
		}
	}
}

func decode(b []byte, target interface{}) error {
	if err := gob.NewDecoder(bytes.NewReader(b)).Decode(target); err != nil {
		return internaldomain.WrapErrorf(err, internaldomain.ErrorCodeInvalidArgument, "gob.Decode")
	}

	return nil
}
