package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/didip/tollbooth/v6"
	"github.com/didip/tollbooth/v6/limiter"
	esv7 "github.com/elastic/go-elasticsearch/v7"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	rv8 "github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riandyrn/otelchi"
	"go.uber.org/zap"

	"github.com/aryasaumitra/projecthub-backend/cmd/internal"
	internaldomain "github.com/aryasaumitra/projecthub-backend/internal"
	"github.com/aryasaumitra/projecthub-backend/internal/auth"
	"github.com/aryasaumitra/projecthub-backend/internal/elasticsearch"
	"github.com/aryasaumitra/projecthub-backend/internal/envvar"
	"github.com/aryasaumitra/projecthub-backend/internal/kafka"
	"github.com/aryasaumitra/projecthub-backend/internal/memcached"
	"github.com/aryasaumitra/projecthub-backend/internal/postgresql"
	"github.com/aryasaumitra/projecthub-backend/internal/rabbitmq"
	"github.com/aryasaumitra/projecthub-backend/internal/redis"
	"github.com/aryasaumitra/projecthub-backend/internal/rest"
	"github.com/aryasaumitra/projecthub-backend/internal/service"
)

const serviceName = "projecthub-api"

func main() {
	var env, address string

	flag.StringVar(&env, "env", "", "Environment Variables filename")
	flag.StringVar(&address, "address", ":9234", "HTTP Server Address")
	flag.Parse()

	errC, err := run(env, address)
	if err != nil {
		log.Fatalf("Couldn't run: %s", err)
	}

	if err := <-errC; err != nil {
		log.Fatalf("Error while running: %s", err)
	}
}

func run(env, address string) (<-chan error, error) {
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

	//-

	tokensConf, err := internal.NewTokensConfig(conf)
	if err != nil {
		return nil, internaldomain.WrapErrorf(err, internaldomain.ErrorCodeUnknown, "internal.NewTokensConfig")
	}

	pageSize, err := internal.NewPageSize(conf)
	if err != nil {
		return nil, internaldomain.WrapErrorf(err, internaldomain.ErrorCodeUnknown, "internal.NewPageSize")
	}

	searchBackend, brokerBackend, err := internal.NewBackends(conf)
	if err != nil {
		return nil, internaldomain.WrapErrorf(err, internaldomain.ErrorCodeUnknown, "internal.NewBackends")
	}

	//-

	pool, err := internal.NewPostgreSQL(conf)
	if err != nil {
		return nil, internaldomain.WrapErrorf(err, internaldomain.ErrorCodeUnknown, "internal.NewPostgreSQL")
	}

	rdb, err := internal.NewRedis(conf)
	if err != nil {
		return nil, internaldomain.WrapErrorf(err, internaldomain.ErrorCodeUnknown, "internal.NewRedis")
	}

	mc, err := internal.NewMemcached(conf)
	if err != nil {
		return nil, internaldomain.WrapErrorf(err, internaldomain.ErrorCodeUnknown, "internal.NewMemcached")
	}

	var es *esv7.Client

	if searchBackend == "elasticsearch" {
		if es, err = internal.NewElasticSearch(conf); err != nil {
			return nil, internaldomain.WrapErrorf(err, internaldomain.ErrorCodeUnknown, "internal.NewElasticSearch")
		}

		if es == nil {
			return nil, internaldomain.NewErrorf(internaldomain.ErrorCodeInvalidArgument, "ELASTICSEARCH_URL is required by SEARCH_BACKEND")
		}
	}

	var (
		kafkaProducer *internal.KafkaProducer
		rmq           *internal.RabbitMQ
	)

	switch brokerBackend {
	case "kafka":
		if kafkaProducer, err = internal.NewKafkaProducer(conf); err != nil {
			return nil, internaldomain.WrapErrorf(err, internaldomain.ErrorCodeUnknown, "internal.NewKafkaProducer")
		}
	case "rabbitmq":
		if rmq, err = internal.NewRabbitMQ(conf); err != nil {
			return nil, internaldomain.WrapErrorf(err, internaldomain.ErrorCodeUnknown, "internal.NewRabbitMQ")
		}
	}

	metrics, err := internal.NewOTExporter(conf, serviceName)
	if err != nil {
		return nil, internaldomain.WrapErrorf(err, internaldomain.ErrorCodeUnknown, "internal.NewOTExporter")
	}

	logging := func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger.Info(r.Method,
				zap.Time("time", time.Now()),
				zap.String("url", r.URL.String()),
			)

			h.ServeHTTP(w, r)
		})
	}

	srv := newServer(serverConfig{
		Address:       address,
		DB:            pool,
		ElasticSearch: es,
		Kafka:         kafkaProducer,
		RabbitMQ:      rmq,
		Redis:         rdb,
		Memcached:     mc,
		Metrics:       metrics,
		Middlewares:   []func(next http.Handler) http.Handler{otelchi.Middleware(serviceName), logging},
		Logger:        logger,
		Tokens:        auth.NewTokens(tokensConf),
		PageSize:      pageSize,
	})

	errC := make(chan error, 1)

	ctx, stop := signal.NotifyContext(context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
		syscall.SIGQUIT)

	go func() {
		<-ctx.Done()

		logger.Info("Shutdown signal received")

		ctxTimeout, cancel := context.WithTimeout(context.Background(), 5*time.Second)

		defer func() {
			_ = logger.Sync()

			pool.Close()

			if rdb != nil {
				_ = rdb.Close()
			}

			if kafkaProducer != nil {
				kafkaProducer.Producer.Flush(int((5 * time.Second).Milliseconds()))
				kafkaProducer.Producer.Close()
			}

			if rmq != nil {
				rmq.Close()
			}

			stop()
			cancel()
			close(errC)
		}()

		srv.SetKeepAlivesEnabled(false)

		if err := srv.Shutdown(ctxTimeout); err != nil {
			errC <- err
		}

		logger.Info("Shutdown completed")
	}()

	go func() {
		logger.Info("Listening and serving", zap.String("address", address))

		// "ListenAndServe always returns a non-nil error. After Shutdown or Close, the returned error is
		// ErrServerClosed."
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errC <- err
		}
	}()

	return errC, nil
}

type serverConfig struct {
	Address       string
	DB            *pgxpool.Pool
	ElasticSearch *esv7.Client
	Kafka         *internal.KafkaProducer
	RabbitMQ      *internal.RabbitMQ
	Redis         *rv8.Client
	Memcached     *memcache.Client
	Metrics       http.Handler
	Middlewares   []func(next http.Handler) http.Handler
	Logger        *zap.Logger
	Tokens        *auth.Tokens
	PageSize      int
}

func newServer(conf serverConfig) *http.Server {
	router := chi.NewRouter()
	router.Use(render.SetContentType(render.ContentTypeJSON))

	for _, mw := range conf.Middlewares {
		router.Use(mw)
	}

	//- Users

	var userRepo service.UserRepository = postgresql.NewUser(conf.DB)
	if conf.Redis != nil {
		userRepo = redis.NewUser(conf.Redis, userRepo, conf.Logger)
	}

	userSvc := service.NewUser(conf.Logger, userRepo, conf.Tokens)

	//- Projects

	var projectRepo service.ProjectRepository = postgresql.NewProject(conf.DB)

	var projectSearch service.ProjectSearchRepository = postgresql.NewProject(conf.DB)
	if conf.ElasticSearch != nil {
		projectSearch = elasticsearch.NewProject(conf.ElasticSearch)
	}

	if conf.Memcached != nil {
		projectRepo = memcached.NewProject(conf.Memcached, projectRepo, conf.Logger)
	}

	var msgBroker service.ProjectMessageBrokerRepository

	switch {
	case conf.Kafka != nil:
		msgBroker = kafka.NewProject(conf.Kafka.Producer, conf.Kafka.Topic)
	case conf.RabbitMQ != nil:
		msgBroker = rabbitmq.NewProject(conf.RabbitMQ.Channel)
	}

	projectSvc := service.NewProject(conf.Logger, projectRepo, projectSearch, msgBroker)

	//- Tasks

	taskSvc := service.NewTask(conf.Logger, postgresql.NewTask(conf.DB), projectRepo, userRepo)

	//-

	rest.RegisterRoot(router)
	rest.RegisterOpenAPI(router)
	router.Handle("/metrics", conf.Metrics)

	router.Route("/api", func(r chi.Router) {
		r.Use(rest.Authenticate(conf.Tokens))

		rest.NewUserHandler(userSvc).Register(r)
		rest.NewProjectHandler(projectSvc, conf.PageSize).Register(r)
		rest.NewTaskHandler(taskSvc, conf.PageSize).Register(r)
	})

	lmt := tollbooth.NewLimiter(20, &limiter.ExpirableOptions{DefaultExpirationTTL: time.Second})
	lmtmw := tollbooth.LimitHandler(lmt, router)

	return &http.Server{
		Handler:           lmtmw,
		Addr:              conf.Address,
		ReadTimeout:       1 * time.Second,
		ReadHeaderTimeout: 1 * time.Second,
		WriteTimeout:      5 * time.Second,
		IdleTimeout:       1 * time.Second,
	}
}

