package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/2beens/fitaipro/internal/config"
	"github.com/2beens/fitaipro/internal/dashboard"
	"github.com/2beens/fitaipro/internal/db"
	"github.com/2beens/fitaipro/internal/meals"
	"github.com/2beens/fitaipro/internal/middleware"
	"github.com/2beens/fitaipro/internal/misc"
	"github.com/2beens/fitaipro/internal/profile"
	"github.com/2beens/fitaipro/internal/quiz"
	"github.com/2beens/fitaipro/internal/storage"
	"github.com/2beens/fitaipro/internal/telemetry/metrics"
	"github.com/2beens/fitaipro/internal/telemetry/tracing"
)

const recordCacheTTLSeconds = 300

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config      *config.Config
	store       storage.Store
	dbPool      *pgxpool.Pool
	redisClient *redis.Client
	tips        *dashboard.TipsManager

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	VersionInfo             string
	RedisPassword           string
	PostgresPassword        string
	HoneycombTracingEnabled bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	cfg := params.Config

	var rdb *redis.Client
	if cfg.RedisHost != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     net.JoinHostPort(cfg.RedisHost, cfg.RedisPort),
			Password: params.RedisPassword,
			DB:       0, // use default DB
		})

		rdbStatus := rdb.Ping(ctx)
		if err := rdbStatus.Err(); err != nil {
			log.Errorf("--> failed to ping redis: %s", err)
		} else {
			log.Debugf("redis ping: %s", rdbStatus.Val())
		}
	}

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "fitai-backend", rdb)
	if err != nil {
		return nil, err
	}

	var (
		store          storage.Store
		dbPool         *pgxpool.Pool
		extraCollector []prometheus.Collector
	)
	switch cfg.StorageBackend {
	case config.StorageBackendPostgres:
		dbPool, err = db.NewDBPool(ctx, db.NewDBPoolParams{
			DBHost:         cfg.PostgresHost,
			DBPort:         cfg.PostgresPort,
			DBName:         cfg.PostgresDBName,
			DBPassword:     params.PostgresPassword,
			TracingEnabled: params.HoneycombTracingEnabled,
		})
		if err != nil {
			return nil, fmt.Errorf("new db pool: %w", err)
		}
		if err := dbPool.Ping(ctx); err != nil {
			log.Warnf("failed to ping db: %s", err)
		}

		pgStore := storage.NewPostgresStore(dbPool)
		if err := pgStore.Migrate(ctx); err != nil {
			return nil, fmt.Errorf("migrate records table: %w", err)
		}
		store = pgStore
		extraCollector = append(extraCollector, pgxpoolprometheus.NewCollector(
			dbPool,
			map[string]string{"db_name": cfg.PostgresDBName},
		))
	case config.StorageBackendRedis:
		if rdb == nil {
			return nil, errors.New("redis storage backend without redis client")
		}
		store = storage.NewRedisStore(rdb)
	default:
		log.Warnln("using in-memory storage, records are lost on restart")
		store = storage.NewMemoryStore()
	}

	if cfg.RecordCacheSize > 0 {
		log.Debugf("records cache enabled, size: %d bytes", cfg.RecordCacheSize)
		store = storage.NewCachedStore(store, cfg.RecordCacheSize, recordCacheTTLSeconds)
	}

	promRegistry := metrics.SetupPrometheus(extraCollector...)
	metricsManager := metrics.NewManager("fitai", "backend", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	tips, err := dashboard.NewDefaultTipsManager()
	if err != nil {
		return nil, fmt.Errorf("load daily tips: %w", err)
	}

	return &Server{
		versionInfo:    params.VersionInfo,
		config:         cfg,
		store:          store,
		dbPool:         dbPool,
		redisClient:    rdb,
		tips:           tips,
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}, nil
}

func (s *Server) routerSetup() (*mux.Router, error) {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("fitai-router"))

	miscHandler := misc.NewHandler(s.versionInfo)
	miscHandler.SetupRoutes(r)

	profileService := profile.NewService(profile.NewRepo(s.store), s.metricsManager)
	profileHandler := profile.NewHandler(profileService)
	r.HandleFunc("/calculator/estimate", profileHandler.HandleEstimate).Methods("GET", "OPTIONS").Name("calculator-estimate")
	r.HandleFunc("/users/{user}/profile", profileHandler.HandleGetProfile).Methods("GET", "OPTIONS").Name("get-profile")
	r.HandleFunc("/users/{user}/goals", profileHandler.HandleGetGoals).Methods("GET", "OPTIONS").Name("get-goals")
	r.HandleFunc("/users/{user}/goals", profileHandler.HandleUpdateGoals).Methods("PUT", "OPTIONS").Name("update-goals")

	quizHandler := quiz.NewHandler(quiz.NewService(
		quiz.NewSessionsRepo(s.store),
		profileService,
		s.config.CheckoutURL,
		s.metricsManager,
	))
	r.HandleFunc("/quiz/sessions", quizHandler.HandleStart).Methods("POST", "OPTIONS").Name("start-quiz")
	r.HandleFunc("/quiz/sessions/{id}", quizHandler.HandleGet).Methods("GET", "OPTIONS").Name("get-quiz")
	r.HandleFunc("/quiz/sessions/{id}/answer", quizHandler.HandleAnswer).Methods("POST", "OPTIONS").Name("answer-quiz")
	r.HandleFunc("/quiz/sessions/{id}/unlock", quizHandler.HandleUnlock).Methods("POST", "OPTIONS").Name("unlock-plan")

	mealsService := meals.NewService(
		meals.NewRepo(s.store),
		s.metricsManager,
		meals.DefaultCaptureSources(s.config.VoiceListeningDelay.Duration)...,
	)
	mealsHandler := meals.NewHandler(mealsService)
	captureSubrouter := r.PathPrefix("/users/{user}/meals/capture").Subrouter()
	captureSubrouter.
		HandleFunc("/{method}", mealsHandler.HandleCapture).
		Methods("POST", "OPTIONS").Name("capture-meal")
	if s.redisClient != nil {
		captureSubrouter.Use(middleware.RateLimit(
			redis_rate.NewLimiter(s.redisClient),
			"meals-capture",
			s.config.CaptureRateLimitAllowedPerMin,
			s.metricsManager,
		))
	} else {
		log.Warnln("no redis client, meal capture is not rate limited")
	}
	r.HandleFunc("/users/{user}/meals/today", mealsHandler.HandleToday).Methods("GET", "OPTIONS").Name("meals-today")
	r.HandleFunc("/users/{user}/meals/{id}", mealsHandler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-meal")

	dashboardHandler := dashboard.NewHandler(dashboard.NewService(profileService, mealsService, s.tips))
	r.HandleFunc("/users/{user}/dashboard", dashboardHandler.HandleToday).Methods("GET", "OPTIONS").Name("dashboard")

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "DELETE", "OPTIONS").Name("unknown")

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors(s.config.AllowedOrigins))
	r.Use(middleware.DrainAndCloseRequest())

	return r, nil
}

func (s *Server) Serve(host string, port int) {
	router, err := s.routerSetup()
	if err != nil {
		log.Fatalf("failed to setup router: %s", err)
	}

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      otelhttp.NewHandler(router, "fitai-server"),
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
		ConnState:    s.connStateMetrics,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.InstrumentMetricHandler(
		s.promRegistry,
		promhttp.HandlerFor(s.promRegistry, promhttp.HandlerOpts{}),
	))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown http server")
		}
		log.Warnln("server shut down")
	}

	if s.metricsHttpServer != nil {
		if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown metrics http server")
		}
		log.Warnln("metrics server shut down")
	}

	s.otelShutdown()
	log.Trace("otel shut down ...")

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Errorf("failed to close redis client conn: %s", err)
		}
	}

	if s.dbPool != nil {
		log.Debugln("closing db pool ...")
		s.dbPool.Close() // blocking operation
		log.Debugln("db pool closed")
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}
}

func (s *Server) connStateMetrics(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		s.metricsManager.GaugeOpenConnections.Add(1)
	case http.StateClosed, http.StateHijacked:
		s.metricsManager.GaugeOpenConnections.Add(-1)
	default:
		// do nothing
	}
}
