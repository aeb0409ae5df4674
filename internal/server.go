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

	"github.com/vkaracic/trackfit/internal/auth"
	"github.com/vkaracic/trackfit/internal/config"
	"github.com/vkaracic/trackfit/internal/db"
	"github.com/vkaracic/trackfit/internal/middleware"
	"github.com/vkaracic/trackfit/internal/misc"
	"github.com/vkaracic/trackfit/internal/telemetry/metrics"
	metricsmiddleware "github.com/vkaracic/trackfit/internal/telemetry/metrics/middleware"
	"github.com/vkaracic/trackfit/internal/telemetry/tracing"
	"github.com/vkaracic/trackfit/internal/workouts"
	"github.com/vkaracic/trackfit/internal/workouts/catalog"
	"github.com/vkaracic/trackfit/internal/workouts/stats"
)

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	mobileAppSecret   string // used with the trackfit mobile app
	versionInfo       string

	config *config.Config
	dbPool *pgxpool.Pool

	redisClient  *redis.Client
	loginChecker *auth.LoginChecker
	authService  *auth.Service

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()

	searchFilterStop func()
}

type NewServerParams struct {
	Config                  *config.Config
	MobileAppSecret         string
	VersionInfo             string
	AdminUsername           string
	AdminPasswordHash       string
	RedisPassword           string
	HoneycombTracingEnabled bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         params.Config.PostgresHost,
		DBPort:         params.Config.PostgresPort,
		DBName:         params.Config.PostgresDBName,
		TracingEnabled: params.HoneycombTracingEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Warnf("failed to ping db: %s", err)
	}

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": "trackfit_db"},
	)
	promRegistry := metrics.SetupPrometheus(pgxpoolCollector)
	metricsManager := metrics.NewManager("backend", "main", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(params.Config.RedisHost, params.Config.RedisPort),
		Password: params.RedisPassword,
		DB:       0, // use default DB
	})

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	authService := auth.NewAuthService(&auth.Admin{
		Username:     params.AdminUsername,
		PasswordHash: params.AdminPasswordHash,
	}, auth.DefaultTTL, rdb)
	go func() {
		for range time.Tick(time.Hour * 8) {
			authService.ScanAndClean(ctx)
		}
	}()

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "main-backend", rdb)
	if err != nil {
		return nil, err
	}

	return &Server{
		config:          params.Config,
		dbPool:          dbPool,
		mobileAppSecret: params.MobileAppSecret,
		versionInfo:     params.VersionInfo,

		redisClient:  rdb,
		authService:  authService,
		loginChecker: auth.NewLoginChecker(auth.DefaultTTL, rdb),

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}, nil
}

func (s *Server) routerSetup() (*mux.Router, error) {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("main-router"))

	reqRateLimiter := redis_rate.NewLimiter(s.redisClient)
	miscHandler := misc.NewHandler(s.versionInfo, s.authService)
	miscHandler.SetupRoutes(r, reqRateLimiter, s.metricsManager, s.config.LoginRateLimitAllowedPerMin)

	workoutLogsRepo := workouts.NewRepo(s.dbPool)
	workoutsHandler := workouts.NewHandler(workoutLogsRepo, s.metricsManager)
	r.HandleFunc("/workouts", workoutsHandler.HandleAdd).Methods("POST", "OPTIONS").Name("new-workout-log")
	r.HandleFunc("/workouts", workoutsHandler.HandleList).Methods("GET", "OPTIONS").Name("list-workout-logs")
	r.HandleFunc("/workouts/history", workoutsHandler.HandleHistory).Methods("GET", "OPTIONS").Name("workouts-history")
	r.HandleFunc("/workouts/history/{date}/group/{mgroup}", workoutsHandler.HandleDeleteGroup).Methods("DELETE", "OPTIONS").Name("delete-workouts-group")

	catalogRepo := catalog.NewRepo(s.dbPool)
	searchFilter := catalog.NewFilter()
	s.searchFilterStop = catalog.ObserveQueryUpdates(searchFilter, s.metricsManager.CounterExerciseSearchUpdates)
	catalogHandler := catalog.NewHandler(catalogRepo, searchFilter)
	r.HandleFunc("/catalog/groups", catalogHandler.HandleListMuscleGroups).Methods("GET", "OPTIONS").Name("list-muscle-groups")
	r.HandleFunc("/catalog/groups", catalogHandler.HandleAddMuscleGroup).Methods("POST", "OPTIONS").Name("new-muscle-group")
	r.HandleFunc("/catalog/exercises", catalogHandler.HandleListExercises).Methods("GET", "OPTIONS").Name("list-exercises")
	r.HandleFunc("/catalog/exercises", catalogHandler.HandleAddExercise).Methods("POST", "OPTIONS").Name("new-exercise")

	statsHandler := stats.NewHandler(stats.NewAnalyzer(workoutLogsRepo, catalogRepo))
	r.HandleFunc("/stats/records", statsHandler.HandleRecords).Methods("GET", "OPTIONS").Name("personal-records")
	r.HandleFunc("/stats/frequency/{period}", statsHandler.HandleFrequency).Methods("GET", "OPTIONS").Name("muscle-frequency")
	r.HandleFunc("/stats/trend/{exercise}", statsHandler.HandleTrend).Methods("GET", "OPTIONS").Name("exercise-trend")

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "OPTIONS").Name("unknown")

	authMiddleware := middleware.NewAuthMiddlewareHandler(
		s.mobileAppSecret,
		s.loginChecker,
	)

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors())
	r.Use(authMiddleware.AuthCheck())
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
		Handler:      router,
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
		ConnState:    s.connStateMetrics,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", metricsmiddleware.
		New(s.promRegistry, nil).
		WrapHandler("/metrics", promhttp.HandlerFor(
			s.promRegistry,
			promhttp.HandlerOpts{}),
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

	s.otelShutdown()
	log.Trace("otel shut down ...")

	if s.searchFilterStop != nil {
		s.searchFilterStop()
	}

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

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		log.Error(" >>> failed to gracefully shutdown http server")
	}
	log.Warnln("server shut down")

	if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
		log.Error(" >>> failed to gracefully shutdown metrics http server")
	}
	log.Warnln("metrics server shut down")
}

func (s *Server) connStateMetrics(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		s.metricsManager.GaugeRequests.Add(1)
	case http.StateClosed:
		s.metricsManager.GaugeRequests.Add(-1)
	default:
		// do nothing
	}
}
