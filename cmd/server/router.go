package main

import (
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"connectrpc.com/connect"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mmynk/tripsplit/internal/auth"
	"github.com/mmynk/tripsplit/internal/calculator"
	"github.com/mmynk/tripsplit/internal/config"
	"github.com/mmynk/tripsplit/internal/metrics"
	"github.com/mmynk/tripsplit/internal/middleware"
	"github.com/mmynk/tripsplit/internal/service"
	"github.com/mmynk/tripsplit/internal/storage"
	"github.com/mmynk/tripsplit/pkg/api/apiconnect"
)

type routerDeps struct {
	cfg     config.Config
	store   storage.Store
	jwt     *auth.JWTManager
	metrics *metrics.Metrics
}

func newRouter(deps routerDeps) http.Handler {
	// Order matters: metrics see every call, logging sees the resolved member.
	interceptors := connect.WithInterceptors(
		middleware.MetricsInterceptor(deps.metrics),
		middleware.RequireMember(deps.jwt, apiconnect.SettlementServiceConfirmTransactionProcedure),
		middleware.LoggingInterceptor(),
	)
	opts := []service.Option{
		service.WithMetrics(deps.metrics),
		service.WithSettlementOptions(calculator.Options{NetOpposite: deps.cfg.Settlement.NetOpposite}),
	}

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Recoverer)
	r.Use(loggingMiddleware)
	r.Use(corsMiddleware)

	// Register Connect services
	r.Mount(apiconnect.NewTripServiceHandler(service.NewTripService(deps.store), interceptors))
	r.Mount(apiconnect.NewExpenseServiceHandler(service.NewExpenseService(deps.store, opts...), interceptors))
	r.Mount(apiconnect.NewSettlementServiceHandler(service.NewSettlementService(deps.store, opts...), interceptors))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	if deps.cfg.HTTP.MetricsEnabled {
		r.Handle("/metrics", promhttp.Handler())
	}
	if deps.cfg.HTTP.StaticPath != "" {
		r.NotFound(staticHandler(deps.cfg.HTTP.StaticPath))
	}

	return r
}

// staticHandler serves the web client, falling back to index.html for
// unknown paths. RPC paths never fall through to it.
func staticHandler(staticPath string) http.HandlerFunc {
	staticDir, err := filepath.Abs(staticPath)
	if err != nil {
		staticDir = staticPath
	}
	slog.Info("Serving static files", "path", staticDir)

	return func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/tripsplit.v1.") {
			http.NotFound(w, r)
			return
		}

		urlPath := r.URL.Path
		if urlPath == "/" {
			urlPath = "/index.html"
		}

		filePath := filepath.Join(staticDir, filepath.Clean(urlPath))
		if _, err := os.Stat(filePath); os.IsNotExist(err) {
			http.ServeFile(w, r, filepath.Join(staticDir, "index.html"))
			return
		}

		http.ServeFile(w, r, filePath)
	}
}

// loggingMiddleware logs all incoming requests
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		slog.Debug("Request received",
			"method", r.Method,
			"path", r.URL.Path,
			"request_id", chimiddleware.GetReqID(r.Context()),
			"remote_addr", r.RemoteAddr,
			"user_agent", r.UserAgent(),
		)

		next.ServeHTTP(w, r)

		slog.Debug("Request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"request_id", chimiddleware.GetReqID(r.Context()),
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

// corsMiddleware adds CORS headers for browser access
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, Connect-Protocol-Version, Connect-Timeout-Ms")
		w.Header().Set("Access-Control-Expose-Headers", "Connect-Protocol-Version, Connect-Timeout-Ms")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
