package order

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"ordering-service/internal/common/httpx"
	"ordering-service/internal/common/metrics"
	"ordering-service/internal/connections/rabbitmq"
	"ordering-service/internal/microservices/order/handlers"
	"ordering-service/internal/microservices/order/publisher"
	"ordering-service/internal/microservices/order/repository"
	"ordering-service/internal/microservices/order/service"
)

// Run wires the order service and serves HTTP until the context is canceled.
func Run(ctx context.Context, port int, pool *pgxpool.Pool, rmq *rabbitmq.Client, logger *zap.Logger) error {
	if err := rmq.DeclareTopology(); err != nil {
		return err
	}

	repo := repository.New(pool)
	pub := publisher.New(rmq)
	svc := service.New(repo, pub, logger)
	handler := handlers.New(svc, logger)
	srvMetrics := metrics.NewServerMetrics("order_service")

	mux := http.NewServeMux()
	mux.Handle("POST /orders", instrument(srvMetrics, "create_order", http.HandlerFunc(handler.OrderHandler.CreateOrder)))
	mux.Handle("GET /metrics", metrics.Handler())
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		if err := pool.Ping(r.Context()); err != nil {
			http.Error(w, "database unreachable", http.StatusServiceUnavailable)
			return
		}
		if err := rmq.Ping(); err != nil {
			http.Error(w, "rabbitmq unreachable", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	})

	logger.Info("order service listening", zap.Int("port", port))
	srv := httpx.New(":"+strconv.Itoa(port), mux)
	return srv.Run(ctx)
}

func instrument(m *metrics.ServerMetrics, name string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r)
		m.Requests.WithLabelValues(name, strconv.Itoa(sw.status)).Inc()
		m.LatencyMS.WithLabelValues(name).Observe(float64(time.Since(start).Milliseconds()))
	})
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}
