package main

import (
	"database/sql"
	"log"
	"net/http"
	"os"
	"time"

	"orderdesk/internal/audit"
	"orderdesk/internal/auth"
	directorypostgres "orderdesk/internal/directory/infrastructure/postgres"
	"orderdesk/internal/observability/metrics"
	orderspostgres "orderdesk/internal/orders/infrastructure/postgres"
	"orderdesk/internal/reporting/application"
	reportinginterfaces "orderdesk/internal/reporting/interfaces"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg := loadConfig()
	logger := log.New(os.Stdout, "", log.LstdFlags)

	db, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		logger.Fatalf("db open error: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Fatalf("db ping error: %v", err)
	}

	metrics.Init(db, logger)
	auditRepo := audit.NewRepository(db)

	display, err := application.LoadDisplayConfig()
	if err != nil {
		logger.Fatalf("display config error: %v", err)
	}

	orderRepo := orderspostgres.NewOrderRepository(db)
	customerRepo := directorypostgres.NewCustomerRepository(db)
	productRepo := directorypostgres.NewProductRepository(db)

	statementService, err := application.NewStatementService(orderRepo, customerRepo)
	if err != nil {
		logger.Fatalf("statement service error: %v", err)
	}
	statementHandler, err := reportinginterfaces.NewStatementHandler(statementService, display, auditRepo)
	if err != nil {
		logger.Fatalf("statement handler error: %v", err)
	}

	reportService, err := application.NewDailyReportService(orderRepo, productRepo, display)
	if err != nil {
		logger.Fatalf("daily report service error: %v", err)
	}
	reportHandler, err := reportinginterfaces.NewDailyReportHandler(reportService, display, auditRepo)
	if err != nil {
		logger.Fatalf("daily report handler error: %v", err)
	}

	policy := auth.NewDefaultPolicy([]string{"/healthz", "/metrics"}, nil)
	authMiddleware := auth.NewMiddleware([]byte(cfg.JWTSecret), policy)

	mux := http.NewServeMux()
	mux.Handle("/api/v1/statements/generate", statementHandler)
	mux.Handle("/api/v1/statements/export.pdf", statementHandler)
	mux.Handle("/api/v1/statements/export.xlsx", statementHandler)
	mux.Handle("/api/v1/reports/daily", reportHandler)
	mux.Handle("/api/v1/reports/daily/export.xlsx", reportHandler)
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	server := &http.Server{Addr: cfg.HTTPAddr, Handler: loggingMiddleware(authMiddleware.Wrap(mux), logger)}
	logger.Printf("http listening on %s", cfg.HTTPAddr)
	logger.Fatal(server.ListenAndServe())
}

type config struct {
	DatabaseURL string
	HTTPAddr    string
	JWTSecret   string
}

func loadConfig() config {
	cfg := config{
		DatabaseURL: getenvDefault("DATABASE_URL", getenvDefault("PG_DSN", "")),
		HTTPAddr:    getenvDefault("HTTP_ADDR", ":8080"),
		JWTSecret:   getenvDefault("AUTH_JWT_SECRET", getenvDefault("JWT_SECRET", "")),
	}
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL or PG_DSN is required")
	}
	if cfg.JWTSecret == "" {
		log.Fatal("AUTH_JWT_SECRET is required")
	}
	return cfg
}

func getenvDefault(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

func loggingMiddleware(next http.Handler, logger *log.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		resp := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(resp, r)
		logger.Printf("http %s %s %d %s", r.Method, r.URL.Path, resp.status, time.Since(start))
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
