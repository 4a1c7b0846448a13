package metrics

import (
	"database/sql"
	"log"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	metricPrefix = "orderdesk_"

	resultSuccess = "success"
	resultError   = "error"
)

// Exported result labels for observation helpers.
const (
	ResultSuccess = resultSuccess
	ResultError   = resultError
)

var (
	registerOnce sync.Once

	statementGenerateTotal   *prometheus.CounterVec
	statementGenerateLatency *prometheus.HistogramVec
	statementExportTotal     *prometheus.CounterVec
	statementExportLatency   *prometheus.HistogramVec

	dailyReportTotal         *prometheus.CounterVec
	dailyReportLatency       *prometheus.HistogramVec
	dailyReportExportTotal   *prometheus.CounterVec
	dailyReportExportLatency *prometheus.HistogramVec
)

// Init registers observability metrics and DB-backed gauges.
func Init(db *sql.DB, logger *log.Logger) {
	registerOnce.Do(func() {
		statementGenerateTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "statement_generate_total",
				Help: "Total statement generate operations by result",
			},
			[]string{"result"},
		)
		statementGenerateLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "statement_generate_latency_seconds",
				Help:    "Statement generate latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"result"},
		)
		statementExportTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "statement_export_total",
				Help: "Total statement export operations by format and result",
			},
			[]string{"format", "result"},
		)
		statementExportLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "statement_export_latency_seconds",
				Help:    "Statement export latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"format", "result"},
		)

		dailyReportTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "daily_report_total",
				Help: "Total daily report generations by result",
			},
			[]string{"result"},
		)
		dailyReportLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "daily_report_latency_seconds",
				Help:    "Daily report latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"result"},
		)
		dailyReportExportTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "daily_report_export_total",
				Help: "Total daily report export operations by format and result",
			},
			[]string{"format", "result"},
		)
		dailyReportExportLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "daily_report_export_latency_seconds",
				Help:    "Daily report export latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"format", "result"},
		)

		prometheus.MustRegister(
			statementGenerateTotal,
			statementGenerateLatency,
			statementExportTotal,
			statementExportLatency,
			dailyReportTotal,
			dailyReportLatency,
			dailyReportExportTotal,
			dailyReportExportLatency,
		)

		if db != nil {
			registerDBMetrics(db, logger)
		}
	})
}

// ObserveStatementGenerate records statement generation duration and result.
func ObserveStatementGenerate(result string, duration time.Duration) {
	if result == "" {
		result = resultSuccess
	}
	if statementGenerateTotal != nil {
		statementGenerateTotal.WithLabelValues(result).Inc()
	}
	if statementGenerateLatency != nil {
		statementGenerateLatency.WithLabelValues(result).Observe(duration.Seconds())
	}
}

// ObserveStatementExport records statement export duration by format.
func ObserveStatementExport(format, result string, duration time.Duration) {
	if result == "" {
		result = resultSuccess
	}
	if statementExportTotal != nil {
		statementExportTotal.WithLabelValues(format, result).Inc()
	}
	if statementExportLatency != nil {
		statementExportLatency.WithLabelValues(format, result).Observe(duration.Seconds())
	}
}

// ObserveDailyReport records daily report generation duration and result.
func ObserveDailyReport(result string, duration time.Duration) {
	if result == "" {
		result = resultSuccess
	}
	if dailyReportTotal != nil {
		dailyReportTotal.WithLabelValues(result).Inc()
	}
	if dailyReportLatency != nil {
		dailyReportLatency.WithLabelValues(result).Observe(duration.Seconds())
	}
}

// ObserveDailyReportExport records daily report export duration by format.
func ObserveDailyReportExport(format, result string, duration time.Duration) {
	if result == "" {
		result = resultSuccess
	}
	if dailyReportExportTotal != nil {
		dailyReportExportTotal.WithLabelValues(format, result).Inc()
	}
	if dailyReportExportLatency != nil {
		dailyReportExportLatency.WithLabelValues(format, result).Observe(duration.Seconds())
	}
}

func registerDBMetrics(db *sql.DB, logger *log.Logger) {
	prometheus.MustRegister(prometheus.NewGaugeFunc(
		prometheus.GaugeOpts{
			Name: metricPrefix + "orders_total",
			Help: "Order records visible to the reporting engine",
		},
		func() float64 {
			return queryCount(db, logger, "SELECT COUNT(*) FROM orders")
		},
	))

	prometheus.MustRegister(prometheus.NewGaugeFunc(
		prometheus.GaugeOpts{
			Name: metricPrefix + "db_open_connections",
			Help: "Open database connections",
		},
		func() float64 {
			if db == nil {
				return 0
			}
			return float64(db.Stats().OpenConnections)
		},
	))
}

func queryCount(db *sql.DB, logger *log.Logger, query string) float64 {
	if db == nil {
		return 0
	}
	var count int64
	if err := db.QueryRow(query).Scan(&count); err != nil {
		if logger != nil {
			logger.Printf("metrics query failed: %v", err)
		}
		return 0
	}
	if count < 0 {
		return 0
	}
	return float64(count)
}
