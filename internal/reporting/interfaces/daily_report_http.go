package interfaces

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"orderdesk/internal/audit"
	"orderdesk/internal/auth"
	"orderdesk/internal/observability/metrics"
	"orderdesk/internal/reporting/application"
)

// DailyReportHandler serves the single-day full report and its export.
type DailyReportHandler struct {
	service     *application.DailyReportService
	display     application.DisplayConfig
	auditLogger audit.Logger
}

// NewDailyReportHandler constructs a handler.
func NewDailyReportHandler(service *application.DailyReportService, display application.DisplayConfig, auditLogger audit.Logger) (*DailyReportHandler, error) {
	if service == nil {
		return nil, errors.New("daily report handler: nil service")
	}
	return &DailyReportHandler{service: service, display: display, auditLogger: auditLogger}, nil
}

// ServeHTTP handles report routes under /api/v1/reports/daily.
func (h *DailyReportHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Path
	if path == "/api/v1/reports/daily" && r.Method == http.MethodGet {
		h.handleGet(w, r)
		return
	}
	if path == "/api/v1/reports/daily/export.xlsx" && r.Method == http.MethodGet {
		h.handleExportXLSX(w, r)
		return
	}
	w.WriteHeader(http.StatusNotFound)
}

func (h *DailyReportHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	report, err := h.service.Generate(r.Context(), date)
	if err != nil {
		respondEngineError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(report)
}

func (h *DailyReportHandler) handleExportXLSX(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	observed := metrics.ResultSuccess
	defer func() {
		metrics.ObserveDailyReportExport("xlsx", observed, time.Since(start))
	}()

	date := r.URL.Query().Get("date")
	report, err := h.service.Generate(r.Context(), date)
	if err != nil {
		observed = metrics.ResultError
		respondEngineError(w, err)
		return
	}
	data, err := BuildDailyReportXLSX(report, h.display.CurrencySymbol)
	if err != nil {
		observed = metrics.ResultError
		http.Error(w, "export error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
	if h.auditLogger != nil {
		payload, _ := json.Marshal(map[string]any{"format": "xlsx", "date": date})
		_ = h.auditLogger.Log(r.Context(), audit.Entry{
			Actor:        auth.SubjectFromContext(r.Context()),
			Role:         string(auth.RoleFromContext(r.Context())),
			Action:       "report.export",
			ResourceType: "daily-report",
			ResourceID:   date,
			Metadata:     payload,
			IP:           audit.ClientIP(r),
			UserAgent:    r.UserAgent(),
		})
	}
}
