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
	reporting "orderdesk/internal/reporting/domain"
)

// StatementHandler serves statement generation and exports.
type StatementHandler struct {
	service     *application.StatementService
	display     application.DisplayConfig
	auditLogger audit.Logger
}

// NewStatementHandler constructs a handler.
func NewStatementHandler(service *application.StatementService, display application.DisplayConfig, auditLogger audit.Logger) (*StatementHandler, error) {
	if service == nil {
		return nil, errors.New("statement handler: nil service")
	}
	return &StatementHandler{service: service, display: display, auditLogger: auditLogger}, nil
}

// ServeHTTP handles statement routes under /api/v1/statements.
func (h *StatementHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Path
	if path == "/api/v1/statements/generate" && r.Method == http.MethodPost {
		h.handleGenerate(w, r)
		return
	}
	if path == "/api/v1/statements/export.pdf" && r.Method == http.MethodGet {
		h.handleExport(w, r, "pdf")
		return
	}
	if path == "/api/v1/statements/export.xlsx" && r.Method == http.MethodGet {
		h.handleExport(w, r, "xlsx")
		return
	}
	w.WriteHeader(http.StatusNotFound)
}

func (h *StatementHandler) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		StartDate  string `json:"start_date"`
		EndDate    string `json:"end_date"`
		CustomerID string `json:"customer_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}
	result, err := h.service.Generate(r.Context(), req.StartDate, req.EndDate, req.CustomerID)
	if err != nil {
		respondEngineError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(result)
	h.logAudit(r, "statement.generate", map[string]any{
		"start_date":  req.StartDate,
		"end_date":    req.EndDate,
		"customer_id": req.CustomerID,
		"orders":      result.TotalOrders,
	})
}

func (h *StatementHandler) handleExport(w http.ResponseWriter, r *http.Request, format string) {
	start := time.Now()
	observed := metrics.ResultSuccess
	defer func() {
		metrics.ObserveStatementExport(format, observed, time.Since(start))
	}()

	query := r.URL.Query()
	startDate := query.Get("start_date")
	endDate := query.Get("end_date")
	customerID := query.Get("customer_id")

	result, err := h.service.Generate(r.Context(), startDate, endDate, customerID)
	if err != nil {
		observed = metrics.ResultError
		respondEngineError(w, err)
		return
	}

	var data []byte
	var contentType string
	switch format {
	case "pdf":
		data, err = BuildStatementPDF(result, h.display.CurrencySymbol)
		contentType = "application/pdf"
	case "xlsx":
		data, err = BuildStatementXLSX(result)
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		observed = metrics.ResultError
		w.WriteHeader(http.StatusNotFound)
		return
	}
	if err != nil {
		observed = metrics.ResultError
		http.Error(w, "export error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
	h.logAudit(r, "statement.export", map[string]any{
		"format":      format,
		"start_date":  startDate,
		"end_date":    endDate,
		"customer_id": customerID,
	})
}

func (h *StatementHandler) logAudit(r *http.Request, action string, meta map[string]any) {
	if h.auditLogger == nil {
		return
	}
	payload, _ := json.Marshal(meta)
	_ = h.auditLogger.Log(r.Context(), audit.Entry{
		Actor:        auth.SubjectFromContext(r.Context()),
		Role:         string(auth.RoleFromContext(r.Context())),
		Action:       action,
		ResourceType: "statement",
		Metadata:     payload,
		IP:           audit.ClientIP(r),
		UserAgent:    r.UserAgent(),
	})
}

func respondEngineError(w http.ResponseWriter, err error) {
	if err == nil {
		return
	}
	if errors.Is(err, reporting.ErrInvalidDate) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if errors.Is(err, reporting.ErrDataIntegrity) {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	http.Error(w, "internal error", http.StatusInternalServerError)
}
