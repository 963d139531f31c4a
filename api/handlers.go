/*
handlers.go - HTTP API handlers for the staff registry

PURPOSE:
  Exposes the staff registry via REST API. Handles HTTP request/response
  and JSON serialization, and delegates every decision to the staff
  package. No validation rule lives here.

ENDPOINTS:
  Views:
    GET    /api/staff                          Summary (terminated hidden)
    GET    /api/staff/export                   Export text (all records)
    POST   /api/staff/export                   Write the export file
    GET    /api/staff/{index}                  Record at insertion index
    GET    /api/staff/vacancy/{number}         Record holding a vacancy
    GET    /api/staff/search?vacancy=&name=    First match

  Hiring:
    POST   /api/staff/full-time                Add full-time staff
    POST   /api/staff/part-time                Add part-time staff
    POST   /api/roster                         Import a YAML roster

  Mutations:
    PUT    /api/staff/vacancy/{number}/salary
    PUT    /api/staff/vacancy/{number}/weekly-hours
    PUT    /api/staff/vacancy/{number}/shift
    POST   /api/staff/vacancy/{number}/terminate

CONCURRENCY:
  staff.Registry is single-threaded. Handler serializes access with an
  RWMutex: views take the read lock, hiring and mutations the write lock.

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Malformed body, rejected form field
  - 404: No record for the index, vacancy or variant
  - 409: Duplicate vacancy, state gate refused the change
  - 500: Export file could not be written

SEE ALSO:
  - dto.go: Request/response data structures
  - server.go: Router setup and middleware
*/
package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"sync"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/warp/staff-registry/export"
	"github.com/warp/staff-registry/factory"
	"github.com/warp/staff-registry/staff"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	mu       sync.RWMutex
	registry *staff.Registry

	Exporter   *export.Writer
	Roster     *factory.RosterFactory
	ExportPath string

	logger *zap.Logger
}

// NewHandler creates a handler serving reg. A nil logger discards output.
func NewHandler(reg *staff.Registry, exportPath string, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if exportPath == "" {
		exportPath = export.DefaultFile
	}
	return &Handler{
		registry:   reg,
		Exporter:   export.NewWriter(logger),
		Roster:     factory.NewRosterFactory(logger),
		ExportPath: exportPath,
		logger:     logger,
	}
}

// =============================================================================
// VIEW HANDLERS
// =============================================================================

// Summary returns every non-terminated record.
func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	records := []StaffDTO{}
	for _, s := range h.registry.All() {
		if staff.IsTerminated(s) {
			continue
		}
		records = append(records, toStaffDTO(s))
	}

	writeJSON(w, http.StatusOK, SummaryResponse{
		Count:   len(records),
		Records: records,
		Text:    export.Summary(h.registry.Summary()),
	})
}

// ExportText returns the export document as plain text.
func (h *Handler) ExportText(w http.ResponseWriter, r *http.Request) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if err := export.WriteTo(w, h.registry.ExportAll()); err != nil {
		h.logger.Warn("export stream interrupted", zap.Error(err))
	}
}

// ExportFile writes the export document to the configured path.
func (h *Handler) ExportFile(w http.ResponseWriter, r *http.Request) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	path, err := h.Exporter.WriteFile(h.ExportPath, h.registry.ExportAll())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to write export file", err)
		return
	}
	writeJSON(w, http.StatusOK, ExportResponse{Path: path, Records: h.registry.Len()})
}

// GetByIndex returns the record at an insertion index.
func (h *Handler) GetByIndex(w http.ResponseWriter, r *http.Request) {
	i, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Index must be an integer", err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	s, err := h.registry.FindByIndex(i)
	if err != nil {
		writeError(w, http.StatusNotFound, "Invalid index.", err)
		return
	}
	writeJSON(w, http.StatusOK, toStaffDTO(s))
}

// GetByVacancy returns the first record holding a vacancy number.
func (h *Handler) GetByVacancy(w http.ResponseWriter, r *http.Request) {
	n, ok := vacancyParam(w, r)
	if !ok {
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	s, found := h.registry.FindByVacancyNumber(n)
	if !found {
		writeError(w, http.StatusNotFound, "Staff not found", staff.ErrNotFound)
		return
	}
	writeJSON(w, http.StatusOK, toStaffDTO(s))
}

// Search returns the first record matching the vacancy or name query.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	h.mu.RLock()
	defer h.mu.RUnlock()

	s, found := h.registry.Search(q.Get("vacancy"), q.Get("name"))
	if !found {
		writeError(w, http.StatusNotFound, "Staff not found.", staff.ErrNotFound)
		return
	}
	writeJSON(w, http.StatusOK, toStaffDTO(s))
}

// =============================================================================
// HIRING HANDLERS
// =============================================================================

// CreateFullTime adds full-time staff.
func (h *Handler) CreateFullTime(w http.ResponseWriter, r *http.Request) {
	var req CreateFullTimeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	f, err := h.registry.AddFullTime(req.form())
	if err != nil {
		h.writeRejection(w, err)
		return
	}
	h.logger.Info("full-time staff added", zap.Int("vacancy_number", f.VacancyNumber))
	writeJSON(w, http.StatusCreated, toStaffDTO(f))
}

// CreatePartTime adds part-time staff.
func (h *Handler) CreatePartTime(w http.ResponseWriter, r *http.Request) {
	var req CreatePartTimeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	p, err := h.registry.AddPartTime(req.form())
	if err != nil {
		h.writeRejection(w, err)
		return
	}
	h.logger.Info("part-time staff added", zap.Int("vacancy_number", p.VacancyNumber))
	writeJSON(w, http.StatusCreated, toStaffDTO(p))
}

// ImportRoster loads a YAML roster from the request body.
func (h *Handler) ImportRoster(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Failed to read request body", err)
		return
	}
	roster, err := h.Roster.Parse(data)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid roster", err)
		return
	}

	h.mu.Lock()
	report := h.Roster.Load(h.registry, roster)
	h.mu.Unlock()

	resp := RosterResponse{Added: report.Added, Rejected: []RosterRejectionDTO{}}
	for _, rej := range report.Rejected {
		resp.Rejected = append(resp.Rejected, RosterRejectionDTO{
			Index:         rej.Index,
			VacancyNumber: rej.VacancyNumber,
			Error:         rej.Err.Error(),
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

// =============================================================================
// MUTATION HANDLERS
// =============================================================================

// SetSalary updates the salary of joined full-time staff.
func (h *Handler) SetSalary(w http.ResponseWriter, r *http.Request) {
	n, ok := vacancyParam(w, r)
	if !ok {
		return
	}
	var req SetSalaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	salary, err := staff.ParseAmount(staff.FieldSalary, string(req.Salary))
	if err != nil {
		h.writeRejection(w, err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.writeResult(w, n, h.registry.SetSalary(n, salary))
}

// SetWeeklyHours updates the weekly hours of joined full-time staff.
func (h *Handler) SetWeeklyHours(w http.ResponseWriter, r *http.Request) {
	n, ok := vacancyParam(w, r)
	if !ok {
		return
	}
	var req SetWeeklyHoursRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	hours, err := staff.ParseCount(staff.FieldWeeklyHours, string(req.WeeklyHours))
	if err != nil {
		h.writeRejection(w, err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.writeResult(w, n, h.registry.SetWeeklyHours(n, hours))
}

// SetShift updates the shift of joined part-time staff.
func (h *Handler) SetShift(w http.ResponseWriter, r *http.Request) {
	n, ok := vacancyParam(w, r)
	if !ok {
		return
	}
	var req SetShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.writeResult(w, n, h.registry.SetShift(n, req.Shift))
}

// Terminate retires part-time staff and frees the vacancy number.
func (h *Handler) Terminate(w http.ResponseWriter, r *http.Request) {
	n, ok := vacancyParam(w, r)
	if !ok {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.writeResult(w, n, h.registry.Terminate(n))
}

// =============================================================================
// HELPERS
// =============================================================================

func vacancyParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	n, err := staff.ParseVacancyNumber(chi.URLParam(r, "number"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), err)
		return 0, false
	}
	return n, true
}

// writeResult maps a mutation outcome to a response. Callers hold the
// write lock, so the target renders the state the mutation produced.
func (h *Handler) writeResult(w http.ResponseWriter, n int, res staff.Result) {
	resp := MutationResponse{Status: string(res.Status), Message: res.Message}

	status := http.StatusOK
	switch res.Status {
	case staff.StatusRejected:
		status = http.StatusConflict
	case staff.StatusNotFound:
		status = http.StatusNotFound
	}

	if res.Applied() {
		h.logger.Info("staff updated", zap.Int("vacancy_number", n), zap.String("message", res.Message))
	}
	if res.Target != nil {
		dto := toStaffDTO(res.Target)
		resp.Staff = &dto
	}
	writeJSON(w, status, resp)
}

// writeRejection maps a staff.RejectError to 400, or 409 for duplicates.
func (h *Handler) writeRejection(w http.ResponseWriter, err error) {
	var rej *staff.RejectError
	if !errors.As(err, &rej) {
		writeError(w, http.StatusInternalServerError, "Unexpected error", err)
		return
	}

	status := http.StatusBadRequest
	if errors.Is(err, staff.ErrDuplicateVacancy) {
		status = http.StatusConflict
	}
	h.logger.Debug("form rejected", zap.String("reason", string(rej.Reason)), zap.String("field", string(rej.Field)))
	writeJSON(w, status, ErrorResponse{
		Error: rej.Error(),
		Code:  string(rej.Reason),
		Field: string(rej.Field),
	})
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
