package payrollhandler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"financeflow/internal/domain/payroll"
	"financeflow/internal/transport/http/api"
	"financeflow/internal/transport/http/middleware"
	"financeflow/internal/transport/http/shared"
)

type Handler struct {
	Engine          *payroll.Engine
	MinAnnualSalary float64
	RothIRALimit    float64
}

func NewHandler(engine *payroll.Engine, minAnnualSalary, rothIRALimit float64) *Handler {
	return &Handler{
		Engine:          engine,
		MinAnnualSalary: minAnnualSalary,
		RothIRALimit:    rothIRALimit,
	}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/payroll", func(r chi.Router) {
		r.Use(middleware.RequireSession)
		r.Post("/calculate", h.handleCalculate)
		r.Post("/schedule/pdf", h.handleSchedulePDF)
	})
}

func (h *Handler) decodeInput(w http.ResponseWriter, r *http.Request) (payroll.Input, bool) {
	var input payroll.Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return payroll.Input{}, false
	}

	validator := shared.NewValidator()
	validator.Min("annualSalary", input.AnnualSalary, h.MinAnnualSalary)
	validator.NonNegative("contribution401k", input.Contribution401k)
	validator.NonNegative("rothIraContribution", input.RothIRAContribution)
	validator.Max("rothIraContribution", input.RothIRAContribution, h.RothIRALimit)
	validator.NonNegative("livingExpenses", input.LivingExpenses)
	validator.Required("state", input.State, "state is required")
	validator.Enum("state", input.State, payroll.States, "unknown state")
	if input.Contribution401k > input.AnnualSalary {
		validator.Add("contribution401k", "cannot exceed annual salary")
	}
	if validator.Reject(w, middleware.GetRequestID(r.Context())) {
		return payroll.Input{}, false
	}
	if canonical, ok := payroll.CanonicalState(input.State); ok {
		input.State = canonical
	}
	return input, true
}

func (h *Handler) handleCalculate(w http.ResponseWriter, r *http.Request) {
	input, ok := h.decodeInput(w, r)
	if !ok {
		return
	}

	taxes := h.Engine.Compute(input)
	api.Success(w, map[string]any{
		"year":         h.Engine.Params().Year,
		"taxes":        taxes,
		"payrollTaxes": h.Engine.PayrollTaxes(input),
		"breakdown":    payroll.BuildBreakdown(input, taxes),
		"schedule":     h.Engine.Schedule(input, taxes),
	}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleSchedulePDF(w http.ResponseWriter, r *http.Request) {
	input, ok := h.decodeInput(w, r)
	if !ok {
		return
	}

	taxes := h.Engine.Compute(input)
	rows := h.Engine.Schedule(input, taxes)
	breakdown := payroll.BuildBreakdown(input, taxes)

	// Render to a buffer first so a generation failure never leaves a
	// half-written PDF body behind.
	var buf bytes.Buffer
	if err := payroll.RenderSchedulePDF(&buf, h.Engine.Params().Year, rows, breakdown); err != nil {
		api.Fail(w, http.StatusInternalServerError, "pdf_error", "failed to generate schedule pdf", middleware.GetRequestID(r.Context()))
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="pay_schedule_%d.pdf"`, h.Engine.Params().Year))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}
