package payrollhandler

import (
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"financeflow/internal/domain/auth"
	"financeflow/internal/domain/payroll"
	"financeflow/internal/transport/http/middleware"
)

const testSecret = "test-secret"

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	h := NewHandler(payroll.NewEngine(payroll.DefaultParams()), 80000, 7000)
	r := chi.NewRouter()
	r.Use(middleware.Auth(testSecret))
	r.Route("/api/v1", func(r chi.Router) {
		h.RegisterRoutes(r)
	})
	return r
}

func bearerToken(t *testing.T) string {
	t.Helper()
	token, err := auth.GenerateToken(testSecret, auth.NewGuestSession(), time.Hour)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	return token
}

func doCalculate(t *testing.T, router http.Handler, body, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/payroll/calculate", strings.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandleCalculate(t *testing.T) {
	router := newTestRouter(t)
	body := `{"annualSalary":100000,"contribution401k":0,"rothIraContribution":0,"livingExpenses":30000,"state":"Texas","includePayrollTax":false}`

	rec := doCalculate(t, router, body, bearerToken(t))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var envelope struct {
		Success bool `json:"success"`
		Data    struct {
			Year  int `json:"year"`
			Taxes struct {
				FederalTax float64 `json:"federalTax"`
				StateTax   float64 `json:"stateTax"`
				TotalTax   float64 `json:"totalTax"`
			} `json:"taxes"`
			Breakdown []payroll.CategoryBreakdown `json:"breakdown"`
			Schedule  []payroll.ScheduleRow       `json:"schedule"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !envelope.Success {
		t.Fatal("expected success envelope")
	}
	if envelope.Data.Year != 2025 {
		t.Fatalf("expected tax year 2025, got %d", envelope.Data.Year)
	}

	// 100k salary less the 15k standard deduction walked through the
	// 2025 brackets: 1192.50 + 4386 + 8035.50.
	if math.Abs(envelope.Data.Taxes.FederalTax-13614) > 0.01 {
		t.Fatalf("expected federal tax 13614, got %v", envelope.Data.Taxes.FederalTax)
	}
	if envelope.Data.Taxes.StateTax != 0 {
		t.Fatalf("expected zero state tax for Texas, got %v", envelope.Data.Taxes.StateTax)
	}
	if got := len(envelope.Data.Schedule); got != 23 {
		t.Fatalf("expected 23 pay periods, got %d", got)
	}
	if got := len(envelope.Data.Breakdown); got != len(payroll.BreakdownCategories) {
		t.Fatalf("expected %d breakdown rows, got %d", len(payroll.BreakdownCategories), got)
	}
}

func TestHandleCalculateValidation(t *testing.T) {
	router := newTestRouter(t)
	token := bearerToken(t)

	cases := []struct {
		name string
		body string
	}{
		{name: "salary below minimum", body: `{"annualSalary":50000,"state":"Texas"}`},
		{name: "negative 401k", body: `{"annualSalary":100000,"contribution401k":-1,"state":"Texas"}`},
		{name: "roth above limit", body: `{"annualSalary":100000,"rothIraContribution":8000,"state":"Texas"}`},
		{name: "401k above salary", body: `{"annualSalary":100000,"contribution401k":120000,"state":"Texas"}`},
		{name: "missing state", body: `{"annualSalary":100000}`},
		{name: "unknown state", body: `{"annualSalary":100000,"state":"Atlantis"}`},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			rec := doCalculate(t, router, tc.body, token)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
			}
		})
	}
}

func TestHandleCalculateRequiresSession(t *testing.T) {
	router := newTestRouter(t)

	rec := doCalculate(t, router, `{"annualSalary":100000,"state":"Texas"}`, "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestHandleSchedulePDF(t *testing.T) {
	router := newTestRouter(t)
	body := `{"annualSalary":100000,"livingExpenses":30000,"state":"Texas","includePayrollTax":true}`

	req := httptest.NewRequest(http.MethodPost, "/api/v1/payroll/schedule/pdf", strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+bearerToken(t))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if got := rec.Header().Get("Content-Type"); got != "application/pdf" {
		t.Fatalf("expected application/pdf, got %q", got)
	}
	if !strings.HasPrefix(rec.Body.String(), "%PDF") {
		t.Fatal("expected a PDF document body")
	}
}

func TestHandleCalculateNormalizesStateCase(t *testing.T) {
	params := payroll.DefaultParams()
	params.StateRates["California"] = 0.05
	h := NewHandler(payroll.NewEngine(params), 80000, 7000)
	router := chi.NewRouter()
	router.Use(middleware.Auth(testSecret))
	router.Route("/api/v1", func(r chi.Router) {
		h.RegisterRoutes(r)
	})

	rec := doCalculate(t, router, `{"annualSalary":100000,"state":"california"}`, bearerToken(t))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var envelope struct {
		Data struct {
			Taxes struct {
				StateTax float64 `json:"stateTax"`
			} `json:"taxes"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	// Taxable 85000 at the configured 5% rate; the lowercase input must
	// resolve to the same rate as the canonical spelling.
	if math.Abs(envelope.Data.Taxes.StateTax-4250) > 0.01 {
		t.Fatalf("expected state tax 4250, got %v", envelope.Data.Taxes.StateTax)
	}
}
