package expensehandler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"financeflow/internal/domain/expense"
	"financeflow/internal/transport/http/api"
	"financeflow/internal/transport/http/middleware"
	"financeflow/internal/transport/http/shared"
)

const guestWarning = "guest mode: data will not be saved between sessions"

type Handler struct {
	Store expense.StoreAPI
}

func NewHandler(store expense.StoreAPI) *Handler {
	return &Handler{Store: store}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/expenses", func(r chi.Router) {
		r.Use(middleware.RequireSession)
		r.Get("/", h.handleGet)
		r.Put("/", h.handlePut)
		r.Get("/summary", h.handleSummary)
	})
}

type entryPayload struct {
	Category string  `json:"category"`
	Item     string  `json:"item"`
	Amount   float64 `json:"amount"`
}

type putRequest struct {
	Entries []entryPayload `json:"entries"`
}

// loadLedger resolves the ledger for the current session. Guests always get
// an empty ledger since nothing is stored for them.
func (h *Handler) loadLedger(r *http.Request) (*expense.Ledger, error) {
	session, _ := middleware.GetSession(r.Context())
	userID, ok := session.UserID()
	if !ok {
		return expense.NewLedger(), nil
	}
	entries, err := h.Store.LoadExpenses(r.Context(), userID)
	if err != nil {
		return nil, err
	}
	return expense.FromMap(entries), nil
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	ledger, err := h.loadLedger(r)
	if err != nil {
		slog.Error("load expenses failed", "err", err, "requestId", middleware.GetRequestID(r.Context()))
		api.Fail(w, http.StatusServiceUnavailable, "persistence_unavailable", "failed to load expenses", middleware.GetRequestID(r.Context()))
		return
	}

	session, _ := middleware.GetSession(r.Context())
	data := map[string]any{
		"catalog": expense.DefaultCatalog(),
		"entries": ledger.Entries(),
	}
	if session.IsGuest() {
		data["warning"] = guestWarning
	}
	api.Success(w, data, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handlePut(w http.ResponseWriter, r *http.Request) {
	var payload putRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	validator := shared.NewValidator()
	for i, entry := range payload.Entries {
		validator.Required(fmt.Sprintf("entries[%d].category", i), entry.Category, "category is required")
		validator.Required(fmt.Sprintf("entries[%d].item", i), entry.Item, "item is required")
		validator.NonNegative(fmt.Sprintf("entries[%d].amount", i), entry.Amount)
	}
	if validator.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	ledger := expense.NewLedger()
	for _, entry := range payload.Entries {
		ledger.Record(entry.Category, entry.Item, entry.Amount)
	}

	data := map[string]any{
		"totals":    ledger.Totals(),
		"persisted": false,
	}

	session, _ := middleware.GetSession(r.Context())
	if userID, ok := session.UserID(); ok {
		if err := h.Store.SaveExpenses(r.Context(), userID, ledger.Map()); err != nil {
			slog.Warn("save expenses failed", "err", err, "userId", userID, "requestId", middleware.GetRequestID(r.Context()))
			data["warning"] = "expenses could not be saved; changes are at risk of being lost"
		} else {
			data["persisted"] = true
		}
	} else {
		data["warning"] = guestWarning
	}

	api.Success(w, data, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleSummary(w http.ResponseWriter, r *http.Request) {
	ledger, err := h.loadLedger(r)
	if err != nil {
		slog.Error("load expenses failed", "err", err, "requestId", middleware.GetRequestID(r.Context()))
		api.Fail(w, http.StatusServiceUnavailable, "persistence_unavailable", "failed to load expenses", middleware.GetRequestID(r.Context()))
		return
	}

	api.Success(w, map[string]any{
		"totals":      ledger.Totals(),
		"proportions": ledger.Proportions(),
	}, middleware.GetRequestID(r.Context()))
}
