package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/shopspring/decimal"

	"orderdesk/m/domain"
	"orderdesk/m/internal/finance"
	"orderdesk/m/internal/usecase"
)

// Handler bundles dependencies for HTTP handlers.
type Handler struct {
	ledger *usecase.LedgerUseCase
}

// New constructs a Handler.
func New(ledger *usecase.LedgerUseCase) *Handler {
	return &Handler{ledger: ledger}
}

// Router wires up the HTTP API.
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	}))
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/health", h.health)

	r.Route("/orders", func(r chi.Router) {
		r.Post("/", h.createOrder)
		r.Get("/", h.orderHistory)
	})

	r.Route("/expenses", func(r chi.Router) {
		r.Post("/", h.createExpense)
		r.Get("/", h.listExpenses)
	})

	r.Route("/reports", func(r chi.Router) {
		r.Get("/daily", h.dailyReport)
		r.Get("/monthly", h.monthlyReport)
	})

	return r
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Orders

type orderRequest struct {
	Platform       domain.Platform       `json:"platform"`
	Reference      string                `json:"reference"`
	Amount         *decimal.Decimal      `json:"amount"`
	PaymentMethod  domain.PaymentMethod  `json:"paymentMethod"`
	DeliveryPerson domain.DeliveryPerson `json:"deliveryPerson"`
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	var req orderRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Amount == nil {
		respondError(w, http.StatusBadRequest, "amount is required")
		return
	}

	order, err := h.ledger.RegisterOrder(r.Context(), usecase.OrderInput{
		Platform:       req.Platform,
		Reference:      req.Reference,
		Amount:         *req.Amount,
		PaymentMethod:  req.PaymentMethod,
		DeliveryPerson: req.DeliveryPerson,
	})
	if err != nil {
		respondUseCaseError(w, err, "unable to register order")
		return
	}
	respondJSON(w, http.StatusCreated, newOrderResponse(order))
}

type historyResponse struct {
	Date            *string         `json:"date"`
	TotalOrders     int             `json:"total_orders"`
	DailyTotal      string          `json:"daily_total"`
	TotalCommission string          `json:"total_commission"`
	Orders          []orderResponse `json:"orders"`
}

// orderHistory lists the orders of ?date=YYYY-MM-DD, today by default, or of
// every day with ?date=all.
func (h *Handler) orderHistory(w http.ResponseWriter, r *http.Request) {
	day, ok := h.dayParam(w, r)
	if !ok {
		return
	}

	history, err := h.ledger.History(r.Context(), day)
	if err != nil {
		respondUseCaseError(w, err, "unable to fetch orders")
		return
	}

	resp := historyResponse{
		TotalOrders:     history.Count,
		DailyTotal:      money(history.DailyTotal),
		TotalCommission: money(history.TotalCommission),
		Orders:          newOrderResponses(history.Orders),
	}
	if day != nil {
		s := day.String()
		resp.Date = &s
	}
	respondJSON(w, http.StatusOK, resp)
}

// Expenses

type expenseRequest struct {
	Type    domain.ExpenseType `json:"type"`
	Concept string             `json:"concept"`
	Amount  *decimal.Decimal   `json:"amount"`
}

func (h *Handler) createExpense(w http.ResponseWriter, r *http.Request) {
	var req expenseRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Amount == nil {
		respondError(w, http.StatusBadRequest, "amount is required")
		return
	}

	expense, err := h.ledger.RegisterExpense(r.Context(), usecase.ExpenseInput{
		Type:    req.Type,
		Concept: req.Concept,
		Amount:  *req.Amount,
	})
	if err != nil {
		respondUseCaseError(w, err, "unable to register expense")
		return
	}
	respondJSON(w, http.StatusCreated, newExpenseResponse(expense))
}

type expenseListResponse struct {
	Year     int               `json:"year"`
	Month    int               `json:"month"`
	Total    string            `json:"total"`
	Expenses []expenseResponse `json:"expenses"`
}

func (h *Handler) listExpenses(w http.ResponseWriter, r *http.Request) {
	month, ok := h.monthParam(w, r)
	if !ok {
		return
	}

	result, err := h.ledger.Expenses(r.Context(), month)
	if err != nil {
		respondUseCaseError(w, err, "unable to fetch expenses")
		return
	}

	expenses := make([]expenseResponse, len(result.Expenses))
	for i, e := range result.Expenses {
		expenses[i] = newExpenseResponse(e)
	}
	respondJSON(w, http.StatusOK, expenseListResponse{
		Year:     month.Year,
		Month:    int(month.Month),
		Total:    money(result.Total),
		Expenses: expenses,
	})
}

// Reports

func (h *Handler) dailyReport(w http.ResponseWriter, r *http.Request) {
	day, ok := h.dayParam(w, r)
	if !ok {
		return
	}

	history, err := h.ledger.History(r.Context(), day)
	if err != nil {
		respondUseCaseError(w, err, "unable to fetch daily report")
		return
	}

	resp := map[string]any{
		"total_orders":     history.Count,
		"daily_total":      money(history.DailyTotal),
		"total_commission": money(history.TotalCommission),
	}
	if day != nil {
		resp["date"] = day.String()
	}
	respondJSON(w, http.StatusOK, resp)
}

type summaryResponse struct {
	TotalOrders       int    `json:"total_orders"`
	TotalRevenue      string `json:"total_revenue"`
	TotalCommissions  string `json:"total_commissions"`
	NetRevenue        string `json:"net_revenue"`
	AverageOrderValue string `json:"average_order_value"`
}

type platformResponse struct {
	Platform    domain.Platform `json:"platform"`
	Label       string          `json:"label"`
	Orders      int             `json:"orders"`
	Revenue     string          `json:"revenue"`
	Commissions string          `json:"commissions"`
	NetRevenue  string          `json:"net_revenue"`
}

type dayPointResponse struct {
	Day        string `json:"day"`
	NetRevenue string `json:"net_revenue"`
}

type dashboardResponse struct {
	Year          int                `json:"year"`
	Month         int                `json:"month"`
	MonthName     string             `json:"month_name"`
	Summary       summaryResponse    `json:"summary"`
	Platforms     []platformResponse `json:"platforms"`
	TotalExpenses string             `json:"total_expenses"`
	FinalProfit   string             `json:"final_profit"`
	DailySeries   []dayPointResponse `json:"daily_series"`
	Orders        []orderResponse    `json:"orders"`
}

func (h *Handler) monthlyReport(w http.ResponseWriter, r *http.Request) {
	month, ok := h.monthParam(w, r)
	if !ok {
		return
	}

	dash, err := h.ledger.Dashboard(r.Context(), month)
	if err != nil {
		respondUseCaseError(w, err, "unable to fetch monthly report")
		return
	}

	platforms := make([]platformResponse, 0, len(domain.Platforms))
	for _, p := range domain.Platforms {
		s := dash.Platforms[p]
		platforms = append(platforms, platformResponse{
			Platform:    p,
			Label:       p.Label(),
			Orders:      s.Orders,
			Revenue:     money(s.Revenue),
			Commissions: money(s.Commissions),
			NetRevenue:  money(s.NetRevenue),
		})
	}

	series := make([]dayPointResponse, len(dash.Series))
	for i, p := range dash.Series {
		series[i] = dayPointResponse{Day: p.Day.String(), NetRevenue: money(p.NetRevenue)}
	}

	respondJSON(w, http.StatusOK, dashboardResponse{
		Year:      month.Year,
		Month:     int(month.Month),
		MonthName: monthNames[month.Month-1],
		Summary: summaryResponse{
			TotalOrders:       dash.Summary.TotalOrders,
			TotalRevenue:      money(dash.Summary.TotalRevenue),
			TotalCommissions:  money(dash.Summary.TotalCommissions),
			NetRevenue:        money(dash.Summary.NetRevenue),
			AverageOrderValue: money(dash.Summary.AverageOrderValue),
		},
		Platforms:     platforms,
		TotalExpenses: money(dash.TotalExpenses),
		FinalProfit:   money(dash.FinalProfit),
		DailySeries:   series,
		Orders:        newOrderResponses(dash.Orders),
	})
}

var monthNames = [12]string{
	"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
}

// Helpers

// dayParam reads ?date=. An absent value means today and "all" means no filter.
func (h *Handler) dayParam(w http.ResponseWriter, r *http.Request) (*finance.Day, bool) {
	raw := strings.TrimSpace(r.URL.Query().Get("date"))
	switch raw {
	case "":
		today := h.ledger.Today()
		return &today, true
	case "all":
		return nil, true
	}
	day, err := finance.ParseDay(raw)
	if err != nil {
		respondError(w, http.StatusBadRequest, "date must be in YYYY-MM-DD format")
		return nil, false
	}
	return &day, true
}

// monthParam reads ?year= and ?month= (1-12), defaulting to the current month.
func (h *Handler) monthParam(w http.ResponseWriter, r *http.Request) (finance.Month, bool) {
	current := h.ledger.CurrentMonth()
	year, month := current.Year, int(current.Month)

	if raw := strings.TrimSpace(r.URL.Query().Get("year")); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid year")
			return finance.Month{}, false
		}
		year = v
	}
	if raw := strings.TrimSpace(r.URL.Query().Get("month")); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid month")
			return finance.Month{}, false
		}
		month = v
	}

	m, err := finance.NewMonth(year, month)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return finance.Month{}, false
	}
	return m, true
}

func respondUseCaseError(w http.ResponseWriter, err error, message string) {
	if errors.Is(err, usecase.ErrInvalidInput) {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	log.Printf("%s: %v", message, err)
	respondError(w, http.StatusInternalServerError, message)
}

func decodeJSON(r *http.Request, dest interface{}) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(dest)
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	_ = encoder.Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
