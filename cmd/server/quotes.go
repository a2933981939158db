package main

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/amirhostwordpress/OnlineQuotationLUX-sub000/internal/quote"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// handleQuoteCalc is the live-preview endpoint: it recomputes the breakdown
// from scratch on every call and persists nothing.
func (s *server) handleQuoteCalc(w http.ResponseWriter, r *http.Request) {
	var cfg quote.QuoteConfiguration
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		writeError(w, http.StatusBadRequest, "invalid quote configuration")
		return
	}

	breakdown, err := quote.Calculate(r.Context(), &cfg, s.currentRates(), s.catalog)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid quote configuration")
		return
	}

	writeJSON(w, http.StatusOK, breakdown)
}

type storedQuote struct {
	Reference  string          `json:"reference"`
	CreatedAt  string          `json:"createdAt,omitempty"`
	GrandTotal float64         `json:"grandTotal"`
	Breakdown  quote.Breakdown `json:"breakdown"`
}

// handleQuoteCreate calculates once more at submission time and stores the
// configuration and breakdown as opaque JSON snapshots. Downstream consumers
// (summary screen, PDF, email) only format the snapshot, never reshape it.
func (s *server) handleQuoteCreate(w http.ResponseWriter, r *http.Request) {
	var cfg quote.QuoteConfiguration
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		writeError(w, http.StatusBadRequest, "invalid quote configuration")
		return
	}

	breakdown, err := quote.Calculate(r.Context(), &cfg, s.currentRates(), s.catalog)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid quote configuration")
		return
	}

	configJSON, err := json.Marshal(cfg)
	if err != nil {
		http.Error(w, "failed to store quote", http.StatusInternalServerError)
		return
	}
	breakdownJSON, err := json.Marshal(breakdown)
	if err != nil {
		http.Error(w, "failed to store quote", http.StatusInternalServerError)
		return
	}

	reference := newQuoteReference()
	_, err = s.db.Exec(`
		INSERT INTO quotes (reference, customer_name, customer_email, customer_phone, customer_location, config_json, breakdown_json)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, reference, cfg.CustomerName, cfg.CustomerEmail, cfg.CustomerPhone, cfg.CustomerLocation, string(configJSON), string(breakdownJSON))
	if err != nil {
		http.Error(w, "failed to store quote", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, storedQuote{
		Reference:  reference,
		GrandTotal: breakdown.GrandTotal,
		Breakdown:  breakdown,
	})
}

// newQuoteReference builds a short customer-facing reference.
func newQuoteReference() string {
	return "LX-" + strings.ToUpper(uuid.NewString()[:8])
}

type quoteListItem struct {
	Reference    string  `json:"reference"`
	CreatedAt    string  `json:"createdAt"`
	CustomerName string  `json:"customerName"`
	GrandTotal   float64 `json:"grandTotal"`
}

func (s *server) handleQuotesList(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	quotes, err := s.listQuotes(query)
	if err != nil {
		http.Error(w, "failed to load quotes", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, quotes)
}

func (s *server) listQuotes(query string) ([]quoteListItem, error) {
	search := "%" + query + "%"
	rows, err := s.db.Query(`
		SELECT
			reference,
			created_at,
			COALESCE(customer_name, ''),
			breakdown_json
		FROM quotes
		WHERE (? = '' OR reference LIKE ? OR COALESCE(customer_name, '') LIKE ? OR COALESCE(customer_email, '') LIKE ?)
		ORDER BY datetime(created_at) DESC, id DESC
	`, query, search, search, search)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	quotes := make([]quoteListItem, 0)
	for rows.Next() {
		var item quoteListItem
		var breakdownJSON string
		if err := rows.Scan(&item.Reference, &item.CreatedAt, &item.CustomerName, &breakdownJSON); err != nil {
			return nil, err
		}
		item.GrandTotal = extractGrandTotalFromJSON(breakdownJSON)
		quotes = append(quotes, item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return quotes, nil
}

func extractGrandTotalFromJSON(breakdownJSON string) float64 {
	var values map[string]any
	if err := json.Unmarshal([]byte(breakdownJSON), &values); err != nil {
		return 0
	}

	for _, key := range []string{"grandTotal", "grand_total", "total"} {
		if total, ok := values[key].(float64); ok {
			return total
		}
	}

	return 0
}

type quoteDetail struct {
	Reference        string          `json:"reference"`
	CreatedAt        string          `json:"createdAt"`
	CustomerName     string          `json:"customerName"`
	CustomerEmail    string          `json:"customerEmail"`
	CustomerPhone    string          `json:"customerPhone"`
	CustomerLocation string          `json:"customerLocation"`
	Configuration    json.RawMessage `json:"configuration"`
	Breakdown        json.RawMessage `json:"breakdown"`
}

// handleQuoteDetail returns the stored snapshot without recalculating, so a
// quote keeps the price the customer saw even after rate or catalog changes.
func (s *server) handleQuoteDetail(w http.ResponseWriter, r *http.Request) {
	reference := chi.URLParam(r, "reference")

	detail, err := s.getQuoteDetail(reference)
	if errors.Is(err, sql.ErrNoRows) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		http.Error(w, "failed to load quote", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, detail)
}

func (s *server) getQuoteDetail(reference string) (quoteDetail, error) {
	var d quoteDetail
	var configJSON, breakdownJSON string
	err := s.db.QueryRow(`
		SELECT
			reference,
			created_at,
			COALESCE(customer_name, ''),
			COALESCE(customer_email, ''),
			COALESCE(customer_phone, ''),
			COALESCE(customer_location, ''),
			config_json,
			breakdown_json
		FROM quotes
		WHERE reference = ?
	`, reference).Scan(
		&d.Reference,
		&d.CreatedAt,
		&d.CustomerName,
		&d.CustomerEmail,
		&d.CustomerPhone,
		&d.CustomerLocation,
		&configJSON,
		&breakdownJSON,
	)
	if err != nil {
		return quoteDetail{}, err
	}

	d.Configuration = json.RawMessage(configJSON)
	d.Breakdown = json.RawMessage(breakdownJSON)
	return d, nil
}
