package server

import (
	"encoding/json"
	"net/http"

	"github.com/AbbasAli4ever/FinanxBackend-sub001/internal/ledger"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type postEntryRequest struct {
	EntryDate   string          `json:"entry_date"`
	Description string          `json:"description"`
	Lines       []postEntryLine `json:"lines"`
}

type postEntryLine struct {
	AccountID   string          `json:"account_id"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Description string          `json:"description"`
}

// postEntry writes a balanced journal entry directly as POSTED. Draft editing
// and approval belong to the posting workflow upstream; this endpoint covers
// the finalized case the reports consume.
func (s *Server) postEntry(w http.ResponseWriter, r *http.Request) {
	var req postEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	date, err := ledger.ParseDate(req.EntryDate)
	if err != nil || date == nil {
		writeError(w, http.StatusBadRequest, "entry_date: expected YYYY-MM-DD")
		return
	}

	// EntryNumber is left empty; the store allocates it inside the posting
	// transaction so concurrent posts never collide.
	entry := &ledger.JournalEntry{
		ID:          uuid.NewString(),
		CompanyID:   chi.URLParam(r, "companyID"),
		EntryDate:   *date,
		Description: req.Description,
	}
	for _, l := range req.Lines {
		entry.Lines = append(entry.Lines, ledger.JournalLine{
			AccountID:   l.AccountID,
			Debit:       l.Debit,
			Credit:      l.Credit,
			Description: l.Description,
		})
	}

	if err := s.store.PostEntry(r.Context(), entry); err != nil {
		writeError(w, mapError(err), err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, entry)
}
