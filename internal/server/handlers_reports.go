package server

import (
	"net/http"

	"github.com/AbbasAli4ever/FinanxBackend-sub001/internal/ledger"
	"github.com/go-chi/chi/v5"
)

func (s *Server) trialBalance(w http.ResponseWriter, r *http.Request) {
	asOf, err := ledger.ParseDate(r.URL.Query().Get("as_of"))
	if err != nil {
		writeError(w, mapError(err), "as_of: "+err.Error())
		return
	}

	tb, err := s.reports.TrialBalance(r.Context(), chi.URLParam(r, "companyID"), asOf)
	if err != nil {
		writeError(w, mapError(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, tb)
}

func (s *Server) accountLedger(w http.ResponseWriter, r *http.Request) {
	start, err := ledger.ParseDate(r.URL.Query().Get("start_date"))
	if err != nil {
		writeError(w, mapError(err), "start_date: "+err.Error())
		return
	}
	end, err := ledger.ParseDate(r.URL.Query().Get("end_date"))
	if err != nil {
		writeError(w, mapError(err), "end_date: "+err.Error())
		return
	}

	al, err := s.reports.AccountLedger(r.Context(),
		chi.URLParam(r, "companyID"), chi.URLParam(r, "accountID"), start, end)
	if err != nil {
		writeError(w, mapError(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, al)
}

func (s *Server) incomeStatement(w http.ResponseWriter, r *http.Request) {
	start, err := ledger.ParseDate(r.URL.Query().Get("start_date"))
	if err != nil {
		writeError(w, mapError(err), "start_date: "+err.Error())
		return
	}
	end, err := ledger.ParseDate(r.URL.Query().Get("end_date"))
	if err != nil {
		writeError(w, mapError(err), "end_date: "+err.Error())
		return
	}

	is, err := s.reports.IncomeStatement(r.Context(), chi.URLParam(r, "companyID"), start, end)
	if err != nil {
		writeError(w, mapError(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, is)
}

func (s *Server) balanceSheet(w http.ResponseWriter, r *http.Request) {
	asOf, err := ledger.ParseDate(r.URL.Query().Get("as_of"))
	if err != nil {
		writeError(w, mapError(err), "as_of: "+err.Error())
		return
	}

	bs, err := s.reports.BalanceSheet(r.Context(), chi.URLParam(r, "companyID"), asOf)
	if err != nil {
		writeError(w, mapError(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, bs)
}
