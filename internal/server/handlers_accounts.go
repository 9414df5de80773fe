package server

import (
	"encoding/json"
	"net/http"

	"github.com/AbbasAli4ever/FinanxBackend-sub001/internal/accounts"
	"github.com/AbbasAli4ever/FinanxBackend-sub001/internal/ledger"
	"github.com/go-chi/chi/v5"
)

func (s *Server) accountTypes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, ledger.Catalog())
}

type createAccountRequest struct {
	Name          string `json:"name"`
	AccountNumber string `json:"account_number"`
	AccountType   string `json:"account_type"`
	DetailType    string `json:"detail_type"`
	Description   string `json:"description"`
	ParentID      string `json:"parent_account_id"`
}

func (s *Server) createAccount(w http.ResponseWriter, r *http.Request) {
	var req createAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	acct, err := s.accounts.Create(r.Context(), accounts.CreateParams{
		CompanyID:     chi.URLParam(r, "companyID"),
		Name:          req.Name,
		AccountNumber: req.AccountNumber,
		Type:          ledger.AccountType(req.AccountType),
		DetailType:    req.DetailType,
		Description:   req.Description,
		ParentID:      req.ParentID,
	})
	if err != nil {
		writeError(w, mapError(err), err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, acct)
}

func (s *Server) listAccounts(w http.ResponseWriter, r *http.Request) {
	companyID := chi.URLParam(r, "companyID")
	typeFilter := ledger.AccountType(r.URL.Query().Get("type"))
	if typeFilter != "" && !ledger.ValidType(typeFilter) {
		writeError(w, http.StatusBadRequest, "unknown account type: "+string(typeFilter))
		return
	}

	list, err := s.accounts.List(r.Context(), companyID, typeFilter)
	if err != nil {
		writeError(w, mapError(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) accountTree(w http.ResponseWriter, r *http.Request) {
	companyID := chi.URLParam(r, "companyID")
	typeFilter := ledger.AccountType(r.URL.Query().Get("type"))
	if typeFilter != "" && !ledger.ValidType(typeFilter) {
		writeError(w, http.StatusBadRequest, "unknown account type: "+string(typeFilter))
		return
	}

	tree, err := s.accounts.Tree(r.Context(), companyID, typeFilter)
	if err != nil {
		writeError(w, mapError(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, tree)
}

func (s *Server) getAccount(w http.ResponseWriter, r *http.Request) {
	acct, err := s.accounts.Get(r.Context(), chi.URLParam(r, "companyID"), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, mapError(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, acct)
}

type updateAccountRequest struct {
	Name          *string `json:"name"`
	AccountNumber *string `json:"account_number"`
	DetailType    *string `json:"detail_type"`
	Description   *string `json:"description"`
	IsActive      *bool   `json:"is_active"`
}

func (s *Server) updateAccount(w http.ResponseWriter, r *http.Request) {
	var req updateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	acct, err := s.accounts.Update(r.Context(), chi.URLParam(r, "companyID"), chi.URLParam(r, "id"),
		accounts.UpdateParams{
			Name:          req.Name,
			AccountNumber: req.AccountNumber,
			DetailType:    req.DetailType,
			Description:   req.Description,
			IsActive:      req.IsActive,
		})
	if err != nil {
		writeError(w, mapError(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, acct)
}

func (s *Server) deleteAccount(w http.ResponseWriter, r *http.Request) {
	err := s.accounts.Delete(r.Context(), chi.URLParam(r, "companyID"), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, mapError(err), err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) seedAccounts(w http.ResponseWriter, r *http.Request) {
	seeded, err := s.accounts.SeedDefaults(r.Context(), chi.URLParam(r, "companyID"))
	if err != nil {
		writeError(w, mapError(err), err.Error())
		return
	}
	if seeded == nil {
		seeded = []ledger.Account{}
	}
	writeJSON(w, http.StatusCreated, seeded)
}
